package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Libreta-api/internal/application/ledger"
	"github.com/jhoicas/Libreta-api/pkg/logger"
)

// RouterDeps dependencias inyectadas a las rutas.
type RouterDeps struct {
	CustomerUC *ledger.CustomerUseCase
	Log        *logger.Logger
}

// Router registra todas las rutas de la aplicación.
func Router(app *fiber.App, deps RouterDeps) {
	h := NewCustomerHandler(deps.CustomerUC, deps.Log)

	app.Get("/", h.Index)
	app.Get("/create", h.CreateForm)
	app.Post("/add-customer", h.CreateCustomer)
	app.Post("/add-product/:id", h.AddProduct)
}
