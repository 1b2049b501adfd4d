package http

import (
	"errors"
	"io"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Libreta-api/internal/application/dto"
	"github.com/jhoicas/Libreta-api/internal/application/ledger"
	"github.com/jhoicas/Libreta-api/internal/domain"
	"github.com/jhoicas/Libreta-api/pkg/logger"
)

// CustomerHandler maneja las páginas y formularios de la libreta.
type CustomerHandler struct {
	uc  *ledger.CustomerUseCase
	log *logger.Logger
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *ledger.CustomerUseCase, log *logger.Logger) *CustomerHandler {
	return &CustomerHandler{uc: uc, log: log}
}

// Index GET / — página principal con la lista de clientes y sus productos.
func (h *CustomerHandler) Index(c *fiber.Ctx) error {
	customers, err := h.uc.List()
	if err != nil {
		h.log.Error().Err(err).Msg("listar clientes")
		return c.Status(fiber.StatusInternalServerError).
			SendString("ocurrió un error al cargar los datos")
	}
	return c.Render("index", fiber.Map{"Customers": customers})
}

// CreateForm GET /create — formulario de cliente nuevo.
func (h *CustomerHandler) CreateForm(c *fiber.Ctx) error {
	return c.Render("create", fiber.Map{})
}

// CreateCustomer POST /add-customer — registra cliente + primer producto y
// redirige a la página principal.
func (h *CustomerHandler) CreateCustomer(c *fiber.Ctx) error {
	in := dto.CreateCustomerRequest{
		CustomerName: c.FormValue("customerName"),
		Product:      productForm(c),
	}
	id, err := h.uc.Create(in)
	if err != nil {
		return h.fail(c, err, "crear cliente")
	}
	h.log.Info().Str("customer_id", id).Msg("cliente creado")
	return c.Redirect("/", fiber.StatusSeeOther)
}

// AddProduct POST /add-product/:id — fía un producto a un cliente existente.
func (h *CustomerHandler) AddProduct(c *fiber.Ctx) error {
	customerID := c.Params("id")
	if err := h.uc.AppendProduct(customerID, productForm(c)); err != nil {
		return h.fail(c, err, "agregar producto")
	}
	h.log.Info().Str("customer_id", customerID).Msg("producto agregado")
	return c.Redirect("/", fiber.StatusSeeOther)
}

// productForm lee los campos del producto del formulario multipart.
// El archivo "image" es opcional: si no viene, Image queda nil.
func productForm(c *fiber.Ctx) dto.NewProductRequest {
	in := dto.NewProductRequest{
		Name:   c.FormValue("productName"),
		Price:  c.FormValue("price"),
		Status: c.FormValue("status"),
	}
	fh, err := c.FormFile("image")
	if err != nil || fh == nil {
		return in
	}
	if data, err := readFile(fh); err == nil && len(data) > 0 {
		in.Image = data
	}
	return in
}

func readFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// fail traduce el error de dominio al estado HTTP y responde con un mensaje
// descriptivo. Ninguna petición fallida tumba el proceso.
func (h *CustomerHandler) fail(c *fiber.Ctx, err error, op string) error {
	var fieldErr *domain.FieldError
	switch {
	case errors.As(err, &fieldErr):
		return c.Status(fiber.StatusBadRequest).SendString(fieldErr.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).SendString("entrada inválida")
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).SendString("cliente no encontrado")
	case errors.Is(err, domain.ErrUploadFailed):
		h.log.Error().Err(err).Msg(op)
		return c.Status(fiber.StatusBadGateway).
			SendString("no se pudo subir la imagen, intenta de nuevo")
	default:
		h.log.Error().Err(err).Msg(op)
		return c.Status(fiber.StatusInternalServerError).
			SendString("ocurrió un error, intenta de nuevo")
	}
}
