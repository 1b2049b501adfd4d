package dto

import "time"

// NewProductRequest datos de un producto tal como llegan del formulario.
// Image es opcional: nil significa "sin imagen" y se resuelve al placeholder;
// presencia/ausencia es explícita, nunca un string centinela.
type NewProductRequest struct {
	Name   string
	Price  string
	Status string
	Image  []byte
}

// CreateCustomerRequest formulario "nuevo cliente con su primer producto".
type CreateCustomerRequest struct {
	CustomerName string
	Product      NewProductRequest
}

// ProductResponse producto listo para presentación.
type ProductResponse struct {
	Name   string
	Price  float64
	Status string
	Image  string
	Date   string
}

// CustomerResponse cliente con sus productos, en el orden de registro.
type CustomerResponse struct {
	ID        string
	Name      string
	CreatedAt time.Time
	Products  []ProductResponse
}
