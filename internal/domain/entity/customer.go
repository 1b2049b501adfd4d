package entity

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductStatus estado de pago de un producto.
type ProductStatus string

const (
	StatusPaid   ProductStatus = "paid"
	StatusUnpaid ProductStatus = "unpaid"
)

// ParseProductStatus normaliza el valor recibido del formulario.
// Acepta mayúsculas/minúsculas y espacios; cualquier otro valor es inválido.
func ParseProductStatus(s string) (ProductStatus, bool) {
	switch ProductStatus(strings.ToLower(strings.TrimSpace(s))) {
	case StatusPaid:
		return StatusPaid, true
	case StatusUnpaid:
		return StatusUnpaid, true
	default:
		return "", false
	}
}

// Product valor embebido en el agregado Customer. No tiene identidad propia:
// se direcciona solo por posición dentro de la secuencia del cliente.
type Product struct {
	Name   string        `bson:"name"`
	Price  float64       `bson:"price"`
	Status ProductStatus `bson:"status"`
	Image  string        `bson:"image"`
	Date   string        `bson:"date"` // ISO-8601, fijado al momento del registro
}

// Customer raíz del agregado cliente + productos (libreta de fiado).
// Products es append-only: se crea con al menos un producto y solo crece.
type Customer struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	CreatedAt time.Time          `bson:"createdAt"`
	Products  []Product          `bson:"products"`
}
