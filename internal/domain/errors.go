package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUploadFailed = errors.New("fallo al subir la imagen")
)

// FieldError indica qué campo del formulario no pasó la validación.
// Envuelve ErrInvalidInput para que errors.Is siga funcionando.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("campo %s: %s", e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error { return ErrInvalidInput }

// NewFieldError construye un error de validación para un campo concreto.
func NewFieldError(field, reason string) error {
	return &FieldError{Field: field, Reason: reason}
}
