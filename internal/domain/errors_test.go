package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Libreta-api/internal/domain"
)

func TestFieldError_EnvuelveErrInvalidInput(t *testing.T) {
	err := domain.NewFieldError("price", "no puede ser negativo")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	var fieldErr *domain.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "price", fieldErr.Field)
	assert.Contains(t, err.Error(), "price")

	// No debe confundirse con los otros errores del dominio.
	assert.False(t, errors.Is(err, domain.ErrNotFound))
	assert.False(t, errors.Is(err, domain.ErrUploadFailed))
}
