package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("transaction does not balance", []string{"a", "b"}, []string{"w"})

	assert.True(t, errors.Is(err, ErrValidation))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "transaction does not balance: a, b", err.Error())

	wrapped := fmt.Errorf("create: %w", err)
	var vErr *ValidationError
	assert.True(t, errors.As(wrapped, &vErr))
	assert.Equal(t, []string{"a", "b"}, vErr.Errors)
	assert.Equal(t, []string{"w"}, vErr.Warnings)
}

func TestIsBusinessError(t *testing.T) {
	assert.True(t, IsBusinessError(fmt.Errorf("cannot update a balanced transaction: %w", ErrTransactionBalanced)))
	assert.True(t, IsBusinessError(NewValidationError("bad", nil, nil)))
	assert.True(t, IsBusinessError(NewInternalError("already translated")))
	assert.False(t, IsBusinessError(errors.New("connection reset by peer")))
}

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", NewValidationError("bad", []string{"x"}, nil), http.StatusBadRequest},
		{"wrapped validation", fmt.Errorf("%w: name is required", ErrValidation), http.StatusBadRequest},
		{"not found", NewNotFoundError("transaction not found"), http.StatusNotFound},
		{"balanced", fmt.Errorf("cannot delete a balanced transaction: %w", ErrTransactionBalanced), http.StatusConflict},
		{"duplicate", fmt.Errorf("%w: account number 1000", ErrDuplicate), http.StatusConflict},
		{"internal", NewInternalError("failed to list transactions"), http.StatusInternalServerError},
		{"plain", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusCode(tt.err))
		})
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	err := NewInternalError("failed to save transaction")
	assert.True(t, errors.Is(err, ErrInternal))
	assert.Equal(t, "failed to save transaction: internal error", err.Error())
}
