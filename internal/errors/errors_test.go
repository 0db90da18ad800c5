package errors_test

import (
	"database/sql"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	apperror "recicleme/internal/errors"
)

func TestMapToHTTPStatus_TypedErrors(t *testing.T) {
	cases := []struct {
		err      error
		status   int
		category string
	}{
		{apperror.NewValidationError("x"), http.StatusBadRequest, "VALIDATION_ERROR"},
		{apperror.NewUnauthorizedError("x"), http.StatusUnauthorized, "UNAUTHORIZED"},
		{apperror.NewForbiddenError("x"), http.StatusForbidden, "FORBIDDEN"},
		{apperror.NewNotFoundError("x"), http.StatusNotFound, "NOT_FOUND"},
		{apperror.NewMethodNotAllowedError("x"), http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED"},
		{apperror.NewConflictError("x"), http.StatusConflict, "CONFLICT"},
		{apperror.NewUnavailableError("x"), http.StatusServiceUnavailable, "UNAVAILABLE"},
	}

	for _, tc := range cases {
		status, category, message := apperror.MapToHTTPStatus(tc.err)
		assert.Equal(t, tc.status, status)
		assert.Equal(t, tc.category, category)
		assert.Equal(t, tc.err.Error(), message)
	}
}

// TestMapToHTTPStatus_WrappedError garante que erros embrulhados com %w mantêm o status original.
func TestMapToHTTPStatus_WrappedError(t *testing.T) {
	err := fmt.Errorf("falha no serviço: %w", apperror.NewNotFoundError("coleta"))

	status, category, _ := apperror.MapToHTTPStatus(err)

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", category)
}

// TestMapToHTTPStatus_InternalHidesCause garante que a causa do driver não vaza para o cliente.
func TestMapToHTTPStatus_InternalHidesCause(t *testing.T) {
	err := apperror.NewDBError("Falha ao buscar coleta", sql.ErrConnDone)

	status, category, message := apperror.MapToHTTPStatus(err)

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "INTERNAL_ERROR", category)
	assert.NotContains(t, message, sql.ErrConnDone.Error())
	assert.Contains(t, err.Error(), sql.ErrConnDone.Error())
	assert.ErrorIs(t, err, sql.ErrConnDone)
}

func TestMapToHTTPStatus_UntypedError(t *testing.T) {
	status, category, _ := apperror.MapToHTTPStatus(assert.AnError)

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "UNKNOWN_ERROR", category)
}
