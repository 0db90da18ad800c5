package user_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"recicleme/internal/api/user"
	"recicleme/internal/domain"
	apperror "recicleme/internal/errors"
	"recicleme/internal/pkg/logger"
)

type MockUserService struct{ mock.Mock }

func (m *MockUserService) Register(ctx context.Context, reg domain.UserRegistration) (domain.User, error) {
	args := m.Called(ctx, reg)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserService) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func TestRegisterUserHandler_Created(t *testing.T) {
	svc := new(MockUserService)
	h := user.NewHandler(svc, logger.NewNopLogger())
	reg := domain.UserRegistration{Nome: "Maria", Email: "maria@exemplo.com", Senha: "segredo", ConfirmarSenha: "segredo"}
	svc.On("Register", mock.Anything, reg).
		Return(domain.User{ID: "u-1", Email: "maria@exemplo.com", PasswordHash: "hash"}, nil)

	body := `{"nome":"Maria","email":"maria@exemplo.com","senha":"segredo","confirmar_senha":"segredo"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/register", strings.NewReader(body))
	rr := httptest.NewRecorder()

	h.RegisterUserHandler(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.NotContains(t, rr.Body.String(), "hash")
	assert.Contains(t, rr.Body.String(), `"id":"u-1"`)
}

func TestRegisterUserHandler_Conflict(t *testing.T) {
	svc := new(MockUserService)
	h := user.NewHandler(svc, logger.NewNopLogger())
	svc.On("Register", mock.Anything, mock.Anything).
		Return(domain.User{}, apperror.NewConflictError("O email 'maria@exemplo.com' já está em uso."))

	req := httptest.NewRequest(http.MethodPost, "/v1/register", strings.NewReader(`{"email":"maria@exemplo.com"}`))
	rr := httptest.NewRecorder()

	h.RegisterUserHandler(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
	var resp domain.ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "O email 'maria@exemplo.com' já está em uso.", resp.Error)
}

func TestRegisterUserHandler_InvalidJSON(t *testing.T) {
	svc := new(MockUserService)
	h := user.NewHandler(svc, logger.NewNopLogger())

	req := httptest.NewRequest(http.MethodPost, "/v1/register", strings.NewReader("{"))
	rr := httptest.NewRecorder()

	h.RegisterUserHandler(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	svc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestLoginUserHandler(t *testing.T) {
	svc := new(MockUserService)
	h := user.NewHandler(svc, logger.NewNopLogger())
	svc.On("Login", mock.Anything, "maria@exemplo.com", "segredo").Return("jwt-token", nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(`{"email":"maria@exemplo.com","senha":"segredo"}`))
	rr := httptest.NewRecorder()

	h.LoginUserHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "jwt-token", resp["token"])
}

func TestLoginUserHandler_Unauthorized(t *testing.T) {
	svc := new(MockUserService)
	h := user.NewHandler(svc, logger.NewNopLogger())
	svc.On("Login", mock.Anything, mock.Anything, mock.Anything).
		Return("", apperror.NewUnauthorizedError("Email ou senha incorretos."))

	req := httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(`{"email":"x@y.z","senha":"errada"}`))
	rr := httptest.NewRecorder()

	h.LoginUserHandler(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
