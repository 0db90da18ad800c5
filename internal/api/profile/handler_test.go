package profile_test

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

	"recicleme/internal/api/profile"
	"recicleme/internal/domain"
	apperror "recicleme/internal/errors"
	"recicleme/internal/pkg/logger"
	"recicleme/internal/pkg/middleware"
)

type MockProfileService struct{ mock.Mock }

func (m *MockProfileService) Get(ctx context.Context, userID string) (domain.ProfileView, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.ProfileView), args.Error(1)
}

func (m *MockProfileService) Update(ctx context.Context, userID string, upd domain.ProfileUpdate) (domain.ProfileView, error) {
	args := m.Called(ctx, userID, upd)
	return args.Get(0).(domain.ProfileView), args.Error(1)
}

func withUser(req *http.Request) *http.Request {
	return req.WithContext(middleware.WithUserClaims(req.Context(), middleware.UserClaims{UserID: "user-1", Email: "maria@exemplo.com"}))
}

func TestGetProfileHandler(t *testing.T) {
	svc := new(MockProfileService)
	h := profile.NewHandler(svc, logger.NewNopLogger())
	svc.On("Get", mock.Anything, "user-1").Return(domain.ProfileView{
		Profile:     domain.Profile{UserID: "user-1", Nome: "Maria", Email: "maria@exemplo.com"},
		TotalPontos: 120,
	}, nil)

	rr := httptest.NewRecorder()
	h.GetProfileHandler(rr, withUser(httptest.NewRequest(http.MethodGet, "/v1/perfil", nil)))

	assert.Equal(t, http.StatusOK, rr.Code)
	var view domain.ProfileView
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&view))
	assert.Equal(t, int64(120), view.TotalPontos)
	assert.Equal(t, "Maria", view.Profile.Nome)
}

func TestGetProfileHandler_WithoutClaims(t *testing.T) {
	svc := new(MockProfileService)
	h := profile.NewHandler(svc, logger.NewNopLogger())

	rr := httptest.NewRecorder()
	h.GetProfileHandler(rr, httptest.NewRequest(http.MethodGet, "/v1/perfil", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestUpdateProfileHandler(t *testing.T) {
	svc := new(MockProfileService)
	h := profile.NewHandler(svc, logger.NewNopLogger())
	upd := domain.ProfileUpdate{Nome: "Maria Silva", Telefone: "11999990000"}
	svc.On("Update", mock.Anything, "user-1", upd).
		Return(domain.ProfileView{Profile: domain.Profile{UserID: "user-1", Nome: "Maria Silva"}}, nil)

	body := `{"nome":"Maria Silva","telefone":"11999990000"}`
	rr := httptest.NewRecorder()
	h.UpdateProfileHandler(rr, withUser(httptest.NewRequest(http.MethodPut, "/v1/perfil", strings.NewReader(body))))

	assert.Equal(t, http.StatusOK, rr.Code)
	svc.AssertExpectations(t)
}

func TestUpdateProfileHandler_AccountNotFound(t *testing.T) {
	svc := new(MockProfileService)
	h := profile.NewHandler(svc, logger.NewNopLogger())
	svc.On("Update", mock.Anything, "user-1", mock.Anything).
		Return(domain.ProfileView{}, apperror.NewNotFoundError("usuário"))

	rr := httptest.NewRecorder()
	h.UpdateProfileHandler(rr, withUser(httptest.NewRequest(http.MethodPut, "/v1/perfil", strings.NewReader(`{}`))))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
