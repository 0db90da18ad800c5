package admin_test

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

	"recicleme/internal/api/admin"
	"recicleme/internal/domain"
	apperror "recicleme/internal/errors"
	"recicleme/internal/pkg/logger"
	"recicleme/internal/pkg/middleware"
)

type MockAdminService struct{ mock.Mock }

func (m *MockAdminService) Authorize(ctx context.Context, actor string) error {
	return m.Called(ctx, actor).Error(0)
}

func (m *MockAdminService) ListSettings(ctx context.Context, actor string) ([]domain.PlatformSetting, error) {
	args := m.Called(ctx, actor)
	return args.Get(0).([]domain.PlatformSetting), args.Error(1)
}

func (m *MockAdminService) UpdateSetting(ctx context.Context, actor string, key domain.SettingKey, value string) error {
	return m.Called(ctx, actor, key, value).Error(0)
}

func (m *MockAdminService) ToggleFeature(ctx context.Context, actor string, key domain.SettingKey) (bool, error) {
	args := m.Called(ctx, actor, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockAdminService) GetStats(ctx context.Context, actor string) (domain.Stats, error) {
	args := m.Called(ctx, actor)
	return args.Get(0).(domain.Stats), args.Error(1)
}

func serve(t *testing.T, svc *MockAdminService, method, segment, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := admin.NewHandler(svc, logger.NewNopLogger())

	req := httptest.NewRequest(method, "/v1/admin/"+segment, strings.NewReader(body))
	req = req.WithContext(middleware.WithUserClaims(req.Context(), middleware.UserClaims{UserID: "admin-1"}))
	rr := httptest.NewRecorder()

	h.AdminHandler(rr, req)
	return rr
}

func authorized() *MockAdminService {
	svc := new(MockAdminService)
	svc.On("Authorize", mock.Anything, "admin-1").Return(nil)
	return svc
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	return body
}

func TestAdminHandler_Forbidden(t *testing.T) {
	for _, segment := range []string{"settings", "stats", "toggle-feature", "desconhecido", "", "settings/extra"} {
		svc := new(MockAdminService)
		svc.On("Authorize", mock.Anything, "admin-1").Return(apperror.NewForbiddenError("Apenas administradores podem acessar este recurso."))

		rr := serve(t, svc, http.MethodGet, segment, "")

		assert.Equal(t, http.StatusForbidden, rr.Code, segment)
		svc.AssertNotCalled(t, "ListSettings", mock.Anything, mock.Anything)
		svc.AssertNotCalled(t, "GetStats", mock.Anything, mock.Anything)
	}
}

func TestAdminHandler_ListSettings(t *testing.T) {
	svc := authorized()
	svc.On("ListSettings", mock.Anything, "admin-1").Return([]domain.PlatformSetting{
		{Key: domain.SettingChatEnabled, Value: "true"},
	}, nil)

	rr := serve(t, svc, http.MethodGet, "settings", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	settings := decode(t, rr)["settings"].([]interface{})
	assert.Len(t, settings, 1)
}

func TestAdminHandler_UpdateSetting_ValueForms(t *testing.T) {
	cases := map[string]string{
		`{"key":"max_coletas_per_day","value":10}`:   "10",
		`{"key":"max_coletas_per_day","value":"10"}`: "10",
		`{"key":"chat_enabled","value":false}`:       "false",
	}
	for body, want := range cases {
		svc := authorized()
		svc.On("UpdateSetting", mock.Anything, "admin-1", mock.Anything, want).Return(nil)

		rr := serve(t, svc, http.MethodPut, "settings", body)

		assert.Equal(t, http.StatusOK, rr.Code, body)
		resp := decode(t, rr)
		assert.Equal(t, true, resp["success"])
		svc.AssertExpectations(t)
	}
}

func TestAdminHandler_UpdateSetting_MissingKey(t *testing.T) {
	svc := authorized()

	rr := serve(t, svc, http.MethodPut, "settings", `{"value":"true"}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	svc.AssertNotCalled(t, "UpdateSetting", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminHandler_UpdateSetting_UnknownKey(t *testing.T) {
	svc := authorized()
	svc.On("UpdateSetting", mock.Anything, "admin-1", domain.SettingKey("nao_existe"), "1").
		Return(apperror.NewNotFoundError("Configuração 'nao_existe' não encontrada."))

	rr := serve(t, svc, http.MethodPut, "settings", `{"key":"nao_existe","value":1}`)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAdminHandler_Stats(t *testing.T) {
	svc := authorized()
	svc.On("GetStats", mock.Anything, "admin-1").Return(domain.Stats{TotalUsers: 3, TotalPointsDistributed: 90}, nil)

	rr := serve(t, svc, http.MethodGet, "stats", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	stats := decode(t, rr)["stats"].(map[string]interface{})
	assert.Equal(t, float64(3), stats["total_users"])
	assert.Equal(t, float64(90), stats["total_points_distributed"])
}

func TestAdminHandler_ToggleFeature(t *testing.T) {
	svc := authorized()
	svc.On("ToggleFeature", mock.Anything, "admin-1", domain.SettingChatEnabled).Return(false, nil)

	rr := serve(t, svc, http.MethodPost, "toggle-feature", `{"feature":"chat_enabled"}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	resp := decode(t, rr)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "chat_enabled", resp["feature"])
	assert.Equal(t, false, resp["enabled"])
}

func TestAdminHandler_ToggleFeature_MissingFeature(t *testing.T) {
	svc := authorized()

	rr := serve(t, svc, http.MethodPost, "toggle-feature", `{}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAdminHandler_WrongMethod(t *testing.T) {
	for segment, method := range map[string]string{
		"settings":       http.MethodDelete,
		"stats":          http.MethodPost,
		"toggle-feature": http.MethodGet,
	} {
		rr := serve(t, authorized(), method, segment, "")
		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code, segment)
	}
}

func TestAdminHandler_NestedPathUsesLastSegment(t *testing.T) {
	svc := authorized()
	svc.On("GetStats", mock.Anything, "admin-1").Return(domain.Stats{}, nil)

	rr := serve(t, svc, http.MethodGet, "painel/stats", "")

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestAdminHandler_EmptySegment(t *testing.T) {
	rr := serve(t, authorized(), http.MethodGet, "", "")

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAdminHandler_UnknownSegment(t *testing.T) {
	rr := serve(t, authorized(), http.MethodGet, "usuarios", "")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.NotEmpty(t, decode(t, rr)["error"])
}
