package router_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"recicleme/internal/api/admin"
	"recicleme/internal/api/chat"
	"recicleme/internal/api/coleta"
	"recicleme/internal/api/feature"
	"recicleme/internal/api/profile"
	"recicleme/internal/api/router"
	"recicleme/internal/api/user"
	"recicleme/internal/pkg/logger"
	"recicleme/internal/pkg/token"
	"recicleme/internal/service/chatservice"
)

// newTestRouter monta o roteador sem serviços de dados; só as rotas que não
// chegam aos serviços são exercitadas aqui.
func newTestRouter() http.Handler {
	log := logger.NewNopLogger()
	return router.NewRouter(router.Handlers{
		User:    user.NewHandler(nil, log),
		Coleta:  coleta.NewHandler(nil, log),
		Profile: profile.NewHandler(nil, log),
		Chat:    chat.NewHandler(chatservice.NewService(), log),
		Feature: feature.NewHandler(nil, log),
		Admin:   admin.NewHandler(nil, log),
	}, token.NewService("segredo", time.Hour), nil, router.Options{}, log)
}

func do(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestPing(t *testing.T) {
	rr := do(newTestRouter(), http.MethodGet, "/ping", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "pong", rr.Body.String())
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestPreflight(t *testing.T) {
	rr := do(newTestRouter(), http.MethodOptions, "/v1/admin/settings", "")

	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	h := newTestRouter()
	routes := []struct{ method, path string }{
		{http.MethodGet, "/v1/coletas"},
		{http.MethodPost, "/v1/coletas"},
		{http.MethodPost, "/v1/coletas/foto"},
		{http.MethodDelete, "/v1/coletas/5b0f8a52-6f0e-4c1e-9f53-0d8f1c9a2b11"},
		{http.MethodPost, "/v1/coletas/5b0f8a52-6f0e-4c1e-9f53-0d8f1c9a2b11/concluir"},
		{http.MethodGet, "/v1/perfil"},
		{http.MethodGet, "/v1/admin/settings"},
		{http.MethodGet, "/v1/admin"},
		{http.MethodGet, "/v1/admin/"},
		{http.MethodGet, "/v1/admin/settings/extra"},
		{http.MethodDelete, "/v1/admin/stats"},
	}
	for _, rt := range routes {
		rr := do(h, rt.method, rt.path, "{}")
		assert.Equal(t, http.StatusUnauthorized, rr.Code, rt.path)
	}
}

func TestChatIsPublic(t *testing.T) {
	rr := do(newTestRouter(), http.MethodPost, "/v1/chat", `{"message":"oi"}`)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestUnknownRoute(t *testing.T) {
	rr := do(newTestRouter(), http.MethodGet, "/v2/nada", "")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), `"error"`)
}

func TestMethodNotAllowed(t *testing.T) {
	rr := do(newTestRouter(), http.MethodDelete, "/v1/pontos-coleta", "")

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
