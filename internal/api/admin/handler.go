package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"recicleme/internal/domain"
	apperror "recicleme/internal/errors"
	"recicleme/internal/pkg/logger"
	"recicleme/internal/pkg/middleware"
)

// AdminService define as operações administrativas. Todas verificam o papel do ator.
type AdminService interface {
	Authorize(ctx context.Context, actor string) error
	ListSettings(ctx context.Context, actor string) ([]domain.PlatformSetting, error)
	UpdateSetting(ctx context.Context, actor string, key domain.SettingKey, value string) error
	ToggleFeature(ctx context.Context, actor string, key domain.SettingKey) (bool, error)
	GetStats(ctx context.Context, actor string) (domain.Stats, error)
}

// UpdateSettingRequest é o payload do PUT /v1/admin/settings. value aceita string, booleano ou número.
type UpdateSettingRequest struct {
	Key   string          `json:"key" example:"max_coletas_per_day"`
	Value json.RawMessage `json:"value" swaggertype:"string" example:"10"`
}

// ToggleFeatureRequest é o payload do POST /v1/admin/toggle-feature.
type ToggleFeatureRequest struct {
	Feature string `json:"feature" example:"chat_enabled"`
}

// Handler roteia os caminhos sob /v1/admin para a operação administrativa.
type Handler struct {
	Service AdminService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler.
func NewHandler(svc AdminService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

func (h *Handler) handleServiceResponse(w http.ResponseWriter, r *http.Request, data interface{}, err error) {
	if err == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(data)
		return
	}

	status, category, _ := apperror.MapToHTTPStatus(err)
	if status >= 500 {
		h.Logger.Error(fmt.Sprintf("Erro de Servidor na administração: %s", category), err)
	}
	middleware.WriteError(w, err)
}

// AdminHandler lida com todas as requisições sob /v1/admin.
// A autorização vem antes do roteamento: caminhos desconhecidos também exigem admin.
// A operação é escolhida pelo último segmento do caminho.
// @Summary API administrativa
// @Description settings (GET, PUT), stats (GET) e toggle-feature (POST). Exige papel admin.
// @Tags admin
// @Accept json
// @Produce json
// @Param segment path string true "settings, stats ou toggle-feature"
// @Success 200 {object} map[string]interface{} "Resultado da operação"
// @Failure 400 {object} domain.ErrorResponse "Parâmetro ausente ou valor inválido"
// @Failure 401 {object} domain.ErrorResponse "Não autenticado"
// @Failure 403 {object} domain.ErrorResponse "Papel admin necessário"
// @Failure 404 {object} domain.ErrorResponse "Endpoint ou chave inexistente"
// @Failure 405 {object} domain.ErrorResponse "Método não permitido"
// @Security ApiKeyAuth
// @Router /admin/{segment} [get]
// @Router /admin/{segment} [put]
// @Router /admin/{segment} [post]
func (h *Handler) AdminHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	claims, _ := middleware.GetUserClaimsFromContext(ctx)
	if err := h.Service.Authorize(ctx, claims.UserID); err != nil {
		h.handleServiceResponse(w, r, nil, err)
		return
	}

	segment := lastSegment(r.URL.Path)
	h.Logger.Info("Admin API chamada.", map[string]interface{}{"path": segment, "method": r.Method, "user_id": claims.UserID})

	switch segment {
	case "settings":
		h.handleSettings(w, r, claims.UserID)
	case "stats":
		h.handleStats(w, r, claims.UserID)
	case "toggle-feature":
		h.handleToggleFeature(w, r, claims.UserID)
	default:
		h.handleServiceResponse(w, r, nil, apperror.NewNotFoundError("Endpoint não encontrado."))
	}
}

func (h *Handler) handleSettings(w http.ResponseWriter, r *http.Request, actor string) {
	ctx := r.Context()

	switch r.Method {
	case http.MethodGet:
		settings, err := h.Service.ListSettings(ctx, actor)
		h.handleServiceResponse(w, r, map[string]interface{}{"settings": settings}, err)

	case http.MethodPut:
		var req UpdateSettingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload JSON inválido."))
			return
		}
		if strings.TrimSpace(req.Key) == "" {
			h.handleServiceResponse(w, r, nil, apperror.NewValidationError("O campo 'key' é obrigatório."))
			return
		}

		err := h.Service.UpdateSetting(ctx, actor, domain.SettingKey(req.Key), settingValue(req.Value))
		h.handleServiceResponse(w, r, map[string]interface{}{
			"success": true,
			"message": fmt.Sprintf("Configuração %s atualizada", req.Key),
		}, err)

	default:
		h.handleServiceResponse(w, r, nil, apperror.NewMethodNotAllowedError("Método não permitido."))
	}
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request, actor string) {
	if r.Method != http.MethodGet {
		h.handleServiceResponse(w, r, nil, apperror.NewMethodNotAllowedError("Método não permitido."))
		return
	}

	stats, err := h.Service.GetStats(r.Context(), actor)
	h.handleServiceResponse(w, r, map[string]interface{}{"stats": stats}, err)
}

func (h *Handler) handleToggleFeature(w http.ResponseWriter, r *http.Request, actor string) {
	if r.Method != http.MethodPost {
		h.handleServiceResponse(w, r, nil, apperror.NewMethodNotAllowedError("Método não permitido."))
		return
	}

	var req ToggleFeatureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload JSON inválido."))
		return
	}
	if strings.TrimSpace(req.Feature) == "" {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("O campo 'feature' é obrigatório."))
		return
	}

	enabled, err := h.Service.ToggleFeature(r.Context(), actor, domain.SettingKey(req.Feature))
	h.handleServiceResponse(w, r, map[string]interface{}{
		"success": true,
		"feature": req.Feature,
		"enabled": enabled,
	}, err)
}

// lastSegment devolve o último elemento do caminho; "/v1/admin/" resulta em "".
func lastSegment(p string) string {
	return p[strings.LastIndex(p, "/")+1:]
}

// settingValue converte o valor JSON para o texto armazenado: strings perdem as
// aspas, booleanos e números mantêm a forma literal.
func settingValue(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(raw))
}
