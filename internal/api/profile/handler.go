package profile

import (
	"context"
	"encoding/json"
	"net/http"

	"recicleme/internal/domain"
	apperror "recicleme/internal/errors"
	"recicleme/internal/pkg/logger"
	"recicleme/internal/pkg/middleware"
)

// ProfileService define o contrato de leitura e atualização do perfil.
type ProfileService interface {
	Get(ctx context.Context, userID string) (domain.ProfileView, error)
	Update(ctx context.Context, userID string, upd domain.ProfileUpdate) (domain.ProfileView, error)
}

// Handler agrupa os métodos de Handler do perfil.
type Handler struct {
	Service ProfileService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler.
func NewHandler(svc ProfileService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

func (h *Handler) handleServiceResponse(w http.ResponseWriter, r *http.Request, data interface{}, err error, successStatus int) {
	if err == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(successStatus)
		if data != nil {
			json.NewEncoder(w).Encode(data)
		}
		return
	}

	status, _, _ := apperror.MapToHTTPStatus(err)
	if status >= 500 {
		h.Logger.Error("Erro interno no serviço de perfil:", err)
	}
	middleware.WriteError(w, err)
}

// GetProfileHandler lida com a requisição GET /v1/perfil.
// @Summary Obtém o perfil do usuário autenticado
// @Description Devolve o perfil e o total de pontos das coletas concluídas.
// @Tags perfil
// @Produce json
// @Success 200 {object} domain.ProfileView "Perfil"
// @Failure 401 {object} domain.ErrorResponse "Não autenticado"
// @Security ApiKeyAuth
// @Router /perfil [get]
func (h *Handler) GetProfileHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetUserClaimsFromContext(r.Context())
	if !ok {
		h.handleServiceResponse(w, r, nil, apperror.NewUnauthorizedError("Usuário não autenticado."), http.StatusOK)
		return
	}

	view, err := h.Service.Get(r.Context(), claims.UserID)
	h.handleServiceResponse(w, r, view, err, http.StatusOK)
}

// UpdateProfileHandler lida com a requisição PUT /v1/perfil.
// @Summary Atualiza o perfil do usuário autenticado
// @Tags perfil
// @Accept json
// @Produce json
// @Param perfil body domain.ProfileUpdate true "Campos editáveis"
// @Success 200 {object} domain.ProfileView "Perfil atualizado"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 401 {object} domain.ErrorResponse "Não autenticado"
// @Security ApiKeyAuth
// @Router /perfil [put]
func (h *Handler) UpdateProfileHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetUserClaimsFromContext(r.Context())
	if !ok {
		h.handleServiceResponse(w, r, nil, apperror.NewUnauthorizedError("Usuário não autenticado."), http.StatusOK)
		return
	}

	var upd domain.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload JSON inválido."), http.StatusOK)
		return
	}

	view, err := h.Service.Update(r.Context(), claims.UserID, upd)
	h.handleServiceResponse(w, r, view, err, http.StatusOK)
}
