package coleta

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"recicleme/internal/domain"
	apperror "recicleme/internal/errors"
	"recicleme/internal/pkg/logger"
	"recicleme/internal/pkg/middleware"
)

// ColetaService define o contrato que o Handler espera da camada de Serviço.
type ColetaService interface {
	PontosColeta() []domain.PontoColeta
	Estimate(req domain.EstimativaRequest) (domain.Estimativa, error)
	Schedule(ctx context.Context, userID string, req domain.ColetaRequest) (domain.ColetaAgendada, error)
	Complete(ctx context.Context, userID, id string) (domain.Coleta, error)
	Cancel(ctx context.Context, userID, id string) error
	List(ctx context.Context, userID string) ([]domain.Coleta, error)
	Get(ctx context.Context, userID, id string) (domain.Coleta, error)
	PresignFoto(ctx context.Context, userID string, req domain.FotoUploadRequest) (domain.FotoUpload, error)
}

// Handler agrupa todos os métodos de Handler das coletas.
type Handler struct {
	Service ColetaService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc ColetaService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// handleServiceResponse processa erros de serviço e envia respostas padronizadas ao cliente.
func (h *Handler) handleServiceResponse(w http.ResponseWriter, r *http.Request, data interface{}, err error, successStatus int) {
	if err == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(successStatus)

		h.Logger.Info("Requisição concluída com sucesso", map[string]interface{}{
			"method": r.Method,
			"path":   r.URL.Path,
			"status": successStatus,
		})

		if data != nil {
			if jsonErr := json.NewEncoder(w).Encode(data); jsonErr != nil {
				h.Logger.Error("Falha ao codificar JSON de resposta", jsonErr)
			}
		}
		return
	}

	status, category, _ := apperror.MapToHTTPStatus(err)
	if status >= 500 {
		h.Logger.Error(fmt.Sprintf("Erro de Servidor: %s", category), err)
	} else {
		h.Logger.Debug(fmt.Sprintf("Requisição rejeitada com status %d. Categoria: %s", status, category), map[string]interface{}{"path": r.URL.Path})
	}
	middleware.WriteError(w, err)
}

// currentUser extrai o usuário autenticado; a rota sempre passa pelo middleware de auth.
func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	claims, ok := middleware.GetUserClaimsFromContext(r.Context())
	if !ok || claims.UserID == "" {
		h.Logger.Warn("Requisição de coleta sem claims de usuário no contexto.", map[string]interface{}{"path": r.URL.Path})
		h.handleServiceResponse(w, r, nil, apperror.NewUnauthorizedError("Usuário não autenticado."), http.StatusOK)
		return "", false
	}
	return claims.UserID, true
}

// ListPontosColetaHandler lida com a requisição GET /v1/pontos-coleta.
// @Summary Lista os pontos de coleta
// @Description Catálogo fixo de pontos com as categorias aceitas por cada um.
// @Tags coletas
// @Produce json
// @Success 200 {array} domain.PontoColeta "Pontos de coleta"
// @Router /pontos-coleta [get]
func (h *Handler) ListPontosColetaHandler(w http.ResponseWriter, r *http.Request) {
	h.handleServiceResponse(w, r, h.Service.PontosColeta(), nil, http.StatusOK)
}

// EstimateHandler lida com a requisição POST /v1/coletas/estimativa.
// @Summary Estima os pontos de uma coleta
// @Description Calcula os pontos provisórios para a categoria e quantidade informadas. Nada é gravado.
// @Tags coletas
// @Accept json
// @Produce json
// @Param estimativa body domain.EstimativaRequest true "Categoria e quantidade"
// @Success 200 {object} domain.Estimativa "Estimativa calculada"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Router /coletas/estimativa [post]
func (h *Handler) EstimateHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.EstimativaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload inválido. Verifique o formato JSON."), http.StatusOK)
		return
	}

	estimativa, err := h.Service.Estimate(req)
	h.handleServiceResponse(w, r, estimativa, err, http.StatusOK)
}

// ScheduleHandler lida com a requisição POST /v1/coletas.
// @Summary Agenda uma coleta
// @Description Cria uma coleta pendente com zero pontos e devolve a estimativa provisória.
// @Tags coletas
// @Accept json
// @Produce json
// @Param coleta body domain.ColetaRequest true "Dados da coleta"
// @Success 201 {object} domain.ColetaAgendada "Coleta agendada"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido ou ponto não aceita a categoria"
// @Failure 401 {object} domain.ErrorResponse "Não autenticado"
// @Failure 409 {object} domain.ErrorResponse "Limite diário atingido"
// @Failure 503 {object} domain.ErrorResponse "Agendamento desabilitado"
// @Security ApiKeyAuth
// @Router /coletas [post]
func (h *Handler) ScheduleHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	var req domain.ColetaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload inválido. Verifique o formato JSON."), http.StatusCreated)
		return
	}

	agendada, err := h.Service.Schedule(r.Context(), userID, req)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusCreated)
		return
	}
	h.handleServiceResponse(w, r, agendada, nil, http.StatusCreated)
}

// ListHandler lida com a requisição GET /v1/coletas.
// @Summary Lista as coletas do usuário
// @Description Coletas do usuário autenticado, mais recentes primeiro.
// @Tags coletas
// @Produce json
// @Success 200 {array} domain.Coleta "Coletas"
// @Failure 401 {object} domain.ErrorResponse "Não autenticado"
// @Security ApiKeyAuth
// @Router /coletas [get]
func (h *Handler) ListHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	coletas, err := h.Service.List(r.Context(), userID)
	h.handleServiceResponse(w, r, coletas, err, http.StatusOK)
}

// GetHandler lida com a requisição GET /v1/coletas/{id}.
// @Summary Obtém uma coleta por ID
// @Tags coletas
// @Produce json
// @Param id path string true "ID da coleta"
// @Success 200 {object} domain.Coleta "Coleta encontrada"
// @Failure 400 {object} domain.ErrorResponse "ID inválido"
// @Failure 404 {object} domain.ErrorResponse "Coleta não encontrada"
// @Security ApiKeyAuth
// @Router /coletas/{id} [get]
func (h *Handler) GetHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	coleta, err := h.Service.Get(r.Context(), userID, mux.Vars(r)["id"])
	h.handleServiceResponse(w, r, coleta, err, http.StatusOK)
}

// CancelHandler lida com a requisição DELETE /v1/coletas/{id}.
// @Summary Cancela uma coleta
// @Description Remove a coleta do usuário.
// @Tags coletas
// @Param id path string true "ID da coleta"
// @Success 204 "Coleta removida"
// @Failure 404 {object} domain.ErrorResponse "Coleta não encontrada"
// @Security ApiKeyAuth
// @Router /coletas/{id} [delete]
func (h *Handler) CancelHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	if err := h.Service.Cancel(r.Context(), userID, mux.Vars(r)["id"]); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusNoContent)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CompleteHandler lida com a requisição POST /v1/coletas/{id}/concluir.
// @Summary Conclui uma coleta
// @Description Marca a coleta como concluída e grava os pontos calculados.
// @Tags coletas
// @Produce json
// @Param id path string true "ID da coleta"
// @Success 200 {object} domain.Coleta "Coleta concluída"
// @Failure 404 {object} domain.ErrorResponse "Coleta não encontrada"
// @Failure 409 {object} domain.ErrorResponse "Coleta já concluída"
// @Security ApiKeyAuth
// @Router /coletas/{id}/concluir [post]
func (h *Handler) CompleteHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	coleta, err := h.Service.Complete(r.Context(), userID, mux.Vars(r)["id"])
	h.handleServiceResponse(w, r, coleta, err, http.StatusOK)
}

// PresignFotoHandler lida com a requisição POST /v1/coletas/foto.
// @Summary Gera URL de upload da foto
// @Description Devolve uma URL pré-assinada (PUT, 15 minutos) e a URL pública a gravar em foto_url.
// @Tags coletas
// @Accept json
// @Produce json
// @Param foto body domain.FotoUploadRequest true "Arquivo a enviar"
// @Success 200 {object} domain.FotoUpload "URLs geradas"
// @Failure 400 {object} domain.ErrorResponse "Arquivo inválido"
// @Failure 503 {object} domain.ErrorResponse "Armazenamento não configurado"
// @Security ApiKeyAuth
// @Router /coletas/foto [post]
func (h *Handler) PresignFotoHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	var req domain.FotoUploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload inválido. Verifique o formato JSON."), http.StatusOK)
		return
	}

	upload, err := h.Service.PresignFoto(r.Context(), userID, req)
	h.handleServiceResponse(w, r, upload, err, http.StatusOK)
}
