package feature

import (
	"context"
	"encoding/json"
	"net/http"

	"recicleme/internal/domain"
	"recicleme/internal/pkg/logger"
	"recicleme/internal/pkg/middleware"
)

// FlagReader fornece as feature flags atuais.
type FlagReader interface {
	Flags(ctx context.Context) (domain.FeatureFlags, error)
}

// Handler expõe as feature flags para o front-end.
type Handler struct {
	Service FlagReader
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler.
func NewHandler(svc FlagReader, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

// GetFeaturesHandler lida com a requisição GET /v1/features.
// @Summary Lista as feature flags
// @Description Visão tipada das configurações da plataforma.
// @Tags features
// @Produce json
// @Success 200 {object} domain.FeatureFlags "Feature flags"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /features [get]
func (h *Handler) GetFeaturesHandler(w http.ResponseWriter, r *http.Request) {
	flags, err := h.Service.Flags(r.Context())
	if err != nil {
		h.Logger.Error("Falha ao carregar feature flags.", err)
		middleware.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(flags)
}
