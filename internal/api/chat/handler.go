package chat

import (
	"encoding/json"
	"net/http"

	"recicleme/internal/pkg/logger"
)

// Responder gera a resposta do assistente para uma mensagem.
type Responder interface {
	Reply(message string) string
}

// Request é o payload do chat.
type Request struct {
	Message *string `json:"message" example:"Como funciona a coleta?"`
}

// Response é a resposta do assistente.
type Response struct {
	Response string `json:"response"`
}

// Handler atende o assistente de perguntas frequentes.
type Handler struct {
	Service Responder
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler.
func NewHandler(svc Responder, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

// ChatHandler lida com a requisição POST /v1/chat.
// @Summary Conversa com o assistente
// @Description Responde perguntas frequentes por palavras-chave.
// @Tags chat
// @Accept json
// @Produce json
// @Param mensagem body Request true "Mensagem do usuário"
// @Success 200 {object} Response "Resposta do assistente"
// @Failure 500 {object} map[string]string "Corpo inválido ou sem mensagem"
// @Router /chat [post]
func (h *Handler) ChatHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Error("Falha ao ler mensagem do chat.", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}
	if req.Message == nil {
		h.Logger.Error("Mensagem do chat ausente.", nil)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "O campo 'message' é obrigatório."})
		return
	}

	msg := *req.Message
	h.Logger.Debug("Mensagem recebida no chat.", map[string]interface{}{"length": len(msg)})
	json.NewEncoder(w).Encode(Response{Response: h.Service.Reply(msg)})
}
