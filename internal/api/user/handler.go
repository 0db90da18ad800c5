package user

import (
	"context"
	"encoding/json"
	"net/http"

	"recicleme/internal/domain"
	apperror "recicleme/internal/errors"
	"recicleme/internal/pkg/logger"
	"recicleme/internal/pkg/middleware"
)

// UserService define o contrato para as operações de registro e login.
type UserService interface {
	Register(ctx context.Context, registration domain.UserRegistration) (domain.User, error)
	Login(ctx context.Context, email string, password string) (string, error)
}

// LoginRequest representa o payload de entrada para o login.
type LoginRequest struct {
	Email string `json:"email" example:"maria@exemplo.com"`
	Senha string `json:"senha" example:"segredo123"`
}

// Handler agrupa todos os métodos de Handler do usuário.
type Handler struct {
	Service UserService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc UserService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// handleServiceResponse padroniza o tratamento de erros e respostas HTTP.
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
		h.Logger.Error("Erro interno no serviço de usuário:", err)
	}
	middleware.WriteError(w, err)
}

// RegisterUserHandler lida com a requisição POST /v1/register.
// @Summary Registra um novo usuário
// @Description Cria a conta, hasheia a senha e cria o perfil com o nome informado.
// @Tags users
// @Accept json
// @Produce json
// @Param registration body domain.UserRegistration true "Dados de cadastro"
// @Success 201 {object} domain.User "Usuário criado com sucesso"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido ou campos obrigatórios ausentes"
// @Failure 409 {object} domain.ErrorResponse "Email já cadastrado"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /register [post]
func (h *Handler) RegisterUserHandler(w http.ResponseWriter, r *http.Request) {
	var reg domain.UserRegistration
	if err := json.NewDecoder(r.Body).Decode(&reg); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload JSON inválido."), http.StatusCreated)
		return
	}

	newUser, err := h.Service.Register(r.Context(), reg)
	if err != nil {
		// ConflictError (e-mail duplicado) -> 409, ValidationError -> 400
		h.handleServiceResponse(w, r, nil, err, http.StatusCreated)
		return
	}

	// PasswordHash não é serializado (json:"-").
	h.handleServiceResponse(w, r, newUser, nil, http.StatusCreated)
}

// LoginUserHandler lida com a requisição POST /v1/login.
// @Summary Autentica um usuário e retorna um JWT
// @Description Recebe email/senha, verifica a validade e emite um JSON Web Token.
// @Tags users
// @Accept json
// @Produce json
// @Param login body LoginRequest true "Credenciais do usuário"
// @Success 200 {object} map[string]string "Token JWT emitido"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 401 {object} domain.ErrorResponse "Credenciais inválidas"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /login [post]
func (h *Handler) LoginUserHandler(w http.ResponseWriter, r *http.Request) {
	var loginReq LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload JSON inválido."), http.StatusOK)
		return
	}

	token, err := h.Service.Login(r.Context(), loginReq.Email, loginReq.Senha)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, map[string]string{"token": token}, nil, http.StatusOK)
}
