package errors

import (
	"fmt"
	"net/http"
)

// AppError é a interface central para todos os erros customizados do Recicle.me.
// Ela permite que o código externo (Handler) acesse a Categoria e a Mensagem do erro.
type AppError interface {
	Error() string    // Implementa a interface error padrão do Go
	Category() string // Categoria do erro (e.g., "VALIDATION", "NOT_FOUND", "INTERNAL")
	HTTPStatus() int  // Código HTTP sugerido para o Handler
	Unwrap() error    // Permite encapsular erros subjacentes (original error)
}

// --- Tipos de Erro Específicos (Erros de Domínio) ---

// ValidationError representa falhas de validação de dados de entrada.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string    { return fmt.Sprintf("Erro de Validação: %s", e.Msg) }
func (e *ValidationError) Category() string { return "VALIDATION_ERROR" }
func (e *ValidationError) HTTPStatus() int  { return http.StatusBadRequest } // 400
func (e *ValidationError) Unwrap() error    { return nil }

// NewValidationError cria um novo erro de validação.
func NewValidationError(msg string) AppError {
	return &ValidationError{Msg: msg}
}

// UnauthorizedError representa credenciais ausentes, inválidas ou expiradas.
type UnauthorizedError struct {
	Msg string
}

func (e *UnauthorizedError) Error() string    { return fmt.Sprintf("Não autorizado: %s", e.Msg) }
func (e *UnauthorizedError) Category() string { return "UNAUTHORIZED" }
func (e *UnauthorizedError) HTTPStatus() int  { return http.StatusUnauthorized } // 401
func (e *UnauthorizedError) Unwrap() error    { return nil }

// NewUnauthorizedError cria um novo erro de autenticação.
func NewUnauthorizedError(msg string) AppError {
	return &UnauthorizedError{Msg: msg}
}

// ForbiddenError representa um usuário autenticado sem a permissão necessária.
type ForbiddenError struct {
	Msg string
}

func (e *ForbiddenError) Error() string    { return fmt.Sprintf("Acesso negado: %s", e.Msg) }
func (e *ForbiddenError) Category() string { return "FORBIDDEN" }
func (e *ForbiddenError) HTTPStatus() int  { return http.StatusForbidden } // 403
func (e *ForbiddenError) Unwrap() error    { return nil }

// NewForbiddenError cria um novo erro de autorização.
func NewForbiddenError(msg string) AppError {
	return &ForbiddenError{Msg: msg}
}

// NotFoundError representa a ausência de um recurso solicitado.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string    { return fmt.Sprintf("Recurso não encontrado: %s", e.Msg) }
func (e *NotFoundError) Category() string { return "NOT_FOUND" }
func (e *NotFoundError) HTTPStatus() int  { return http.StatusNotFound } // 404
func (e *NotFoundError) Unwrap() error    { return nil }

// NewNotFoundError cria um novo erro de recurso não encontrado.
func NewNotFoundError(msg string) AppError {
	return &NotFoundError{Msg: msg}
}

// MethodNotAllowedError representa um método HTTP não suportado pela rota.
type MethodNotAllowedError struct {
	Msg string
}

func (e *MethodNotAllowedError) Error() string    { return fmt.Sprintf("Método não permitido: %s", e.Msg) }
func (e *MethodNotAllowedError) Category() string { return "METHOD_NOT_ALLOWED" }
func (e *MethodNotAllowedError) HTTPStatus() int  { return http.StatusMethodNotAllowed } // 405
func (e *MethodNotAllowedError) Unwrap() error    { return nil }

// NewMethodNotAllowedError cria um novo erro de método não permitido.
func NewMethodNotAllowedError(msg string) AppError {
	return &MethodNotAllowedError{Msg: msg}
}

// ConflictError representa um conflito na regra de negócio (e.g., estado terminal, recurso duplicado).
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string    { return fmt.Sprintf("Conflito de estado: %s", e.Msg) }
func (e *ConflictError) Category() string { return "CONFLICT" }
func (e *ConflictError) HTTPStatus() int  { return http.StatusConflict } // 409
func (e *ConflictError) Unwrap() error    { return nil }

// NewConflictError cria um novo erro de conflito.
func NewConflictError(msg string) AppError {
	return &ConflictError{Msg: msg}
}

// UnavailableError representa uma funcionalidade desabilitada ou um colaborador externo não configurado.
type UnavailableError struct {
	Msg string
}

func (e *UnavailableError) Error() string    { return fmt.Sprintf("Indisponível: %s", e.Msg) }
func (e *UnavailableError) Category() string { return "UNAVAILABLE" }
func (e *UnavailableError) HTTPStatus() int  { return http.StatusServiceUnavailable } // 503
func (e *UnavailableError) Unwrap() error    { return nil }

// NewUnavailableError cria um novo erro de indisponibilidade.
func NewUnavailableError(msg string) AppError {
	return &UnavailableError{Msg: msg}
}

// --- Tipos de Erro de Infraestrutura (Encapsulamento) ---

// InternalError representa falhas inesperadas no servidor, serviço ou repositório.
type InternalError struct {
	Msg string
	Err error // Erro original subjacente (e.g., erro do driver SQL)
}

func (e *InternalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("Erro Interno: %s: %v", e.Msg, e.Err)
	}
	return fmt.Sprintf("Erro Interno: %s", e.Msg)
}
func (e *InternalError) Category() string { return "INTERNAL_ERROR" }
func (e *InternalError) HTTPStatus() int  { return http.StatusInternalServerError } // 500
func (e *InternalError) Unwrap() error    { return e.Err }

// NewInternalError cria um erro de servidor (para falhas de lógica ou código não esperado).
func NewInternalError(msg string, err error) AppError {
	return &InternalError{Msg: msg, Err: err}
}

// NewDBError é um atalho para criar um InternalError específico de falhas no DB.
func NewDBError(msg string, err error) AppError {
	return NewInternalError(fmt.Sprintf("%s (DB)", msg), err)
}

// --- Helper para o Handler (Tradução Final) ---

// MapToHTTPStatus recebe um erro e o traduz para o código HTTP e corpo de resposta.
// Erros embrulhados com %w são desembrulhados até o primeiro AppError da cadeia.
func MapToHTTPStatus(err error) (int, string, string) {
	for e := err; e != nil; e = unwrap(e) {
		if appErr, ok := e.(AppError); ok {
			if appErr.HTTPStatus() == http.StatusInternalServerError {
				// Não vazamos detalhes do driver para o cliente.
				return appErr.HTTPStatus(), appErr.Category(), "Ocorreu um erro interno no servidor."
			}
			return appErr.HTTPStatus(), appErr.Category(), appErr.Error()
		}
	}

	return http.StatusInternalServerError, "UNKNOWN_ERROR", "Ocorreu um erro inesperado."
}

func unwrap(err error) error {
	u, ok := err.(interface{ Unwrap() error })
	if !ok {
		return nil
	}
	return u.Unwrap()
}
