package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"recicleme/internal/domain"
	apperror "recicleme/internal/errors"
	"recicleme/internal/pkg/token"
)

// ContextKey é o tipo das chaves que este pacote grava no contexto.
type ContextKey int

const (
	UserClaimsKey ContextKey = iota
)

// UserClaims representa os dados do usuário extraídos do token JWT.
// O papel não está aqui: a administração consulta user_roles a cada requisição.
type UserClaims struct {
	UserID string
	Email  string
}

// TokenService define o contrato de validação necessário para o middleware.
type TokenService interface {
	ValidateToken(tokenString string) (*token.CustomClaims, error)
}

// NewAuthMiddleware valida o bearer JWT e anexa as claims ao contexto da requisição.
func NewAuthMiddleware(tokenSvc TokenService) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") || len(authHeader) == len("Bearer ") {
				WriteError(w, apperror.NewUnauthorizedError("Token de autorização ausente ou malformado."))
				return
			}

			claims, err := tokenSvc.ValidateToken(strings.TrimPrefix(authHeader, "Bearer "))
			if err != nil {
				WriteError(w, apperror.NewUnauthorizedError("Token inválido ou expirado."))
				return
			}

			ctx := context.WithValue(r.Context(), UserClaimsKey, UserClaims{
				UserID: claims.UserID,
				Email:  claims.Email,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserClaimsFromContext é uma função utilitária para extrair as claims no handler.
func GetUserClaimsFromContext(ctx context.Context) (UserClaims, bool) {
	claims, ok := ctx.Value(UserClaimsKey).(UserClaims)
	return claims, ok
}

// WithUserClaims anexa claims ao contexto (usado nos testes dos handlers).
func WithUserClaims(ctx context.Context, claims UserClaims) context.Context {
	return context.WithValue(ctx, UserClaimsKey, claims)
}

// WriteError escreve o corpo de erro padrão da API.
func WriteError(w http.ResponseWriter, err error) {
	status, category, message := apperror.MapToHTTPStatus(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(domain.ErrorResponse{
		Code:     status,
		Category: category,
		Message:  message,
		Error:    message,
	})
}
