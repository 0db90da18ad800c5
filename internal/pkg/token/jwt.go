package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "Recicle.me-API"

// CustomClaims carrega apenas a identidade do usuário. Papéis (admin) não vão no
// token: são consultados no banco a cada operação administrativa.
type CustomClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Service emite e valida JWTs HS256.
type Service struct {
	secretKey []byte
	expiry    time.Duration
	now       func() time.Time
}

// NewService cria uma nova instância do serviço Token.
func NewService(secretKey string, expiry time.Duration) *Service {
	return &Service{
		secretKey: []byte(secretKey),
		expiry:    expiry,
		now:       time.Now,
	}
}

// GenerateToken cria um novo JWT assinado contendo o ID e o email do usuário.
func (s *Service) GenerateToken(userID string, email string) (string, error) {
	now := s.now()
	claims := CustomClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   userID,
		},
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("falha ao assinar o token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken valida o token string e retorna as claims se for válido.
func (s *Service) ValidateToken(tokenString string) (*CustomClaims, error) {
	claims := &CustomClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	}, jwt.WithIssuer(issuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, fmt.Errorf("token inválido: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("token não é válido")
	}
	if claims.UserID == "" {
		return nil, errors.New("token sem identificação de usuário")
	}

	return claims, nil
}
