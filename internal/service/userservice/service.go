package userservice

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"recicleme/internal/domain"
	apperror "recicleme/internal/errors"
	"recicleme/internal/pkg/logger"
)

// minPasswordLength é o tamanho mínimo da senha no cadastro.
const minPasswordLength = 6

// UserRepository é o contrato da persistência de contas.
type UserRepository interface {
	Save(ctx context.Context, user domain.User) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
}

// ProfileWriter grava o perfil criado junto com a conta.
type ProfileWriter interface {
	Upsert(ctx context.Context, p domain.Profile) (domain.Profile, error)
}

// TokenService é o contrato da camada de token (internal/pkg/token).
type TokenService interface {
	GenerateToken(userID string, email string) (string, error)
}

// UserService define o serviço de lógica de negócio para a entidade User.
type UserService struct {
	UserRepo    UserRepository
	ProfileRepo ProfileWriter
	TokenSvc    TokenService
	logger      logger.Logger
}

// NewService cria uma nova instância do UserService.
func NewService(repo UserRepository, profiles ProfileWriter, tokenSvc TokenService, logger logger.Logger) *UserService {
	return &UserService{
		UserRepo:    repo,
		ProfileRepo: profiles,
		TokenSvc:    tokenSvc,
		logger:      logger,
	}
}

// Register registra um novo usuário e, em seguida, tenta criar o perfil.
// A falha na criação do perfil é apenas registrada: a conta permanece criada.
func (s *UserService) Register(ctx context.Context, reg domain.UserRegistration) (domain.User, error) {
	reg.Nome = strings.TrimSpace(reg.Nome)
	reg.Email = strings.ToLower(strings.TrimSpace(reg.Email))

	// 1. Validação
	if reg.Nome == "" || reg.Email == "" || reg.Senha == "" || reg.ConfirmarSenha == "" {
		return domain.User{}, apperror.NewValidationError("Por favor, preencha todos os campos.")
	}
	if _, err := mail.ParseAddress(reg.Email); err != nil {
		return domain.User{}, apperror.NewValidationError("Email inválido.")
	}
	if reg.Senha != reg.ConfirmarSenha {
		return domain.User{}, apperror.NewValidationError("As senhas não coincidem.")
	}
	if len(reg.Senha) < minPasswordLength {
		return domain.User{}, apperror.NewValidationError("A senha deve ter pelo menos 6 caracteres.")
	}

	// 2. Hashing da Senha
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reg.Senha), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, apperror.NewInternalError("Falha ao gerar hash da senha.", err)
	}

	// 3. Persistência (email duplicado chega como ConflictError)
	user, err := s.UserRepo.Save(ctx, domain.User{
		Email:        reg.Email,
		PasswordHash: string(hashedPassword),
	})
	if err != nil {
		return domain.User{}, err
	}

	// 4. Perfil (best-effort)
	if _, err := s.ProfileRepo.Upsert(ctx, domain.Profile{UserID: user.ID, Nome: reg.Nome, Email: user.Email}); err != nil {
		s.logger.Error("Erro ao criar perfil; a conta foi mantida.", err)
	}

	return user, nil
}

// Login autentica um usuário, verifica a senha e gera um JWT.
func (s *UserService) Login(ctx context.Context, email string, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", apperror.NewValidationError("Por favor, preencha todos os campos.")
	}

	user, err := s.UserRepo.FindByEmail(ctx, email)
	if err != nil {
		// NotFound vira 401 para não revelar quais emails existem.
		var notFoundErr *apperror.NotFoundError
		if errors.As(err, &notFoundErr) {
			return "", apperror.NewUnauthorizedError("Email ou senha incorretos.")
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", apperror.NewUnauthorizedError("Email ou senha incorretos.")
	}

	tokenString, err := s.TokenSvc.GenerateToken(user.ID, user.Email)
	if err != nil {
		return "", apperror.NewInternalError("Falha ao gerar token de autenticação.", err)
	}

	s.logger.Info("Login realizado com sucesso.", map[string]interface{}{"user_id": user.ID})
	return tokenString, nil
}
