package userservice_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"recicleme/internal/domain"
	apperror "recicleme/internal/errors"
	"recicleme/internal/pkg/logger"
	"recicleme/internal/service/userservice"
)

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Save(ctx context.Context, user domain.User) (domain.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

type MockProfileWriter struct{ mock.Mock }

func (m *MockProfileWriter) Upsert(ctx context.Context, p domain.Profile) (domain.Profile, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(domain.Profile), args.Error(1)
}

type MockTokenService struct{ mock.Mock }

func (m *MockTokenService) GenerateToken(userID string, email string) (string, error) {
	args := m.Called(userID, email)
	return args.String(0), args.Error(1)
}

func newService() (*userservice.UserService, *MockUserRepository, *MockProfileWriter, *MockTokenService) {
	repo, profiles, tokens := new(MockUserRepository), new(MockProfileWriter), new(MockTokenService)
	return userservice.NewService(repo, profiles, tokens, logger.NewNopLogger()), repo, profiles, tokens
}

func validRegistration() domain.UserRegistration {
	return domain.UserRegistration{
		Nome:           "Maria",
		Email:          " Maria@Exemplo.com ",
		Senha:          "segredo",
		ConfirmarSenha: "segredo",
	}
}

func TestRegister_Success(t *testing.T) {
	svc, repo, profiles, _ := newService()

	repo.On("Save", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == "maria@exemplo.com" &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("segredo")) == nil
	})).Return(domain.User{ID: "u-1", Email: "maria@exemplo.com"}, nil)
	profiles.On("Upsert", mock.Anything, domain.Profile{UserID: "u-1", Nome: "Maria", Email: "maria@exemplo.com"}).
		Return(domain.Profile{}, nil)

	user, err := svc.Register(context.Background(), validRegistration())

	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)
	repo.AssertExpectations(t)
	profiles.AssertExpectations(t)
}

func TestRegister_ProfileFailureKeepsAccount(t *testing.T) {
	svc, repo, profiles, _ := newService()
	repo.On("Save", mock.Anything, mock.Anything).Return(domain.User{ID: "u-1", Email: "maria@exemplo.com"}, nil)
	profiles.On("Upsert", mock.Anything, mock.Anything).Return(domain.Profile{}, errors.New("fk"))

	user, err := svc.Register(context.Background(), validRegistration())

	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)
}

func TestRegister_Validation(t *testing.T) {
	cases := map[string]func(r *domain.UserRegistration){
		"campo vazio":       func(r *domain.UserRegistration) { r.Nome = "" },
		"email inválido":    func(r *domain.UserRegistration) { r.Email = "maria" },
		"senhas diferentes": func(r *domain.UserRegistration) { r.ConfirmarSenha = "outra1" },
		"senha curta":       func(r *domain.UserRegistration) { r.Senha, r.ConfirmarSenha = "abc", "abc" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			svc, repo, _, _ := newService()
			reg := validRegistration()
			mutate(&reg)

			_, err := svc.Register(context.Background(), reg)

			assert.IsType(t, &apperror.ValidationError{}, err)
			repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, repo, profiles, _ := newService()
	repo.On("Save", mock.Anything, mock.Anything).Return(domain.User{}, apperror.NewConflictError("email em uso"))

	_, err := svc.Register(context.Background(), validRegistration())

	assert.IsType(t, &apperror.ConflictError{}, err)
	profiles.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestLogin_Success(t *testing.T) {
	svc, repo, _, tokens := newService()
	hash, _ := bcrypt.GenerateFromPassword([]byte("segredo"), bcrypt.MinCost)
	repo.On("FindByEmail", mock.Anything, "maria@exemplo.com").
		Return(domain.User{ID: "u-1", Email: "maria@exemplo.com", PasswordHash: string(hash)}, nil)
	tokens.On("GenerateToken", "u-1", "maria@exemplo.com").Return("jwt", nil)

	tok, err := svc.Login(context.Background(), "maria@exemplo.com", "segredo")

	require.NoError(t, err)
	assert.Equal(t, "jwt", tok)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, repo, _, tokens := newService()
	hash, _ := bcrypt.GenerateFromPassword([]byte("segredo"), bcrypt.MinCost)
	repo.On("FindByEmail", mock.Anything, "maria@exemplo.com").
		Return(domain.User{ID: "u-1", PasswordHash: string(hash)}, nil)

	_, err := svc.Login(context.Background(), "maria@exemplo.com", "errada")

	assert.IsType(t, &apperror.UnauthorizedError{}, err)
	tokens.AssertNotCalled(t, "GenerateToken", mock.Anything, mock.Anything)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, repo, _, _ := newService()
	repo.On("FindByEmail", mock.Anything, "x@y.z").Return(domain.User{}, apperror.NewNotFoundError("usuário"))

	_, err := svc.Login(context.Background(), "x@y.z", "segredo")

	assert.IsType(t, &apperror.UnauthorizedError{}, err)
}

func TestLogin_MissingFields(t *testing.T) {
	svc, _, _, _ := newService()

	_, err := svc.Login(context.Background(), "", "")

	assert.IsType(t, &apperror.ValidationError{}, err)
}
