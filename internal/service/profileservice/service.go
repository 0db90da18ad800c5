package profileservice

import (
	"context"
	"errors"
	"strings"

	"recicleme/internal/domain"
	apperror "recicleme/internal/errors"
	"recicleme/internal/pkg/logger"
)

// ProfileRepository é o contrato da persistência de perfis.
type ProfileRepository interface {
	FindByUserID(ctx context.Context, userID string) (domain.Profile, error)
	Upsert(ctx context.Context, p domain.Profile) (domain.Profile, error)
}

// AccountReader busca a conta dona do perfil.
type AccountReader interface {
	FindByID(ctx context.Context, id string) (domain.User, error)
}

// PointsReader soma os pontos do usuário.
type PointsReader interface {
	SumPointsByUser(ctx context.Context, userID string) (int64, error)
}

// Service lê e atualiza o perfil do usuário autenticado.
type Service struct {
	profiles ProfileRepository
	accounts AccountReader
	points   PointsReader
	logger   logger.Logger
}

// NewService cria o serviço de perfis.
func NewService(profiles ProfileRepository, accounts AccountReader, points PointsReader, logger logger.Logger) *Service {
	return &Service{profiles: profiles, accounts: accounts, points: points, logger: logger}
}

// Get devolve o perfil com o total de pontos. Sem perfil gravado, devolve um
// perfil vazio com o email da conta.
func (s *Service) Get(ctx context.Context, userID string) (domain.ProfileView, error) {
	profile, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		var notFoundErr *apperror.NotFoundError
		if !errors.As(err, &notFoundErr) {
			return domain.ProfileView{}, err
		}
		account, err := s.accounts.FindByID(ctx, userID)
		if err != nil {
			return domain.ProfileView{}, err
		}
		profile = domain.Profile{UserID: userID, Email: account.Email}
	}

	total, err := s.points.SumPointsByUser(ctx, userID)
	if err != nil {
		return domain.ProfileView{}, err
	}

	return domain.ProfileView{Profile: profile, TotalPontos: total}, nil
}

// Update grava os campos editáveis. O email é sempre copiado da conta.
// Campos vazios são gravados como vieram, inclusive o nome.
func (s *Service) Update(ctx context.Context, userID string, upd domain.ProfileUpdate) (domain.ProfileView, error) {
	account, err := s.accounts.FindByID(ctx, userID)
	if err != nil {
		return domain.ProfileView{}, err
	}

	saved, err := s.profiles.Upsert(ctx, domain.Profile{
		UserID:    userID,
		Nome:      strings.TrimSpace(upd.Nome),
		Email:     account.Email,
		Telefone:  strings.TrimSpace(upd.Telefone),
		Endereco:  strings.TrimSpace(upd.Endereco),
		AvatarURL: strings.TrimSpace(upd.AvatarURL),
	})
	if err != nil {
		return domain.ProfileView{}, err
	}

	total, err := s.points.SumPointsByUser(ctx, userID)
	if err != nil {
		return domain.ProfileView{}, err
	}

	s.logger.Info("Perfil atualizado com sucesso.", map[string]interface{}{"user_id": userID})
	return domain.ProfileView{Profile: saved, TotalPontos: total}, nil
}
