package adminservice

import (
	"context"

	"recicleme/internal/domain"
	apperror "recicleme/internal/errors"
	"recicleme/internal/pkg/logger"
)

// RoleChecker consulta os papéis do usuário no banco.
type RoleChecker interface {
	HasRole(ctx context.Context, userID string, role domain.UserRole) (bool, error)
}

// SettingsService é o subconjunto do settingsservice usado pela administração.
type SettingsService interface {
	List(ctx context.Context) ([]domain.PlatformSetting, error)
	Update(ctx context.Context, key domain.SettingKey, raw, actor string) error
	Toggle(ctx context.Context, key domain.SettingKey, actor string) (bool, error)
}

// StatsRepository calcula os totais da plataforma.
type StatsRepository interface {
	GetStats(ctx context.Context) (domain.Stats, error)
}

// Service expõe as operações administrativas. Toda operação verifica de novo o
// papel admin do ator no banco; nada é cacheado entre requisições.
type Service struct {
	roles    RoleChecker
	settings SettingsService
	stats    StatsRepository
	logger   logger.Logger
}

// NewService cria o serviço administrativo.
func NewService(roles RoleChecker, settings SettingsService, stats StatsRepository, logger logger.Logger) *Service {
	return &Service{roles: roles, settings: settings, stats: stats, logger: logger}
}

// Authorize falha com Unauthorized sem ator e com Forbidden sem o papel admin.
func (s *Service) Authorize(ctx context.Context, actor string) error {
	if actor == "" {
		return apperror.NewUnauthorizedError("Autenticação necessária.")
	}

	isAdmin, err := s.roles.HasRole(ctx, actor, domain.RoleAdmin)
	if err != nil {
		return err
	}
	if !isAdmin {
		s.logger.Warn("Acesso administrativo negado.", map[string]interface{}{"user_id": actor})
		return apperror.NewForbiddenError("Apenas administradores podem acessar este recurso.")
	}
	return nil
}

// ListSettings devolve as configurações ordenadas pela chave.
func (s *Service) ListSettings(ctx context.Context, actor string) ([]domain.PlatformSetting, error) {
	if err := s.Authorize(ctx, actor); err != nil {
		return nil, err
	}
	return s.settings.List(ctx)
}

// UpdateSetting grava uma configuração em nome do administrador.
func (s *Service) UpdateSetting(ctx context.Context, actor string, key domain.SettingKey, value string) error {
	if err := s.Authorize(ctx, actor); err != nil {
		return err
	}
	return s.settings.Update(ctx, key, value, actor)
}

// ToggleFeature inverte uma funcionalidade booleana e devolve o novo estado.
func (s *Service) ToggleFeature(ctx context.Context, actor string, key domain.SettingKey) (bool, error) {
	if err := s.Authorize(ctx, actor); err != nil {
		return false, err
	}
	return s.settings.Toggle(ctx, key, actor)
}

// GetStats devolve os totais da plataforma.
func (s *Service) GetStats(ctx context.Context, actor string) (domain.Stats, error) {
	if err := s.Authorize(ctx, actor); err != nil {
		return domain.Stats{}, err
	}
	return s.stats.GetStats(ctx)
}
