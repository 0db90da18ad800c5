package settingsservice

import (
	"context"
	"errors"
	"fmt"

	"recicleme/internal/domain"
	apperror "recicleme/internal/errors"
	"recicleme/internal/pkg/logger"
)

// SettingsRepository define o que o serviço espera da persistência de platform_settings.
type SettingsRepository interface {
	List(ctx context.Context) ([]domain.PlatformSetting, error)
	Get(ctx context.Context, key domain.SettingKey) (domain.PlatformSetting, error)
	Update(ctx context.Context, key domain.SettingKey, value, actor string) error
	Toggle(ctx context.Context, key domain.SettingKey, actor string) (bool, error)
}

// Service aplica a validação tipada sobre as configurações armazenadas como texto.
type Service struct {
	repo   SettingsRepository
	logger logger.Logger
}

// NewService cria o serviço de configurações.
func NewService(repo SettingsRepository, logger logger.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List devolve as configurações ordenadas pela chave.
func (s *Service) List(ctx context.Context) ([]domain.PlatformSetting, error) {
	return s.repo.List(ctx)
}

// Flags devolve a visão tipada das configurações.
func (s *Service) Flags(ctx context.Context) (domain.FeatureFlags, error) {
	settings, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("Falha ao carregar feature flags.", err)
		return domain.FeatureFlags{}, err
	}
	return domain.FlagsFromSettings(settings), nil
}

// Get devolve o valor bruto de uma chave.
func (s *Service) Get(ctx context.Context, key domain.SettingKey) (string, error) {
	setting, err := s.repo.Get(ctx, key)
	if err != nil {
		return "", err
	}
	return setting.Value, nil
}

// Update valida e grava o valor de uma chave conhecida. Em caso de falha nada é gravado.
func (s *Service) Update(ctx context.Context, key domain.SettingKey, raw, actor string) error {
	if key == "" {
		return apperror.NewValidationError("O campo 'key' é obrigatório.")
	}

	value, known, err := domain.NormalizeSettingValue(key, raw)
	if !known {
		return apperror.NewNotFoundError(fmt.Sprintf("Configuração '%s' não encontrada", key))
	}
	if err != nil {
		var invalid *domain.InvalidSettingError
		if errors.As(err, &invalid) {
			s.logger.Warn("Valor inválido para configuração.", map[string]interface{}{"key": key, "value": raw})
			return apperror.NewValidationError(invalid.Error())
		}
		return apperror.NewInternalError("Falha ao validar configuração.", err)
	}

	if err := s.repo.Update(ctx, key, value, actor); err != nil {
		return err
	}

	s.logger.Info("Configuração atualizada.", map[string]interface{}{"key": key, "value": value, "updated_by": actor})
	return nil
}

// Toggle inverte uma configuração booleana e devolve o novo estado.
func (s *Service) Toggle(ctx context.Context, key domain.SettingKey, actor string) (bool, error) {
	if key == "" {
		return false, apperror.NewValidationError("O campo 'feature' é obrigatório.")
	}

	kind, known := key.Kind()
	if !known {
		return false, apperror.NewNotFoundError(fmt.Sprintf("Funcionalidade '%s' não encontrada", key))
	}
	if kind != domain.KindBool {
		return false, apperror.NewValidationError(fmt.Sprintf("A configuração '%s' não é booleana.", key))
	}

	enabled, err := s.repo.Toggle(ctx, key, actor)
	if err != nil {
		return false, err
	}

	s.logger.Info("Funcionalidade alternada.", map[string]interface{}{"feature": key, "enabled": enabled, "updated_by": actor})
	return enabled, nil
}
