package settingsrepo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"recicleme/internal/domain"
	apperror "recicleme/internal/errors"
	"recicleme/internal/pkg/cache"
	"recicleme/internal/pkg/logger"
)

// settingsCacheKey guarda a lista completa de configurações.
const settingsCacheKey = "platform_settings:all"

// SettingsRepository acessa platform_settings com cache-aside no Redis.
// Toda escrita invalida a chave do cache.
type SettingsRepository struct {
	DB           *sql.DB
	Cache        cache.Client
	DBTimeout    time.Duration
	CacheTimeout time.Duration
	logger       logger.Logger
}

// NewSettingsRepository cria o repositório. cacheClient pode ser nil (sem cache).
func NewSettingsRepository(db *sql.DB, cacheClient cache.Client, dbTimeout, cacheTimeout time.Duration, logger logger.Logger) *SettingsRepository {
	return &SettingsRepository{
		DB:           db,
		Cache:        cacheClient,
		DBTimeout:    dbTimeout,
		CacheTimeout: cacheTimeout,
		logger:       logger,
	}
}

// List devolve todas as configurações ordenadas pela chave.
func (r *SettingsRepository) List(ctx context.Context) ([]domain.PlatformSetting, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	// 1. Cache
	if r.Cache != nil {
		cached, err := r.Cache.Get(ctxTimeout, settingsCacheKey)
		if err == nil {
			var settings []domain.PlatformSetting
			if json.Unmarshal([]byte(cached), &settings) == nil {
				return settings, nil
			}
			r.logger.Warn("Cache de configurações corrompido, consultando o DB.", nil)
		} else if err != cache.ErrCacheMiss {
			r.logger.Warn("Falha ao ler configurações do cache.", map[string]interface{}{"error": err.Error()})
		}
	}

	// 2. Banco de dados
	rows, err := r.DB.QueryContext(ctxTimeout,
		`SELECT key, value, description, updated_by, updated_at FROM platform_settings ORDER BY key`)
	if err != nil {
		r.logger.Error("Falha ao listar configurações no DB.", err)
		return nil, apperror.NewDBError("falha ao listar configurações", err)
	}
	defer rows.Close()

	settings := make([]domain.PlatformSetting, 0)
	for rows.Next() {
		s, err := scanSetting(rows)
		if err != nil {
			return nil, apperror.NewDBError("falha ao ler configuração", err)
		}
		settings = append(settings, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDBError("falha ao iterar configurações", err)
	}

	// 3. Popula o cache
	if r.Cache != nil {
		if data, err := json.Marshal(settings); err == nil {
			if err := r.Cache.Set(ctxTimeout, settingsCacheKey, data, r.CacheTimeout); err != nil {
				r.logger.Warn("Falha ao gravar configurações no cache.", map[string]interface{}{"error": err.Error()})
			}
		}
	}

	return settings, nil
}

// Get busca uma configuração pela chave.
func (r *SettingsRepository) Get(ctx context.Context, key domain.SettingKey) (domain.PlatformSetting, error) {
	settings, err := r.List(ctx)
	if err != nil {
		return domain.PlatformSetting{}, err
	}
	for _, s := range settings {
		if s.Key == key {
			return s, nil
		}
	}
	return domain.PlatformSetting{}, apperror.NewNotFoundError(fmt.Sprintf("Configuração '%s' não encontrada", key))
}

// Update grava o valor já normalizado. Chave inexistente resulta em NotFound.
func (r *SettingsRepository) Update(ctx context.Context, key domain.SettingKey, value, actor string) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	res, err := r.DB.ExecContext(ctxTimeout,
		`UPDATE platform_settings SET value = $2, updated_by = $3, updated_at = NOW() WHERE key = $1`,
		key, value, actor)
	if err != nil {
		r.logger.Error("Falha ao atualizar configuração no DB.", err)
		return apperror.NewDBError("falha ao atualizar configuração", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return apperror.NewDBError("falha ao verificar atualização da configuração", err)
	}
	if affected == 0 {
		return apperror.NewNotFoundError(fmt.Sprintf("Configuração '%s' não encontrada", key))
	}

	r.invalidate(ctxTimeout)
	return nil
}

// Toggle inverte um valor booleano em um único UPDATE e devolve o novo estado.
// Valores diferentes de 'true' passam a 'true'.
func (r *SettingsRepository) Toggle(ctx context.Context, key domain.SettingKey, actor string) (bool, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var value string
	err := r.DB.QueryRowContext(ctxTimeout,
		`UPDATE platform_settings
		SET value = CASE WHEN value = 'true' THEN 'false' ELSE 'true' END,
			updated_by = $2, updated_at = NOW()
		WHERE key = $1
		RETURNING value`,
		key, actor).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, apperror.NewNotFoundError(fmt.Sprintf("Configuração '%s' não encontrada", key))
		}
		r.logger.Error("Falha ao alternar configuração no DB.", err)
		return false, apperror.NewDBError("falha ao alternar configuração", err)
	}

	r.invalidate(ctxTimeout)
	return value == "true", nil
}

func (r *SettingsRepository) invalidate(ctx context.Context) {
	if r.Cache == nil {
		return
	}
	if err := r.Cache.Delete(ctx, settingsCacheKey); err != nil {
		r.logger.Warn("Falha ao invalidar cache de configurações.", map[string]interface{}{"error": err.Error()})
	}
}

func scanSetting(rows *sql.Rows) (domain.PlatformSetting, error) {
	var s domain.PlatformSetting
	var description, updatedBy sql.NullString
	if err := rows.Scan(&s.Key, &s.Value, &description, &updatedBy, &s.UpdatedAt); err != nil {
		return s, err
	}
	s.Description = description.String
	if updatedBy.Valid {
		s.UpdatedBy = &updatedBy.String
	}
	return s, nil
}
