package profilerepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"recicleme/internal/domain"
	apperror "recicleme/internal/errors"
	"recicleme/internal/pkg/logger"
)

const profileColumns = `user_id, nome, email, telefone, endereco, avatar_url, created_at, updated_at`

// ProfileRepository persiste o perfil 1:1 de cada conta.
type ProfileRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewProfileRepository cria uma nova instância do ProfileRepository.
func NewProfileRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *ProfileRepository {
	return &ProfileRepository{DB: db, DBTimeout: dbTimeout, logger: logger}
}

// FindByUserID busca o perfil da conta.
func (r *ProfileRepository) FindByUserID(ctx context.Context, userID string) (domain.Profile, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	p, err := scanProfile(r.DB.QueryRowContext(ctxTimeout,
		`SELECT `+profileColumns+` FROM profiles WHERE user_id = $1`, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Profile{}, apperror.NewNotFoundError(fmt.Sprintf("Perfil do usuário '%s' não encontrado", userID))
		}
		r.logger.Error("Falha ao buscar perfil no DB.", err)
		return domain.Profile{}, apperror.NewDBError("falha ao buscar perfil", err)
	}
	return p, nil
}

// Upsert cria o perfil ou atualiza os campos editáveis. O email nunca é
// alterado por aqui depois de gravado.
func (r *ProfileRepository) Upsert(ctx context.Context, p domain.Profile) (domain.Profile, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `INSERT INTO profiles (user_id, nome, email, telefone, endereco, avatar_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			nome = EXCLUDED.nome,
			telefone = EXCLUDED.telefone,
			endereco = EXCLUDED.endereco,
			avatar_url = EXCLUDED.avatar_url,
			updated_at = NOW()
		RETURNING ` + profileColumns

	saved, err := scanProfile(r.DB.QueryRowContext(ctxTimeout, query,
		p.UserID, p.Nome, p.Email, p.Telefone, p.Endereco, p.AvatarURL))
	if err != nil {
		r.logger.Error("Falha ao gravar perfil no DB.", err)
		return domain.Profile{}, apperror.NewDBError("falha ao gravar perfil", err)
	}

	r.logger.Info("Perfil gravado.", map[string]interface{}{"user_id": p.UserID})
	return saved, nil
}

func scanProfile(row *sql.Row) (domain.Profile, error) {
	var p domain.Profile
	var nome, email, telefone, endereco, avatar sql.NullString
	err := row.Scan(&p.UserID, &nome, &email, &telefone, &endereco, &avatar, &p.CreatedAt, &p.UpdatedAt)
	p.Nome = nome.String
	p.Email = email.String
	p.Telefone = telefone.String
	p.Endereco = endereco.String
	p.AvatarURL = avatar.String
	return p, err
}
