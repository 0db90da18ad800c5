package userrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"recicleme/internal/domain"
	apperror "recicleme/internal/errors"
	"recicleme/internal/pkg/logger"
)

// uniqueViolation é o código SQLSTATE do PostgreSQL para chave única duplicada.
const uniqueViolation = "23505"

// UserRepository persiste contas e papéis.
type UserRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewUserRepository cria uma nova instância do UserRepository, injetando o DB.
func NewUserRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *UserRepository {
	return &UserRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    logger,
	}
}

// Save insere um novo usuário no banco de dados.
func (r *UserRepository) Save(ctx context.Context, user domain.User) (domain.User, error) {
	r.logger.Debug("Iniciando Save de usuário no repositório.", map[string]interface{}{"email": user.Email})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	user.ID = uuid.NewString()
	user.CreatedAt = time.Now().UTC()
	user.UpdatedAt = user.CreatedAt

	_, err := r.DB.ExecContext(ctxTimeout,
		`INSERT INTO users (id, email, password_hash, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			r.logger.Info("Email já cadastrado.", map[string]interface{}{"email": user.Email})
			return domain.User{}, apperror.NewConflictError(fmt.Sprintf("O email '%s' já está em uso.", user.Email))
		}
		r.logger.Error("Falha ao inserir usuário no DB.", err)
		return domain.User{}, apperror.NewDBError("falha ao inserir usuário", err)
	}

	r.logger.Info("Usuário salvo com sucesso no repositório.", map[string]interface{}{"user_id": user.ID})
	return user, nil
}

// FindByEmail busca um usuário pelo endereço de e-mail.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.findOne(ctx, `SELECT id, email, password_hash, created_at, updated_at FROM users WHERE email = $1`, email)
}

// FindByID busca um usuário pelo ID.
func (r *UserRepository) FindByID(ctx context.Context, id string) (domain.User, error) {
	return r.findOne(ctx, `SELECT id, email, password_hash, created_at, updated_at FROM users WHERE id = $1`, id)
}

func (r *UserRepository) findOne(ctx context.Context, query string, arg string) (domain.User, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var user domain.User
	err := r.DB.QueryRowContext(ctxTimeout, query, arg).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, apperror.NewNotFoundError(fmt.Sprintf("Usuário '%s' não encontrado", arg))
		}
		r.logger.Error("Falha ao buscar usuário no DB.", err)
		return domain.User{}, apperror.NewDBError("falha ao buscar usuário", err)
	}
	return user, nil
}

// HasRole consulta user_roles. Não há cache: cada chamada reflete o estado atual.
func (r *UserRepository) HasRole(ctx context.Context, userID string, role domain.UserRole) (bool, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var exists bool
	err := r.DB.QueryRowContext(ctxTimeout,
		`SELECT EXISTS (SELECT 1 FROM user_roles WHERE user_id = $1 AND role = $2)`,
		userID, role).Scan(&exists)
	if err != nil {
		r.logger.Error("Falha ao consultar papel do usuário.", err)
		return false, apperror.NewDBError("falha ao consultar papel do usuário", err)
	}
	return exists, nil
}
