package coletarepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"recicleme/internal/domain"
	apperror "recicleme/internal/errors"
	"recicleme/internal/pkg/logger"
)

const coletaColumns = `id, user_id, tipo_residuo, quantidade, unidade, ponto_coleta, endereco,
	data_coleta, status, pontos_ganhos, foto_url, created_at, updated_at`

// ColetaRepository persiste as coletas. Toda consulta por registro filtra pelo dono.
type ColetaRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewColetaRepository cria uma nova instância do ColetaRepository.
func NewColetaRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *ColetaRepository {
	return &ColetaRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    logger,
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanColeta(row rowScanner) (domain.Coleta, error) {
	var c domain.Coleta
	var foto sql.NullString
	err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.TipoResiduo,
		&c.Quantidade,
		&c.Unidade,
		&c.PontoColeta,
		&c.Endereco,
		&c.DataColeta,
		&c.Status,
		&c.PontosGanhos,
		&foto,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	c.FotoURL = foto.String
	return c, err
}

// Save insere uma coleta nova. ID e timestamps são gerados aqui.
func (r *ColetaRepository) Save(ctx context.Context, c domain.Coleta) (domain.Coleta, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	c.ID = uuid.NewString()
	c.CreatedAt = time.Now().UTC()
	c.UpdatedAt = c.CreatedAt

	const query = `INSERT INTO coletas (` + coletaColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.DB.ExecContext(ctxTimeout, query,
		c.ID,
		c.UserID,
		c.TipoResiduo,
		c.Quantidade,
		c.Unidade,
		c.PontoColeta,
		c.Endereco,
		c.DataColeta,
		c.Status,
		c.PontosGanhos,
		sql.NullString{String: c.FotoURL, Valid: c.FotoURL != ""},
		c.CreatedAt,
		c.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("Falha ao inserir coleta no DB.", err)
		return domain.Coleta{}, apperror.NewDBError("falha ao inserir coleta", err)
	}

	r.logger.Debug("Coleta salva no repositório.", map[string]interface{}{"coleta_id": c.ID, "user_id": c.UserID})
	return c, nil
}

// FindByID busca uma coleta do usuário. Coletas de outros usuários resultam em NotFound.
func (r *ColetaRepository) FindByID(ctx context.Context, userID, id string) (domain.Coleta, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `SELECT ` + coletaColumns + ` FROM coletas WHERE id = $1 AND user_id = $2`

	c, err := scanColeta(r.DB.QueryRowContext(ctxTimeout, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Coleta{}, apperror.NewNotFoundError(fmt.Sprintf("Coleta com ID '%s' não encontrada", id))
		}
		r.logger.Error("Falha ao buscar coleta no DB.", err)
		return domain.Coleta{}, apperror.NewDBError("falha ao buscar coleta", err)
	}
	return c, nil
}

// ListByUser devolve as coletas do usuário, da data agendada mais recente para a mais antiga.
func (r *ColetaRepository) ListByUser(ctx context.Context, userID string) ([]domain.Coleta, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `SELECT ` + coletaColumns + ` FROM coletas WHERE user_id = $1 ORDER BY data_coleta DESC`

	rows, err := r.DB.QueryContext(ctxTimeout, query, userID)
	if err != nil {
		r.logger.Error("Falha ao listar coletas no DB.", err)
		return nil, apperror.NewDBError("falha ao listar coletas", err)
	}
	defer rows.Close()

	coletas := make([]domain.Coleta, 0)
	for rows.Next() {
		c, err := scanColeta(rows)
		if err != nil {
			return nil, apperror.NewDBError("falha ao ler coleta", err)
		}
		coletas = append(coletas, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDBError("falha ao iterar coletas", err)
	}
	return coletas, nil
}

// Complete marca a coleta como concluída gravando os pontos, em um único UPDATE
// condicionado ao dono e ao status pendente. Quando nenhuma linha é afetada, a
// coleta não existe para o usuário (NotFound) ou já foi concluída (Conflict).
func (r *ColetaRepository) Complete(ctx context.Context, userID, id string, pontos int64) (domain.Coleta, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `UPDATE coletas
		SET status = $4, pontos_ganhos = $3, updated_at = NOW()
		WHERE id = $1 AND user_id = $2 AND status = $5
		RETURNING ` + coletaColumns

	c, err := scanColeta(r.DB.QueryRowContext(ctxTimeout, query, id, userID, pontos, domain.StatusConcluido, domain.StatusPendente))
	if err == nil {
		r.logger.Info("Coleta concluída.", map[string]interface{}{"coleta_id": id, "user_id": userID, "pontos": pontos})
		return c, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		r.logger.Error("Falha ao concluir coleta no DB.", err)
		return domain.Coleta{}, apperror.NewDBError("falha ao concluir coleta", err)
	}

	var status domain.ColetaStatus
	err = r.DB.QueryRowContext(ctxTimeout, `SELECT status FROM coletas WHERE id = $1 AND user_id = $2`, id, userID).Scan(&status)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return domain.Coleta{}, apperror.NewNotFoundError(fmt.Sprintf("Coleta com ID '%s' não encontrada", id))
	case err != nil:
		return domain.Coleta{}, apperror.NewDBError("falha ao verificar status da coleta", err)
	}
	return domain.Coleta{}, apperror.NewConflictError(fmt.Sprintf("A coleta '%s' já está com status '%s'.", id, status))
}

// Delete remove a coleta do usuário (cancelamento).
func (r *ColetaRepository) Delete(ctx context.Context, userID, id string) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	res, err := r.DB.ExecContext(ctxTimeout, `DELETE FROM coletas WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		r.logger.Error("Falha ao remover coleta no DB.", err)
		return apperror.NewDBError("falha ao remover coleta", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return apperror.NewDBError("falha ao verificar remoção da coleta", err)
	}
	if affected == 0 {
		return apperror.NewNotFoundError(fmt.Sprintf("Coleta com ID '%s' não encontrada", id))
	}
	return nil
}

// CountCreatedSince conta as coletas do usuário criadas a partir de since.
func (r *ColetaRepository) CountCreatedSince(ctx context.Context, userID string, since time.Time) (int, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var n int
	err := r.DB.QueryRowContext(ctxTimeout,
		`SELECT COUNT(*) FROM coletas WHERE user_id = $1 AND created_at >= $2`, userID, since).Scan(&n)
	if err != nil {
		return 0, apperror.NewDBError("falha ao contar coletas do dia", err)
	}
	return n, nil
}

// SumPointsByUser soma os pontos ganhos pelo usuário.
func (r *ColetaRepository) SumPointsByUser(ctx context.Context, userID string) (int64, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var total int64
	err := r.DB.QueryRowContext(ctxTimeout,
		`SELECT COALESCE(SUM(pontos_ganhos), 0) FROM coletas WHERE user_id = $1`, userID).Scan(&total)
	if err != nil {
		return 0, apperror.NewDBError("falha ao somar pontos do usuário", err)
	}
	return total, nil
}
