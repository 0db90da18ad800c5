package statsrepo

import (
	"context"
	"database/sql"
	"time"

	"recicleme/internal/domain"
	apperror "recicleme/internal/errors"
	"recicleme/internal/pkg/logger"
)

// StatsRepository executa as agregações do painel administrativo.
// Cada número vem de uma consulta independente e nada é cacheado.
type StatsRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewStatsRepository cria uma nova instância do StatsRepository.
func NewStatsRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *StatsRepository {
	return &StatsRepository{DB: db, DBTimeout: dbTimeout, logger: logger}
}

var statsQueries = []struct {
	name  string
	query string
}{
	{"total_users", `SELECT COUNT(*) FROM users`},
	{"total_collections", `SELECT COUNT(*) FROM coletas`},
	{"total_points_distributed", `SELECT COALESCE(SUM(pontos_ganhos), 0) FROM coletas`},
	{"total_categories", `SELECT COUNT(*) FROM categorias`},
}

// GetStats devolve os totais da plataforma. Tabelas vazias resultam em zeros.
func (r *StatsRepository) GetStats(ctx context.Context) (domain.Stats, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	values := make([]int64, len(statsQueries))
	for i, q := range statsQueries {
		if err := r.DB.QueryRowContext(ctxTimeout, q.query).Scan(&values[i]); err != nil {
			r.logger.Error("Falha ao calcular estatística "+q.name+".", err)
			return domain.Stats{}, apperror.NewDBError("falha ao calcular "+q.name, err)
		}
	}

	return domain.Stats{
		TotalUsers:             values[0],
		TotalCollections:       values[1],
		TotalPointsDistributed: values[2],
		TotalCategories:        values[3],
	}, nil
}
