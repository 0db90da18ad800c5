package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	// Driver pq para PostgreSQL
	_ "github.com/lib/pq"
)

// PoolConfig define os limites do pool de conexões.
type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// DefaultPoolConfig são os valores usados pelo serviço HTTP e pelo worker.
var DefaultPoolConfig = PoolConfig{
	MaxOpenConns:    25,
	MaxIdleConns:    10,
	ConnMaxLifetime: 5 * time.Minute,
	ConnMaxIdleTime: 2 * time.Minute,
}

// NewPostgresDB inicializa e configura o pool de conexões com o PostgreSQL.
func NewPostgresDB(dataSourceName string) (*sql.DB, error) {
	return NewPostgresDBWithPool(dataSourceName, DefaultPoolConfig)
}

// NewPostgresDBWithPool abre a conexão, faz o ping inicial e aplica o pool.
func NewPostgresDBWithPool(dataSourceName string, pool PoolConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("falha ao abrir a conexão com o DB: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("falha ao realizar o ping inicial no DB: %w", err)
	}

	db.SetMaxOpenConns(pool.MaxOpenConns)
	db.SetMaxIdleConns(pool.MaxIdleConns)
	db.SetConnMaxLifetime(pool.ConnMaxLifetime)
	db.SetConnMaxIdleTime(pool.ConnMaxIdleTime)

	return db, nil
}
