package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// postgresStorage implements Storage for PostgreSQL
type postgresStorage struct {
	pool *pgxpool.Pool
}

// NewPostgreSQL creates a new PostgreSQL storage connection.
// It creates a bounded connection pool; callers block on acquire when the
// pool is exhausted (pgxpool's default FIFO wait).
func NewPostgreSQL(ctx context.Context, cfg PostgreSQLConfig) (Storage, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("PostgreSQL URL is required")
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse PostgreSQL URL: %w", err)
	}

	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = int32(cfg.MaxConns)
	} else {
		poolCfg.MaxConns = 10 // default
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
	}

	// Trivial round-trip probe before handing the pool out
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping PostgreSQL: %w", err)
	}

	return &postgresStorage{pool: pool}, nil
}

func (s *postgresStorage) Type() string {
	return TypePostgreSQL
}

func (s *postgresStorage) SQLiteDB() *sql.DB {
	return nil
}

func (s *postgresStorage) PostgreSQLPool() interface{} {
	return s.pool
}

func (s *postgresStorage) Close() error {
	if s.pool != nil {
		s.pool.Close()
	}
	return nil
}

// Pool returns the underlying pgxpool.Pool for direct access
func (s *postgresStorage) Pool() *pgxpool.Pool {
	return s.pool
}
