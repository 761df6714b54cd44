package submission

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"profiletool/internal/storage"
)

// PostgresStore stores submissions in PostgreSQL.
type PostgresStore struct {
	pool  *pgxpool.Pool
	store storage.Storage
}

// NewPostgresStore creates the submission_store table if needed. The store
// takes ownership of the storage connection.
func NewPostgresStore(ctx context.Context, st storage.Storage) (*PostgresStore, error) {
	pool, ok := st.PostgreSQLPool().(*pgxpool.Pool)
	if !ok || pool == nil {
		return nil, fmt.Errorf("postgres pool is required")
	}

	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS submission_store (
			hash_key TEXT PRIMARY KEY,
			payload JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to create submission_store table: %w", err)
	}

	return &PostgresStore{pool: pool, store: st}, nil
}

// Put upserts by hash, replacing the payload in place on conflict.
func (s *PostgresStore) Put(ctx context.Context, payload map[string]interface{}) (string, error) {
	hash, raw, err := hashPayload(payload)
	if err != nil {
		return "", err
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO submission_store (hash_key, payload)
		VALUES ($1, $2::jsonb)
		ON CONFLICT (hash_key) DO UPDATE SET
			payload = EXCLUDED.payload
	`, hash, []byte(raw))
	if err != nil {
		return "", fmt.Errorf("store submission: %w", err)
	}
	return hash, nil
}

func (s *PostgresStore) Get(ctx context.Context, hashKey string) (*Record, error) {
	rec := &Record{HashKey: hashKey}
	var (
		payload   []byte
		createdAt time.Time
	)
	err := s.pool.QueryRow(ctx, `
		SELECT payload, created_at
		FROM submission_store
		WHERE hash_key = $1
	`, hashKey).Scan(&payload, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query submission: %w", err)
	}
	rec.Payload = payload
	rec.CreatedAt = createdAt
	return rec, nil
}

func (s *PostgresStore) Close() error {
	if s.store != nil {
		return s.store.Close()
	}
	return nil
}
