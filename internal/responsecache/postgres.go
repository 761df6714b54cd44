package responsecache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"profiletool/internal/storage"
)

// postgresBackend stores cache entries in PostgreSQL.
type postgresBackend struct {
	pool *pgxpool.Pool
}

// newPostgresBackend creates the response_cache table if needed.
func newPostgresBackend(ctx context.Context, st storage.Storage) (*postgresBackend, error) {
	pool, ok := st.PostgreSQLPool().(*pgxpool.Pool)
	if !ok || pool == nil {
		return nil, fmt.Errorf("postgres pool is required")
	}

	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS response_cache (
			cache_key TEXT NOT NULL,
			model TEXT NOT NULL,
			user_input JSONB,
			response_json JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (cache_key, model)
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to create response_cache table: %w", err)
	}

	if _, err := pool.Exec(ctx, "CREATE INDEX IF NOT EXISTS idx_response_cache_model ON response_cache(model)"); err != nil {
		return nil, fmt.Errorf("failed to create response_cache model index: %w", err)
	}

	return &postgresBackend{pool: pool}, nil
}

func (b *postgresBackend) GetEntry(ctx context.Context, key, model string) (*Entry, error) {
	entry := &Entry{CacheKey: key, Model: model}
	var userInput, response []byte
	err := b.pool.QueryRow(ctx, `
		SELECT user_input, response_json, created_at, updated_at
		FROM response_cache
		WHERE cache_key = $1 AND model = $2
	`, key, model).Scan(&userInput, &response, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query cache entry: %w", err)
	}
	entry.UserInput = userInput
	entry.Response = response
	return entry, nil
}

// Set upserts atomically: last writer wins on response_json; user_input keeps
// its first non-null value and is never clobbered once set.
func (b *postgresBackend) Set(ctx context.Context, key, model string, response, userInput json.RawMessage) error {
	var input interface{}
	if userInput != nil {
		input = []byte(userInput)
	}
	_, err := b.pool.Exec(ctx, `
		INSERT INTO response_cache (cache_key, model, user_input, response_json)
		VALUES ($1, $2, $3::jsonb, $4::jsonb)
		ON CONFLICT (cache_key, model)
		DO UPDATE SET
			user_input = COALESCE(response_cache.user_input, EXCLUDED.user_input),
			response_json = EXCLUDED.response_json,
			updated_at = CURRENT_TIMESTAMP
	`, key, model, input, response)
	if err != nil {
		return fmt.Errorf("upsert cache entry: %w", err)
	}
	return nil
}

func (b *postgresBackend) Backfill(ctx context.Context, key, model string, userInput json.RawMessage) (bool, error) {
	tag, err := b.pool.Exec(ctx, `
		UPDATE response_cache
		SET user_input = $3::jsonb,
			updated_at = CURRENT_TIMESTAMP
		WHERE cache_key = $1
		  AND model = $2
		  AND user_input IS NULL
	`, key, model, userInput)
	if err != nil {
		return false, fmt.Errorf("backfill user_input: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (b *postgresBackend) Delete(ctx context.Context, key, model string) (bool, error) {
	tag, err := b.pool.Exec(ctx, "DELETE FROM response_cache WHERE cache_key = $1 AND model = $2", key, model)
	if err != nil {
		return false, fmt.Errorf("delete cache entry: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (b *postgresBackend) Clear(ctx context.Context, model string) (int64, error) {
	var (
		tag pgconn.CommandTag
		err error
	)
	if model != "" {
		tag, err = b.pool.Exec(ctx, "DELETE FROM response_cache WHERE model = $1", model)
	} else {
		tag, err = b.pool.Exec(ctx, "DELETE FROM response_cache")
	}
	if err != nil {
		return 0, fmt.Errorf("clear cache: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (b *postgresBackend) Stats(ctx context.Context) (Stats, error) {
	var (
		stats          Stats
		oldest, newest *time.Time
		sizeBytes      int64
	)
	err := b.pool.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COUNT(DISTINCT model),
			MIN(created_at),
			MAX(created_at),
			COALESCE(SUM(LENGTH(response_json::text)), 0)
		FROM response_cache
	`).Scan(&stats.TotalEntries, &stats.UniqueModels, &oldest, &newest, &sizeBytes)
	if err != nil {
		return Stats{}, fmt.Errorf("query cache stats: %w", err)
	}
	stats.OldestEntry = oldest
	stats.NewestEntry = newest
	if sizeBytes > 0 {
		stats.ApproxSize = humanize.Bytes(uint64(sizeBytes))
	}
	return stats, nil
}

func (b *postgresBackend) Ping(ctx context.Context) error {
	return b.pool.Ping(ctx)
}

// Close is a no-op: the pool is owned by the storage layer.
func (b *postgresBackend) Close() error {
	return nil
}
