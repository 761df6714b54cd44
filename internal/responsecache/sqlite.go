package responsecache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// sqliteBackend stores cache entries in SQLite.
type sqliteBackend struct {
	db *sql.DB
}

// newSQLiteBackend creates the response_cache table if needed.
func newSQLiteBackend(db *sql.DB) (*sqliteBackend, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is required")
	}

	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS response_cache (
			cache_key TEXT NOT NULL,
			model TEXT NOT NULL,
			user_input TEXT,
			response_json TEXT NOT NULL,
			created_at INTEGER NOT NULL,
			updated_at INTEGER NOT NULL,
			PRIMARY KEY (cache_key, model)
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to create response_cache table: %w", err)
	}

	if _, err := db.Exec("CREATE INDEX IF NOT EXISTS idx_response_cache_model ON response_cache(model)"); err != nil {
		return nil, fmt.Errorf("failed to create response_cache model index: %w", err)
	}

	return &sqliteBackend{db: db}, nil
}

func (b *sqliteBackend) GetEntry(ctx context.Context, key, model string) (*Entry, error) {
	entry := &Entry{CacheKey: key, Model: model}
	var (
		userInput          sql.NullString
		response           string
		createdAt, updated int64
	)
	err := b.db.QueryRowContext(ctx, `
		SELECT user_input, response_json, created_at, updated_at
		FROM response_cache
		WHERE cache_key = ? AND model = ?
	`, key, model).Scan(&userInput, &response, &createdAt, &updated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query cache entry: %w", err)
	}
	if userInput.Valid {
		entry.UserInput = json.RawMessage(userInput.String)
	}
	entry.Response = json.RawMessage(response)
	entry.CreatedAt = time.Unix(createdAt, 0).UTC()
	entry.UpdatedAt = time.Unix(updated, 0).UTC()
	return entry, nil
}

// Set upserts with the same conflict rule as the PostgreSQL backend:
// response_json is replaced, user_input keeps its first non-null value.
func (b *sqliteBackend) Set(ctx context.Context, key, model string, response, userInput json.RawMessage) error {
	var input interface{}
	if userInput != nil {
		input = string(userInput)
	}
	now := time.Now().Unix()
	_, err := b.db.ExecContext(ctx, `
		INSERT INTO response_cache (cache_key, model, user_input, response_json, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (cache_key, model)
		DO UPDATE SET
			user_input = COALESCE(response_cache.user_input, excluded.user_input),
			response_json = excluded.response_json,
			updated_at = excluded.updated_at
	`, key, model, input, string(response), now, now)
	if err != nil {
		return fmt.Errorf("upsert cache entry: %w", err)
	}
	return nil
}

func (b *sqliteBackend) Backfill(ctx context.Context, key, model string, userInput json.RawMessage) (bool, error) {
	res, err := b.db.ExecContext(ctx, `
		UPDATE response_cache
		SET user_input = ?,
			updated_at = ?
		WHERE cache_key = ?
		  AND model = ?
		  AND user_input IS NULL
	`, string(userInput), time.Now().Unix(), key, model)
	if err != nil {
		return false, fmt.Errorf("backfill user_input: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("backfill rows affected: %w", err)
	}
	return n > 0, nil
}

func (b *sqliteBackend) Delete(ctx context.Context, key, model string) (bool, error) {
	res, err := b.db.ExecContext(ctx, "DELETE FROM response_cache WHERE cache_key = ? AND model = ?", key, model)
	if err != nil {
		return false, fmt.Errorf("delete cache entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete rows affected: %w", err)
	}
	return n > 0, nil
}

func (b *sqliteBackend) Clear(ctx context.Context, model string) (int64, error) {
	var (
		res sql.Result
		err error
	)
	if model != "" {
		res, err = b.db.ExecContext(ctx, "DELETE FROM response_cache WHERE model = ?", model)
	} else {
		res, err = b.db.ExecContext(ctx, "DELETE FROM response_cache")
	}
	if err != nil {
		return 0, fmt.Errorf("clear cache: %w", err)
	}
	return res.RowsAffected()
}

func (b *sqliteBackend) Stats(ctx context.Context) (Stats, error) {
	var (
		stats          Stats
		oldest, newest sql.NullInt64
		sizeBytes      int64
	)
	err := b.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COUNT(DISTINCT model),
			MIN(created_at),
			MAX(created_at),
			COALESCE(SUM(LENGTH(response_json)), 0)
		FROM response_cache
	`).Scan(&stats.TotalEntries, &stats.UniqueModels, &oldest, &newest, &sizeBytes)
	if err != nil {
		return Stats{}, fmt.Errorf("query cache stats: %w", err)
	}
	if oldest.Valid {
		t := time.Unix(oldest.Int64, 0).UTC()
		stats.OldestEntry = &t
	}
	if newest.Valid {
		t := time.Unix(newest.Int64, 0).UTC()
		stats.NewestEntry = &t
	}
	if sizeBytes > 0 {
		stats.ApproxSize = humanize.Bytes(uint64(sizeBytes))
	}
	return stats, nil
}

func (b *sqliteBackend) Ping(ctx context.Context) error {
	return b.db.PingContext(ctx)
}

// Close is a no-op: the connection is owned by the storage layer.
func (b *sqliteBackend) Close() error {
	return nil
}
