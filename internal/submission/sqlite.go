package submission

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"profiletool/internal/storage"
)

// SQLiteStore stores submissions in SQLite.
type SQLiteStore struct {
	db    *sql.DB
	store storage.Storage
}

// NewSQLiteStore creates the submission_store table if needed. The store
// takes ownership of the storage connection.
func NewSQLiteStore(st storage.Storage) (*SQLiteStore, error) {
	db := st.SQLiteDB()
	if db == nil {
		return nil, fmt.Errorf("sqlite connection is required")
	}

	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS submission_store (
			hash_key TEXT PRIMARY KEY,
			payload TEXT NOT NULL,
			created_at INTEGER NOT NULL
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to create submission_store table: %w", err)
	}

	return &SQLiteStore{db: db, store: st}, nil
}

// Put upserts by hash, replacing the payload in place on conflict.
func (s *SQLiteStore) Put(ctx context.Context, payload map[string]interface{}) (string, error) {
	hash, raw, err := hashPayload(payload)
	if err != nil {
		return "", err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO submission_store (hash_key, payload, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT (hash_key) DO UPDATE SET
			payload = excluded.payload
	`, hash, string(raw), time.Now().Unix())
	if err != nil {
		return "", fmt.Errorf("store submission: %w", err)
	}
	return hash, nil
}

func (s *SQLiteStore) Get(ctx context.Context, hashKey string) (*Record, error) {
	rec := &Record{HashKey: hashKey}
	var (
		payload   string
		createdAt int64
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT payload, created_at
		FROM submission_store
		WHERE hash_key = ?
	`, hashKey).Scan(&payload, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query submission: %w", err)
	}
	rec.Payload = json.RawMessage(payload)
	rec.CreatedAt = time.Unix(createdAt, 0).UTC()
	return rec, nil
}

func (s *SQLiteStore) Close() error {
	if s.store != nil {
		return s.store.Close()
	}
	return nil
}
