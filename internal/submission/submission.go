// Package submission persists raw quiz submissions keyed by a content hash
// of the submission itself. Unlike the response cache this store is not
// fail-open: a failed write surfaces to the caller, and an identical
// resubmission overwrites the stored payload in place (no history).
package submission

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"profiletool/internal/cachekey"
	"profiletool/internal/storage"
)

// ErrNotFound indicates no submission exists for a hash key.
var ErrNotFound = errors.New("submission not found")

// Record is one stored submission.
type Record struct {
	HashKey   string          `json:"hash_key"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

// Store persists submissions. Implementations must be safe for concurrent use.
type Store interface {
	// Put stores the payload under its content hash, replacing any previous
	// payload for the same hash, and returns the hash key.
	Put(ctx context.Context, payload map[string]interface{}) (string, error)
	// Get returns the stored record or ErrNotFound.
	Get(ctx context.Context, hashKey string) (*Record, error)
	Close() error
}

// Backend type constants.
const (
	BackendRedis = "redis"
)

// Config selects and configures the submission store backend.
type Config struct {
	// Backend is "postgresql", "sqlite", "memory", or "redis".
	Backend string
	// Storage configures the SQL backends; shared with the response cache
	// configuration shape.
	Storage storage.Config
	// Redis configures the redis backend.
	Redis RedisConfig
}

// New creates a submission store for the configured backend.
func New(ctx context.Context, cfg Config) (Store, error) {
	switch cfg.Backend {
	case storage.TypeMemory:
		return NewMemoryStore(), nil
	case BackendRedis:
		return NewRedisStore(cfg.Redis)
	case storage.TypeSQLite, storage.TypePostgreSQL:
		st, err := storage.New(ctx, storage.Config{
			Type:       cfg.Backend,
			SQLite:     cfg.Storage.SQLite,
			PostgreSQL: cfg.Storage.PostgreSQL,
		})
		if err != nil {
			return nil, fmt.Errorf("submission storage: %w", err)
		}
		switch cfg.Backend {
		case storage.TypeSQLite:
			return NewSQLiteStore(st)
		default:
			return NewPostgresStore(ctx, st)
		}
	default:
		return nil, fmt.Errorf("unknown submission backend: %s", cfg.Backend)
	}
}

// hashPayload fingerprints a submission with the shared canonicalization
// routine and the short digest.
func hashPayload(payload map[string]interface{}) (string, json.RawMessage, error) {
	if len(payload) == 0 {
		return "", nil, fmt.Errorf("submission payload is required")
	}
	hash, err := cachekey.SubmissionHash(payload)
	if err != nil {
		return "", nil, fmt.Errorf("hash submission: %w", err)
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", nil, fmt.Errorf("marshal submission: %w", err)
	}
	return hash, raw, nil
}
