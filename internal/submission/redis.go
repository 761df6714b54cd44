package submission

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// defaultRedisPrefix namespaces submission keys in a shared Redis.
	defaultRedisPrefix = "profiletool:submission:"
)

// RedisConfig holds Redis connection configuration.
type RedisConfig struct {
	// URL is the Redis connection URL (e.g., "redis://localhost:6379" or "redis://:password@host:6379/0")
	URL string

	// Prefix namespaces submission keys (defaults to "profiletool:submission:")
	Prefix string

	// TTL expires stored submissions; zero means no expiry, matching the
	// SQL backends' retention behavior.
	TTL time.Duration
}

// RedisStore stores submissions in Redis. Suitable for multi-instance
// deployments where the SQL database is reserved for the response cache.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStore creates a new Redis-backed submission store.
func NewRedisStore(cfg RedisConfig) (*RedisStore, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	prefix := cfg.Prefix
	if prefix == "" {
		prefix = defaultRedisPrefix
	}

	slog.Info("redis submission store connected", "prefix", prefix, "ttl", cfg.TTL)

	return &RedisStore{client: client, prefix: prefix, ttl: cfg.TTL}, nil
}

// Put stores the record as JSON under the prefixed hash key. A conflicting
// resubmission overwrites the value in place, preserving the original
// created_at when one exists.
func (s *RedisStore) Put(ctx context.Context, payload map[string]interface{}) (string, error) {
	hash, raw, err := hashPayload(payload)
	if err != nil {
		return "", err
	}

	rec := Record{HashKey: hash, Payload: raw, CreatedAt: time.Now().UTC()}
	if existing, err := s.Get(ctx, hash); err == nil {
		rec.CreatedAt = existing.CreatedAt
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("marshal submission record: %w", err)
	}

	if err := s.client.Set(ctx, s.prefix+hash, data, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store submission in redis: %w", err)
	}
	return hash, nil
}

func (s *RedisStore) Get(ctx context.Context, hashKey string) (*Record, error) {
	data, err := s.client.Get(ctx, s.prefix+hashKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get submission from redis: %w", err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parse submission record: %w", err)
	}
	return &rec, nil
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}
