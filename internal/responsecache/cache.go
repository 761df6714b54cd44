// Package responsecache provides the durable memoization layer for
// evaluation responses: a content-addressed key/value store with upsert,
// conditional backfill, and administrative clearing.
//
// The failure policy is encoded in the method signatures of Cache: the read
// path degrades to a miss on any backing-store error, and the write path
// reports success through booleans. A cache outage never breaks the primary
// evaluation flow.
package responsecache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"profiletool/internal/observability"
	"profiletool/internal/storage"
)

// ErrNotFound indicates no entry exists for a (cache_key, model) pair.
var ErrNotFound = errors.New("cache entry not found")

// Entry is one stored row of the response_cache table.
type Entry struct {
	CacheKey string `json:"cache_key"`
	Model    string `json:"model"`
	// UserInput is nil when the original request was not captured at write
	// time; it may be backfilled exactly once.
	UserInput json.RawMessage `json:"user_input,omitempty"`
	Response  json.RawMessage `json:"response_json"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Stats is a best-effort aggregate over the cache table.
type Stats struct {
	Enabled      bool       `json:"enabled"`
	TotalEntries int64      `json:"total_entries"`
	UniqueModels int64      `json:"unique_models"`
	OldestEntry  *time.Time `json:"oldest_entry,omitempty"`
	NewestEntry  *time.Time `json:"newest_entry,omitempty"`
	ApproxSize   string     `json:"approx_size,omitempty"`
}

// backend is the error-returning persistence contract implemented per
// storage engine. The Cache wrapper converts its failures into the
// fail-open/fail-safe surface callers see.
type backend interface {
	// GetEntry returns the full row or ErrNotFound.
	GetEntry(ctx context.Context, key, model string) (*Entry, error)
	// Set upserts a row: response_json is replaced on conflict, user_input
	// keeps its first non-null value.
	Set(ctx context.Context, key, model string, response, userInput json.RawMessage) error
	// Backfill sets user_input only where it is currently NULL and reports
	// whether a row changed.
	Backfill(ctx context.Context, key, model string, userInput json.RawMessage) (bool, error)
	Delete(ctx context.Context, key, model string) (bool, error)
	// Clear deletes rows for one model, or every row when model is empty,
	// returning the number removed.
	Clear(ctx context.Context, model string) (int64, error)
	Stats(ctx context.Context) (Stats, error)
	Ping(ctx context.Context) error
	Close() error
}

// Config holds cache construction options.
type Config struct {
	// Enabled turns caching on. When false every operation is a no-op/miss.
	Enabled bool
	// Required makes backing-store initialization failure fatal at
	// construction. When false, a failed initialization permanently disables
	// the cache instead (fail-open for the process lifetime).
	Required bool
	// Storage selects and configures the backing store.
	Storage storage.Config
}

// connState is the lifecycle of the lazily initialized backing store.
type connState int

const (
	stateUninitialized connState = iota
	stateReady
	stateDisabled
)

// Cache is the response cache. Safe for concurrent use.
type Cache struct {
	cfg Config

	mu      sync.Mutex
	state   connState
	backend backend
	store   storage.Storage
}

// New creates a Cache. When cfg.Required is set the backing store is
// connected and probed immediately and any failure is returned; otherwise
// connection is deferred to the first operation, and a failed first
// connection flips the cache into a terminal disabled state.
func New(ctx context.Context, cfg Config) (*Cache, error) {
	c := &Cache{cfg: cfg}
	if !cfg.Enabled {
		c.state = stateDisabled
		return c, nil
	}
	if cfg.Required {
		c.mu.Lock()
		defer c.mu.Unlock()
		if err := c.connectLocked(ctx); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// newWithBackend wires a ready backend directly; used by tests and by the
// memory storage type.
func newWithBackend(b backend) *Cache {
	return &Cache{cfg: Config{Enabled: true}, state: stateReady, backend: b}
}

// NewMemory returns an enabled cache backed by an in-process map.
func NewMemory() *Cache {
	return newWithBackend(newMemoryBackend())
}

// connectLocked performs the one-time uninitialized to ready transition.
// Callers hold c.mu.
func (c *Cache) connectLocked(ctx context.Context) error {
	if c.cfg.Storage.Type == storage.TypeMemory {
		c.backend = newMemoryBackend()
		c.state = stateReady
		return nil
	}
	st, err := storage.New(ctx, c.cfg.Storage)
	if err != nil {
		return err
	}
	b, err := newBackend(ctx, st)
	if err != nil {
		st.Close()
		return err
	}
	c.store = st
	c.backend = b
	c.state = stateReady
	slog.Info("response cache initialized", "storage", c.cfg.Storage.Type)
	return nil
}

// ensure returns the ready backend, lazily connecting on first use. Once the
// cache is disabled it stays disabled for the process lifetime; there are no
// reconnection attempts against a known-broken store.
func (c *Cache) ensure(ctx context.Context) (backend, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case stateReady:
		return c.backend, true
	case stateDisabled:
		return nil, false
	}

	if err := c.connectLocked(ctx); err != nil {
		slog.Warn("cache initialization failed - caching disabled", "error", err)
		c.state = stateDisabled
		return nil, false
	}
	return c.backend, true
}

// Get returns the stored response payload for (key, model). Any backing
// store error degrades to a miss.
func (c *Cache) Get(ctx context.Context, key, model string) (json.RawMessage, bool) {
	entry, ok := c.GetEntry(ctx, key, model)
	if !ok {
		return nil, false
	}
	return entry.Response, true
}

// GetEntry returns the full row including user_input and timestamps, for
// administrative inspection. Same fail-open behavior as Get.
func (c *Cache) GetEntry(ctx context.Context, key, model string) (*Entry, bool) {
	b, ok := c.ensure(ctx)
	if !ok {
		observability.CacheRequests.WithLabelValues("miss").Inc()
		return nil, false
	}

	entry, err := b.GetEntry(ctx, key, model)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			observability.CacheRequests.WithLabelValues("miss").Inc()
			slog.Debug("cache miss", "key", shortKey(key), "model", model)
			return nil, false
		}
		observability.CacheRequests.WithLabelValues("error").Inc()
		slog.Warn("cache read failed", "key", shortKey(key), "error", err)
		return nil, false
	}

	observability.CacheRequests.WithLabelValues("hit").Inc()
	slog.Info("cache hit", "key", shortKey(key), "model", model)
	return entry, true
}

// Set upserts the entry and reports success. Callers must treat false as
// non-fatal: the value being cached has already been produced.
func (c *Cache) Set(ctx context.Context, key, model string, response, userInput json.RawMessage) bool {
	b, ok := c.ensure(ctx)
	if !ok {
		observability.CacheWrites.WithLabelValues("skipped").Inc()
		return false
	}

	if err := b.Set(ctx, key, model, response, userInput); err != nil {
		observability.CacheWrites.WithLabelValues("failed").Inc()
		slog.Error("cache write failed", "key", shortKey(key), "error", err)
		return false
	}

	observability.CacheWrites.WithLabelValues("ok").Inc()
	slog.Info("cache write", "key", shortKey(key), "model", model)
	return true
}

// BackfillUserInput attaches request context to an entry written before that
// context was captured. It updates user_input only if currently null and
// reports whether a row actually changed.
func (c *Cache) BackfillUserInput(ctx context.Context, key, model string, userInput json.RawMessage) bool {
	b, ok := c.ensure(ctx)
	if !ok {
		return false
	}

	changed, err := b.Backfill(ctx, key, model, userInput)
	if err != nil {
		slog.Warn("cache backfill failed", "key", shortKey(key), "error", err)
		return false
	}
	if changed {
		slog.Info("cache user_input backfilled", "key", shortKey(key), "model", model)
	}
	return changed
}

// Delete removes one entry and reports whether it existed.
func (c *Cache) Delete(ctx context.Context, key, model string) bool {
	b, ok := c.ensure(ctx)
	if !ok {
		return false
	}

	deleted, err := b.Delete(ctx, key, model)
	if err != nil {
		slog.Error("cache delete failed", "key", shortKey(key), "error", err)
		return false
	}
	return deleted
}

// Clear removes all entries for a model, or every entry when model is empty,
// returning the number of rows removed.
func (c *Cache) Clear(ctx context.Context, model string) int64 {
	b, ok := c.ensure(ctx)
	if !ok {
		return 0
	}

	n, err := b.Clear(ctx, model)
	if err != nil {
		slog.Error("cache clear failed", "model", model, "error", err)
		return 0
	}
	slog.Info("cache cleared", "model", model, "entries", n)
	return n
}

// Stats returns best-effort aggregates, or the disabled shape when the store
// is unavailable.
func (c *Cache) Stats(ctx context.Context) Stats {
	b, ok := c.ensure(ctx)
	if !ok {
		return Stats{Enabled: false}
	}

	stats, err := b.Stats(ctx)
	if err != nil {
		slog.Error("cache stats failed", "error", err)
		return Stats{Enabled: false}
	}
	stats.Enabled = true
	return stats
}

// HealthCheck is a cheap liveness probe. Never panics or returns an error.
func (c *Cache) HealthCheck(ctx context.Context) bool {
	b, ok := c.ensure(ctx)
	if !ok {
		return false
	}
	return b.Ping(ctx) == nil
}

// Close releases the backing store.
func (c *Cache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	var errs []error
	if c.backend != nil {
		errs = append(errs, c.backend.Close())
		c.backend = nil
	}
	if c.store != nil {
		errs = append(errs, c.store.Close())
		c.store = nil
	}
	c.state = stateDisabled
	return errors.Join(errs...)
}

// newBackend creates the schema-owning backend for an established storage
// connection.
func newBackend(ctx context.Context, st storage.Storage) (backend, error) {
	switch st.Type() {
	case storage.TypePostgreSQL:
		return newPostgresBackend(ctx, st)
	case storage.TypeSQLite:
		return newSQLiteBackend(st.SQLiteDB())
	default:
		return nil, errors.New("unsupported storage type for response cache: " + st.Type())
	}
}

// shortKey truncates a cache key for log lines.
func shortKey(key string) string {
	if len(key) > 16 {
		return key[:16]
	}
	return key
}
