package responsecache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
)

// memoryBackend keeps cache entries in an in-process map. Used by tests and
// by the "memory" storage type for single-instance deployments that do not
// need durability.
type memoryBackend struct {
	mu      sync.RWMutex
	entries map[memoryKey]*Entry
}

type memoryKey struct {
	cacheKey string
	model    string
}

func newMemoryBackend() *memoryBackend {
	return &memoryBackend{entries: make(map[memoryKey]*Entry)}
}

func (b *memoryBackend) GetEntry(_ context.Context, key, model string) (*Entry, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	entry, ok := b.entries[memoryKey{key, model}]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *entry
	return &clone, nil
}

func (b *memoryBackend) Set(_ context.Context, key, model string, response, userInput json.RawMessage) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now().UTC()
	k := memoryKey{key, model}
	if existing, ok := b.entries[k]; ok {
		existing.Response = append(json.RawMessage(nil), response...)
		if existing.UserInput == nil && userInput != nil {
			existing.UserInput = append(json.RawMessage(nil), userInput...)
		}
		existing.UpdatedAt = now
		return nil
	}

	entry := &Entry{
		CacheKey:  key,
		Model:     model,
		Response:  append(json.RawMessage(nil), response...),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if userInput != nil {
		entry.UserInput = append(json.RawMessage(nil), userInput...)
	}
	b.entries[k] = entry
	return nil
}

func (b *memoryBackend) Backfill(_ context.Context, key, model string, userInput json.RawMessage) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	entry, ok := b.entries[memoryKey{key, model}]
	if !ok || entry.UserInput != nil {
		return false, nil
	}
	entry.UserInput = append(json.RawMessage(nil), userInput...)
	entry.UpdatedAt = time.Now().UTC()
	return true, nil
}

func (b *memoryBackend) Delete(_ context.Context, key, model string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	k := memoryKey{key, model}
	if _, ok := b.entries[k]; !ok {
		return false, nil
	}
	delete(b.entries, k)
	return true, nil
}

func (b *memoryBackend) Clear(_ context.Context, model string) (int64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var n int64
	for k := range b.entries {
		if model == "" || k.model == model {
			delete(b.entries, k)
			n++
		}
	}
	return n, nil
}

func (b *memoryBackend) Stats(_ context.Context) (Stats, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	stats := Stats{TotalEntries: int64(len(b.entries))}
	models := make(map[string]struct{})
	var sizeBytes int64
	for k, entry := range b.entries {
		models[k.model] = struct{}{}
		sizeBytes += int64(len(entry.Response))
		if stats.OldestEntry == nil || entry.CreatedAt.Before(*stats.OldestEntry) {
			t := entry.CreatedAt
			stats.OldestEntry = &t
		}
		if stats.NewestEntry == nil || entry.CreatedAt.After(*stats.NewestEntry) {
			t := entry.CreatedAt
			stats.NewestEntry = &t
		}
	}
	stats.UniqueModels = int64(len(models))
	if sizeBytes > 0 {
		stats.ApproxSize = humanize.Bytes(uint64(sizeBytes))
	}
	return stats, nil
}

func (b *memoryBackend) Ping(_ context.Context) error {
	return nil
}

func (b *memoryBackend) Close() error {
	return nil
}
