package submission

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps submissions in an in-process map. Used by tests and the
// "memory" backend type.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]*Record
}

// NewMemoryStore creates an empty in-memory submission store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]*Record)}
}

func (s *MemoryStore) Put(_ context.Context, payload map[string]interface{}) (string, error) {
	hash, raw, err := hashPayload(payload)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.records[hash]; ok {
		existing.Payload = raw
		return hash, nil
	}
	s.records[hash] = &Record{HashKey: hash, Payload: raw, CreatedAt: time.Now().UTC()}
	return hash, nil
}

func (s *MemoryStore) Get(_ context.Context, hashKey string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[hashKey]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *rec
	return &clone, nil
}

func (s *MemoryStore) Close() error {
	return nil
}
