package submission

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"profiletool/internal/storage"
)

func storesUnderTest(t *testing.T) map[string]Store {
	t.Helper()

	st, err := storage.NewSQLite(storage.SQLiteConfig{Path: filepath.Join(t.TempDir(), "subs.db")})
	if err != nil {
		t.Fatalf("new sqlite storage: %v", err)
	}
	sqliteStore, err := NewSQLiteStore(st)
	if err != nil {
		t.Fatalf("new sqlite submission store: %v", err)
	}

	stores := map[string]Store{
		"memory": NewMemoryStore(),
		"sqlite": sqliteStore,
	}
	t.Cleanup(func() {
		for _, s := range stores {
			s.Close()
		}
	})
	return stores
}

func TestPutAndGetRoundTrip(t *testing.T) {
	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			payload := map[string]interface{}{
				"targetRole": "product-manager",
				"timeline":   "6m",
			}

			hash, err := store.Put(ctx, payload)
			if err != nil {
				t.Fatalf("put: %v", err)
			}
			if len(hash) != 16 {
				t.Fatalf("hash length = %d, want 16", len(hash))
			}

			rec, err := store.Get(ctx, hash)
			if err != nil {
				t.Fatalf("get: %v", err)
			}
			if rec.HashKey != hash {
				t.Fatalf("hash_key = %s, want %s", rec.HashKey, hash)
			}
			if rec.CreatedAt.IsZero() {
				t.Fatal("created_at should be set")
			}
		})
	}
}

func TestPutDeterministicAcrossKeyOrder(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	h1, err := store.Put(ctx, map[string]interface{}{"a": "1", "b": "2"})
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	h2, err := store.Put(ctx, map[string]interface{}{"b": "2", "a": "1"})
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if h1 != h2 {
		t.Fatalf("equal payloads hashed differently: %s vs %s", h1, h2)
	}
}

func TestResubmissionOverwritesInPlace(t *testing.T) {
	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			payload := map[string]interface{}{"role": "finance"}

			h1, err := store.Put(ctx, payload)
			if err != nil {
				t.Fatalf("first put: %v", err)
			}
			h2, err := store.Put(ctx, payload)
			if err != nil {
				t.Fatalf("second put: %v", err)
			}
			if h1 != h2 {
				t.Fatalf("resubmission changed hash: %s vs %s", h1, h2)
			}

			// Still exactly one record, no history.
			rec, err := store.Get(ctx, h1)
			if err != nil {
				t.Fatalf("get: %v", err)
			}
			if rec.HashKey != h1 {
				t.Fatalf("hash_key = %s, want %s", rec.HashKey, h1)
			}
		})
	}
}

func TestGetMissingSubmission(t *testing.T) {
	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			_, err := store.Get(context.Background(), "deadbeefdeadbeef")
			if !errors.Is(err, ErrNotFound) {
				t.Fatalf("err = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestPutRejectsEmptyPayload(t *testing.T) {
	store := NewMemoryStore()
	if _, err := store.Put(context.Background(), nil); err == nil {
		t.Fatal("empty payload should be rejected")
	}
}
