package responsecache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"profiletool/internal/storage"
)

func TestMissThenHit(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()

	if _, ok := c.Get(ctx, "abc", "m1"); ok {
		t.Fatal("expected miss for empty cache")
	}

	if !c.Set(ctx, "abc", "m1", json.RawMessage(`{"score":10}`), json.RawMessage(`{"role":"x"}`)) {
		t.Fatal("set failed")
	}

	got, ok := c.Get(ctx, "abc", "m1")
	if !ok {
		t.Fatal("expected hit after set")
	}
	if string(got) != `{"score":10}` {
		t.Fatalf("got %s, want {\"score\":10}", got)
	}

	// Same key under a different model is a distinct entry.
	if _, ok := c.Get(ctx, "abc", "m2"); ok {
		t.Fatal("expected miss for different model")
	}
}

func TestIdempotentUpsert(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if !c.Set(ctx, "k", "m", json.RawMessage(`{"v":1}`), json.RawMessage(`{"u":1}`)) {
			t.Fatalf("set #%d failed", i)
		}
	}

	got, ok := c.Get(ctx, "k", "m")
	if !ok {
		t.Fatal("expected hit")
	}
	if string(got) != `{"v":1}` {
		t.Fatalf("response = %s, want {\"v\":1}", got)
	}

	entry, ok := c.GetEntry(ctx, "k", "m")
	if !ok {
		t.Fatal("expected entry")
	}
	if string(entry.UserInput) != `{"u":1}` {
		t.Fatalf("user_input = %s, want {\"u\":1}", entry.UserInput)
	}
}

func TestMergeOnNullUserInput(t *testing.T) {
	ctx := context.Background()

	t.Run("FirstWriteNull", func(t *testing.T) {
		c := NewMemory()
		c.Set(ctx, "k", "m", json.RawMessage(`{"v":1}`), nil)
		c.Set(ctx, "k", "m", json.RawMessage(`{"v":2}`), json.RawMessage(`{"u":2}`))

		entry, ok := c.GetEntry(ctx, "k", "m")
		if !ok {
			t.Fatal("expected entry")
		}
		if string(entry.Response) != `{"v":2}` {
			t.Fatalf("response = %s, want last write {\"v\":2}", entry.Response)
		}
		if string(entry.UserInput) != `{"u":2}` {
			t.Fatalf("user_input = %s, want {\"u\":2}", entry.UserInput)
		}
	})

	t.Run("FirstWriteNonNull", func(t *testing.T) {
		c := NewMemory()
		c.Set(ctx, "k", "m", json.RawMessage(`{"v":1}`), json.RawMessage(`{"u":1}`))
		c.Set(ctx, "k", "m", json.RawMessage(`{"v":2}`), json.RawMessage(`{"u":2}`))

		entry, ok := c.GetEntry(ctx, "k", "m")
		if !ok {
			t.Fatal("expected entry")
		}
		if string(entry.Response) != `{"v":2}` {
			t.Fatalf("response = %s, want {\"v\":2}", entry.Response)
		}
		// First non-null user_input wins.
		if string(entry.UserInput) != `{"u":1}` {
			t.Fatalf("user_input = %s, want {\"u\":1}", entry.UserInput)
		}
	})
}

func TestBackfillOnlyFillsNull(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()

	c.Set(ctx, "k", "m", json.RawMessage(`{"v":1}`), nil)

	if !c.BackfillUserInput(ctx, "k", "m", json.RawMessage(`{"a":1}`)) {
		t.Fatal("expected backfill to change the row")
	}
	entry, _ := c.GetEntry(ctx, "k", "m")
	if string(entry.UserInput) != `{"a":1}` {
		t.Fatalf("user_input = %s, want {\"a\":1}", entry.UserInput)
	}

	if c.BackfillUserInput(ctx, "k", "m", json.RawMessage(`{"a":2}`)) {
		t.Fatal("second backfill should not change the row")
	}
	entry, _ = c.GetEntry(ctx, "k", "m")
	if string(entry.UserInput) != `{"a":1}` {
		t.Fatalf("user_input = %s, want unchanged {\"a\":1}", entry.UserInput)
	}

	if c.BackfillUserInput(ctx, "missing", "m", json.RawMessage(`{"a":1}`)) {
		t.Fatal("backfill of a missing row should report false")
	}
}

func TestClearByModel(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()

	c.Set(ctx, "k1", "m1", json.RawMessage(`{}`), nil)
	c.Set(ctx, "k2", "m1", json.RawMessage(`{}`), nil)
	c.Set(ctx, "k3", "m2", json.RawMessage(`{}`), nil)

	if n := c.Clear(ctx, "m1"); n != 2 {
		t.Fatalf("clear(m1) = %d, want 2", n)
	}
	if _, ok := c.Get(ctx, "k1", "m1"); ok {
		t.Fatal("m1 entry should be gone")
	}
	if _, ok := c.Get(ctx, "k3", "m2"); !ok {
		t.Fatal("m2 entry should survive")
	}

	if n := c.Clear(ctx, ""); n != 1 {
		t.Fatalf("clear() = %d, want 1", n)
	}
	stats := c.Stats(ctx)
	if stats.TotalEntries != 0 {
		t.Fatalf("total_entries = %d, want 0", stats.TotalEntries)
	}
}

func TestDeleteEntry(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()

	c.Set(ctx, "k", "m", json.RawMessage(`{}`), nil)
	if !c.Delete(ctx, "k", "m") {
		t.Fatal("delete of existing entry should report true")
	}
	if c.Delete(ctx, "k", "m") {
		t.Fatal("delete of missing entry should report false")
	}
}

func TestDisabledStore(t *testing.T) {
	ctx := context.Background()
	c, err := New(ctx, Config{Enabled: false})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if c.Set(ctx, "k", "m", json.RawMessage(`{}`), nil) {
		t.Fatal("set on disabled store should return false")
	}
	if _, ok := c.Get(ctx, "k", "m"); ok {
		t.Fatal("get on disabled store should miss")
	}
	stats := c.Stats(ctx)
	if stats.Enabled || stats.TotalEntries != 0 {
		t.Fatalf("stats = %+v, want disabled shape", stats)
	}
	if c.HealthCheck(ctx) {
		t.Fatal("health check on disabled store should be false")
	}
}

func TestOptionalInitFailureDisablesPermanently(t *testing.T) {
	ctx := context.Background()
	c, err := New(ctx, Config{
		Enabled: true,
		Storage: storage.Config{Type: "bogus"},
	})
	if err != nil {
		t.Fatalf("optional cache construction should not fail: %v", err)
	}

	// First use trips the one-time disabled transition; later calls are
	// guaranteed no-ops.
	for i := 0; i < 3; i++ {
		if _, ok := c.Get(ctx, "k", "m"); ok {
			t.Fatalf("get #%d should miss", i)
		}
	}
	if got := c.Stats(ctx); got.Enabled {
		t.Fatal("stats should report disabled")
	}
}

func TestRequiredInitFailureIsFatal(t *testing.T) {
	_, err := New(context.Background(), Config{
		Enabled:  true,
		Required: true,
		Storage:  storage.Config{Type: "bogus"},
	})
	if err == nil {
		t.Fatal("required cache with a broken store must fail construction")
	}
}

// failingBackend simulates a backing store that errors after initialization.
type failingBackend struct{}

var errBackendDown = errors.New("backend down")

func (failingBackend) GetEntry(context.Context, string, string) (*Entry, error) {
	return nil, errBackendDown
}
func (failingBackend) Set(context.Context, string, string, json.RawMessage, json.RawMessage) error {
	return errBackendDown
}
func (failingBackend) Backfill(context.Context, string, string, json.RawMessage) (bool, error) {
	return false, errBackendDown
}
func (failingBackend) Delete(context.Context, string, string) (bool, error) {
	return false, errBackendDown
}
func (failingBackend) Clear(context.Context, string) (int64, error) { return 0, errBackendDown }
func (failingBackend) Stats(context.Context) (Stats, error)         { return Stats{}, errBackendDown }
func (failingBackend) Ping(context.Context) error                   { return errBackendDown }
func (failingBackend) Close() error                                 { return nil }

func TestFailOpenOnTransientErrors(t *testing.T) {
	c := newWithBackend(failingBackend{})
	ctx := context.Background()

	if _, ok := c.Get(ctx, "k", "m"); ok {
		t.Fatal("read error must degrade to a miss")
	}
	if _, ok := c.GetEntry(ctx, "k", "m"); ok {
		t.Fatal("metadata read error must degrade to a miss")
	}
	if c.Set(ctx, "k", "m", json.RawMessage(`{}`), nil) {
		t.Fatal("write error must report false, not panic or propagate")
	}
	if c.BackfillUserInput(ctx, "k", "m", json.RawMessage(`{}`)) {
		t.Fatal("backfill error must report false")
	}
	if c.Delete(ctx, "k", "m") {
		t.Fatal("delete error must report false")
	}
	if n := c.Clear(ctx, ""); n != 0 {
		t.Fatalf("clear error must report 0, got %d", n)
	}
	if got := c.Stats(ctx); got.Enabled {
		t.Fatal("stats error must return the disabled shape")
	}
	if c.HealthCheck(ctx) {
		t.Fatal("failing ping must report unhealthy")
	}
}
