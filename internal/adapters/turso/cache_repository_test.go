package turso_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/emiliopalmerini/hydrate/internal/adapters/turso"
	sqlc "github.com/emiliopalmerini/hydrate/sqlc/generated"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestRepo(t *testing.T) (*turso.ResponseCacheRepository, *fakeClock) {
	t.Helper()
	repo := turso.NewResponseCacheRepository(testDB(t))
	clock := &fakeClock{t: time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)}
	repo.SetClock(clock.now)
	return repo, clock
}

func TestResponseCache_SetGet(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Set(ctx, "user-info", []byte(`{"displayName":"Sam"}`), time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, ok, err := repo.Get(ctx, "user-info")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !ok {
		t.Fatal("Get() expected hit")
	}
	if string(got) != `{"displayName":"Sam"}` {
		t.Errorf("Get() = %s", got)
	}
}

func TestResponseCache_Miss(t *testing.T) {
	repo, _ := newTestRepo(t)

	_, ok, err := repo.Get(context.Background(), "missing")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if ok {
		t.Error("Get() expected miss for unknown key")
	}
}

func TestResponseCache_Expiry(t *testing.T) {
	repo, clock := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatal(err)
	}

	clock.advance(59 * time.Second)
	if _, ok, _ := repo.Get(ctx, "k"); !ok {
		t.Error("entry should still be fresh before its ttl")
	}

	clock.advance(time.Second)
	if _, ok, _ := repo.Get(ctx, "k"); ok {
		t.Error("entry should be a miss once its ttl elapsed")
	}
}

func TestResponseCache_Overwrite(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	_ = repo.Set(ctx, "k", []byte("old"), time.Minute)
	_ = repo.Set(ctx, "k", []byte("new"), time.Minute)

	got, ok, err := repo.Get(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("Get() = %v, %v", ok, err)
	}
	if string(got) != "new" {
		t.Errorf("Get() = %q, want new", got)
	}
}

func TestResponseCache_InvalidTTL(t *testing.T) {
	repo, _ := newTestRepo(t)

	if err := repo.Set(context.Background(), "k", []byte("v"), 0); err == nil {
		t.Error("Set() with zero ttl should fail")
	}
}

func TestResponseCache_DeleteClearPurge(t *testing.T) {
	repo, clock := newTestRepo(t)
	ctx := context.Background()

	_ = repo.Set(ctx, "short", []byte("1"), time.Second)
	_ = repo.Set(ctx, "long", []byte("2"), time.Hour)
	_ = repo.Set(ctx, "gone", []byte("3"), time.Hour)

	if err := repo.Delete(ctx, "gone"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, ok, _ := repo.Get(ctx, "gone"); ok {
		t.Error("deleted entry should be a miss")
	}

	clock.advance(time.Minute)
	purged, err := repo.PurgeExpired(ctx)
	if err != nil {
		t.Fatalf("PurgeExpired() error = %v", err)
	}
	if purged != 1 {
		t.Errorf("PurgeExpired() = %d, want 1", purged)
	}

	cleared, err := repo.Clear(ctx)
	if err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if cleared != 1 {
		t.Errorf("Clear() = %d, want 1", cleared)
	}
	if _, ok, _ := repo.Get(ctx, "long"); ok {
		t.Error("cleared entry should be a miss")
	}
}

func TestResponseCache_StoredRowMatchesQueries(t *testing.T) {
	db := testDB(t)
	repo := turso.NewResponseCacheRepository(db)
	clock := &fakeClock{t: time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)}
	repo.SetClock(clock.now)
	ctx := context.Background()

	if err := repo.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	row, err := sqlc.New(db).GetCacheEntry(ctx, "k")
	if err != nil {
		t.Fatalf("GetCacheEntry() error = %v", err)
	}
	want := sqlc.GetCacheEntryRow{
		Payload:   []byte("v"),
		ExpiresAt: clock.t.Add(time.Minute).UnixMilli(),
	}
	if diff := cmp.Diff(want, row); diff != "" {
		t.Errorf("GetCacheEntry() mismatch (-want +got):\n%s", diff)
	}

	var createdAt string
	if err := db.QueryRowContext(ctx, `SELECT created_at FROM response_cache WHERE key = ?`, "k").Scan(&createdAt); err != nil {
		t.Fatalf("select created_at: %v", err)
	}
	if createdAt != "2024-03-15T12:00:00Z" {
		t.Errorf("created_at = %q, want RFC3339 UTC", createdAt)
	}
}
