package cli

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/emiliopalmerini/hydrate/internal/adapters/turso"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// testFileDB opens an empty database file in a temporary directory.
func testFileDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := turso.NewDB(filepath.Join(t.TempDir(), "cache.db"), "")
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// clearEnv unsets every hydrate variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"HYDRATE_API_URL", "HYDRATE_API_TIMEOUT", "HYDRATE_DEVICE_ID",
		"HYDRATE_DATABASE_URL", "HYDRATE_AUTH_TOKEN", "HYDRATE_CACHE_TTL",
		"PORT", "HYDRATE_SHUTDOWN_TIMEOUT", "HYDRATE_TIMEZONE", "HYDRATE_SECURE_COOKIES",
		"HYDRATE_LOG_LEVEL", "HYDRATE_OTEL_ENABLED", "HYDRATE_OTEL_ENDPOINT", "HYDRATE_OTEL_INSECURE",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

// memoryCache is an in-memory ports.ResponseCache.
type memoryCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     time.Time
}

type memoryEntry struct {
	payload []byte
	expires time.Time
}

func newMemoryCache(now time.Time) *memoryCache {
	return &memoryCache{entries: make(map[string]memoryEntry), now: now}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok || !c.now.Before(e.expires) {
		return nil, false, nil
	}
	return e.payload, true, nil
}

func (c *memoryCache) Set(_ context.Context, key string, payload []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = memoryEntry{payload: payload, expires: c.now.Add(ttl)}
	return nil
}

func (c *memoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	return nil
}

func (c *memoryCache) Clear(_ context.Context) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := int64(len(c.entries))
	c.entries = make(map[string]memoryEntry)
	return n, nil
}

func (c *memoryCache) PurgeExpired(_ context.Context) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var n int64
	for key, e := range c.entries {
		if !c.now.Before(e.expires) {
			delete(c.entries, key)
			n++
		}
	}
	return n, nil
}
