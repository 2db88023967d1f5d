package ports

import (
	"context"
	"time"
)

// ResponseCache stores serialized backend responses until they expire.
type ResponseCache interface {
	// Get returns the payload for key. Expired entries are reported as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) (int64, error)
	PurgeExpired(ctx context.Context) (int64, error)
}
