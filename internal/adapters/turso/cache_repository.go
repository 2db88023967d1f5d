package turso

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sqlc "github.com/emiliopalmerini/hydrate/sqlc/generated"
)

// ResponseCacheRepository stores backend responses in the response_cache table.
type ResponseCacheRepository struct {
	db      *sql.DB
	queries *sqlc.Queries
	now     func() time.Time
}

func NewResponseCacheRepository(db *sql.DB) *ResponseCacheRepository {
	return &ResponseCacheRepository{
		db:      db,
		queries: sqlc.New(db),
		now:     time.Now,
	}
}

func (r *ResponseCacheRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	row, err := r.queries.GetCacheEntry(ctx, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get cache entry %q: %w", key, err)
	}

	if row.ExpiresAt <= r.now().UnixMilli() {
		return nil, false, nil
	}
	return row.Payload, true, nil
}

func (r *ResponseCacheRepository) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return fmt.Errorf("cache ttl must be positive, got %s", ttl)
	}
	now := r.now()
	err := r.queries.UpsertCacheEntry(ctx, sqlc.UpsertCacheEntryParams{
		Key:       key,
		Payload:   payload,
		ExpiresAt: now.Add(ttl).UnixMilli(),
		CreatedAt: now.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("failed to set cache entry %q: %w", key, err)
	}
	return nil
}

func (r *ResponseCacheRepository) Delete(ctx context.Context, key string) error {
	if err := r.queries.DeleteCacheEntry(ctx, key); err != nil {
		return fmt.Errorf("failed to delete cache entry %q: %w", key, err)
	}
	return nil
}

// Clear removes every entry and returns how many were removed.
func (r *ResponseCacheRepository) Clear(ctx context.Context) (int64, error) {
	n, err := r.queries.ClearCache(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to clear response cache: %w", err)
	}
	return n, nil
}

// PurgeExpired removes expired entries and returns how many were removed.
func (r *ResponseCacheRepository) PurgeExpired(ctx context.Context) (int64, error) {
	n, err := r.queries.PurgeExpiredCache(ctx, r.now().UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("failed to purge expired cache entries: %w", err)
	}
	return n, nil
}
