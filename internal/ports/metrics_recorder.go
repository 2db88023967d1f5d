package ports

import (
	"context"
	"time"
)

// MetricsRecorder records frontend metrics to an external observability system.
type MetricsRecorder interface {
	// RecordAPIRequest records one backend call by route and outcome.
	RecordAPIRequest(ctx context.Context, route string, status int, duration time.Duration)
	// RecordCacheLookup records a response cache hit or miss.
	RecordCacheLookup(ctx context.Context, kind string, hit bool)
	// RecordPageRender records a rendered page.
	RecordPageRender(ctx context.Context, page string, status int)
	// Close shuts down the recorder and flushes any pending metrics.
	Close(ctx context.Context) error
}
