package otel

import (
	"context"
	"time"
)

// NoOpExporter is a metrics recorder that does nothing.
type NoOpExporter struct{}

// NewNoOpExporter creates a new no-op exporter for graceful degradation.
func NewNoOpExporter() *NoOpExporter {
	return &NoOpExporter{}
}

func (e *NoOpExporter) RecordAPIRequest(ctx context.Context, route string, status int, duration time.Duration) {
}

func (e *NoOpExporter) RecordCacheLookup(ctx context.Context, kind string, hit bool) {}

func (e *NoOpExporter) RecordPageRender(ctx context.Context, page string, status int) {}

func (e *NoOpExporter) Close(ctx context.Context) error {
	return nil
}
