package ports_test

import (
	"testing"

	"github.com/emiliopalmerini/hydrate/internal/adapters/cached"
	"github.com/emiliopalmerini/hydrate/internal/adapters/larqapi"
	"github.com/emiliopalmerini/hydrate/internal/adapters/otel"
	"github.com/emiliopalmerini/hydrate/internal/adapters/turso"
	"github.com/emiliopalmerini/hydrate/internal/ports"
)

// Compile-time interface conformance checks.
// These verify that concrete adapters properly implement their port interfaces.

func TestHydrationAPIConformance(t *testing.T) {
	var _ ports.HydrationAPI = (*larqapi.Client)(nil)
	var _ ports.HydrationAPI = (*cached.API)(nil)
}

func TestResponseCacheConformance(t *testing.T) {
	var _ ports.ResponseCache = (*turso.ResponseCacheRepository)(nil)
}

func TestMetricsRecorderConformance(t *testing.T) {
	var _ ports.MetricsRecorder = (*otel.Exporter)(nil)
	var _ ports.MetricsRecorder = (*otel.NoOpExporter)(nil)
}
