package otel

import (
	"context"
	"testing"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func newTestExporter(t *testing.T) (*Exporter, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	e, err := newExporter(provider)
	if err != nil {
		t.Fatalf("newExporter() error = %v", err)
	}
	t.Cleanup(func() { _ = e.Close(context.Background()) })
	return e, reader
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Aggregation {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	out := map[string]metricdata.Aggregation{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m.Data
		}
	}
	return out
}

func sumTotal(t *testing.T, agg metricdata.Aggregation) int64 {
	t.Helper()
	sum, ok := agg.(metricdata.Sum[int64])
	if !ok {
		t.Fatalf("aggregation %T is not an int64 sum", agg)
	}
	var total int64
	for _, dp := range sum.DataPoints {
		total += dp.Value
	}
	return total
}

func TestExporter_Records(t *testing.T) {
	e, reader := newTestExporter(t)
	ctx := context.Background()

	e.RecordAPIRequest(ctx, "/user-info", 200, 120*time.Millisecond)
	e.RecordAPIRequest(ctx, "/user-info", 0, time.Second)
	e.RecordCacheLookup(ctx, "user-info", true)
	e.RecordCacheLookup(ctx, "user-info", false)
	e.RecordCacheLookup(ctx, "intake", false)
	e.RecordPageRender(ctx, "dashboard", 200)

	got := collect(t, reader)

	if n := sumTotal(t, got["hydrate_api_requests_total"]); n != 2 {
		t.Errorf("api requests = %d, want 2", n)
	}
	if n := sumTotal(t, got["hydrate_cache_lookups_total"]); n != 3 {
		t.Errorf("cache lookups = %d, want 3", n)
	}
	if n := sumTotal(t, got["hydrate_page_renders_total"]); n != 1 {
		t.Errorf("page renders = %d, want 1", n)
	}

	hist, ok := got["hydrate_api_request_duration_seconds"].(metricdata.Histogram[float64])
	if !ok {
		t.Fatalf("duration aggregation %T is not a histogram", got["hydrate_api_request_duration_seconds"])
	}
	var count uint64
	for _, dp := range hist.DataPoints {
		count += dp.Count
	}
	if count != 2 {
		t.Errorf("duration samples = %d, want 2", count)
	}
}

func TestStatusLabel(t *testing.T) {
	if got := statusLabel(0); got != "error" {
		t.Errorf("statusLabel(0) = %q", got)
	}
	if got := statusLabel(502); got != "502" {
		t.Errorf("statusLabel(502) = %q", got)
	}
}

func TestNew_DisabledReturnsNoOp(t *testing.T) {
	rec, err := New(context.Background(), Config{Enabled: false, Endpoint: "localhost:4317"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, ok := rec.(*NoOpExporter); !ok {
		t.Errorf("New() = %T, want *NoOpExporter", rec)
	}

	if _, err := NewExporter(context.Background(), Config{Enabled: true}); err == nil {
		t.Error("NewExporter() without endpoint should fail")
	}
}
