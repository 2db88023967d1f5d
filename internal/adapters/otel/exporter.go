package otel

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/emiliopalmerini/hydrate/internal/ports"
)

const (
	serviceName    = "hydrate"
	serviceVersion = "1.0.0"
)

// Exporter records frontend metrics and exports them to an OTEL Collector.
type Exporter struct {
	provider     *sdkmetric.MeterProvider
	meter        metric.Meter
	apiRequests  metric.Int64Counter
	apiDuration  metric.Float64Histogram
	cacheLookups metric.Int64Counter
	pageRenders  metric.Int64Counter
}

// New returns an OTLP exporter when cfg enables one and a no-op recorder otherwise.
func New(ctx context.Context, cfg Config) (ports.MetricsRecorder, error) {
	if !cfg.Enabled || cfg.Endpoint == "" {
		return NewNoOpExporter(), nil
	}
	return NewExporter(ctx, cfg)
}

// NewExporter creates a new OTEL metrics exporter.
func NewExporter(ctx context.Context, cfg Config) (*Exporter, error) {
	if !cfg.Enabled || cfg.Endpoint == "" {
		return nil, fmt.Errorf("OTEL exporter is disabled or endpoint not configured")
	}

	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exp, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(provider)

	e, err := newExporter(provider)
	if err != nil {
		_ = provider.Shutdown(ctx)
		return nil, err
	}
	return e, nil
}

func newExporter(provider *sdkmetric.MeterProvider) (*Exporter, error) {
	meter := provider.Meter(serviceName)

	apiRequests, err := meter.Int64Counter(
		"hydrate_api_requests_total",
		metric.WithDescription("Total backend API requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating api requests counter: %w", err)
	}

	apiDuration, err := meter.Float64Histogram(
		"hydrate_api_request_duration_seconds",
		metric.WithDescription("Backend API request duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating api duration histogram: %w", err)
	}

	cacheLookups, err := meter.Int64Counter(
		"hydrate_cache_lookups_total",
		metric.WithDescription("Response cache lookups by outcome"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating cache lookups counter: %w", err)
	}

	pageRenders, err := meter.Int64Counter(
		"hydrate_page_renders_total",
		metric.WithDescription("Rendered pages by status"),
		metric.WithUnit("{page}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating page renders counter: %w", err)
	}

	return &Exporter{
		provider:     provider,
		meter:        meter,
		apiRequests:  apiRequests,
		apiDuration:  apiDuration,
		cacheLookups: cacheLookups,
		pageRenders:  pageRenders,
	}, nil
}

// RecordAPIRequest records one backend call. A zero status means the request never got a response.
func (e *Exporter) RecordAPIRequest(ctx context.Context, route string, status int, duration time.Duration) {
	opt := metric.WithAttributes(
		attribute.String("route", route),
		attribute.String("status", statusLabel(status)),
	)
	e.apiRequests.Add(ctx, 1, opt)
	e.apiDuration.Record(ctx, duration.Seconds(), opt)
}

func (e *Exporter) RecordCacheLookup(ctx context.Context, kind string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	e.cacheLookups.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind),
		attribute.String("result", result),
	))
}

func (e *Exporter) RecordPageRender(ctx context.Context, page string, status int) {
	e.pageRenders.Add(ctx, 1, metric.WithAttributes(
		attribute.String("page", page),
		attribute.String("status", statusLabel(status)),
	))
}

// Close shuts down the exporter and flushes any pending metrics.
func (e *Exporter) Close(ctx context.Context) error {
	return e.provider.Shutdown(ctx)
}

func statusLabel(status int) string {
	if status == 0 {
		return "error"
	}
	return strconv.Itoa(status)
}
