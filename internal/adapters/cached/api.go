package cached

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/emiliopalmerini/hydrate/internal/domain"
	"github.com/emiliopalmerini/hydrate/internal/ports"
)

// Cache kinds reported to the metrics recorder.
const (
	KindIntake = "intake"
	KindGoals  = "hydration-goals"
	KindUser   = "user-info"
	KindDevice = "device-info"
)

// API serves backend responses from a ResponseCache and fills it on misses.
// Cache failures are logged and never fail a request.
type API struct {
	next    ports.HydrationAPI
	cache   ports.ResponseCache
	ttl     time.Duration
	metrics ports.MetricsRecorder
	logger  *slog.Logger
}

// Option configures an API.
type Option func(*API)

func WithMetrics(m ports.MetricsRecorder) Option {
	return func(a *API) {
		a.metrics = m
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(a *API) {
		a.logger = l
	}
}

// NewAPI wraps next with a cache whose entries live for ttl.
func NewAPI(next ports.HydrationAPI, cache ports.ResponseCache, ttl time.Duration, opts ...Option) *API {
	a := &API{
		next:   next,
		cache:  cache,
		ttl:    ttl,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func IntakeKey(req domain.LiquidIntakeRequest) string {
	return fmt.Sprintf("intake:%s:%s:%s", req.StartTime, req.EndTime, req.Index)
}

func GoalsKey(req domain.HydrationGoalRequest) string {
	return fmt.Sprintf("hydration-goals:%s:%s", req.ViewFrom, req.Index)
}

func UserKey() string {
	return "user-info"
}

func DeviceKey(req domain.DeviceInfoRequest) string {
	return fmt.Sprintf("device-info:%s", req.DeviceID)
}

func (a *API) GetLiquidIntake(ctx context.Context, req domain.LiquidIntakeRequest) (*domain.LiquidIntake, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return fetch(ctx, a, KindIntake, IntakeKey(req), func() (*domain.LiquidIntake, error) {
		return a.next.GetLiquidIntake(ctx, req)
	})
}

func (a *API) GetHydrationGoal(ctx context.Context, req domain.HydrationGoalRequest) (*domain.HydrationGoals, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return fetch(ctx, a, KindGoals, GoalsKey(req), func() (*domain.HydrationGoals, error) {
		return a.next.GetHydrationGoal(ctx, req)
	})
}

func (a *API) GetUserInfo(ctx context.Context) (*domain.UserInfo, error) {
	return fetch(ctx, a, KindUser, UserKey(), func() (*domain.UserInfo, error) {
		return a.next.GetUserInfo(ctx)
	})
}

func (a *API) GetDeviceInfo(ctx context.Context, req domain.DeviceInfoRequest) (*domain.DeviceInfo, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return fetch(ctx, a, KindDevice, DeviceKey(req), func() (*domain.DeviceInfo, error) {
		return a.next.GetDeviceInfo(ctx, req)
	})
}

func fetch[T any](ctx context.Context, a *API, kind, key string, load func() (*T, error)) (*T, error) {
	payload, hit, err := a.cache.Get(ctx, key)
	if err != nil {
		a.logger.WarnContext(ctx, "response cache read failed", "key", key, "error", err)
		hit = false
	}
	if hit {
		var v T
		err := json.Unmarshal(payload, &v)
		if err == nil {
			a.record(ctx, kind, true)
			return &v, nil
		}
		a.logger.WarnContext(ctx, "discarding undecodable cache entry", "key", key, "error", err)
	}
	a.record(ctx, kind, false)

	v, err := load()
	if err != nil {
		return nil, err
	}

	payload, err = json.Marshal(v)
	if err != nil {
		a.logger.WarnContext(ctx, "encoding response for cache failed", "key", key, "error", err)
		return v, nil
	}
	if err := a.cache.Set(ctx, key, payload, a.ttl); err != nil {
		a.logger.WarnContext(ctx, "response cache write failed", "key", key, "error", err)
	}
	return v, nil
}

func (a *API) record(ctx context.Context, kind string, hit bool) {
	if a.metrics != nil {
		a.metrics.RecordCacheLookup(ctx, kind, hit)
	}
}
