package larqapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/emiliopalmerini/hydrate/internal/domain"
	"github.com/emiliopalmerini/hydrate/internal/ports"
)

// Backend routes.
const (
	RouteLiquidIntake  = "/liquid-intake"
	RouteHydrationGoal = "/hydration-goal"
	RouteUserInfo      = "/user-info"
	RouteDeviceInfo    = "/device-info"
)

// StatusError is returned when the backend answers with a non-2xx status.
type StatusError struct {
	Route      string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status code: %d", e.Route, e.StatusCode)
}

// Client queries the hydration backend over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	metrics    ports.MetricsRecorder
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithMetrics records every backend call on m.
func WithMetrics(m ports.MetricsRecorder) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient creates a new backend API client.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("backend API URL not configured")
	}
	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing backend API URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("backend API URL %q must be http or https", cfg.BaseURL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// GetLiquidIntake retrieves intake entries for the requested range.
func (c *Client) GetLiquidIntake(ctx context.Context, req domain.LiquidIntakeRequest) (*domain.LiquidIntake, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var out domain.LiquidIntake
	if err := c.get(ctx, RouteLiquidIntake, req.Values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetHydrationGoal retrieves goal entries ordered by req.Index.
func (c *Client) GetHydrationGoal(ctx context.Context, req domain.HydrationGoalRequest) (*domain.HydrationGoals, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var out domain.HydrationGoals
	if err := c.get(ctx, RouteHydrationGoal, req.Values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetUserInfo(ctx context.Context) (*domain.UserInfo, error) {
	var out domain.UserInfo
	if err := c.get(ctx, RouteUserInfo, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetDeviceInfo(ctx context.Context, req domain.DeviceInfoRequest) (*domain.DeviceInfo, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var out domain.DeviceInfo
	if err := c.get(ctx, RouteDeviceInfo, req.Values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// get issues a GET for route with query and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, route string, query url.Values, out any) (err error) {
	start := time.Now()
	status := 0
	defer func() {
		if c.metrics != nil {
			c.metrics.RecordAPIRequest(ctx, route, status, time.Since(start))
		}
	}()

	u := c.baseURL + route
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request %s: %w", route, err)
	}
	defer resp.Body.Close()
	status = resp.StatusCode

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Route: route, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", route, err)
	}
	return nil
}
