package larqapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/emiliopalmerini/hydrate/internal/domain"
)

type recordedCall struct {
	route  string
	status int
}

type mockRecorder struct {
	mu    sync.Mutex
	calls []recordedCall
}

func (m *mockRecorder) RecordAPIRequest(_ context.Context, route string, status int, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, recordedCall{route: route, status: status})
}

func (m *mockRecorder) RecordCacheLookup(context.Context, string, bool) {}
func (m *mockRecorder) RecordPageRender(context.Context, string, int)   {}
func (m *mockRecorder) Close(context.Context) error                     { return nil }

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(Config{BaseURL: srv.URL + "/"}, opts...)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	return c
}

func TestNewClient_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"empty", ""},
		{"no scheme", "api.example.com"},
		{"ftp", "ftp://api.example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewClient(Config{BaseURL: tt.url}); err == nil {
				t.Errorf("NewClient(%q) expected error", tt.url)
			}
		})
	}
}

func TestGetLiquidIntake(t *testing.T) {
	var gotPath, gotQuery string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"entries":[{"dateCreated":"2024-03-15T08:00:00Z","source":"bottle","time":"2024-03-15T08:00:00Z","type":"water","volumeInLiter":0.5}]}`))
	})

	got, err := c.GetLiquidIntake(context.Background(), domain.LiquidIntakeRequest{
		StartTime: "2023-03-15",
		EndTime:   "2024-03-15",
	})
	if err != nil {
		t.Fatalf("GetLiquidIntake() error = %v", err)
	}

	if gotPath != RouteLiquidIntake {
		t.Errorf("path = %q, want %q", gotPath, RouteLiquidIntake)
	}
	if gotQuery != "endTime=2024-03-15&startTime=2023-03-15" {
		t.Errorf("query = %q", gotQuery)
	}

	want := &domain.LiquidIntake{Entries: []domain.LiquidIntakeEntry{{
		DateCreated:   "2024-03-15T08:00:00Z",
		Source:        "bottle",
		Time:          "2024-03-15T08:00:00Z",
		Type:          "water",
		VolumeInLiter: 0.5,
	}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("GetLiquidIntake() mismatch (-want +got):\n%s", diff)
	}
}

func TestGetLiquidIntake_InvalidRequestSkipsNetwork(t *testing.T) {
	called := false
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, err := c.GetLiquidIntake(context.Background(), domain.LiquidIntakeRequest{StartTime: "2024-06-02", EndTime: "2024-06-01"})
	if !errors.Is(err, domain.ErrInvalidRequest) {
		t.Errorf("error = %v, want ErrInvalidRequest", err)
	}
	if called {
		t.Error("backend should not be called for an invalid request")
	}
}

func TestGetHydrationGoal(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != RouteHydrationGoal {
			t.Errorf("path = %q", r.URL.Path)
		}
		if r.URL.Query().Get("viewFrom") != "right" || r.URL.Query().Get("index") != "time" {
			t.Errorf("query = %q", r.URL.RawQuery)
		}
		w.Write([]byte(`{"entries":[{"time":"2024-01-01T00:00:00Z","type":"daily","volumeInLiter":2.5}]}`))
	})

	got, err := c.GetHydrationGoal(context.Background(), domain.LatestGoalRequest())
	if err != nil {
		t.Fatalf("GetHydrationGoal() error = %v", err)
	}
	if len(got.Entries) != 1 || got.Entries[0].VolumeInLiter != 2.5 {
		t.Errorf("GetHydrationGoal() = %+v", got)
	}
}

func TestGetUserInfo(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.RawQuery != "" {
			t.Errorf("user-info should carry no query, got %q", r.URL.RawQuery)
		}
		w.Write([]byte(`{"displayName":"Sam"}`))
	})

	got, err := c.GetUserInfo(context.Background())
	if err != nil {
		t.Fatalf("GetUserInfo() error = %v", err)
	}
	if got.DisplayName != "Sam" {
		t.Errorf("DisplayName = %q, want Sam", got.DisplayName)
	}
}

func TestGetDeviceInfo(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("deviceId"); got != "bottle-1" {
			t.Errorf("deviceId = %q", got)
		}
		w.Write([]byte(`{"name":"Desk bottle","sizeInMilliliter":740}`))
	})

	got, err := c.GetDeviceInfo(context.Background(), domain.DeviceInfoRequest{DeviceID: "bottle-1"})
	if err != nil {
		t.Fatalf("GetDeviceInfo() error = %v", err)
	}
	if got.Name != "Desk bottle" || got.SizeInMilliliter != 740 {
		t.Errorf("GetDeviceInfo() = %+v", got)
	}
}

func TestClient_StatusError(t *testing.T) {
	rec := &mockRecorder{}
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}, WithMetrics(rec))

	_, err := c.GetUserInfo(context.Background())

	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("error = %v, want *StatusError", err)
	}
	if se.StatusCode != http.StatusInternalServerError || se.Route != RouteUserInfo {
		t.Errorf("StatusError = %+v", se)
	}

	want := []recordedCall{{route: RouteUserInfo, status: http.StatusInternalServerError}}
	if diff := cmp.Diff(want, rec.calls, cmp.AllowUnexported(recordedCall{})); diff != "" {
		t.Errorf("recorded calls mismatch (-want +got):\n%s", diff)
	}
}

func TestClient_DecodeError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	})

	if _, err := c.GetUserInfo(context.Background()); err == nil {
		t.Error("expected decode error")
	}
}

func TestClient_ContextCanceled(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := c.GetUserInfo(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestWithHTTPClient(t *testing.T) {
	hc := &http.Client{Timeout: time.Second}
	c, err := NewClient(Config{BaseURL: "http://localhost"}, WithHTTPClient(hc))
	if err != nil {
		t.Fatal(err)
	}
	if c.httpClient != hc {
		t.Error("WithHTTPClient did not replace the client")
	}
}
