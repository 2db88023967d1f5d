package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/emiliopalmerini/hydrate/internal/adapters/otel"
	"github.com/emiliopalmerini/hydrate/internal/heatmap"
	"github.com/emiliopalmerini/hydrate/internal/ports"
	"github.com/emiliopalmerini/hydrate/internal/shared/middleware"
	"github.com/emiliopalmerini/hydrate/internal/theme"
)

//go:embed static/*
var staticFiles embed.FS

type Server struct {
	router          *http.ServeMux
	handler         http.Handler
	port            int
	api             ports.HydrationAPI
	metrics         ports.MetricsRecorder
	themes          theme.Store
	scale           heatmap.ColorScale
	loc             *time.Location
	deviceID        string
	logger          *slog.Logger
	now             func() time.Time
	shutdownTimeout time.Duration
}

// Option configures a Server.
type Option func(*Server)

func WithMetrics(m ports.MetricsRecorder) Option {
	return func(s *Server) { s.metrics = m }
}

func WithThemeStore(store theme.Store) Option {
	return func(s *Server) { s.themes = store }
}

func WithColorScale(scale heatmap.ColorScale) Option {
	return func(s *Server) { s.scale = scale }
}

// WithLocation sets the time zone used to bucket entries into days.
func WithLocation(loc *time.Location) Option {
	return func(s *Server) { s.loc = loc }
}

// WithDeviceID makes the dashboard show the given bottle.
func WithDeviceID(id string) Option {
	return func(s *Server) { s.deviceID = id }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.logger = l }
}

func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) { s.shutdownTimeout = d }
}

func NewServer(port int, api ports.HydrationAPI, opts ...Option) *Server {
	s := &Server{
		router:          http.NewServeMux(),
		port:            port,
		api:             api,
		metrics:         otel.NewNoOpExporter(),
		themes:          theme.NewCookieStore(false),
		scale:           heatmap.DefaultColorScale(),
		loc:             time.UTC,
		logger:          slog.Default(),
		now:             time.Now,
		shutdownTimeout: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.setupRoutes()
	s.handler = middleware.Chain(s.router,
		middleware.RequestID,
		middleware.Logging(s.logger),
		middleware.HTMX,
		theme.Middleware(s.themes),
	)
	return s
}

func (s *Server) setupRoutes() {
	// Static files
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to create static filesystem: %v", err))
	}
	s.router.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	// Health check
	s.router.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Pages
	s.router.HandleFunc("GET /{$}", s.handleDashboard)

	// API endpoints
	s.router.HandleFunc("GET /api/heatmap", s.handleAPIHeatmap)
	s.router.HandleFunc("POST /theme", s.handleTheme)

	s.router.HandleFunc("/", s.handleNotFound)
}

// Handler returns the routed handler wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("starting server", "url", fmt.Sprintf("http://localhost:%d", s.port))

	// Handle graceful shutdown
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server shutdown error", "error", err)
		}
	}()

	err := server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil // Graceful shutdown
	}
	return err
}
