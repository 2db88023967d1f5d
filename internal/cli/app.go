package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/emiliopalmerini/hydrate/internal/adapters/cached"
	"github.com/emiliopalmerini/hydrate/internal/adapters/larqapi"
	"github.com/emiliopalmerini/hydrate/internal/adapters/otel"
	"github.com/emiliopalmerini/hydrate/internal/adapters/turso"
	"github.com/emiliopalmerini/hydrate/internal/infrastructure/config"
	"github.com/emiliopalmerini/hydrate/internal/migrate"
	"github.com/emiliopalmerini/hydrate/internal/ports"
)

// envFile is loaded before reading configuration when present.
var envFile = ".env"

// AppContext holds all shared dependencies for CLI commands.
type AppContext struct {
	Config  *config.Config
	Logger  *slog.Logger
	DB      *sql.DB
	Cache   ports.ResponseCache
	Metrics ports.MetricsRecorder
}

// loadConfig reads the .env file, if any, and then the environment.
func loadConfig() (*config.Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	level, _ := cfg.Level()
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// openDB opens the cache database, creating the parent directory of a local
// database file when needed.
func openDB(cfg *config.Config) (*sql.DB, error) {
	if dir := localDir(cfg.Database.URL); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	db, err := turso.NewDB(cfg.Database.URL, cfg.Database.AuthToken)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// localDir returns the directory of a local database path, or "" for remote
// and in-memory databases.
func localDir(dbURL string) string {
	if strings.Contains(dbURL, "://") || strings.Contains(dbURL, ":memory:") {
		return ""
	}
	path := strings.TrimPrefix(dbURL, "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return ""
	}
	return dir
}

// NewAppContext loads configuration, opens the cache database and applies
// pending migrations.
func NewAppContext(ctx context.Context) (*AppContext, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	logger := newLogger(cfg)

	db, err := openDB(cfg)
	if err != nil {
		return nil, err
	}
	if err := migrate.RunAll(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	metrics, err := otel.New(ctx, cfg.Telemetry)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize metrics: %w", err)
	}

	return &AppContext{
		Config:  cfg,
		Logger:  logger,
		DB:      db,
		Cache:   turso.NewResponseCacheRepository(db),
		Metrics: metrics,
	}, nil
}

// API returns the backend client wrapped with the response cache.
func (a *AppContext) API() (ports.HydrationAPI, error) {
	if a.Config.API.URL == "" {
		return nil, errors.New("HYDRATE_API_URL is required")
	}
	client, err := larqapi.NewClient(larqapi.Config{
		BaseURL: a.Config.API.URL,
		Timeout: a.Config.API.Timeout,
	}, larqapi.WithMetrics(a.Metrics))
	if err != nil {
		return nil, err
	}
	return cached.NewAPI(client, a.Cache, a.Config.Database.CacheTTL,
		cached.WithMetrics(a.Metrics),
		cached.WithLogger(a.Logger),
	), nil
}

// Close releases all resources held by the AppContext.
func (a *AppContext) Close(ctx context.Context) error {
	var errs []error
	if a.Metrics != nil {
		errs = append(errs, a.Metrics.Close(ctx))
	}
	if a.DB != nil {
		errs = append(errs, a.DB.Close())
	}
	return errors.Join(errs...)
}
