package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/kelseyhightower/envconfig"

	"github.com/emiliopalmerini/hydrate/internal/adapters/otel"
	"github.com/emiliopalmerini/hydrate/internal/util"
)

// API holds backend API configuration.
type API struct {
	URL      string        `envconfig:"HYDRATE_API_URL"`
	Timeout  time.Duration `envconfig:"HYDRATE_API_TIMEOUT" default:"10s"`
	DeviceID string        `envconfig:"HYDRATE_DEVICE_ID"`
}

// Database holds response cache database configuration.
type Database struct {
	URL       string        `envconfig:"HYDRATE_DATABASE_URL"`
	AuthToken string        `envconfig:"HYDRATE_AUTH_TOKEN"`
	CacheTTL  time.Duration `envconfig:"HYDRATE_CACHE_TTL" default:"5m"`
}

// Server holds web server configuration.
type Server struct {
	Port            int           `envconfig:"PORT" default:"8080"`
	ShutdownTimeout time.Duration `envconfig:"HYDRATE_SHUTDOWN_TIMEOUT" default:"5s"`
	Timezone        string        `envconfig:"HYDRATE_TIMEZONE" default:"UTC"`
	SecureCookies   bool          `envconfig:"HYDRATE_SECURE_COOKIES" default:"false"`
}

// Config is the resolved hydrate configuration.
type Config struct {
	API       API
	Database  Database
	Server    Server
	Telemetry otel.Config
	LogLevel  string `envconfig:"HYDRATE_LOG_LEVEL" default:"info"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	if cfg.Database.URL == "" {
		path, err := util.DefaultCachePath()
		if err != nil {
			return nil, fmt.Errorf("resolving default database path: %w", err)
		}
		cfg.Database.URL = path
	}

	if _, err := cfg.Location(); err != nil {
		return nil, err
	}
	if _, err := cfg.Level(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Location returns the time zone used to bucket intake entries into days.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Server.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid HYDRATE_TIMEZONE %q: %w", c.Server.Timezone, err)
	}
	return loc, nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid HYDRATE_LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// Redacted returns the configuration as ordered key/value pairs with secrets masked.
func (c *Config) Redacted() [][2]string {
	token := ""
	if c.Database.AuthToken != "" {
		token = "********"
	}
	return [][2]string{
		{"HYDRATE_API_URL", c.API.URL},
		{"HYDRATE_API_TIMEOUT", c.API.Timeout.String()},
		{"HYDRATE_DEVICE_ID", c.API.DeviceID},
		{"HYDRATE_DATABASE_URL", c.Database.URL},
		{"HYDRATE_AUTH_TOKEN", token},
		{"HYDRATE_CACHE_TTL", c.Database.CacheTTL.String()},
		{"PORT", fmt.Sprintf("%d", c.Server.Port)},
		{"HYDRATE_SHUTDOWN_TIMEOUT", c.Server.ShutdownTimeout.String()},
		{"HYDRATE_TIMEZONE", c.Server.Timezone},
		{"HYDRATE_SECURE_COOKIES", fmt.Sprintf("%t", c.Server.SecureCookies)},
		{"HYDRATE_LOG_LEVEL", c.LogLevel},
		{"HYDRATE_OTEL_ENABLED", fmt.Sprintf("%t", c.Telemetry.Enabled)},
		{"HYDRATE_OTEL_ENDPOINT", c.Telemetry.Endpoint},
		{"HYDRATE_OTEL_INSECURE", fmt.Sprintf("%t", c.Telemetry.Insecure)},
	}
}
