package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestAppContextClose_Nil(t *testing.T) {
	a := &AppContext{}
	if err := a.Close(context.Background()); err != nil {
		t.Errorf("Close() on empty context should not error, got: %v", err)
	}
}

func TestAppContextAPI_RequiresURL(t *testing.T) {
	clearEnv(t)
	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	a := &AppContext{Config: cfg, Cache: newMemoryCache(testNow)}
	if _, err := a.API(); err == nil {
		t.Error("expected error without HYDRATE_API_URL")
	}
}

func TestLocalDir(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"/var/lib/hydrate/cache.db", "/var/lib/hydrate"},
		{"file:/tmp/hydrate/cache.db", "/tmp/hydrate"},
		{"file:/tmp/hydrate/cache.db?mode=rwc", "/tmp/hydrate"},
		{"cache.db", ""},
		{"file::memory:", ""},
		{"libsql://db.example.turso.io", ""},
	}
	for _, tt := range tests {
		if got := localDir(tt.url); got != tt.want {
			t.Errorf("localDir(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}

func TestLoadConfig_EnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), ".env")
	content := "HYDRATE_API_URL=http://backend.test\nHYDRATE_TIMEZONE=Europe/Rome\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	old := envFile
	envFile = path
	t.Cleanup(func() { envFile = old })

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.API.URL != "http://backend.test" {
		t.Errorf("API.URL = %q", cfg.API.URL)
	}
	if cfg.Server.Timezone != "Europe/Rome" {
		t.Errorf("Server.Timezone = %q", cfg.Server.Timezone)
	}
}

func TestLoadConfig_MissingEnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	old := envFile
	envFile = filepath.Join(t.TempDir(), "missing.env")
	t.Cleanup(func() { envFile = old })

	if _, err := loadConfig(); err != nil {
		t.Errorf("missing .env should not be an error, got: %v", err)
	}
}

func TestOpenDB_CreatesDirectory(t *testing.T) {
	clearEnv(t)
	dir := filepath.Join(t.TempDir(), "nested", "data")
	t.Setenv("HYDRATE_DATABASE_URL", filepath.Join(dir, "cache.db"))

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	db, err := openDB(cfg)
	if err != nil {
		t.Fatalf("openDB() error: %v", err)
	}
	defer db.Close()

	if _, err := os.Stat(dir); err != nil {
		t.Errorf("database directory was not created: %v", err)
	}
}
