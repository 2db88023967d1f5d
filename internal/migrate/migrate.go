// Package migrate applies the embedded SQL migrations to the cache database.
package migrate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/emiliopalmerini/hydrate/migrations"
)

// Migration is one numbered schema change loaded from migrations.FS.
type Migration struct {
	Version int
	Name    string
	UpSQL   string
	DownSQL string
}

// Status describes where a database stands relative to the embedded migrations.
type Status struct {
	Current int
	Latest  int
	Dirty   bool
	Pending []Migration
}

// GetStatus reports the applied version and the migrations still pending.
func GetStatus(ctx context.Context, db *sql.DB) (*Status, error) {
	st, _, err := load(ctx, db)
	return st, err
}

// Up applies all pending migrations and returns how many ran.
func Up(ctx context.Context, db *sql.DB) (int, error) {
	st, _, err := load(ctx, db)
	if err != nil {
		return 0, err
	}
	if st.Dirty {
		return 0, fmt.Errorf("database is in dirty state at version %d", st.Current)
	}

	for i, m := range st.Pending {
		if err := apply(ctx, db, m, m.UpSQL, m.Version); err != nil {
			return i, err
		}
	}
	return len(st.Pending), nil
}

// RunAll applies pending migrations, discarding the count.
func RunAll(ctx context.Context, db *sql.DB) error {
	_, err := Up(ctx, db)
	return err
}

// DownTo reverts applied migrations until the database is at target.
func DownTo(ctx context.Context, db *sql.DB, target int) error {
	if target < 0 {
		return fmt.Errorf("target version must not be negative, got %d", target)
	}

	st, all, err := load(ctx, db)
	if err != nil {
		return err
	}
	if st.Dirty {
		return fmt.Errorf("database is in dirty state at version %d", st.Current)
	}

	for i := len(all) - 1; i >= 0; i-- {
		m := all[i]
		if m.Version > st.Current || m.Version <= target {
			continue
		}
		if m.DownSQL == "" {
			return fmt.Errorf("no down migration for version %d", m.Version)
		}
		if err := apply(ctx, db, m, m.DownSQL, m.Version-1); err != nil {
			return err
		}
	}
	return nil
}

// load reads the version table and the embedded migrations together.
func load(ctx context.Context, db *sql.DB) (*Status, []Migration, error) {
	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			dirty INTEGER NOT NULL DEFAULT 0
		)
	`); err != nil {
		return nil, nil, fmt.Errorf("failed to create migrations table: %w", err)
	}

	st := &Status{}
	var dirty int
	err := db.QueryRowContext(ctx,
		`SELECT version, dirty FROM schema_migrations ORDER BY version DESC LIMIT 1`,
	).Scan(&st.Current, &dirty)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, nil, fmt.Errorf("failed to get current version: %w", err)
	}
	st.Dirty = dirty == 1

	all, err := LoadMigrations()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load migrations: %w", err)
	}
	for _, m := range all {
		st.Latest = max(st.Latest, m.Version)
		if m.Version > st.Current {
			st.Pending = append(st.Pending, m)
		}
	}
	return st, all, nil
}

// LoadMigrations returns the embedded NNN_name.up.sql files, with their
// optional .down.sql pair, sorted by version.
func LoadMigrations() ([]Migration, error) {
	files, err := fs.Glob(migrations.FS, "*.up.sql")
	if err != nil {
		return nil, err
	}

	result := make([]Migration, 0, len(files))
	for _, file := range files {
		base := strings.TrimSuffix(file, ".up.sql")
		num, name, ok := strings.Cut(base, "_")
		version, err := strconv.Atoi(num)
		if !ok || err != nil {
			continue
		}

		up, err := fs.ReadFile(migrations.FS, file)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file, err)
		}
		down, err := fs.ReadFile(migrations.FS, base+".down.sql")
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read %s.down.sql: %w", base, err)
		}

		result = append(result, Migration{Version: version, Name: name, UpSQL: string(up), DownSQL: string(down)})
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Version < result[j].Version })
	return result, nil
}

// apply runs script in one transaction. The version row stays dirty at
// m.Version if the script fails, and moves to target once it commits.
func apply(ctx context.Context, db *sql.DB, m Migration, script string, target int) error {
	slog.Info("applying migration", "version", m.Version, "name", m.Name, "target", target)

	if err := setVersion(ctx, db, m.Version, true); err != nil {
		return fmt.Errorf("failed to set dirty flag: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range statements(script) {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d failed: %w\nSQL: %s", m.Version, err, stmt)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration %d: %w", m.Version, err)
	}

	if err := setVersion(ctx, db, target, false); err != nil {
		return fmt.Errorf("failed to clear dirty flag: %w", err)
	}
	return nil
}

// setVersion keeps a single row in schema_migrations; version 0 leaves it empty.
func setVersion(ctx context.Context, db *sql.DB, version int, dirty bool) error {
	if _, err := db.ExecContext(ctx, `DELETE FROM schema_migrations`); err != nil {
		return err
	}
	if version == 0 {
		return nil
	}
	flag := 0
	if dirty {
		flag = 1
	}
	_, err := db.ExecContext(ctx, `INSERT INTO schema_migrations (version, dirty) VALUES (?, ?)`, version, flag)
	return err
}

// statements splits script on semicolons and drops blank pieces.
func statements(script string) []string {
	var out []string
	for _, stmt := range strings.Split(script, ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			out = append(out, stmt)
		}
	}
	return out
}
