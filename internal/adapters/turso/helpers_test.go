package turso_test

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/tursodatabase/go-libsql"

	"github.com/emiliopalmerini/hydrate/internal/migrate"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("libsql", "file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("Failed to open in-memory database: %v", err)
	}

	ctx := context.Background()
	if err := migrate.RunAll(ctx, db); err != nil {
		_ = db.Close()
		t.Fatalf("Failed to run migrations: %v", err)
	}
	if _, err := db.ExecContext(ctx, `DELETE FROM response_cache`); err != nil {
		_ = db.Close()
		t.Fatalf("Failed to reset response cache: %v", err)
	}

	t.Cleanup(func() { _ = db.Close() })
	return db
}
