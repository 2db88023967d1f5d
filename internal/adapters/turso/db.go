package turso

import (
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	_ "github.com/tursodatabase/go-libsql"
)

// NewDB opens the libSQL database at dbURL. Local paths and file: URLs open an
// embedded database; remote URLs carry authToken when one is set.
func NewDB(dbURL, authToken string) (*sql.DB, error) {
	if dbURL == "" {
		return nil, fmt.Errorf("database URL is required")
	}

	dsn, err := connectionString(dbURL, authToken)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("libsql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

func connectionString(dbURL, authToken string) (string, error) {
	if !strings.Contains(dbURL, "://") {
		if strings.HasPrefix(dbURL, "file:") {
			return dbURL, nil
		}
		return "file:" + dbURL, nil
	}

	if authToken == "" {
		return dbURL, nil
	}

	u, err := url.Parse(dbURL)
	if err != nil {
		return "", fmt.Errorf("parsing database URL: %w", err)
	}
	q := u.Query()
	q.Set("authToken", authToken)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
