// Package dbtest opens a migrated PostgreSQL database for repository
// integration tests. Tests are skipped unless TEST_DATABASE_URL is set.
package dbtest

import (
	"context"
	"os"
	"testing"

	"github.com/ghuser/shareit/migrations/shareit"
	"github.com/ghuser/shareit/pkg/database"
	"github.com/ghuser/shareit/pkg/logger"
	"github.com/ghuser/shareit/pkg/migrator"
)

// EnvURL names the variable holding the test database DSN.
const EnvURL = "TEST_DATABASE_URL"

// Open connects to TEST_DATABASE_URL, applies migrations and empties every
// table. The pool is closed when the test ends.
func Open(t *testing.T) *database.Database {
	t.Helper()
	url := os.Getenv(EnvURL)
	if url == "" {
		t.Skip(EnvURL + " not set; skipping integration test")
	}

	ctx := context.Background()
	db, err := database.NewPool(ctx, url, logger.Nop())
	if err != nil {
		t.Fatalf("connect test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := migrator.Up(db.DB.DB, shareit.FS); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	if _, err := db.ExecContext(ctx,
		`TRUNCATE users, items, bookings, comments, requests RESTART IDENTITY`); err != nil {
		t.Fatalf("truncate test database: %v", err)
	}
	return db
}
