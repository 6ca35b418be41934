//go:build integration

// Package testdb provides helpers for tests that run against a real
// PostgreSQL database. Tests using it are skipped unless a database URL is
// available in the environment.
package testdb

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/storefront-api/internal/platform/postgres/migrations"
	"github.com/phrazzld/storefront-api/internal/redact"
)

// TestTimeout bounds setup queries against the test database.
const TestTimeout = 5 * time.Second

// urlEnvVars are checked in order for the test database URL.
var urlEnvVars = []string{"STOREFRONT_TEST_DATABASE_URL", "DATABASE_URL"}

// GetTestDatabaseURL returns the first non-empty test database URL.
func GetTestDatabaseURL() string {
	for _, name := range urlEnvVars {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

// GetTestDB opens the test database, applies all migrations and empties the
// application tables. The connection is closed when the test ends.
// The test is skipped when no database URL is configured.
func GetTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := GetTestDatabaseURL()
	if dbURL == "" {
		t.Skipf("integration test skipped: set one of %v", urlEnvVars)
	}

	db, err := sql.Open("pgx", dbURL)
	require.NoError(t, err, "failed to open test database")
	t.Cleanup(func() { _ = db.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		t.Fatalf("test database unreachable at %s: %v", redact.String(dbURL), err)
	}

	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, migrations.Run(context.Background(), db, quiet, "up"), "failed to apply migrations")

	ResetTables(t, db)
	return db
}

// ResetTables truncates the application tables and restarts their id
// sequences.
func ResetTables(t *testing.T, db *sql.DB, tables ...string) {
	t.Helper()
	if len(tables) == 0 {
		tables = []string{"products", "users"}
	}
	for _, table := range tables {
		_, err := db.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table))
		require.NoError(t, err, "failed to truncate %s", table)
	}
}

// IDs returns the ids of table in ascending order.
func IDs(t *testing.T, db *sql.DB, table string) []int64 {
	t.Helper()
	rows, err := db.Query(fmt.Sprintf("SELECT id FROM %s ORDER BY id", table))
	require.NoError(t, err)
	defer func() { _ = rows.Close() }()

	var ids []int64
	for rows.Next() {
		var id int64
		require.NoError(t, rows.Scan(&id))
		ids = append(ids, id)
	}
	require.NoError(t, rows.Err())
	return ids
}
