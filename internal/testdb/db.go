package testdb

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/stretchr/testify/require"
)

// TestTimeout defines a default timeout for test database operations.
const TestTimeout = 5 * time.Second

// IsIntegrationTestEnvironment returns true if a test database URL is
// configured, indicating that integration tests can be run.
func IsIntegrationTestEnvironment() bool {
	return len(GetTestDatabaseURL()) > 0
}

// GetTestDatabaseURL returns the database URL for tests.
// It checks DATABASE_URL and TOOLDB_TEST_DB_URL environment variables
// in that order, returning the first non-empty value.
func GetTestDatabaseURL() string {
	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		dbURL = os.Getenv("TOOLDB_TEST_DB_URL")
	}

	return dbURL
}

// Connect opens the shared connection pool for a test run and verifies it
// with a ping. The pool is the process-wide connection resource; callers own
// it for the lifetime of the run and must close it exactly once, after all
// in-flight transactions have been resolved.
func Connect(ctx context.Context, dbURL string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	// Pool limits match the sequential test execution model: one transaction
	// is open at a time, so a small pool is plenty.
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, TestTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		closeErr := db.Close()
		if closeErr != nil {
			return nil, fmt.Errorf("database ping failed: %w (close error: %v)", err, closeErr)
		}
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return db, nil
}

// GetTestDB returns a database connection for testing.
// It automatically skips the test if no test database URL is set, ensuring
// consistent behavior for integration tests, and registers a cleanup that
// closes the pool when the test (and all its subtests) finish.
func GetTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := GetTestDatabaseURL()
	if dbURL == "" {
		t.Skip("DATABASE_URL or TOOLDB_TEST_DB_URL not set - skipping integration test")
	}

	db, err := Connect(context.Background(), dbURL)
	require.NoError(t, err, "Failed to connect to test database")

	t.Cleanup(func() {
		CleanupDB(t, db)
	})

	return db
}

// CleanupDB properly closes a database connection, logging any errors.
func CleanupDB(t *testing.T, db *sql.DB) {
	t.Helper()
	if db == nil {
		return
	}

	if err := db.Close(); err != nil {
		t.Logf("Warning: failed to close database connection: %v", err)
	}
}
