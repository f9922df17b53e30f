package testdb

import (
	"database/sql"
	"fmt"
	"strings"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"

	"github.com/thebearingedge/tooldb/internal/platform/postgres"
)

// SetupTestDatabaseSchema runs database migrations to set up the test
// database, routing goose's output through the test log. Safe to call from
// every test; already-applied migrations are skipped.
func SetupTestDatabaseSchema(t *testing.T, db *sql.DB) {
	t.Helper()

	goose.SetLogger(&testGooseLogger{t: t})
	err := postgres.Migrate(db)
	require.NoError(t, err, "Failed to run migrations")
}

// testGooseLogger implements a minimal logger interface for goose
type testGooseLogger struct {
	t *testing.T
}

// Printf implements the required logging method for goose's SetLogger
func (l *testGooseLogger) Printf(format string, v ...interface{}) {
	msg := fmt.Sprintf(format, v...)
	l.t.Log("Goose: " + strings.TrimSpace(msg))
}

// Fatalf implements the required logging method for goose's SetLogger
func (l *testGooseLogger) Fatalf(format string, v ...interface{}) {
	msg := fmt.Sprintf(format, v...)
	l.t.Fatal("Goose fatal error: " + strings.TrimSpace(msg))
}
