package testdb

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thebearingedge/tooldb/internal/domain"
	"github.com/thebearingedge/tooldb/internal/platform/postgres"
)

// BaselineTools returns the fixed dataset the seed loader installs. Every
// test observes exactly these rows (with IDs 1..n in order) before and after
// it runs.
func BaselineTools() []domain.Tool {
	return postgres.BaselineTools()
}

// SeedBaseline resets the tools table to the baseline dataset, failing the
// test on error. It must complete before the first test scope opens.
func SeedBaseline(t *testing.T, db *sql.DB) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	err := postgres.SeedTools(ctx, db)
	require.NoError(t, err, "Failed to seed baseline dataset")
}
