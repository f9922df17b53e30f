package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thebearingedge/tooldb/internal/domain"
	"github.com/thebearingedge/tooldb/internal/platform/logger"
	"github.com/thebearingedge/tooldb/internal/store"
)

// BaselineTools returns the fixed dataset the seed loader installs. The
// slice is freshly allocated on each call so callers may mutate their copy.
func BaselineTools() []domain.Tool {
	return []domain.Tool{
		{Name: "hammer", Description: "pounds nails"},
		{Name: "drill", Description: "drills holes"},
		{Name: "toolbelt", Description: "holds tools"},
	}
}

// SeedTools resets the tools table to the baseline dataset: it truncates the
// table, restarts the identity sequence so the baseline rows get IDs starting
// at 1, and inserts the fixed rows. The whole reset runs in one committed
// transaction, so a failed seed leaves the previous state intact.
func SeedTools(ctx context.Context, db *sql.DB) error {
	return store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "TRUNCATE TABLE tools RESTART IDENTITY CASCADE"); err != nil {
			return fmt.Errorf("failed to truncate tools table: %w", err)
		}

		// Insert through the repository so the seed path exercises the same
		// code the application does, just bound to a transaction handle.
		tools := NewPostgresToolStore(tx, logger.FromContext(ctx))
		for _, baseline := range BaselineTools() {
			tool := baseline
			if err := tools.Create(ctx, &tool); err != nil {
				return fmt.Errorf("failed to seed tool %q: %w", tool.Name, err)
			}
		}

		return nil
	})
}
