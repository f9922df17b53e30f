package postgres

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

// MigrationsFS embeds the goose SQL migrations so migrations can run from any
// working directory, without locating the source tree on disk.
//
//go:embed migrations/*.sql
var MigrationsFS embed.FS

// MigrationsDir is the path of the migration files within MigrationsFS.
const MigrationsDir = "migrations"

// Migrate runs the embedded goose migrations against the given database,
// bringing the schema up to date. Safe to call repeatedly; goose skips
// migrations that have already been applied.
func Migrate(db *sql.DB) error {
	goose.SetTableName("schema_migrations")
	goose.SetBaseFS(MigrationsFS)

	if err := goose.Up(db, MigrationsDir); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
