// Package main implements the tooldb command line interface, which prepares
// a database for use by the tool inventory: running schema migrations and
// installing the seed dataset.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver

	"github.com/thebearingedge/tooldb/internal/config"
	"github.com/thebearingedge/tooldb/internal/platform/logger"
	"github.com/thebearingedge/tooldb/internal/platform/postgres"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("tooldb: %v", err)
	}
}

// run loads configuration, connects to the database, and executes the
// requested command. With no arguments it runs migrations and then seeds,
// which is what a fresh development or test database needs.
func run(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logg := logger.Setup(cfg.Server)

	db, err := openDatabase(cfg, logg)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logg.Warn("failed to close database connection",
				slog.String("error", closeErr.Error()))
		}
	}()

	command := "setup"
	if len(args) > 0 {
		command = args[0]
	}

	ctx := logger.WithLogger(context.Background(), logg)

	switch command {
	case "migrate":
		return migrate(db, logg)
	case "seed":
		return seed(ctx, db, logg)
	case "setup":
		if err := migrate(db, logg); err != nil {
			return err
		}
		return seed(ctx, db, logg)
	default:
		return fmt.Errorf("unknown command %q (expected migrate, seed, or setup)", command)
	}
}

// openDatabase establishes a connection to the database and configures the
// connection pool. Returns the database connection if successful, or an
// error if the connection fails.
func openDatabase(cfg *config.Config, logg *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logg.Info("Database connection established")
	return db, nil
}

func migrate(db *sql.DB, logg *slog.Logger) error {
	if err := postgres.Migrate(db); err != nil {
		return err
	}
	logg.Info("Migrations applied")
	return nil
}

func seed(ctx context.Context, db *sql.DB, logg *slog.Logger) error {
	if err := postgres.SeedTools(ctx, db); err != nil {
		return err
	}
	logg.Info("Seed dataset installed",
		slog.Int("tools", len(postgres.BaselineTools())))
	return nil
}
