package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/thebearingedge/tooldb/internal/domain"
	"github.com/thebearingedge/tooldb/internal/platform/logger"
	"github.com/thebearingedge/tooldb/internal/store"
)

// PostgresToolStore implements the store.ToolStore interface
// using a PostgreSQL database as the storage backend.
type PostgresToolStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresToolStore creates a new PostgreSQL implementation of the ToolStore
// interface. It accepts a database connection or transaction that should be
// initialized and managed by the caller. If logger is nil, a default logger
// will be used.
func NewPostgresToolStore(db store.DBTX, logger *slog.Logger) *PostgresToolStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresToolStore{
		db:     db,
		logger: logger.With(slog.String("component", "tool_store")),
	}
}

// Ensure PostgresToolStore implements store.ToolStore interface
var _ store.ToolStore = (*PostgresToolStore)(nil)

// WithTx implements store.ToolStore.WithTx
// It returns a new ToolStore bound to the provided transaction, so a series
// of operations can share one transaction. The original store is unchanged.
func (s *PostgresToolStore) WithTx(tx *sql.Tx) store.ToolStore {
	return &PostgresToolStore{
		db:     tx,
		logger: s.logger,
	}
}

// List implements store.ToolStore.List
// It retrieves all tools ordered by ID.
func (s *PostgresToolStore) List(ctx context.Context) ([]domain.Tool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, description, created_at, updated_at
		FROM tools
		ORDER BY id ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query tools",
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to query tools: %w", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	var tools []domain.Tool
	for rows.Next() {
		var tool domain.Tool
		if err := rows.Scan(
			&tool.ID,
			&tool.Name,
			&tool.Description,
			&tool.CreatedAt,
			&tool.UpdatedAt,
		); err != nil {
			log.Error("failed to scan tool row",
				slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to scan tool row: %w", err)
		}
		tools = append(tools, tool)
	}

	if err := rows.Err(); err != nil {
		log.Error("error iterating tool rows",
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("error iterating tool rows: %w", err)
	}

	return tools, nil
}

// GetByID implements store.ToolStore.GetByID
// Returns store.ErrToolNotFound if the tool does not exist.
func (s *PostgresToolStore) GetByID(ctx context.Context, id int64) (*domain.Tool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, description, created_at, updated_at
		FROM tools
		WHERE id = $1
	`

	var tool domain.Tool
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&tool.ID,
		&tool.Name,
		&tool.Description,
		&tool.CreatedAt,
		&tool.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrToolNotFound
		}
		log.Error("failed to get tool by ID",
			slog.Int64("tool_id", id),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to get tool by ID: %w", MapError(err))
	}

	return &tool, nil
}

// Create implements store.ToolStore.Create
// It saves a new tool to the database, handling domain validation. The
// database-assigned ID and stored timestamps are written back to the tool.
// Returns store.ErrToolNameExists if the name is already taken.
func (s *PostgresToolStore) Create(ctx context.Context, tool *domain.Tool) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := tool.Validate(); err != nil {
		log.Warn("tool validation failed during create",
			slog.String("error", err.Error()),
			slog.String("tool_name", tool.Name))
		return err
	}

	now := time.Now().UTC()

	query := `
		INSERT INTO tools (name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		tool.Name,
		tool.Description,
		now,
		now,
	).Scan(&tool.ID, &tool.CreatedAt, &tool.UpdatedAt)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("duplicate tool name during create",
				slog.String("tool_name", tool.Name))
			return fmt.Errorf("%w: %q", store.ErrToolNameExists, tool.Name)
		}
		log.Error("failed to create tool",
			slog.String("tool_name", tool.Name),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to create tool: %w", MapError(err))
	}

	return nil
}

// UpdateByID implements store.ToolStore.UpdateByID
// Nil fields in the update are left unchanged. Returns the updated row.
// Returns store.ErrToolNotFound if the tool does not exist.
// Returns store.ErrToolNameExists if renaming to a name that already exists.
func (s *PostgresToolStore) UpdateByID(
	ctx context.Context,
	id int64,
	update store.ToolUpdate,
) (*domain.Tool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE tools
		SET name = COALESCE($2, name),
		    description = COALESCE($3, description),
		    updated_at = $4
		WHERE id = $1
		RETURNING id, name, description, created_at, updated_at
	`

	var tool domain.Tool
	err := s.db.QueryRowContext(ctx, query,
		id,
		update.Name,
		update.Description,
		time.Now().UTC(),
	).Scan(
		&tool.ID,
		&tool.Name,
		&tool.Description,
		&tool.CreatedAt,
		&tool.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrToolNotFound
		}
		if IsUniqueViolation(err) {
			name := ""
			if update.Name != nil {
				name = *update.Name
			}
			return nil, fmt.Errorf("%w: %q", store.ErrToolNameExists, name)
		}
		log.Error("failed to update tool",
			slog.Int64("tool_id", id),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update tool: %w", MapError(err))
	}

	return &tool, nil
}

// DeleteByID implements store.ToolStore.DeleteByID
// It reports whether a row was actually deleted; a missing row is not an error.
func (s *PostgresToolStore) DeleteByID(ctx context.Context, id int64) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM tools
		WHERE id = $1
		RETURNING id
	`

	var deletedID int64
	err := s.db.QueryRowContext(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		log.Error("failed to delete tool",
			slog.Int64("tool_id", id),
			slog.String("error", err.Error()))
		return false, fmt.Errorf("failed to delete tool: %w", MapError(err))
	}

	return true, nil
}
