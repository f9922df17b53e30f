package store

import (
	"context"
	"database/sql"

	"github.com/thebearingedge/tooldb/internal/domain"
)

// ToolUpdate describes the mutable fields of a tool for UpdateByID.
// Nil fields are left unchanged.
type ToolUpdate struct {
	Name        *string
	Description *string
}

// ToolStore defines the interface for tool data persistence.
type ToolStore interface {
	// List retrieves all tools ordered by ID.
	List(ctx context.Context) ([]domain.Tool, error)

	// GetByID retrieves a tool by its unique ID.
	// Returns ErrToolNotFound if the tool does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Tool, error)

	// Create saves a new tool to the store. The database assigns the ID,
	// which is written back to the provided tool along with the stored
	// timestamps. Returns ErrToolNameExists if the name is already taken.
	// Returns validation errors from the domain Tool if data is invalid.
	Create(ctx context.Context, tool *domain.Tool) error

	// UpdateByID modifies an existing tool and returns the updated row.
	// Returns ErrToolNotFound if the tool does not exist.
	// Returns ErrToolNameExists if renaming to a name that already exists.
	UpdateByID(ctx context.Context, id int64, update ToolUpdate) (*domain.Tool, error)

	// DeleteByID removes a tool from the store by its ID. It reports
	// whether a row was actually deleted; a missing row is not an error.
	DeleteByID(ctx context.Context, id int64) (bool, error)

	// WithTx returns a new ToolStore instance that uses the provided transaction.
	// This allows for multiple operations to be executed within a single transaction.
	// The transaction should be created and managed by the caller.
	WithTx(tx *sql.Tx) ToolStore
}
