package domain

import (
	"errors"
	"time"
)

// Common validation errors
var (
	ErrEmptyToolName   = errors.New("tool name cannot be empty")
	ErrToolNameTooLong = errors.New("tool name must be at most 255 characters long")
)

// maxToolNameLength matches the length constraint on the tools.name column.
const maxToolNameLength = 255

// Tool represents a single entry in the tool inventory. The ID is assigned
// by the database from the table's identity sequence, so a Tool created in
// memory has a zero ID until it is persisted.
type Tool struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewTool creates a new Tool with the given name and description and sets the
// creation/update timestamps. The ID is left zero for the database to assign.
// Returns an error if validation fails.
func NewTool(name, description string) (*Tool, error) {
	tool := &Tool{
		Name:        name,
		Description: description,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}

	if err := tool.Validate(); err != nil {
		return nil, err
	}

	return tool, nil
}

// Validate checks if the Tool has valid data.
// Returns an error if any field fails validation.
func (t *Tool) Validate() error {
	if t.Name == "" {
		return ErrEmptyToolName
	}

	if len(t.Name) > maxToolNameLength {
		return ErrToolNameTooLong
	}

	return nil
}
