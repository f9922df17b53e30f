package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
		{
			name:     "generic error",
			err:      errors.New("some error"),
			expected: false,
		},
		{
			name:     "ErrNotFound",
			err:      ErrNotFound,
			expected: true,
		},
		{
			name:     "wrapped ErrNotFound",
			err:      fmt.Errorf("failed to do something: %w", ErrNotFound),
			expected: true,
		},
		{
			name:     "ErrToolNotFound wraps ErrNotFound",
			err:      ErrToolNotFound,
			expected: true,
		},
		{
			name:     "duplicate error is not a not-found error",
			err:      ErrToolNameExists,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsNotFoundError(tt.err))
		})
	}
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, IsDuplicateError(ErrDuplicate))
	assert.True(t, IsDuplicateError(ErrToolNameExists))
	assert.True(t, IsDuplicateError(fmt.Errorf("create: %w", ErrToolNameExists)))
	assert.False(t, IsDuplicateError(ErrToolNotFound))
	assert.False(t, IsDuplicateError(nil))
}
