package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrUnsupportedType", ErrUnsupportedType},
		{"ErrCrateNotFound", ErrCrateNotFound},
		{"ErrRateLimited", ErrRateLimited},
		{"ErrCacheUnavailable", ErrCacheUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

// TestErrCrateNotFound tests ErrCrateNotFound error
func TestErrCrateNotFound(t *testing.T) {
	assert.Equal(t, "crate documentation not found", ErrCrateNotFound.Error())
	assert.True(t, errors.Is(ErrCrateNotFound, ErrCrateNotFound))
	assert.False(t, errors.Is(ErrCrateNotFound, ErrNotFound))
}

// TestErrors_Wrapping tests that wrapped errors still match with errors.Is
func TestErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("fetching serde: %w", ErrCrateNotFound)
	assert.True(t, errors.Is(wrapped, ErrCrateNotFound))
	assert.False(t, errors.Is(wrapped, ErrRateLimited))
}
