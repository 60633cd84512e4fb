package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	t.Run("wraps error with context", func(t *testing.T) {
		wrapped := Wrap(ErrNotFound, "credential lookup")
		assert.EqualError(t, wrapped, "credential lookup: not found")
		assert.True(t, Is(wrapped, ErrNotFound))
	})

	t.Run("nil error returns nil", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, "context"))
	})

	t.Run("preserves chain across multiple wraps", func(t *testing.T) {
		inner := Wrap(ErrInvalidInput, "bad key")
		outer := Wrap(inner, "construction failed")
		assert.True(t, Is(outer, ErrInvalidInput))
		assert.EqualError(t, outer, "construction failed: bad key: invalid input")
	})
}

func TestIs(t *testing.T) {
	err := fmt.Errorf("outer: %w", ErrConflict)
	assert.True(t, Is(err, ErrConflict))
	assert.False(t, Is(err, ErrNotFound))
}

func TestNew(t *testing.T) {
	err := New("custom error")
	assert.EqualError(t, err, "custom error")
}
