// file: internals/helpers/errs/errors_test.go
package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	t.Run("invalid response", func(t *testing.T) {
		kind, status, ok := KindOf(NewInvalidResponse("bad option %d", 3))
		require.True(t, ok)
		assert.Equal(t, KindInvalidResponse, kind)
		assert.Empty(t, status)
	})

	t.Run("invalid transition carries current status", func(t *testing.T) {
		kind, status, ok := KindOf(NewInvalidTransition("draft", "submit", ""))
		require.True(t, ok)
		assert.Equal(t, KindInvalidTransition, kind)
		assert.Equal(t, "draft", status)
	})

	t.Run("concurrent modification", func(t *testing.T) {
		kind, _, ok := KindOf(NewConcurrentModification("assessment"))
		require.True(t, ok)
		assert.Equal(t, KindConcurrentModification, kind)
	})

	t.Run("insight generation", func(t *testing.T) {
		kind, _, ok := KindOf(NewInsightGeneration(errors.New("timeout")))
		require.True(t, ok)
		assert.Equal(t, KindInsightGeneration, kind)
	})

	t.Run("wrapped error still detected", func(t *testing.T) {
		wrapped := fmt.Errorf("save response: %w", NewInvalidTransition("completed", "save_response", ""))
		kind, status, ok := KindOf(wrapped)
		require.True(t, ok)
		assert.Equal(t, KindInvalidTransition, kind)
		assert.Equal(t, "completed", status)
	})

	t.Run("plain error is not a domain error", func(t *testing.T) {
		_, _, ok := KindOf(errors.New("boom"))
		assert.False(t, ok)
	})

	t.Run("nil", func(t *testing.T) {
		_, _, ok := KindOf(nil)
		assert.False(t, ok)
	})
}

func TestInsightGenerationUnwrap(t *testing.T) {
	cause := errors.New("deadline exceeded")
	err := NewInsightGeneration(cause)
	assert.ErrorIs(t, err, cause)
}

func TestInvalidTransitionMessage(t *testing.T) {
	err := NewInvalidTransition("draft", "submit", "responses incomplete")
	assert.Contains(t, err.Error(), "draft")
	assert.Contains(t, err.Error(), "submit")
	assert.Contains(t, err.Error(), "responses incomplete")
}
