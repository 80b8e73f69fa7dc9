package guard_test

import (
	"errors"
	"testing"

	"retail/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		g := guard.NewConstructorGuard()

		// Then
		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("query not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
	})
}

// TestConstructorGuardEmbedded shows the guard inside a command-like value.
func TestConstructorGuardEmbedded(t *testing.T) {
	errLookupNotConstructed := errors.New("lookup must be created via newLookup")

	type lookup struct {
		key   string
		guard guard.ConstructorGuard
	}

	newLookup := func(key string) (lookup, error) {
		if key == "" {
			return lookup{}, errors.New("key is required")
		}
		return lookup{key: key, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_value_validates", func(t *testing.T) {
		l, err := newLookup("ana@example.com")

		require.NoError(t, err)
		require.NoError(t, l.guard.Validate(errLookupNotConstructed))
		assert.Equal(t, "ana@example.com", l.key)
	})

	t.Run("failed_constructor_returns_zero_value", func(t *testing.T) {
		l, err := newLookup("")

		require.Error(t, err)
		assert.Equal(t, errLookupNotConstructed, l.guard.Validate(errLookupNotConstructed))
	})
}
