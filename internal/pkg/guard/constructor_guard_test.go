package guard_test

import (
	"errors"
	"testing"

	"foodorder/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("constructed_guard_passes_validation", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("default_error_has_meaningful_message", func(t *testing.T) {
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})

	t.Run("guard_can_be_safely_passed_by_value", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		copied := g

		require.NoError(t, g.Validate(nil))
		require.NoError(t, copied.Validate(nil))
	})
}

// TestConstructorGuardUsageExample demonstrates the pattern on a small
// domain-like struct.
func TestConstructorGuardUsageExample(t *testing.T) {
	type menuEntry struct {
		name  string
		guard guard.ConstructorGuard
	}

	errEntryNotConstructed := errors.New("menuEntry must be created via newMenuEntry")

	newMenuEntry := func(name string) (menuEntry, error) {
		if name == "" {
			return menuEntry{}, errors.New("name is required")
		}
		return menuEntry{name: name, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		entry, err := newMenuEntry("Margherita")

		require.NoError(t, err)
		require.NoError(t, entry.guard.Validate(errEntryNotConstructed))
		assert.Equal(t, "Margherita", entry.name)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var entry menuEntry

		err := entry.guard.Validate(errEntryNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errEntryNotConstructed, err)
	})
}
