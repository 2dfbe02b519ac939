package person_test

import (
	"testing"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/person"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPerson(t *testing.T) {
	validID, _ := kernel.NewID(1)

	t.Run("should create person with valid fields", func(t *testing.T) {
		p, err := person.NewPerson(validID, "Alice", "9876543210")

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(validID))
		assert.Equal(t, "Alice", p.Name())
		assert.Equal(t, "9876543210", p.Contact())
	})

	t.Run("should fail with invalid id", func(t *testing.T) {
		var invalidID kernel.ID

		_, err := person.NewPerson(invalidID, "Alice", "9876543210")

		require.Error(t, err)
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := person.NewPerson(validID, "", "9876543210")

		require.ErrorIs(t, err, person.ErrNameIsRequired)
	})

	t.Run("should fail with empty contact", func(t *testing.T) {
		_, err := person.NewPerson(validID, "Alice", "")

		require.ErrorIs(t, err, person.ErrContactIsRequired)
	})

	t.Run("should join multiple validation errors", func(t *testing.T) {
		var invalidID kernel.ID

		_, err := person.NewPerson(invalidID, "", "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "ID must be created")
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "contact")
	})
}

func TestPerson_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var p person.Person

		err := p.Validate()

		require.Error(t, err)
		assert.Equal(t, person.ErrPersonIsNotConstructed, err)
	})
}

func TestPerson_IsEqual(t *testing.T) {
	t.Run("compares by id only", func(t *testing.T) {
		id1, _ := kernel.NewID(1)
		id2, _ := kernel.NewID(2)
		a, _ := person.NewPerson(id1, "Alice", "111")
		b, _ := person.NewPerson(id1, "Alice B", "222")
		c, _ := person.NewPerson(id2, "Alice", "111")

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
	})
}
