package delivery_test

import (
	"testing"

	"foodorder/internal/core/domain/model/delivery"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/person"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPerson(t *testing.T) {
	t.Run("should create delivery person from identity", func(t *testing.T) {
		id, _ := kernel.NewID(5)
		identity, err := person.NewPerson(id, "Bob", "5551234")
		require.NoError(t, err)

		dp, err := delivery.NewPerson(identity)

		require.NoError(t, err)
		require.NoError(t, dp.Validate())
		assert.Equal(t, 5, dp.ID().Int())
		assert.Equal(t, "Bob", dp.Name())
		assert.Equal(t, "5551234", dp.Contact())
	})

	t.Run("should fail with unconstructed identity", func(t *testing.T) {
		var identity person.Person

		dp, err := delivery.NewPerson(identity)

		require.Error(t, err)
		assert.Nil(t, dp)
	})
}

func TestPerson_Validate(t *testing.T) {
	t.Run("nil fails validation", func(t *testing.T) {
		var dp *delivery.Person

		require.Error(t, dp.Validate())
	})
}

func TestPerson_IsEqual(t *testing.T) {
	t.Run("compares by id", func(t *testing.T) {
		id5, _ := kernel.NewID(5)
		id6, _ := kernel.NewID(6)
		p5, _ := person.NewPerson(id5, "Bob", "111")
		p6, _ := person.NewPerson(id6, "Carol", "222")
		a, _ := delivery.NewPerson(p5)
		b, _ := delivery.NewPerson(p5)
		c, _ := delivery.NewPerson(p6)

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
	})
}
