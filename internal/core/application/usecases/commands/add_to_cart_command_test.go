package commands_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddToCartCommand_ValidInput(t *testing.T) {
	customerID := mustID(t, 7)
	restaurantID := mustID(t, 1)
	foodItemID := mustID(t, 101)

	cmd, err := commands.NewAddToCartCommand(customerID, restaurantID, foodItemID, 2)

	require.NoError(t, err)
	assert.Equal(t, customerID, cmd.CustomerID())
	assert.Equal(t, restaurantID, cmd.RestaurantID())
	assert.Equal(t, foodItemID, cmd.FoodItemID())
	assert.Equal(t, 2, cmd.Quantity())
	assert.NoError(t, cmd.Validate())
}

func TestNewAddToCartCommand_InvalidQuantity(t *testing.T) {
	testCases := []struct {
		name     string
		quantity int
	}{
		{name: "zero quantity", quantity: 0},
		{name: "negative quantity", quantity: -1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := commands.NewAddToCartCommand(mustID(t, 7), mustID(t, 1), mustID(t, 101), tc.quantity)

			require.Error(t, err)
			assert.ErrorIs(t, err, commands.ErrQuantityIsInvalid)
		})
	}
}

func TestNewAddToCartCommand_InvalidIDs(t *testing.T) {
	_, err := commands.NewAddToCartCommand(kernel.ID{}, kernel.ID{}, kernel.ID{}, 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrIDIsNotConstructed)
}

func TestAddToCartCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.AddToCartCommand

	err := cmd.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrAddToCartCommandIsNotConstructed)
}
