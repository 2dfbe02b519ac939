package commands_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateRestaurantCommand_ValidInput(t *testing.T) {
	// Arrange
	restaurantID := mustID(t, 1)
	name := "Pizza Hub"

	// Act
	cmd, err := commands.NewCreateRestaurantCommand(restaurantID, name)

	// Assert
	require.NoError(t, err)
	assert.NotZero(t, cmd)
	assert.Equal(t, restaurantID, cmd.RestaurantID())
	assert.Equal(t, name, cmd.Name())
	assert.NoError(t, cmd.Validate())
}

func TestNewCreateRestaurantCommand_EmptyName(t *testing.T) {
	restaurantID := mustID(t, 1)

	_, err := commands.NewCreateRestaurantCommand(restaurantID, "")

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrNameIsRequired)
}

func TestNewCreateRestaurantCommand_InvalidID(t *testing.T) {
	_, err := commands.NewCreateRestaurantCommand(kernel.ID{}, "Pizza Hub")

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrIDIsNotConstructed)
}

func TestNewCreateRestaurantCommand_MultipleCombinedErrors(t *testing.T) {
	_, err := commands.NewCreateRestaurantCommand(kernel.ID{}, "")

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrIDIsNotConstructed)
	assert.ErrorIs(t, err, commands.ErrNameIsRequired)
}

func TestCreateRestaurantCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.CreateRestaurantCommand

	err := cmd.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateRestaurantCommandIsNotConstructed)
}
