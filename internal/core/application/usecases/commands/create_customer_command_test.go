package commands_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateCustomerCommand_ValidInput(t *testing.T) {
	customerID := mustID(t, 7)

	cmd, err := commands.NewCreateCustomerCommand(customerID, "Alice", "alice@example.com")

	require.NoError(t, err)
	assert.Equal(t, customerID, cmd.CustomerID())
	assert.Equal(t, "Alice", cmd.Name())
	assert.Equal(t, "alice@example.com", cmd.Contact())
	assert.NoError(t, cmd.Validate())
}

func TestNewCreateCustomerCommand_EmptyName(t *testing.T) {
	_, err := commands.NewCreateCustomerCommand(mustID(t, 7), "", "alice@example.com")

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrNameIsRequired)
}

func TestNewCreateCustomerCommand_EmptyContact(t *testing.T) {
	_, err := commands.NewCreateCustomerCommand(mustID(t, 7), "Alice", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrContactIsRequired)
}

func TestNewCreateCustomerCommand_MultipleCombinedErrors(t *testing.T) {
	_, err := commands.NewCreateCustomerCommand(kernel.ID{}, "", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrIDIsNotConstructed)
	assert.ErrorIs(t, err, commands.ErrNameIsRequired)
	assert.ErrorIs(t, err, commands.ErrContactIsRequired)
}

func TestCreateCustomerCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.CreateCustomerCommand

	err := cmd.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateCustomerCommandIsNotConstructed)
}
