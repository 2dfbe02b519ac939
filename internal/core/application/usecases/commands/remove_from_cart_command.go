package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrRemoveFromCartCommandIsNotConstructed = errors.New(
	"RemoveFromCartCommand must be created via NewRemoveFromCartCommand constructor",
)

// RemoveFromCartCommand represents a request to drop a food item from a
// customer's cart entirely, whatever quantity the cart holds. Removing an
// item that is not in the cart succeeds without effect.
type RemoveFromCartCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.ID
	foodItemID kernel.ID

	guard guard.ConstructorGuard
}

// NewRemoveFromCartCommand creates a command to remove a cart entry.
func NewRemoveFromCartCommand(customerID, foodItemID kernel.ID) (RemoveFromCartCommand, error) {
	cmd := RemoveFromCartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setFoodItemID(foodItemID),
	); err != nil {
		return RemoveFromCartCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveFromCartCommand) Validate() error {
	return c.guard.Validate(ErrRemoveFromCartCommandIsNotConstructed)
}

// CustomerID returns the id of the customer whose cart changes.
func (c RemoveFromCartCommand) CustomerID() kernel.ID {
	return c.customerID
}

// FoodItemID returns the id of the item to drop.
func (c RemoveFromCartCommand) FoodItemID() kernel.ID {
	return c.foodItemID
}

func (c *RemoveFromCartCommand) setCustomerID(customerID kernel.ID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *RemoveFromCartCommand) setFoodItemID(foodItemID kernel.ID) error {
	if err := foodItemID.Validate(); err != nil {
		return err
	}

	c.foodItemID = foodItemID
	return nil
}
