package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrRemoveFoodItemCommandIsNotConstructed = errors.New(
	"RemoveFoodItemCommand must be created via NewRemoveFoodItemCommand constructor",
)

// RemoveFoodItemCommand represents a request to take a food item off a
// restaurant's menu. Removing an id that is not on the menu succeeds without
// effect; carts that already hold the item keep their snapshot.
type RemoveFoodItemCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.ID
	foodItemID   kernel.ID

	guard guard.ConstructorGuard
}

// NewRemoveFoodItemCommand creates a command to remove a menu item.
func NewRemoveFoodItemCommand(restaurantID, foodItemID kernel.ID) (RemoveFoodItemCommand, error) {
	cmd := RemoveFoodItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRestaurantID(restaurantID),
		cmd.setFoodItemID(foodItemID),
	); err != nil {
		return RemoveFoodItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveFoodItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveFoodItemCommandIsNotConstructed)
}

// RestaurantID returns the id of the restaurant whose menu changes.
func (c RemoveFoodItemCommand) RestaurantID() kernel.ID {
	return c.restaurantID
}

// FoodItemID returns the id of the item to remove.
func (c RemoveFoodItemCommand) FoodItemID() kernel.ID {
	return c.foodItemID
}

func (c *RemoveFoodItemCommand) setRestaurantID(restaurantID kernel.ID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *RemoveFoodItemCommand) setFoodItemID(foodItemID kernel.ID) error {
	if err := foodItemID.Validate(); err != nil {
		return err
	}

	c.foodItemID = foodItemID
	return nil
}
