package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrAddFoodItemCommandIsNotConstructed = errors.New(
	"AddFoodItemCommand must be created via NewAddFoodItemCommand constructor",
)

// AddFoodItemCommand represents a request to put a food item on a
// restaurant's menu. Adding an item whose id already exists on the menu
// replaces that item's name and price.
type AddFoodItemCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.ID
	foodItemID   kernel.ID
	name         string
	price        kernel.Money

	guard guard.ConstructorGuard
}

// NewAddFoodItemCommand creates a command to add or replace a menu item.
// Validates both ids, requires a non-empty name and a constructed price.
func NewAddFoodItemCommand(
	restaurantID kernel.ID,
	foodItemID kernel.ID,
	name string,
	price kernel.Money,
) (AddFoodItemCommand, error) {
	cmd := AddFoodItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRestaurantID(restaurantID),
		cmd.setFoodItemID(foodItemID),
		cmd.setName(name),
		cmd.setPrice(price),
	); err != nil {
		return AddFoodItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddFoodItemCommand) Validate() error {
	return c.guard.Validate(ErrAddFoodItemCommandIsNotConstructed)
}

// RestaurantID returns the id of the restaurant whose menu changes.
func (c AddFoodItemCommand) RestaurantID() kernel.ID {
	return c.restaurantID
}

// FoodItemID returns the identifier for the menu item.
func (c AddFoodItemCommand) FoodItemID() kernel.ID {
	return c.foodItemID
}

// Name returns the item's display name.
func (c AddFoodItemCommand) Name() string {
	return c.name
}

// Price returns the item's unit price.
func (c AddFoodItemCommand) Price() kernel.Money {
	return c.price
}

func (c *AddFoodItemCommand) setRestaurantID(restaurantID kernel.ID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *AddFoodItemCommand) setFoodItemID(foodItemID kernel.ID) error {
	if err := foodItemID.Validate(); err != nil {
		return err
	}

	c.foodItemID = foodItemID
	return nil
}

func (c *AddFoodItemCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *AddFoodItemCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}
