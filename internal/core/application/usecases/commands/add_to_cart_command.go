package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var (
	ErrAddToCartCommandIsNotConstructed = errors.New(
		"AddToCartCommand must be created via NewAddToCartCommand constructor",
	)
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")
)

// AddToCartCommand represents a request to put a quantity of a restaurant's
// menu item into a customer's cart. The cart merges repeated additions of
// the same item instead of creating duplicate entries.
type AddToCartCommand struct { //nolint:recvcheck //using for validation
	customerID   kernel.ID
	restaurantID kernel.ID
	foodItemID   kernel.ID
	quantity     int

	guard guard.ConstructorGuard
}

// NewAddToCartCommand creates a command to add a menu item to a cart.
// Validates all three ids and requires a positive quantity.
func NewAddToCartCommand(
	customerID kernel.ID,
	restaurantID kernel.ID,
	foodItemID kernel.ID,
	quantity int,
) (AddToCartCommand, error) {
	cmd := AddToCartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setRestaurantID(restaurantID),
		cmd.setFoodItemID(foodItemID),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddToCartCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddToCartCommand) Validate() error {
	return c.guard.Validate(ErrAddToCartCommandIsNotConstructed)
}

// CustomerID returns the id of the customer whose cart changes.
func (c AddToCartCommand) CustomerID() kernel.ID {
	return c.customerID
}

// RestaurantID returns the id of the restaurant offering the item.
func (c AddToCartCommand) RestaurantID() kernel.ID {
	return c.restaurantID
}

// FoodItemID returns the id of the menu item to add.
func (c AddToCartCommand) FoodItemID() kernel.ID {
	return c.foodItemID
}

// Quantity returns how many units to add.
func (c AddToCartCommand) Quantity() int {
	return c.quantity
}

func (c *AddToCartCommand) setCustomerID(customerID kernel.ID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *AddToCartCommand) setRestaurantID(restaurantID kernel.ID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *AddToCartCommand) setFoodItemID(foodItemID kernel.ID) error {
	if err := foodItemID.Validate(); err != nil {
		return err
	}

	c.foodItemID = foodItemID
	return nil
}

func (c *AddToCartCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
