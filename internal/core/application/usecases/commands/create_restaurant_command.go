package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var (
	ErrCreateRestaurantCommandIsNotConstructed = errors.New(
		"CreateRestaurantCommand must be created via NewCreateRestaurantCommand constructor",
	)
	ErrNameIsRequired = errors.New("name is required")
)

// CreateRestaurantCommand represents a request to register a new restaurant
// with an empty menu.
//
// Example:
//
//	restaurantID, _ := kernel.NewID(1)
//	cmd, err := NewCreateRestaurantCommand(restaurantID, "Pizza Hub")
//	if err != nil {
//	    return fmt.Errorf("invalid restaurant data: %w", err)
//	}
//
//	handler := NewCreateRestaurantCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create restaurant: %w", err)
//	}
type CreateRestaurantCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.ID
	name         string

	guard guard.ConstructorGuard
}

// NewCreateRestaurantCommand creates a command to register a new restaurant.
// Validates that the id is valid and the name is not empty.
func NewCreateRestaurantCommand(restaurantID kernel.ID, name string) (CreateRestaurantCommand, error) {
	cmd := CreateRestaurantCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRestaurantID(restaurantID),
		cmd.setName(name),
	); err != nil {
		return CreateRestaurantCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrCreateRestaurantCommandIsNotConstructed)
}

// RestaurantID returns the identifier chosen for the restaurant.
func (c CreateRestaurantCommand) RestaurantID() kernel.ID {
	return c.restaurantID
}

// Name returns the restaurant's display name.
func (c CreateRestaurantCommand) Name() string {
	return c.name
}

func (c *CreateRestaurantCommand) setRestaurantID(restaurantID kernel.ID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *CreateRestaurantCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}
