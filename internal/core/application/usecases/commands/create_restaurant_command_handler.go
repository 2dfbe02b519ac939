package commands

import (
	"context"

	"foodorder/internal/core/domain/model/restaurant"
)

// CreateRestaurantCommandHandler handles the business logic for restaurant
// registration. New restaurants start with an empty menu.
//
// Example:
//
//	handler := NewCreateRestaurantCommandHandler(uowFactory)
//	restaurantID, _ := kernel.NewID(1)
//	cmd, _ := NewCreateRestaurantCommand(restaurantID, "Pizza Hub")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("restaurant creation failed: %w", err)
//	}
type CreateRestaurantCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewCreateRestaurantCommandHandler creates a handler for restaurant
// registration. Requires a RestaurantUoWFactory for transactional persistence.
func NewCreateRestaurantCommandHandler(uowFactory RestaurantUoWFactory) CreateRestaurantCommandHandler {
	return CreateRestaurantCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the restaurant registration command.
// Returns a DuplicateKey error when the id is already taken.
func (h *CreateRestaurantCommandHandler) Handle(ctx context.Context, cmd CreateRestaurantCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := restaurant.NewRestaurant(cmd.RestaurantID(), cmd.Name())
	if err != nil {
		return err
	}

	if err = uow.RestaurantRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
