package commands

import (
	"context"
)

// AddToCartCommandHandler handles adding a menu item to a customer's cart.
// The cart line snapshots the item's current name and price; the menu is
// only consulted at add time.
//
// Example:
//
//	handler := NewAddToCartCommandHandler(uowFactory)
//	cmd, _ := NewAddToCartCommand(customerID, restaurantID, foodItemID, 2)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add to cart: %w", err)
//	}
type AddToCartCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewAddToCartCommandHandler creates a handler for cart additions.
// Requires a CartUoWFactory spanning customer and restaurant repositories.
func NewAddToCartCommandHandler(uowFactory CartUoWFactory) AddToCartCommandHandler {
	return AddToCartCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cart addition command.
// Returns an ObjectNotFound error when the customer, the restaurant, or the
// menu item does not exist.
func (h *AddToCartCommandHandler) Handle(ctx context.Context, cmd AddToCartCommand) error {
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

	customerRepo := uow.CustomerRepository()
	aggregate, err := customerRepo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	rest, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID())
	if err != nil {
		return err
	}

	item, err := rest.MenuItem(cmd.FoodItemID())
	if err != nil {
		return err
	}

	if err = aggregate.Cart().Add(item, cmd.Quantity()); err != nil {
		return err
	}

	if err = customerRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
