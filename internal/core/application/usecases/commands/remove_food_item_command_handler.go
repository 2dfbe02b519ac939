package commands

import (
	"context"
)

// RemoveFoodItemCommandHandler handles taking an item off a restaurant menu.
type RemoveFoodItemCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewRemoveFoodItemCommandHandler creates a handler for menu item removal.
func NewRemoveFoodItemCommandHandler(uowFactory RestaurantUoWFactory) RemoveFoodItemCommandHandler {
	return RemoveFoodItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the menu removal command.
// Returns an ObjectNotFound error when the restaurant does not exist; a
// missing item id is not an error.
func (h *RemoveFoodItemCommandHandler) Handle(ctx context.Context, cmd RemoveFoodItemCommand) error {
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

	repo := uow.RestaurantRepository()
	aggregate, err := repo.Get(ctx, cmd.RestaurantID())
	if err != nil {
		return err
	}

	if err = aggregate.RemoveFoodItem(cmd.FoodItemID()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
