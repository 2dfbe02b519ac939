package commands

import (
	"context"

	"foodorder/internal/core/domain/model/restaurant"
)

// AddFoodItemCommandHandler handles adding or replacing a restaurant menu
// item. The replace-on-same-id semantics live in the Restaurant aggregate.
type AddFoodItemCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewAddFoodItemCommandHandler creates a handler for menu item addition.
func NewAddFoodItemCommandHandler(uowFactory RestaurantUoWFactory) AddFoodItemCommandHandler {
	return AddFoodItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the menu addition command.
// Returns an ObjectNotFound error when the restaurant does not exist.
func (h *AddFoodItemCommandHandler) Handle(ctx context.Context, cmd AddFoodItemCommand) error {
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

	item, err := restaurant.NewFoodItem(cmd.FoodItemID(), cmd.Name(), cmd.Price())
	if err != nil {
		return err
	}

	if err = aggregate.AddFoodItem(item); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
