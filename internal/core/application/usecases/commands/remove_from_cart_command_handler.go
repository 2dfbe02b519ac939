package commands

import (
	"context"
)

// RemoveFromCartCommandHandler handles dropping an item from a customer's
// cart.
type RemoveFromCartCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewRemoveFromCartCommandHandler creates a handler for cart removals.
func NewRemoveFromCartCommandHandler(uowFactory CustomerUoWFactory) RemoveFromCartCommandHandler {
	return RemoveFromCartCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cart removal command.
// Returns an ObjectNotFound error when the customer does not exist; a
// missing cart entry is not an error.
func (h *RemoveFromCartCommandHandler) Handle(ctx context.Context, cmd RemoveFromCartCommand) error {
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

	repo := uow.CustomerRepository()
	aggregate, err := repo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	aggregate.Cart().Remove(cmd.FoodItemID())

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
