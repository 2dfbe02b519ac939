package commands

import (
	"context"

	"foodorder/internal/core/domain/model/customer"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// PlaceOrderCommandHandler handles the checkout step. It snapshots the
// customer's cart into an immutable order, assigns the next sequential order
// id, and clears the cart, all within one transaction. An empty cart aborts
// before an id is allocated, so failed placements do not leave gaps in the
// order numbering.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	cmd, _ := NewPlaceOrderCommand(customerID)
//
//	orderID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
type PlaceOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires a CheckoutUoWFactory spanning customer and order repositories.
func NewPlaceOrderCommandHandler(uowFactory CheckoutUoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command and returns the new order id.
// Returns an ObjectNotFound error when the customer does not exist and
// customer.ErrCartIsEmpty when there is nothing to order.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.ID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.ID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customerRepo := uow.CustomerRepository()
	aggregate, err := customerRepo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return kernel.ID{}, err
	}

	cart := aggregate.Cart()
	if cart.IsEmpty() {
		return kernel.ID{}, customer.ErrCartIsEmpty
	}

	orderRepo := uow.OrderRepository()
	orderID, err := orderRepo.NextID(ctx)
	if err != nil {
		return kernel.ID{}, err
	}

	lines := make([]order.Line, 0, len(cart.Lines()))
	for _, cartLine := range cart.Lines() {
		line, lineErr := order.NewLine(
			cartLine.FoodItemID(),
			cartLine.Name(),
			cartLine.Price(),
			cartLine.Quantity(),
		)
		if lineErr != nil {
			return kernel.ID{}, lineErr
		}
		lines = append(lines, line)
	}

	placed, err := order.NewOrder(orderID, aggregate.ID(), lines)
	if err != nil {
		return kernel.ID{}, err
	}

	if err = orderRepo.Add(ctx, placed); err != nil {
		return kernel.ID{}, err
	}

	cart.Clear()
	if err = customerRepo.Update(ctx, aggregate); err != nil {
		return kernel.ID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.ID{}, err
	}

	return orderID, nil
}
