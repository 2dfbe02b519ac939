package commands

import (
	"context"
)

// AssignDeliveryPersonCommandHandler handles attaching a delivery person to
// an order. Both the order and the delivery person must exist; reassignment
// overwrites any previous assignment.
type AssignDeliveryPersonCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewAssignDeliveryPersonCommandHandler creates a handler for delivery
// assignments. Requires an AssignmentUoWFactory spanning order and delivery
// staff repositories.
func NewAssignDeliveryPersonCommandHandler(uowFactory AssignmentUoWFactory) AssignDeliveryPersonCommandHandler {
	return AssignDeliveryPersonCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command.
// Returns an ObjectNotFound error when the order or the delivery person does
// not exist. The order's status is left untouched.
func (h *AssignDeliveryPersonCommandHandler) Handle(ctx context.Context, cmd AssignDeliveryPersonCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	deliveryPerson, err := uow.DeliveryPersonRepository().Get(ctx, cmd.DeliveryPersonID())
	if err != nil {
		return err
	}

	if err = aggregate.AssignDeliveryPerson(deliveryPerson.ID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
