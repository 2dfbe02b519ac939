package commands

import (
	"context"

	"foodorder/internal/core/domain/model/delivery"
	"foodorder/internal/core/domain/model/person"
)

// CreateDeliveryPersonCommandHandler handles delivery staff registration.
type CreateDeliveryPersonCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewCreateDeliveryPersonCommandHandler creates a handler for delivery staff
// registration.
func NewCreateDeliveryPersonCommandHandler(uowFactory DeliveryUoWFactory) CreateDeliveryPersonCommandHandler {
	return CreateDeliveryPersonCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery staff registration command.
// Returns a DuplicateKey error when the id is already taken.
func (h *CreateDeliveryPersonCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryPersonCommand) error {
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

	p, err := person.NewPerson(cmd.DeliveryPersonID(), cmd.Name(), cmd.Contact())
	if err != nil {
		return err
	}

	aggregate, err := delivery.NewPerson(p)
	if err != nil {
		return err
	}

	if err = uow.DeliveryPersonRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
