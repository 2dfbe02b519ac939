package commands

import (
	"context"

	"foodorder/internal/core/domain/model/customer"
	"foodorder/internal/core/domain/model/person"
)

// CreateCustomerCommandHandler handles customer registration.
type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewCreateCustomerCommandHandler creates a handler for customer
// registration. Requires a CustomerUoWFactory for transactional persistence.
func NewCreateCustomerCommandHandler(uowFactory CustomerUoWFactory) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the customer registration command.
// Returns a DuplicateKey error when the id is already taken.
func (h *CreateCustomerCommandHandler) Handle(ctx context.Context, cmd CreateCustomerCommand) error {
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

	p, err := person.NewPerson(cmd.CustomerID(), cmd.Name(), cmd.Contact())
	if err != nil {
		return err
	}

	aggregate, err := customer.NewCustomer(p)
	if err != nil {
		return err
	}

	if err = uow.CustomerRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
