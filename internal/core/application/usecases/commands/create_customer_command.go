package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var (
	ErrCreateCustomerCommandIsNotConstructed = errors.New(
		"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
	)
	ErrContactIsRequired = errors.New("contact is required")
)

// CreateCustomerCommand represents a request to register a new customer.
// Every customer starts with an empty cart.
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.ID
	name       string
	contact    string

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand creates a command to register a new customer.
// Validates the id and requires non-empty name and contact.
func NewCreateCustomerCommand(customerID kernel.ID, name, contact string) (CreateCustomerCommand, error) {
	cmd := CreateCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setName(name),
		cmd.setContact(contact),
	); err != nil {
		return CreateCustomerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

// CustomerID returns the identifier chosen for the customer.
func (c CreateCustomerCommand) CustomerID() kernel.ID {
	return c.customerID
}

// Name returns the customer's name.
func (c CreateCustomerCommand) Name() string {
	return c.name
}

// Contact returns the customer's contact details (phone or email).
func (c CreateCustomerCommand) Contact() string {
	return c.contact
}

func (c *CreateCustomerCommand) setCustomerID(customerID kernel.ID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateCustomerCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateCustomerCommand) setContact(contact string) error {
	if contact == "" {
		return ErrContactIsRequired
	}

	c.contact = contact
	return nil
}
