package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrCreateDeliveryPersonCommandIsNotConstructed = errors.New(
	"CreateDeliveryPersonCommand must be created via NewCreateDeliveryPersonCommand constructor",
)

// CreateDeliveryPersonCommand represents a request to register a new member
// of the delivery staff.
type CreateDeliveryPersonCommand struct { //nolint:recvcheck //using for validation
	deliveryPersonID kernel.ID
	name             string
	contact          string

	guard guard.ConstructorGuard
}

// NewCreateDeliveryPersonCommand creates a command to register a delivery
// person. Validates the id and requires non-empty name and contact.
func NewCreateDeliveryPersonCommand(
	deliveryPersonID kernel.ID,
	name, contact string,
) (CreateDeliveryPersonCommand, error) {
	cmd := CreateDeliveryPersonCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryPersonID(deliveryPersonID),
		cmd.setName(name),
		cmd.setContact(contact),
	); err != nil {
		return CreateDeliveryPersonCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryPersonCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryPersonCommandIsNotConstructed)
}

// DeliveryPersonID returns the identifier chosen for the delivery person.
func (c CreateDeliveryPersonCommand) DeliveryPersonID() kernel.ID {
	return c.deliveryPersonID
}

// Name returns the delivery person's name.
func (c CreateDeliveryPersonCommand) Name() string {
	return c.name
}

// Contact returns the delivery person's contact details.
func (c CreateDeliveryPersonCommand) Contact() string {
	return c.contact
}

func (c *CreateDeliveryPersonCommand) setDeliveryPersonID(deliveryPersonID kernel.ID) error {
	if err := deliveryPersonID.Validate(); err != nil {
		return err
	}

	c.deliveryPersonID = deliveryPersonID
	return nil
}

func (c *CreateDeliveryPersonCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateDeliveryPersonCommand) setContact(contact string) error {
	if contact == "" {
		return ErrContactIsRequired
	}

	c.contact = contact
	return nil
}
