package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrAssignDeliveryPersonCommandIsNotConstructed = errors.New(
	"AssignDeliveryPersonCommand must be created via NewAssignDeliveryPersonCommand constructor",
)

// AssignDeliveryPersonCommand represents a request to attach a delivery
// person to an order. Assignment does not change the order's status; the
// administrator advances it separately.
type AssignDeliveryPersonCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.ID
	deliveryPersonID kernel.ID

	guard guard.ConstructorGuard
}

// NewAssignDeliveryPersonCommand creates a command to assign a delivery
// person to an order.
func NewAssignDeliveryPersonCommand(orderID, deliveryPersonID kernel.ID) (AssignDeliveryPersonCommand, error) {
	cmd := AssignDeliveryPersonCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDeliveryPersonID(deliveryPersonID),
	); err != nil {
		return AssignDeliveryPersonCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDeliveryPersonCommand) Validate() error {
	return c.guard.Validate(ErrAssignDeliveryPersonCommandIsNotConstructed)
}

// OrderID returns the id of the order to assign.
func (c AssignDeliveryPersonCommand) OrderID() kernel.ID {
	return c.orderID
}

// DeliveryPersonID returns the id of the delivery person to attach.
func (c AssignDeliveryPersonCommand) DeliveryPersonID() kernel.ID {
	return c.deliveryPersonID
}

func (c *AssignDeliveryPersonCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignDeliveryPersonCommand) setDeliveryPersonID(deliveryPersonID kernel.ID) error {
	if err := deliveryPersonID.Validate(); err != nil {
		return err
	}

	c.deliveryPersonID = deliveryPersonID
	return nil
}
