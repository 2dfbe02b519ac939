package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a request to turn a customer's cart into a
// Pending order. The cart must not be empty.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(customerID)
//	if err != nil {
//	    return fmt.Errorf("invalid order request: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	orderID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
//	fmt.Printf("Order %s placed", orderID)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.ID

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order for a customer.
func NewPlaceOrderCommand(customerID kernel.ID) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCustomerID(customerID); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// CustomerID returns the id of the ordering customer.
func (c PlaceOrderCommand) CustomerID() kernel.ID {
	return c.customerID
}

func (c *PlaceOrderCommand) setCustomerID(customerID kernel.ID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}
