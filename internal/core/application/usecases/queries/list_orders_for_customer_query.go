package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrListOrdersForCustomerQueryIsNotConstructed = errors.New(
	"ListOrdersForCustomerQuery must be created via NewListOrdersForCustomerQuery constructor",
)

// ListOrdersForCustomerQuery retrieves one customer's order history.
type ListOrdersForCustomerQuery struct { //nolint:recvcheck //using for validation
	customerID kernel.ID

	guard guard.ConstructorGuard
}

// NewListOrdersForCustomerQuery creates a query for a customer's orders.
func NewListOrdersForCustomerQuery(customerID kernel.ID) (ListOrdersForCustomerQuery, error) {
	q := ListOrdersForCustomerQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setCustomerID(customerID); err != nil {
		return ListOrdersForCustomerQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersForCustomerQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersForCustomerQueryIsNotConstructed)
}

// CustomerID returns the id of the customer whose orders to list.
func (q ListOrdersForCustomerQuery) CustomerID() kernel.ID {
	return q.customerID
}

func (q *ListOrdersForCustomerQuery) setCustomerID(customerID kernel.ID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	q.customerID = customerID
	return nil
}
