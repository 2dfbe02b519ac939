package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrViewCartQueryIsNotConstructed = errors.New(
	"ViewCartQuery must be created via NewViewCartQuery constructor",
)

// ViewCartQuery retrieves a customer's current cart contents and total.
type ViewCartQuery struct { //nolint:recvcheck //using for validation
	customerID kernel.ID

	guard guard.ConstructorGuard
}

// NewViewCartQuery creates a query for one customer's cart.
func NewViewCartQuery(customerID kernel.ID) (ViewCartQuery, error) {
	q := ViewCartQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setCustomerID(customerID); err != nil {
		return ViewCartQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ViewCartQuery) Validate() error {
	return q.guard.Validate(ErrViewCartQueryIsNotConstructed)
}

// CustomerID returns the id of the customer whose cart to view.
func (q ViewCartQuery) CustomerID() kernel.ID {
	return q.customerID
}

func (q *ViewCartQuery) setCustomerID(customerID kernel.ID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	q.customerID = customerID
	return nil
}

// CartLineResponse represents one cart entry in the read model, with the
// per-line cost already computed.
type CartLineResponse struct {
	FoodItemID kernel.ID
	Name       string
	Price      kernel.Money
	Quantity   int
	Cost       kernel.Money
}

// ViewCartQueryResponse represents a cart's contents. Empty distinguishes a
// cart with no entries from one whose entries happen to sum to zero.
type ViewCartQueryResponse struct {
	Empty bool
	Lines []CartLineResponse
	Total kernel.Money
}
