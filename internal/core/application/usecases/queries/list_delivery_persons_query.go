package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrListDeliveryPersonsQueryIsNotConstructed = errors.New(
	"ListDeliveryPersonsQuery must be created via NewListDeliveryPersonsQuery constructor",
)

// ListDeliveryPersonsQuery retrieves every registered delivery person.
type ListDeliveryPersonsQuery struct {
	guard guard.ConstructorGuard
}

// NewListDeliveryPersonsQuery creates a query to retrieve all delivery staff.
func NewListDeliveryPersonsQuery() ListDeliveryPersonsQuery {
	return ListDeliveryPersonsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListDeliveryPersonsQuery) Validate() error {
	return q.guard.Validate(ErrListDeliveryPersonsQueryIsNotConstructed)
}

// DeliveryPersonResponse represents one delivery person in the read model.
type DeliveryPersonResponse struct {
	ID      kernel.ID
	Name    string
	Contact string
}
