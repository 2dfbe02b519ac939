package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrGetDeliveryPersonQueryIsNotConstructed = errors.New(
	"GetDeliveryPersonQuery must be created via NewGetDeliveryPersonQuery constructor",
)

// GetDeliveryPersonQuery retrieves one delivery person by id.
type GetDeliveryPersonQuery struct { //nolint:recvcheck //using for validation
	deliveryPersonID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetDeliveryPersonQuery creates a query for one delivery person.
func NewGetDeliveryPersonQuery(deliveryPersonID kernel.ID) (GetDeliveryPersonQuery, error) {
	q := GetDeliveryPersonQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setDeliveryPersonID(deliveryPersonID); err != nil {
		return GetDeliveryPersonQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryPersonQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryPersonQueryIsNotConstructed)
}

// DeliveryPersonID returns the id to look up.
func (q GetDeliveryPersonQuery) DeliveryPersonID() kernel.ID {
	return q.deliveryPersonID
}

func (q *GetDeliveryPersonQuery) setDeliveryPersonID(deliveryPersonID kernel.ID) error {
	if err := deliveryPersonID.Validate(); err != nil {
		return err
	}

	q.deliveryPersonID = deliveryPersonID
	return nil
}
