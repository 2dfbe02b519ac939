package queries

import (
	"context"
)

// GetDeliveryPersonQueryHandler retrieves one delivery person from the
// registry's read side.
type GetDeliveryPersonQueryHandler struct {
	reader DeliveryPersonReader
}

// NewGetDeliveryPersonQueryHandler creates a handler for single delivery
// person lookups.
func NewGetDeliveryPersonQueryHandler(reader DeliveryPersonReader) GetDeliveryPersonQueryHandler {
	return GetDeliveryPersonQueryHandler{reader: reader}
}

// Handle executes the query.
// Returns an ObjectNotFound error when the id is not registered.
func (h GetDeliveryPersonQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryPersonQuery,
) (DeliveryPersonResponse, error) {
	if err := query.Validate(); err != nil {
		return DeliveryPersonResponse{}, err
	}

	p, err := h.reader.DeliveryPerson(ctx, query.DeliveryPersonID())
	if err != nil {
		return DeliveryPersonResponse{}, err
	}

	return DeliveryPersonResponse{
		ID:      p.ID(),
		Name:    p.Name(),
		Contact: p.Contact(),
	}, nil
}
