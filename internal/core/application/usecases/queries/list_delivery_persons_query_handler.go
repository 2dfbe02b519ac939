package queries

import (
	"context"
)

// ListDeliveryPersonsQueryHandler retrieves all delivery staff from the
// registry's read side.
type ListDeliveryPersonsQueryHandler struct {
	reader DeliveryPersonReader
}

// NewListDeliveryPersonsQueryHandler creates a handler for the delivery
// staff listing.
func NewListDeliveryPersonsQueryHandler(reader DeliveryPersonReader) ListDeliveryPersonsQueryHandler {
	return ListDeliveryPersonsQueryHandler{reader: reader}
}

// Handle executes the query. Staff come back in registration order.
func (h ListDeliveryPersonsQueryHandler) Handle(
	ctx context.Context,
	query ListDeliveryPersonsQuery,
) ([]DeliveryPersonResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	persons, err := h.reader.DeliveryPersons(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]DeliveryPersonResponse, 0, len(persons))
	for _, p := range persons {
		responses = append(responses, DeliveryPersonResponse{
			ID:      p.ID(),
			Name:    p.Name(),
			Contact: p.Contact(),
		})
	}

	return responses, nil
}
