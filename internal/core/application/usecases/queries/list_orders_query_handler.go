package queries

import (
	"context"
)

// ListOrdersQueryHandler retrieves all orders from the registry's read side.
type ListOrdersQueryHandler struct {
	reader OrderReader
}

// NewListOrdersQueryHandler creates a handler for the administrator's order
// listing.
func NewListOrdersQueryHandler(reader OrderReader) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{reader: reader}
}

// Handle executes the query. Orders come back in placement order, which for
// sequential ids is ascending id order.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.reader.Orders(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		response, respErr := newOrderResponse(o)
		if respErr != nil {
			return nil, respErr
		}
		responses = append(responses, response)
	}

	return responses, nil
}
