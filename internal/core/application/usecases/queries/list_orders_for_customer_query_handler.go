package queries

import (
	"context"
)

// ListOrdersForCustomerQueryHandler retrieves one customer's orders from the
// registry's read side.
type ListOrdersForCustomerQueryHandler struct {
	reader OrderReader
}

// NewListOrdersForCustomerQueryHandler creates a handler for a customer's
// order history.
func NewListOrdersForCustomerQueryHandler(reader OrderReader) ListOrdersForCustomerQueryHandler {
	return ListOrdersForCustomerQueryHandler{reader: reader}
}

// Handle executes the query. A customer with no orders, or an id no customer
// holds, yields an empty slice rather than an error.
func (h ListOrdersForCustomerQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersForCustomerQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.reader.OrdersForCustomer(ctx, query.CustomerID())
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
