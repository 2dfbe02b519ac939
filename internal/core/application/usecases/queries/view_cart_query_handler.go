package queries

import (
	"context"
)

// ViewCartQueryHandler retrieves a customer's cart from the registry's read
// side. Lines come back in the order the items were first added.
type ViewCartQueryHandler struct {
	reader CustomerReader
}

// NewViewCartQueryHandler creates a handler for cart viewing.
func NewViewCartQueryHandler(reader CustomerReader) ViewCartQueryHandler {
	return ViewCartQueryHandler{reader: reader}
}

// Handle executes the query.
// Returns an ObjectNotFound error when the customer does not exist.
func (h ViewCartQueryHandler) Handle(ctx context.Context, query ViewCartQuery) (ViewCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ViewCartQueryResponse{}, err
	}

	aggregate, err := h.reader.Customer(ctx, query.CustomerID())
	if err != nil {
		return ViewCartQueryResponse{}, err
	}

	cart := aggregate.Cart()
	response := ViewCartQueryResponse{
		Empty: cart.IsEmpty(),
		Lines: make([]CartLineResponse, 0, len(cart.Lines())),
	}

	for _, line := range cart.Lines() {
		cost, costErr := line.Cost()
		if costErr != nil {
			return ViewCartQueryResponse{}, costErr
		}

		response.Lines = append(response.Lines, CartLineResponse{
			FoodItemID: line.FoodItemID(),
			Name:       line.Name(),
			Price:      line.Price(),
			Quantity:   line.Quantity(),
			Cost:       cost,
		})
	}

	total, err := cart.TotalCost()
	if err != nil {
		return ViewCartQueryResponse{}, err
	}
	response.Total = total

	return response, nil
}
