package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves every placed order, for the administrator view.
type ListOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query to retrieve all orders.
func NewListOrdersQuery() ListOrdersQuery {
	return ListOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// OrderLineResponse represents one snapshotted order entry in the read
// model, with the per-line cost already computed.
type OrderLineResponse struct {
	FoodItemID kernel.ID
	Name       string
	Price      kernel.Money
	Quantity   int
	Cost       kernel.Money
}

// OrderResponse represents one order in the read model. DeliveryPersonID is
// nil while nobody is assigned.
type OrderResponse struct {
	ID               kernel.ID
	CustomerID       kernel.ID
	Status           order.Status
	DeliveryPersonID *kernel.ID
	Lines            []OrderLineResponse
	Total            kernel.Money
}

func newOrderResponse(o *order.Order) (OrderResponse, error) {
	response := OrderResponse{
		ID:               o.ID(),
		CustomerID:       o.CustomerID(),
		Status:           o.Status(),
		DeliveryPersonID: o.DeliveryPersonID(),
		Lines:            make([]OrderLineResponse, 0, len(o.Lines())),
	}

	for _, line := range o.Lines() {
		cost, err := line.Cost()
		if err != nil {
			return OrderResponse{}, err
		}

		response.Lines = append(response.Lines, OrderLineResponse{
			FoodItemID: line.FoodItemID(),
			Name:       line.Name(),
			Price:      line.Price(),
			Quantity:   line.Quantity(),
			Cost:       cost,
		})
	}

	total, err := o.Total()
	if err != nil {
		return OrderResponse{}, err
	}
	response.Total = total

	return response, nil
}
