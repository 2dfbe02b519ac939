package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrListRestaurantsQueryIsNotConstructed = errors.New(
	"ListRestaurantsQuery must be created via NewListRestaurantsQuery constructor",
)

// ListRestaurantsQuery retrieves every registered restaurant with its menu.
//
// Example:
//
//	query := NewListRestaurantsQuery()
//	handler := NewListRestaurantsQueryHandler(reader)
//
//	restaurants, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list restaurants: %w", err)
//	}
//
//	for _, r := range restaurants {
//	    fmt.Printf("%s: %d items\n", r.Name, len(r.Menu))
//	}
type ListRestaurantsQuery struct {
	guard guard.ConstructorGuard
}

// NewListRestaurantsQuery creates a query to retrieve all restaurants.
// This is a parameterless query that fetches the complete restaurant list.
func NewListRestaurantsQuery() ListRestaurantsQuery {
	return ListRestaurantsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListRestaurantsQuery) Validate() error {
	return q.guard.Validate(ErrListRestaurantsQueryIsNotConstructed)
}

// MenuItemResponse represents one menu entry in the read model.
type MenuItemResponse struct {
	ID    kernel.ID
	Name  string
	Price kernel.Money
}

// ListRestaurantsQueryResponse represents one restaurant with its menu in
// registration order.
type ListRestaurantsQueryResponse struct {
	ID   kernel.ID
	Name string
	Menu []MenuItemResponse
}
