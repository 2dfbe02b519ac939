package queries

import (
	"context"
)

// ListRestaurantsQueryHandler retrieves all restaurants from the registry's
// read side.
type ListRestaurantsQueryHandler struct {
	reader RestaurantReader
}

// NewListRestaurantsQueryHandler creates a handler for restaurant listing.
func NewListRestaurantsQueryHandler(reader RestaurantReader) ListRestaurantsQueryHandler {
	return ListRestaurantsQueryHandler{reader: reader}
}

// Handle executes the query. Restaurants come back in registration order;
// an empty registry yields an empty slice.
func (h ListRestaurantsQueryHandler) Handle(
	ctx context.Context,
	query ListRestaurantsQuery,
) ([]ListRestaurantsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	restaurants := make([]ListRestaurantsQueryResponse, 0)

	for rest := range h.reader.Restaurants(ctx) {
		response := ListRestaurantsQueryResponse{
			ID:   rest.ID(),
			Name: rest.Name(),
			Menu: make([]MenuItemResponse, 0, len(rest.Menu())),
		}

		for _, item := range rest.Menu() {
			response.Menu = append(response.Menu, MenuItemResponse{
				ID:    item.ID(),
				Name:  item.Name(),
				Price: item.Price(),
			})
		}

		restaurants = append(restaurants, response)
	}

	return restaurants, nil
}
