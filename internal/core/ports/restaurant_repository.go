// Package ports defines the repository and unit-of-work contracts between
// the application layer and storage. The contracts enable dependency
// inversion: command handlers depend on these interfaces, the in-memory
// registry implements them.
package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/restaurant"
)

// RestaurantRepository defines the storage contract for restaurant
// aggregates, menus included.
type RestaurantRepository interface {
	// Add stores a new restaurant aggregate.
	// Returns a DuplicateKey error when the id is already registered.
	Add(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Update stores changes to an existing restaurant aggregate.
	// Returns an ObjectNotFound error when the id is not registered.
	Update(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Get retrieves a restaurant aggregate by id with its full menu.
	// Returns an ObjectNotFound error when the id is not registered.
	Get(ctx context.Context, id kernel.ID) (*restaurant.Restaurant, error)
}
