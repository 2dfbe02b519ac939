package ports

import (
	"context"

	"foodorder/internal/core/domain/model/delivery"
	"foodorder/internal/core/domain/model/kernel"
)

// DeliveryPersonRepository defines the storage contract for the delivery
// staff registry.
type DeliveryPersonRepository interface {
	// Add stores a new delivery person.
	// Returns a DuplicateKey error when the id is already registered.
	Add(ctx context.Context, aggregate *delivery.Person) error

	// Get retrieves a delivery person by id.
	// Returns an ObjectNotFound error when the id is not registered.
	Get(ctx context.Context, id kernel.ID) (*delivery.Person, error)
}
