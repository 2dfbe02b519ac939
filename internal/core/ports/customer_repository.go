package ports

import (
	"context"

	"foodorder/internal/core/domain/model/customer"
	"foodorder/internal/core/domain/model/kernel"
)

// CustomerRepository defines the storage contract for customer aggregates,
// carts included.
type CustomerRepository interface {
	// Add stores a new customer aggregate.
	// Returns a DuplicateKey error when the id is already registered.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update stores changes to an existing customer aggregate, including the
	// current state of their cart.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer aggregate by id with their cart.
	// Returns an ObjectNotFound error when the id is not registered.
	Get(ctx context.Context, id kernel.ID) (*customer.Customer, error)
}
