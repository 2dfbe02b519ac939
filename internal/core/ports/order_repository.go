package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// OrderRepository defines the storage contract for order aggregates and the
// order-id sequence.
type OrderRepository interface {
	// NextID allocates the next sequential order id (starting at 1).
	// Inside a unit of work the allocation is staged: the counter only
	// advances when the transaction commits, so a rolled-back placement
	// does not consume an id.
	NextID(ctx context.Context) (kernel.ID, error)

	// Add stores a new order aggregate.
	// Returns a DuplicateKey error when the id is already registered.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update stores changes to an existing order aggregate (status and
	// delivery assignment; the line snapshot never changes).
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by id.
	// Returns an ObjectNotFound error when the id is not registered.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)
}
