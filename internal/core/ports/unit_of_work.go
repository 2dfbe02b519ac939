package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command.
// This keeps staged changes isolated between operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary over the registry.
// Writes made through its repositories are staged and become visible only on
// Commit; Rollback discards them. Client code must explicitly manage the
// transaction lifecycle, typically Begin / deferred Rollback / Commit.
type UnitOfWork interface {
	// Begin starts the transaction. At most one transaction is in flight
	// at a time; read-side queries stay available while it is open.
	Begin(ctx context.Context) error

	// Commit applies all staged changes atomically.
	Commit(ctx context.Context) error

	// Rollback discards staged changes.
	// Calling Rollback after Commit is a no-op, which makes it safe to defer.
	Rollback(ctx context.Context) error

	// RestaurantRepository returns a RestaurantRepository bound to this
	// transaction.
	RestaurantRepository() RestaurantRepository

	// CustomerRepository returns a CustomerRepository bound to this
	// transaction.
	CustomerRepository() CustomerRepository

	// OrderRepository returns an OrderRepository bound to this transaction.
	OrderRepository() OrderRepository

	// DeliveryPersonRepository returns a DeliveryPersonRepository bound to
	// this transaction.
	DeliveryPersonRepository() DeliveryPersonRepository
}
