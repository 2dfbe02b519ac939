package memory

import (
	"context"
	"errors"

	"foodorder/internal/core/ports"
)

// ErrNoActiveTransaction is returned when repository operations or Commit
// run outside a Begin/Commit window.
var ErrNoActiveTransaction = errors.New("no active transaction")

// UnitOfWorkFactory creates UnitOfWork instances bound to one registry.
// Each business operation gets a fresh instance with its own staging area.
//
// Example:
//
//	registry := NewRegistry()
//	factory := NewUnitOfWorkFactory(registry)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.OrderRepository().Add(ctx, order); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
type UnitOfWorkFactory struct {
	registry *Registry
}

// NewUnitOfWorkFactory creates a factory over the given registry.
func NewUnitOfWorkFactory(registry *Registry) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{registry: registry}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{registry: f.registry}
}

// UnitOfWork stages writes against the registry. Begin takes the registry's
// transaction lock, so at most one unit of work is in flight at a time and
// it sees a stable base view. Repository writes land in overlay maps; Commit
// folds the overlay into the registry under the data lock and advances the
// order counter, Rollback drops the overlay. Either way the transaction lock
// is released. Registry reads stay available for the whole transaction and
// observe pre-commit state.
//
// A rolled-back unit of work leaves the registry byte-for-byte unchanged,
// including the order id sequence: an allocation by NextID only sticks when
// the transaction commits.
type UnitOfWork struct {
	registry *Registry
	active   bool

	restaurants      map[int]restaurantRecord
	newRestaurantIDs []int
	customers        map[int]customerRecord
	newCustomerIDs   []int
	orders           map[int]orderRecord
	newOrderIDs      []int
	deliveryStaff    map[int]deliveryPersonRecord
	newDeliveryIDs   []int
	nextOrderID      int
}

// Begin starts the transaction and takes the registry's transaction lock.
// Calling Begin on an already-begun unit of work is a no-op.
func (uow *UnitOfWork) Begin(_ context.Context) error {
	if uow.active {
		return nil
	}

	uow.registry.txMu.Lock()
	uow.active = true
	uow.restaurants = make(map[int]restaurantRecord)
	uow.customers = make(map[int]customerRecord)
	uow.orders = make(map[int]orderRecord)
	uow.deliveryStaff = make(map[int]deliveryPersonRecord)
	uow.newRestaurantIDs = nil
	uow.newCustomerIDs = nil
	uow.newOrderIDs = nil
	uow.newDeliveryIDs = nil
	uow.nextOrderID = uow.registry.baseNextOrderID()

	return nil
}

// Commit folds the staged overlay into the registry and releases the
// transaction lock. The data lock is held only while folding, so concurrent
// reads see either none or all of the transaction.
// After Commit the unit of work cannot be reused.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	reg := uow.registry
	reg.mu.Lock()
	for id, record := range uow.restaurants {
		reg.restaurants[id] = record
	}
	reg.restaurantIDs = append(reg.restaurantIDs, uow.newRestaurantIDs...)
	for id, record := range uow.customers {
		reg.customers[id] = record
	}
	reg.customerIDs = append(reg.customerIDs, uow.newCustomerIDs...)
	for id, record := range uow.orders {
		reg.orders[id] = record
	}
	reg.orderIDs = append(reg.orderIDs, uow.newOrderIDs...)
	for id, record := range uow.deliveryStaff {
		reg.deliveryStaff[id] = record
	}
	reg.deliveryIDs = append(reg.deliveryIDs, uow.newDeliveryIDs...)
	reg.nextOrderID = uow.nextOrderID
	reg.mu.Unlock()

	uow.active = false
	reg.txMu.Unlock()
	return nil
}

// Rollback discards the staged overlay and releases the transaction lock.
// Rollback on a finished or never-begun unit of work is a no-op, which makes
// it safe to defer alongside an explicit Commit.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return nil
	}

	uow.active = false
	uow.registry.txMu.Unlock()
	return nil
}

// RestaurantRepository returns a RestaurantRepository staging into this
// transaction.
func (uow *UnitOfWork) RestaurantRepository() ports.RestaurantRepository {
	return &restaurantRepository{uow: uow}
}

// CustomerRepository returns a CustomerRepository staging into this
// transaction.
func (uow *UnitOfWork) CustomerRepository() ports.CustomerRepository {
	return &customerRepository{uow: uow}
}

// OrderRepository returns an OrderRepository staging into this transaction.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &orderRepository{uow: uow}
}

// DeliveryPersonRepository returns a DeliveryPersonRepository staging into
// this transaction.
func (uow *UnitOfWork) DeliveryPersonRepository() ports.DeliveryPersonRepository {
	return &deliveryPersonRepository{uow: uow}
}
