// Package memory provides the in-memory implementation of the storage
// ports: a single Registry guarded by a coarse mutex, with unit of work
// instances staging writes against it. The process owns all state; nothing
// survives a restart.
//
// Writes go through ports.UnitOfWork so that multi-aggregate operations
// (placing an order clears the cart, adds the order, and advances the order
// counter) are all-or-nothing. Reads go through the registry's snapshot
// methods directly and never block each other, only an in-flight write.
package memory

import (
	"context"
	"iter"
	"sync"

	"foodorder/internal/core/domain/model/customer"
	"foodorder/internal/core/domain/model/delivery"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/restaurant"
	"foodorder/internal/pkg/errs"
)

// Registry is the process-wide store for restaurants, customers, delivery
// staff, and orders. Aggregates are kept as detached records; every read
// reconstructs fresh domain objects, so callers can mutate what they get
// back without touching stored state.
//
// Iteration order is registration order for restaurants, customers, and
// delivery staff, and placement order for orders. Order ids are sequential
// starting at 1 and are only consumed by committed placements.
type Registry struct {
	// txMu serializes units of work: it is held from Begin to Commit or
	// Rollback, so at most one writer is in flight. mu guards the record
	// maps and id slices; readers hold it only while copying records, and
	// Commit holds it only while folding the overlay in. Reads issued while
	// a transaction is open therefore return promptly with pre-commit state.
	txMu sync.Mutex
	mu   sync.RWMutex

	restaurants   map[int]restaurantRecord
	restaurantIDs []int
	customers     map[int]customerRecord
	customerIDs   []int
	orders        map[int]orderRecord
	orderIDs      []int
	deliveryStaff map[int]deliveryPersonRecord
	deliveryIDs   []int
	nextOrderID   int
}

// NewRegistry creates an empty registry. The first placed order gets id 1.
func NewRegistry() *Registry {
	return &Registry{
		restaurants:   make(map[int]restaurantRecord),
		customers:     make(map[int]customerRecord),
		orders:        make(map[int]orderRecord),
		deliveryStaff: make(map[int]deliveryPersonRecord),
		nextOrderID:   1,
	}
}

// Restaurants streams restaurant snapshots in registration order.
// The sequence is restartable; each range sees the state as of that range.
func (r *Registry) Restaurants(_ context.Context) iter.Seq[*restaurant.Restaurant] {
	return func(yield func(*restaurant.Restaurant) bool) {
		for _, record := range r.restaurantSnapshot() {
			aggregate, err := restaurantToDomain(record)
			if err != nil {
				// Records only enter the registry through validated
				// aggregates, so reconstruction cannot fail.
				continue
			}
			if !yield(aggregate) {
				return
			}
		}
	}
}

func (r *Registry) restaurantSnapshot() []restaurantRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]restaurantRecord, 0, len(r.restaurantIDs))
	for _, id := range r.restaurantIDs {
		records = append(records, r.restaurants[id])
	}
	return records
}

// Customer fetches a customer snapshot with their cart.
// Returns an ObjectNotFound error when the id is not registered.
func (r *Registry) Customer(_ context.Context, id kernel.ID) (*customer.Customer, error) {
	record, ok := r.baseCustomer(id.Int())

	if !ok {
		return nil, errs.NewObjectNotFoundError("customerId", id.Int())
	}

	return customerToDomain(record)
}

// Orders returns every order in placement order.
func (r *Registry) Orders(_ context.Context) ([]*order.Order, error) {
	r.mu.RLock()
	records := make([]orderRecord, 0, len(r.orderIDs))
	for _, id := range r.orderIDs {
		records = append(records, r.orders[id])
	}
	r.mu.RUnlock()

	orders := make([]*order.Order, 0, len(records))
	for _, record := range records {
		aggregate, err := orderToDomain(record)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}

// OrdersForCustomer returns the given customer's orders in placement order.
// An id no customer holds yields an empty slice, not an error.
func (r *Registry) OrdersForCustomer(_ context.Context, customerID kernel.ID) ([]*order.Order, error) {
	r.mu.RLock()
	records := make([]orderRecord, 0)
	for _, id := range r.orderIDs {
		if record := r.orders[id]; record.CustomerID == customerID.Int() {
			records = append(records, record)
		}
	}
	r.mu.RUnlock()

	orders := make([]*order.Order, 0, len(records))
	for _, record := range records {
		aggregate, err := orderToDomain(record)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}

// DeliveryPersons returns all delivery staff in registration order.
func (r *Registry) DeliveryPersons(_ context.Context) ([]*delivery.Person, error) {
	r.mu.RLock()
	records := make([]deliveryPersonRecord, 0, len(r.deliveryIDs))
	for _, id := range r.deliveryIDs {
		records = append(records, r.deliveryStaff[id])
	}
	r.mu.RUnlock()

	persons := make([]*delivery.Person, 0, len(records))
	for _, record := range records {
		aggregate, err := deliveryPersonToDomain(record)
		if err != nil {
			return nil, err
		}
		persons = append(persons, aggregate)
	}

	return persons, nil
}

// DeliveryPerson fetches one delivery person.
// Returns an ObjectNotFound error when the id is not registered.
func (r *Registry) DeliveryPerson(_ context.Context, id kernel.ID) (*delivery.Person, error) {
	record, ok := r.baseDeliveryPerson(id.Int())
	if !ok {
		return nil, errs.NewObjectNotFoundError("deliveryPersonId", id.Int())
	}

	return deliveryPersonToDomain(record)
}

// The base lookups below are the only way the unit of work's repositories
// touch committed state, so every access to the record maps happens under mu.

func (r *Registry) baseRestaurant(id int) (restaurantRecord, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.restaurants[id]
	return record, ok
}

func (r *Registry) baseCustomer(id int) (customerRecord, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.customers[id]
	return record, ok
}

func (r *Registry) baseOrder(id int) (orderRecord, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.orders[id]
	return record, ok
}

func (r *Registry) baseDeliveryPerson(id int) (deliveryPersonRecord, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.deliveryStaff[id]
	return record, ok
}

func (r *Registry) baseNextOrderID() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.nextOrderID
}
