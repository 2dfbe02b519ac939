package memory

import (
	"context"

	"foodorder/internal/core/domain/model/customer"
	"foodorder/internal/core/domain/model/delivery"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/restaurant"
	"foodorder/internal/pkg/errs"
)

// The repositories read through the overlay (staged writes win over the
// registry's base state) and write only to the overlay. All of them require
// an active transaction.

type restaurantRepository struct {
	uow *UnitOfWork
}

func (r *restaurantRepository) Add(_ context.Context, aggregate *restaurant.Restaurant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !r.uow.active {
		return ErrNoActiveTransaction
	}

	key := aggregate.ID().Int()
	if _, staged := r.uow.restaurants[key]; staged {
		return errs.NewDuplicateKeyError("restaurantId", key)
	}
	if _, exists := r.uow.registry.baseRestaurant(key); exists {
		return errs.NewDuplicateKeyError("restaurantId", key)
	}

	r.uow.restaurants[key] = restaurantFromDomain(aggregate)
	r.uow.newRestaurantIDs = append(r.uow.newRestaurantIDs, key)
	return nil
}

func (r *restaurantRepository) Update(_ context.Context, aggregate *restaurant.Restaurant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !r.uow.active {
		return ErrNoActiveTransaction
	}

	key := aggregate.ID().Int()
	_, staged := r.uow.restaurants[key]
	_, exists := r.uow.registry.baseRestaurant(key)
	if !staged && !exists {
		return errs.NewObjectNotFoundError("restaurantId", key)
	}

	r.uow.restaurants[key] = restaurantFromDomain(aggregate)
	return nil
}

func (r *restaurantRepository) Get(_ context.Context, id kernel.ID) (*restaurant.Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if !r.uow.active {
		return nil, ErrNoActiveTransaction
	}

	key := id.Int()
	record, ok := r.uow.restaurants[key]
	if !ok {
		record, ok = r.uow.registry.baseRestaurant(key)
	}
	if !ok {
		return nil, errs.NewObjectNotFoundError("restaurantId", key)
	}

	return restaurantToDomain(record)
}

type customerRepository struct {
	uow *UnitOfWork
}

func (r *customerRepository) Add(_ context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !r.uow.active {
		return ErrNoActiveTransaction
	}

	key := aggregate.ID().Int()
	if _, staged := r.uow.customers[key]; staged {
		return errs.NewDuplicateKeyError("customerId", key)
	}
	if _, exists := r.uow.registry.baseCustomer(key); exists {
		return errs.NewDuplicateKeyError("customerId", key)
	}

	r.uow.customers[key] = customerFromDomain(aggregate)
	r.uow.newCustomerIDs = append(r.uow.newCustomerIDs, key)
	return nil
}

func (r *customerRepository) Update(_ context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !r.uow.active {
		return ErrNoActiveTransaction
	}

	key := aggregate.ID().Int()
	_, staged := r.uow.customers[key]
	_, exists := r.uow.registry.baseCustomer(key)
	if !staged && !exists {
		return errs.NewObjectNotFoundError("customerId", key)
	}

	r.uow.customers[key] = customerFromDomain(aggregate)
	return nil
}

func (r *customerRepository) Get(_ context.Context, id kernel.ID) (*customer.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if !r.uow.active {
		return nil, ErrNoActiveTransaction
	}

	key := id.Int()
	record, ok := r.uow.customers[key]
	if !ok {
		record, ok = r.uow.registry.baseCustomer(key)
	}
	if !ok {
		return nil, errs.NewObjectNotFoundError("customerId", key)
	}

	return customerToDomain(record)
}

type orderRepository struct {
	uow *UnitOfWork
}

func (r *orderRepository) NextID(_ context.Context) (kernel.ID, error) {
	if !r.uow.active {
		return kernel.ID{}, ErrNoActiveTransaction
	}

	id, err := kernel.NewID(r.uow.nextOrderID)
	if err != nil {
		return kernel.ID{}, err
	}

	r.uow.nextOrderID++
	return id, nil
}

func (r *orderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !r.uow.active {
		return ErrNoActiveTransaction
	}

	key := aggregate.ID().Int()
	if _, staged := r.uow.orders[key]; staged {
		return errs.NewDuplicateKeyError("orderId", key)
	}
	if _, exists := r.uow.registry.baseOrder(key); exists {
		return errs.NewDuplicateKeyError("orderId", key)
	}

	r.uow.orders[key] = orderFromDomain(aggregate)
	r.uow.newOrderIDs = append(r.uow.newOrderIDs, key)
	return nil
}

func (r *orderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !r.uow.active {
		return ErrNoActiveTransaction
	}

	key := aggregate.ID().Int()
	_, staged := r.uow.orders[key]
	_, exists := r.uow.registry.baseOrder(key)
	if !staged && !exists {
		return errs.NewObjectNotFoundError("orderId", key)
	}

	r.uow.orders[key] = orderFromDomain(aggregate)
	return nil
}

func (r *orderRepository) Get(_ context.Context, id kernel.ID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if !r.uow.active {
		return nil, ErrNoActiveTransaction
	}

	key := id.Int()
	record, ok := r.uow.orders[key]
	if !ok {
		record, ok = r.uow.registry.baseOrder(key)
	}
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderId", key)
	}

	return orderToDomain(record)
}

type deliveryPersonRepository struct {
	uow *UnitOfWork
}

func (r *deliveryPersonRepository) Add(_ context.Context, aggregate *delivery.Person) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !r.uow.active {
		return ErrNoActiveTransaction
	}

	key := aggregate.ID().Int()
	if _, staged := r.uow.deliveryStaff[key]; staged {
		return errs.NewDuplicateKeyError("deliveryPersonId", key)
	}
	if _, exists := r.uow.registry.baseDeliveryPerson(key); exists {
		return errs.NewDuplicateKeyError("deliveryPersonId", key)
	}

	r.uow.deliveryStaff[key] = deliveryPersonFromDomain(aggregate)
	r.uow.newDeliveryIDs = append(r.uow.newDeliveryIDs, key)
	return nil
}

func (r *deliveryPersonRepository) Get(_ context.Context, id kernel.ID) (*delivery.Person, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if !r.uow.active {
		return nil, ErrNoActiveTransaction
	}

	key := id.Int()
	record, ok := r.uow.deliveryStaff[key]
	if !ok {
		record, ok = r.uow.registry.baseDeliveryPerson(key)
	}
	if !ok {
		return nil, errs.NewObjectNotFoundError("deliveryPersonId", key)
	}

	return deliveryPersonToDomain(record)
}
