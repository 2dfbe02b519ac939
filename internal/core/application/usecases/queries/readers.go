// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models shaped for display, not domain aggregates.
package queries

import (
	"context"
	"iter"

	"foodorder/internal/core/domain/model/customer"
	"foodorder/internal/core/domain/model/delivery"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/restaurant"
)

// Reader interfaces give query handlers direct access to the registry's
// read side, bypassing the unit of work used by commands. Handlers receive
// point-in-time snapshots; later writes do not mutate what a query returned.
type (
	// RestaurantReader streams restaurant snapshots in registration order.
	RestaurantReader interface {
		Restaurants(ctx context.Context) iter.Seq[*restaurant.Restaurant]
	}

	// CustomerReader fetches a customer snapshot with their cart.
	// Returns an ObjectNotFound error when the id is not registered.
	CustomerReader interface {
		Customer(ctx context.Context, id kernel.ID) (*customer.Customer, error)
	}

	// OrderReader fetches order snapshots.
	OrderReader interface {
		// Orders returns every order in placement order.
		Orders(ctx context.Context) ([]*order.Order, error)

		// OrdersForCustomer returns the given customer's orders in placement
		// order. An unknown customer id yields an empty slice, not an error.
		OrdersForCustomer(ctx context.Context, customerID kernel.ID) ([]*order.Order, error)
	}

	// DeliveryPersonReader fetches delivery staff snapshots.
	DeliveryPersonReader interface {
		// DeliveryPersons returns all delivery staff in registration order.
		DeliveryPersons(ctx context.Context) ([]*delivery.Person, error)

		// DeliveryPerson fetches one delivery person.
		// Returns an ObjectNotFound error when the id is not registered.
		DeliveryPerson(ctx context.Context, id kernel.ID) (*delivery.Person, error)
	}
)
