package queries_test

import (
	"context"
	"iter"
	"slices"
	"testing"

	"foodorder/internal/core/domain/model/customer"
	"foodorder/internal/core/domain/model/delivery"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/person"
	"foodorder/internal/core/domain/model/restaurant"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mustID(t *testing.T, value int) kernel.ID {
	t.Helper()
	id, err := kernel.NewID(value)
	require.NoError(t, err)
	return id
}

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

type MockRestaurantReader struct{ mock.Mock }

func (m *MockRestaurantReader) Restaurants(ctx context.Context) iter.Seq[*restaurant.Restaurant] {
	args := m.Called(ctx)
	return slices.Values(args.Get(0).([]*restaurant.Restaurant))
}

type MockCustomerReader struct{ mock.Mock }

func (m *MockCustomerReader) Customer(ctx context.Context, id kernel.ID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) Orders(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderReader) OrdersForCustomer(ctx context.Context, customerID kernel.ID) ([]*order.Order, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockDeliveryPersonReader struct{ mock.Mock }

func (m *MockDeliveryPersonReader) DeliveryPersons(ctx context.Context) ([]*delivery.Person, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*delivery.Person), args.Error(1)
}

func (m *MockDeliveryPersonReader) DeliveryPerson(ctx context.Context, id kernel.ID) (*delivery.Person, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Person), args.Error(1)
}

func newTestRestaurant(t *testing.T, id int, name string) *restaurant.Restaurant {
	t.Helper()
	r, err := restaurant.NewRestaurant(mustID(t, id), name)
	require.NoError(t, err)
	return r
}

func newTestCustomer(t *testing.T, id int) *customer.Customer {
	t.Helper()
	p, err := person.NewPerson(mustID(t, id), "Alice", "alice@example.com")
	require.NoError(t, err)
	c, err := customer.NewCustomer(p)
	require.NoError(t, err)
	return c
}
