package memory_test

import (
	"testing"

	"foodorder/internal/adapters/out/memory"
	"foodorder/internal/core/domain/model/customer"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/person"
	"foodorder/internal/core/domain/model/restaurant"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
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

func newPizzaHub(t *testing.T) *restaurant.Restaurant {
	t.Helper()
	r, err := restaurant.NewRestaurant(mustID(t, 1), "Pizza Hub")
	require.NoError(t, err)
	item, err := restaurant.NewFoodItem(mustID(t, 101), "Margherita", mustMoney(t, "8.99"))
	require.NoError(t, err)
	require.NoError(t, r.AddFoodItem(item))
	return r
}

func newAlice(t *testing.T) *customer.Customer {
	t.Helper()
	p, err := person.NewPerson(mustID(t, 7), "Alice", "alice@example.com")
	require.NoError(t, err)
	c, err := customer.NewCustomer(p)
	require.NoError(t, err)
	return c
}

func TestUnitOfWork_CommitMakesWritesVisible(t *testing.T) {
	ctx := t.Context()
	registry := memory.NewRegistry()
	factory := memory.NewUnitOfWorkFactory(registry)

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.RestaurantRepository().Add(ctx, newPizzaHub(t)))
	require.NoError(t, uow.Commit(ctx))

	var names []string
	for r := range registry.Restaurants(ctx) {
		names = append(names, r.Name())
	}
	assert.Equal(t, []string{"Pizza Hub"}, names)
}

func TestUnitOfWork_RollbackDiscardsWrites(t *testing.T) {
	ctx := t.Context()
	registry := memory.NewRegistry()
	factory := memory.NewUnitOfWorkFactory(registry)

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.RestaurantRepository().Add(ctx, newPizzaHub(t)))
	require.NoError(t, uow.Rollback(ctx))

	count := 0
	for range registry.Restaurants(ctx) {
		count++
	}
	assert.Zero(t, count)
}

func TestUnitOfWork_RollbackAfterCommitIsNoOp(t *testing.T) {
	ctx := t.Context()
	registry := memory.NewRegistry()
	factory := memory.NewUnitOfWorkFactory(registry)

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.RestaurantRepository().Add(ctx, newPizzaHub(t)))
	require.NoError(t, uow.Commit(ctx))
	require.NoError(t, uow.Rollback(ctx))

	count := 0
	for range registry.Restaurants(ctx) {
		count++
	}
	assert.Equal(t, 1, count)
}

func TestUnitOfWork_CommitWithoutBegin(t *testing.T) {
	ctx := t.Context()
	factory := memory.NewUnitOfWorkFactory(memory.NewRegistry())

	uow := factory.Create()
	err := uow.Commit(ctx)
	require.ErrorIs(t, err, memory.ErrNoActiveTransaction)
}

func TestUnitOfWork_DuplicateAdd(t *testing.T) {
	ctx := t.Context()
	registry := memory.NewRegistry()
	factory := memory.NewUnitOfWorkFactory(registry)

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.RestaurantRepository().Add(ctx, newPizzaHub(t)))
	require.NoError(t, uow.Commit(ctx))

	uow = factory.Create()
	require.NoError(t, uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	err := uow.RestaurantRepository().Add(ctx, newPizzaHub(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrDuplicateKey)
}

func TestUnitOfWork_StagedWritesReadableInTransaction(t *testing.T) {
	ctx := t.Context()
	registry := memory.NewRegistry()
	factory := memory.NewUnitOfWorkFactory(registry)

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	repo := uow.CustomerRepository()
	require.NoError(t, repo.Add(ctx, newAlice(t)))

	// The staged customer is visible inside the same transaction.
	got, err := repo.Get(ctx, mustID(t, 7))
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name())

	// But not outside it.
	_, err = registry.Customer(ctx, mustID(t, 7))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

// Every read-side method must return while a transaction is open, showing
// pre-commit state; the transaction lock must not starve readers.
func TestRegistry_ReadsAvailableDuringTransaction(t *testing.T) {
	ctx := t.Context()
	registry := memory.NewRegistry()
	factory := memory.NewUnitOfWorkFactory(registry)

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.RestaurantRepository().Add(ctx, newPizzaHub(t)))
	require.NoError(t, uow.CustomerRepository().Add(ctx, newAlice(t)))

	count := 0
	for range registry.Restaurants(ctx) {
		count++
	}
	assert.Zero(t, count)

	_, err := registry.Customer(ctx, mustID(t, 7))
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)

	orders, err := registry.Orders(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)

	persons, err := registry.DeliveryPersons(ctx)
	require.NoError(t, err)
	assert.Empty(t, persons)

	_, err = registry.DeliveryPerson(ctx, mustID(t, 3))
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)

	require.NoError(t, uow.Commit(ctx))

	got, err := registry.Customer(ctx, mustID(t, 7))
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name())
}

func TestUnitOfWork_NextIDOnlyAdvancesOnCommit(t *testing.T) {
	ctx := t.Context()
	registry := memory.NewRegistry()
	factory := memory.NewUnitOfWorkFactory(registry)

	// Allocate an id, then roll back.
	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	id, err := uow.OrderRepository().NextID(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, id.Int())
	require.NoError(t, uow.Rollback(ctx))

	// The rolled-back allocation did not consume the id.
	uow = factory.Create()
	require.NoError(t, uow.Begin(ctx))
	id, err = uow.OrderRepository().NextID(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, id.Int())
	require.NoError(t, uow.Commit(ctx))

	// A committed allocation did.
	uow = factory.Create()
	require.NoError(t, uow.Begin(ctx))
	id, err = uow.OrderRepository().NextID(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, id.Int())
	require.NoError(t, uow.Rollback(ctx))
}

func TestUnitOfWork_UpdateUnknownAggregate(t *testing.T) {
	ctx := t.Context()
	factory := memory.NewUnitOfWorkFactory(memory.NewRegistry())

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	err := uow.CustomerRepository().Update(ctx, newAlice(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestRegistry_ReadsAreSnapshots(t *testing.T) {
	ctx := t.Context()
	registry := memory.NewRegistry()
	factory := memory.NewUnitOfWorkFactory(registry)

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.CustomerRepository().Add(ctx, newAlice(t)))
	require.NoError(t, uow.Commit(ctx))

	first, err := registry.Customer(ctx, mustID(t, 7))
	require.NoError(t, err)

	// Mutating a snapshot must not leak into stored state.
	item, err := restaurant.NewFoodItem(mustID(t, 101), "Margherita", mustMoney(t, "8.99"))
	require.NoError(t, err)
	require.NoError(t, first.Cart().Add(item, 3))

	second, err := registry.Customer(ctx, mustID(t, 7))
	require.NoError(t, err)
	assert.True(t, second.Cart().IsEmpty())
}
