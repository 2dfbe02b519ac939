package queries_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/restaurant"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewCartQueryHandler_Handle_WithItems(t *testing.T) {
	ctx := t.Context()

	buyer := newTestCustomer(t, 7)
	pizza, err := restaurant.NewFoodItem(mustID(t, 101), "Margherita", mustMoney(t, "8.99"))
	require.NoError(t, err)
	cola, err := restaurant.NewFoodItem(mustID(t, 102), "Cola", mustMoney(t, "1.50"))
	require.NoError(t, err)
	require.NoError(t, buyer.Cart().Add(pizza, 2))
	require.NoError(t, buyer.Cart().Add(cola, 3))

	reader := new(MockCustomerReader)
	reader.On("Customer", ctx, mustID(t, 7)).Return(buyer, nil).Once()

	query, err := queries.NewViewCartQuery(mustID(t, 7))
	require.NoError(t, err)

	h := queries.NewViewCartQueryHandler(reader)
	response, err := h.Handle(ctx, query)
	require.NoError(t, err)

	assert.False(t, response.Empty)
	require.Len(t, response.Lines, 2)
	assert.Equal(t, "Margherita", response.Lines[0].Name)
	assert.Equal(t, 2, response.Lines[0].Quantity)
	assert.True(t, mustMoney(t, "17.98").IsEqual(response.Lines[0].Cost))
	assert.Equal(t, "Cola", response.Lines[1].Name)
	assert.True(t, mustMoney(t, "4.50").IsEqual(response.Lines[1].Cost))
	assert.True(t, mustMoney(t, "22.48").IsEqual(response.Total))

	reader.AssertExpectations(t)
}

func TestViewCartQueryHandler_Handle_EmptyCart(t *testing.T) {
	ctx := t.Context()

	buyer := newTestCustomer(t, 7)

	reader := new(MockCustomerReader)
	reader.On("Customer", ctx, mustID(t, 7)).Return(buyer, nil).Once()

	query, err := queries.NewViewCartQuery(mustID(t, 7))
	require.NoError(t, err)

	h := queries.NewViewCartQueryHandler(reader)
	response, err := h.Handle(ctx, query)
	require.NoError(t, err)

	assert.True(t, response.Empty)
	assert.Empty(t, response.Lines)
	assert.True(t, response.Total.IsZero())
}

func TestViewCartQueryHandler_Handle_CustomerNotFound(t *testing.T) {
	ctx := t.Context()

	reader := new(MockCustomerReader)
	reader.On("Customer", ctx, mustID(t, 99)).
		Return(nil, errs.NewObjectNotFoundError("customerId", 99)).Once()

	query, err := queries.NewViewCartQuery(mustID(t, 99))
	require.NoError(t, err)

	h := queries.NewViewCartQueryHandler(reader)
	_, err = h.Handle(ctx, query)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
