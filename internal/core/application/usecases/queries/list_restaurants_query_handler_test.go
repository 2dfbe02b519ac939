package queries_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/restaurant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListRestaurantsQueryHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	pizzaHub := newTestRestaurant(t, 1, "Pizza Hub")
	item, err := restaurant.NewFoodItem(mustID(t, 101), "Margherita", mustMoney(t, "8.99"))
	require.NoError(t, err)
	require.NoError(t, pizzaHub.AddFoodItem(item))
	sushiBar := newTestRestaurant(t, 2, "Sushi Bar")

	reader := new(MockRestaurantReader)
	reader.On("Restaurants", ctx).
		Return([]*restaurant.Restaurant{pizzaHub, sushiBar}).Once()

	h := queries.NewListRestaurantsQueryHandler(reader)
	responses, err := h.Handle(ctx, queries.NewListRestaurantsQuery())
	require.NoError(t, err)

	require.Len(t, responses, 2)
	assert.Equal(t, "Pizza Hub", responses[0].Name)
	require.Len(t, responses[0].Menu, 1)
	assert.Equal(t, "Margherita", responses[0].Menu[0].Name)
	assert.True(t, mustMoney(t, "8.99").IsEqual(responses[0].Menu[0].Price))
	assert.Equal(t, "Sushi Bar", responses[1].Name)
	assert.Empty(t, responses[1].Menu)

	reader.AssertExpectations(t)
}

func TestListRestaurantsQueryHandler_Handle_EmptyRegistry(t *testing.T) {
	ctx := t.Context()

	reader := new(MockRestaurantReader)
	reader.On("Restaurants", ctx).Return([]*restaurant.Restaurant{}).Once()

	h := queries.NewListRestaurantsQueryHandler(reader)
	responses, err := h.Handle(ctx, queries.NewListRestaurantsQuery())
	require.NoError(t, err)
	assert.Empty(t, responses)
	assert.NotNil(t, responses)
}

func TestListRestaurantsQueryHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()

	var query queries.ListRestaurantsQuery // not constructed properly
	h := queries.NewListRestaurantsQueryHandler(new(MockRestaurantReader))
	_, err := h.Handle(ctx, query)
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrListRestaurantsQueryIsNotConstructed)
}
