package commands_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/delivery"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/person"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T, id, customerID int) *order.Order {
	t.Helper()
	line, err := order.NewLine(mustID(t, 101), "Margherita", mustMoney(t, "8.99"), 2)
	require.NoError(t, err)
	o, err := order.NewOrder(mustID(t, id), mustID(t, customerID), []order.Line{line})
	require.NoError(t, err)
	return o
}

func newTestDeliveryPerson(t *testing.T, id int) *delivery.Person {
	t.Helper()
	p, err := person.NewPerson(mustID(t, id), "Dave", "+15550100")
	require.NoError(t, err)
	d, err := delivery.NewPerson(p)
	require.NoError(t, err)
	return d
}

func TestAssignDeliveryPersonCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAssignDeliveryPersonCommand(mustID(t, 1), mustID(t, 3))
	require.NoError(t, err)

	o := newTestOrder(t, 1, 7)
	d := newTestDeliveryPerson(t, 3)

	orderRepo := new(MockOrderRepository)
	deliveryRepo := new(MockDeliveryPersonRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, mustID(t, 1)).Return(o, nil).Once(),
		uow.On("DeliveryPersonRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", mock.Anything, mustID(t, 3)).Return(d, nil).Once(),
		orderRepo.On("Update", mock.Anything, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignDeliveryPersonCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.NotNil(t, o.DeliveryPersonID())
	assert.Equal(t, mustID(t, 3), *o.DeliveryPersonID())
	// Assignment alone never advances the status.
	assert.Equal(t, order.Pending, o.Status())

	orderRepo.AssertExpectations(t)
	deliveryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAssignDeliveryPersonCommandHandler_Handle_DeliveryPersonNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAssignDeliveryPersonCommand(mustID(t, 1), mustID(t, 99))
	require.NoError(t, err)

	o := newTestOrder(t, 1, 7)

	orderRepo := new(MockOrderRepository)
	deliveryRepo := new(MockDeliveryPersonRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, mustID(t, 1)).Return(o, nil).Once(),
		uow.On("DeliveryPersonRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", mock.Anything, mustID(t, 99)).
			Return(nil, errs.NewObjectNotFoundError("deliveryPersonId", 99)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignDeliveryPersonCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Nil(t, o.DeliveryPersonID())
}
