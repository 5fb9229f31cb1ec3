package commands_test

import (
	"testing"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCompleteOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	stored := fixtureStoredOrderWithStatus(t, order.Processing)
	cmd, err := commands.NewCompleteOrderCommand(42)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(42)).Return(stored, nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Update", mock.Anything, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteOrderCommandHandler(factory)
	completed, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.Completed, completed.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCompleteOrderCommandHandler_Handle_NotProcessing(t *testing.T) {
	for _, status := range []order.Status{order.Completed, order.Canceled} {
		t.Run(status.String(), func(t *testing.T) {
			ctx := t.Context()
			stored := fixtureStoredOrderWithStatus(t, status)
			cmd, err := commands.NewCompleteOrderCommand(42)
			require.NoError(t, err)

			repo := new(MockOrderRepository)
			uow := new(MockOrderUoW)
			mock.InOrder(
				uow.On("Begin", ctx).Return(nil).Once(),
				uow.On("OrderRepository").Return(repo).Once(),
				repo.On("Get", mock.Anything, int64(42)).Return(stored, nil).Once(),
				uow.On("Rollback", ctx).Return(nil).Once(),
			)

			factory := new(MockOrderUoWFactory)
			factory.On("Create").Return(uow).Once()

			h := commands.NewCompleteOrderCommandHandler(factory)
			_, err = h.Handle(ctx, cmd)
			require.ErrorIs(t, err, errs.ErrStatusTransitionNotAllowed)
			require.Equal(t, status, stored.Status())
			uow.AssertNotCalled(t, "Commit", ctx)
		})
	}
}

func TestCompleteOrderCommandHandler_Handle_InvalidID(t *testing.T) {
	_, err := commands.NewCompleteOrderCommand(0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
