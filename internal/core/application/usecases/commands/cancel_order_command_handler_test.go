package commands_test

import (
	"testing"
	"time"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func fixtureStoredOrderWithStatus(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	stored, err := order.RestoreOrder(
		42,
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		status,
		"Marie", "Curie", "marie.curie@gmail.com", "(212) 555-1234",
		fixtureAddress(t), fixtureLines(t),
		decimal.NewFromFloat(100.00), decimal.NewFromFloat(50.00),
	)
	require.NoError(t, err)
	return stored
}

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	stored := fixtureStoredOrderWithStatus(t, order.Processing)
	cmd, err := commands.NewCancelOrderCommand(42)
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

	h := commands.NewCancelOrderCommandHandler(factory)
	canceled, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.Canceled, canceled.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_NotProcessing(t *testing.T) {
	for _, status := range []order.Status{order.Completed, order.Canceled} {
		t.Run(status.String(), func(t *testing.T) {
			ctx := t.Context()
			stored := fixtureStoredOrderWithStatus(t, status)
			cmd, err := commands.NewCancelOrderCommand(42)
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

			h := commands.NewCancelOrderCommandHandler(factory)
			_, err = h.Handle(ctx, cmd)
			require.ErrorIs(t, err, errs.ErrStatusTransitionNotAllowed)

			// the stored order keeps its status, nothing was persisted
			require.Equal(t, status, stored.Status())
			repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			uow.AssertNotCalled(t, "Commit", ctx)
		})
	}
}

func TestCancelOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCancelOrderCommand(99)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(99)).Return(nil, errs.NewObjectNotFoundError("orderId", int64(99))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
