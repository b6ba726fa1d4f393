package commands_test

import (
	"errors"
	"testing"

	"grocery/internal/core/application/usecases/commands"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/pkg/clock"
	"grocery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var milkLine = commands.OrderLine{Name: "Milk", UnitPrice: decimal.NewFromInt(60), Quantity: 2}

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("should build items from lines", func(t *testing.T) {
		id := kernel.NewUUID()
		customer := kernel.NewUUID()

		cmd, err := commands.NewCreateOrderCommand(id, customer, " Asha ", []commands.OrderLine{milkLine})

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, id, cmd.OrderID())
		assert.Equal(t, customer, cmd.CustomerID())
		assert.Equal(t, "Asha", cmd.CustomerName())
		require.Len(t, cmd.Items(), 1)
		assert.Equal(t, 2, cmd.Items()[0].Quantity())
	})

	t.Run("should reject empty lines", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), "Asha", nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject invalid line", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), "Asha", []commands.OrderLine{
			{Name: "Milk", UnitPrice: decimal.NewFromInt(60), Quantity: 0},
		})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "item 0")
	})

	t.Run("should reject missing ids", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.UUID{}, kernel.UUID{}, "Asha", []commands.OrderLine{milkLine})

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.Contains(t, err.Error(), "customer id")
	})
}

func TestCreateOrderCommandHandler_Handle(t *testing.T) {
	newCmd := func(t *testing.T) commands.CreateOrderCommand {
		cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), "Asha", []commands.OrderLine{milkLine})
		require.NoError(t, err)
		return cmd
	}

	t.Run("should store a pending order and publish it", func(t *testing.T) {
		ctx := t.Context()
		cmd := newCmd(t)
		repo := new(MockOrderRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(repo).Once(),
			repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()
		publisher := &recordingPublisher{}

		h := commands.NewCreateOrderCommandHandler(factory, clock.NewManual(createdAt), publisher)
		o, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.True(t, o.ID().IsEqual(cmd.OrderID()))
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.True(t, decimal.NewFromInt(120).Equal(o.TotalAmount()))
		require.Len(t, publisher.Events(), 1)
		assert.Equal(t, order.EventCreated, publisher.Events()[0].Type)
		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
		factory.AssertExpectations(t)
	})

	t.Run("should reject a command not built by its constructor", func(t *testing.T) {
		h := commands.NewCreateOrderCommandHandler(new(MockOrderUoWFactory), clock.System{}, &recordingPublisher{})

		_, err := h.Handle(t.Context(), commands.CreateOrderCommand{})

		require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	})

	t.Run("should not publish when add fails", func(t *testing.T) {
		ctx := t.Context()
		repo := new(MockOrderRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(repo).Once()
		repo.On("Add", ctx, mock.Anything).Return(errors.New("add error")).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()
		publisher := &recordingPublisher{}

		h := commands.NewCreateOrderCommandHandler(factory, clock.System{}, publisher)
		_, err := h.Handle(ctx, newCmd(t))

		require.EqualError(t, err, "add error")
		assert.Empty(t, publisher.Events())
		uow.AssertNotCalled(t, "Commit", mock.Anything)
		uow.AssertExpectations(t)
	})

	t.Run("should fail on begin error", func(t *testing.T) {
		ctx := t.Context()
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once()
		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewCreateOrderCommandHandler(factory, clock.System{}, &recordingPublisher{})
		_, err := h.Handle(ctx, newCmd(t))

		require.EqualError(t, err, "begin error")
		uow.AssertExpectations(t)
	})

	t.Run("should fail on commit error", func(t *testing.T) {
		ctx := t.Context()
		repo := new(MockOrderRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(repo).Once()
		repo.On("Add", ctx, mock.Anything).Return(nil).Once()
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()
		publisher := &recordingPublisher{}

		h := commands.NewCreateOrderCommandHandler(factory, clock.System{}, publisher)
		_, err := h.Handle(ctx, newCmd(t))

		require.EqualError(t, err, "commit error")
		assert.Empty(t, publisher.Events())
	})
}
