package commands_test

import (
	"testing"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/ports"
	"atelier/internal/pkg/locker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOverrideOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	admin := mustActor(t, kernel.RoleAdmin)
	existing := mustAssignedOrder(t, mustActor(t, kernel.RoleCustomer), kernel.NewUUID())

	cmd, err := commands.NewOverrideOrderStatusCommand(existing.ID(), order.Completed, admin)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	notifier := new(MockNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, existing.ID()).Return(existing, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	notifier.On("PublishStatusChanged", ctx, mock.AnythingOfType("ports.OrderStatusChanged")).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewOverrideOrderStatusCommandHandler(factory, locker.NewKeyedMutex(), notifier, discardLogger())
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Completed, updated.Status())

	last := updated.History()[len(updated.History())-1]
	assert.Equal(t, order.ReasonAdminOverride, last.Reason)

	event := notifier.Calls[0].Arguments.Get(1).(ports.OrderStatusChanged)
	assert.Equal(t, order.ReasonAdminOverride, event.Reason)
	assert.Equal(t, "assigned", event.From)
	assert.Equal(t, "completed", event.To)

	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestOverrideOrderStatusCommandHandler_Handle_RevivesCancelledOrder(t *testing.T) {
	ctx := t.Context()
	customer := mustActor(t, kernel.RoleCustomer)
	tailorID := kernel.NewUUID()
	assignee, err := kernel.NewActor(kernel.RoleTailor, tailorID)
	require.NoError(t, err)
	existing := mustAssignedOrder(t, customer, tailorID)
	require.NoError(t, existing.ApplyTransition(order.Accepted, assignee))
	require.NoError(t, existing.ApplyTransition(order.Cancelled, customer))

	cmd, err := commands.NewOverrideOrderStatusCommand(existing.ID(), order.Completed, mustActor(t, kernel.RoleAdmin))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	notifier := new(MockNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, existing.ID()).Return(existing, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	notifier.On("PublishStatusChanged", ctx, mock.AnythingOfType("ports.OrderStatusChanged")).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewOverrideOrderStatusCommandHandler(factory, locker.NewKeyedMutex(), notifier, discardLogger())
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Completed, updated.Status())

	event := notifier.Calls[0].Arguments.Get(1).(ports.OrderStatusChanged)
	assert.Equal(t, "cancelled", event.From)
	assert.Equal(t, "completed", event.To)
}

func TestOverrideOrderStatusCommandHandler_Handle_DeliveredIsFinal(t *testing.T) {
	ctx := t.Context()
	customer := mustActor(t, kernel.RoleCustomer)
	tailorID := kernel.NewUUID()
	assignee, err := kernel.NewActor(kernel.RoleTailor, tailorID)
	require.NoError(t, err)
	existing := mustAssignedOrder(t, customer, tailorID)
	require.NoError(t, existing.ApplyTransition(order.Accepted, assignee))
	require.NoError(t, existing.ApplyTransition(order.InProgress, assignee))
	require.NoError(t, existing.ApplyTransition(order.Completed, assignee))
	require.NoError(t, existing.ApplyTransition(order.Delivered, customer))

	cmd, err := commands.NewOverrideOrderStatusCommand(existing.ID(), order.Pending, mustActor(t, kernel.RoleAdmin))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, existing.ID()).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewOverrideOrderStatusCommandHandler(factory, locker.NewKeyedMutex(), new(MockNotifier), discardLogger())
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, order.ErrInvalidTransition)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestOverrideOrderStatusCommandHandler_Handle_NonAdminForbidden(t *testing.T) {
	ctx := t.Context()
	customer := mustActor(t, kernel.RoleCustomer)
	existing := mustPendingOrder(t, customer)

	cmd, err := commands.NewOverrideOrderStatusCommand(existing.ID(), order.Cancelled, customer)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, existing.ID()).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewOverrideOrderStatusCommandHandler(factory, locker.NewKeyedMutex(), new(MockNotifier), discardLogger())
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, order.ErrForbidden)
}

func TestOverrideOrderStatusCommandHandler_Handle_ReplayIsNoOp(t *testing.T) {
	ctx := t.Context()
	admin := mustActor(t, kernel.RoleAdmin)
	existing := mustAssignedOrder(t, mustActor(t, kernel.RoleCustomer), kernel.NewUUID())
	require.NoError(t, existing.ForceStatus(order.Completed, admin))

	cmd, err := commands.NewOverrideOrderStatusCommand(existing.ID(), order.Completed, admin)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	notifier := new(MockNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, existing.ID()).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewOverrideOrderStatusCommandHandler(factory, locker.NewKeyedMutex(), notifier, discardLogger())
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Completed, updated.Status())
	orderRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
	notifier.AssertNotCalled(t, "PublishStatusChanged", ctx, mock.Anything)
}
