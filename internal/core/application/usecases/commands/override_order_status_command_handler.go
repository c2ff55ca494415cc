package commands

import (
	"context"
	"log/slog"

	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/ports"
	"atelier/internal/pkg/locker"
)

// OverrideOrderStatusCommandHandler applies an administrative status
// override under the per-order critical section. The resulting
// notification carries the admin_override reason so downstream consumers
// can distinguish forced moves from normal workflow.
type OverrideOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	locks      *locker.KeyedMutex
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewOverrideOrderStatusCommandHandler creates a handler for status overrides.
func NewOverrideOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	locks *locker.KeyedMutex,
	notifier ports.Notifier,
	logger *slog.Logger,
) OverrideOrderStatusCommandHandler {
	return OverrideOrderStatusCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
		notifier:   notifier,
		logger:     logger.With("component", "override_order_status_handler"),
	}
}

// Handle loads the order, forces the status, and persists the result.
// Returns order.ErrForbidden for non-admins and order.ErrInvalidTransition
// when the current status is terminal or the target would violate the
// assignment invariant.
func (h OverrideOrderStatusCommandHandler) Handle(
	ctx context.Context,
	command OverrideOrderStatusCommand,
) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	unlock := h.locks.Lock(command.OrderID().String())
	defer unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}

	from := aggregate.Status()
	entriesBefore := len(aggregate.History())

	if err = aggregate.ForceStatus(command.Target(), command.Actor()); err != nil {
		return nil, err
	}

	if len(aggregate.History()) == entriesBefore {
		return aggregate, nil
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	publishStatusChanged(ctx, h.notifier, h.logger, aggregate, from, order.ReasonAdminOverride)

	return aggregate, nil
}
