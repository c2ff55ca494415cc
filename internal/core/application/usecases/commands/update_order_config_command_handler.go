package commands

import (
	"context"

	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/locker"
)

// UpdateOrderConfigCommandHandler applies configuration edits to a pending
// order under the per-order critical section, so the read-reprice-write
// sequence is atomic with respect to concurrent transitions on the same
// order.
type UpdateOrderConfigCommandHandler struct {
	uowFactory OrderUoWFactory
	locks      *locker.KeyedMutex
	calc       order.PriceCalculator
}

// NewUpdateOrderConfigCommandHandler creates a handler for configuration updates.
func NewUpdateOrderConfigCommandHandler(
	uowFactory OrderUoWFactory,
	locks *locker.KeyedMutex,
	calc order.PriceCalculator,
) UpdateOrderConfigCommandHandler {
	return UpdateOrderConfigCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
		calc:       calc,
	}
}

// Handle loads the order, applies the edit, and persists the result.
// Returns order.ErrOrderLocked once the order left pending,
// order.ErrForbidden for a non-owner, and errs.ErrObjectNotFound for an
// unknown order.
func (h UpdateOrderConfigCommandHandler) Handle(
	ctx context.Context,
	command UpdateOrderConfigCommand,
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

	if err = aggregate.UpdateConfiguration(
		command.Actor(),
		command.Config(),
		command.Design(),
		h.calc,
	); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
