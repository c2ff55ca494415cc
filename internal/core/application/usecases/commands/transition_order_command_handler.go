package commands

import (
	"context"
	"log/slog"

	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/ports"
	"atelier/internal/pkg/locker"
)

// TransitionOrderCommandHandler applies a normal lifecycle transition under
// the per-order critical section and publishes the change to the
// notification sink after commit.
//
// Retried deliveries are safe: the aggregate recognizes a repeat of the
// last applied transition by the same actor and treats it as a no-op, in
// which case nothing is persisted and no duplicate notification is sent.
type TransitionOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	locks      *locker.KeyedMutex
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewTransitionOrderCommandHandler creates a handler for lifecycle transitions.
func NewTransitionOrderCommandHandler(
	uowFactory OrderUoWFactory,
	locks *locker.KeyedMutex,
	notifier ports.Notifier,
	logger *slog.Logger,
) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
		notifier:   notifier,
		logger:     logger.With("component", "transition_order_handler"),
	}
}

// Handle loads the order, applies the transition, and persists the result.
// Returns order.ErrInvalidTransition when the edge does not exist,
// order.ErrForbidden when the actor may not use it, and
// errs.ErrObjectNotFound for an unknown order.
func (h TransitionOrderCommandHandler) Handle(ctx context.Context, command TransitionOrderCommand) (*order.Order, error) {
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

	if err = aggregate.ApplyTransition(command.Target(), command.Actor()); err != nil {
		return nil, err
	}

	// Idempotent replay: nothing changed, nothing to persist or announce.
	if len(aggregate.History()) == entriesBefore {
		return aggregate, nil
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	publishStatusChanged(ctx, h.notifier, h.logger, aggregate, from, "")

	return aggregate, nil
}
