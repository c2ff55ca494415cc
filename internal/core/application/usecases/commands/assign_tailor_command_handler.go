package commands

import (
	"context"
	"errors"
	"log/slog"

	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/ports"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/locker"
)

// ErrTailorUnavailable is returned when the assignment target does not
// exist or is deactivated. The admin must pick another tailor.
var ErrTailorUnavailable = errors.New("tailor is unavailable for assignment")

// AssignTailorCommandHandler executes administrative tailor assignment.
//
// The directory lookup happens before the per-order critical section is
// entered, so the lock is never held across anything but the order's own
// read-modify-write. Reassignment of an already assigned order is modeled
// as unassign followed by assign, producing two history entries — never a
// silent swap of the accountable tailor.
type AssignTailorCommandHandler struct {
	uowFactory UoWFactory
	locks      *locker.KeyedMutex
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewAssignTailorCommandHandler creates a handler for tailor assignment.
func NewAssignTailorCommandHandler(
	uowFactory UoWFactory,
	locks *locker.KeyedMutex,
	notifier ports.Notifier,
	logger *slog.Logger,
) AssignTailorCommandHandler {
	return AssignTailorCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
		notifier:   notifier,
		logger:     logger.With("component", "assign_tailor_handler"),
	}
}

// Handle validates tailor availability, then assigns under the per-order lock.
// Returns ErrTailorUnavailable for an unknown or inactive tailor,
// order.ErrOrderNotAssignable when the order is in a working or terminal
// state that assignment cannot touch, and order.ErrForbidden for non-admins.
func (h AssignTailorCommandHandler) Handle(ctx context.Context, command AssignTailorCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	// Directory snapshot before the critical section.
	if err := h.checkTailorAvailable(ctx, command); err != nil {
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

	if aggregate.Status() == order.Assigned {
		if err = aggregate.Unassign(command.Actor()); err != nil {
			return nil, err
		}
	}
	if err = aggregate.Assign(command.TailorID(), command.Actor()); err != nil {
		return nil, err
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

func (h AssignTailorCommandHandler) checkTailorAvailable(ctx context.Context, command AssignTailorCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	assignee, err := uow.TailorRepository().Get(ctx, command.TailorID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrTailorUnavailable
	}
	if err != nil {
		return err
	}
	if !assignee.IsActive() {
		return ErrTailorUnavailable
	}
	return nil
}
