package commands

import (
	"context"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/model/tailor"
)

// SetTailorActiveCommandHandler toggles a tailor's availability. Admin only.
type SetTailorActiveCommandHandler struct {
	uowFactory TailorUoWFactory
}

// NewSetTailorActiveCommandHandler creates a handler for the availability toggle.
func NewSetTailorActiveCommandHandler(uowFactory TailorUoWFactory) SetTailorActiveCommandHandler {
	return SetTailorActiveCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the tailor, flips the availability flag, and persists the result.
// Returns errs.ErrObjectNotFound when the tailor does not exist.
func (h SetTailorActiveCommandHandler) Handle(ctx context.Context, command SetTailorActiveCommand) (*tailor.Tailor, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	if !command.Actor().Is(kernel.RoleAdmin) {
		return nil, order.ErrForbidden
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.TailorRepository().Get(ctx, command.TailorID())
	if err != nil {
		return nil, err
	}

	aggregate.SetActive(command.IsActive())

	if err = uow.TailorRepository().Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
