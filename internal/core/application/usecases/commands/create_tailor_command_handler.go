package commands

import (
	"context"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/model/tailor"
)

// CreateTailorCommandHandler registers a new tailor in the directory.
// Directory administration is an admin-only surface.
type CreateTailorCommandHandler struct {
	uowFactory TailorUoWFactory
}

// NewCreateTailorCommandHandler creates a handler for tailor registration.
func NewCreateTailorCommandHandler(uowFactory TailorUoWFactory) CreateTailorCommandHandler {
	return CreateTailorCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates and persists the tailor described by the command.
func (h CreateTailorCommandHandler) Handle(ctx context.Context, command CreateTailorCommand) (*tailor.Tailor, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	if !command.Actor().Is(kernel.RoleAdmin) {
		return nil, order.ErrForbidden
	}

	newTailor, err := tailor.NewTailor(
		command.TailorID(),
		command.Name(),
		command.Phone(),
		command.Skills(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.TailorRepository().Add(ctx, newTailor); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newTailor, nil
}
