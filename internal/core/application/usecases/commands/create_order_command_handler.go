package commands

import (
	"context"

	"atelier/internal/core/domain/model/order"
)

// CreateOrderCommandHandler prices a new order configuration and persists
// the resulting pending order. Creation needs no per-order lock: the
// aggregate does not exist until the insert commits.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	calc       order.PriceCalculator
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, calc order.PriceCalculator) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		calc:       calc,
	}
}

// Handle creates, prices, and persists the order.
// Returns the created aggregate so the caller can render the projection,
// or order.ErrInvalidConfiguration when pricing rejects the configuration.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, command CreateOrderCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(
		command.OrderID(),
		command.Customer(),
		command.Config(),
		command.Design(),
		h.calc,
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

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
