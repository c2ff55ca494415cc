package commands

import (
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand creates a new custom order for a customer from a
// garment configuration and design specification. The order is priced on
// creation and starts in pending.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(orderID, customer, config, design)
//	if err != nil {
//	    return err
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct {
	orderID  kernel.UUID
	customer kernel.Actor
	config   order.GarmentConfig
	design   order.DesignSpec
	guard    guard.ConstructorGuard
}

// NewCreateOrderCommand creates a validated command to create an order.
// The configuration and design must already be constructed value objects;
// the acting customer becomes the order's owner.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customer kernel.Actor,
	config order.GarmentConfig,
	design order.DesignSpec,
) (CreateOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}
	if err := customer.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}
	if err := config.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}
	if err := design.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
		orderID:  orderID,
		customer: customer,
		config:   config,
		design:   design,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the identifier the new order will carry.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Customer returns the acting customer who will own the order.
func (c CreateOrderCommand) Customer() kernel.Actor {
	return c.customer
}

// Config returns the garment configuration.
func (c CreateOrderCommand) Config() order.GarmentConfig {
	return c.config
}

// Design returns the design specification.
func (c CreateOrderCommand) Design() order.DesignSpec {
	return c.design
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}
