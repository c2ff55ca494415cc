package commands

import (
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/guard"
)

var ErrUpdateOrderConfigCommandIsNotConstructed = errors.New(
	"UpdateOrderConfigCommand must be created via NewUpdateOrderConfigCommand constructor",
)

// UpdateOrderConfigCommand replaces the garment configuration and design of
// a pending order, repricing it in the same operation. Only the owning
// customer may edit, and only while the order is pending.
type UpdateOrderConfigCommand struct {
	orderID kernel.UUID
	actor   kernel.Actor
	config  order.GarmentConfig
	design  order.DesignSpec
	guard   guard.ConstructorGuard
}

// NewUpdateOrderConfigCommand creates a validated configuration update command.
func NewUpdateOrderConfigCommand(
	orderID kernel.UUID,
	actor kernel.Actor,
	config order.GarmentConfig,
	design order.DesignSpec,
) (UpdateOrderConfigCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UpdateOrderConfigCommand{}, err
	}
	if err := actor.Validate(); err != nil {
		return UpdateOrderConfigCommand{}, err
	}
	if err := config.Validate(); err != nil {
		return UpdateOrderConfigCommand{}, err
	}
	if err := design.Validate(); err != nil {
		return UpdateOrderConfigCommand{}, err
	}

	return UpdateOrderConfigCommand{
		orderID: orderID,
		actor:   actor,
		config:  config,
		design:  design,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the target order's identifier.
func (c UpdateOrderConfigCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the acting principal.
func (c UpdateOrderConfigCommand) Actor() kernel.Actor {
	return c.actor
}

// Config returns the replacement garment configuration.
func (c UpdateOrderConfigCommand) Config() order.GarmentConfig {
	return c.config
}

// Design returns the replacement design specification.
func (c UpdateOrderConfigCommand) Design() order.DesignSpec {
	return c.design
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderConfigCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderConfigCommandIsNotConstructed)
}
