package commands

import (
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/guard"
)

var ErrOverrideOrderStatusCommandIsNotConstructed = errors.New(
	"OverrideOrderStatusCommand must be created via NewOverrideOrderStatusCommand constructor",
)

// OverrideOrderStatusCommand is the privileged administrative channel that
// forces an order into a status outside the normal edge table. The
// transition is logged with the admin_override reason code; the assignment
// invariant still applies.
type OverrideOrderStatusCommand struct {
	orderID kernel.UUID
	target  order.Status
	actor   kernel.Actor
	guard   guard.ConstructorGuard
}

// NewOverrideOrderStatusCommand creates a validated override command.
func NewOverrideOrderStatusCommand(
	orderID kernel.UUID,
	target order.Status,
	actor kernel.Actor,
) (OverrideOrderStatusCommand, error) {
	if err := orderID.Validate(); err != nil {
		return OverrideOrderStatusCommand{}, err
	}
	if err := target.Validate(); err != nil {
		return OverrideOrderStatusCommand{}, err
	}
	if err := actor.Validate(); err != nil {
		return OverrideOrderStatusCommand{}, err
	}

	return OverrideOrderStatusCommand{
		orderID: orderID,
		target:  target,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the target order's identifier.
func (c OverrideOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the forced lifecycle status.
func (c OverrideOrderStatusCommand) Target() order.Status {
	return c.target
}

// Actor returns the acting principal.
func (c OverrideOrderStatusCommand) Actor() kernel.Actor {
	return c.actor
}

// Validate ensures the command was created through the constructor.
func (c OverrideOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrOverrideOrderStatusCommandIsNotConstructed)
}
