package commands

import (
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"
)

var ErrAssignTailorCommandIsNotConstructed = errors.New(
	"AssignTailorCommand must be created via NewAssignTailorCommand constructor",
)

// AssignTailorCommand assigns a fulfillment agent to a pending order, or
// reassigns an already assigned one. Assignment is an explicit
// administrative action; there is no automatic dispatch.
//
// Example:
//
//	cmd, err := NewAssignTailorCommand(orderID, tailorID, admin)
//	if err != nil {
//	    return err
//	}
//	updated, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrTailorUnavailable) {
//	    // admin must pick another tailor
//	}
type AssignTailorCommand struct {
	orderID  kernel.UUID
	tailorID kernel.UUID
	actor    kernel.Actor
	guard    guard.ConstructorGuard
}

// NewAssignTailorCommand creates a validated assignment command.
func NewAssignTailorCommand(
	orderID kernel.UUID,
	tailorID kernel.UUID,
	actor kernel.Actor,
) (AssignTailorCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AssignTailorCommand{}, err
	}
	if err := tailorID.Validate(); err != nil {
		return AssignTailorCommand{}, err
	}
	if err := actor.Validate(); err != nil {
		return AssignTailorCommand{}, err
	}

	return AssignTailorCommand{
		orderID:  orderID,
		tailorID: tailorID,
		actor:    actor,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the target order's identifier.
func (c AssignTailorCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TailorID returns the assignment target.
func (c AssignTailorCommand) TailorID() kernel.UUID {
	return c.tailorID
}

// Actor returns the acting principal.
func (c AssignTailorCommand) Actor() kernel.Actor {
	return c.actor
}

// Validate ensures the command was created through the constructor.
func (c AssignTailorCommand) Validate() error {
	return c.guard.Validate(ErrAssignTailorCommandIsNotConstructed)
}
