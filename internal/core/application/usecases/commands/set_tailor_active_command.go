package commands

import (
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"
)

var ErrSetTailorActiveCommandIsNotConstructed = errors.New(
	"SetTailorActiveCommand must be created via NewSetTailorActiveCommand constructor",
)

// SetTailorActiveCommand toggles a tailor's availability flag.
// Deactivated tailors keep their existing assignments; they only stop
// receiving new ones.
type SetTailorActiveCommand struct {
	tailorID kernel.UUID
	isActive bool
	actor    kernel.Actor
	guard    guard.ConstructorGuard
}

// NewSetTailorActiveCommand creates a validated availability toggle command.
func NewSetTailorActiveCommand(
	tailorID kernel.UUID,
	isActive bool,
	actor kernel.Actor,
) (SetTailorActiveCommand, error) {
	if err := tailorID.Validate(); err != nil {
		return SetTailorActiveCommand{}, err
	}
	if err := actor.Validate(); err != nil {
		return SetTailorActiveCommand{}, err
	}

	return SetTailorActiveCommand{
		tailorID: tailorID,
		isActive: isActive,
		actor:    actor,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// TailorID returns the tailor being toggled.
func (c SetTailorActiveCommand) TailorID() kernel.UUID {
	return c.tailorID
}

// IsActive returns the desired availability state.
func (c SetTailorActiveCommand) IsActive() bool {
	return c.isActive
}

// Actor returns the acting principal.
func (c SetTailorActiveCommand) Actor() kernel.Actor {
	return c.actor
}

// Validate ensures the command was created through the constructor.
func (c SetTailorActiveCommand) Validate() error {
	return c.guard.Validate(ErrSetTailorActiveCommandIsNotConstructed)
}
