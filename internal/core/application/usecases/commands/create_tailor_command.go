package commands

import (
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"
)

var ErrCreateTailorCommandIsNotConstructed = errors.New(
	"CreateTailorCommand must be created via NewCreateTailorCommand constructor",
)

// CreateTailorCommand registers a new fulfillment agent in the directory.
// Directory administration is an admin-only surface.
type CreateTailorCommand struct {
	tailorID kernel.UUID
	name     string
	phone    string
	skills   []string
	actor    kernel.Actor
	guard    guard.ConstructorGuard
}

// NewCreateTailorCommand creates a validated tailor registration command.
// Name validity is the tailor aggregate's concern; the command only checks
// its own construction inputs.
func NewCreateTailorCommand(
	tailorID kernel.UUID,
	name string,
	phone string,
	skills []string,
	actor kernel.Actor,
) (CreateTailorCommand, error) {
	if err := tailorID.Validate(); err != nil {
		return CreateTailorCommand{}, err
	}
	if err := actor.Validate(); err != nil {
		return CreateTailorCommand{}, err
	}

	return CreateTailorCommand{
		tailorID: tailorID,
		name:     name,
		phone:    phone,
		skills:   append([]string(nil), skills...),
		actor:    actor,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// TailorID returns the identifier the new tailor will carry.
func (c CreateTailorCommand) TailorID() kernel.UUID {
	return c.tailorID
}

// Name returns the tailor's display name.
func (c CreateTailorCommand) Name() string {
	return c.name
}

// Phone returns the optional contact phone.
func (c CreateTailorCommand) Phone() string {
	return c.phone
}

// Skills returns the tailor's skill tags.
func (c CreateTailorCommand) Skills() []string {
	return append([]string(nil), c.skills...)
}

// Actor returns the acting principal.
func (c CreateTailorCommand) Actor() kernel.Actor {
	return c.actor
}

// Validate ensures the command was created through the constructor.
func (c CreateTailorCommand) Validate() error {
	return c.guard.Validate(ErrCreateTailorCommandIsNotConstructed)
}
