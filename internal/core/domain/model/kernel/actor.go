package kernel

import (
	"fmt"

	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

// Role identifies the kind of principal performing a workflow operation.
// The identity/auth provider is trusted verbatim: this package only models
// the (role, identity) pair it supplies, it does not authenticate anything.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleCustomer is the customer who owns an order.
	RoleCustomer

	// RoleTailor is a fulfillment agent working assigned orders.
	RoleTailor

	// RoleAdmin is an administrator with assignment and override privileges.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "unknown",
		RoleCustomer: "customer",
		RoleTailor:   "tailor",
		RoleAdmin:    "admin",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleCustomer: "customer",
		RoleTailor:   "tailor",
		RoleAdmin:    "admin",
	}
}

// RoleFromString parses a role name case-sensitively against the lowercase
// wire names used by the auth provider: "customer", "tailor", "admin".
func RoleFromString(s string) (Role, error) {
	switch s {
	case "customer":
		return RoleCustomer, nil
	case "tailor":
		return RoleTailor, nil
	case "admin":
		return RoleAdmin, nil
	default:
		return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%q is not a known role", s))
	}
}

// String returns the wire name of the role, matching what RoleFromString
// parses so the pair round-trips through persistence.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the role is one of Customer, Tailor, or Admin.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// ErrActorIsNotConstructed is returned when using an improperly initialized Actor.
var ErrActorIsNotConstructed = errs.NewValueIsRequiredError(
	"actor must be created via NewActor constructor")

// Actor is the authenticated principal behind a workflow call: a role plus
// the identity the auth provider resolved for it. Every gateway operation
// takes an explicit Actor parameter; there is no ambient "current user".
type Actor struct { //nolint:recvcheck //using for validation
	role  Role
	id    UUID
	guard guard.ConstructorGuard
}

// NewActor creates an Actor from a validated role and identity.
func NewActor(role Role, id UUID) (Actor, error) {
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	return Actor{
		role:  role,
		id:    id,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}

// ID returns the actor's identity.
func (a Actor) ID() UUID {
	return a.id
}

// Is reports whether the actor has the given role.
func (a Actor) Is(role Role) bool {
	return a.role == role
}

// IsEqual reports whether two actors share both role and identity.
func (a Actor) IsEqual(other Actor) bool {
	return a.role == other.role && a.id.IsEqual(other.id)
}

// Validate returns ErrActorIsNotConstructed for the zero value.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}
