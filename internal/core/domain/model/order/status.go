package order

import (
	"fmt"

	"atelier/internal/pkg/errs"
)

// Status represents the lifecycle state of a custom order.
//
// State graph (role-gated edges live in the transition table, see policy.go):
//
//	Pending ──> Assigned ──> Accepted ──> InProgress ──> Completed ──> Delivered
//	   ^            │
//	   └────────────┘
//	{Pending, Assigned, Accepted, InProgress} ──> Cancelled
//
// Delivered and Cancelled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: the order is configured and priced but
	// not yet assigned to a tailor. Only Pending orders are editable.
	Pending

	// Assigned indicates an administrator picked a tailor for the order.
	Assigned

	// Accepted indicates the assigned tailor claimed the work.
	Accepted

	// InProgress indicates the assigned tailor started production.
	InProgress

	// Completed indicates the assigned tailor finished production.
	Completed

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates the order was abandoned before delivery. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Assigned:   "assigned",
		Accepted:   "accepted",
		InProgress: "in_progress",
		Completed:  "completed",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Assigned:   "assigned",
		Accepted:   "accepted",
		InProgress: "in_progress",
		Completed:  "completed",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
	}
}

// StatusFromString parses the wire name of a status ("pending", "assigned",
// "accepted", "in_progress", "completed", "delivered", "cancelled").
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a known status", s))
}

// String returns the wire name of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the status is one of the seven defined states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// RequiresTailor reports whether an order in this status must have an
// assigned tailor. Pending orders never have one; working states always do.
// Terminal states keep whatever assignee they had when they were entered.
func (s Status) RequiresTailor() bool {
	switch s {
	case Assigned, Accepted, InProgress, Completed:
		return true
	default:
		return false
	}
}

// ValidateCanHaveTailor validates the consistency between order status and
// tailor assignment when restoring an order from persistence.
//
// Rules:
//   - Pending orders must not have a tailor assigned
//   - Assigned, Accepted, InProgress, and Completed orders must have one
//   - Terminal orders may have either (a cancellation from Pending left none)
func (s Status) ValidateCanHaveTailor(hasTailor bool) error {
	if s == Pending && hasTailor {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have a tailor", s))
	}
	if s.RequiresTailor() && !hasTailor {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have no tailor", s))
	}
	return nil
}
