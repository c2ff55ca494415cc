// Package order implements the custom-order aggregate and its fulfillment
// lifecycle. The Order aggregate root owns the garment configuration, the
// design placements, the derived price, the single-assignee invariant, and
// the append-only status history.
//
// The lifecycle is a state machine over seven states:
//
//	Pending ──> Assigned ──> Accepted ──> InProgress ──> Completed ──> Delivered
//	   ^            │
//	   └────────────┘ (admin unassign)
//
// Cancelled is reachable from every non-terminal state; Delivered and
// Cancelled are terminal. Which role may trigger which edge is captured in a
// single transition table keyed by (from, role) rather than scattered
// conditionals; administrators additionally hold a logged override channel
// that bypasses the edge table but never the assignment invariant.
//
// Key business rules:
//   - An order in a working state (Assigned through Completed) always has
//     exactly one assigned tailor; a Pending order never has one.
//   - Configuration and design are editable only while Pending; the price is
//     recomputed synchronously on every accepted edit and frozen afterwards.
//   - History is append-only and records every accepted transition,
//     including the acting role, identity, and an override reason code.
//   - Repeating an already-applied transition with the same actor is a
//     no-op, which makes network retries safe.
package order
