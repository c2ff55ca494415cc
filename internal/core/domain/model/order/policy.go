package order

import "atelier/internal/core/domain/model/kernel"

// transitionEdge keys the lifecycle table by source state and acting role.
// The whole role-gated transition graph is this one table; callers consult
// it once per transition instead of branching on roles.
type transitionEdge struct {
	from Status
	role kernel.Role
}

// getTransitionEdges returns the allowed targets per (from, role) pair.
//
// Identity constraints (the tailor must be the assignee, the customer must
// be the order's owner) are enforced by the aggregate on top of this table,
// as is the assignment invariant for targets that require a tailor.
func getTransitionEdges() map[transitionEdge][]Status {
	return map[transitionEdge][]Status{
		{Pending, kernel.RoleAdmin}:    {Assigned, Cancelled},
		{Pending, kernel.RoleCustomer}: {Cancelled},

		{Assigned, kernel.RoleAdmin}:    {Pending, Cancelled},
		{Assigned, kernel.RoleTailor}:   {Accepted},
		{Assigned, kernel.RoleCustomer}: {Cancelled},

		{Accepted, kernel.RoleAdmin}:    {Cancelled},
		{Accepted, kernel.RoleTailor}:   {InProgress},
		{Accepted, kernel.RoleCustomer}: {Cancelled},

		{InProgress, kernel.RoleAdmin}:    {Cancelled},
		{InProgress, kernel.RoleTailor}:   {Completed},
		{InProgress, kernel.RoleCustomer}: {Cancelled},

		{Completed, kernel.RoleAdmin}:    {Delivered},
		{Completed, kernel.RoleCustomer}: {Delivered},
	}
}

// edgeAllowed reports whether the role may move an order from one status to
// another along the normal edge table.
func edgeAllowed(from Status, role kernel.Role, target Status) bool {
	for _, t := range getTransitionEdges()[transitionEdge{from, role}] {
		if t == target {
			return true
		}
	}
	return false
}

// edgeExists reports whether any role may move an order from one status to
// another. It separates "no such edge" (invalid transition) from "edge
// exists but not for this role" (forbidden).
func edgeExists(from, target Status) bool {
	for edge, targets := range getTransitionEdges() {
		if edge.from != from {
			continue
		}
		for _, t := range targets {
			if t == target {
				return true
			}
		}
	}
	return false
}
