package order

import (
	"time"

	"atelier/internal/core/domain/model/kernel"
)

// ReasonAdminOverride marks history entries produced through the privileged
// override channel, distinguishing them from normal edge-table transitions.
const ReasonAdminOverride = "admin_override"

// HistoryEntry is one accepted transition in an order's audit trail: the
// status that was entered, who triggered it, and when. Entries are append
// only; the trail is never rewritten.
//
// The last entry doubles as the idempotent-replay marker: a repeated call
// that matches it is recognized as a duplicate delivery and ignored.
type HistoryEntry struct {
	Status     Status
	ActorRole  kernel.Role
	ActorID    kernel.UUID
	Reason     string
	OccurredAt time.Time
}

// matchesReplay reports whether a transition request duplicates this entry:
// same target status and the same acting role and identity.
func (e HistoryEntry) matchesReplay(target Status, actor kernel.Actor) bool {
	return e.Status == target &&
		e.ActorRole == actor.Role() &&
		e.ActorID.IsEqual(actor.ID())
}
