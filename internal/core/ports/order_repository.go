package ports

import (
	"context"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The store must support per-order atomic read-modify-write (the update path
// runs inside the unit-of-work transaction under the per-order mutex) and
// filtering by status and assignee for the query views.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, including its
	// appended history entries.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ErrObjectNotFound when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllPendingSince retrieves orders that entered Pending before the
	// given cutoff and are still there. Used by the stale-pending reminder
	// job.
	GetAllPendingSince(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
