package ports

import (
	"context"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/tailor"
)

// TailorRepository defines the persistence contract for the tailor
// directory. Tailors are read-mostly: the assignment path only needs Get,
// and directory administration needs Add/Update.
type TailorRepository interface {
	// Add persists a new tailor to the directory.
	Add(ctx context.Context, aggregate *tailor.Tailor) error

	// Update persists changes to an existing tailor (activation, rating).
	Update(ctx context.Context, aggregate *tailor.Tailor) error

	// Get retrieves a tailor by its unique identifier.
	// Returns errs.ErrObjectNotFound when no such tailor exists.
	Get(ctx context.Context, id kernel.UUID) (*tailor.Tailor, error)

	// GetAll retrieves the whole directory, optionally restricted to active
	// tailors.
	GetAll(ctx context.Context, activeOnly bool) ([]*tailor.Tailor, error)
}
