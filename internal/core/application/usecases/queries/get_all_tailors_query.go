package queries

import (
	"errors"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"
)

var ErrGetAllTailorsQueryIsNotConstructed = errors.New(
	"GetAllTailorsQuery must be created via NewGetAllTailorsQuery constructor",
)

// GetAllTailorsQuery lists the tailor directory, optionally narrowed to
// tailors currently accepting new assignments.
type GetAllTailorsQuery struct {
	activeOnly bool
	guard      guard.ConstructorGuard
}

// NewGetAllTailorsQuery creates a tailor directory listing query.
func NewGetAllTailorsQuery(activeOnly bool) GetAllTailorsQuery {
	return GetAllTailorsQuery{
		activeOnly: activeOnly,
		guard:      guard.NewConstructorGuard(),
	}
}

// ActiveOnly reports whether deactivated tailors are filtered out.
func (q GetAllTailorsQuery) ActiveOnly() bool {
	return q.activeOnly
}

// Validate ensures the query was created through the constructor.
func (q GetAllTailorsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllTailorsQueryIsNotConstructed)
}

// GetAllTailorsQueryResponse is one tailor directory entry.
type GetAllTailorsQueryResponse struct {
	ID        kernel.UUID
	Name      string
	Phone     string
	Skills    []string
	IsActive  bool
	Rating    *float64
	CreatedAt time.Time
}
