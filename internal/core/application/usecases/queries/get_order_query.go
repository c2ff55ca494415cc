// Package queries contains read operations in the CQRS split.
// Query handlers bypass the domain aggregates and repositories, reading
// denormalized projections straight from the database for the HTTP surface.
// Visibility is role-scoped at the SQL level: customers see their own
// orders, tailors their assigned queue, admins everything.
package queries

import (
	"errors"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/guard"

	"github.com/google/uuid"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order projection, including the full
// status history, scoped to what the acting principal may see.
type GetOrderQuery struct {
	orderID kernel.UUID
	actor   kernel.Actor
	guard   guard.ConstructorGuard
}

// NewGetOrderQuery creates a validated single-order query.
func NewGetOrderQuery(orderID kernel.UUID, actor kernel.Actor) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	if err := actor.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the requested order identifier.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Actor returns the acting principal the result is scoped to.
func (q GetOrderQuery) Actor() kernel.Actor {
	return q.actor
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// SelectedDesignResponse is the catalog or custom-upload design selection
// as stored at order time, price snapshot included.
type SelectedDesignResponse struct {
	Ref            uuid.UUID `json:"ref"`
	Price          int64     `json:"price"`
	IsCustomUpload bool      `json:"is_custom_upload"`
}

// PlacedDesignResponse is one design placement on the garment.
type PlacedDesignResponse struct {
	Ref            uuid.UUID `json:"ref"`
	Side           string    `json:"side"`
	X              float64   `json:"x"`
	Y              float64   `json:"y"`
	RenderSize     float64   `json:"render_size"`
	Price          int64     `json:"price"`
	IsCustomUpload bool      `json:"is_custom_upload"`
}

// DesignResponse groups the design selection and its placements.
type DesignResponse struct {
	Selected *SelectedDesignResponse `json:"selected,omitempty"`
	Placed   []PlacedDesignResponse  `json:"placed"`
}

// HistoryEntryResponse is one audit record of the order's status history.
type HistoryEntryResponse struct {
	Status     string    `json:"status"`
	ActorRole  string    `json:"actor_role"`
	ActorID    uuid.UUID `json:"actor_id"`
	Reason     string    `json:"reason,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// GetOrderQueryResponse is the full order projection.
type GetOrderQueryResponse struct {
	ID           kernel.UUID
	CustomerID   kernel.UUID
	TailorID     *kernel.UUID
	Status       order.Status
	ClothingType string
	Size         string
	Color        string
	Quantity     int
	Notes        string
	Price        int64
	Design       DesignResponse
	History      []HistoryEntryResponse
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
