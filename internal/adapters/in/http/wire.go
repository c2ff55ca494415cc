package http

import (
	"time"

	"atelier/internal/core/application/usecases/queries"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/model/tailor"
)

// Wire types for the JSON surface. Request structs bind the incoming
// bodies; response structs render aggregates and read models uniformly
// regardless of which side of the CQRS split produced them.

type ConfigurationRequest struct {
	ClothingType string `json:"clothing_type"`
	Size         string `json:"size"`
	Color        string `json:"color"`
	Quantity     int    `json:"quantity"`
	Notes        string `json:"notes"`
}

type SelectedDesignRequest struct {
	Ref            string `json:"ref"`
	Price          int64  `json:"price"`
	IsCustomUpload bool   `json:"is_custom_upload"`
}

type PlacedDesignRequest struct {
	Ref            string  `json:"ref"`
	Side           string  `json:"side"`
	X              float64 `json:"x"`
	Y              float64 `json:"y"`
	RenderSize     float64 `json:"render_size"`
	Price          int64   `json:"price"`
	IsCustomUpload bool    `json:"is_custom_upload"`
}

type DesignRequest struct {
	Selected *SelectedDesignRequest `json:"selected"`
	Placed   []PlacedDesignRequest  `json:"placed"`
}

type CreateOrderRequest struct {
	Configuration ConfigurationRequest `json:"configuration"`
	Design        DesignRequest        `json:"design"`
}

type UpdateConfigurationRequest struct {
	Configuration ConfigurationRequest `json:"configuration"`
	Design        DesignRequest        `json:"design"`
}

type AssignTailorRequest struct {
	TailorID string `json:"tailor_id"`
}

type ChangeStatusRequest struct {
	Status string `json:"status"`
}

type CreateTailorRequest struct {
	Name   string   `json:"name"`
	Phone  string   `json:"phone"`
	Skills []string `json:"skills"`
}

type SetTailorActiveRequest struct {
	IsActive bool `json:"is_active"`
}

type SelectedDesignResponse struct {
	Ref            string `json:"ref"`
	Price          int64  `json:"price"`
	IsCustomUpload bool   `json:"is_custom_upload"`
}

type PlacedDesignResponse struct {
	Ref            string  `json:"ref"`
	Side           string  `json:"side"`
	X              float64 `json:"x"`
	Y              float64 `json:"y"`
	RenderSize     float64 `json:"render_size"`
	Price          int64   `json:"price"`
	IsCustomUpload bool    `json:"is_custom_upload"`
}

type DesignResponse struct {
	Selected *SelectedDesignResponse `json:"selected,omitempty"`
	Placed   []PlacedDesignResponse  `json:"placed"`
}

type HistoryEntryResponse struct {
	Status     string    `json:"status"`
	ActorRole  string    `json:"actor_role"`
	ActorID    string    `json:"actor_id"`
	Reason     string    `json:"reason,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type OrderResponse struct {
	ID            string                 `json:"id"`
	CustomerID    string                 `json:"customer_id"`
	TailorID      *string                `json:"tailor_id,omitempty"`
	Status        string                 `json:"status"`
	Configuration ConfigurationRequest   `json:"configuration"`
	Design        DesignResponse         `json:"design"`
	Price         int64                  `json:"price"`
	History       []HistoryEntryResponse `json:"history"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

type OrderListItemResponse struct {
	ID           string    `json:"id"`
	CustomerID   string    `json:"customer_id"`
	TailorID     *string   `json:"tailor_id,omitempty"`
	Status       string    `json:"status"`
	ClothingType string    `json:"clothing_type"`
	Quantity     int       `json:"quantity"`
	Price        int64     `json:"price"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type TailorResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Skills    []string  `json:"skills"`
	IsActive  bool      `json:"is_active"`
	Rating    *float64  `json:"rating,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// orderToResponse renders an order aggregate, the shape command endpoints
// return after a successful write.
func orderToResponse(o *order.Order) OrderResponse {
	var tailorID *string
	if id := o.Tailor(); id != nil {
		s := id.String()
		tailorID = &s
	}

	design := o.Design()
	var selected *SelectedDesignResponse
	if s := design.Selected(); s != nil {
		selected = &SelectedDesignResponse{
			Ref:            s.Ref.String(),
			Price:          s.Price.Amount(),
			IsCustomUpload: s.IsCustomUpload,
		}
	}

	placed := make([]PlacedDesignResponse, 0, len(design.Placed()))
	for _, p := range design.Placed() {
		placed = append(placed, PlacedDesignResponse{
			Ref:            p.DesignRef().String(),
			Side:           string(p.Side()),
			X:              p.Position().X,
			Y:              p.Position().Y,
			RenderSize:     p.RenderSize(),
			Price:          p.Price().Amount(),
			IsCustomUpload: p.IsCustomUpload(),
		})
	}

	history := make([]HistoryEntryResponse, 0, len(o.History()))
	for _, e := range o.History() {
		history = append(history, HistoryEntryResponse{
			Status:     e.Status.String(),
			ActorRole:  e.ActorRole.String(),
			ActorID:    e.ActorID.String(),
			Reason:     e.Reason,
			OccurredAt: e.OccurredAt,
		})
	}

	config := o.Config()

	return OrderResponse{
		ID:         o.ID().String(),
		CustomerID: o.CustomerID().String(),
		TailorID:   tailorID,
		Status:     o.Status().String(),
		Configuration: ConfigurationRequest{
			ClothingType: string(config.ClothingType()),
			Size:         string(config.Size()),
			Color:        config.Color(),
			Quantity:     config.Quantity(),
			Notes:        config.Notes(),
		},
		Design:    DesignResponse{Selected: selected, Placed: placed},
		Price:     o.Price().Amount(),
		History:   history,
		CreatedAt: o.CreatedAt(),
		UpdatedAt: o.UpdatedAt(),
	}
}

// projectionToResponse renders the read-side order projection.
func projectionToResponse(p queries.GetOrderQueryResponse) OrderResponse {
	var tailorID *string
	if p.TailorID != nil {
		s := p.TailorID.String()
		tailorID = &s
	}

	var selected *SelectedDesignResponse
	if s := p.Design.Selected; s != nil {
		selected = &SelectedDesignResponse{
			Ref:            s.Ref.String(),
			Price:          s.Price,
			IsCustomUpload: s.IsCustomUpload,
		}
	}

	placed := make([]PlacedDesignResponse, 0, len(p.Design.Placed))
	for _, d := range p.Design.Placed {
		placed = append(placed, PlacedDesignResponse{
			Ref:            d.Ref.String(),
			Side:           d.Side,
			X:              d.X,
			Y:              d.Y,
			RenderSize:     d.RenderSize,
			Price:          d.Price,
			IsCustomUpload: d.IsCustomUpload,
		})
	}

	history := make([]HistoryEntryResponse, 0, len(p.History))
	for _, e := range p.History {
		history = append(history, HistoryEntryResponse{
			Status:     e.Status,
			ActorRole:  e.ActorRole,
			ActorID:    e.ActorID.String(),
			Reason:     e.Reason,
			OccurredAt: e.OccurredAt,
		})
	}

	return OrderResponse{
		ID:         p.ID.String(),
		CustomerID: p.CustomerID.String(),
		TailorID:   tailorID,
		Status:     p.Status.String(),
		Configuration: ConfigurationRequest{
			ClothingType: p.ClothingType,
			Size:         p.Size,
			Color:        p.Color,
			Quantity:     p.Quantity,
			Notes:        p.Notes,
		},
		Design:    DesignResponse{Selected: selected, Placed: placed},
		Price:     p.Price,
		History:   history,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// tailorToResponse renders a tailor aggregate.
func tailorToResponse(t *tailor.Tailor) TailorResponse {
	return TailorResponse{
		ID:        t.ID().String(),
		Name:      t.Name(),
		Phone:     t.Phone(),
		Skills:    t.Skills(),
		IsActive:  t.IsActive(),
		Rating:    t.Rating(),
		CreatedAt: t.CreatedAt(),
	}
}
