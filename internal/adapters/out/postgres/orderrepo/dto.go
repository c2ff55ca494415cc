// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows. The design
// spec and the status history are stored as JSON documents; the garment
// configuration is flattened into columns so the read side can filter on it.
package orderrepo

import (
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by status and assigned tailor for the listing queries.
type OrderDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID  `gorm:"type:uuid;index"`
	TailorID   *uuid.UUID `gorm:"type:uuid;index"`
	Config     ConfigDTO  `gorm:"embedded;embeddedPrefix:config_"`
	Design     DesignDTO  `gorm:"serializer:json;type:jsonb"`
	Price      int64
	Status     int               `gorm:"index"`
	History    []HistoryEntryDTO `gorm:"serializer:json;type:jsonb"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ConfigDTO is the garment configuration flattened into order columns.
type ConfigDTO struct {
	ClothingType string `gorm:"type:varchar(32)"`
	Size         string `gorm:"type:varchar(8)"`
	Color        string `gorm:"type:varchar(64)"`
	Quantity     int
	Notes        string
}

// DesignDTO is the JSON document holding the design selection and placements.
type DesignDTO struct {
	Selected *SelectedDesignDTO `json:"selected,omitempty"`
	Placed   []PlacedDesignDTO  `json:"placed"`
}

// SelectedDesignDTO is the chosen catalog or custom design with its price snapshot.
type SelectedDesignDTO struct {
	Ref            uuid.UUID `json:"ref"`
	Price          int64     `json:"price"`
	IsCustomUpload bool      `json:"is_custom_upload"`
}

// PlacedDesignDTO is one design placement on the garment.
type PlacedDesignDTO struct {
	Ref            uuid.UUID `json:"ref"`
	Side           string    `json:"side"`
	X              float64   `json:"x"`
	Y              float64   `json:"y"`
	RenderSize     float64   `json:"render_size"`
	Price          int64     `json:"price"`
	IsCustomUpload bool      `json:"is_custom_upload"`
}

// HistoryEntryDTO is one audit record in the status history document.
type HistoryEntryDTO struct {
	Status     string    `json:"status"`
	ActorRole  string    `json:"actor_role"`
	ActorID    uuid.UUID `json:"actor_id"`
	Reason     string    `json:"reason,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	var tailorID *uuid.UUID
	if id := o.Tailor(); id != nil {
		raw := id.Bytes()
		tailorID = &raw
	}

	config := o.Config()
	design := o.Design()

	var selected *SelectedDesignDTO
	if s := design.Selected(); s != nil {
		selected = &SelectedDesignDTO{
			Ref:            s.Ref.Bytes(),
			Price:          s.Price.Amount(),
			IsCustomUpload: s.IsCustomUpload,
		}
	}

	placed := make([]PlacedDesignDTO, 0, len(design.Placed()))
	for _, p := range design.Placed() {
		placed = append(placed, PlacedDesignDTO{
			Ref:            p.DesignRef().Bytes(),
			Side:           string(p.Side()),
			X:              p.Position().X,
			Y:              p.Position().Y,
			RenderSize:     p.RenderSize(),
			Price:          p.Price().Amount(),
			IsCustomUpload: p.IsCustomUpload(),
		})
	}

	history := make([]HistoryEntryDTO, 0, len(o.History()))
	for _, e := range o.History() {
		history = append(history, HistoryEntryDTO{
			Status:     e.Status.String(),
			ActorRole:  e.ActorRole.String(),
			ActorID:    e.ActorID.Bytes(),
			Reason:     e.Reason,
			OccurredAt: e.OccurredAt,
		})
	}

	return OrderDTO{
		ID:         o.ID().Bytes(),
		CustomerID: o.CustomerID().Bytes(),
		TailorID:   tailorID,
		Config: ConfigDTO{
			ClothingType: string(config.ClothingType()),
			Size:         string(config.Size()),
			Color:        config.Color(),
			Quantity:     config.Quantity(),
			Notes:        config.Notes(),
		},
		Design:    DesignDTO{Selected: selected, Placed: placed},
		Price:     o.Price().Amount(),
		Status:    int(o.Status()),
		History:   history,
		CreatedAt: o.CreatedAt(),
		UpdatedAt: o.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order aggregate.
// Reconstructs the complete aggregate via RestoreOrder, which re-validates
// the status and assignment invariants.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var tailorID *kernel.UUID
	if dto.TailorID != nil {
		tID, tailorErr := kernel.UUIDFromBytes((*dto.TailorID)[:])
		if tailorErr != nil {
			return nil, tailorErr
		}
		tailorID = &tID
	}

	config, err := order.NewGarmentConfig(
		order.ClothingType(dto.Config.ClothingType),
		order.Size(dto.Config.Size),
		dto.Config.Color,
		dto.Config.Quantity,
		dto.Config.Notes,
	)
	if err != nil {
		return nil, err
	}

	design, err := designToDomain(dto.Design)
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	history, err := historyToDomain(dto.History)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		customerID,
		config,
		design,
		price,
		tailorID,
		order.Status(dto.Status),
		history,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

func designToDomain(dto DesignDTO) (order.DesignSpec, error) {
	var selected *order.SelectedDesign
	if dto.Selected != nil {
		ref, err := kernel.UUIDFromBytes(dto.Selected.Ref[:])
		if err != nil {
			return order.DesignSpec{}, err
		}
		price, err := kernel.NewMoney(dto.Selected.Price)
		if err != nil {
			return order.DesignSpec{}, err
		}
		selected = &order.SelectedDesign{
			Ref:            ref,
			Price:          price,
			IsCustomUpload: dto.Selected.IsCustomUpload,
		}
	}

	placed := make([]order.PlacedDesign, 0, len(dto.Placed))
	for _, p := range dto.Placed {
		ref, err := kernel.UUIDFromBytes(p.Ref[:])
		if err != nil {
			return order.DesignSpec{}, err
		}
		price, err := kernel.NewMoney(p.Price)
		if err != nil {
			return order.DesignSpec{}, err
		}
		placement, err := order.NewPlacedDesign(
			ref,
			order.Side(p.Side),
			order.Position{X: p.X, Y: p.Y},
			p.RenderSize,
			price,
			p.IsCustomUpload,
		)
		if err != nil {
			return order.DesignSpec{}, err
		}
		placed = append(placed, placement)
	}

	return order.NewDesignSpec(selected, placed)
}

func historyToDomain(dtos []HistoryEntryDTO) ([]order.HistoryEntry, error) {
	history := make([]order.HistoryEntry, 0, len(dtos))
	for _, e := range dtos {
		status, err := order.StatusFromString(e.Status)
		if err != nil {
			return nil, err
		}
		role, err := kernel.RoleFromString(e.ActorRole)
		if err != nil {
			return nil, err
		}
		actorID, err := kernel.UUIDFromBytes(e.ActorID[:])
		if err != nil {
			return nil, err
		}
		history = append(history, order.HistoryEntry{
			Status:     status,
			ActorRole:  role,
			ActorID:    actorID,
			Reason:     e.Reason,
			OccurredAt: e.OccurredAt,
		})
	}
	return history, nil
}
