// Package tailorrepo provides data transfer objects and mapping functions
// for tailor directory persistence.
package tailorrepo

import (
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/tailor"

	"github.com/google/uuid"
)

// TailorDTO represents the database structure for persisting tailors.
// Skills are stored as a JSON array.
type TailorDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255)"`
	Phone     string    `gorm:"type:varchar(32)"`
	Skills    []string  `gorm:"serializer:json;type:jsonb"`
	IsActive  bool      `gorm:"index"`
	Rating    *float64
	CreatedAt time.Time
}

// TableName overrides GORM's default naming convention to use "tailors".
func (TailorDTO) TableName() string {
	return "tailors"
}

// fromDomain converts a tailor aggregate to its database representation.
func fromDomain(t *tailor.Tailor) TailorDTO {
	return TailorDTO{
		ID:        t.ID().Bytes(),
		Name:      t.Name(),
		Phone:     t.Phone(),
		Skills:    t.Skills(),
		IsActive:  t.IsActive(),
		Rating:    t.Rating(),
		CreatedAt: t.CreatedAt(),
	}
}

// toDomain converts a database DTO to a tailor aggregate.
func toDomain(dto TailorDTO) (*tailor.Tailor, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return tailor.RestoreTailor(
		id,
		dto.Name,
		dto.Phone,
		dto.Skills,
		dto.IsActive,
		dto.Rating,
		dto.CreatedAt,
	)
}
