package queries

import (
	"context"
	"database/sql"
	"encoding/json"

	"atelier/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllTailorsQueryHandler reads the tailor directory from the database.
type GetAllTailorsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllTailorsQueryHandler creates a handler for tailor directory queries.
func NewGetAllTailorsQueryHandler(db *gorm.DB) GetAllTailorsQueryHandler {
	return GetAllTailorsQueryHandler{db: db}
}

// Handle executes the directory listing, sorted by name.
func (h GetAllTailorsQueryHandler) Handle(
	ctx context.Context,
	query GetAllTailorsQuery,
) ([]GetAllTailorsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := `
		SELECT
			id,
			name,
			phone,
			skills,
			is_active,
			rating,
			created_at
		FROM tailors
	`
	args := make([]any, 0, 1)

	if query.ActiveOnly() {
		stmt += " WHERE is_active = ?"
		args = append(args, true)
	}

	stmt += " ORDER BY name"

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tailors := make([]GetAllTailorsQueryResponse, 0)

	for rows.Next() {
		tailor, scanErr := scanTailorRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		tailors = append(tailors, tailor)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tailors, nil
}

func scanTailorRow(row rowScanner) (GetAllTailorsQueryResponse, error) {
	var (
		resp      GetAllTailorsQueryResponse
		id        uuid.UUID
		skillsRaw []byte
		rating    sql.NullFloat64
	)

	err := row.Scan(
		&id,
		&resp.Name,
		&resp.Phone,
		&skillsRaw,
		&resp.IsActive,
		&rating,
		&resp.CreatedAt,
	)
	if err != nil {
		return GetAllTailorsQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetAllTailorsQueryResponse{}, err
	}
	if rating.Valid {
		r := rating.Float64
		resp.Rating = &r
	}
	if len(skillsRaw) > 0 {
		if err = json.Unmarshal(skillsRaw, &resp.Skills); err != nil {
			return GetAllTailorsQueryResponse{}, err
		}
	}

	return resp, nil
}
