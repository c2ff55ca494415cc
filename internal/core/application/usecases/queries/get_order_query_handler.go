package queries

import (
	"context"
	"encoding/json"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order projection from the database.
// Customers and tailors get a not-found result for orders outside their
// scope, so the surface does not leak which order ids exist.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query and returns the order projection.
// Returns errs.ErrObjectNotFound when the order does not exist or is
// outside the actor's visibility scope.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	sql := `
		SELECT
			id,
			customer_id,
			tailor_id,
			config_clothing_type,
			config_size,
			config_color,
			config_quantity,
			config_notes,
			design,
			price,
			status,
			history,
			created_at,
			updated_at
		FROM orders
		WHERE id = ?
	`
	args := []any{query.OrderID().Bytes()}

	switch query.Actor().Role() {
	case kernel.RoleCustomer:
		sql += " AND customer_id = ?"
		args = append(args, query.Actor().ID().Bytes())
	case kernel.RoleTailor:
		sql += " AND tailor_id = ?"
		args = append(args, query.Actor().ID().Bytes())
	}

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetOrderQueryResponse{}, err
		}
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	resp, err := scanOrderRow(rows)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, rows.Err()
}

// rowScanner is the subset of sql.Rows the order scan needs.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrderRow(row rowScanner) (GetOrderQueryResponse, error) {
	var (
		resp       GetOrderQueryResponse
		id         uuid.UUID
		customerID uuid.UUID
		tailorID   uuid.NullUUID
		status     int
		designRaw  []byte
		historyRaw []byte
	)

	err := row.Scan(
		&id,
		&customerID,
		&tailorID,
		&resp.ClothingType,
		&resp.Size,
		&resp.Color,
		&resp.Quantity,
		&resp.Notes,
		&designRaw,
		&resp.Price,
		&status,
		&historyRaw,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if tailorID.Valid {
		tID, tErr := kernel.UUIDFromBytes(tailorID.UUID[:])
		if tErr != nil {
			return GetOrderQueryResponse{}, tErr
		}
		resp.TailorID = &tID
	}
	resp.Status = order.Status(status)

	if err = json.Unmarshal(designRaw, &resp.Design); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if err = json.Unmarshal(historyRaw, &resp.History); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}
