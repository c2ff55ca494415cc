package queries

import (
	"context"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads role-scoped order listings from the database.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listing queries.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the listing. Rows are sorted by last update, newest
// first, so working queues show the most recently touched orders on top.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) ([]ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			customer_id,
			tailor_id,
			config_clothing_type,
			config_quantity,
			price,
			status,
			updated_at
		FROM orders
		WHERE 1 = 1
	`
	args := make([]any, 0, 3)

	switch query.Actor().Role() {
	case kernel.RoleCustomer:
		sql += " AND customer_id = ?"
		args = append(args, query.Actor().ID().Bytes())
	case kernel.RoleTailor:
		sql += " AND tailor_id = ?"
		args = append(args, query.Actor().ID().Bytes())
	case kernel.RoleAdmin:
		if f := query.StatusFilter(); f != nil {
			sql += " AND status = ?"
			args = append(args, int(*f))
		}
		if f := query.TailorFilter(); f != nil {
			sql += " AND tailor_id = ?"
			args = append(args, f.Bytes())
		}
	}

	if !query.IncludeCancelled() {
		sql += " AND status != ?"
		args = append(args, int(order.Cancelled))
	}

	sql += " ORDER BY updated_at DESC"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]ListOrdersQueryResponse, 0)

	for rows.Next() {
		var (
			item       ListOrdersQueryResponse
			id         uuid.UUID
			customerID uuid.UUID
			tailorID   uuid.NullUUID
			status     int
		)

		err = rows.Scan(
			&id,
			&customerID,
			&tailorID,
			&item.ClothingType,
			&item.Quantity,
			&item.Price,
			&status,
			&item.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if item.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}
		if tailorID.Valid {
			tID, tErr := kernel.UUIDFromBytes(tailorID.UUID[:])
			if tErr != nil {
				return nil, tErr
			}
			item.TailorID = &tID
		}
		item.Status = order.Status(status)

		orders = append(orders, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
