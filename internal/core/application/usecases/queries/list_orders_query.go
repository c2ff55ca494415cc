package queries

import (
	"errors"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via one of the ListOrdersQuery constructors",
)

// ListOrdersQuery lists orders scoped to the acting principal. The three
// constructors encode the three visibility scopes: a customer's own
// orders, a tailor's assigned queue, and the admin view with optional
// status and tailor filters.
type ListOrdersQuery struct {
	actor            kernel.Actor
	includeCancelled bool
	statusFilter     *order.Status
	tailorFilter     *kernel.UUID
	guard            guard.ConstructorGuard
}

// NewCustomerOrdersQuery lists every order owned by the customer.
func NewCustomerOrdersQuery(customer kernel.Actor) (ListOrdersQuery, error) {
	if err := customer.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}
	if !customer.Is(kernel.RoleCustomer) {
		return ListOrdersQuery{}, order.ErrForbidden
	}

	return ListOrdersQuery{
		actor:            customer,
		includeCancelled: true,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// NewTailorQueueQuery lists the tailor's assigned work. Cancelled orders
// are noise in a working queue and are excluded unless asked for.
func NewTailorQueueQuery(tailor kernel.Actor, includeCancelled bool) (ListOrdersQuery, error) {
	if err := tailor.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}
	if !tailor.Is(kernel.RoleTailor) {
		return ListOrdersQuery{}, order.ErrForbidden
	}

	return ListOrdersQuery{
		actor:            tailor,
		includeCancelled: includeCancelled,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// NewAdminOrdersQuery lists all orders, optionally narrowed to a status
// and/or an assigned tailor. Nil filters mean no narrowing.
func NewAdminOrdersQuery(
	admin kernel.Actor,
	statusFilter *order.Status,
	tailorFilter *kernel.UUID,
) (ListOrdersQuery, error) {
	if err := admin.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}
	if !admin.Is(kernel.RoleAdmin) {
		return ListOrdersQuery{}, order.ErrForbidden
	}
	if statusFilter != nil {
		if err := statusFilter.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}
	if tailorFilter != nil {
		if err := tailorFilter.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}

	return ListOrdersQuery{
		actor:            admin,
		includeCancelled: true,
		statusFilter:     statusFilter,
		tailorFilter:     tailorFilter,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Actor returns the acting principal the listing is scoped to.
func (q ListOrdersQuery) Actor() kernel.Actor {
	return q.actor
}

// IncludeCancelled reports whether cancelled orders appear in the listing.
func (q ListOrdersQuery) IncludeCancelled() bool {
	return q.includeCancelled
}

// StatusFilter returns the admin status filter, nil when absent.
func (q ListOrdersQuery) StatusFilter() *order.Status {
	return q.statusFilter
}

// TailorFilter returns the admin assigned-tailor filter, nil when absent.
func (q ListOrdersQuery) TailorFilter() *kernel.UUID {
	return q.tailorFilter
}

// Validate ensures the query was created through a constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// ListOrdersQueryResponse is one row of the order listing. The listing is
// intentionally compact; the full projection with design and history
// comes from GetOrderQuery.
type ListOrdersQueryResponse struct {
	ID           kernel.UUID
	CustomerID   kernel.UUID
	TailorID     *kernel.UUID
	Status       order.Status
	ClothingType string
	Quantity     int
	Price        int64
	UpdatedAt    time.Time
}
