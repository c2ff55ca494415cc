package order

import (
	"errors"
	"fmt"
	"time"

	"atelier/internal/core/domain/model/kernel"
)

// Domain errors for the order lifecycle. All are terminal, caller-visible
// outcomes; none are retried internally.
var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructors")

	// ErrOrderLocked is returned on configuration or design edits after the
	// order left Pending. The price is frozen at that point.
	ErrOrderLocked = errors.New("order configuration is locked after leaving pending")

	// ErrForbidden is returned when the acting role or identity is not
	// permitted to perform the requested operation.
	ErrForbidden = errors.New("actor is not permitted to perform this operation")

	// ErrOrderNotAssignable is returned when assignment is attempted on an
	// order that is not Pending.
	ErrOrderNotAssignable = errors.New("order is not assignable outside pending status")

	// ErrInvalidTransition is returned when the target status is not
	// reachable from the current status, or when a transition would violate
	// the assignment invariant.
	ErrInvalidTransition = errors.New("invalid order status transition")
)

// PriceCalculator derives the monetary total of a garment configuration.
// The calculation is pure: no I/O, no side effects, deterministic for a
// given (config, design) pair. The concrete pricing tables live with the
// implementation in the services layer.
type PriceCalculator interface {
	Total(config GarmentConfig, design DesignSpec) (kernel.Money, error)
}

// Order is the aggregate root of the custom-order fulfillment workflow.
// It owns the garment configuration, the design placements, the derived
// price, the lifecycle status, the single assigned tailor, and the
// append-only history.
//
// Invariants maintained by every mutating method:
//   - A Pending order has no assigned tailor; an order in Assigned,
//     Accepted, InProgress, or Completed has exactly one.
//   - The price always equals the calculator total of the current
//     configuration while the order is Pending, and is frozen afterwards.
//   - Every accepted transition appends exactly one history entry.
//
// Order is not safe for concurrent use; callers serialize access per order
// (the application layer holds a keyed mutex around read-modify-write).
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID
	config     GarmentConfig
	design     DesignSpec
	price      kernel.Money
	tailorID   *kernel.UUID
	status     Status
	history    []HistoryEntry
	createdAt  time.Time
	updatedAt  time.Time

	isConstructed bool
}

// NewOrder creates a Pending order for a customer from a validated
// configuration, pricing it immediately through the calculator.
//
// The creating actor must be the owning customer; the initial Pending state
// is recorded as the first history entry.
func NewOrder(
	id kernel.UUID,
	customer kernel.Actor,
	config GarmentConfig,
	design DesignSpec,
	calc PriceCalculator,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := customer.Validate(); err != nil {
		return nil, err
	}
	if !customer.Is(kernel.RoleCustomer) {
		return nil, fmt.Errorf("%w: only a customer can create an order", ErrForbidden)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if err := design.Validate(); err != nil {
		return nil, err
	}

	price, err := calc.Total(config, design)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	o := &Order{
		id:            id,
		customerID:    customer.ID(),
		config:        config,
		design:        design,
		price:         price,
		status:        Pending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}
	o.appendHistory(Pending, customer, "", now)
	return o, nil
}

// RestoreOrder reconstructs an order aggregate from persistent storage.
// It re-checks the status/assignee consistency so corrupted rows cannot
// reenter the domain, but it does not re-price: the stored price is the
// price that was accepted.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	config GarmentConfig,
	design DesignSpec,
	price kernel.Money,
	tailorID *kernel.UUID,
	status Status,
	history []HistoryEntry,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		config.Validate(),
		design.Validate(),
		price.Validate(),
		status.Validate(),
		status.ValidateCanHaveTailor(tailorID != nil),
	); err != nil {
		return nil, err
	}
	if tailorID != nil {
		if err := tailorID.Validate(); err != nil {
			return nil, err
		}
	}

	o := &Order{
		id:            id,
		customerID:    customerID,
		config:        config,
		design:        design,
		price:         price,
		tailorID:      tailorID,
		status:        status,
		history:       make([]HistoryEntry, len(history)),
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}
	copy(o.history, history)
	return o, nil
}

// Validate ensures the Order was created via NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the owning customer's identity.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Config returns the current garment configuration.
func (o *Order) Config() GarmentConfig {
	return o.config
}

// Design returns the current design specification.
func (o *Order) Design() DesignSpec {
	return o.design
}

// Price returns the derived total for the current configuration.
func (o *Order) Price() kernel.Money {
	return o.price
}

// Tailor returns the assigned tailor's ID, or nil while unassigned.
func (o *Order) Tailor() *kernel.UUID {
	if o.tailorID == nil {
		return nil
	}
	id := *o.tailorID
	return &id
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// History returns a copy of the append-only audit trail.
func (o *Order) History() []HistoryEntry {
	history := make([]HistoryEntry, len(o.history))
	copy(history, o.history)
	return history
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last accepted mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// UpdateConfiguration replaces the garment configuration and design of a
// Pending order and recomputes the price in the same operation, so the
// stored price is never stale relative to the last accepted write.
//
// Only the owning customer may edit. Once the order left Pending the
// configuration is locked and ErrOrderLocked is returned with nothing
// changed.
func (o *Order) UpdateConfiguration(
	actor kernel.Actor,
	config GarmentConfig,
	design DesignSpec,
	calc PriceCalculator,
) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.Is(kernel.RoleCustomer) || !actor.ID().IsEqual(o.customerID) {
		return fmt.Errorf("%w: only the owning customer can edit the configuration", ErrForbidden)
	}
	if o.status != Pending {
		return ErrOrderLocked
	}
	if err := config.Validate(); err != nil {
		return err
	}
	if err := design.Validate(); err != nil {
		return err
	}

	price, err := calc.Total(config, design)
	if err != nil {
		return err
	}

	o.config = config
	o.design = design
	o.price = price
	o.touch(time.Now().UTC())
	return nil
}

// Assign assigns the order to a tailor and moves it to Assigned.
// Only an administrator may assign, and only while the order is Pending;
// tailor availability is the caller's concern (checked against the
// directory before entering the per-order critical section).
func (o *Order) Assign(tailorID kernel.UUID, actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.Is(kernel.RoleAdmin) {
		return fmt.Errorf("%w: only an admin can assign a tailor", ErrForbidden)
	}
	if err := tailorID.Validate(); err != nil {
		return err
	}
	if o.status != Pending {
		return ErrOrderNotAssignable
	}

	o.tailorID = &tailorID
	o.status = Assigned
	now := time.Now().UTC()
	o.appendHistory(Assigned, actor, "", now)
	o.touch(now)
	return nil
}

// Unassign clears the assignee of an Assigned order and returns it to
// Pending. Reassignment is Unassign followed by Assign, producing two
// history entries; there is never a silent swap of the accountable tailor.
func (o *Order) Unassign(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.Is(kernel.RoleAdmin) {
		return fmt.Errorf("%w: only an admin can unassign a tailor", ErrForbidden)
	}
	if o.status != Assigned {
		return fmt.Errorf("%w: %s cannot be unassigned", ErrInvalidTransition, o.status)
	}

	o.tailorID = nil
	o.status = Pending
	now := time.Now().UTC()
	o.appendHistory(Pending, actor, "", now)
	o.touch(now)
	return nil
}

// ApplyTransition moves the order along the normal edge table.
//
// The check order matters for the error taxonomy:
//  1. a repeat of the last applied transition by the same actor is a
//     no-op (idempotent replay, guards duplicate network retries);
//  2. no edge from the current status to the target, for any role, is an
//     invalid transition (terminal states fall out here);
//  3. an existing edge the actor's role may not use, or an identity
//     mismatch (tailor who is not the assignee, customer who is not the
//     owner), is forbidden.
//
// Transitions into Pending clear the assignee; entering Assigned requires
// one and is only reachable through Assign.
func (o *Order) ApplyTransition(target Status, actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}

	if o.isReplay(target, actor) {
		return nil
	}

	if !edgeExists(o.status, target) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.status, target)
	}
	if !edgeAllowed(o.status, actor.Role(), target) {
		return fmt.Errorf("%w: role %s cannot move %s -> %s",
			ErrForbidden, actor.Role(), o.status, target)
	}
	if err := o.validateActorIdentity(actor); err != nil {
		return err
	}
	if target.RequiresTailor() && o.tailorID == nil {
		return fmt.Errorf("%w: %s requires an assigned tailor", ErrInvalidTransition, target)
	}

	if target == Pending {
		o.tailorID = nil
	}
	o.status = target
	now := time.Now().UTC()
	o.appendHistory(target, actor, "", now)
	o.touch(now)
	return nil
}

// ForceStatus is the administrative override channel: it moves the order
// to any status, skipping the edge table, and logs the transition with the
// admin_override reason code. A cancelled order can be revived this way;
// only delivery is final, even for admins.
//
// The assignment invariant still holds: forcing into a working state while
// unassigned fails (the admin must assign first), and forcing into Pending
// clears the assignee. Replays by the same admin are no-ops.
func (o *Order) ForceStatus(target Status, actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.Is(kernel.RoleAdmin) {
		return fmt.Errorf("%w: only an admin can override order status", ErrForbidden)
	}
	if err := target.Validate(); err != nil {
		return err
	}

	if o.isReplay(target, actor) {
		return nil
	}

	if o.status == Delivered {
		return fmt.Errorf("%w: %s is terminal", ErrInvalidTransition, o.status)
	}
	if target.RequiresTailor() && o.tailorID == nil {
		return fmt.Errorf("%w: %s requires an assigned tailor", ErrInvalidTransition, target)
	}

	if target == Pending {
		o.tailorID = nil
	}
	o.status = target
	now := time.Now().UTC()
	o.appendHistory(target, actor, ReasonAdminOverride, now)
	o.touch(now)
	return nil
}

// isReplay reports whether the request duplicates the last accepted
// transition. Detection reads only the history tail, so it survives
// restarts and works across processes sharing the store.
func (o *Order) isReplay(target Status, actor kernel.Actor) bool {
	if o.status != target || len(o.history) == 0 {
		return false
	}
	return o.history[len(o.history)-1].matchesReplay(target, actor)
}

// validateActorIdentity enforces the identity half of role gating: a tailor
// must be the assignee, a customer must be the owner. Admins pass.
func (o *Order) validateActorIdentity(actor kernel.Actor) error {
	switch actor.Role() {
	case kernel.RoleTailor:
		if o.tailorID == nil || !actor.ID().IsEqual(*o.tailorID) {
			return fmt.Errorf("%w: tailor %s is not assigned to this order",
				ErrForbidden, actor.ID())
		}
	case kernel.RoleCustomer:
		if !actor.ID().IsEqual(o.customerID) {
			return fmt.Errorf("%w: customer %s does not own this order",
				ErrForbidden, actor.ID())
		}
	}
	return nil
}

func (o *Order) appendHistory(status Status, actor kernel.Actor, reason string, at time.Time) {
	o.history = append(o.history, HistoryEntry{
		Status:     status,
		ActorRole:  actor.Role(),
		ActorID:    actor.ID(),
		Reason:     reason,
		OccurredAt: at,
	})
}

func (o *Order) touch(at time.Time) {
	o.updatedAt = at
}
