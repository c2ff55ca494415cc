package ports

import (
	"context"
	"time"
)

// OrderStatusChanged is the event published to the notification sink on
// every accepted status transition.
type OrderStatusChanged struct {
	OrderID    string    `json:"order_id"`
	CustomerID string    `json:"customer_id"`
	TailorID   string    `json:"tailor_id,omitempty"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	Reason     string    `json:"reason,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Notifier is the fire-and-forget notification sink informed of status
// transitions. Delivery failure must never fail or roll back the transition
// itself; callers log the error and move on.
type Notifier interface {
	PublishStatusChanged(ctx context.Context, event OrderStatusChanged) error
}
