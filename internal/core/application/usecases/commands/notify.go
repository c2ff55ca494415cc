package commands

import (
	"context"
	"log/slog"
	"time"

	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/ports"
)

// publishStatusChanged informs the notification sink about a committed
// transition. Delivery is fire-and-forget: a sink failure is logged and
// swallowed so it can never roll back or fail the transition itself.
func publishStatusChanged(
	ctx context.Context,
	notifier ports.Notifier,
	logger *slog.Logger,
	o *order.Order,
	from order.Status,
	reason string,
) {
	event := ports.OrderStatusChanged{
		OrderID:    o.ID().String(),
		CustomerID: o.CustomerID().String(),
		From:       from.String(),
		To:         o.Status().String(),
		Reason:     reason,
		OccurredAt: time.Now().UTC(),
	}
	if tailorID := o.Tailor(); tailorID != nil {
		event.TailorID = tailorID.String()
	}

	if err := notifier.PublishStatusChanged(ctx, event); err != nil {
		logger.WarnContext(ctx, "Failed to publish status change notification",
			"order_id", event.OrderID, "from", event.From, "to", event.To, "error", err)
	}
}
