package jobs

import (
	"context"
	"log/slog"
	"time"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// ReasonStalePendingReminder marks reminder events emitted by the job.
const ReasonStalePendingReminder = "stale_pending_reminder"

// StalePendingJob periodically finds orders stuck in pending longer than
// the configured threshold and emits a reminder through the notification
// sink. Reminders are best effort; failures are logged and never fatal.
type StalePendingJob struct {
	uowFactory commands.OrderUoWFactory
	notifier   ports.Notifier
	threshold  time.Duration
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewStalePendingJob creates the reminder job. The threshold is how long
// an order may sit in pending before it counts as stale.
func NewStalePendingJob(
	uowFactory commands.OrderUoWFactory,
	notifier ports.Notifier,
	threshold time.Duration,
	logger *slog.Logger,
) *StalePendingJob {
	return &StalePendingJob{
		uowFactory: uowFactory,
		notifier:   notifier,
		threshold:  threshold,
		cron:       cron.New(),
		logger:     logger.With("component", "stale_pending_job"),
	}
}

// Start schedules the job to run every minute.
func (j *StalePendingJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		j.run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale pending reminder job started (running every minute)")
	return nil
}

// Stop stops the job.
func (j *StalePendingJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale pending reminder job stopped")
}

func (j *StalePendingJob) run(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-j.threshold)

	// Read-only pass, no transaction needed.
	repo := j.uowFactory.Create().OrderRepository()
	stale, err := repo.GetAllPendingSince(ctx, cutoff)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale pending scan failed", "error", err)
		return
	}

	for _, o := range stale {
		event := ports.OrderStatusChanged{
			OrderID:    o.ID().String(),
			CustomerID: o.CustomerID().String(),
			From:       order.Pending.String(),
			To:         order.Pending.String(),
			Reason:     ReasonStalePendingReminder,
			OccurredAt: time.Now().UTC(),
		}

		if err := j.notifier.PublishStatusChanged(ctx, event); err != nil {
			j.logger.WarnContext(ctx, "Stale pending reminder publish failed",
				"order_id", o.ID().String(), "error", err)
		}
	}

	if len(stale) > 0 {
		j.logger.InfoContext(ctx, "Stale pending reminders emitted", "count", len(stale))
	}
}
