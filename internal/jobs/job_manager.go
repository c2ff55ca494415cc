// Package jobs contains the scheduled background jobs and their manager.
package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	stalePendingJob *StalePendingJob
}

// NewJobManager creates a job manager with all required jobs wired up.
func NewJobManager(
	uowFactory commands.OrderUoWFactory,
	notifier ports.Notifier,
	stalePendingAfter time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		stalePendingJob: NewStalePendingJob(uowFactory, notifier, stalePendingAfter, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.stalePendingJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale pending job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.stalePendingJob.Stop()
}
