// Package jobs provides the scheduled background work of the storefront.
//
// The only job is DeliveryAdvancementJob: a cron task (expression
// "* * * * * *", every second) that executes due delivery-schedule tasks.
// Individual task failures are logged inside the handler and retried on the
// next scan; the job itself only logs scan-level failures.
package jobs

import (
	"fmt"
	"log/slog"

	"storefront/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	deliveryAdvancementJob *DeliveryAdvancementJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	advanceDeliveriesHandler commands.AdvanceDeliveriesCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		deliveryAdvancementJob: NewDeliveryAdvancementJob(advanceDeliveriesHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.deliveryAdvancementJob.Start(); err != nil {
		return fmt.Errorf("failed to start delivery advancement job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.deliveryAdvancementJob.Stop()
}
