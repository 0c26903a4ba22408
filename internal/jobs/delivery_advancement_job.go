package jobs

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DeliveryAdvancementJob drives the delivery simulation. It scans the durable
// task schedule every second and applies every transition that has come due.
// Because the schedule lives in the database, the first scan after a process
// restart picks up everything that fired while the process was down.
type DeliveryAdvancementJob struct {
	handler commands.AdvanceDeliveriesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDeliveryAdvancementJob creates the job around the advance-deliveries handler.
func NewDeliveryAdvancementJob(
	handler commands.AdvanceDeliveriesCommandHandler,
	logger *slog.Logger,
) *DeliveryAdvancementJob {
	return &DeliveryAdvancementJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "delivery_advancement_job"),
	}
}

// Start begins the delivery advancement job to run every second.
func (j *DeliveryAdvancementJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewAdvanceDeliveriesCommand(time.Now())
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Delivery advancement command rejected", "error", cmdErr)
			return
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "Delivery advancement job failed", "error", handleErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery advancement job started (running every second)")
	return nil
}

// Stop stops the delivery advancement job.
func (j *DeliveryAdvancementJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery advancement job stopped")
}
