package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DeliveryProgressionJob manages the scheduled progression of active bundles.
// Each run applies every lifecycle transition whose scheduled time has passed.
type DeliveryProgressionJob struct {
	handler  commands.ProgressDeliveriesCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger

	mu         sync.Mutex
	running    bool
	registered bool
}

// NewDeliveryProgressionJob creates a new job for progressing deliveries.
// Uses ProgressDeliveriesCommandHandler to advance active bundles on the
// given cron schedule.
func NewDeliveryProgressionJob(
	handler commands.ProgressDeliveriesCommandHandler,
	schedule string,
	logger *slog.Logger,
) *DeliveryProgressionJob {
	return &DeliveryProgressionJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "delivery_progression_job"),
	}
}

// Start begins the delivery progression job on its schedule.
// Starting a running job is a no-op.
func (j *DeliveryProgressionJob) Start() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.running {
		return nil
	}

	if !j.registered {
		_, err := j.cron.AddFunc(j.schedule, func() {
			ctx := context.Background()

			cmd, err := commands.NewProgressDeliveriesCommand(time.Now().UTC())
			if err != nil {
				j.logger.ErrorContext(ctx, "Delivery progression job misconfigured", "error", err)
				return
			}

			result, err := j.handler.Handle(ctx, cmd)
			if err != nil {
				j.logger.ErrorContext(ctx, "Delivery progression job failed", "error", err)
				return
			}

			if result.OrdersAdvanced > 0 || result.BundlesCompleted > 0 {
				j.logger.InfoContext(ctx, "Deliveries progressed",
					"orders_advanced", result.OrdersAdvanced,
					"bundles_completed", result.BundlesCompleted,
				)
			}
		})
		if err != nil {
			return err
		}
		j.registered = true
	}

	j.cron.Start()
	j.running = true
	j.logger.InfoContext(context.Background(), "Delivery progression job started", "schedule", j.schedule)
	return nil
}

// Stop stops the delivery progression job.
func (j *DeliveryProgressionJob) Stop() {
	j.mu.Lock()
	defer j.mu.Unlock()

	if !j.running {
		return
	}

	j.cron.Stop()
	j.running = false
	j.logger.InfoContext(context.Background(), "Delivery progression job stopped")
}

// Running reports whether the job is currently scheduled.
func (j *DeliveryProgressionJob) Running() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.running
}
