package jobs

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// BundlingJob manages the scheduled bundling of unbundled orders.
// Each run clusters the order queue into bundles, plans routes, and assigns
// drivers.
type BundlingJob struct {
	handler  commands.BundleOrdersCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger

	mu         sync.Mutex
	running    bool
	registered bool
}

// NewBundlingJob creates a new job for running bundling passes.
// Uses BundleOrdersCommandHandler to process the order queue on the given
// cron schedule.
func NewBundlingJob(
	handler commands.BundleOrdersCommandHandler,
	schedule string,
	logger *slog.Logger,
) *BundlingJob {
	return &BundlingJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "bundling_job"),
	}
}

// Start begins the bundling job on its schedule.
// Starting a running job is a no-op.
func (j *BundlingJob) Start() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.running {
		return nil
	}

	if !j.registered {
		_, err := j.cron.AddFunc(j.schedule, func() {
			ctx := context.Background()

			result, err := j.handler.Handle(ctx, commands.NewBundleOrdersCommand())
			if err != nil {
				// An empty queue between passes is the normal idle state
				if !errors.Is(err, commands.ErrNoUnbundledOrdersFound) {
					j.logger.ErrorContext(ctx, "Bundling job failed", "error", err)
				}
				return
			}

			j.logger.InfoContext(ctx, "Bundling pass completed",
				"bundles_created", result.BundlesCreated,
				"orders_bundled", result.OrdersBundled,
				"drivers_assigned", result.DriversAssigned,
			)
		})
		if err != nil {
			return err
		}
		j.registered = true
	}

	j.cron.Start()
	j.running = true
	j.logger.InfoContext(context.Background(), "Bundling job started", "schedule", j.schedule)
	return nil
}

// Stop stops the bundling job.
func (j *BundlingJob) Stop() {
	j.mu.Lock()
	defer j.mu.Unlock()

	if !j.running {
		return
	}

	j.cron.Stop()
	j.running = false
	j.logger.InfoContext(context.Background(), "Bundling job stopped")
}

// Running reports whether the job is currently scheduled.
func (j *BundlingJob) Running() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.running
}
