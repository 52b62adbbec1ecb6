package jobs

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderGenerationJob manages the scheduled generation of new orders.
// Each run places a batch of fresh pending orders for existing customers.
type OrderGenerationJob struct {
	handler   commands.GenerateOrdersCommandHandler
	batchSize int
	schedule  string
	cron      *cron.Cron
	logger    *slog.Logger

	mu         sync.Mutex
	running    bool
	registered bool
}

// NewOrderGenerationJob creates a new job for generating orders.
// Uses GenerateOrdersCommandHandler to place batchSize orders on the given
// cron schedule.
func NewOrderGenerationJob(
	handler commands.GenerateOrdersCommandHandler,
	batchSize int,
	schedule string,
	logger *slog.Logger,
) *OrderGenerationJob {
	return &OrderGenerationJob{
		handler:   handler,
		batchSize: batchSize,
		schedule:  schedule,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "order_generation_job"),
	}
}

// Start begins the order generation job on its schedule.
// Starting a running job is a no-op.
func (j *OrderGenerationJob) Start() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.running {
		return nil
	}

	if !j.registered {
		_, err := j.cron.AddFunc(j.schedule, func() {
			ctx := context.Background()

			cmd, err := commands.NewGenerateOrdersCommand(j.batchSize)
			if err != nil {
				j.logger.ErrorContext(ctx, "Order generation job misconfigured", "error", err)
				return
			}

			if err := j.handler.Handle(ctx, cmd); err != nil {
				// A marketplace without customers or stores is an expected warm-up state
				if !errors.Is(err, commands.ErrNoCustomersFound) && !errors.Is(err, commands.ErrNoActiveStoresFound) {
					j.logger.ErrorContext(ctx, "Order generation job failed", "error", err)
				}
			}
		})
		if err != nil {
			return err
		}
		j.registered = true
	}

	j.cron.Start()
	j.running = true
	j.logger.InfoContext(context.Background(), "Order generation job started", "schedule", j.schedule)
	return nil
}

// Stop stops the order generation job.
func (j *OrderGenerationJob) Stop() {
	j.mu.Lock()
	defer j.mu.Unlock()

	if !j.running {
		return
	}

	j.cron.Stop()
	j.running = false
	j.logger.InfoContext(context.Background(), "Order generation job stopped")
}

// Running reports whether the job is currently scheduled.
func (j *OrderGenerationJob) Running() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.running
}
