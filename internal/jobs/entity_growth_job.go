package jobs

import (
	"context"
	"log/slog"
	"sync"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// Growth batch sizes per tick. Stores open far less often than customers
// sign up, so a store is only added every storeGrowthPeriod ticks.
const (
	growthCustomersPerTick = 3
	growthDriversPerTick   = 1
	storeGrowthPeriod      = 5
)

// EntityGrowthJob manages the scheduled growth of the marketplace population.
// Each run trickles in a few new customers and drivers, and occasionally a
// new store, so the simulation does not run against a frozen world.
type EntityGrowthJob struct {
	customersHandler commands.GenerateCustomersCommandHandler
	driversHandler   commands.GenerateDriversCommandHandler
	storesHandler    commands.GenerateStoresCommandHandler
	schedule         string
	cron             *cron.Cron
	logger           *slog.Logger

	mu         sync.Mutex
	running    bool
	registered bool
	ticks      int
}

// NewEntityGrowthJob creates a new job for growing the entity population.
// Takes the three entity generation handlers and runs them on the given cron
// schedule.
func NewEntityGrowthJob(
	customersHandler commands.GenerateCustomersCommandHandler,
	driversHandler commands.GenerateDriversCommandHandler,
	storesHandler commands.GenerateStoresCommandHandler,
	schedule string,
	logger *slog.Logger,
) *EntityGrowthJob {
	return &EntityGrowthJob{
		customersHandler: customersHandler,
		driversHandler:   driversHandler,
		storesHandler:    storesHandler,
		schedule:         schedule,
		cron:             cron.New(cron.WithSeconds()),
		logger:           logger.With("component", "entity_growth_job"),
	}
}

// Start begins the entity growth job on its schedule.
// Starting a running job is a no-op.
func (j *EntityGrowthJob) Start() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.running {
		return nil
	}

	if !j.registered {
		_, err := j.cron.AddFunc(j.schedule, j.tick)
		if err != nil {
			return err
		}
		j.registered = true
	}

	j.cron.Start()
	j.running = true
	j.logger.InfoContext(context.Background(), "Entity growth job started", "schedule", j.schedule)
	return nil
}

// Stop stops the entity growth job.
func (j *EntityGrowthJob) Stop() {
	j.mu.Lock()
	defer j.mu.Unlock()

	if !j.running {
		return
	}

	j.cron.Stop()
	j.running = false
	j.logger.InfoContext(context.Background(), "Entity growth job stopped")
}

// Running reports whether the job is currently scheduled.
func (j *EntityGrowthJob) Running() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.running
}

func (j *EntityGrowthJob) tick() {
	ctx := context.Background()

	j.mu.Lock()
	j.ticks++
	addStore := j.ticks%storeGrowthPeriod == 0
	j.mu.Unlock()

	customersCmd, err := commands.NewGenerateCustomersCommand(growthCustomersPerTick)
	if err == nil {
		err = j.customersHandler.Handle(ctx, customersCmd)
	}
	if err != nil {
		j.logger.ErrorContext(ctx, "Customer growth failed", "error", err)
	}

	driversCmd, err := commands.NewGenerateDriversCommand(growthDriversPerTick)
	if err == nil {
		err = j.driversHandler.Handle(ctx, driversCmd)
	}
	if err != nil {
		j.logger.ErrorContext(ctx, "Driver growth failed", "error", err)
	}

	if !addStore {
		return
	}

	storesCmd, err := commands.NewGenerateStoresCommand(1)
	if err == nil {
		err = j.storesHandler.Handle(ctx, storesCmd)
	}
	if err != nil {
		j.logger.ErrorContext(ctx, "Store growth failed", "error", err)
	}
}
