package jobs

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/application/usecases/commands"
)

// ErrUnknownJob is returned when a job name does not match any managed job.
var ErrUnknownJob = errors.New("unknown job")

// Job names accepted by StartJob and StopJob.
const (
	JobOrderGeneration     = "order_generation"
	JobBundling            = "bundling"
	JobDeliveryProgression = "delivery_progression"
	JobEntityGrowth        = "entity_growth"
)

// managedJob is the control surface every scheduled job exposes.
type managedJob interface {
	Start() error
	Stop()
	Running() bool
}

// Schedules holds the cron expression for each job.
type Schedules struct {
	OrderGeneration     string
	Bundling            string
	DeliveryProgression string
	EntityGrowth        string
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop jobs together or one by one.
type JobManager struct {
	jobs  map[string]managedJob
	order []string
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	generateOrdersHandler commands.GenerateOrdersCommandHandler,
	bundleOrdersHandler commands.BundleOrdersCommandHandler,
	progressDeliveriesHandler commands.ProgressDeliveriesCommandHandler,
	generateCustomersHandler commands.GenerateCustomersCommandHandler,
	generateDriversHandler commands.GenerateDriversCommandHandler,
	generateStoresHandler commands.GenerateStoresCommandHandler,
	orderBatchSize int,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		jobs: map[string]managedJob{
			JobOrderGeneration: NewOrderGenerationJob(
				generateOrdersHandler, orderBatchSize, schedules.OrderGeneration, logger,
			),
			JobBundling: NewBundlingJob(
				bundleOrdersHandler, schedules.Bundling, logger,
			),
			JobDeliveryProgression: NewDeliveryProgressionJob(
				progressDeliveriesHandler, schedules.DeliveryProgression, logger,
			),
			JobEntityGrowth: NewEntityGrowthJob(
				generateCustomersHandler, generateDriversHandler, generateStoresHandler,
				schedules.EntityGrowth, logger,
			),
		},
		order: []string{
			JobOrderGeneration,
			JobBundling,
			JobDeliveryProgression,
			JobEntityGrowth,
		},
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start, stopping already started jobs.
func (jm *JobManager) StartAll() error {
	for i, name := range jm.order {
		if err := jm.jobs[name].Start(); err != nil {
			for _, started := range jm.order[:i] {
				jm.jobs[started].Stop()
			}
			return fmt.Errorf("failed to start %s job: %w", name, err)
		}
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	for _, name := range jm.order {
		jm.jobs[name].Stop()
	}
}

// StartJob starts a single job by name.
// Returns ErrUnknownJob when no job carries that name.
func (jm *JobManager) StartJob(name string) error {
	j, ok := jm.jobs[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownJob, name)
	}

	return j.Start()
}

// StopJob stops a single job by name.
// Returns ErrUnknownJob when no job carries that name.
func (jm *JobManager) StopJob(name string) error {
	j, ok := jm.jobs[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownJob, name)
	}

	j.Stop()
	return nil
}

// Status reports the running state of every managed job keyed by name.
func (jm *JobManager) Status() map[string]bool {
	status := make(map[string]bool, len(jm.jobs))
	for name, j := range jm.jobs {
		status[name] = j.Running()
	}

	return status
}
