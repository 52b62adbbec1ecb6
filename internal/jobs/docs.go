// Package jobs provides scheduled background tasks for the delivery simulation.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to drive the marketplace loop without any external traffic.
//
// # Available Jobs
//
// 1. OrderGenerationJob - Places a batch of fresh pending orders on each tick
// 2. BundlingJob - Clusters the order queue into bundles and assigns drivers
// 3. DeliveryProgressionJob - Advances active bundles along their delivery schedules
// 4. EntityGrowthJob - Trickles in new customers, drivers, and stores
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(
//		generateOrders, bundleOrders, progressDeliveries,
//		generateCustomers, generateDrivers, generateStores,
//		batchSize, schedules, logger,
//	)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// Individual jobs can also be started and stopped by name through
// StartJob and StopJob, and inspected through Status. This backs the
// HTTP job control endpoints.
//
// # Scheduling
//
// Every job takes a six-field cron expression (seconds resolution) from
// configuration, so the simulation speed is tunable per deployment.
//
// # Error Handling
//
// - Order generation ignores expected warm-up errors (no customers, no stores)
// - Bundling ignores an empty order queue between passes
// - Progression and growth log all errors as they indicate system issues
// - A failed job start from StartAll stops any already running jobs
package jobs
