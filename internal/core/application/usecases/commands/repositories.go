// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// BundleRepoFactory provides access to bundle repository within a transaction.
	BundleRepoFactory interface {
		BundleRepository() ports.BundleRepository
	}

	// DriverRepoFactory provides access to driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// StoreRepoFactory provides access to store repository within a transaction.
	StoreRepoFactory interface {
		StoreRepository() ports.StoreRepository
	}

	// CustomerRepoFactory provides access to customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// CustomerUoW manages transactions for customer-only operations.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	// CustomerUoWFactory creates new customer unit of work instances.
	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// DriverUoW manages transactions for driver-only operations.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	// DriverUoWFactory creates new driver unit of work instances.
	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// StoreUoW manages transactions for store-only operations.
	StoreUoW interface {
		TxManager
		StoreRepoFactory
	}

	// StoreUoWFactory creates new store unit of work instances.
	StoreUoWFactory interface {
		Create() StoreUoW
	}

	// OrderGenerationUoW manages transactions for order placement.
	// Order generation reads customers and stores to place realistic orders.
	OrderGenerationUoW interface {
		TxManager
		OrderRepoFactory
		CustomerRepoFactory
		StoreRepoFactory
	}

	// OrderGenerationUoWFactory creates new order generation unit of work instances.
	OrderGenerationUoWFactory interface {
		Create() OrderGenerationUoW
	}

	// BundlingUoW manages transactions for the bundling run.
	// Bundling reads unbundled orders, stores and available drivers, and writes
	// bundles plus the progressed orders atomically.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   bundleRepo := uow.BundleRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	BundlingUoW interface {
		TxManager
		OrderRepoFactory
		BundleRepoFactory
		DriverRepoFactory
		StoreRepoFactory
	}

	// BundlingUoWFactory creates new bundling unit of work instances.
	BundlingUoWFactory interface {
		Create() BundlingUoW
	}

	// ProgressionUoW manages transactions for delivery progression.
	// Progression reads active bundles with their orders and writes lifecycle
	// advances for both.
	ProgressionUoW interface {
		TxManager
		OrderRepoFactory
		BundleRepoFactory
	}

	// ProgressionUoWFactory creates new progression unit of work instances.
	ProgressionUoWFactory interface {
		Create() ProgressionUoW
	}
)
