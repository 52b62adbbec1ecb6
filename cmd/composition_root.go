package cmd

import (
	"fmt"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/adapters/out/postgres"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/application/usecases/commands"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/application/usecases/queries"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/geozone"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/services"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/generators"

	"gorm.io/gorm"
)

// CompositionRoot wires repositories, domain services, and generators into
// the application use cases. Handlers are built once and copied out, they
// hold no per-request state.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	bundler    services.Bundler
	assigner   services.DriverAssigner
	progressor services.DeliveryProgressor

	customerGen generators.CustomerGenerator
	driverGen   generators.DriverGenerator
	storeGen    *generators.StoreGenerator
	orderGen    generators.OrderGenerator
}

// NewCompositionRoot builds the object graph from configuration.
// Domain services run with the tuning carried by the config, which defaults
// to the services' own constants.
func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	planner, err := services.NewRoutePlanner(config.AvgSpeedKmh, config.StopServiceMin)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("route planner: %w", err)
	}

	bundler, err := services.NewBundler(
		config.BundleTimeWindow,
		config.MaxBundleSize,
		config.MaxBundleRadiusKm,
		config.DispatchLag,
		planner,
	)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("bundler: %w", err)
	}

	zones := geozone.DefaultRegistry()

	assigner, err := services.NewDriverAssigner(zones)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("driver assigner: %w", err)
	}

	progressor, err := services.NewDeliveryProgressor(
		config.PickDuration, config.DeliveryStartDelay,
	)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("delivery progressor: %w", err)
	}

	customerGen, err := generators.NewCustomerGenerator(config.Seed, zones)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("customer generator: %w", err)
	}

	driverGen, err := generators.NewDriverGenerator(config.Seed, zones)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("driver generator: %w", err)
	}

	storeGen, err := generators.NewStoreGenerator(config.Seed, zones)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("store generator: %w", err)
	}

	orderGen, err := generators.NewOrderGenerator(config.Seed, config.OrderHistoryDays)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("order generator: %w", err)
	}

	return CompositionRoot{
		gormDB:      gormDB,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
		bundler:     bundler,
		assigner:    assigner,
		progressor:  progressor,
		customerGen: customerGen,
		driverGen:   driverGen,
		storeGen:    storeGen,
		orderGen:    orderGen,
	}, nil
}

func (c *CompositionRoot) CreateGenerateCustomersCommandHandler() commands.GenerateCustomersCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewGenerateCustomersCommandHandler(f, c.customerGen)
}

func (c *CompositionRoot) CreateGenerateDriversCommandHandler() commands.GenerateDriversCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewGenerateDriversCommandHandler(f, c.driverGen)
}

func (c *CompositionRoot) CreateGenerateStoresCommandHandler() commands.GenerateStoresCommandHandler {
	var f commands.StoreUoWFactory = FuncStoreUoWFactory(func() commands.StoreUoW {
		return c.uowFactory.Create()
	})
	return commands.NewGenerateStoresCommandHandler(f, c.storeGen)
}

func (c *CompositionRoot) CreateGenerateOrdersCommandHandler() commands.GenerateOrdersCommandHandler {
	var f commands.OrderGenerationUoWFactory = FuncOrderGenerationUoWFactory(func() commands.OrderGenerationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewGenerateOrdersCommandHandler(f, c.orderGen)
}

func (c *CompositionRoot) CreateBundleOrdersCommandHandler() commands.BundleOrdersCommandHandler {
	var f commands.BundlingUoWFactory = FuncBundlingUoWFactory(func() commands.BundlingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewBundleOrdersCommandHandler(f, c.bundler, c.assigner)
}

func (c *CompositionRoot) CreateProgressDeliveriesCommandHandler() commands.ProgressDeliveriesCommandHandler {
	var f commands.ProgressionUoWFactory = FuncProgressionUoWFactory(func() commands.ProgressionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewProgressDeliveriesCommandHandler(f, c.progressor)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUnbundledOrdersQueryHandler() queries.GetUnbundledOrdersQueryHandler {
	return queries.NewGetUnbundledOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBundlesQueryHandler() queries.GetBundlesQueryHandler {
	return queries.NewGetBundlesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBundleStatsQueryHandler() queries.GetBundleStatsQueryHandler {
	return queries.NewGetBundleStatsQueryHandler(c.gormDB)
}

// The Func*UoWFactory types adapt a plain closure over the GORM unit of
// work factory to the narrowed factory interface each command handler
// expects, so the handlers stay decoupled from the persistence wiring.

// FuncCustomerUoWFactory adapts a closure to commands.CustomerUoWFactory.
type FuncCustomerUoWFactory func() commands.CustomerUoW

// Create returns a fresh unit of work for a customer generation pass.
func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

// FuncDriverUoWFactory adapts a closure to commands.DriverUoWFactory.
type FuncDriverUoWFactory func() commands.DriverUoW

// Create returns a fresh unit of work for a driver generation pass.
func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

// FuncStoreUoWFactory adapts a closure to commands.StoreUoWFactory.
type FuncStoreUoWFactory func() commands.StoreUoW

// Create returns a fresh unit of work for a store generation pass.
func (f FuncStoreUoWFactory) Create() commands.StoreUoW {
	return f()
}

// FuncOrderGenerationUoWFactory adapts a closure to
// commands.OrderGenerationUoWFactory.
type FuncOrderGenerationUoWFactory func() commands.OrderGenerationUoW

// Create returns a fresh unit of work for an order generation pass.
func (f FuncOrderGenerationUoWFactory) Create() commands.OrderGenerationUoW {
	return f()
}

// FuncBundlingUoWFactory adapts a closure to commands.BundlingUoWFactory.
type FuncBundlingUoWFactory func() commands.BundlingUoW

// Create returns a fresh unit of work for a bundling pass.
func (f FuncBundlingUoWFactory) Create() commands.BundlingUoW {
	return f()
}

// FuncProgressionUoWFactory adapts a closure to
// commands.ProgressionUoWFactory.
type FuncProgressionUoWFactory func() commands.ProgressionUoW

// Create returns a fresh unit of work for a delivery progression pass.
func (f FuncProgressionUoWFactory) Create() commands.ProgressionUoW {
	return f()
}
