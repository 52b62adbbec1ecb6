package cmd

import (
	"fmt"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/adapters/out/postgres/bundlerepo"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/adapters/out/postgres/customerrepo"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/adapters/out/postgres/driverrepo"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/adapters/out/postgres/orderrepo"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/adapters/out/postgres/storerepo"

	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// openDatabase connects to postgres and migrates the simulation schema.
func openDatabase(config Config) (*gorm.DB, error) {
	db, err := gorm.Open(gorm_postgres.Open(config.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&driverrepo.DriverDTO{},
		&storerepo.StoreDTO{},
		&orderrepo.OrderDTO{},
		&bundlerepo.BundleDTO{},
		&bundlerepo.StopDTO{},
	)
	if err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return db, nil
}
