package commands

import (
	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/customer"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/driver"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/order"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/store"
)

// Generator interfaces decouple the generation handlers from the synthetic
// data source. Implementations produce fully constructed aggregates.
type (
	// CustomerGenerator produces synthetic customers.
	CustomerGenerator interface {
		Customers(count int) ([]*customer.Customer, error)
	}

	// DriverGenerator produces synthetic drivers.
	DriverGenerator interface {
		Drivers(count int) ([]*driver.Driver, error)
	}

	// StoreGenerator produces synthetic stores.
	StoreGenerator interface {
		Stores(count int) ([]*store.Store, error)
	}

	// OrderGenerator produces synthetic orders placed by the given customers
	// at the given stores.
	OrderGenerator interface {
		Orders(count int, customers []*customer.Customer, stores []*store.Store) ([]*order.Order, error)
	}
)
