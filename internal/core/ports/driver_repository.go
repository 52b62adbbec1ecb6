package ports

import (
	"context"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/driver"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
type DriverRepository interface {
	// Add persists a new driver aggregate to storage.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists changes to an existing driver aggregate.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetAll retrieves every driver.
	GetAll(ctx context.Context) ([]*driver.Driver, error)

	// GetAllAvailable retrieves active drivers not currently carrying an
	// active bundle. A driver is busy while any bundle assigned to them has
	// not completed; availability is derived from that linkage rather than
	// a flag on the driver row.
	GetAllAvailable(ctx context.Context) ([]*driver.Driver, error)

	// Count returns the number of registered drivers.
	Count(ctx context.Context) (int64, error)
}
