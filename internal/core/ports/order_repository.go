package ports

import (
	"context"
	"errors"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/kernel"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/order"
)

// ErrStaleStatusTransition is returned by UpdateFromStatus when the stored
// order no longer holds the expected pre-transition status.
var ErrStaleStatusTransition = errors.New("order status changed since it was read")

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their lifecycle status.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateFromStatus persists a status transition as a single conditional
	// write, touching the row only while it still holds the expected
	// pre-transition status. A row a concurrent writer already moved past
	// that status is reported via ErrStaleStatusTransition.
	UpdateFromStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByIDs retrieves the orders with the given identifiers.
	// Missing identifiers are not an error; the result simply omits them.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error)

	// GetAllUnbundled retrieves all orders still waiting to be bundled
	// (pending or confirmed), oldest first. Used by the bundling pass.
	GetAllUnbundled(ctx context.Context) ([]*order.Order, error)

	// GetAllInStatus retrieves all orders in the given status, oldest first.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// CountByStatus returns the number of orders per status.
	CountByStatus(ctx context.Context) (map[order.Status]int64, error)
}
