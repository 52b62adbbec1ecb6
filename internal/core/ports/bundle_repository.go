package ports

import (
	"context"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/bundle"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/kernel"
)

// BundleRepository defines the persistence contract for bundle aggregates
// and their delivery stops.
type BundleRepository interface {
	// Add persists a new bundle aggregate together with its stops.
	Add(ctx context.Context, aggregate *bundle.Bundle) error

	// Update persists changes to an existing bundle aggregate.
	// Stops are immutable after creation; only the driver assignment and
	// status can change.
	Update(ctx context.Context, aggregate *bundle.Bundle) error

	// Get retrieves a bundle aggregate by its unique identifier,
	// including its ordered stops.
	Get(ctx context.Context, id kernel.UUID) (*bundle.Bundle, error)

	// GetAll retrieves every bundle, newest first. Used by the stats and
	// listing queries.
	GetAll(ctx context.Context) ([]*bundle.Bundle, error)

	// GetAllActive retrieves every bundle still being picked or delivered,
	// oldest first. Used by the delivery progression pass.
	GetAllActive(ctx context.Context) ([]*bundle.Bundle, error)
}
