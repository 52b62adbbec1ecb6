package ports

import (
	"context"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/kernel"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/store"
)

// StoreRepository defines the persistence contract for store aggregates.
type StoreRepository interface {
	// Add persists a new store aggregate to storage.
	Add(ctx context.Context, aggregate *store.Store) error

	// Update persists changes to an existing store aggregate.
	Update(ctx context.Context, aggregate *store.Store) error

	// Get retrieves a store aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*store.Store, error)

	// GetByIDs retrieves the stores with the given identifiers.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*store.Store, error)

	// GetAll retrieves every store.
	GetAll(ctx context.Context) ([]*store.Store, error)

	// GetAllActive retrieves every store currently accepting orders.
	GetAllActive(ctx context.Context) ([]*store.Store, error)

	// Count returns the number of registered stores.
	Count(ctx context.Context) (int64, error)
}
