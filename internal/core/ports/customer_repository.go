package ports

import (
	"context"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/customer"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer aggregates.
type CustomerRepository interface {
	// Add persists a new customer aggregate to storage.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetAll retrieves every customer.
	GetAll(ctx context.Context) ([]*customer.Customer, error)

	// Count returns the number of registered customers.
	Count(ctx context.Context) (int64, error)
}
