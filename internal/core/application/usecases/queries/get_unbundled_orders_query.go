// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/kernel"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/pkg/guard"
)

var (
	ErrGetUnbundledOrdersQueryIsNotConstructed = errors.New(
		"GetUnbundledOrdersQuery must be created via NewGetUnbundledOrdersQuery constructor",
	)
)

// GetUnbundledOrdersQuery retrieves the bundling queue.
// Returns pending and confirmed orders that are waiting for the next
// bundling pass, oldest first.
//
// Example:
//
//	query := NewGetUnbundledOrdersQuery()
//	handler := NewGetUnbundledOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve order queue: %w", err)
//	}
//
//	for _, o := range orders {
//	    fmt.Printf("Order %s from store %s: $%.2f\n", o.ID, o.StoreID, o.Total)
//	}
type GetUnbundledOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUnbundledOrdersQuery creates a query to retrieve the bundling queue.
// This is a parameterless query that fetches every unbundled order.
func NewGetUnbundledOrdersQuery() GetUnbundledOrdersQuery {
	return GetUnbundledOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUnbundledOrdersQueryIsNotConstructed if validation fails.
func (q GetUnbundledOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUnbundledOrdersQueryIsNotConstructed)
}

// GetUnbundledOrdersQueryResponse represents a queued order in the read model.
// Contains the fields the bundling queue view displays.
type GetUnbundledOrdersQueryResponse struct {
	ID               kernel.UUID
	StoreID          kernel.UUID
	DeliveryLocation kernel.GeoPoint
	ItemCount        int
	Total            float64
	Status           string
	CreatedAt        time.Time
}
