package queries

import (
	"errors"
	"time"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/kernel"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/pkg/guard"
)

var (
	ErrGetBundlesQueryIsNotConstructed = errors.New(
		"GetBundlesQuery must be created via NewGetBundlesQuery constructor",
	)
	ErrLimitIsInvalid = errors.New("limit must be greater than zero")
)

// GetBundlesQuery retrieves recent delivery bundles.
// Returns bundle summaries with their route metrics and driver assignment,
// newest first, capped at the requested limit.
//
// Example:
//
//	query, err := NewGetBundlesQuery(50)
//	if err != nil {
//	    return err
//	}
//
//	bundles, err := handler.Handle(ctx, query)
//	for _, b := range bundles {
//	    fmt.Printf("Bundle %s: %d stops, %.1f km\n", b.ID, b.StopCount, b.TotalDistanceKm)
//	}
type GetBundlesQuery struct { //nolint:recvcheck //using for validation
	limit int

	guard guard.ConstructorGuard
}

// NewGetBundlesQuery creates a query to retrieve the most recent bundles.
//
// Parameters:
//   - limit: The maximum number of bundles to return (must be positive)
//
// Returns ErrLimitIsInvalid when limit is not positive.
func NewGetBundlesQuery(limit int) (GetBundlesQuery, error) {
	query := GetBundlesQuery{guard: guard.NewConstructorGuard()}

	if err := query.setLimit(limit); err != nil {
		return GetBundlesQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetBundlesQueryIsNotConstructed if validation fails.
func (q GetBundlesQuery) Validate() error {
	return q.guard.Validate(ErrGetBundlesQueryIsNotConstructed)
}

// Limit returns the maximum number of bundles the query retrieves.
func (q GetBundlesQuery) Limit() int {
	return q.limit
}

func (q *GetBundlesQuery) setLimit(limit int) error {
	if limit <= 0 {
		return ErrLimitIsInvalid
	}

	q.limit = limit
	return nil
}

// GetBundlesQueryResponse represents a bundle summary in the read model.
// DriverID is nil for bundles that are waiting for a driver.
type GetBundlesQueryResponse struct {
	ID                   kernel.UUID
	StoreID              kernel.UUID
	DriverID             *kernel.UUID
	StopCount            int
	TotalDistanceKm      float64
	EstimatedDurationMin float64
	TotalValue           float64
	Status               string
	CreatedAt            time.Time
}
