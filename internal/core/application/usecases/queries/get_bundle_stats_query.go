package queries

import (
	"errors"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/pkg/guard"
)

var (
	ErrGetBundleStatsQueryIsNotConstructed = errors.New(
		"GetBundleStatsQuery must be created via NewGetBundleStatsQuery constructor",
	)
)

// GetBundleStatsQuery retrieves aggregate statistics over all bundles.
// Used by the stats endpoint and the bundling CLI report.
//
// Example:
//
//	query := NewGetBundleStatsQuery()
//	handler := NewGetBundleStatsQueryHandler(db)
//
//	stats, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d bundles covering %d orders\n", stats.TotalBundles, stats.TotalOrders)
type GetBundleStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetBundleStatsQuery creates a query for bundle statistics.
// This is a parameterless query that aggregates over every bundle.
func NewGetBundleStatsQuery() GetBundleStatsQuery {
	return GetBundleStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetBundleStatsQueryIsNotConstructed if validation fails.
func (q GetBundleStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetBundleStatsQueryIsNotConstructed)
}

// GetBundleStatsQueryResponse aggregates bundle metrics in the read model.
// All averages are zero when no bundles exist.
type GetBundleStatsQueryResponse struct {
	TotalBundles       int64
	TotalOrders        int64
	AvgOrdersPerBundle float64
	SingleOrderBundles int64
	MultiOrderBundles  int64
	AvgDistanceKm      float64
	TotalDistanceKm    float64
	AvgDurationMin     float64
	AvgValue           float64
	TotalValue         float64
}
