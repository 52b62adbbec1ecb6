package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetBundleStatsQueryHandler aggregates bundle metrics from the database.
// A single SQL pass computes the counts, distances and values so the read
// stays cheap even with a large bundle history.
type GetBundleStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetBundleStatsQueryHandler creates a handler for bundle statistics queries.
// Requires a GORM database connection for query execution.
func NewGetBundleStatsQueryHandler(db *gorm.DB) GetBundleStatsQueryHandler {
	return GetBundleStatsQueryHandler{db: db}
}

// Handle executes the aggregation over all bundles.
// Stop counts come from the stop rows; a system with no bundles yields a
// zero-valued response rather than an error.
func (h GetBundleStatsQueryHandler) Handle(
	ctx context.Context,
	query GetBundleStatsQuery,
) (GetBundleStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetBundleStatsQueryResponse{}, err
	}

	var stats GetBundleStatsQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			count(*) AS total_bundles,
			coalesce(sum(s.stop_count), 0) AS total_orders,
			coalesce(avg(s.stop_count), 0) AS avg_orders_per_bundle,
			coalesce(sum(CASE WHEN s.stop_count = 1 THEN 1 ELSE 0 END), 0) AS single_order_bundles,
			coalesce(sum(CASE WHEN s.stop_count > 1 THEN 1 ELSE 0 END), 0) AS multi_order_bundles,
			coalesce(avg(b.total_distance_km), 0) AS avg_distance_km,
			coalesce(sum(b.total_distance_km), 0) AS total_distance_km,
			coalesce(avg(b.estimated_duration_min), 0) AS avg_duration_min,
			coalesce(avg(b.total_value), 0) AS avg_value,
			coalesce(sum(b.total_value), 0) AS total_value
		FROM bundles b
		JOIN (
			SELECT bundle_id, count(*) AS stop_count
			FROM bundle_stops
			GROUP BY bundle_id
		) s ON s.bundle_id = b.id
	`).Row()

	err := row.Scan(
		&stats.TotalBundles,
		&stats.TotalOrders,
		&stats.AvgOrdersPerBundle,
		&stats.SingleOrderBundles,
		&stats.MultiOrderBundles,
		&stats.AvgDistanceKm,
		&stats.TotalDistanceKm,
		&stats.AvgDurationMin,
		&stats.AvgValue,
		&stats.TotalValue,
	)
	if err != nil {
		return GetBundleStatsQueryResponse{}, err
	}

	return stats, nil
}
