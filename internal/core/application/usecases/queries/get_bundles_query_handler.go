package queries

import (
	"context"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetBundlesQueryHandler retrieves bundle summaries from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetBundlesQueryHandler(db)
//	query, _ := NewGetBundlesQuery(50)
//
//	bundles, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get bundles: %v", err)
//	    return err
//	}
type GetBundlesQueryHandler struct {
	db *gorm.DB
}

// NewGetBundlesQueryHandler creates a handler for bundle list queries.
// Requires a GORM database connection for query execution.
func NewGetBundlesQueryHandler(db *gorm.DB) GetBundlesQueryHandler {
	return GetBundlesQueryHandler{db: db}
}

// Handle executes the query to retrieve recent bundles.
// Returns bundle summaries newest first with the stop count derived from the
// stop rows, capped at the query limit.
func (h GetBundlesQueryHandler) Handle(
	ctx context.Context,
	query GetBundlesQuery,
) ([]GetBundlesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	bundles := make([]GetBundlesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			b.id,
			b.store_id,
			b.driver_id,
			count(s.order_id) AS stop_count,
			b.total_distance_km,
			b.estimated_duration_min,
			b.total_value,
			b.status,
			b.created_at
		FROM bundles b
		LEFT JOIN bundle_stops s ON s.bundle_id = b.id
		GROUP BY b.id
		ORDER BY b.created_at DESC
		LIMIT ?
	`, query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var bundleResp GetBundlesQueryResponse
		var id, storeID uuid.UUID
		var driverID *uuid.UUID

		err = rows.Scan(
			&id,
			&storeID,
			&driverID,
			&bundleResp.StopCount,
			&bundleResp.TotalDistanceKm,
			&bundleResp.EstimatedDurationMin,
			&bundleResp.TotalValue,
			&bundleResp.Status,
			&bundleResp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		bundleID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		bundleResp.ID = bundleID

		bundleStoreID, idErr := kernel.UUIDFromBytes(storeID[:])
		if idErr != nil {
			return nil, idErr
		}
		bundleResp.StoreID = bundleStoreID

		if driverID != nil {
			bundleDriverID, idErr := kernel.UUIDFromBytes(driverID[:])
			if idErr != nil {
				return nil, idErr
			}
			bundleResp.DriverID = &bundleDriverID
		}

		bundles = append(bundles, bundleResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return bundles, nil
}
