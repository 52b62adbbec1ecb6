package queries

import (
	"context"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/kernel"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUnbundledOrdersQueryHandler retrieves the bundling queue from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetUnbundledOrdersQueryHandler(db)
//	query := NewGetUnbundledOrdersQuery()
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get order queue: %v", err)
//	    return err
//	}
//
//	fmt.Printf("%d orders waiting\n", len(orders))
type GetUnbundledOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUnbundledOrdersQueryHandler creates a handler for bundling queue queries.
// Requires a GORM database connection for query execution.
func NewGetUnbundledOrdersQueryHandler(db *gorm.DB) GetUnbundledOrdersQueryHandler {
	return GetUnbundledOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all unbundled orders.
// Returns orders in pending or confirmed status, oldest first, so the view
// matches the order in which the next bundling pass will consider them.
func (h GetUnbundledOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUnbundledOrdersQuery,
) ([]GetUnbundledOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetUnbundledOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			store_id,
			delivery_lat,
			delivery_lon,
			item_count,
			total,
			status,
			created_at
		FROM orders
		WHERE status IN (?, ?)
		ORDER BY created_at
	`, order.Pending.String(), order.Confirmed.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetUnbundledOrdersQueryResponse
		var lat, lon float64
		var id, storeID uuid.UUID

		err = rows.Scan(
			&id,
			&storeID,
			&lat,
			&lon,
			&orderResp.ItemCount,
			&orderResp.Total,
			&orderResp.Status,
			&orderResp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID

		orderStoreID, idErr := kernel.UUIDFromBytes(storeID[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.StoreID = orderStoreID

		location, locErr := kernel.NewGeoPoint(lat, lon)
		if locErr != nil {
			return nil, locErr
		}
		orderResp.DeliveryLocation = location
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
