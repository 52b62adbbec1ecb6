package queries

import (
	"context"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves order read models from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order list queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve recent orders.
// Returns orders newest first, filtered by status when the query carries one,
// capped at the query limit.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			customer_id,
			store_id,
			item_count,
			total,
			status,
			created_at,
			delivered_at
		FROM orders
	`
	args := make([]any, 0, 2)
	if query.Status() != "" {
		sql += " WHERE status = ?"
		args = append(args, query.Status())
	}
	sql += " ORDER BY created_at DESC LIMIT ?"
	args = append(args, query.Limit())

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetOrdersQueryResponse, 0)
	for rows.Next() {
		var orderResp GetOrdersQueryResponse
		var id, customerID, storeID uuid.UUID

		err = rows.Scan(
			&id,
			&customerID,
			&storeID,
			&orderResp.ItemCount,
			&orderResp.Total,
			&orderResp.Status,
			&orderResp.CreatedAt,
			&orderResp.DeliveredAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID

		orderCustomerID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.CustomerID = orderCustomerID

		orderStoreID, idErr := kernel.UUIDFromBytes(storeID[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.StoreID = orderStoreID

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
