package queries

import (
	"errors"
	"time"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/kernel"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// GetOrdersQuery retrieves recent orders, optionally filtered by status.
// An empty status filter returns orders in every status.
//
// Example:
//
//	query, err := NewGetOrdersQuery("delivered", 100)
//	if err != nil {
//	    return err
//	}
//
//	orders, err := handler.Handle(ctx, query)
//	for _, o := range orders {
//	    fmt.Printf("Order %s: %s\n", o.ID, o.Status)
//	}
type GetOrdersQuery struct { //nolint:recvcheck //using for validation
	status string
	limit  int

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query to retrieve the most recent orders.
//
// Parameters:
//   - status: The status to filter on, or empty for all statuses
//   - limit: The maximum number of orders to return (must be positive)
//
// Returns ErrLimitIsInvalid when limit is not positive.
func NewGetOrdersQuery(status string, limit int) (GetOrdersQuery, error) {
	query := GetOrdersQuery{guard: guard.NewConstructorGuard()}
	query.status = status

	if err := query.setLimit(limit); err != nil {
		return GetOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Status returns the status filter, empty when no filter applies.
func (q GetOrdersQuery) Status() string {
	return q.status
}

// Limit returns the maximum number of orders the query retrieves.
func (q GetOrdersQuery) Limit() int {
	return q.limit
}

func (q *GetOrdersQuery) setLimit(limit int) error {
	if limit <= 0 {
		return ErrLimitIsInvalid
	}

	q.limit = limit
	return nil
}

// GetOrdersQueryResponse represents an order in the read model.
// Lifecycle timestamps are nil until the order reaches the matching state.
type GetOrdersQueryResponse struct {
	ID          kernel.UUID
	CustomerID  kernel.UUID
	StoreID     kernel.UUID
	ItemCount   int
	Total       float64
	Status      string
	CreatedAt   time.Time
	DeliveredAt *time.Time
}
