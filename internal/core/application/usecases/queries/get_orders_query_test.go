package queries_test

import (
	"testing"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrdersQuery(t *testing.T) {
	query, err := queries.NewGetOrdersQuery("delivered", 100)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, "delivered", query.Status())
	assert.Equal(t, 100, query.Limit())
}

func TestNewGetOrdersQuery_EmptyStatusMeansNoFilter(t *testing.T) {
	query, err := queries.NewGetOrdersQuery("", 10)

	require.NoError(t, err)
	assert.Empty(t, query.Status())
}

func TestNewGetOrdersQuery_InvalidLimit(t *testing.T) {
	_, err := queries.NewGetOrdersQuery("pending", 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrLimitIsInvalid)
}

func TestGetOrdersQuery_Validate_NotConstructed(t *testing.T) {
	var query queries.GetOrdersQuery

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrdersQueryIsNotConstructed)
}
