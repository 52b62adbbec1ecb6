package queries_test

import (
	"testing"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetBundleStatsQuery(t *testing.T) {
	query := queries.NewGetBundleStatsQuery()

	require.NoError(t, query.Validate())
}

func TestGetBundleStatsQuery_Validate_NotConstructed(t *testing.T) {
	var query queries.GetBundleStatsQuery

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetBundleStatsQueryIsNotConstructed)
}
