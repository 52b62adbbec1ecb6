package services_test

import (
	"testing"
	"time"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/kernel"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/order"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var placedAt = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func geoPoint(t *testing.T, lat, lon float64) kernel.GeoPoint {
	t.Helper()
	p, err := kernel.NewGeoPoint(lat, lon)
	require.NoError(t, err)
	return p
}

func orderAt(t *testing.T, storeID kernel.UUID, lat, lon float64, createdAt time.Time) *order.Order {
	t.Helper()
	charges, err := order.NewCharges(20.00, 1.75, 5.99, 3.00)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), storeID,
		geoPoint(t, lat, lon), 4, charges, createdAt)
	require.NoError(t, err)
	return o
}

func defaultPlanner(t *testing.T) services.RoutePlanner {
	t.Helper()
	planner, err := services.NewRoutePlanner(services.DefaultAvgSpeedKmh, services.DefaultStopServiceMin)
	require.NoError(t, err)
	return planner
}

func TestNewRoutePlanner(t *testing.T) {
	t.Run("should reject non-positive speed", func(t *testing.T) {
		_, err := services.NewRoutePlanner(0, 5)
		require.Error(t, err)

		_, err = services.NewRoutePlanner(-10, 5)
		require.Error(t, err)
	})

	t.Run("should reject negative stop service time", func(t *testing.T) {
		_, err := services.NewRoutePlanner(25, -1)
		require.Error(t, err)
	})

	t.Run("should accept zero stop service time", func(t *testing.T) {
		_, err := services.NewRoutePlanner(25, 0)
		require.NoError(t, err)
	})
}

func TestRoutePlanner_PlanRoute(t *testing.T) {
	planner := defaultPlanner(t)
	storeID := kernel.NewUUID()
	storeLoc := geoPoint(t, 37.7749, -122.4194)

	t.Run("should return empty route for no orders", func(t *testing.T) {
		route, err := planner.PlanRoute(storeLoc, nil)

		require.NoError(t, err)
		assert.Empty(t, route.Orders)
		assert.Zero(t, route.TotalDistanceKm)
		assert.Zero(t, route.EstimatedDurationMin)
	})

	t.Run("should visit nearest stop first", func(t *testing.T) {
		// far order is roughly twice as distant from the store as near.
		near := orderAt(t, storeID, 37.7849, -122.4194, placedAt)
		far := orderAt(t, storeID, 37.8049, -122.4194, placedAt)

		route, err := planner.PlanRoute(storeLoc, []*order.Order{far, near})

		require.NoError(t, err)
		require.Len(t, route.Orders, 2)
		assert.True(t, route.Orders[0].IsEqual(near))
		assert.True(t, route.Orders[1].IsEqual(far))
	})

	t.Run("should chain from each visited stop", func(t *testing.T) {
		// a is closest to the store, c is closest to a, b is closest to c.
		a := orderAt(t, storeID, 37.7790, -122.4194, placedAt)
		b := orderAt(t, storeID, 37.8100, -122.4194, placedAt)
		c := orderAt(t, storeID, 37.7950, -122.4194, placedAt)

		route, err := planner.PlanRoute(storeLoc, []*order.Order{a, b, c})

		require.NoError(t, err)
		require.Len(t, route.Orders, 3)
		assert.True(t, route.Orders[0].IsEqual(a))
		assert.True(t, route.Orders[1].IsEqual(c))
		assert.True(t, route.Orders[2].IsEqual(b))
	})

	t.Run("should keep first-found order on exact distance ties", func(t *testing.T) {
		// Two stops at the same coordinates are equidistant from everywhere.
		first := orderAt(t, storeID, 37.7800, -122.4194, placedAt)
		second := orderAt(t, storeID, 37.7800, -122.4194, placedAt)

		route, err := planner.PlanRoute(storeLoc, []*order.Order{first, second})

		require.NoError(t, err)
		require.Len(t, route.Orders, 2)
		assert.True(t, route.Orders[0].IsEqual(first))
		assert.True(t, route.Orders[1].IsEqual(second))
	})

	t.Run("should sum leg distances", func(t *testing.T) {
		a := orderAt(t, storeID, 37.7849, -122.4194, placedAt)
		b := orderAt(t, storeID, 37.7949, -122.4194, placedAt)

		route, err := planner.PlanRoute(storeLoc, []*order.Order{a, b})

		require.NoError(t, err)
		legStoreToA, err := storeLoc.DistanceKm(a.DeliveryLocation())
		require.NoError(t, err)
		legAToB, err := a.DeliveryLocation().DistanceKm(b.DeliveryLocation())
		require.NoError(t, err)
		assert.InDelta(t, legStoreToA+legAToB, route.TotalDistanceKm, 0.0001)
	})

	t.Run("should not modify the input slice", func(t *testing.T) {
		near := orderAt(t, storeID, 37.7849, -122.4194, placedAt)
		far := orderAt(t, storeID, 37.8049, -122.4194, placedAt)
		input := []*order.Order{far, near}

		_, err := planner.PlanRoute(storeLoc, input)

		require.NoError(t, err)
		assert.True(t, input[0].IsEqual(far))
		assert.True(t, input[1].IsEqual(near))
	})

	t.Run("should reject unconstructed start point", func(t *testing.T) {
		_, err := planner.PlanRoute(kernel.GeoPoint{}, nil)

		require.Error(t, err)
	})
}

func TestRoutePlanner_EstimateDurationMin(t *testing.T) {
	planner := defaultPlanner(t)

	t.Run("should combine travel and stop service time", func(t *testing.T) {
		// 10 km at 25 km/h is 24 minutes, plus 3 stops at 5 minutes each.
		assert.InDelta(t, 39.0, planner.EstimateDurationMin(10, 3), 0.0001)
	})

	t.Run("zero-distance route still costs stop time", func(t *testing.T) {
		assert.InDelta(t, 5.0, planner.EstimateDurationMin(0, 1), 0.0001)
	})
}
