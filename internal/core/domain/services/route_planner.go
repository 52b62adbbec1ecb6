package services

import (
	"math"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/kernel"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/order"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/pkg/errs"
)

const (
	// DefaultAvgSpeedKmh is the assumed average driving speed in urban areas.
	DefaultAvgSpeedKmh = 25.0
	// DefaultStopServiceMin is the assumed per-stop service time in minutes
	// (parking, walking up, handoff).
	DefaultStopServiceMin = 5.0
)

// Route is the result of planning a delivery tour: the orders in visiting
// sequence together with the route metrics.
type Route struct {
	// Orders holds the input orders reordered into visiting sequence.
	Orders []*order.Order
	// TotalDistanceKm is the driven distance from the start point through
	// every stop, in kilometers.
	TotalDistanceKm float64
	// EstimatedDurationMin is the travel time at average speed plus the
	// per-stop service time, in minutes.
	EstimatedDurationMin float64
}

// RoutePlanner is a domain service that orders delivery stops into an
// efficient tour and estimates its distance and duration.
//
// The planner uses the nearest-neighbor heuristic: starting at the store it
// repeatedly visits the closest unvisited stop. Distances are great-circle
// distances; the heuristic keeps the first-found stop when two stops are
// exactly equidistant, making the tour deterministic for a given input
// order.
//
// Business rules:
//   - The tour starts at the store; the driver does not return to it
//   - Duration = distance / average speed + stops * per-stop service time
type RoutePlanner struct {
	avgSpeedKmh    float64
	stopServiceMin float64
}

// NewRoutePlanner creates a RoutePlanner with the given speed and per-stop
// service time assumptions.
//
// Parameters:
//   - avgSpeedKmh: Average driving speed in km/h (must be positive)
//   - stopServiceMin: Service time per stop in minutes (must be non-negative)
//
// Returns:
//   - RoutePlanner ready for use, or error if a parameter is out of range
func NewRoutePlanner(avgSpeedKmh, stopServiceMin float64) (RoutePlanner, error) {
	if avgSpeedKmh <= 0 {
		return RoutePlanner{}, errs.NewValueIsOutOfRangeError("avgSpeedKmh", avgSpeedKmh, 0, math.MaxFloat64)
	}
	if stopServiceMin < 0 {
		return RoutePlanner{}, errs.NewValueIsOutOfRangeError("stopServiceMin", stopServiceMin, 0, math.MaxFloat64)
	}

	return RoutePlanner{avgSpeedKmh: avgSpeedKmh, stopServiceMin: stopServiceMin}, nil
}

// PlanRoute arranges the given orders into a nearest-neighbor tour starting
// at start and computes the route metrics.
//
// Parameters:
//   - start: The tour origin, normally the store's location
//   - orders: The orders to visit (each must be valid)
//
// Returns:
//   - Route with orders in visiting sequence and computed metrics
//   - error if start or any order fails validation
//
// An empty order slice yields an empty route with zero metrics. The input
// slice is not modified.
func (p RoutePlanner) PlanRoute(start kernel.GeoPoint, orders []*order.Order) (Route, error) {
	if err := start.Validate(); err != nil {
		return Route{}, err
	}
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return Route{}, err
		}
	}

	if len(orders) == 0 {
		return Route{Orders: []*order.Order{}}, nil
	}

	remaining := make([]*order.Order, len(orders))
	copy(remaining, orders)

	tour := make([]*order.Order, 0, len(orders))
	totalDistance := 0.0
	current := start

	for len(remaining) > 0 {
		bestIdx := 0
		bestDist := math.MaxFloat64

		for i, o := range remaining {
			dist, err := current.DistanceKm(o.DeliveryLocation())
			if err != nil {
				return Route{}, err
			}
			if dist < bestDist {
				bestDist = dist
				bestIdx = i
			}
		}

		next := remaining[bestIdx]
		tour = append(tour, next)
		totalDistance += bestDist
		current = next.DeliveryLocation()
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}

	return Route{
		Orders:               tour,
		TotalDistanceKm:      totalDistance,
		EstimatedDurationMin: p.EstimateDurationMin(totalDistance, len(tour)),
	}, nil
}

// EstimateDurationMin computes the time estimate for a route of the given
// length and stop count: travel time at average speed plus per-stop service
// time.
func (p RoutePlanner) EstimateDurationMin(distanceKm float64, stops int) float64 {
	return distanceKm/p.avgSpeedKmh*60 + float64(stops)*p.stopServiceMin
}
