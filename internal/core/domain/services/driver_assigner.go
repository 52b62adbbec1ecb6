package services

import (
	"math"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/bundle"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/driver"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/geozone"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/pkg/errs"
)

// DriverAssigner is a domain service that matches available drivers to
// freshly built bundles.
//
// Key responsibilities:
//   - Filtering candidates to the bundle centroid's geographic zone
//   - Falling back to the full available pool when the zone has no drivers
//   - Selecting the nearest candidate to the bundle centroid
//
// Business rules:
//   - Only active drivers are candidates
//   - Zone-local drivers are preferred over out-of-zone drivers
//   - The nearest candidate wins; the first-found driver wins exact ties
//   - A bundle with no candidate at all stays unassigned
//   - Drivers are not removed from the pool within one pass; a driver may
//     be the nearest candidate for several bundles built in the same pass
type DriverAssigner struct {
	zones *geozone.Registry
}

// NewDriverAssigner creates a DriverAssigner using the given zone registry
// for zone-local candidate filtering.
func NewDriverAssigner(zones *geozone.Registry) (DriverAssigner, error) {
	if zones == nil {
		return DriverAssigner{}, errs.NewValueIsRequiredError("zones")
	}
	return DriverAssigner{zones: zones}, nil
}

// AssignDrivers matches drivers to every unassigned bundle in bundles.
//
// Parameters:
//   - bundles: Bundles to assign; already-assigned bundles are skipped
//   - drivers: The available driver pool (each must be valid)
//
// Returns:
//   - The number of bundles that received a driver
//   - error if a bundle or driver fails validation or a distance
//     computation fails
//
// Bundles for which no candidate exists are left unassigned and do not
// cause an error.
func (a DriverAssigner) AssignDrivers(bundles []*bundle.Bundle, drivers []*driver.Driver) (int, error) {
	active := make([]*driver.Driver, 0, len(drivers))
	for _, d := range drivers {
		if err := d.Validate(); err != nil {
			return 0, err
		}
		if d.IsActive() {
			active = append(active, d)
		}
	}

	assigned := 0
	for _, b := range bundles {
		if err := b.Validate(); err != nil {
			return assigned, err
		}
		if b.Driver() != nil {
			continue
		}

		best, err := a.findBestDriver(b, active)
		if err != nil {
			return assigned, err
		}
		if best == nil {
			continue
		}

		if err := b.AssignDriver(best.ID()); err != nil {
			return assigned, err
		}
		assigned++
	}

	return assigned, nil
}

// findBestDriver picks the nearest candidate to the bundle's centroid.
// Candidates in the centroid's zone are considered first; only when the
// zone has no candidates does the search widen to the whole pool. Returns
// nil when the pool is empty.
func (a DriverAssigner) findBestDriver(b *bundle.Bundle, pool []*driver.Driver) (*driver.Driver, error) {
	candidates, err := a.zoneCandidates(b, pool)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		candidates = pool
	}

	var (
		best     *driver.Driver
		bestDist = math.MaxFloat64
	)
	for _, d := range candidates {
		dist, err := d.DistanceKmTo(b.Centroid())
		if err != nil {
			return nil, err
		}
		if dist < bestDist {
			bestDist = dist
			best = d
		}
	}

	return best, nil
}

// zoneCandidates returns the drivers whose current position falls in the
// same zone as the bundle's centroid. When the centroid lies outside every
// zone the result is empty and the caller falls back to the full pool.
func (a DriverAssigner) zoneCandidates(b *bundle.Bundle, pool []*driver.Driver) ([]*driver.Driver, error) {
	zone, err := a.zones.ZoneFor(b.Centroid())
	if err != nil {
		return nil, err
	}
	if zone == nil {
		return nil, nil
	}

	var candidates []*driver.Driver
	for _, d := range pool {
		driverZone, err := a.zones.ZoneFor(d.Location())
		if err != nil {
			return nil, err
		}
		if driverZone != nil && driverZone.City() == zone.City() {
			candidates = append(candidates, d)
		}
	}

	return candidates, nil
}
