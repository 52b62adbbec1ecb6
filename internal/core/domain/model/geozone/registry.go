package geozone

import (
	"errors"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/kernel"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/pkg/errs"
)

// ErrNoZones is returned when constructing a registry without any zones.
var ErrNoZones = errs.NewValueIsRequiredError("at least one zone is required")

// Registry resolves coordinates to delivery zones.
//
// Zones may overlap geographically. Resolution is first-match-wins in the
// order zones were declared; this ordering is part of the registry's
// contract and must not be changed without revisiting every caller that
// relies on deterministic containment.
type Registry struct {
	zones []Zone
}

// NewRegistry creates a registry over the given zones, preserving their
// declared order for containment resolution.
func NewRegistry(zones ...Zone) (*Registry, error) {
	if len(zones) == 0 {
		return nil, ErrNoZones
	}

	for _, z := range zones {
		if err := z.Validate(); err != nil {
			return nil, err
		}
	}

	return &Registry{zones: zones}, nil
}

// ZoneFor returns the first declared zone containing p, or nil when p lies
// outside every zone.
func (r *Registry) ZoneFor(p kernel.GeoPoint) (*Zone, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	for i := range r.zones {
		inside, err := r.zones[i].Contains(p)
		if err != nil {
			return nil, err
		}
		if inside {
			return &r.zones[i], nil
		}
	}

	return nil, nil
}

// SameZone reports whether both points resolve to zones with the same city.
// Points outside every zone are never in the same zone as anything.
func (r *Registry) SameZone(a kernel.GeoPoint, b kernel.GeoPoint) (bool, error) {
	if err := errors.Join(a.Validate(), b.Validate()); err != nil {
		return false, err
	}

	zoneA, err := r.ZoneFor(a)
	if err != nil {
		return false, err
	}
	zoneB, err := r.ZoneFor(b)
	if err != nil {
		return false, err
	}

	if zoneA == nil || zoneB == nil {
		return false, nil
	}

	return zoneA.City() == zoneB.City(), nil
}

// Zones returns the registered zones in declaration order.
func (r *Registry) Zones() []Zone {
	out := make([]Zone, len(r.zones))
	copy(out, r.zones)
	return out
}

// mustZone builds a zone from literal data for the default registry.
// Panics on invalid literals, which indicates a programming error.
func mustZone(city string, state string, lat float64, lon float64, radiusKm float64, weight float64) Zone {
	center, err := kernel.NewGeoPoint(lat, lon)
	if err != nil {
		panic(err)
	}
	z, err := NewZone(city, state, center, radiusKm, weight)
	if err != nil {
		panic(err)
	}
	return z
}

// DefaultRegistry returns the built-in registry of six metro delivery zones.
// Radii approximate each city's deliverable core; weights sum to 1 and bias
// synthetic demand toward the larger markets.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(
		mustZone("San Francisco", "CA", 37.7749, -122.4194, 8.0, 0.20),
		mustZone("Seattle", "WA", 47.6062, -122.3321, 10.0, 0.18),
		mustZone("New York", "NY", 40.7128, -74.0060, 12.0, 0.25),
		mustZone("Cincinnati", "OH", 39.1031, -84.5120, 9.0, 0.12),
		mustZone("Dallas", "TX", 32.7767, -96.7970, 15.0, 0.15),
		mustZone("San Jose", "CA", 37.3382, -121.8863, 10.0, 0.10),
	)
	if err != nil {
		panic(err)
	}
	return r
}
