package geozone

import (
	"errors"
	"fmt"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/kernel"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/pkg/errs"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/pkg/guard"
)

// ErrZoneIsNotConstructed is returned when attempting to use an improperly
// initialized Zone. Zones must be created via NewZone.
var ErrZoneIsNotConstructed = errs.NewValueIsRequiredError(
	"zone must be created via NewZone constructor")

// Zone is a named circular delivery area: everything within RadiusKm of the
// center belongs to the zone. Weight expresses the zone's relative share of
// generated demand and is only meaningful next to the other zones in a
// registry. Zone is an immutable value object.
type Zone struct { //nolint:recvcheck //using for validation
	city     string
	state    string
	center   kernel.GeoPoint
	radiusKm float64
	weight   float64
	guard    guard.ConstructorGuard
}

// NewZone creates a Zone with the given name, center and radius.
// City must be non-empty, radius and weight must be positive.
func NewZone(city string, state string, center kernel.GeoPoint, radiusKm float64, weight float64) (Zone, error) {
	z := Zone{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		z.setCity(city),
		z.setState(state),
		z.setCenter(center),
		z.setRadiusKm(radiusKm),
		z.setWeight(weight),
	); err != nil {
		return Zone{}, err
	}

	return z, nil
}

// Validate checks that the Zone was created via NewZone.
func (z Zone) Validate() error {
	return z.guard.Validate(ErrZoneIsNotConstructed)
}

// City returns the zone's city name, which also serves as its identity:
// two points are in the same zone when their zones carry the same city.
func (z Zone) City() string {
	return z.city
}

// State returns the two-letter state code.
func (z Zone) State() string {
	return z.state
}

// Center returns the zone's center point.
func (z Zone) Center() kernel.GeoPoint {
	return z.center
}

// RadiusKm returns the zone radius in kilometers.
func (z Zone) RadiusKm() float64 {
	return z.radiusKm
}

// Weight returns the zone's relative demand weight.
func (z Zone) Weight() float64 {
	return z.weight
}

// String implements fmt.Stringer as "Zone(city, radius km)".
func (z Zone) String() string {
	return fmt.Sprintf("Zone(%s, %.1f km)", z.city, z.radiusKm)
}

// Contains reports whether p lies within the zone, that is whether the
// great-circle distance from the zone center to p is at most the radius.
func (z Zone) Contains(p kernel.GeoPoint) (bool, error) {
	if err := errors.Join(z.Validate(), p.Validate()); err != nil {
		return false, err
	}

	d, err := z.center.DistanceKm(p)
	if err != nil {
		return false, err
	}

	return d <= z.radiusKm, nil
}

func (z *Zone) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	z.city = city
	return nil
}

func (z *Zone) setState(state string) error {
	if state == "" {
		return errs.NewValueIsRequiredError("state")
	}
	z.state = state
	return nil
}

func (z *Zone) setCenter(center kernel.GeoPoint) error {
	if err := center.Validate(); err != nil {
		return err
	}
	z.center = center
	return nil
}

func (z *Zone) setRadiusKm(radiusKm float64) error {
	if radiusKm <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("radiusKm",
			fmt.Errorf("%f is not greater than 0", radiusKm))
	}
	z.radiusKm = radiusKm
	return nil
}

func (z *Zone) setWeight(weight float64) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%f is not greater than 0", weight))
	}
	z.weight = weight
	return nil
}
