package generators

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/driver"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/geozone"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/kernel"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/pkg/errs"

	"github.com/brianvoe/gofakeit/v7"
)

const (
	// driverActiveRate is the share of drivers available for assignments.
	driverActiveRate = 0.85

	// driverSpreadDeg is the coordinate jitter around a zone center for
	// driver home locations. Wider than customers since drivers roam.
	driverSpreadDeg = 0.1

	// driverMaxAgeDays bounds how far back driver signups reach.
	driverMaxAgeDays = 1095
)

// vehicleWeights is the fleet mix. Weights sum to 1.
var vehicleWeights = []struct {
	vehicle driver.Vehicle
	weight  float64
}{
	{driver.VehicleSedan, 0.40},
	{driver.VehicleSUV, 0.25},
	{driver.VehicleHatchback, 0.20},
	{driver.VehicleTruck, 0.10},
	{driver.VehicleVan, 0.05},
}

// DriverGenerator produces synthetic drivers spread across the delivery zones.
type DriverGenerator struct {
	faker *gofakeit.Faker
	rng   *rand.Rand
	zones *geozone.Registry
	now   func() time.Time
}

// NewDriverGenerator creates a seeded driver generator.
func NewDriverGenerator(seed uint64, zones *geozone.Registry) (DriverGenerator, error) {
	if zones == nil {
		return DriverGenerator{}, errs.NewValueIsRequiredError("zones")
	}

	return DriverGenerator{
		faker: gofakeit.New(seed),
		rng:   rand.New(rand.NewSource(int64(seed))), //nolint:gosec //deterministic simulation data
		zones: zones,
		now:   time.Now,
	}, nil
}

// Drivers generates the requested number of drivers.
// Vehicle types follow the fleet mix, ratings skew toward the top of the
// 4.0 to 5.0 band, and 85 percent of drivers start out active.
func (g DriverGenerator) Drivers(count int) ([]*driver.Driver, error) {
	drivers := make([]*driver.Driver, 0, count)

	for range count {
		zone := pickZone(g.rng, g.zones.Zones())
		location, err := jitterPoint(g.rng, zone.Center(), driverSpreadDeg)
		if err != nil {
			return nil, err
		}

		createdAt := g.now().AddDate(0, 0, -g.rng.Intn(driverMaxAgeDays+1))

		d, err := driver.NewDriver(
			kernel.NewUUID(),
			g.faker.Name(),
			g.faker.Phone(),
			g.pickVehicle(),
			g.rating(),
			location,
			g.rng.Float64() < driverActiveRate,
			createdAt,
		)
		if err != nil {
			return nil, err
		}
		d.SetLicensePlate(g.licensePlate())

		drivers = append(drivers, d)
	}

	return drivers, nil
}

// licensePlate builds a plate in the digit, three letters, three digits
// format common to the covered metros.
func (g DriverGenerator) licensePlate() string {
	letters := make([]byte, 3)
	for i := range letters {
		letters[i] = byte('A' + g.rng.Intn(26))
	}

	return fmt.Sprintf("%d%s%03d", 1+g.rng.Intn(9), letters, g.rng.Intn(1000))
}

func (g DriverGenerator) pickVehicle() driver.Vehicle {
	r := g.rng.Float64()
	for _, vw := range vehicleWeights {
		r -= vw.weight
		if r <= 0 {
			return vw.vehicle
		}
	}
	return vehicleWeights[len(vehicleWeights)-1].vehicle
}

// rating draws 4.0 plus a Beta(5,2) sample, realized as the 5th order
// statistic of six uniform draws, rounded to two decimals.
func (g DriverGenerator) rating() float64 {
	draws := make([]float64, 6)
	for i := range draws {
		draws[i] = g.rng.Float64()
	}
	sort.Float64s(draws)

	rating := 4.0 + draws[4]
	return math.Min(5.0, math.Round(rating*100)/100)
}
