// Package generators produces synthetic marketplace entities for the
// simulation. Every generator is seeded explicitly so a fixed seed yields the
// same sequence of entities, which keeps test fixtures and demo datasets
// reproducible.
package generators

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/customer"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/geozone"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/kernel"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/pkg/errs"

	"github.com/brianvoe/gofakeit/v7"
)

const (
	// DefaultSeed seeds generators when no explicit seed is configured.
	DefaultSeed = 42

	// premiumRate is the share of customers holding a premium subscription.
	premiumRate = 0.25

	// customerSpreadDeg is the coordinate jitter around a zone center for
	// customer home locations, in degrees.
	customerSpreadDeg = 0.05

	// customerMaxAgeDays bounds how far back customer signups reach.
	customerMaxAgeDays = 730
)

// CustomerGenerator produces synthetic customers clustered around the
// delivery zones.
type CustomerGenerator struct {
	faker *gofakeit.Faker
	rng   *rand.Rand
	zones *geozone.Registry
	now   func() time.Time
}

// NewCustomerGenerator creates a seeded customer generator.
//
// Parameters:
//   - seed: The deterministic seed for identity and placement
//   - zones: The delivery zones customers are placed in (must not be nil)
func NewCustomerGenerator(seed uint64, zones *geozone.Registry) (CustomerGenerator, error) {
	if zones == nil {
		return CustomerGenerator{}, errs.NewValueIsRequiredError("zones")
	}

	return CustomerGenerator{
		faker: gofakeit.New(seed),
		rng:   rand.New(rand.NewSource(int64(seed))), //nolint:gosec //deterministic simulation data
		zones: zones,
		now:   time.Now,
	}, nil
}

// Customers generates the requested number of customers.
// Each customer lands inside a zone chosen by zone weight, with a home
// location jittered around the zone center and a signup date within the
// last two years.
func (g CustomerGenerator) Customers(count int) ([]*customer.Customer, error) {
	customers := make([]*customer.Customer, 0, count)

	for range count {
		id := kernel.NewUUID()
		zone := pickZone(g.rng, g.zones.Zones())
		location, err := jitterPoint(g.rng, zone.Center(), customerSpreadDeg)
		if err != nil {
			return nil, err
		}

		name := g.faker.Name()
		createdAt := g.now().AddDate(0, 0, -g.rng.Intn(customerMaxAgeDays+1))

		c, err := customer.NewCustomer(
			id,
			name,
			uniqueEmail(g.faker, name, id),
			g.faker.Phone(),
			fmt.Sprintf("%s, %s, %s", g.faker.Street(), zone.City(), zone.State()),
			location,
			g.rng.Float64() < premiumRate,
			createdAt,
		)
		if err != nil {
			return nil, err
		}

		customers = append(customers, c)
	}

	return customers, nil
}

// uniqueEmail derives a collision-free email from the generated name. The
// UUID fragment keeps emails unique under the database's unique index even
// when names repeat.
func uniqueEmail(faker *gofakeit.Faker, name string, id kernel.UUID) string {
	local := strings.ToLower(strings.ReplaceAll(name, " ", "."))
	return fmt.Sprintf("%s.%s@%s", local, id.String()[:8], faker.DomainName())
}

// pickZone selects a zone proportionally to its demand weight.
func pickZone(rng *rand.Rand, zones []geozone.Zone) geozone.Zone {
	total := 0.0
	for _, z := range zones {
		total += z.Weight()
	}

	r := rng.Float64() * total
	for _, z := range zones {
		r -= z.Weight()
		if r <= 0 {
			return z
		}
	}
	return zones[len(zones)-1]
}

// jitterPoint offsets a point by up to spread degrees on both axes.
func jitterPoint(rng *rand.Rand, center kernel.GeoPoint, spread float64) (kernel.GeoPoint, error) {
	lat := center.Latitude() + (rng.Float64()*2-1)*spread
	lon := center.Longitude() + (rng.Float64()*2-1)*spread
	return kernel.NewGeoPoint(lat, lon)
}
