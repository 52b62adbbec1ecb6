package generators

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/geozone"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/kernel"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/store"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/pkg/errs"
)

const (
	// storeActiveRate is the share of stores accepting orders.
	storeActiveRate = 0.95

	// storeSpreadDeg is the coordinate jitter around a zone center for store
	// locations. Tighter than customers since stores sit in commercial areas.
	storeSpreadDeg = 0.03

	storeMinAgeDays = 30
	storeMaxAgeDays = 1825
)

var (
	storePrefixes = []string{
		"Fresh", "Green", "Quick", "Daily", "Local", "Urban",
		"Metro", "City", "Corner", "Village", "Market", "Prime",
		"Super", "Mega", "Express", "Smart", "Value", "Choice",
	}

	storeSuffixes = []string{
		"Market", "Grocery", "Foods", "Mart", "Shop", "Store",
		"Provisions", "Pantry", "Basket", "Cart", "Goods", "Fare",
	}

	streetNames = []string{
		"Main St", "Market St", "Broadway", "Mission St", "Valencia St",
		"Castro St", "Fillmore St", "Divisadero St", "Geary Blvd", "Clement St",
		"San Pablo Ave", "Telegraph Ave", "Shattuck Ave", "College Ave",
		"El Camino Real", "University Ave", "California Ave", "Middlefield Rd",
	}

	// hourPresets are the operating hour patterns stores pick from.
	hourPresets = []struct{ open, close int }{
		{6, 22},
		{7, 23},
		{5, 21},
		{0, 24},
		{8, 20},
	}
)

// StoreGenerator produces synthetic grocery stores clustered around the
// delivery zones.
type StoreGenerator struct {
	rng       *rand.Rand
	zones     *geozone.Registry
	usedNames map[string]bool
	now       func() time.Time
}

// NewStoreGenerator creates a seeded store generator.
func NewStoreGenerator(seed uint64, zones *geozone.Registry) (*StoreGenerator, error) {
	if zones == nil {
		return nil, errs.NewValueIsRequiredError("zones")
	}

	return &StoreGenerator{
		rng:       rand.New(rand.NewSource(int64(seed))), //nolint:gosec //deterministic simulation data
		zones:     zones,
		usedNames: make(map[string]bool),
		now:       time.Now,
	}, nil
}

// Stores generates the requested number of stores.
// Names are unique across the generator's lifetime, locations cluster
// tightly around zone centers, and 95 percent of stores start out active.
func (g *StoreGenerator) Stores(count int) ([]*store.Store, error) {
	stores := make([]*store.Store, 0, count)

	for range count {
		zone := pickZone(g.rng, g.zones.Zones())
		location, err := jitterPoint(g.rng, zone.Center(), storeSpreadDeg)
		if err != nil {
			return nil, err
		}

		preset := hourPresets[g.rng.Intn(len(hourPresets))]
		hours, err := store.NewHours(preset.open, preset.close)
		if err != nil {
			return nil, err
		}

		ageDays := storeMinAgeDays + g.rng.Intn(storeMaxAgeDays-storeMinAgeDays+1)

		s, err := store.NewStore(
			kernel.NewUUID(),
			g.uniqueName(),
			g.address(zone),
			location,
			hours,
			g.rng.Float64() < storeActiveRate,
			g.now().AddDate(0, 0, -ageDays),
		)
		if err != nil {
			return nil, err
		}

		stores = append(stores, s)
	}

	return stores, nil
}

// uniqueName combines a prefix and suffix, retrying on collisions and
// falling back to a numbered name when the combination space is exhausted.
func (g *StoreGenerator) uniqueName() string {
	for range 100 {
		name := fmt.Sprintf("%s %s",
			storePrefixes[g.rng.Intn(len(storePrefixes))],
			storeSuffixes[g.rng.Intn(len(storeSuffixes))])
		if !g.usedNames[name] {
			g.usedNames[name] = true
			return name
		}
	}

	return fmt.Sprintf("%s %s #%d",
		storePrefixes[g.rng.Intn(len(storePrefixes))],
		storeSuffixes[g.rng.Intn(len(storeSuffixes))],
		g.rng.Intn(999)+1)
}

func (g *StoreGenerator) address(zone geozone.Zone) string {
	return fmt.Sprintf("%d %s, %s, %s",
		g.rng.Intn(9900)+100,
		streetNames[g.rng.Intn(len(streetNames))],
		zone.City(),
		zone.State())
}
