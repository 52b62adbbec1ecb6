package services

import (
	"errors"
	"math"
	"sort"
	"time"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/bundle"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/kernel"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/order"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/store"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/pkg/errs"
)

const (
	// DefaultTimeWindow is how far apart two orders' placement times may be
	// and still share a bundle.
	DefaultTimeWindow = 45 * time.Minute
	// DefaultMaxBundleSize is the maximum number of orders per bundle.
	DefaultMaxBundleSize = 6
	// DefaultMaxRadiusKm is the maximum distance from a cluster's centroid
	// at which an order may still join the cluster.
	DefaultMaxRadiusKm = 5.0
	// DefaultDispatchLag is how long after the newest order of a cluster the
	// bundle is considered dispatched. It keeps the bundle's creation time
	// strictly after every member order's placement time.
	DefaultDispatchLag = time.Minute
)

// ErrStoreNotFound is returned when a bundled order references a store that
// was not supplied to the bundler. Bundling cannot plan a route without the
// store's location.
var ErrStoreNotFound = errors.New("store not found")

// Bundler is a domain service that groups unbundled orders into single-store
// delivery bundles using greedy clustering.
//
// Orders are processed oldest first. Each order joins the existing cluster
// whose centroid is nearest among all compatible clusters, or opens a new
// cluster when none is compatible. A cluster is compatible when:
//   - it serves the same store as the order
//   - it has room below the maximum bundle size
//   - the order's placement time is within the time window of the cluster's
//     current earliest-to-latest placement span, so the span slides forward
//     as later orders join
//   - the order's delivery location is within the radius of the cluster's
//     current centroid
//
// Finished clusters are turned into bundles: the route planner arranges the
// stops into a nearest-neighbor tour starting at the store and computes the
// route metrics. The bundle's creation time is the newest member order's
// placement time plus the dispatch lag, so bundle timestamps stay
// physically consistent with their orders.
type Bundler struct {
	timeWindow    time.Duration
	maxBundleSize int
	maxRadiusKm   float64
	dispatchLag   time.Duration
	planner       RoutePlanner
}

// NewBundler creates a Bundler with the given clustering parameters.
//
// Parameters:
//   - timeWindow: How far an order's placement time may fall outside the
//     cluster's current placement span (must be positive)
//   - maxBundleSize: Maximum orders per bundle (must be positive)
//   - maxRadiusKm: Maximum distance from the cluster centroid (must be positive)
//   - dispatchLag: Delay between the newest member order and the bundle's
//     creation time (must be positive)
//   - planner: Route planner used for stop ordering and metrics
//
// Returns:
//   - Bundler ready for use, or error if a parameter is out of range
func NewBundler(
	timeWindow time.Duration,
	maxBundleSize int,
	maxRadiusKm float64,
	dispatchLag time.Duration,
	planner RoutePlanner,
) (Bundler, error) {
	if timeWindow <= 0 {
		return Bundler{}, errs.NewValueIsRequiredError("timeWindow")
	}
	if maxBundleSize <= 0 {
		return Bundler{}, errs.NewValueIsOutOfRangeError("maxBundleSize", maxBundleSize, 1, math.MaxInt32)
	}
	if maxRadiusKm <= 0 {
		return Bundler{}, errs.NewValueIsOutOfRangeError("maxRadiusKm", maxRadiusKm, 0, math.MaxFloat64)
	}
	if dispatchLag <= 0 {
		return Bundler{}, errs.NewValueIsRequiredError("dispatchLag")
	}

	return Bundler{
		timeWindow:    timeWindow,
		maxBundleSize: maxBundleSize,
		maxRadiusKm:   maxRadiusKm,
		dispatchLag:   dispatchLag,
		planner:       planner,
	}, nil
}

// cluster is a working group of orders for one store being assembled into a
// bundle. The centroid is maintained incrementally as orders join.
type cluster struct {
	storeID  kernel.UUID
	orders   []*order.Order
	sumLat   float64
	sumLon   float64
	earliest time.Time
	latest   time.Time
}

func (c *cluster) centroid() (kernel.GeoPoint, error) {
	n := float64(len(c.orders))
	return kernel.NewGeoPoint(c.sumLat/n, c.sumLon/n)
}

func (c *cluster) add(o *order.Order) {
	loc := o.DeliveryLocation()
	c.orders = append(c.orders, o)
	c.sumLat += loc.Latitude()
	c.sumLon += loc.Longitude()
	if o.CreatedAt().Before(c.earliest) {
		c.earliest = o.CreatedAt()
	}
	if o.CreatedAt().After(c.latest) {
		c.latest = o.CreatedAt()
	}
}

// BuildBundles groups the given orders into bundles.
//
// Parameters:
//   - orders: Unbundled orders to cluster (each must be valid and unbundled)
//   - stores: The stores referenced by the orders, used as route origins
//
// Returns:
//   - One bundle per cluster, in the order clusters were opened
//   - error if an order is invalid, not in an unbundled status, or
//     references a store missing from stores (ErrStoreNotFound)
//
// An empty order slice yields no bundles and no error. The input slices are
// not modified.
func (b Bundler) BuildBundles(orders []*order.Order, stores []*store.Store) ([]*bundle.Bundle, error) {
	storesByID := make(map[kernel.UUID]*store.Store, len(stores))
	for _, s := range stores {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		storesByID[s.ID()] = s
	}

	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return nil, err
		}
		if !o.Status().IsUnbundled() {
			return nil, errs.NewValueIsInvalidError("order status")
		}
		if _, ok := storesByID[o.StoreID()]; !ok {
			return nil, errs.NewObjectNotFoundErrorWithCause("storeID", o.StoreID().String(), ErrStoreNotFound)
		}
	}

	sorted := make([]*order.Order, len(orders))
	copy(sorted, orders)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt().Before(sorted[j].CreatedAt())
	})

	var clusters []*cluster
	for _, o := range sorted {
		target, err := b.findCluster(clusters, o)
		if err != nil {
			return nil, err
		}
		if target == nil {
			target = &cluster{
				storeID:  o.StoreID(),
				earliest: o.CreatedAt(),
				latest:   o.CreatedAt(),
			}
			clusters = append(clusters, target)
		}
		target.add(o)
	}

	bundles := make([]*bundle.Bundle, 0, len(clusters))
	for _, c := range clusters {
		built, err := b.buildBundle(c, storesByID[c.storeID])
		if err != nil {
			return nil, err
		}
		bundles = append(bundles, built)
	}

	return bundles, nil
}

// findCluster returns the compatible cluster whose centroid is nearest to
// the order's delivery location, or nil when no cluster is compatible.
// The first-found cluster wins exact distance ties.
func (b Bundler) findCluster(clusters []*cluster, o *order.Order) (*cluster, error) {
	var (
		best     *cluster
		bestDist = math.MaxFloat64
	)

	for _, c := range clusters {
		if c.storeID != o.StoreID() {
			continue
		}
		if len(c.orders) >= b.maxBundleSize {
			continue
		}
		if o.CreatedAt().Before(c.earliest.Add(-b.timeWindow)) || o.CreatedAt().After(c.latest.Add(b.timeWindow)) {
			continue
		}

		centroid, err := c.centroid()
		if err != nil {
			return nil, err
		}
		dist, err := centroid.DistanceKm(o.DeliveryLocation())
		if err != nil {
			return nil, err
		}
		if dist > b.maxRadiusKm {
			continue
		}
		if dist < bestDist {
			bestDist = dist
			best = c
		}
	}

	return best, nil
}

func (b Bundler) buildBundle(c *cluster, st *store.Store) (*bundle.Bundle, error) {
	route, err := b.planner.PlanRoute(st.Location(), c.orders)
	if err != nil {
		return nil, err
	}

	stops := make([]bundle.Stop, len(route.Orders))
	totalValue := 0.0
	for i, o := range route.Orders {
		stop, err := bundle.NewStop(o.ID(), o.DeliveryLocation(), i+1)
		if err != nil {
			return nil, err
		}
		stops[i] = stop
		totalValue += o.Charges().Total()
	}

	return bundle.NewBundle(
		kernel.NewUUID(),
		c.storeID,
		stops,
		route.TotalDistanceKm,
		route.EstimatedDurationMin,
		totalValue,
		c.latest.Add(b.dispatchLag),
	)
}
