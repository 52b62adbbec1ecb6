package generators

import (
	"math"
	"math/rand"
	"time"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/customer"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/kernel"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/order"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/store"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/pkg/errs"
)

const (
	// taxRate applies to every order subtotal.
	taxRate = 0.0875

	// baseDeliveryFee is the standard fee for small non-premium orders.
	baseDeliveryFee = 5.99

	// freeDeliveryThreshold is the subtotal above which fees shrink.
	freeDeliveryThreshold = 35.0
)

// hourWeights shapes order placement across the day: quiet overnight, a lunch
// bump and a dinner peak. Index is the hour, values sum to 1.
var hourWeights = []float64{
	0.01, 0.01, 0.01, 0.01, 0.01, 0.02,
	0.03, 0.04, 0.05, 0.06, 0.07, 0.08,
	0.08, 0.07, 0.06, 0.06, 0.07, 0.08,
	0.09, 0.08, 0.06, 0.04, 0.02, 0.01,
}

// itemCountWeights shapes basket sizes from 1 to 15 items, peaking at 5-6.
var itemCountWeights = []float64{1, 3, 8, 12, 15, 15, 12, 8, 5, 4, 3, 2, 2, 1, 1}

// tipChoices pairs tip percentages with their likelihood.
var tipChoices = []struct {
	pct    float64
	weight float64
}{
	{0, 0.05},
	{0.10, 0.15},
	{0.15, 0.30},
	{0.18, 0.25},
	{0.20, 0.20},
	{0.25, 0.05},
}

// statusChoices drives the historical back-fill mix. Live orders skip this
// and always start pending.
var statusChoices = []struct {
	status order.Status
	weight float64
}{
	{order.Pending, 0.02},
	{order.Confirmed, 0.03},
	{order.Picking, 0.02},
	{order.OutForDelivery, 0.03},
	{order.Delivered, 0.85},
	{order.Canceled, 0.05},
}

// noteRate is the share of orders carrying delivery notes.
const noteRate = 0.3

// deliveryNotes is the pool of courier instructions customers attach.
var deliveryNotes = []string{
	"Leave at the front door",
	"Ring the doorbell twice",
	"Call on arrival",
	"Gate code is on file",
	"Hand to me directly",
	"Leave with the doorman",
	"Beware of the dog",
	"Apartment entrance around the back",
	"Text when you are close",
	"Do not ring, baby sleeping",
}

// OrderGenerator produces synthetic orders placed by existing customers at
// existing stores.
//
// With historyDays zero the generator emits fresh pending orders timestamped
// just before now, feeding the live bundling loop. With a positive
// historyDays it spreads orders across that many past days using the hourly
// demand curve and back-fills delivered lifecycles with consistent
// timestamps, which seeds a believable order history in one call.
type OrderGenerator struct {
	rng         *rand.Rand
	historyDays int
	now         func() time.Time
}

// NewOrderGenerator creates a seeded order generator.
//
// Parameters:
//   - seed: The deterministic seed for placement choices
//   - historyDays: Days of history to spread orders over, 0 for live orders
func NewOrderGenerator(seed uint64, historyDays int) (OrderGenerator, error) {
	if historyDays < 0 {
		return OrderGenerator{}, errs.NewValueIsInvalidError("historyDays")
	}

	return OrderGenerator{
		rng:         rand.New(rand.NewSource(int64(seed))), //nolint:gosec //deterministic simulation data
		historyDays: historyDays,
		now:         time.Now,
	}, nil
}

// Orders generates the requested number of orders.
// Each order picks a customer uniformly and a store weighted by proximity,
// prices a basket with tax, fee and tip, and lands at a placement time drawn
// from the hourly demand curve.
func (g OrderGenerator) Orders(
	count int,
	customers []*customer.Customer,
	stores []*store.Store,
) ([]*order.Order, error) {
	if len(customers) == 0 {
		return nil, errs.NewValueIsRequiredError("customers")
	}
	if len(stores) == 0 {
		return nil, errs.NewValueIsRequiredError("stores")
	}

	orders := make([]*order.Order, 0, count)

	for range count {
		c := customers[g.rng.Intn(len(customers))]

		s, err := g.pickStore(c, stores)
		if err != nil {
			return nil, err
		}

		itemCount := g.itemCount()
		subtotal := g.subtotal(itemCount)
		createdAt := g.placementTime()

		status := order.Pending
		if g.historyDays > 0 {
			status = g.pickStatus()
		}

		tip := 0.0
		if status != order.Canceled {
			tip = round2(subtotal * g.tipPct())
		}

		charges, err := order.NewCharges(
			subtotal,
			round2(subtotal*taxRate),
			g.deliveryFee(subtotal, c.IsPremium()),
			tip,
		)
		if err != nil {
			return nil, err
		}

		o, err := order.NewOrder(
			kernel.NewUUID(), c.ID(), s.ID(), c.Location(), itemCount, charges, createdAt,
		)
		if err != nil {
			return nil, err
		}

		if g.rng.Float64() < noteRate {
			o.SetDeliveryNotes(deliveryNotes[g.rng.Intn(len(deliveryNotes))])
		}

		if err = g.backfill(o, status, createdAt); err != nil {
			return nil, err
		}

		orders = append(orders, o)
	}

	return orders, nil
}

// pickStore selects a store for a customer with probability proportional to
// the inverse distance, so nearby stores dominate without monopolizing.
func (g OrderGenerator) pickStore(c *customer.Customer, stores []*store.Store) (*store.Store, error) {
	weights := make([]float64, len(stores))
	total := 0.0

	for i, s := range stores {
		dist, err := c.Location().DistanceKm(s.Location())
		if err != nil {
			return nil, err
		}
		weights[i] = 1.0 / math.Max(0.1, dist)
		total += weights[i]
	}

	r := g.rng.Float64() * total
	for i, w := range weights {
		r -= w
		if r <= 0 {
			return stores[i], nil
		}
	}
	return stores[len(stores)-1], nil
}

func (g OrderGenerator) itemCount() int {
	total := 0.0
	for _, w := range itemCountWeights {
		total += w
	}

	r := g.rng.Float64() * total
	for i, w := range itemCountWeights {
		r -= w
		if r <= 0 {
			return i + 1
		}
	}
	return len(itemCountWeights)
}

// subtotal prices a basket at 2.50 to 15.00 dollars per item.
func (g OrderGenerator) subtotal(itemCount int) float64 {
	subtotal := 0.0
	for range itemCount {
		subtotal += 2.50 + g.rng.Float64()*12.50
	}
	return round2(subtotal)
}

func (g OrderGenerator) tipPct() float64 {
	r := g.rng.Float64()
	for _, tc := range tipChoices {
		r -= tc.weight
		if r <= 0 {
			return tc.pct
		}
	}
	return tipChoices[len(tipChoices)-1].pct
}

// deliveryFee follows the fee schedule: premium customers deliver free above
// the threshold and cheap below it, everyone else pays the base fee with a
// discount on large baskets.
func (g OrderGenerator) deliveryFee(subtotal float64, isPremium bool) float64 {
	if isPremium {
		if subtotal >= freeDeliveryThreshold {
			return 0.0
		}
		return 2.99
	}

	if subtotal >= freeDeliveryThreshold {
		return 3.99
	}
	return baseDeliveryFee
}

// placementTime draws an order timestamp. Live orders land within the last
// ten minutes; historical orders spread across the configured window with
// the hour picked from the demand curve.
func (g OrderGenerator) placementTime() time.Time {
	now := g.now()

	if g.historyDays == 0 {
		return now.Add(-time.Duration(g.rng.Intn(10)) * time.Minute)
	}

	day := now.AddDate(0, 0, -g.rng.Intn(g.historyDays+1))
	return time.Date(
		day.Year(), day.Month(), day.Day(),
		g.pickHour(), g.rng.Intn(60), g.rng.Intn(60), 0,
		day.Location(),
	)
}

func (g OrderGenerator) pickHour() int {
	r := g.rng.Float64()
	for hour, w := range hourWeights {
		r -= w
		if r <= 0 {
			return hour
		}
	}
	return len(hourWeights) - 1
}

func (g OrderGenerator) pickStatus() order.Status {
	r := g.rng.Float64()
	for _, sc := range statusChoices {
		r -= sc.weight
		if r <= 0 {
			return sc.status
		}
	}
	return statusChoices[len(statusChoices)-1].status
}

// backfill advances a historical order to its target status with timestamps
// that respect the lifecycle chronology.
func (g OrderGenerator) backfill(o *order.Order, target order.Status, createdAt time.Time) error {
	if target == order.Pending {
		return nil
	}
	if target == order.Canceled {
		return o.Cancel()
	}

	confirmedAt := createdAt.Add(time.Duration(g.rng.Intn(5)+1) * time.Minute)
	if err := o.Confirm(confirmedAt); err != nil {
		return err
	}
	if target == order.Confirmed {
		return nil
	}

	pickedAt := confirmedAt.Add(time.Duration(g.rng.Intn(21)+10) * time.Minute)
	if err := o.StartPicking(pickedAt); err != nil {
		return err
	}
	if target == order.Picking {
		return nil
	}

	pickingDoneAt := pickedAt.Add(time.Duration(g.rng.Intn(8)+8) * time.Minute)
	if err := o.CompletePicking(pickingDoneAt); err != nil {
		return err
	}
	if target == order.OutForDelivery {
		return nil
	}

	deliveredAt := pickingDoneAt.Add(time.Duration(g.rng.Intn(31)+15) * time.Minute)
	return o.Deliver(deliveredAt)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
