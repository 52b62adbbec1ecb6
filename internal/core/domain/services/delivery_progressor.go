package services

import (
	"time"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/bundle"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/kernel"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/order"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/pkg/errs"
)

const (
	// DefaultPickDuration is how long picking a bundle takes at the store.
	DefaultPickDuration = 10 * time.Minute
	// DefaultDeliveryStartDelay is the offset from picking start after which
	// the first delivery can land. It covers picking plus the initial drive.
	DefaultDeliveryStartDelay = 20 * time.Minute
)

// Progression is the result of advancing a bundle's orders in time.
type Progression struct {
	// Changed holds the orders whose status advanced during this pass.
	Changed []*order.Order
	// BundleDone reports whether the bundle reached a terminal state during
	// this pass (every order delivered, or every order canceled).
	BundleDone bool
}

// DeliveryProgressor is a domain service that advances a bundle's orders
// through picking, delivery and completion based on simulated time.
//
// The progressor derives every timestamp from the orders' recorded picking
// start, never from wall-clock arrival of the progress pass. This keeps
// timelines physically consistent regardless of how often or late the
// progressor runs:
//
//   - A picking order goes out for delivery once pick duration has elapsed
//     since picking started; its picking completion time is exactly picking
//     start plus pick duration.
//   - An out-for-delivery order is delivered at picking start plus the
//     delivery start delay plus its share of the route: stop sequence times
//     (estimated route duration / stop count). Later stops on the route are
//     always delivered after earlier ones.
//
// The whole bundle leaves picking together; deliveries then land stop by
// stop.
type DeliveryProgressor struct {
	pickDuration       time.Duration
	deliveryStartDelay time.Duration
}

// NewDeliveryProgressor creates a DeliveryProgressor with the given timing
// parameters.
//
// Parameters:
//   - pickDuration: Time a bundle spends in picking (must be positive)
//   - deliveryStartDelay: Offset from picking start to the first possible
//     delivery (must be positive)
func NewDeliveryProgressor(pickDuration, deliveryStartDelay time.Duration) (DeliveryProgressor, error) {
	if pickDuration <= 0 {
		return DeliveryProgressor{}, errs.NewValueIsRequiredError("pickDuration")
	}
	if deliveryStartDelay <= 0 {
		return DeliveryProgressor{}, errs.NewValueIsRequiredError("deliveryStartDelay")
	}

	return DeliveryProgressor{
		pickDuration:       pickDuration,
		deliveryStartDelay: deliveryStartDelay,
	}, nil
}

// PickingCompleteAt returns when picking that started at pickedAt finishes.
func (p DeliveryProgressor) PickingCompleteAt(pickedAt time.Time) time.Time {
	return pickedAt.Add(p.pickDuration)
}

// DeliveredAt returns when the stop at the given 0-based route position on
// a route of stopCount stops is delivered, for picking that started at
// pickedAt on a route estimated at estimatedDurationMin minutes. The first
// stop is delivered exactly at pickedAt plus the delivery start delay; each
// later stop adds one per-stop share of the route duration.
func (p DeliveryProgressor) DeliveredAt(pickedAt time.Time, position, stopCount int, estimatedDurationMin float64) time.Time {
	perStop := estimatedDurationMin / float64(stopCount)
	offset := time.Duration(float64(position) * perStop * float64(time.Minute))
	return pickedAt.Add(p.deliveryStartDelay).Add(offset)
}

// ProgressBundle advances the orders of one bundle to their state at now.
//
// Parameters:
//   - b: The bundle whose route drives the delivery schedule (must be valid)
//   - orders: The bundle's orders keyed by ID; every stop's order must be present
//   - now: The simulated current time
//
// Returns:
//   - Progression listing the orders that changed and whether the bundle
//     reached a terminal state
//   - error if the bundle or an order is invalid, a stop's order is missing,
//     or a transition violates the order state machine
//
// Canceled orders are skipped; a bundle whose remaining orders were all
// canceled is reported done.
func (p DeliveryProgressor) ProgressBundle(
	b *bundle.Bundle,
	orders map[kernel.UUID]*order.Order,
	now time.Time,
) (Progression, error) {
	if err := b.Validate(); err != nil {
		return Progression{}, err
	}

	stops := b.Stops()
	for _, stop := range stops {
		o, ok := orders[stop.OrderID()]
		if !ok {
			return Progression{}, errs.NewObjectNotFoundError("orderID", stop.OrderID().String())
		}
		if err := o.Validate(); err != nil {
			return Progression{}, err
		}
	}

	var progression Progression
	changed := make(map[kernel.UUID]bool)
	track := func(o *order.Order) {
		if !changed[o.ID()] {
			changed[o.ID()] = true
			progression.Changed = append(progression.Changed, o)
		}
	}

	// The whole bundle leaves picking together.
	for _, stop := range stops {
		o := orders[stop.OrderID()]
		if o.Status() != order.Picking || o.PickedAt() == nil {
			continue
		}
		completeAt := p.PickingCompleteAt(*o.PickedAt())
		if completeAt.After(now) {
			continue
		}
		if err := o.CompletePicking(completeAt); err != nil {
			return Progression{}, err
		}
		track(o)
	}

	// Deliveries land stop by stop along the route.
	for i, stop := range stops {
		o := orders[stop.OrderID()]
		if o.Status() != order.OutForDelivery || o.PickedAt() == nil {
			continue
		}
		deliveredAt := p.DeliveredAt(*o.PickedAt(), i, len(stops), b.EstimatedDurationMin())
		if deliveredAt.After(now) {
			continue
		}
		if err := o.Deliver(deliveredAt); err != nil {
			return Progression{}, err
		}
		track(o)
	}

	progression.BundleDone = bundleDone(stops, orders)
	return progression, nil
}

func bundleDone(stops []bundle.Stop, orders map[kernel.UUID]*order.Order) bool {
	for _, stop := range stops {
		if !orders[stop.OrderID()].Status().IsTerminal() {
			return false
		}
	}
	return true
}
