package bundle

import (
	"fmt"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/kernel"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/pkg/errs"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/pkg/guard"
)

// Stop is a value object describing one delivery stop on a bundle's route.
// Stops are ordered by sequence: sequence 1 is the first delivery after
// leaving the store, and sequences within a bundle are contiguous.
type Stop struct {
	orderID  kernel.UUID
	location kernel.GeoPoint
	sequence int

	guard guard.ConstructorGuard
}

// NewStop creates a validated delivery stop.
//
// Parameters:
//   - orderID: The order delivered at this stop (must be valid UUID)
//   - location: The delivery destination (must be a valid geographic point)
//   - sequence: 1-based position on the route (must be positive)
//
// Returns:
//   - Stop value, or error if any parameter is invalid
func NewStop(orderID kernel.UUID, location kernel.GeoPoint, sequence int) (Stop, error) {
	if err := orderID.Validate(); err != nil {
		return Stop{}, err
	}
	if err := location.Validate(); err != nil {
		return Stop{}, err
	}
	if sequence < 1 {
		return Stop{}, errs.NewValueIsInvalidErrorWithCause("stop sequence is invalid",
			fmt.Errorf("%d is not greater than 0", sequence))
	}

	return Stop{
		orderID:  orderID,
		location: location,
		sequence: sequence,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Stop was created via NewStop.
func (s Stop) Validate() error {
	return s.guard.Validate(errs.NewValueIsRequiredError("stop"))
}

// OrderID returns the order delivered at this stop.
func (s Stop) OrderID() kernel.UUID {
	return s.orderID
}

// Location returns the delivery destination of this stop.
func (s Stop) Location() kernel.GeoPoint {
	return s.location
}

// Sequence returns the 1-based position of this stop on the route.
func (s Stop) Sequence() int {
	return s.sequence
}
