package order

import (
	"fmt"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct delivery workflow.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Picking ──> OutForDelivery ──> Delivered
//	   │            │            │               │
//	   └────────────┴────────────┴───────────────┴──> Canceled
//
// Delivered and Canceled are terminal states. Cancellation is initiated
// by an external actor; the delivery progressor never cancels orders.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a freshly placed order.
	// Orders in this status are waiting for store confirmation.
	Pending

	// Confirmed indicates the store accepted the order.
	// Orders in this status are eligible for bundling.
	Confirmed

	// Picking indicates the order belongs to a dispatched bundle
	// and its items are being picked at the store.
	Picking

	// OutForDelivery indicates the bundle's driver has left the store
	// and is en route to the delivery stops.
	OutForDelivery

	// Delivered indicates the order reached the customer.
	// This is a final state with no further transitions allowed.
	Delivered

	// Canceled indicates an external actor canceled the order before
	// delivery. This is a final state with no further transitions allowed.
	Canceled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Pending:        "pending",
		Confirmed:      "confirmed",
		Picking:        "picking",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Canceled:       "canceled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "pending",
		Confirmed:      "confirmed",
		Picking:        "picking",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Canceled:       "canceled",
	}
}

// StatusFromString parses a persisted status name into a Status value.
//
// Returns:
//   - the matching Status for a valid name ("pending", "out_for_delivery", ...)
//   - (Unknown, error) for unrecognized names
//
// This function is used when restoring orders from the database or
// accepting status filters from the API.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Confirmed, Picking, OutForDelivery,
// Delivered, Canceled. Unknown (0) and any other values are invalid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status.
//
// Returns:
//   - "pending", "confirmed", "picking", "out_for_delivery", "delivered"
//     or "canceled" for valid statuses
//   - "unknown" for invalid status values
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones. The names match
// the values stored in the orders table.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
//
// Delivered and Canceled are terminal; every other status can still move.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Canceled
}

// IsUnbundled reports whether an order in this status is still waiting
// to be placed into a bundle.
//
// Only Pending and Confirmed orders enter the bundling queue. Once an
// order reaches Picking it belongs to a dispatched bundle.
func (s Status) IsUnbundled() bool {
	return s == Pending || s == Confirmed
}

// Confirm transitions the status to Confirmed.
//
// Valid transitions:
//   - Pending -> Confirmed (store accepts the order)
//
// Returns:
//   - (Confirmed, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
//
// This method is used by Order.Confirm() to enforce state transitions.
func (s Status) Confirm() (Status, error) {
	if s != Pending {
		return 0, s.transitionError("confirm")
	}

	return Confirmed, nil
}

// StartPicking transitions the status to Picking.
//
// Valid transitions:
//   - Confirmed -> Picking (bundle dispatched, picking begins)
//
// Returns:
//   - (Picking, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
//
// This method is used by Order.StartPicking() to enforce state transitions.
func (s Status) StartPicking() (Status, error) {
	if s != Confirmed {
		return 0, s.transitionError("start picking")
	}

	return Picking, nil
}

// CompletePicking transitions the status to OutForDelivery.
//
// Valid transitions:
//   - Picking -> OutForDelivery (driver leaves the store)
//
// Returns:
//   - (OutForDelivery, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
//
// This method is used by Order.CompletePicking() to enforce state transitions.
func (s Status) CompletePicking() (Status, error) {
	if s != Picking {
		return 0, s.transitionError("complete picking")
	}

	return OutForDelivery, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - OutForDelivery -> Delivered (order handed to the customer)
//
// Returns:
//   - (Delivered, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
//
// This method is used by Order.Deliver() to enforce state transitions.
// Delivered is a final state with no further transitions possible.
func (s Status) Deliver() (Status, error) {
	if s != OutForDelivery {
		return 0, s.transitionError("deliver")
	}

	return Delivered, nil
}

// Cancel transitions the status to Canceled.
//
// Valid transitions:
//   - Pending, Confirmed, Picking, OutForDelivery -> Canceled
//
// Invalid transitions:
//   - Delivered -> Canceled (already delivered)
//   - Canceled -> Canceled (already canceled)
//
// Returns:
//   - (Canceled, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
//
// Canceled is a final state with no further transitions possible.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() {
		return 0, s.transitionError("cancel")
	}

	return Canceled, nil
}

func (s Status) transitionError(action string) error {
	return errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%s is not a valid status to %s", s.String(), action),
	)
}
