package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/kernel"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrChronologyViolation is returned when a lifecycle timestamp does not
	// strictly follow the timestamp of the preceding transition. Lifecycle
	// timestamps must strictly increase: created < confirmed < picked <
	// picking completed < delivered.
	ErrChronologyViolation = errors.New("order timestamp chronology violated")
)

// Order represents a grocery delivery order. It is the aggregate root that
// manages the order lifecycle from placement through bundling to delivery.
//
// Order follows these invariants:
//   - Must have valid unique identifiers for order, customer and store
//   - Must have a valid delivery location
//   - Monetary charges must be constructed and non-negative
//   - Status transitions follow the defined state machine
//   - Lifecycle timestamps strictly increase along the transition chain
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID identifies the customer who placed the order
	customerID kernel.UUID

	// storeID identifies the store that fulfills the order
	storeID kernel.UUID

	// deliveryLocation is the delivery destination
	deliveryLocation kernel.GeoPoint

	// itemCount is the number of items in the order (must be positive)
	itemCount int

	// charges holds the monetary breakdown of the order
	charges Charges

	// deliveryNotes holds optional courier instructions from the customer
	deliveryNotes string

	// status represents the current state in the order lifecycle
	status Status

	// createdAt is the placement time of the order
	createdAt time.Time

	// lifecycle timestamps, each set exactly once by its transition
	confirmedAt        *time.Time
	pickedAt           *time.Time
	pickingCompletedAt *time.Time
	deliveredAt        *time.Time

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new pending Order with validation. This is the only way
// to create a fresh Order, ensuring all business invariants are maintained.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - customerID: The ordering customer's ID (must be valid UUID)
//   - storeID: The fulfilling store's ID (must be valid UUID)
//   - deliveryLocation: Delivery destination with validated coordinates
//   - itemCount: Number of items in the order (must be positive)
//   - charges: Monetary breakdown created via NewCharges
//   - createdAt: Placement time of the order (must not be zero)
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
//
// The constructor validates all inputs and ensures the order starts in
// Pending status with no lifecycle timestamps set.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	storeID kernel.UUID,
	deliveryLocation kernel.GeoPoint,
	itemCount int,
	charges Charges,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setStoreID(storeID),
		order.setDeliveryLocation(deliveryLocation),
		order.setItemCount(itemCount),
		order.setCharges(charges),
		order.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persisted state.
//
// Unlike NewOrder it accepts any valid status together with the lifecycle
// timestamps recorded for it, re-validating both the field invariants and
// the timestamp chronology. It is intended for repository use only.
//
// Returns:
//   - *Order: The restored order if the persisted state is consistent
//   - error: Validation error if any field or the chronology is invalid
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	storeID kernel.UUID,
	deliveryLocation kernel.GeoPoint,
	itemCount int,
	charges Charges,
	status Status,
	createdAt time.Time,
	confirmedAt *time.Time,
	pickedAt *time.Time,
	pickingCompletedAt *time.Time,
	deliveredAt *time.Time,
) (*Order, error) {
	order, err := NewOrder(id, customerID, storeID, deliveryLocation, itemCount, charges, createdAt)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	order.status = status
	order.confirmedAt = copyTime(confirmedAt)
	order.pickedAt = copyTime(pickedAt)
	order.pickingCompletedAt = copyTime(pickingCompletedAt)
	order.deliveredAt = copyTime(deliveredAt)

	if err := order.validateChronology(); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct.
//
// Returns:
//   - nil if the order is valid
//   - ErrOrderIsNotConstructed if the order was not created via a factory
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
// Orders are considered equal if they have the same ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// StoreID returns the fulfilling store's identifier.
func (o *Order) StoreID() kernel.UUID {
	return o.storeID
}

// DeliveryLocation returns the delivery destination for the order.
func (o *Order) DeliveryLocation() kernel.GeoPoint {
	return o.deliveryLocation
}

// ItemCount returns the number of items in the order.
func (o *Order) ItemCount() int {
	return o.itemCount
}

// Charges returns the monetary breakdown of the order.
func (o *Order) Charges() Charges {
	return o.charges
}

// DeliveryNotes returns the courier instructions attached to the order.
// Empty when the customer left none.
func (o *Order) DeliveryNotes() string {
	return o.deliveryNotes
}

// SetDeliveryNotes attaches courier instructions to the order. Notes are
// informational and carry no lifecycle meaning.
func (o *Order) SetDeliveryNotes(notes string) {
	o.deliveryNotes = notes
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the placement time of the order.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ConfirmedAt returns the confirmation time, or nil if not yet confirmed.
func (o *Order) ConfirmedAt() *time.Time {
	return copyTime(o.confirmedAt)
}

// PickedAt returns the time picking started, or nil if not yet picking.
func (o *Order) PickedAt() *time.Time {
	return copyTime(o.pickedAt)
}

// PickingCompletedAt returns the time picking finished, or nil if the order
// has not yet gone out for delivery.
func (o *Order) PickingCompletedAt() *time.Time {
	return copyTime(o.pickingCompletedAt)
}

// DeliveredAt returns the delivery time, or nil if not yet delivered.
func (o *Order) DeliveredAt() *time.Time {
	return copyTime(o.deliveredAt)
}

// Confirm records the store's acceptance of a pending order.
//
// This method enforces the following business rules:
//   - The order must be in Pending status
//   - at must be strictly after the order's creation time
//
// Parameters:
//   - at: The confirmation time to record
//
// Returns:
//   - nil on successful confirmation
//   - error if the status transition or chronology is violated
func (o *Order) Confirm(at time.Time) error {
	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}

	if !at.After(o.createdAt) {
		return chronologyError("confirmed_at", at, "created_at", o.createdAt)
	}

	o.status = newStatus
	o.confirmedAt = &at
	return nil
}

// StartPicking records the start of picking for a confirmed order.
//
// This method enforces the following business rules:
//   - The order must be in Confirmed status
//   - at must be strictly after the confirmation time
//
// Parameters:
//   - at: The picking start time to record
//
// Returns:
//   - nil on success
//   - error if the status transition or chronology is violated
func (o *Order) StartPicking(at time.Time) error {
	newStatus, err := o.status.StartPicking()
	if err != nil {
		return err
	}

	if o.confirmedAt == nil || !at.After(*o.confirmedAt) {
		return chronologyError("picked_at", at, "confirmed_at", derefTime(o.confirmedAt))
	}

	o.status = newStatus
	o.pickedAt = &at
	return nil
}

// CompletePicking records the end of picking and sends the order out for
// delivery.
//
// This method enforces the following business rules:
//   - The order must be in Picking status
//   - at must be strictly after the picking start time
//
// Parameters:
//   - at: The picking completion time to record
//
// Returns:
//   - nil on success
//   - error if the status transition or chronology is violated
func (o *Order) CompletePicking(at time.Time) error {
	newStatus, err := o.status.CompletePicking()
	if err != nil {
		return err
	}

	if o.pickedAt == nil || !at.After(*o.pickedAt) {
		return chronologyError("picking_completed_at", at, "picked_at", derefTime(o.pickedAt))
	}

	o.status = newStatus
	o.pickingCompletedAt = &at
	return nil
}

// Deliver records the delivery of an out-for-delivery order.
//
// This method enforces the following business rules:
//   - The order must be in OutForDelivery status
//   - at must be strictly after the picking completion time
//   - Delivered is a final state with no further transitions
//
// Parameters:
//   - at: The delivery time to record
//
// Returns:
//   - nil on successful delivery
//   - error if the status transition or chronology is violated
func (o *Order) Deliver(at time.Time) error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	if o.pickingCompletedAt == nil || !at.After(*o.pickingCompletedAt) {
		return chronologyError("delivered_at", at, "picking_completed_at", derefTime(o.pickingCompletedAt))
	}

	o.status = newStatus
	o.deliveredAt = &at
	return nil
}

// Cancel marks the order as canceled.
//
// Any non-terminal order may be canceled. Cancellation records no
// timestamp beyond the status change; the existing lifecycle timestamps
// are preserved as a record of how far the order progressed.
//
// Returns:
//   - nil on successful cancellation
//   - error if the order is already delivered or canceled
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// validateChronology checks that every set lifecycle timestamp strictly
// follows its predecessor. Used when restoring orders from persistence.
func (o *Order) validateChronology() error {
	prev := o.createdAt
	prevName := "created_at"

	for _, step := range []struct {
		name string
		at   *time.Time
	}{
		{"confirmed_at", o.confirmedAt},
		{"picked_at", o.pickedAt},
		{"picking_completed_at", o.pickingCompletedAt},
		{"delivered_at", o.deliveredAt},
	} {
		if step.at == nil {
			continue
		}
		if !step.at.After(prev) {
			return chronologyError(step.name, *step.at, prevName, prev)
		}
		prev = *step.at
		prevName = step.name
	}

	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomerID validates and sets the ordering customer's identifier.
// This is a private method used only during construction.
func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

// setStoreID validates and sets the fulfilling store's identifier.
// This is a private method used only during construction.
func (o *Order) setStoreID(storeID kernel.UUID) error {
	if err := storeID.Validate(); err != nil {
		return err
	}
	o.storeID = storeID
	return nil
}

// setDeliveryLocation validates and sets the delivery destination.
// This is a private method used only during construction.
func (o *Order) setDeliveryLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	o.deliveryLocation = location
	return nil
}

// setItemCount validates and sets the order's item count.
// Item count must be positive (greater than 0).
// This is a private method used only during construction.
func (o *Order) setItemCount(itemCount int) error {
	if itemCount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("item count is invalid", fmt.Errorf("%d is not greater than 0", itemCount))
	}
	o.itemCount = itemCount
	return nil
}

// setCharges validates and sets the order's monetary breakdown.
// This is a private method used only during construction.
func (o *Order) setCharges(charges Charges) error {
	if err := charges.Validate(); err != nil {
		return err
	}
	o.charges = charges
	return nil
}

// setCreatedAt validates and sets the order's placement time.
// This is a private method used only during construction.
func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}

func chronologyError(name string, at time.Time, prevName string, prev time.Time) error {
	return fmt.Errorf("%w: %s %s is not after %s %s",
		ErrChronologyViolation,
		name, at.Format(time.RFC3339),
		prevName, prev.Format(time.RFC3339),
	)
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

func derefTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
