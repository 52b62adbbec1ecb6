package bundle

import (
	"errors"
	"fmt"
	"time"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/kernel"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/pkg/errs"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/pkg/guard"
)

// Domain errors for bundle operations.
var (
	// ErrBundleIsNotConstructed is returned when using an improperly initialized Bundle.
	ErrBundleIsNotConstructed = errors.New("Bundle must be created via NewBundle constructor")
	// ErrStopsAreRequired is returned when attempting to create a bundle without stops.
	ErrStopsAreRequired = errs.NewValueIsRequiredError("stops")
	// ErrDriverAlreadyAssigned is returned when assigning a driver to a bundle
	// that already has one. Driver assignment is set-once.
	ErrDriverAlreadyAssigned = errors.New("bundle already has a driver assigned")
)

// Status represents the lifecycle state of a bundle.
//
// A bundle is Active from creation until every order on its route has been
// delivered, at which point it becomes Completed. Canceled covers the case
// where every remaining order of the bundle was canceled externally.
type Status int

const (
	// StatusUnknown represents an invalid or undefined bundle status.
	StatusUnknown Status = iota
	// StatusActive indicates the bundle is being picked or delivered.
	StatusActive
	// StatusCompleted indicates every order of the bundle was delivered.
	StatusCompleted
	// StatusCanceled indicates every remaining order of the bundle was canceled.
	StatusCanceled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusActive:    "active",
		StatusCompleted: "completed",
		StatusCanceled:  "canceled",
	}
}

// StatusFromString parses a persisted bundle status name.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != StatusUnknown && name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid bundle status", s))
}

// Validate checks if the Status value is one of the defined states.
func (s Status) Validate() error {
	if s != StatusActive && s != StatusCompleted && s != StatusCanceled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid bundle status", s))
	}
	return nil
}

// String returns the lowercase wire name of the bundle status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Bundle represents a group of orders from a single store dispatched as one
// delivery route. It is an aggregate root produced by the bundling engine.
//
// Business rules:
//   - All orders in a bundle belong to the same store
//   - A bundle has at least one stop; stops carry contiguous 1-based sequences
//   - The driver is assigned at most once and never reassigned
//   - Route metrics (distance, duration, value) are non-negative
//   - The centroid is the arithmetic mean of the stop coordinates
type Bundle struct {
	// id uniquely identifies the bundle
	id kernel.UUID
	// storeID identifies the store all bundled orders come from
	storeID kernel.UUID
	// driverID is the assigned driver's ID (nil while unassigned)
	driverID *kernel.UUID
	// stops is the ordered delivery route
	stops []Stop
	// totalDistanceKm is the route length from the store through all stops
	totalDistanceKm float64
	// estimatedDurationMin is the travel plus per-stop service time estimate
	estimatedDurationMin float64
	// totalValue is the sum of the bundled orders' totals
	totalValue float64
	// centroid is the mean of the stop coordinates
	centroid kernel.GeoPoint
	// status is the bundle's lifecycle state
	status Status
	// createdAt is the dispatch time of the bundle
	createdAt time.Time
	// guard ensures the bundle was properly constructed
	guard guard.ConstructorGuard
}

// NewBundle creates a new active Bundle from an ordered set of stops.
//
// Parameters:
//   - id: Unique identifier for the bundle (must be valid UUID)
//   - storeID: The store all bundled orders come from (must be valid UUID)
//   - stops: Ordered delivery route (non-empty, contiguous 1-based sequences)
//   - totalDistanceKm: Route length in kilometers (must be non-negative)
//   - estimatedDurationMin: Route time estimate in minutes (must be non-negative)
//   - totalValue: Sum of the bundled orders' totals (must be non-negative)
//   - createdAt: Dispatch time of the bundle (must not be zero)
//
// Returns:
//   - *Bundle: A fully initialized bundle in Active status with no driver
//   - error: Validation error if any parameter is invalid
//
// The centroid is computed from the stop coordinates during construction.
func NewBundle(
	id kernel.UUID,
	storeID kernel.UUID,
	stops []Stop,
	totalDistanceKm float64,
	estimatedDurationMin float64,
	totalValue float64,
	createdAt time.Time,
) (*Bundle, error) {
	bundle := &Bundle{
		status: StatusActive,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		bundle.setID(id),
		bundle.setStoreID(storeID),
		bundle.setStops(stops),
		bundle.setMetric(&bundle.totalDistanceKm, "total distance", totalDistanceKm),
		bundle.setMetric(&bundle.estimatedDurationMin, "estimated duration", estimatedDurationMin),
		bundle.setMetric(&bundle.totalValue, "total value", totalValue),
		bundle.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	if err := bundle.computeCentroid(); err != nil {
		return nil, err
	}

	return bundle, nil
}

// RestoreBundle reconstructs a Bundle from persisted state, including its
// driver assignment and lifecycle status. It is intended for repository use.
func RestoreBundle(
	id kernel.UUID,
	storeID kernel.UUID,
	driverID *kernel.UUID,
	stops []Stop,
	totalDistanceKm float64,
	estimatedDurationMin float64,
	totalValue float64,
	status Status,
	createdAt time.Time,
) (*Bundle, error) {
	bundle, err := NewBundle(id, storeID, stops, totalDistanceKm, estimatedDurationMin, totalValue, createdAt)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	bundle.status = status

	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return nil, err
		}
		id := *driverID
		bundle.driverID = &id
	}

	return bundle, nil
}

// IsEqual compares two bundles for equality based on their unique identifiers.
func (b *Bundle) IsEqual(other *Bundle) bool {
	if other == nil {
		return false
	}
	return b.id.IsEqual(other.id)
}

// Validate checks if the Bundle was properly constructed using a factory
// method. The zero value of Bundle is invalid and will fail this check.
func (b *Bundle) Validate() error {
	if b == nil {
		return ErrBundleIsNotConstructed
	}
	return b.guard.Validate(ErrBundleIsNotConstructed)
}

// ID returns the unique identifier of the bundle.
func (b *Bundle) ID() kernel.UUID {
	return b.id
}

// StoreID returns the store all bundled orders come from.
func (b *Bundle) StoreID() kernel.UUID {
	return b.storeID
}

// Driver returns the assigned driver's ID, or nil while unassigned.
func (b *Bundle) Driver() *kernel.UUID {
	if b.driverID == nil {
		return nil
	}
	id := *b.driverID
	return &id
}

// Stops returns the ordered delivery route.
// The returned slice is a copy; mutating it does not affect the bundle.
func (b *Bundle) Stops() []Stop {
	stops := make([]Stop, len(b.stops))
	copy(stops, b.stops)
	return stops
}

// StopCount returns the number of delivery stops on the route.
func (b *Bundle) StopCount() int {
	return len(b.stops)
}

// OrderIDs returns the IDs of the bundled orders in route order.
func (b *Bundle) OrderIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(b.stops))
	for i, stop := range b.stops {
		ids[i] = stop.OrderID()
	}
	return ids
}

// TotalDistanceKm returns the route length from the store through all stops.
func (b *Bundle) TotalDistanceKm() float64 {
	return b.totalDistanceKm
}

// EstimatedDurationMin returns the travel plus per-stop service time estimate.
func (b *Bundle) EstimatedDurationMin() float64 {
	return b.estimatedDurationMin
}

// TotalValue returns the sum of the bundled orders' totals.
func (b *Bundle) TotalValue() float64 {
	return b.totalValue
}

// Centroid returns the arithmetic mean of the stop coordinates.
// Driver assignment picks the nearest driver to this point.
func (b *Bundle) Centroid() kernel.GeoPoint {
	return b.centroid
}

// Status returns the bundle's lifecycle state.
func (b *Bundle) Status() Status {
	return b.status
}

// CreatedAt returns the dispatch time of the bundle.
func (b *Bundle) CreatedAt() time.Time {
	return b.createdAt
}

// AssignDriver assigns a driver to the bundle.
//
// Assignment is set-once: a bundle that already has a driver rejects any
// further assignment with ErrDriverAlreadyAssigned. Bundles left without a
// driver when no candidate was available stay unassigned.
//
// Returns:
//   - nil on successful assignment
//   - ErrDriverAlreadyAssigned if a driver is already assigned
//   - error if the driver ID is invalid
func (b *Bundle) AssignDriver(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if b.driverID != nil {
		return ErrDriverAlreadyAssigned
	}

	b.driverID = &driverID
	return nil
}

// Complete marks the bundle as completed once every order was delivered.
//
// Returns:
//   - nil on success
//   - error if the bundle is not active
func (b *Bundle) Complete() error {
	if b.status != StatusActive {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid bundle status to complete", b.status))
	}
	b.status = StatusCompleted
	return nil
}

// Cancel marks the bundle as canceled when every remaining order was
// canceled externally.
//
// Returns:
//   - nil on success
//   - error if the bundle is not active
func (b *Bundle) Cancel() error {
	if b.status != StatusActive {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid bundle status to cancel", b.status))
	}
	b.status = StatusCanceled
	return nil
}

func (b *Bundle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Bundle) setStoreID(storeID kernel.UUID) error {
	if err := storeID.Validate(); err != nil {
		return err
	}
	b.storeID = storeID
	return nil
}

func (b *Bundle) setStops(stops []Stop) error {
	if len(stops) == 0 {
		return ErrStopsAreRequired
	}

	for i, stop := range stops {
		if err := stop.Validate(); err != nil {
			return err
		}
		if stop.Sequence() != i+1 {
			return errs.NewValueIsInvalidErrorWithCause("stops are invalid",
				fmt.Errorf("stop at index %d has sequence %d, want %d", i, stop.Sequence(), i+1))
		}
	}

	b.stops = make([]Stop, len(stops))
	copy(b.stops, stops)
	return nil
}

func (b *Bundle) setMetric(field *float64, name string, value float64) error {
	if value < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			fmt.Sprintf("%s is invalid", name),
			fmt.Errorf("%.2f is negative", value),
		)
	}
	*field = value
	return nil
}

func (b *Bundle) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	b.createdAt = createdAt
	return nil
}

func (b *Bundle) computeCentroid() error {
	var sumLat, sumLon float64
	for _, stop := range b.stops {
		sumLat += stop.Location().Latitude()
		sumLon += stop.Location().Longitude()
	}

	n := float64(len(b.stops))
	centroid, err := kernel.NewGeoPoint(sumLat/n, sumLon/n)
	if err != nil {
		return err
	}
	b.centroid = centroid
	return nil
}
