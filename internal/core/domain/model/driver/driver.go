package driver

import (
	"errors"
	"time"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/kernel"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/pkg/errs"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/pkg/guard"
)

const (
	// MinRating is the lowest rating a driver can carry.
	MinRating = 1.0
	// MaxRating is the highest rating a driver can carry.
	MaxRating = 5.0
)

// Domain errors for driver operations.
var (
	// ErrNameIsRequired is returned when attempting to create a driver without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPhoneIsRequired is returned when attempting to create a driver without a phone number.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")
)

// Driver represents a delivery driver in the system.
// It is an aggregate root that manages driver identity, vehicle, rating
// and availability for bundle assignment.
//
// Business rules:
//   - Driver must have a valid UUID, non-empty name and phone
//   - Vehicle type must be one of the defined vehicle types
//   - Rating is constrained to [1.0, 5.0]
//   - Only active drivers are candidates for bundle assignment
//   - The current location feeds nearest-driver selection and zone matching
type Driver struct {
	// id uniquely identifies the driver
	id kernel.UUID
	// name is the human-readable name of the driver
	name string
	// phone is the driver's contact phone number
	phone string
	// licensePlate is the registration plate of the driver's vehicle, optional
	licensePlate string
	// vehicle is the type of vehicle the driver delivers with
	vehicle Vehicle
	// rating is the driver's average customer rating
	rating float64
	// location is the driver's current position
	location kernel.GeoPoint
	// isActive indicates whether the driver is accepting work
	isActive bool
	// createdAt is the driver's registration time
	createdAt time.Time
	// guard ensures the driver was properly constructed
	guard guard.ConstructorGuard
}

// NewDriver creates a new Driver with the specified parameters.
// This is the only way to create a valid Driver instance.
//
// Parameters:
//   - id: Unique identifier for the driver (must be valid UUID)
//   - name: Human-readable name (must be non-empty)
//   - phone: Contact phone number (must be non-empty)
//   - vehicle: Vehicle type (must be a defined type)
//   - rating: Average customer rating (must be within [1.0, 5.0])
//   - location: Current position (must be a valid geographic point)
//   - isActive: Whether the driver is currently accepting work
//   - createdAt: Registration time (must not be zero)
//
// Returns:
//   - *Driver: A fully initialized driver
//   - error: Validation error if any parameter is invalid (aggregated errors
//     for multiple issues)
func NewDriver(
	id kernel.UUID,
	name string,
	phone string,
	vehicle Vehicle,
	rating float64,
	location kernel.GeoPoint,
	isActive bool,
	createdAt time.Time,
) (*Driver, error) {
	driver := &Driver{
		isActive: isActive,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		driver.setID(id),
		driver.setName(name),
		driver.setPhone(phone),
		driver.setVehicle(vehicle),
		driver.setRating(rating),
		driver.setLocation(location),
		driver.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return driver, nil
}

// IsEqual compares two drivers for equality based on their unique identifiers.
func (d *Driver) IsEqual(other *Driver) bool {
	if other == nil {
		return false
	}
	return d.id.IsEqual(other.id)
}

// Validate checks if the Driver was properly constructed using the NewDriver
// constructor. The zero value of Driver is invalid and will fail this check.
//
// Returns:
//   - error: ErrDriverIsNotConstructed if improperly initialized, nil if valid
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// ID returns the unique identifier of the driver.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// Name returns the human-readable name of the driver.
func (d *Driver) Name() string {
	return d.name
}

// Phone returns the driver's contact phone number.
func (d *Driver) Phone() string {
	return d.phone
}

// LicensePlate returns the registration plate of the driver's vehicle.
// Empty when no plate has been recorded.
func (d *Driver) LicensePlate() string {
	return d.licensePlate
}

// SetLicensePlate records the registration plate of the driver's vehicle.
// The plate is informational and carries no assignment meaning.
func (d *Driver) SetLicensePlate(plate string) {
	d.licensePlate = plate
}

// Vehicle returns the driver's vehicle type.
func (d *Driver) Vehicle() Vehicle {
	return d.vehicle
}

// Rating returns the driver's average customer rating.
func (d *Driver) Rating() float64 {
	return d.rating
}

// Location returns the driver's current position.
func (d *Driver) Location() kernel.GeoPoint {
	return d.location
}

// IsActive reports whether the driver is currently accepting work.
func (d *Driver) IsActive() bool {
	return d.isActive
}

// CreatedAt returns the driver's registration time.
func (d *Driver) CreatedAt() time.Time {
	return d.createdAt
}

// MoveTo updates the driver's current position.
//
// Used when a completed delivery leaves the driver at the last stop.
//
// Returns:
//   - nil on success
//   - error if the new location is not a valid geographic point
func (d *Driver) MoveTo(location kernel.GeoPoint) error {
	return d.setLocation(location)
}

// Activate marks the driver as accepting work.
func (d *Driver) Activate() {
	d.isActive = true
}

// Deactivate marks the driver as off shift. Inactive drivers are never
// considered for bundle assignment.
func (d *Driver) Deactivate() {
	d.isActive = false
}

// DistanceKmTo returns the great-circle distance in kilometers from the
// driver's current position to the given point.
func (d *Driver) DistanceKmTo(point kernel.GeoPoint) (float64, error) {
	return d.location.DistanceKm(point)
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	d.name = name
	return nil
}

func (d *Driver) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}
	d.phone = phone
	return nil
}

func (d *Driver) setVehicle(vehicle Vehicle) error {
	if err := vehicle.Validate(); err != nil {
		return err
	}
	d.vehicle = vehicle
	return nil
}

func (d *Driver) setRating(rating float64) error {
	if rating < MinRating || rating > MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating)
	}
	d.rating = rating
	return nil
}

func (d *Driver) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	d.location = location
	return nil
}

func (d *Driver) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	d.createdAt = createdAt
	return nil
}
