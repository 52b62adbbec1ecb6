package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/kernel"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/pkg/errs"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/pkg/guard"
)

// Domain errors for store operations.
var (
	// ErrNameIsRequired is returned when attempting to create a store without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrAddressIsRequired is returned when attempting to create a store without an address.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")
	// ErrStoreIsNotConstructed is returned when using an improperly initialized Store.
	ErrStoreIsNotConstructed = errors.New("Store must be created via NewStore constructor")
)

// Hours represents a store's daily operating window as hours of the day.
// A store open 7:00-22:00 has OpenHour 7 and CloseHour 22. CloseHour 24
// means the store closes at midnight.
type Hours struct {
	openHour  int
	closeHour int

	guard guard.ConstructorGuard
}

// NewHours creates a validated operating window.
//
// Parameters:
//   - openHour: Opening hour of day (0-23)
//   - closeHour: Closing hour of day (1-24, must be after openHour)
//
// Returns:
//   - Hours value, or error if the window is inverted or out of range
func NewHours(openHour, closeHour int) (Hours, error) {
	if openHour < 0 || openHour > 23 {
		return Hours{}, errs.NewValueIsOutOfRangeError("openHour", openHour, 0, 23)
	}
	if closeHour < 1 || closeHour > 24 {
		return Hours{}, errs.NewValueIsOutOfRangeError("closeHour", closeHour, 1, 24)
	}
	if closeHour <= openHour {
		return Hours{}, errs.NewValueIsInvalidErrorWithCause("hours are invalid",
			fmt.Errorf("close hour %d is not after open hour %d", closeHour, openHour))
	}

	return Hours{openHour: openHour, closeHour: closeHour, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the Hours value was created via NewHours.
func (h Hours) Validate() error {
	return h.guard.Validate(errs.NewValueIsRequiredError("hours"))
}

// OpenHour returns the opening hour of day.
func (h Hours) OpenHour() int { return h.openHour }

// CloseHour returns the closing hour of day.
func (h Hours) CloseHour() int { return h.closeHour }

// Contains reports whether the given time falls inside the operating window.
func (h Hours) Contains(t time.Time) bool {
	hour := t.Hour()
	return hour >= h.openHour && hour < h.closeHour
}

// String returns a representation like "07:00-22:00".
func (h Hours) String() string {
	return fmt.Sprintf("%02d:00-%02d:00", h.openHour, h.closeHour)
}

// Store represents a grocery store in the system.
// It is an aggregate root holding the store's identity, location and
// operating hours. Every bundle is built from the orders of exactly one
// store, and routes are measured starting from the store's location.
type Store struct {
	// id uniquely identifies the store
	id kernel.UUID
	// name is the customer-facing store name
	name string
	// address is the street address of the store
	address string
	// location is the store's geographic position
	location kernel.GeoPoint
	// hours is the store's daily operating window
	hours Hours
	// isActive indicates whether the store accepts orders
	isActive bool
	// createdAt is the store's registration time
	createdAt time.Time
	// guard ensures the store was properly constructed
	guard guard.ConstructorGuard
}

// NewStore creates a new Store with the specified parameters.
// This is the only way to create a valid Store instance.
//
// Parameters:
//   - id: Unique identifier for the store (must be valid UUID)
//   - name: Customer-facing name (must be non-empty)
//   - address: Street address (must be non-empty)
//   - location: Geographic position (must be a valid geographic point)
//   - hours: Daily operating window created via NewHours
//   - isActive: Whether the store accepts orders
//   - createdAt: Registration time (must not be zero)
//
// Returns:
//   - *Store: A fully initialized store
//   - error: Validation error if any parameter is invalid
func NewStore(
	id kernel.UUID,
	name string,
	address string,
	location kernel.GeoPoint,
	hours Hours,
	isActive bool,
	createdAt time.Time,
) (*Store, error) {
	store := &Store{
		isActive: isActive,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		store.setID(id),
		store.setName(name),
		store.setAddress(address),
		store.setLocation(location),
		store.setHours(hours),
		store.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return store, nil
}

// IsEqual compares two stores for equality based on their unique identifiers.
func (s *Store) IsEqual(other *Store) bool {
	if other == nil {
		return false
	}
	return s.id.IsEqual(other.id)
}

// Validate checks if the Store was properly constructed using the NewStore
// constructor. The zero value of Store is invalid and will fail this check.
func (s *Store) Validate() error {
	if s == nil {
		return ErrStoreIsNotConstructed
	}
	return s.guard.Validate(ErrStoreIsNotConstructed)
}

// ID returns the unique identifier of the store.
func (s *Store) ID() kernel.UUID {
	return s.id
}

// Name returns the customer-facing name of the store.
func (s *Store) Name() string {
	return s.name
}

// Address returns the street address of the store.
func (s *Store) Address() string {
	return s.address
}

// Location returns the store's geographic position.
func (s *Store) Location() kernel.GeoPoint {
	return s.location
}

// Hours returns the store's daily operating window.
func (s *Store) Hours() Hours {
	return s.hours
}

// IsActive reports whether the store currently accepts orders.
func (s *Store) IsActive() bool {
	return s.isActive
}

// CreatedAt returns the store's registration time.
func (s *Store) CreatedAt() time.Time {
	return s.createdAt
}

// IsOpenAt reports whether the store's operating window contains the given
// time.
func (s *Store) IsOpenAt(t time.Time) bool {
	return s.isActive && s.hours.Contains(t)
}

// Activate marks the store as accepting orders.
func (s *Store) Activate() {
	s.isActive = true
}

// Deactivate marks the store as closed for new orders.
func (s *Store) Deactivate() {
	s.isActive = false
}

func (s *Store) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Store) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	s.name = name
	return nil
}

func (s *Store) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}
	s.address = address
	return nil
}

func (s *Store) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	s.location = location
	return nil
}

func (s *Store) setHours(hours Hours) error {
	if err := hours.Validate(); err != nil {
		return err
	}
	s.hours = hours
	return nil
}

func (s *Store) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	s.createdAt = createdAt
	return nil
}
