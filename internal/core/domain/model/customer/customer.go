package customer

import (
	"errors"
	"time"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/kernel"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/pkg/errs"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/pkg/guard"
)

// Domain errors for customer operations.
var (
	// ErrNameIsRequired is returned when attempting to create a customer without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrEmailIsRequired is returned when attempting to create a customer without an email.
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")
	// ErrAddressIsRequired is returned when attempting to create a customer without an address.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")
	// ErrCustomerIsNotConstructed is returned when using an improperly initialized Customer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")
)

// Customer represents a registered customer of the grocery delivery service.
// It is an aggregate root holding the customer's identity, contact details
// and default delivery location. The delivery location determines which
// geographic zone the customer's orders fall into.
type Customer struct {
	// id uniquely identifies the customer
	id kernel.UUID
	// name is the customer's full name
	name string
	// email is the customer's contact email
	email string
	// phone is the customer's contact phone number (optional)
	phone string
	// address is the customer's delivery street address
	address string
	// location is the customer's default delivery position
	location kernel.GeoPoint
	// isPremium marks subscribers with reduced delivery fees
	isPremium bool
	// createdAt is the customer's registration time
	createdAt time.Time
	// guard ensures the customer was properly constructed
	guard guard.ConstructorGuard
}

// NewCustomer creates a new Customer with the specified parameters.
// This is the only way to create a valid Customer instance.
//
// Parameters:
//   - id: Unique identifier for the customer (must be valid UUID)
//   - name: Full name (must be non-empty)
//   - email: Contact email (must be non-empty)
//   - phone: Contact phone number (may be empty)
//   - address: Delivery street address (must be non-empty)
//   - location: Default delivery position (must be a valid geographic point)
//   - isPremium: Whether the customer holds a premium subscription
//   - createdAt: Registration time (must not be zero)
//
// Returns:
//   - *Customer: A fully initialized customer
//   - error: Validation error if any parameter is invalid
func NewCustomer(
	id kernel.UUID,
	name string,
	email string,
	phone string,
	address string,
	location kernel.GeoPoint,
	isPremium bool,
	createdAt time.Time,
) (*Customer, error) {
	customer := &Customer{
		phone:     phone,
		isPremium: isPremium,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customer.setID(id),
		customer.setName(name),
		customer.setEmail(email),
		customer.setAddress(address),
		customer.setLocation(location),
		customer.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return customer, nil
}

// IsEqual compares two customers for equality based on their unique identifiers.
func (c *Customer) IsEqual(other *Customer) bool {
	if other == nil {
		return false
	}
	return c.id.IsEqual(other.id)
}

// Validate checks if the Customer was properly constructed using the
// NewCustomer constructor. The zero value is invalid and fails this check.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// ID returns the unique identifier of the customer.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's full name.
func (c *Customer) Name() string {
	return c.name
}

// Email returns the customer's contact email.
func (c *Customer) Email() string {
	return c.email
}

// Phone returns the customer's contact phone number, possibly empty.
func (c *Customer) Phone() string {
	return c.phone
}

// Address returns the customer's delivery street address.
func (c *Customer) Address() string {
	return c.address
}

// Location returns the customer's default delivery position.
func (c *Customer) Location() kernel.GeoPoint {
	return c.location
}

// IsPremium reports whether the customer holds a premium subscription.
// Premium customers get free delivery on orders of 35 dollars or more.
func (c *Customer) IsPremium() bool {
	return c.isPremium
}

// CreatedAt returns the customer's registration time.
func (c *Customer) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Customer) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}
	c.email = email
	return nil
}

func (c *Customer) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}
	c.address = address
	return nil
}

func (c *Customer) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	c.location = location
	return nil
}

func (c *Customer) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	c.createdAt = createdAt
	return nil
}
