package order

import (
	"errors"
	"fmt"
	"math"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/pkg/errs"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/pkg/guard"
)

// Charges is a value object holding the monetary breakdown of an order.
// All components are non-negative dollar amounts; the total is derived
// from the components and rounded to whole cents.
//
// Charges is immutable after construction. Create instances via NewCharges.
type Charges struct {
	subtotal    float64
	tax         float64
	deliveryFee float64
	tip         float64
	total       float64

	guard guard.ConstructorGuard
}

// NewCharges creates a validated Charges instance.
//
// Parameters:
//   - subtotal: sum of item prices (must be non-negative)
//   - tax: sales tax amount (must be non-negative)
//   - deliveryFee: flat delivery fee (must be non-negative)
//   - tip: customer tip (must be non-negative)
//
// Returns:
//   - Charges with Total computed as the cent-rounded sum of the components
//   - error if any component is negative
func NewCharges(subtotal, tax, deliveryFee, tip float64) (Charges, error) {
	charges := Charges{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		charges.setComponent(&charges.subtotal, "subtotal", subtotal),
		charges.setComponent(&charges.tax, "tax", tax),
		charges.setComponent(&charges.deliveryFee, "delivery fee", deliveryFee),
		charges.setComponent(&charges.tip, "tip", tip),
	); err != nil {
		return Charges{}, err
	}

	charges.total = roundToCents(charges.subtotal + charges.tax + charges.deliveryFee + charges.tip)
	return charges, nil
}

// Validate ensures the Charges instance was created via NewCharges.
func (c Charges) Validate() error {
	return c.guard.Validate(errs.NewValueIsRequiredError("charges"))
}

// Subtotal returns the sum of item prices.
func (c Charges) Subtotal() float64 { return c.subtotal }

// Tax returns the sales tax amount.
func (c Charges) Tax() float64 { return c.tax }

// DeliveryFee returns the flat delivery fee.
func (c Charges) DeliveryFee() float64 { return c.deliveryFee }

// Tip returns the customer tip.
func (c Charges) Tip() float64 { return c.tip }

// Total returns the cent-rounded sum of all components.
func (c Charges) Total() float64 { return c.total }

// String returns a human-readable representation like "$42.17".
func (c Charges) String() string {
	return fmt.Sprintf("$%.2f", c.total)
}

func (c *Charges) setComponent(field *float64, name string, value float64) error {
	if value < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			fmt.Sprintf("%s is invalid", name),
			fmt.Errorf("%.2f is negative", value),
		)
	}
	*field = roundToCents(value)
	return nil
}

func roundToCents(v float64) float64 {
	return math.Round(v*100) / 100
}
