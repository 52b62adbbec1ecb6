package commands

import (
	"errors"
	"time"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/pkg/guard"
)

var (
	ErrProgressDeliveriesCommandIsNotConstructed = errors.New(
		"ProgressDeliveriesCommand must be created via NewProgressDeliveriesCommand constructor",
	)
	ErrAsOfTimeIsRequired = errors.New("asOf time is required")
)

// ProgressDeliveriesCommand triggers a delivery progression pass over all
// active bundles, advancing orders whose scheduled picking or drop-off times
// have been reached as of the given instant.
//
// Example:
//
//	cmd, err := NewProgressDeliveriesCommand(time.Now().UTC())
//	if err != nil {
//	    return err
//	}
//	handler := NewProgressDeliveriesCommandHandler(uowFactory, progressor)
//	result, err := handler.Handle(ctx, cmd)
type ProgressDeliveriesCommand struct { //nolint:recvcheck //using for validation
	asOf time.Time

	guard guard.ConstructorGuard
}

// NewProgressDeliveriesCommand creates a command to advance deliveries up to
// the given instant. Returns an error when asOf is the zero time.
func NewProgressDeliveriesCommand(asOf time.Time) (ProgressDeliveriesCommand, error) {
	command := ProgressDeliveriesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setAsOf(asOf); err != nil {
		return ProgressDeliveriesCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrProgressDeliveriesCommandIsNotConstructed if validation fails.
func (c ProgressDeliveriesCommand) Validate() error {
	return c.guard.Validate(ErrProgressDeliveriesCommandIsNotConstructed)
}

// AsOf returns the instant deliveries are progressed up to.
func (c ProgressDeliveriesCommand) AsOf() time.Time {
	return c.asOf
}

func (c *ProgressDeliveriesCommand) setAsOf(asOf time.Time) error {
	if asOf.IsZero() {
		return ErrAsOfTimeIsRequired
	}

	c.asOf = asOf
	return nil
}
