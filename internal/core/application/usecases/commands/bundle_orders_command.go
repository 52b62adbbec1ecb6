package commands

import (
	"errors"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/pkg/guard"
)

var ErrBundleOrdersCommandIsNotConstructed = errors.New(
	"BundleOrdersCommand must be created via NewBundleOrdersCommand constructor",
)

// BundleOrdersCommand triggers a bundling run over the current unbundled orders.
// This command represents the business operation of clustering compatible orders
// into delivery bundles, planning their routes, and assigning available drivers.
//
// Example:
//
//	cmd := NewBundleOrdersCommand()
//	handler := NewBundleOrdersCommandHandler(uowFactory, bundler, assigner)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("Nothing to bundle: %v", err)
//	}
type BundleOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewBundleOrdersCommand creates a new command to trigger a bundling run.
// This is a parameterless command that initiates the order clustering process.
func NewBundleOrdersCommand() BundleOrdersCommand {
	return BundleOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrBundleOrdersCommandIsNotConstructed if validation fails.
func (c *BundleOrdersCommand) Validate() error {
	return c.guard.Validate(
		ErrBundleOrdersCommandIsNotConstructed,
	)
}
