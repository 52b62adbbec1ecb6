package commands

import (
	"errors"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/pkg/guard"
)

var ErrGenerateOrdersCommandIsNotConstructed = errors.New(
	"GenerateOrdersCommand must be created via NewGenerateOrdersCommand constructor",
)

// GenerateOrdersCommand represents a request to place synthetic orders.
// Placement requires existing customers and active stores; the handler reports
// the missing prerequisite when either pool is empty.
//
// Example:
//
//	cmd, err := NewGenerateOrdersCommand(20)
//	if err != nil {
//	    return err
//	}
//	handler := NewGenerateOrdersCommandHandler(uowFactory, generator)
//	err = handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoCustomersFound):
//	    log.Println("Generate customers first")
//	case errors.Is(err, ErrNoActiveStoresFound):
//	    log.Println("Generate stores first")
//	}
type GenerateOrdersCommand struct { //nolint:recvcheck //using for validation
	count int

	guard guard.ConstructorGuard
}

// NewGenerateOrdersCommand creates a command to place count orders.
// Returns ErrCountIsInvalid when count is not positive.
func NewGenerateOrdersCommand(count int) (GenerateOrdersCommand, error) {
	command := GenerateOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setCount(count); err != nil {
		return GenerateOrdersCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c GenerateOrdersCommand) Validate() error {
	return c.guard.Validate(ErrGenerateOrdersCommandIsNotConstructed)
}

// Count returns the number of orders to place.
func (c GenerateOrdersCommand) Count() int {
	return c.count
}

func (c *GenerateOrdersCommand) setCount(count int) error {
	if count <= 0 {
		return ErrCountIsInvalid
	}

	c.count = count
	return nil
}
