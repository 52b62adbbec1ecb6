package commands

import (
	"errors"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/pkg/guard"
)

var (
	ErrGenerateCustomersCommandIsNotConstructed = errors.New(
		"GenerateCustomersCommand must be created via NewGenerateCustomersCommand constructor",
	)
	ErrCountIsInvalid = errors.New("count must be greater than 0")
)

// GenerateCustomersCommand represents a request to generate synthetic customers.
//
// Example:
//
//	cmd, err := NewGenerateCustomersCommand(50)
//	if err != nil {
//	    return err
//	}
//	handler := NewGenerateCustomersCommandHandler(uowFactory, generator)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to generate customers: %w", err)
//	}
type GenerateCustomersCommand struct { //nolint:recvcheck //using for validation
	count int

	guard guard.ConstructorGuard
}

// NewGenerateCustomersCommand creates a command to generate count customers.
// Returns ErrCountIsInvalid when count is not positive.
func NewGenerateCustomersCommand(count int) (GenerateCustomersCommand, error) {
	command := GenerateCustomersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setCount(count); err != nil {
		return GenerateCustomersCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c GenerateCustomersCommand) Validate() error {
	return c.guard.Validate(ErrGenerateCustomersCommandIsNotConstructed)
}

// Count returns the number of customers to generate.
func (c GenerateCustomersCommand) Count() int {
	return c.count
}

func (c *GenerateCustomersCommand) setCount(count int) error {
	if count <= 0 {
		return ErrCountIsInvalid
	}

	c.count = count
	return nil
}
