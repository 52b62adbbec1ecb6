package commands

import (
	"errors"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/pkg/guard"
)

var ErrGenerateStoresCommandIsNotConstructed = errors.New(
	"GenerateStoresCommand must be created via NewGenerateStoresCommand constructor",
)

// GenerateStoresCommand represents a request to generate synthetic stores.
type GenerateStoresCommand struct { //nolint:recvcheck //using for validation
	count int

	guard guard.ConstructorGuard
}

// NewGenerateStoresCommand creates a command to generate count stores.
// Returns ErrCountIsInvalid when count is not positive.
func NewGenerateStoresCommand(count int) (GenerateStoresCommand, error) {
	command := GenerateStoresCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setCount(count); err != nil {
		return GenerateStoresCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c GenerateStoresCommand) Validate() error {
	return c.guard.Validate(ErrGenerateStoresCommandIsNotConstructed)
}

// Count returns the number of stores to generate.
func (c GenerateStoresCommand) Count() int {
	return c.count
}

func (c *GenerateStoresCommand) setCount(count int) error {
	if count <= 0 {
		return ErrCountIsInvalid
	}

	c.count = count
	return nil
}
