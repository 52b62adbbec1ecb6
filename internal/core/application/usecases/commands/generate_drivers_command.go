package commands

import (
	"errors"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/pkg/guard"
)

var ErrGenerateDriversCommandIsNotConstructed = errors.New(
	"GenerateDriversCommand must be created via NewGenerateDriversCommand constructor",
)

// GenerateDriversCommand represents a request to generate synthetic drivers.
type GenerateDriversCommand struct { //nolint:recvcheck //using for validation
	count int

	guard guard.ConstructorGuard
}

// NewGenerateDriversCommand creates a command to generate count drivers.
// Returns ErrCountIsInvalid when count is not positive.
func NewGenerateDriversCommand(count int) (GenerateDriversCommand, error) {
	command := GenerateDriversCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setCount(count); err != nil {
		return GenerateDriversCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c GenerateDriversCommand) Validate() error {
	return c.guard.Validate(ErrGenerateDriversCommandIsNotConstructed)
}

// Count returns the number of drivers to generate.
func (c GenerateDriversCommand) Count() int {
	return c.count
}

func (c *GenerateDriversCommand) setCount(count int) error {
	if count <= 0 {
		return ErrCountIsInvalid
	}

	c.count = count
	return nil
}
