package commands

import (
	"context"
)

// GenerateDriversCommandHandler handles synthetic driver generation.
// Generated drivers are persisted in a single transaction.
type GenerateDriversCommandHandler struct {
	uowFactory DriverUoWFactory
	generator  DriverGenerator
}

// NewGenerateDriversCommandHandler creates a handler for driver generation.
func NewGenerateDriversCommandHandler(
	uowFactory DriverUoWFactory, generator DriverGenerator,
) GenerateDriversCommandHandler {
	return GenerateDriversCommandHandler{
		uowFactory: uowFactory,
		generator:  generator,
	}
}

// Handle processes the driver generation command.
func (h GenerateDriversCommandHandler) Handle(ctx context.Context, command GenerateDriversCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	drivers, err := h.generator.Drivers(command.Count())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DriverRepository()
	for _, d := range drivers {
		if err = repo.Add(ctx, d); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
