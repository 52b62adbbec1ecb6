package commands

import (
	"context"
)

// GenerateCustomersCommandHandler handles synthetic customer generation.
// Generated customers are persisted in a single transaction.
type GenerateCustomersCommandHandler struct {
	uowFactory CustomerUoWFactory
	generator  CustomerGenerator
}

// NewGenerateCustomersCommandHandler creates a handler for customer generation.
func NewGenerateCustomersCommandHandler(
	uowFactory CustomerUoWFactory, generator CustomerGenerator,
) GenerateCustomersCommandHandler {
	return GenerateCustomersCommandHandler{
		uowFactory: uowFactory,
		generator:  generator,
	}
}

// Handle processes the customer generation command.
func (h GenerateCustomersCommandHandler) Handle(ctx context.Context, command GenerateCustomersCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	customers, err := h.generator.Customers(command.Count())
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

	repo := uow.CustomerRepository()
	for _, c := range customers {
		if err = repo.Add(ctx, c); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
