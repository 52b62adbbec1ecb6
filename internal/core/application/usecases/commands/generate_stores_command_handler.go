package commands

import (
	"context"
)

// GenerateStoresCommandHandler handles synthetic store generation.
// Generated stores are persisted in a single transaction.
type GenerateStoresCommandHandler struct {
	uowFactory StoreUoWFactory
	generator  StoreGenerator
}

// NewGenerateStoresCommandHandler creates a handler for store generation.
func NewGenerateStoresCommandHandler(
	uowFactory StoreUoWFactory, generator StoreGenerator,
) GenerateStoresCommandHandler {
	return GenerateStoresCommandHandler{
		uowFactory: uowFactory,
		generator:  generator,
	}
}

// Handle processes the store generation command.
func (h GenerateStoresCommandHandler) Handle(ctx context.Context, command GenerateStoresCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	stores, err := h.generator.Stores(command.Count())
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

	repo := uow.StoreRepository()
	for _, s := range stores {
		if err = repo.Add(ctx, s); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
