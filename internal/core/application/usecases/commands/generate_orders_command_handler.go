package commands

import (
	"context"
	"errors"
)

var (
	ErrNoCustomersFound    = errors.New("no customers found")
	ErrNoActiveStoresFound = errors.New("no active stores found")
)

// GenerateOrdersCommandHandler handles synthetic order placement.
// Orders are placed by existing customers at existing active stores, so both
// pools must be seeded first. All placements happen in a single transaction.
//
// Example:
//
//	handler := NewGenerateOrdersCommandHandler(uowFactory, generator)
//	cmd, _ := NewGenerateOrdersCommand(20)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Order placement failed: %v", err)
//	}
type GenerateOrdersCommandHandler struct {
	uowFactory OrderGenerationUoWFactory
	generator  OrderGenerator
}

// NewGenerateOrdersCommandHandler creates a handler for order placement.
func NewGenerateOrdersCommandHandler(
	uowFactory OrderGenerationUoWFactory, generator OrderGenerator,
) GenerateOrdersCommandHandler {
	return GenerateOrdersCommandHandler{
		uowFactory: uowFactory,
		generator:  generator,
	}
}

// Handle processes the order placement command.
// Returns ErrNoCustomersFound or ErrNoActiveStoresFound when the respective
// prerequisite pool is empty.
func (h GenerateOrdersCommandHandler) Handle(ctx context.Context, command GenerateOrdersCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customers, err := uow.CustomerRepository().GetAll(ctx)
	if err != nil {
		return err
	}
	if len(customers) == 0 {
		return ErrNoCustomersFound
	}

	stores, err := uow.StoreRepository().GetAllActive(ctx)
	if err != nil {
		return err
	}
	if len(stores) == 0 {
		return ErrNoActiveStoresFound
	}

	orders, err := h.generator.Orders(command.Count(), customers, stores)
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	for _, o := range orders {
		if err = orderRepo.Add(ctx, o); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
