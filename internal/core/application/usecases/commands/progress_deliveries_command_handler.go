package commands

import (
	"context"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/bundle"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/kernel"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/order"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/services"
)

// ProgressDeliveriesResult summarizes the outcome of a progression pass.
type ProgressDeliveriesResult struct {
	OrdersAdvanced   int
	BundlesCompleted int
}

// ProgressDeliveriesCommandHandler advances deliveries along their schedules.
// For every active bundle it derives the picking completion and per-stop
// drop-off times from the recorded picking start, applies all transitions that
// are due, and closes bundles whose orders have all reached a terminal state.
// All writes happen within a single transaction.
//
// Example:
//
//	handler := NewProgressDeliveriesCommandHandler(uowFactory, progressor)
//	cmd, _ := NewProgressDeliveriesCommand(time.Now().UTC())
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("Progression failed: %v", err)
//	}
type ProgressDeliveriesCommandHandler struct {
	uowFactory ProgressionUoWFactory
	progressor services.DeliveryProgressor
}

// NewProgressDeliveriesCommandHandler creates a handler for delivery progression.
// Requires a ProgressionUoWFactory for transactional persistence and the
// progression domain service.
func NewProgressDeliveriesCommandHandler(
	uowFactory ProgressionUoWFactory,
	progressor services.DeliveryProgressor,
) ProgressDeliveriesCommandHandler {
	return ProgressDeliveriesCommandHandler{
		uowFactory: uowFactory,
		progressor: progressor,
	}
}

// Handle processes the progression command.
// Loads every active bundle with its orders, applies due lifecycle transitions,
// and completes or cancels bundles whose orders are all terminal. A pass with
// no active bundles is a no-op, not an error.
func (h ProgressDeliveriesCommandHandler) Handle(
	ctx context.Context, command ProgressDeliveriesCommand,
) (ProgressDeliveriesResult, error) {
	if err := command.Validate(); err != nil {
		return ProgressDeliveriesResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ProgressDeliveriesResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	bundleRepo := uow.BundleRepository()

	bundles, err := bundleRepo.GetAllActive(ctx)
	if err != nil {
		return ProgressDeliveriesResult{}, err
	}

	var result ProgressDeliveriesResult
	for _, b := range bundles {
		orders, err := orderRepo.GetByIDs(ctx, b.OrderIDs())
		if err != nil {
			return ProgressDeliveriesResult{}, err
		}

		byID := make(map[kernel.UUID]*order.Order, len(orders))
		readStatus := make(map[kernel.UUID]order.Status, len(orders))
		for _, o := range orders {
			byID[o.ID()] = o
			readStatus[o.ID()] = o.Status()
		}

		progression, err := h.progressor.ProgressBundle(b, byID, command.AsOf())
		if err != nil {
			return ProgressDeliveriesResult{}, err
		}

		for _, changed := range progression.Changed {
			if err = orderRepo.UpdateFromStatus(ctx, changed, readStatus[changed.ID()]); err != nil {
				return ProgressDeliveriesResult{}, err
			}
			result.OrdersAdvanced++
		}

		if !progression.BundleDone {
			continue
		}

		if err = closeBundle(b, byID); err != nil {
			return ProgressDeliveriesResult{}, err
		}
		if err = bundleRepo.Update(ctx, b); err != nil {
			return ProgressDeliveriesResult{}, err
		}
		result.BundlesCompleted++
	}

	if err = uow.Commit(ctx); err != nil {
		return ProgressDeliveriesResult{}, err
	}

	return result, nil
}

// closeBundle moves a finished bundle to its terminal status. A bundle with at
// least one delivered order completes; one whose orders were all canceled is
// canceled too.
func closeBundle(b *bundle.Bundle, orders map[kernel.UUID]*order.Order) error {
	for _, orderID := range b.OrderIDs() {
		if o, ok := orders[orderID]; ok && o.Status() == order.Delivered {
			return b.Complete()
		}
	}
	return b.Cancel()
}
