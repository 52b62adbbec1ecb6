package commands

import (
	"context"
	"errors"
	"time"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/kernel"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/order"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/services"
)

var ErrNoUnbundledOrdersFound = errors.New("no unbundled orders found")

// pickStartDelay is the pause between bundle dispatch and the shopper starting
// to pick the first order.
const pickStartDelay = time.Minute

// BundleOrdersResult summarizes the outcome of a bundling run.
type BundleOrdersResult struct {
	BundlesCreated  int
	OrdersBundled   int
	DriversAssigned int
}

// BundleOrdersCommandHandler orchestrates the bundling run.
// Clusters unbundled orders into single-store bundles, plans delivery routes,
// assigns available drivers, and advances every bundled order into picking.
// All writes happen within a single transaction.
//
// Example:
//
//	handler := NewBundleOrdersCommandHandler(uowFactory, bundler, assigner)
//	cmd := NewBundleOrdersCommand()
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoUnbundledOrdersFound):
//	    log.Println("Nothing to bundle")
//	case err != nil:
//	    log.Printf("Bundling failed: %v", err)
//	default:
//	    log.Printf("Created %d bundles", result.BundlesCreated)
//	}
type BundleOrdersCommandHandler struct {
	uowFactory BundlingUoWFactory
	bundler    services.Bundler
	assigner   services.DriverAssigner
}

// NewBundleOrdersCommandHandler creates a handler for bundling runs.
// Requires a BundlingUoWFactory for transactional persistence plus the
// clustering and driver assignment domain services.
func NewBundleOrdersCommandHandler(
	uowFactory BundlingUoWFactory,
	bundler services.Bundler,
	assigner services.DriverAssigner,
) BundleOrdersCommandHandler {
	return BundleOrdersCommandHandler{
		uowFactory: uowFactory,
		bundler:    bundler,
		assigner:   assigner,
	}
}

// Handle processes the bundling command.
// Retrieves all unbundled orders and clusters them into bundles, persists the
// bundles with their driver assignments, then confirms and starts picking for
// every bundled order. Returns ErrNoUnbundledOrdersFound when the queue is empty.
func (h BundleOrdersCommandHandler) Handle(ctx context.Context, command BundleOrdersCommand) (BundleOrdersResult, error) {
	if err := command.Validate(); err != nil {
		return BundleOrdersResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return BundleOrdersResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	bundleRepo := uow.BundleRepository()

	orders, err := orderRepo.GetAllUnbundled(ctx)
	if err != nil {
		return BundleOrdersResult{}, err
	}
	if len(orders) == 0 {
		return BundleOrdersResult{}, ErrNoUnbundledOrdersFound
	}

	stores, err := uow.StoreRepository().GetAll(ctx)
	if err != nil {
		return BundleOrdersResult{}, err
	}

	bundles, err := h.bundler.BuildBundles(orders, stores)
	if err != nil {
		return BundleOrdersResult{}, err
	}

	drivers, err := uow.DriverRepository().GetAllAvailable(ctx)
	if err != nil {
		return BundleOrdersResult{}, err
	}

	assigned, err := h.assigner.AssignDrivers(bundles, drivers)
	if err != nil {
		return BundleOrdersResult{}, err
	}

	byID := make(map[kernel.UUID]*order.Order, len(orders))
	for _, o := range orders {
		byID[o.ID()] = o
	}

	bundled := 0
	for _, b := range bundles {
		if err = bundleRepo.Add(ctx, b); err != nil {
			return BundleOrdersResult{}, err
		}

		for _, orderID := range b.OrderIDs() {
			o := byID[orderID]
			readStatus := o.Status()
			if err = startPicking(o, b.CreatedAt()); err != nil {
				return BundleOrdersResult{}, err
			}
			if err = orderRepo.UpdateFromStatus(ctx, o, readStatus); err != nil {
				return BundleOrdersResult{}, err
			}
			bundled++
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return BundleOrdersResult{}, err
	}

	return BundleOrdersResult{
		BundlesCreated:  len(bundles),
		OrdersBundled:   bundled,
		DriversAssigned: assigned,
	}, nil
}

// startPicking advances an order into the picking phase relative to the bundle
// dispatch time, confirming it first when it is still pending. Orders confirmed
// after dispatch keep their chronology by picking relative to confirmation.
func startPicking(o *order.Order, dispatchedAt time.Time) error {
	if o.Status() == order.Pending {
		if err := o.Confirm(dispatchedAt); err != nil {
			return err
		}
	}

	pickAt := dispatchedAt.Add(pickStartDelay)
	if confirmedAt := o.ConfirmedAt(); confirmedAt != nil && !pickAt.After(*confirmedAt) {
		pickAt = confirmedAt.Add(pickStartDelay)
	}

	return o.StartPicking(pickAt)
}
