package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/application/usecases/commands"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/bundle"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/kernel"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/order"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/services"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProgressionOrderRepository struct{ mock.Mock }

func (m *MockProgressionOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockProgressionOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockProgressionOrderRepository) UpdateFromStatus(ctx context.Context, o *order.Order, expected order.Status) error {
	args := m.Called(ctx, o, expected)
	return args.Error(0)
}

func (m *MockProgressionOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockProgressionOrderRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockProgressionOrderRepository) GetAllUnbundled(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockProgressionOrderRepository) GetAllInStatus(
	ctx context.Context, status order.Status,
) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockProgressionOrderRepository) CountByStatus(ctx context.Context) (map[order.Status]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[order.Status]int64), args.Error(1)
}

type MockProgressionBundleRepository struct{ mock.Mock }

func (m *MockProgressionBundleRepository) Add(ctx context.Context, b *bundle.Bundle) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockProgressionBundleRepository) Update(ctx context.Context, b *bundle.Bundle) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockProgressionBundleRepository) Get(ctx context.Context, id kernel.UUID) (*bundle.Bundle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bundle.Bundle), args.Error(1)
}

func (m *MockProgressionBundleRepository) GetAll(ctx context.Context) ([]*bundle.Bundle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*bundle.Bundle), args.Error(1)
}

func (m *MockProgressionBundleRepository) GetAllActive(ctx context.Context) ([]*bundle.Bundle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*bundle.Bundle), args.Error(1)
}

type MockProgressionUoW struct{ mock.Mock }

func (m *MockProgressionUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProgressionUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProgressionUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProgressionUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockProgressionUoW) BundleRepository() ports.BundleRepository {
	args := m.Called()
	return args.Get(0).(ports.BundleRepository)
}

type MockProgressionUoWFactory struct{ mock.Mock }

func (m *MockProgressionUoWFactory) Create() commands.ProgressionUoW {
	args := m.Called()
	return args.Get(0).(commands.ProgressionUoW)
}

func newProgressionHandler(t *testing.T, factory commands.ProgressionUoWFactory) commands.ProgressDeliveriesCommandHandler {
	t.Helper()

	progressor, err := services.NewDeliveryProgressor(
		services.DefaultPickDuration, services.DefaultDeliveryStartDelay)
	require.NoError(t, err)

	return commands.NewProgressDeliveriesCommandHandler(factory, progressor)
}

// progressionFixture returns a single-stop active bundle and its order, picked
// at the given time.
func progressionFixture(t *testing.T, pickedAt time.Time) (*bundle.Bundle, *order.Order) {
	t.Helper()

	location, err := kernel.NewGeoPoint(37.7760, -122.4180)
	require.NoError(t, err)
	charges, err := order.NewCharges(25.00, 2.19, 5.99, 3.00)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		location, 4, charges, pickedAt.Add(-30*time.Minute))
	require.NoError(t, err)
	require.NoError(t, o.Confirm(pickedAt.Add(-10*time.Minute)))
	require.NoError(t, o.StartPicking(pickedAt))

	stop, err := bundle.NewStop(o.ID(), location, 1)
	require.NoError(t, err)

	b, err := bundle.NewBundle(kernel.NewUUID(), o.StoreID(), []bundle.Stop{stop},
		2.4, 12.5, o.Charges().Total(), pickedAt.Add(-time.Minute))
	require.NoError(t, err)

	return b, o
}

func TestProgressDeliveriesCommandHandler_Handle_DeliversAndCompletesBundle(t *testing.T) {
	ctx := t.Context()

	pickedAt := time.Date(2025, 6, 15, 11, 0, 0, 0, time.UTC)
	b, o := progressionFixture(t, pickedAt)

	// Hours later everything on the schedule is due.
	cmd, err := commands.NewProgressDeliveriesCommand(pickedAt.Add(3 * time.Hour))
	require.NoError(t, err)

	orderRepo := new(MockProgressionOrderRepository)
	bundleRepo := new(MockProgressionBundleRepository)
	uow := new(MockProgressionUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("BundleRepository").Return(bundleRepo).Once()
	bundleRepo.On("GetAllActive", ctx).Return([]*bundle.Bundle{b}, nil).Once()
	orderRepo.On("GetByIDs", ctx, b.OrderIDs()).Return([]*order.Order{o}, nil).Once()
	orderRepo.On("UpdateFromStatus", ctx, o, order.Picking).Return(nil).Once()
	bundleRepo.On("Update", ctx, b).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockProgressionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newProgressionHandler(t, factory)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 1, result.OrdersAdvanced)
	assert.Equal(t, 1, result.BundlesCompleted)

	assert.Equal(t, order.Delivered, o.Status())
	require.NotNil(t, o.PickingCompletedAt())
	require.NotNil(t, o.DeliveredAt())
	assert.True(t, o.DeliveredAt().After(*o.PickingCompletedAt()))
	assert.Equal(t, bundle.StatusCompleted, b.Status())

	orderRepo.AssertExpectations(t)
	bundleRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestProgressDeliveriesCommandHandler_Handle_NothingDueYet(t *testing.T) {
	ctx := t.Context()

	pickedAt := time.Date(2025, 6, 15, 11, 0, 0, 0, time.UTC)
	b, o := progressionFixture(t, pickedAt)

	// One minute into picking nothing has finished yet.
	cmd, err := commands.NewProgressDeliveriesCommand(pickedAt.Add(time.Minute))
	require.NoError(t, err)

	orderRepo := new(MockProgressionOrderRepository)
	bundleRepo := new(MockProgressionBundleRepository)
	uow := new(MockProgressionUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("BundleRepository").Return(bundleRepo).Once()
	bundleRepo.On("GetAllActive", ctx).Return([]*bundle.Bundle{b}, nil).Once()
	orderRepo.On("GetByIDs", ctx, b.OrderIDs()).Return([]*order.Order{o}, nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockProgressionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newProgressionHandler(t, factory)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 0, result.OrdersAdvanced)
	assert.Equal(t, 0, result.BundlesCompleted)
	assert.Equal(t, order.Picking, o.Status())
	assert.Equal(t, bundle.StatusActive, b.Status())
	orderRepo.AssertNotCalled(t, "UpdateFromStatus")
	bundleRepo.AssertNotCalled(t, "Update", ctx, b)
}

func TestProgressDeliveriesCommandHandler_Handle_NoActiveBundles(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewProgressDeliveriesCommand(time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	orderRepo := new(MockProgressionOrderRepository)
	bundleRepo := new(MockProgressionBundleRepository)
	uow := new(MockProgressionUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("BundleRepository").Return(bundleRepo).Once()
	bundleRepo.On("GetAllActive", ctx).Return([]*bundle.Bundle{}, nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockProgressionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newProgressionHandler(t, factory)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, commands.ProgressDeliveriesResult{}, result)
}

func TestProgressDeliveriesCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()

	factory := new(MockProgressionUoWFactory)
	handler := newProgressionHandler(t, factory)

	_, err := handler.Handle(ctx, commands.ProgressDeliveriesCommand{})

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrProgressDeliveriesCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestProgressDeliveriesCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewProgressDeliveriesCommand(time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	orderRepo := new(MockProgressionOrderRepository)
	bundleRepo := new(MockProgressionBundleRepository)
	uow := new(MockProgressionUoW)
	factory := new(MockProgressionUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("BundleRepository").Return(bundleRepo).Once(),
		bundleRepo.On("GetAllActive", ctx).Return([]*bundle.Bundle{}, nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := newProgressionHandler(t, factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "commit error")
}
