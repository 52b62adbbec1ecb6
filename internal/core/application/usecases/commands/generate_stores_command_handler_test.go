package commands_test

import (
	"context"
	"testing"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/application/usecases/commands"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/kernel"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/store"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStoreUoW struct{ mock.Mock }

func (m *MockStoreUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStoreUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStoreUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStoreUoW) StoreRepository() ports.StoreRepository {
	args := m.Called()
	return args.Get(0).(ports.StoreRepository)
}

type MockStoreUoWFactory struct{ mock.Mock }

func (m *MockStoreUoWFactory) Create() commands.StoreUoW {
	args := m.Called()
	return args.Get(0).(commands.StoreUoW)
}

type MockStoreGenerator struct{ mock.Mock }

func (m *MockStoreGenerator) Stores(count int) ([]*store.Store, error) {
	args := m.Called(count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*store.Store), args.Error(1)
}

func TestGenerateStoresCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewGenerateStoresCommand(2)
	require.NoError(t, err)

	store1 := bundlingTestStore(t, kernel.NewUUID(), 37.7749, -122.4194)
	store2 := bundlingTestStore(t, kernel.NewUUID(), 37.7800, -122.4100)

	repo := new(MockBundlingStoreRepository)
	generator := new(MockStoreGenerator)
	uow := new(MockStoreUoW)
	factory := new(MockStoreUoWFactory)

	mock.InOrder(
		generator.On("Stores", 2).Return([]*store.Store{store1, store2}, nil).Once(),
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StoreRepository").Return(repo).Once(),
		repo.On("Add", ctx, store1).Return(nil).Once(),
		repo.On("Add", ctx, store2).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewGenerateStoresCommandHandler(factory, generator)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	generator.AssertExpectations(t)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestGenerateStoresCommandHandler_Handle_GeneratorError(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewGenerateStoresCommand(4)
	require.NoError(t, err)

	generator := new(MockStoreGenerator)
	factory := new(MockStoreUoWFactory)

	generator.On("Stores", 4).Return(nil, assert.AnError).Once()

	handler := commands.NewGenerateStoresCommandHandler(factory, generator)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, assert.AnError)
	factory.AssertNotCalled(t, "Create")
}

func TestGenerateStoresCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()

	factory := new(MockStoreUoWFactory)
	generator := new(MockStoreGenerator)
	handler := commands.NewGenerateStoresCommandHandler(factory, generator)

	err := handler.Handle(ctx, commands.GenerateStoresCommand{})

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrGenerateStoresCommandIsNotConstructed)
	generator.AssertNotCalled(t, "Stores", mock.Anything)
}
