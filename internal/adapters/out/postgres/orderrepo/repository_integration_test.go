package orderrepo_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/adapters/out/postgres/orderrepo"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/kernel"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/order"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/ports"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(time.Now().UTC().Truncate(time.Microsecond))

	// Set expectations on mock
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Verify order was persisted
	suite.assertOrderCount(1)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTripsAllFields() {
	ctx := context.Background()

	placedAt := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	testOrder := suite.createTestOrder(placedAt)
	suite.Require().NoError(testOrder.Confirm(placedAt.Add(30 * time.Second)))
	suite.Require().NoError(testOrder.StartPicking(placedAt.Add(2 * time.Minute)))

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(testOrder.ID(), retrieved.ID())
	suite.Equal(testOrder.CustomerID(), retrieved.CustomerID())
	suite.Equal(testOrder.StoreID(), retrieved.StoreID())
	suite.True(testOrder.DeliveryLocation().IsEqual(retrieved.DeliveryLocation()))
	suite.Equal(testOrder.ItemCount(), retrieved.ItemCount())
	suite.Equal(testOrder.DeliveryNotes(), retrieved.DeliveryNotes())
	suite.InDelta(testOrder.Charges().Total(), retrieved.Charges().Total(), 0.001)
	suite.Equal(order.Picking, retrieved.Status())
	suite.Require().NotNil(retrieved.ConfirmedAt())
	suite.True(retrieved.ConfirmedAt().Equal(placedAt.Add(30 * time.Second)))
	suite.Require().NotNil(retrieved.PickedAt())
	suite.True(retrieved.PickedAt().Equal(placedAt.Add(2 * time.Minute)))
	suite.Nil(retrieved.PickingCompletedAt())
	suite.Nil(retrieved.DeliveredAt())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	nonExistentID := kernel.NewUUID()
	retrieved, err := suite.repository.Get(ctx, nonExistentID)

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_LifecycleProgression_Persisted() {
	ctx := context.Background()

	placedAt := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	testOrder := suite.createTestOrder(placedAt)
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.Confirm(placedAt.Add(time.Minute)))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Confirmed, retrieved.Status())
	suite.Require().NotNil(retrieved.ConfirmedAt())
	suite.True(retrieved.ConfirmedAt().Equal(placedAt.Add(time.Minute)))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateFromStatus_GuardsAgainstStaleTransitions() {
	ctx := context.Background()

	placedAt := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	testOrder := suite.createTestOrder(placedAt)
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.Confirm(placedAt.Add(time.Minute)))
	suite.Require().NoError(suite.repository.UpdateFromStatus(ctx, testOrder, order.Pending))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Confirmed, retrieved.Status())

	// The row no longer holds the pending status, so the same guarded write
	// affects zero rows.
	err = suite.repository.UpdateFromStatus(ctx, testOrder, order.Pending)
	suite.Require().ErrorIs(err, ports.ErrStaleStatusTransition)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	ctx := context.Background()

	nonExistentOrder := suite.createTestOrder(time.Now().UTC())

	// No expectations on tracker since operation should fail
	err := suite.repository.Update(ctx, nonExistentOrder)
	suite.Require().Error(err)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllUnbundled_ReturnsPendingAndConfirmedOldestFirst() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(4)

	placedAt := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	second := suite.createTestOrder(placedAt.Add(5 * time.Minute))
	first := suite.createTestOrder(placedAt)
	confirmed := suite.createTestOrder(placedAt.Add(10 * time.Minute))
	suite.Require().NoError(confirmed.Confirm(placedAt.Add(11 * time.Minute)))
	picking := suite.createTestOrder(placedAt.Add(15 * time.Minute))
	suite.Require().NoError(picking.Confirm(placedAt.Add(16 * time.Minute)))
	suite.Require().NoError(picking.StartPicking(placedAt.Add(17 * time.Minute)))

	for _, o := range []*order.Order{second, first, confirmed, picking} {
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	unbundled, err := suite.repository.GetAllUnbundled(ctx)
	suite.Require().NoError(err)

	suite.Require().Len(unbundled, 3)
	suite.Equal(first.ID(), unbundled[0].ID())
	suite.Equal(second.ID(), unbundled[1].ID())
	suite.Equal(confirmed.ID(), unbundled[2].ID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByIDs_ReturnsOnlyRequestedOrders() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)

	placedAt := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	wanted1 := suite.createTestOrder(placedAt)
	wanted2 := suite.createTestOrder(placedAt.Add(time.Minute))
	other := suite.createTestOrder(placedAt.Add(2 * time.Minute))

	for _, o := range []*order.Order{wanted1, wanted2, other} {
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	found, err := suite.repository.GetByIDs(ctx, []kernel.UUID{wanted1.ID(), wanted2.ID(), kernel.NewUUID()})
	suite.Require().NoError(err)

	suite.Require().Len(found, 2)
	ids := map[kernel.UUID]bool{found[0].ID(): true, found[1].ID(): true}
	suite.True(ids[wanted1.ID()])
	suite.True(ids[wanted2.ID()])

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestCountByStatus_GroupsByStatus() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)

	placedAt := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	pending1 := suite.createTestOrder(placedAt)
	pending2 := suite.createTestOrder(placedAt.Add(time.Minute))
	confirmed := suite.createTestOrder(placedAt.Add(2 * time.Minute))
	suite.Require().NoError(confirmed.Confirm(placedAt.Add(3 * time.Minute)))

	for _, o := range []*order.Order{pending1, pending2, confirmed} {
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	counts, err := suite.repository.CountByStatus(ctx)
	suite.Require().NoError(err)

	suite.Equal(int64(2), counts[order.Pending])
	suite.Equal(int64(1), counts[order.Confirmed])
	suite.Zero(counts[order.Delivered])

	suite.tracker.AssertExpectations(suite.T())
}

// TestOrderRepository_ErrorScenarios verifies error handling for various failure cases.
func (suite *OrderRepositoryIntegrationTestSuite) TestOrderRepository_ErrorScenarios() {
	testCases := []struct {
		name      string
		operation func() error
		expected  string
	}{
		{
			name: "get with invalid UUID",
			operation: func() error {
				invalidID := kernel.UUID{}
				_, err := suite.repository.Get(context.Background(), invalidID)
				return err
			},
			expected: "uuid",
		},
		{
			name: "get non-existent order",
			operation: func() error {
				nonExistentID := kernel.NewUUID()
				_, err := suite.repository.Get(context.Background(), nonExistentID)
				return err
			},
			expected: "not found",
		},
		{
			name: "update non-existent order",
			operation: func() error {
				nonExistentOrder := suite.createTestOrder(time.Now().UTC())
				return suite.repository.Update(context.Background(), nonExistentOrder)
			},
			expected: "record not found",
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			err := tc.operation()
			suite.Require().Error(err)
			suite.Contains(strings.ToLower(err.Error()), strings.ToLower(tc.expected))
			suite.tracker.AssertExpectations(suite.T())
		})
	}
}

// TestOrderRepository_Concurrency verifies repository behavior under concurrent access.
func (suite *OrderRepositoryIntegrationTestSuite) TestOrderRepository_Concurrency() {
	ctx := context.Background()

	initialOrder := suite.createTestOrder(time.Now().UTC().Truncate(time.Microsecond))
	suite.tracker.On("TrackAggregate", initialOrder.ID(), initialOrder).Once()
	err := suite.repository.Add(ctx, initialOrder)
	suite.Require().NoError(err)

	// Simulate concurrent reads
	results := make(chan *order.Order, 3)
	errors := make(chan error, 3)

	for range 3 {
		go func() {
			retrieved, readErr := suite.repository.Get(ctx, initialOrder.ID())
			if readErr != nil {
				errors <- readErr
			} else {
				results <- retrieved
			}
		}()
	}

	for range 3 {
		select {
		case result := <-results:
			suite.Equal(initialOrder.ID(), result.ID())
		case readErr := <-errors:
			suite.Failf("Unexpected error in concurrent read", "%v", readErr)
		}
	}

	suite.tracker.AssertExpectations(suite.T())
}

// createTestOrder creates a pending test order placed at the given time.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(placedAt time.Time) *order.Order {
	location, err := kernel.NewGeoPoint(37.7749, -122.4194)
	suite.Require().NoError(err)

	charges, err := order.NewCharges(42.50, 3.72, 5.99, 6.00)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		location, 8, charges, placedAt,
	)
	suite.Require().NoError(err)
	testOrder.SetDeliveryNotes("Leave at the front door")
	return testOrder
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
