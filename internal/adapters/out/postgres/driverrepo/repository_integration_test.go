package driverrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/adapters/out/postgres/bundlerepo"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/adapters/out/postgres/driverrepo"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/bundle"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/driver"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/kernel"
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

// DriverRepositoryIntegrationTestSuite provides integration tests for DriverRepository
// using PostgreSQL containers to verify database persistence behavior. The bundles
// table is migrated too because driver availability is derived from it.
type DriverRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *driverrepo.GormDriverRepository
	bundles    *bundlerepo.GormBundleRepository
	tracker    *MockAggregateTracker
}

func (suite *DriverRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&driverrepo.DriverDTO{}, &bundlerepo.BundleDTO{}, &bundlerepo.StopDTO{},
	))
}

func (suite *DriverRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE drivers, bundles, bundle_stops").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = driverrepo.NewGormDriverRepository(suite.db, suite.tracker)
	suite.bundles = bundlerepo.NewGormBundleRepository(suite.db, suite.tracker)
}

func (suite *DriverRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DriverRepositoryIntegrationTestSuite) TestAdd_ValidDriver_Success() {
	ctx := context.Background()

	testDriver := suite.createTestDriver(true)
	suite.tracker.On("TrackAggregate", testDriver.ID(), testDriver).Once()

	err := suite.repository.Add(ctx, testDriver)
	suite.Require().NoError(err)

	count, err := suite.repository.Count(ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(1), count)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestGet_ExistingDriver_RoundTripsAllFields() {
	ctx := context.Background()

	testDriver := suite.createTestDriver(true)
	suite.tracker.On("TrackAggregate", testDriver.ID(), testDriver).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testDriver))

	retrieved, err := suite.repository.Get(ctx, testDriver.ID())
	suite.Require().NoError(err)

	suite.Equal(testDriver.ID(), retrieved.ID())
	suite.Equal(testDriver.Name(), retrieved.Name())
	suite.Equal(testDriver.Phone(), retrieved.Phone())
	suite.Equal("7KQX412", retrieved.LicensePlate())
	suite.Equal(driver.VehicleSedan, retrieved.Vehicle())
	suite.InDelta(testDriver.Rating(), retrieved.Rating(), 0.001)
	suite.True(testDriver.Location().IsEqual(retrieved.Location()))
	suite.True(retrieved.IsActive())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestGet_NonExistentDriver_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestUpdate_LocationChange_Persisted() {
	ctx := context.Background()

	testDriver := suite.createTestDriver(true)
	suite.tracker.On("TrackAggregate", testDriver.ID(), testDriver).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testDriver))

	moved, err := kernel.NewGeoPoint(47.6062, -122.3321)
	suite.Require().NoError(err)
	suite.Require().NoError(testDriver.MoveTo(moved))
	suite.Require().NoError(suite.repository.Update(ctx, testDriver))

	retrieved, err := suite.repository.Get(ctx, testDriver.ID())
	suite.Require().NoError(err)
	suite.True(moved.IsEqual(retrieved.Location()))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestGetAllAvailable_ExcludesInactiveAndBusyDrivers() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(5)

	available := suite.createTestDriver(true)
	busy := suite.createTestDriver(true)
	inactive := suite.createTestDriver(false)
	for _, d := range []*driver.Driver{available, busy, inactive} {
		suite.Require().NoError(suite.repository.Add(ctx, d))
	}

	// Busy driver carries an active bundle, the completed bundle frees its driver.
	activeBundle := suite.createTestBundle()
	suite.Require().NoError(activeBundle.AssignDriver(busy.ID()))
	suite.Require().NoError(suite.bundles.Add(ctx, activeBundle))

	completedBundle := suite.createTestBundle()
	suite.Require().NoError(completedBundle.AssignDriver(available.ID()))
	suite.Require().NoError(completedBundle.Complete())
	suite.Require().NoError(suite.bundles.Add(ctx, completedBundle))

	availableDrivers, err := suite.repository.GetAllAvailable(ctx)
	suite.Require().NoError(err)

	suite.Require().Len(availableDrivers, 1)
	suite.Equal(available.ID(), availableDrivers[0].ID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestGetAllAvailable_NoBundles_ReturnsAllActiveDrivers() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(2)

	first := suite.createTestDriver(true)
	second := suite.createTestDriver(true)
	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(suite.repository.Add(ctx, second))

	availableDrivers, err := suite.repository.GetAllAvailable(ctx)
	suite.Require().NoError(err)
	suite.Len(availableDrivers, 2)

	suite.tracker.AssertExpectations(suite.T())
}

// createTestDriver creates a test driver with default values.
func (suite *DriverRepositoryIntegrationTestSuite) createTestDriver(isActive bool) *driver.Driver {
	location, err := kernel.NewGeoPoint(37.7749, -122.4194)
	suite.Require().NoError(err)

	testDriver, err := driver.NewDriver(
		kernel.NewUUID(), "Alex Morgan", "+14155550123",
		driver.VehicleSedan, 4.7, location, isActive,
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	)
	suite.Require().NoError(err)
	testDriver.SetLicensePlate("7KQX412")
	return testDriver
}

// createTestBundle creates a single-stop active bundle.
func (suite *DriverRepositoryIntegrationTestSuite) createTestBundle() *bundle.Bundle {
	location, err := kernel.NewGeoPoint(37.78, -122.42)
	suite.Require().NoError(err)

	stop, err := bundle.NewStop(kernel.NewUUID(), location, 1)
	suite.Require().NoError(err)

	testBundle, err := bundle.NewBundle(
		kernel.NewUUID(), kernel.NewUUID(), []bundle.Stop{stop},
		1.5, 12.0, 45.80, time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC),
	)
	suite.Require().NoError(err)
	return testBundle
}

func TestDriverRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DriverRepositoryIntegrationTestSuite))
}
