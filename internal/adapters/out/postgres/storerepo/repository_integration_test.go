package storerepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/adapters/out/postgres/storerepo"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/kernel"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/store"
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

// StoreRepositoryIntegrationTestSuite provides integration tests for
// StoreRepository using PostgreSQL containers.
type StoreRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *storerepo.GormStoreRepository
	tracker    *MockAggregateTracker
}

func (suite *StoreRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&storerepo.StoreDTO{}))
}

func (suite *StoreRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE stores").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = storerepo.NewGormStoreRepository(suite.db, suite.tracker)
}

func (suite *StoreRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *StoreRepositoryIntegrationTestSuite) createTestStore(name string, isActive bool) *store.Store {
	location, err := kernel.NewGeoPoint(30.2849, -97.7341)
	suite.Require().NoError(err)

	hours, err := store.NewHours(7, 22)
	suite.Require().NoError(err)

	s, err := store.NewStore(
		kernel.NewUUID(),
		name,
		"900 Congress Avenue, Austin, TX",
		location,
		hours,
		isActive,
		time.Now().UTC().Truncate(time.Second),
	)
	suite.Require().NoError(err)
	return s
}

func (suite *StoreRepositoryIntegrationTestSuite) TestAdd_ValidStore_Success() {
	ctx := context.Background()

	testStore := suite.createTestStore("Golden Basket Market", true)
	suite.tracker.On("TrackAggregate", testStore.ID(), testStore).Once()

	err := suite.repository.Add(ctx, testStore)
	suite.Require().NoError(err)

	count, err := suite.repository.Count(ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(1), count)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *StoreRepositoryIntegrationTestSuite) TestGet_ExistingStore_RoundTripsAllFields() {
	ctx := context.Background()

	testStore := suite.createTestStore("Golden Basket Market", true)
	suite.tracker.On("TrackAggregate", testStore.ID(), testStore).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testStore))

	retrieved, err := suite.repository.Get(ctx, testStore.ID())
	suite.Require().NoError(err)

	suite.Equal(testStore.ID(), retrieved.ID())
	suite.Equal(testStore.Name(), retrieved.Name())
	suite.Equal(testStore.Address(), retrieved.Address())
	suite.True(testStore.Location().IsEqual(retrieved.Location()))
	suite.Equal(7, retrieved.Hours().OpenHour())
	suite.Equal(22, retrieved.Hours().CloseHour())
	suite.True(retrieved.IsActive())
	suite.Equal(testStore.CreatedAt().Unix(), retrieved.CreatedAt().Unix())
}

func (suite *StoreRepositoryIntegrationTestSuite) TestGet_MissingStore_ReturnsNotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *StoreRepositoryIntegrationTestSuite) TestGetAllActive_FiltersInactiveStores() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Times(3)
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestStore("Open One", true)))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestStore("Open Two", true)))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestStore("Closed Down", false)))

	active, err := suite.repository.GetAllActive(ctx)
	suite.Require().NoError(err)

	suite.Len(active, 2)
	for _, s := range active {
		suite.True(s.IsActive())
	}
}

func (suite *StoreRepositoryIntegrationTestSuite) TestUpdate_DeactivatesStore() {
	ctx := context.Background()

	testStore := suite.createTestStore("Fading Market", true)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testStore))

	testStore.Deactivate()
	suite.Require().NoError(suite.repository.Update(ctx, testStore))

	retrieved, err := suite.repository.Get(ctx, testStore.ID())
	suite.Require().NoError(err)
	suite.False(retrieved.IsActive())
}

func TestStoreRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	suite.Run(t, new(StoreRepositoryIntegrationTestSuite))
}
