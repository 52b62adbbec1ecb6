package customerrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/adapters/out/postgres/customerrepo"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/model/customer"
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

// CustomerRepositoryIntegrationTestSuite provides integration tests for
// CustomerRepository using PostgreSQL containers.
type CustomerRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *customerrepo.GormCustomerRepository
	tracker    *MockAggregateTracker
}

func (suite *CustomerRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&customerrepo.CustomerDTO{}))
}

func (suite *CustomerRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE customers").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = customerrepo.NewGormCustomerRepository(suite.db, suite.tracker)
}

func (suite *CustomerRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CustomerRepositoryIntegrationTestSuite) createTestCustomer(email string, isPremium bool) *customer.Customer {
	location, err := kernel.NewGeoPoint(30.2672, -97.7431)
	suite.Require().NoError(err)

	c, err := customer.NewCustomer(
		kernel.NewUUID(),
		"Priya Nair",
		email,
		"555-0142",
		"48 Oak Street, Austin, TX",
		location,
		isPremium,
		time.Now().UTC().Truncate(time.Second),
	)
	suite.Require().NoError(err)
	return c
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestAdd_ValidCustomer_Success() {
	ctx := context.Background()

	testCustomer := suite.createTestCustomer("priya.nair@example.com", false)
	suite.tracker.On("TrackAggregate", testCustomer.ID(), testCustomer).Once()

	err := suite.repository.Add(ctx, testCustomer)
	suite.Require().NoError(err)

	count, err := suite.repository.Count(ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(1), count)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestGet_ExistingCustomer_RoundTripsAllFields() {
	ctx := context.Background()

	testCustomer := suite.createTestCustomer("priya.nair@example.com", true)
	suite.tracker.On("TrackAggregate", testCustomer.ID(), testCustomer).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testCustomer))

	retrieved, err := suite.repository.Get(ctx, testCustomer.ID())
	suite.Require().NoError(err)

	suite.Equal(testCustomer.ID(), retrieved.ID())
	suite.Equal(testCustomer.Name(), retrieved.Name())
	suite.Equal(testCustomer.Email(), retrieved.Email())
	suite.Equal(testCustomer.Phone(), retrieved.Phone())
	suite.Equal(testCustomer.Address(), retrieved.Address())
	suite.True(testCustomer.Location().IsEqual(retrieved.Location()))
	suite.True(retrieved.IsPremium())
	suite.Equal(testCustomer.CreatedAt().Unix(), retrieved.CreatedAt().Unix())
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestGet_MissingCustomer_ReturnsNotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestGetAll_ReturnsEveryCustomer() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Times(3)
	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		suite.Require().NoError(suite.repository.Add(ctx, suite.createTestCustomer(email, false)))
	}

	customers, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Len(customers, 3)
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestAdd_DuplicateEmail_Fails() {
	ctx := context.Background()

	first := suite.createTestCustomer("same@example.com", false)
	second := suite.createTestCustomer("same@example.com", false)
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()

	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().Error(suite.repository.Add(ctx, second))
}

func TestCustomerRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	suite.Run(t, new(CustomerRepositoryIntegrationTestSuite))
}
