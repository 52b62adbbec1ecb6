package csvexport_test

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/adapters/out/csvexport"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/adapters/out/postgres/bundlerepo"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/adapters/out/postgres/customerrepo"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/adapters/out/postgres/driverrepo"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/adapters/out/postgres/orderrepo"
	"github.com/ruizj3/fake-grocery-delivery-service/internal/adapters/out/postgres/storerepo"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type ExporterTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	dir       string
}

func (suite *ExporterTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&driverrepo.DriverDTO{},
		&storerepo.StoreDTO{},
		&orderrepo.OrderDTO{},
		&bundlerepo.BundleDTO{},
		&bundlerepo.StopDTO{},
	)
	suite.Require().NoError(err)
}

func (suite *ExporterTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *ExporterTestSuite) SetupTest() {
	suite.dir = suite.T().TempDir()

	for _, table := range []string{"bundle_stops", "bundles", "orders", "stores", "drivers", "customers"} {
		err := suite.db.Exec("TRUNCATE TABLE " + table + " CASCADE").Error
		suite.Require().NoError(err)
	}
}

func (suite *ExporterTestSuite) readCSV(path string) [][]string {
	f, err := os.Open(path)
	suite.Require().NoError(err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	suite.Require().NoError(err)
	return records
}

func (suite *ExporterTestSuite) TestExportAll_EmptyTables() {
	exporter, err := csvexport.NewExporter(suite.db, suite.dir)
	suite.Require().NoError(err)

	paths, err := exporter.ExportAll(context.Background())

	suite.Require().NoError(err)
	suite.Require().Len(paths, 6)
	for _, path := range paths {
		records := suite.readCSV(path)
		// Header only
		suite.Len(records, 1)
	}
}

func (suite *ExporterTestSuite) TestExportAll_WritesRows() {
	now := time.Now().UTC().Truncate(time.Second)

	err := suite.db.Create(&customerrepo.CustomerDTO{
		ID:        uuid.New(),
		Name:      "Ada Moreno",
		Email:     "ada.moreno@example.com",
		Phone:     "555-0100",
		Address:   "12 Main Street, Austin, TX",
		Lat:       30.27,
		Lon:       -97.74,
		IsPremium: true,
		CreatedAt: now,
	}).Error
	suite.Require().NoError(err)

	bundleID := uuid.New()
	err = suite.db.Create(&bundlerepo.BundleDTO{
		ID:                   bundleID,
		StoreID:              uuid.New(),
		TotalDistanceKm:      3.5,
		EstimatedDurationMin: 18.0,
		TotalValue:           62.40,
		Status:               "active",
		CreatedAt:            now,
	}).Error
	suite.Require().NoError(err)

	err = suite.db.Create(&bundlerepo.StopDTO{
		BundleID: bundleID,
		Sequence: 1,
		OrderID:  uuid.New(),
		Lat:      30.28,
		Lon:      -97.73,
	}).Error
	suite.Require().NoError(err)

	exporter, err := csvexport.NewExporter(suite.db, suite.dir)
	suite.Require().NoError(err)

	_, err = exporter.ExportAll(context.Background())
	suite.Require().NoError(err)

	customers := suite.readCSV(filepath.Join(suite.dir, "customers.csv"))
	suite.Require().Len(customers, 2)
	suite.Equal("Ada Moreno", customers[1][1])
	suite.Equal("true", customers[1][7])

	bundles := suite.readCSV(filepath.Join(suite.dir, "bundles.csv"))
	suite.Require().Len(bundles, 2)
	suite.Equal(bundleID.String(), bundles[1][0])
	// Unassigned driver exports as an empty cell
	suite.Equal("", bundles[1][2])

	stops := suite.readCSV(filepath.Join(suite.dir, "bundle_stops.csv"))
	suite.Require().Len(stops, 2)
	suite.Equal("1", stops[1][1])
}

func TestExporterTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	suite.Run(t, new(ExporterTestSuite))
}

func TestNewExporter(t *testing.T) {
	t.Run("should reject nil db", func(t *testing.T) {
		_, err := csvexport.NewExporter(nil, t.TempDir())

		require.Error(t, err)
	})

	t.Run("should reject empty dir", func(t *testing.T) {
		_, err := csvexport.NewExporter(&gorm.DB{}, "")

		require.Error(t, err)
	})
}
