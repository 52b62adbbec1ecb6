package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/ruizj3/fake-grocery-delivery-service/internal/core/domain/services"

	"github.com/joho/godotenv"
)

// Configuration defaults. Every value can be overridden through the
// environment or a .env file in the working directory.
const (
	defaultHTTPPort  = "8080"
	defaultDBHost    = "localhost"
	defaultDBPort    = "5432"
	defaultDBUser    = "postgres"
	defaultDBPass    = "postgres"
	defaultDBName    = "grocery"
	defaultDBSslMode = "disable"

	defaultSeed             = 42
	defaultOrderBatchSize   = 5
	defaultOrderHistoryDays = 0
	defaultExportDir        = "./export"

	defaultOrderGenerationSchedule     = "*/30 * * * * *"
	defaultBundlingSchedule            = "0 * * * * *"
	defaultDeliveryProgressionSchedule = "*/15 * * * * *"
	defaultEntityGrowthSchedule        = "0 */10 * * * *"
)

// Config carries every runtime setting of the simulator.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// Seed drives every synthetic generator.
	Seed uint64
	// OrderBatchSize is the number of orders placed per generation tick.
	OrderBatchSize int
	// OrderHistoryDays spreads seeded orders over a past window. Zero means
	// live orders only.
	OrderHistoryDays int
	// ExportDir receives the CSV table dumps.
	ExportDir string

	// Bundling and routing tuning.
	BundleTimeWindow  time.Duration
	MaxBundleSize     int
	MaxBundleRadiusKm float64
	AvgSpeedKmh       float64
	StopServiceMin    float64
	DispatchLag       time.Duration

	// Delivery lifecycle tuning.
	PickDuration       time.Duration
	DeliveryStartDelay time.Duration

	// Six-field cron expressions for the background jobs.
	OrderGenerationSchedule     string
	BundlingSchedule            string
	DeliveryProgressionSchedule string
	EntityGrowthSchedule        string
}

// LoadConfig reads configuration from the environment, falling back to the
// defaults above. A missing .env file is not an error.
func LoadConfig() (Config, error) {
	_ = godotenv.Load(".env")

	seed, err := envUint("SEED", defaultSeed)
	if err != nil {
		return Config{}, err
	}

	batchSize, err := envInt("ORDER_BATCH_SIZE", defaultOrderBatchSize)
	if err != nil {
		return Config{}, err
	}

	historyDays, err := envInt("ORDER_HISTORY_DAYS", defaultOrderHistoryDays)
	if err != nil {
		return Config{}, err
	}

	timeWindow, err := envMinutes("BUNDLE_TIME_WINDOW_MIN", services.DefaultTimeWindow)
	if err != nil {
		return Config{}, err
	}

	maxBundleSize, err := envInt("BUNDLE_MAX_SIZE", services.DefaultMaxBundleSize)
	if err != nil {
		return Config{}, err
	}

	maxRadiusKm, err := envFloat("BUNDLE_MAX_RADIUS_KM", services.DefaultMaxRadiusKm)
	if err != nil {
		return Config{}, err
	}

	avgSpeedKmh, err := envFloat("AVG_SPEED_KMH", services.DefaultAvgSpeedKmh)
	if err != nil {
		return Config{}, err
	}

	stopServiceMin, err := envFloat("STOP_SERVICE_MIN", services.DefaultStopServiceMin)
	if err != nil {
		return Config{}, err
	}

	dispatchLag, err := envMinutes("DISPATCH_LAG_MIN", services.DefaultDispatchLag)
	if err != nil {
		return Config{}, err
	}

	pickDuration, err := envMinutes("PICK_DURATION_MIN", services.DefaultPickDuration)
	if err != nil {
		return Config{}, err
	}

	deliveryStartDelay, err := envMinutes("DELIVERY_START_DELAY_MIN", services.DefaultDeliveryStartDelay)
	if err != nil {
		return Config{}, err
	}

	return Config{
		HTTPPort:   envOr("HTTP_PORT", defaultHTTPPort),
		DBHost:     envOr("DB_HOST", defaultDBHost),
		DBPort:     envOr("DB_PORT", defaultDBPort),
		DBUser:     envOr("DB_USER", defaultDBUser),
		DBPassword: envOr("DB_PASSWORD", defaultDBPass),
		DBName:     envOr("DB_NAME", defaultDBName),
		DBSslMode:  envOr("DB_SSLMODE", defaultDBSslMode),

		Seed:             seed,
		OrderBatchSize:   batchSize,
		OrderHistoryDays: historyDays,
		ExportDir:        envOr("EXPORT_DIR", defaultExportDir),

		BundleTimeWindow:  timeWindow,
		MaxBundleSize:     maxBundleSize,
		MaxBundleRadiusKm: maxRadiusKm,
		AvgSpeedKmh:       avgSpeedKmh,
		StopServiceMin:    stopServiceMin,
		DispatchLag:       dispatchLag,

		PickDuration:       pickDuration,
		DeliveryStartDelay: deliveryStartDelay,

		OrderGenerationSchedule:     envOr("ORDER_GENERATION_SCHEDULE", defaultOrderGenerationSchedule),
		BundlingSchedule:            envOr("BUNDLING_SCHEDULE", defaultBundlingSchedule),
		DeliveryProgressionSchedule: envOr("DELIVERY_PROGRESSION_SCHEDULE", defaultDeliveryProgressionSchedule),
		EntityGrowthSchedule:        envOr("ENTITY_GROWTH_SCHEDULE", defaultEntityGrowthSchedule),
	}, nil
}

// DSN builds the postgres connection string for GORM.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSslMode,
	)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func envUint(key string, fallback uint64) (uint64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}

	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func envFloat(key string, fallback float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

// envMinutes reads a whole number of minutes from the environment.
func envMinutes(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return time.Duration(v) * time.Minute, nil
}
