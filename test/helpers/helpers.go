// test/helpers/helpers.go
package helpers

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/alsaqri/phoneshop/internal/adapters/db"
	"github.com/alsaqri/phoneshop/internal/core/domain"
	"github.com/alsaqri/phoneshop/internal/pkg/config"
	"github.com/alsaqri/phoneshop/internal/pkg/logger"
)

// TestDB represents a test database instance
type TestDB struct {
	PgxPool  *pgxpool.Pool
	Database *db.Database
	Resource *dockertest.Resource
	Pool     *dockertest.Pool
	Config   *db.Config
}

// TestRedis represents a test Redis instance
type TestRedis struct {
	Client *redis.Client
	Server *miniredis.Miniredis
}

// TestLogger writes text logs to stdout: everything under -v, errors otherwise.
func TestLogger() *slog.Logger {
	level := "error"
	if testing.Verbose() {
		level = "debug"
	}
	return logger.New(logger.Config{Level: level, Format: "text"}, os.Stdout)
}

// SetupTestDB creates a PostgreSQL container with the schema applied
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err, "Could not connect to Docker")

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=test",
			"POSTGRES_PASSWORD=test",
			"POSTGRES_DB=test_phoneshop",
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err, "Could not start PostgreSQL container")

	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("Could not purge resource: %s", err)
		}
	})

	cfg := LoadTestConfig()
	cfg.Database.Port = resource.GetPort("5432/tcp")
	dbConfig := db.ConfigFrom(cfg.Database)
	dbConfig.EnableQueryLogging = testing.Verbose()

	var database *db.Database
	err = pool.Retry(func() error {
		ctx := context.Background()
		var err error
		database, err = db.NewDatabase(ctx, dbConfig, TestLogger())
		if err != nil {
			return err
		}
		return database.Ping(ctx)
	})
	require.NoError(t, err, "Could not connect to PostgreSQL")

	t.Cleanup(database.Close)

	err = db.Migrate(context.Background(), db.MigrationConfig{DatabaseURL: dbConfig.URL()}, TestLogger())
	require.NoError(t, err, "Could not run migrations")

	return &TestDB{
		PgxPool:  database.Pool(),
		Database: database,
		Resource: resource,
		Pool:     pool,
		Config:   dbConfig,
	}
}

// SetupTestRedis creates an in-memory Redis instance for testing
func SetupTestRedis(t *testing.T) *TestRedis {
	t.Helper()

	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		client.Close()
	})

	return &TestRedis{
		Client: client,
		Server: mr,
	}
}

// LoadTestConfig returns a test configuration
func LoadTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:        "phoneshop-test",
			Environment: "test",
			Version:     "test",
			LogLevel:    "debug",
			LogFormat:   "text",
			Debug:       true,
		},
		Database: config.DatabaseConfig{
			Host:              "localhost",
			Port:              "5432",
			User:              "test",
			Password:          "test",
			Name:              "test_phoneshop",
			SSLMode:           "disable",
			MaxConnections:    5,
			MinConnections:    1,
			MaxConnLifetime:   time.Hour,
			MaxConnIdleTime:   30 * time.Minute,
			HealthCheckPeriod: time.Minute,
			ConnectTimeout:    10 * time.Second,
		},
		Redis: config.RedisConfig{
			Host:     "localhost",
			Port:     "6379",
			DB:       0,
			TTL:      time.Hour,
			PoolSize: 10,
		},
		Storage: config.StorageConfig{
			Driver:         "local",
			LocalPath:      os.TempDir(),
			LocalBaseURL:   "http://localhost:8080/files",
			PresignTTL:     15 * time.Minute,
			LabelRetention: 24 * time.Hour,
		},
		Security: config.SecurityConfig{
			RateLimitRequests: 100,
			RateLimitDuration: time.Minute,
			AllowedOrigins:    []string{"*"},
			RequestIDHeader:   "X-Request-ID",
		},
		Server: config.ServerConfig{
			Host:         "localhost",
			Port:         "8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
		Pricing: config.PricingConfig{
			VATRate:  decimal.RequireFromString("0.15"),
			Currency: "SAR",
		},
		Identifiers: config.IdentifierConfig{
			MaxAttempts:    5,
			ReservationTTL: time.Minute,
		},
		Labels: config.LabelConfig{
			WidthMM:           40,
			HeightMM:          25,
			DPI:               300,
			CompanyName:       "Test Shop",
			HeaderMaxFontPt:   12,
			HeaderMinFontPt:   6,
			FieldMaxFontPt:    7,
			FieldMinFontPt:    4,
			FontStepPt:        0.5,
			BarcodeWidthRatio: 0.75,
			BarcodeHeightMM:   8,
		},
	}
}

// TestVAT returns the calculator at the default 15% rate.
func TestVAT() domain.VAT {
	vat, _ := domain.NewVAT(decimal.RequireFromString("0.15"))
	return vat
}

// CreateTestPhone creates a test phone
func CreateTestPhone(overrides ...func(*domain.Phone)) *domain.Phone {
	now := time.Now().UTC().Truncate(time.Microsecond)
	phone := &domain.Phone{
		ID:             uuid.New(),
		Brand:          "Samsung",
		Model:          "Galaxy S23",
		Color:          "Black",
		Memory:         "256GB",
		Condition:      domain.ConditionNew,
		SerialNumber:   "SN-" + uuid.NewString()[:8],
		BatteryHealth:  domain.FullBattery,
		PurchasePrice:  decimal.NewFromInt(2500),
		SellingPrice:   decimal.NewFromInt(2999),
		WarrantyMonths: 12,
		Quantity:       1,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	for _, override := range overrides {
		override(phone)
	}

	phone.ApplyVAT(TestVAT())
	return phone
}

// CreateTestAccessory creates a test accessory
func CreateTestAccessory(overrides ...func(*domain.Accessory)) *domain.Accessory {
	now := time.Now().UTC().Truncate(time.Microsecond)
	accessory := &domain.Accessory{
		ID:            uuid.New(),
		Barcode:       "ACC" + fmt.Sprint(now.UnixNano()%1e12),
		Name:          "USB-C Charger 25W",
		Category:      "chargers",
		PurchasePrice: decimal.NewFromInt(40),
		SellingPrice:  decimal.NewFromInt(79),
		Quantity:      10,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	for _, override := range overrides {
		override(accessory)
	}

	accessory.ApplyVAT(TestVAT())
	return accessory
}

// CreateTestSale creates a sale over the given lines with totals filled in.
func CreateTestSale(items ...domain.SaleItem) *domain.Sale {
	sale := &domain.Sale{
		InvoiceNumber: fmt.Sprintf("INV-%d", time.Now().UnixNano()),
		CustomerName:  "Test Customer",
		Items:         items,
	}
	sale.CalculateTotals(TestVAT())
	sale.PrepareForStorage()
	return sale
}

// TruncateAllTables truncates all tables in the test database
func TruncateAllTables(t *testing.T, db *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()
	tables := []string{
		"sale_items",
		"sales",
		"phones",
		"phone_number_sequence",
		"accessories",
		"phone_types",
		"accessory_categories",
	}

	for _, table := range tables {
		_, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err, "Failed to truncate table: %s", table)
	}
}
