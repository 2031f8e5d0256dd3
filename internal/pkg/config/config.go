// internal/pkg/config/config.go
package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// ErrMissingRequiredConfig is returned when a required setting is empty or a placeholder.
var ErrMissingRequiredConfig = errors.New("missing required configuration")

// Config holds all application configuration
type Config struct {
	App         AppConfig
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	Asynq       AsynqConfig
	Storage     StorageConfig
	Secrets     SecretsConfig
	Security    SecurityConfig
	Pricing     PricingConfig
	Identifiers IdentifierConfig
	Labels      LabelConfig
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Version     string
	LogLevel    string
	LogFormat   string // json, text, pretty
	LogFile     string
	Debug       bool
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host               string `validate:"required"`
	Port               string
	User               string
	Password           string
	Name               string `validate:"required"`
	SSLMode            string
	MaxConnections     int32 `validate:"gtefield=MinConnections"`
	MinConnections     int32
	MaxConnLifetime    time.Duration
	MaxConnIdleTime    time.Duration
	HealthCheckPeriod  time.Duration
	ConnectTimeout     time.Duration
	EnableQueryLogging bool
	MigrateOnStart     bool
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host         string
	Port         string
	Password     string
	DB           int
	MaxRetries   int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolSize     int `validate:"gt=0"`
	MinIdleConns int
	TTL          time.Duration
}

// AsynqConfig holds task queue configuration
type AsynqConfig struct {
	RedisDB         int
	Concurrency     int
	Queues          map[string]int // queue name -> priority
	StrictPriority  bool
	RetryMax        int
	ShutdownTimeout time.Duration
	CleanupSchedule string
}

// StorageConfig selects where rendered labels and exports are kept.
type StorageConfig struct {
	Driver          string `validate:"oneof=s3 local"`
	LocalPath       string
	LocalBaseURL    string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	Endpoint        string // MinIO in development
	UsePathStyle    bool
	PresignTTL      time.Duration
	LabelRetention  time.Duration
}

// SecretsConfig controls where sensitive values are resolved from.
type SecretsConfig struct {
	Provider   string // env, aws
	SecretName string
	Region     string
}

// SecurityConfig holds HTTP hardening settings
type SecurityConfig struct {
	RateLimitRequests int `validate:"gt=0"`
	RateLimitDuration time.Duration
	AllowedOrigins    []string
	SecureHeaders     bool
	RequestIDHeader   string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            string `validate:"required"`
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	MaxHeaderBytes  int
	GracefulTimeout time.Duration
}

// PricingConfig holds VAT settings.
type PricingConfig struct {
	VATRate  decimal.Decimal `validate:"gte=0,lte=1"`
	Currency string
}

// IdentifierConfig controls phone number, barcode and invoice allocation.
type IdentifierConfig struct {
	MaxAttempts    int `validate:"min=1"`
	ReservationTTL time.Duration
	StrictSequence bool
}

// LabelConfig describes the printed sticker.
type LabelConfig struct {
	WidthMM           float64 `validate:"gt=0"`
	HeightMM          float64 `validate:"gt=0"`
	DPI               float64 `validate:"gt=0"`
	CompanyName       string
	FontCandidates    []string
	HeaderMaxFontPt   float64
	HeaderMinFontPt   float64 `validate:"gt=0,ltefield=HeaderMaxFontPt"`
	FieldMaxFontPt    float64
	FieldMinFontPt    float64 `validate:"gt=0,ltefield=FieldMaxFontPt"`
	FontStepPt        float64 `validate:"gt=0"`
	BarcodeWidthRatio float64 `validate:"gt=0,lte=1"`
	BarcodeHeightMM   float64
}

// Load loads configuration from the environment and an optional .env file.
func Load(logger *slog.Logger) (*Config, error) {
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	env := getEnv("APP_ENV", "development")

	if env == "development" || env == "local" {
		if err := godotenv.Load(); err != nil {
			logger.Warn("no .env file found, using environment variables",
				slog.String("error", err.Error()))
		} else {
			logger.Info(".env file loaded successfully")
		}
	}

	vatRate, err := decimal.NewFromString(getEnv("PRICING_VAT_RATE", "0.15"))
	if err != nil {
		return nil, fmt.Errorf("invalid PRICING_VAT_RATE: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "phoneshop-api"),
			Environment: env,
			Version:     getEnv("APP_VERSION", "dev"),
			LogLevel:    getEnv("LOG_LEVEL", "debug"),
			LogFormat:   getEnv("LOG_FORMAT", "json"),
			LogFile:     getEnv("LOG_FILE", ""),
			Debug:       getBoolEnv("APP_DEBUG", env == "development"),
		},
		Server: ServerConfig{
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			Port:            getEnv("SERVER_PORT", "8080"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:     getDurationEnv("SERVER_IDLE_TIMEOUT", 60*time.Second),
			MaxHeaderBytes:  getIntEnv("SERVER_MAX_HEADER_BYTES", 1<<20),
			GracefulTimeout: getDurationEnv("SERVER_GRACEFUL_TIMEOUT", 30*time.Second),
		},
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", "localhost"),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", "phoneshop"),
			Password:           getEnv("DB_PASSWORD", "phoneshop_dev"),
			Name:               getEnv("DB_NAME", "phoneshop"),
			SSLMode:            getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:     int32(getIntEnv("DB_MAX_CONNECTIONS", 15)),
			MinConnections:     int32(getIntEnv("DB_MIN_CONNECTIONS", 2)),
			MaxConnLifetime:    getDurationEnv("DB_CONNECTION_LIFETIME", time.Hour),
			MaxConnIdleTime:    getDurationEnv("DB_IDLE_TIME", 30*time.Minute),
			HealthCheckPeriod:  getDurationEnv("DB_HEALTH_CHECK_PERIOD", time.Minute),
			ConnectTimeout:     getDurationEnv("DB_CONNECT_TIMEOUT", 10*time.Second),
			EnableQueryLogging: getBoolEnv("DB_QUERY_LOGGING", env == "development"),
			MigrateOnStart:     getBoolEnv("DB_MIGRATE_ON_START", true),
		},
		Redis: RedisConfig{
			Host:         getEnv("REDIS_HOST", "localhost"),
			Port:         getEnv("REDIS_PORT", "6379"),
			Password:     getEnv("REDIS_PASSWORD", ""),
			DB:           getIntEnv("REDIS_DB", 0),
			MaxRetries:   getIntEnv("REDIS_MAX_RETRIES", 3),
			DialTimeout:  getDurationEnv("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  getDurationEnv("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: getDurationEnv("REDIS_WRITE_TIMEOUT", 3*time.Second),
			PoolSize:     getIntEnv("REDIS_POOL_SIZE", 10),
			MinIdleConns: getIntEnv("REDIS_MIN_IDLE_CONNS", 2),
			TTL:          getDurationEnv("REDIS_TTL", 5*time.Minute),
		},
		Asynq: AsynqConfig{
			RedisDB:         getIntEnv("ASYNQ_REDIS_DB", 1),
			Concurrency:     getIntEnv("ASYNQ_CONCURRENCY", 5),
			Queues:          parseQueues(getEnv("ASYNQ_QUEUES", "critical:6,default:3,low:1")),
			StrictPriority:  getBoolEnv("ASYNQ_STRICT_PRIORITY", false),
			RetryMax:        getIntEnv("ASYNQ_RETRY_MAX", 3),
			ShutdownTimeout: getDurationEnv("ASYNQ_SHUTDOWN_TIMEOUT", 30*time.Second),
			CleanupSchedule: getEnv("ASYNQ_CLEANUP_SCHEDULE", "@daily"),
		},
		Storage: StorageConfig{
			Driver:          getEnv("STORAGE_DRIVER", "local"),
			LocalPath:       getEnv("STORAGE_LOCAL_PATH", "./data/labels"),
			LocalBaseURL:    getEnv("STORAGE_LOCAL_BASE_URL", "/files"),
			Region:          getEnv("AWS_REGION", "me-south-1"),
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
			Bucket:          getEnv("AWS_S3_BUCKET", "phoneshop-labels"),
			Endpoint:        getEnv("AWS_S3_ENDPOINT", ""),
			UsePathStyle:    getBoolEnv("AWS_S3_PATH_STYLE", env == "development"),
			PresignTTL:      getDurationEnv("STORAGE_PRESIGN_TTL", 15*time.Minute),
			LabelRetention:  getDurationEnv("STORAGE_LABEL_RETENTION", 7*24*time.Hour),
		},
		Secrets: SecretsConfig{
			Provider:   getEnv("SECRETS_PROVIDER", "env"),
			SecretName: getEnv("SECRETS_NAME", "phoneshop/"+env),
			Region:     getEnv("AWS_REGION", "me-south-1"),
		},
		Security: SecurityConfig{
			RateLimitRequests: getIntEnv("RATE_LIMIT_REQUESTS", 100),
			RateLimitDuration: getDurationEnv("RATE_LIMIT_DURATION", time.Minute),
			AllowedOrigins:    getSliceEnv("ALLOWED_ORIGINS", []string{"*"}),
			SecureHeaders:     getBoolEnv("SECURE_HEADERS", env == "production"),
			RequestIDHeader:   getEnv("REQUEST_ID_HEADER", "X-Request-ID"),
		},
		Pricing: PricingConfig{
			VATRate:  vatRate,
			Currency: getEnv("PRICING_CURRENCY", "SAR"),
		},
		Identifiers: IdentifierConfig{
			MaxAttempts:    getIntEnv("IDENTIFIERS_MAX_ATTEMPTS", 5),
			ReservationTTL: getDurationEnv("IDENTIFIERS_RESERVATION_TTL", 2*time.Minute),
			StrictSequence: getBoolEnv("IDENTIFIERS_STRICT_SEQUENCE", false),
		},
		Labels: LabelConfig{
			WidthMM:           getFloatEnv("LABEL_WIDTH_MM", 40),
			HeightMM:          getFloatEnv("LABEL_HEIGHT_MM", 25),
			DPI:               getFloatEnv("LABEL_DPI", 300),
			CompanyName:       getEnv("LABEL_COMPANY_NAME", "الصقري للإتصالات"),
			FontCandidates:    getSliceEnv("LABEL_FONT_CANDIDATES", defaultFontCandidates),
			HeaderMaxFontPt:   getFloatEnv("LABEL_HEADER_MAX_PT", 12),
			HeaderMinFontPt:   getFloatEnv("LABEL_HEADER_MIN_PT", 6),
			FieldMaxFontPt:    getFloatEnv("LABEL_FIELD_MAX_PT", 7),
			FieldMinFontPt:    getFloatEnv("LABEL_FIELD_MIN_PT", 4),
			FontStepPt:        getFloatEnv("LABEL_FONT_STEP_PT", 0.5),
			BarcodeWidthRatio: getFloatEnv("LABEL_BARCODE_WIDTH_RATIO", 0.75),
			BarcodeHeightMM:   getFloatEnv("LABEL_BARCODE_HEIGHT_MM", 8),
		},
	}

	if err := cfg.resolveSecrets(context.Background(), logger); err != nil {
		return nil, fmt.Errorf("failed to resolve secrets: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

var defaultFontCandidates = []string{
	"/usr/share/fonts/truetype/noto/NotoSansArabic-Regular.ttf",
	"/usr/share/fonts/truetype/noto/NotoNaskhArabic-Regular.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
	"/Library/Fonts/Arial.ttf",
	`C:\Windows\Fonts\arial.ttf`,
}

// Validate checks the configuration against its struct tags, plus the
// stricter production rules when APP_ENV=production.
func (c *Config) Validate() error {
	return validateConfig(c)
}

// GetDatabaseURL returns the formatted database connection string
func (c *Config) GetDatabaseURL() string {
	return fmt.Sprintf(
		"postgresql://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetRedisAddress returns host:port for Redis
func (c *Config) GetRedisAddress() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// GetServerAddress returns the formatted server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// IsProduction returns true if running in production
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// IsDevelopment returns true if running in development
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development" || c.App.Environment == "local"
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := viper.GetString(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := viper.GetString(key); value != "" {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := viper.GetString(key); value != "" {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := viper.GetString(key); value != "" {
		f, err := strconv.ParseFloat(value, 64)
		if err == nil {
			return f
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := viper.GetString(key); value != "" {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return defaultValue
}

func getSliceEnv(key string, defaultValue []string) []string {
	if value := viper.GetString(key); value != "" {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	}
	return defaultValue
}

func parseQueues(queuesStr string) map[string]int {
	queues := make(map[string]int)
	for _, pair := range strings.Split(queuesStr, ",") {
		parts := strings.Split(pair, ":")
		if len(parts) == 2 {
			name := strings.TrimSpace(parts[0])
			priority, err := strconv.Atoi(strings.TrimSpace(parts[1]))
			if err == nil {
				queues[name] = priority
			}
		}
	}
	if len(queues) == 0 {
		queues["default"] = 1
	}
	return queues
}
