// cmd/seeder/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/alsaqri/phoneshop/internal/adapters/db"
	redis_a "github.com/alsaqri/phoneshop/internal/adapters/redis_adapter"
	"github.com/alsaqri/phoneshop/internal/core/domain"
	"github.com/alsaqri/phoneshop/internal/core/services"
	"github.com/alsaqri/phoneshop/internal/pkg/config"
	"github.com/alsaqri/phoneshop/internal/pkg/logger"
)

func main() {
	var (
		workbook = flag.String("file", "", "Reference workbook (.xlsx) with Categories and PhoneTypes sheets")
		logLevel = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
		dryRun   = flag.Bool("dry-run", false, "Preview changes without modifying database")
		migrate  = flag.Bool("migrate", true, "Apply schema migrations first")
		status   = flag.Bool("status", false, "Print the schema version and exit")
	)
	flag.Parse()

	slogger := logger.Setup(logger.Config{Level: *logLevel, Format: "json", ServiceName: "phoneshop-seeder"})

	categories, types, err := loadReference(*workbook)
	if err != nil {
		slogger.Error("failed to load reference data",
			slog.String("file", *workbook),
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	if *dryRun {
		printSummary(categories, types, nil)
		fmt.Println("\n[DRY RUN] No changes were made to the database")
		return
	}

	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	schema := db.MigrationConfig{DatabaseURL: cfg.GetDatabaseURL()}

	if *status {
		state, err := db.Inspect(ctx, schema, slogger)
		if err != nil {
			slogger.Error("failed to inspect schema", slog.String("error", err.Error()))
			os.Exit(1)
		}
		fmt.Printf("schema version %d of %d (dirty=%t, pending=%t)\n",
			state.Version, state.Latest, state.Dirty, state.Pending())
		return
	}

	if *migrate {
		if err := db.Migrate(ctx, schema, slogger); err != nil {
			slogger.Error("failed to run migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	dbConfig := db.ConfigFrom(cfg.Database)
	dbConfig.MaxConnections, dbConfig.MinConnections = 2, 1
	database, err := db.NewDatabase(ctx, dbConfig, slogger)
	if err != nil {
		slogger.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddress(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	reference := services.NewReferenceService(
		db.NewReferenceRepository(database, slogger),
		redis_a.NewCache(redisClient, cfg.Redis.TTL, slogger),
		cfg.Redis.TTL,
		slogger,
	)

	result, err := reference.Import(ctx, categories, types)
	if err != nil {
		slogger.Error("failed to seed reference data", slog.String("error", err.Error()))
		os.Exit(1)
	}

	printSummary(categories, types, result)
	slogger.Info("seed operation completed",
		slog.Int("categories", result.Categories),
		slog.Int("phone_types", result.PhoneTypes))
}

// loadReference reads the workbook when given, otherwise the built-in lists.
func loadReference(path string) ([]domain.AccessoryCategory, []domain.PhoneType, error) {
	if path == "" {
		return defaultCategories, defaultPhoneTypes(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read workbook: %w", err)
	}
	return services.ParseReferenceWorkbook(data)
}

func printSummary(categories []domain.AccessoryCategory, types []domain.PhoneType, result *domain.ImportResult) {
	brands := map[string]int{}
	for _, t := range types {
		brands[t.Brand]++
	}

	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("REFERENCE DATA SUMMARY")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Accessory categories: %d\n", len(categories))
	fmt.Printf("Phone types: %d across %d brands\n", len(types), len(brands))
	for brand, n := range brands {
		fmt.Printf("  - %s: %d models\n", brand, n)
	}
	if result != nil {
		fmt.Printf("\nWritten: %d categories, %d phone types\n", result.Categories, result.PhoneTypes)
	}
}
