// cmd/worker/main.go
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/alsaqri/phoneshop/internal/adapters/db"
	redis_a "github.com/alsaqri/phoneshop/internal/adapters/redis_adapter"
	"github.com/alsaqri/phoneshop/internal/adapters/storage"
	"github.com/alsaqri/phoneshop/internal/core/services"
	"github.com/alsaqri/phoneshop/internal/pkg/config"
	"github.com/alsaqri/phoneshop/internal/pkg/label"
	"github.com/alsaqri/phoneshop/internal/pkg/logger"
	"github.com/alsaqri/phoneshop/internal/workers"
)

func main() {
	slogger := logger.Setup(logger.Config{Level: "info", Format: "json"})

	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slogger = logger.Setup(logger.Config{
		Level:          cfg.App.LogLevel,
		Format:         cfg.App.LogFormat,
		File:           cfg.App.LogFile,
		ServiceName:    "phoneshop-worker",
		ServiceVersion: cfg.App.Version,
		Environment:    cfg.App.Environment,
	})
	slogger.Info("starting worker",
		slog.String("environment", cfg.App.Environment),
		slog.String("redis_addr", cfg.GetRedisAddress()))

	ctx := context.Background()
	database, err := initDatabase(ctx, cfg, slogger)
	if err != nil {
		slogger.Error("failed to initialize database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.GetRedisAddress(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		MaxRetries:   cfg.Redis.MaxRetries,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
		PoolSize:     cfg.Redis.PoolSize,
	})
	defer redisClient.Close()
	cache := redis_a.NewCache(redisClient, cfg.Redis.TTL, slogger)

	blobs, err := storage.New(ctx, cfg.Storage, slogger)
	if err != nil {
		slogger.Error("failed to initialize storage", slog.String("error", err.Error()))
		os.Exit(1)
	}

	composer, err := label.NewComposer(label.OptionsFromConfig(cfg.Labels), slogger)
	if err != nil {
		slogger.Error("failed to initialize label composer", slog.String("error", err.Error()))
		os.Exit(1)
	}

	phoneRepo := db.NewPhoneRepository(database, cfg.Identifiers.MaxAttempts, slogger)
	accessoryRepo := db.NewAccessoryRepository(database, slogger)
	reportRepo := db.NewReportRepository(database, slogger)

	labelService := services.NewLabelService(composer, phoneRepo, accessoryRepo, blobs, services.LabelConfig{
		Header:   cfg.Labels.CompanyName,
		Currency: cfg.Pricing.Currency,
	}, slogger)
	reportService := services.NewReportService(reportRepo, cache, blobs, cfg.Redis.TTL, slogger)

	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.GetRedisAddress(),
		Password: cfg.Redis.Password,
		DB:       cfg.Asynq.RedisDB,
	}

	srv := workers.NewServer(redisOpt, cfg.Asynq, slogger)
	mux := workers.NewMux(workers.Processors{
		Labels:  workers.NewLabelProcessor(labelService, phoneRepo, accessoryRepo, slogger),
		Reports: workers.NewReportProcessor(reportService, slogger),
		Cleanup: workers.NewCleanupProcessor(blobs, cfg.Storage.LabelRetention, slogger),
	}, slogger)

	scheduler, err := workers.NewScheduler(redisOpt, cfg.Asynq.CleanupSchedule, slogger)
	if err != nil {
		slogger.Error("failed to build scheduler", slog.String("error", err.Error()))
		os.Exit(1)
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Run(mux); err != nil {
			slogger.Error("failed to run worker server", slog.String("error", err.Error()))
			shutdown <- syscall.SIGTERM
		}
	}()

	go func() {
		if err := scheduler.Run(); err != nil {
			slogger.Error("failed to run scheduler", slog.String("error", err.Error()))
			shutdown <- syscall.SIGTERM
		}
	}()

	slogger.Info("worker started successfully",
		slog.Int("concurrency", cfg.Asynq.Concurrency),
		slog.Any("queues", cfg.Asynq.Queues),
		slog.String("cleanup_schedule", cfg.Asynq.CleanupSchedule))

	sig := <-shutdown
	slogger.Info("shutdown signal received", slog.String("signal", sig.String()))

	scheduler.Shutdown()
	srv.Shutdown()
	slogger.Info("worker shutdown complete")
}

func initDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*db.Database, error) {
	dbConfig := db.ConfigFrom(cfg.Database)
	dbConfig.MaxConnections = min(dbConfig.MaxConnections, int32(cfg.Asynq.Concurrency)+1)
	dbConfig.MinConnections = 1

	return db.NewDatabase(ctx, dbConfig, logger)
}
