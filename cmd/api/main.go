// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/alsaqri/phoneshop/internal/adapters/db"
	redis_a "github.com/alsaqri/phoneshop/internal/adapters/redis_adapter"
	"github.com/alsaqri/phoneshop/internal/adapters/storage"
	"github.com/alsaqri/phoneshop/internal/core/domain"
	"github.com/alsaqri/phoneshop/internal/core/services"
	"github.com/alsaqri/phoneshop/internal/handlers"
	"github.com/alsaqri/phoneshop/internal/handlers/middleware"
	"github.com/alsaqri/phoneshop/internal/pkg/config"
	"github.com/alsaqri/phoneshop/internal/pkg/label"
	"github.com/alsaqri/phoneshop/internal/pkg/logger"
	"github.com/alsaqri/phoneshop/internal/workers"
)

// Build information injected at compile time
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	slogger := logger.Setup(logger.Config{Level: "debug", Format: "json"})

	slogger.Info("starting phone shop pricing engine",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
	)

	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if cfg.App.Version == "dev" {
		cfg.App.Version = Version
	}

	slogger = logger.Setup(logger.Config{
		Level:          cfg.App.LogLevel,
		Format:         cfg.App.LogFormat,
		File:           cfg.App.LogFile,
		AddSource:      cfg.App.Debug,
		ServiceName:    cfg.App.Name,
		ServiceVersion: cfg.App.Version,
		Environment:    cfg.App.Environment,
	})
	slogger.Info("configuration loaded",
		slog.String("environment", cfg.App.Environment),
		slog.String("log_level", cfg.App.LogLevel),
		slog.String("vat_rate", cfg.Pricing.VATRate.String()),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if cfg.Database.MigrateOnStart {
		if err := runMigrations(ctx, cfg, slogger); err != nil {
			slogger.Error("failed to run migrations", slog.String("error", err.Error()))
			if cfg.IsProduction() {
				os.Exit(1)
			}
		}
	}

	deps, err := initializeDependencies(ctx, cfg, slogger)
	if err != nil {
		slogger.Error("failed to initialize dependencies", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer deps.cleanup()

	server := setupHTTPServer(ctx, cfg, deps, slogger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slogger.Info("starting HTTP server", slog.String("address", cfg.GetServerAddress()))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slogger.Info("shutting down HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.GracefulTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			_ = server.Close()
			return fmt.Errorf("failed to gracefully shutdown server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		slogger.Error("server stopped with error", slog.String("error", err.Error()))
		deps.cleanup()
		os.Exit(1)
	}
	slogger.Info("server shutdown complete")
}

// dependencies holds all application dependencies
type dependencies struct {
	database    *db.Database
	redisClient *redis.Client
	asynqClient *asynq.Client
	inspector   *asynq.Inspector
	routes      *handlers.Routes
	closed      bool
}

func (d *dependencies) cleanup() {
	if d.closed {
		return
	}
	d.closed = true

	if d.asynqClient != nil {
		_ = d.asynqClient.Close()
	}
	if d.inspector != nil {
		_ = d.inspector.Close()
	}
	if d.redisClient != nil {
		_ = d.redisClient.Close()
	}
	if d.database != nil {
		d.database.Close()
	}
}

func initializeDependencies(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*dependencies, error) {
	deps := &dependencies{}

	logger.Info("connecting to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Name),
	)
	database, err := db.NewDatabase(ctx, db.ConfigFrom(cfg.Database), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	deps.database = database

	logger.Info("connecting to Redis", slog.String("address", cfg.GetRedisAddress()))
	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.GetRedisAddress(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		MaxRetries:   cfg.Redis.MaxRetries,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
	})
	deps.redisClient = redisClient
	if err := redisClient.Ping(ctx).Err(); err != nil {
		deps.cleanup()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	cache := redis_a.NewCache(redisClient, cfg.Redis.TTL, logger)

	asynqRedisOpt := asynq.RedisClientOpt{
		Addr:     cfg.GetRedisAddress(),
		Password: cfg.Redis.Password,
		DB:       cfg.Asynq.RedisDB,
	}
	deps.asynqClient = asynq.NewClient(asynqRedisOpt)
	deps.inspector = asynq.NewInspector(asynqRedisOpt)
	queue := workers.NewClient(deps.asynqClient, cfg.Asynq.RetryMax, logger)

	blobs, err := storage.New(ctx, cfg.Storage, logger)
	if err != nil {
		deps.cleanup()
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	composer, err := label.NewComposer(label.OptionsFromConfig(cfg.Labels), logger)
	if err != nil {
		deps.cleanup()
		return nil, fmt.Errorf("failed to initialize label composer: %w", err)
	}

	vat, err := domain.NewVAT(cfg.Pricing.VATRate)
	if err != nil {
		deps.cleanup()
		return nil, fmt.Errorf("invalid VAT rate: %w", err)
	}

	// Repositories
	phoneRepo := db.NewPhoneRepository(database, cfg.Identifiers.MaxAttempts, logger)
	accessoryRepo := db.NewAccessoryRepository(database, logger)
	saleRepo := db.NewSaleRepository(database, logger)
	referenceRepo := db.NewReferenceRepository(database, logger)
	reportRepo := db.NewReportRepository(database, logger)

	// Services
	pricing := services.NewPricingService(vat, logger)
	ids := services.NewIdentifierService(phoneRepo, accessoryRepo, saleRepo, cache, services.IdentifierConfig{
		MaxAttempts:    cfg.Identifiers.MaxAttempts,
		ReservationTTL: cfg.Identifiers.ReservationTTL,
		StrictSequence: cfg.Identifiers.StrictSequence,
	}, logger)
	phones := services.NewPhoneService(phoneRepo, ids, pricing, cache, queue, logger)
	accessories := services.NewAccessoryService(accessoryRepo, ids, pricing, cache, queue, logger)
	sales := services.NewSaleService(saleRepo, ids, pricing, cache, logger)
	labels := services.NewLabelService(composer, phoneRepo, accessoryRepo, blobs, services.LabelConfig{
		Header:   cfg.Labels.CompanyName,
		Currency: cfg.Pricing.Currency,
	}, logger)
	reference := services.NewReferenceService(referenceRepo, cache, cfg.Redis.TTL, logger)
	reports := services.NewReportService(reportRepo, cache, blobs, cfg.Redis.TTL, logger)

	// Handlers
	var inspector handlers.QueueInspector = deps.inspector
	deps.routes = &handlers.Routes{
		Health:      handlers.NewHealthHandler(database, cache, ids, inspector, cfg, logger),
		Pricing:     handlers.NewPricingHandler(pricing, ids, logger),
		Phones:      handlers.NewPhoneHandler(phones, labels, logger),
		Accessories: handlers.NewAccessoryHandler(accessories, labels, logger),
		Sales:       handlers.NewSaleHandler(sales, logger),
		Reference:   handlers.NewReferenceHandler(reference, logger),
		Reports:     handlers.NewReportHandler(reports, queue, logger),
	}

	if local, ok := blobs.(*storage.LocalStorage); ok {
		deps.routes.Files = http.FileServer(http.Dir(local.Root()))
		deps.routes.FilesPath = filesPath(cfg.Storage.LocalBaseURL)
	}

	logger.Info("all dependencies initialized successfully",
		slog.String("storage", cfg.Storage.Driver))
	return deps, nil
}

// filesPath is the URL path local files are served under.
func filesPath(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil || u.Path == "" {
		return "/files"
	}
	return u.Path
}

func setupHTTPServer(ctx context.Context, cfg *config.Config, deps *dependencies, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	deps.routes.Register(mux)

	mws := []middleware.Middleware{
		middleware.RequestID(cfg.Security.RequestIDHeader),
		middleware.AccessLog(logger),
		middleware.Recover(logger),
	}
	if cfg.Security.RateLimitRequests > 0 {
		mws = append(mws, middleware.Throttle(ctx, cfg.Security.RateLimitRequests, cfg.Security.RateLimitDuration))
	}
	if len(cfg.Security.AllowedOrigins) > 0 {
		mws = append(mws, middleware.CORS(cfg.Security.AllowedOrigins))
	}
	if cfg.Security.SecureHeaders {
		mws = append(mws, middleware.SecureHeaders)
	}
	mws = append(mws, middleware.Timeout(cfg.Server.WriteTimeout))

	return &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        middleware.Chain(mux, mws...),
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
		ErrorLog:       slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}
}

func runMigrations(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("running database migrations")

	return db.Migrate(ctx, db.MigrationConfig{DatabaseURL: cfg.GetDatabaseURL()}, logger)
}
