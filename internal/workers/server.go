// internal/workers/server.go
package workers

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/hibiken/asynq"

	"github.com/alsaqri/phoneshop/internal/pkg/config"
)

// Processors are the task handlers a worker process serves.
type Processors struct {
	Labels  *LabelProcessor
	Reports *ReportProcessor
	Cleanup *CleanupProcessor
}

// NewServer builds the asynq server with the shop's retry and error policy.
func NewServer(redis asynq.RedisConnOpt, cfg config.AsynqConfig, logger *slog.Logger) *asynq.Server {
	return asynq.NewServer(redis, asynq.Config{
		Concurrency:     cfg.Concurrency,
		Queues:          cfg.Queues,
		StrictPriority:  cfg.StrictPriority,
		ErrorHandler:    failureReporter(logger),
		RetryDelayFunc:  RetryDelay,
		ShutdownTimeout: cfg.ShutdownTimeout,
		HealthCheckFunc: func(err error) {
			if err != nil {
				logger.Error("worker lost redis", slog.String("error", err.Error()))
			}
		},
		Logger: newAsynqLogger(logger),
	})
}

// NewMux routes every task type to its processor.
func NewMux(p Processors, logger *slog.Logger) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.Use(LoggingMiddleware(logger))
	mux.HandleFunc(TypeLabelRender, p.Labels.ProcessLabel)
	mux.HandleFunc(TypeInventoryExport, p.Reports.ExportInventory)
	mux.HandleFunc(TypeLabelCleanup, p.Cleanup.CleanupStorage)
	return mux
}

// NewScheduler registers the periodic label cleanup on the low queue.
func NewScheduler(redis asynq.RedisConnOpt, schedule string, logger *slog.Logger) (*asynq.Scheduler, error) {
	scheduler := asynq.NewScheduler(redis, &asynq.SchedulerOpts{Logger: newAsynqLogger(logger)})

	task, err := NewCleanupTask(0)
	if err != nil {
		return nil, err
	}
	if _, err := scheduler.Register(schedule, task, asynq.Queue(QueueLow)); err != nil {
		return nil, fmt.Errorf("failed to schedule cleanup %q: %w", schedule, err)
	}
	return scheduler, nil
}

// RetryDelay doubles from one second. Label renders are waited on by a
// cashier, so they cap at a minute; everything else caps at ten.
func RetryDelay(n int, _ error, t *asynq.Task) time.Duration {
	ceiling := 10 * time.Minute
	if t != nil && t.Type() == TypeLabelRender {
		ceiling = time.Minute
	}
	if n > 20 {
		return ceiling
	}
	return min(time.Second<<uint(n), ceiling)
}

// failureReporter logs retryable failures at WARN and the final one at ERROR.
func failureReporter(logger *slog.Logger) asynq.ErrorHandlerFunc {
	return func(ctx context.Context, task *asynq.Task, err error) {
		retried, _ := asynq.GetRetryCount(ctx)
		maxRetry, _ := asynq.GetMaxRetry(ctx)

		level := slog.LevelWarn
		msg := "task failed, will retry"
		if retried >= maxRetry {
			level = slog.LevelError
			msg = "task failed permanently"
		}
		logger.Log(ctx, level, msg,
			slog.String("type", task.Type()),
			slog.String("payload", string(task.Payload())),
			slog.Int("retry", retried),
			slog.Int("max_retry", maxRetry),
			slog.String("error", err.Error()))
	}
}

// asynqLogger adapts slog for asynq's internal logging.
type asynqLogger struct {
	logger *slog.Logger
}

func newAsynqLogger(logger *slog.Logger) *asynqLogger {
	return &asynqLogger{logger: logger.With(slog.String("component", "asynq"))}
}

func (l *asynqLogger) Debug(args ...interface{}) { l.logger.Debug(fmt.Sprint(args...)) }
func (l *asynqLogger) Info(args ...interface{})  { l.logger.Info(fmt.Sprint(args...)) }
func (l *asynqLogger) Warn(args ...interface{})  { l.logger.Warn(fmt.Sprint(args...)) }
func (l *asynqLogger) Error(args ...interface{}) { l.logger.Error(fmt.Sprint(args...)) }

func (l *asynqLogger) Fatal(args ...interface{}) {
	l.logger.Error(fmt.Sprint(args...))
	os.Exit(1)
}
