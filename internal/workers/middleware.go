// internal/workers/middleware.go
package workers

import (
	"context"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/alsaqri/phoneshop/internal/pkg/logger"
)

// LoggingMiddleware tags the task context with its id and logs each run.
func LoggingMiddleware(l *slog.Logger) asynq.MiddlewareFunc {
	return func(next asynq.Handler) asynq.Handler {
		return asynq.HandlerFunc(func(ctx context.Context, t *asynq.Task) error {
			if id, ok := asynq.GetTaskID(ctx); ok {
				ctx = logger.WithTaskID(ctx, id)
			}
			retried, _ := asynq.GetRetryCount(ctx)

			start := time.Now()
			err := next.ProcessTask(ctx, t)

			level := slog.LevelInfo
			if err != nil {
				level = slog.LevelWarn
			}
			l.Log(ctx, level, "task processed",
				slog.String("type", t.Type()),
				slog.Int("retry", retried),
				slog.Duration("duration", time.Since(start)),
				slog.Bool("failed", err != nil))
			return err
		})
	}
}
