// internal/workers/cleanup_processor.go
package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/alsaqri/phoneshop/internal/core/ports"
)

// DefaultCleanupPrefixes are swept when a task names none.
var DefaultCleanupPrefixes = []string{"labels/", "exports/"}

// CleanupProcessor removes stored labels and exports past their retention
type CleanupProcessor struct {
	storage   ports.BlobStorage
	retention time.Duration
	logger    *slog.Logger
}

// NewCleanupProcessor creates a new cleanup processor
func NewCleanupProcessor(storage ports.BlobStorage, retention time.Duration, logger *slog.Logger) *CleanupProcessor {
	if retention <= 0 {
		retention = 7 * 24 * time.Hour
	}
	return &CleanupProcessor{
		storage:   storage,
		retention: retention,
		logger:    logger.With(slog.String("processor", "cleanup")),
	}
}

// CleanupStorage deletes every object under the task's prefixes older than
// the retention. Individual delete failures are logged and skipped.
func (p *CleanupProcessor) CleanupStorage(ctx context.Context, t *asynq.Task) error {
	var payload CleanupPayload
	if len(t.Payload()) > 0 {
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return fmt.Errorf("failed to unmarshal payload: %v: %w", err, asynq.SkipRetry)
		}
	}

	prefixes := payload.Prefixes
	if len(prefixes) == 0 {
		prefixes = DefaultCleanupPrefixes
	}
	maxAge := payload.MaxAge
	if maxAge <= 0 {
		maxAge = p.retention
	}

	p.logger.InfoContext(ctx, "cleaning up stored files",
		slog.Any("prefixes", prefixes),
		slog.Duration("max_age", maxAge))

	var deleted, failed int
	for _, prefix := range prefixes {
		keys, err := p.storage.ListOlderThan(ctx, prefix, maxAge)
		if err != nil {
			return fmt.Errorf("failed to list %s: %w", prefix, err)
		}

		for _, key := range keys {
			if err := p.storage.Delete(ctx, key); err != nil {
				p.logger.WarnContext(ctx, "failed to delete stored file",
					slog.String("key", key),
					slog.String("error", err.Error()))
				failed++
				continue
			}
			deleted++
		}
	}

	p.logger.InfoContext(ctx, "stored files cleaned up",
		slog.Int("deleted", deleted),
		slog.Int("failed", failed))
	return nil
}
