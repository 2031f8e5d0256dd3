// internal/workers/tasks.go
package workers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/alsaqri/phoneshop/internal/core/domain"
)

const (
	TypeLabelRender     = "label:render"
	TypeLabelCleanup    = "label:cleanup"
	TypeInventoryExport = "inventory:export"
)

const (
	QueueCritical = "critical"
	QueueDefault  = "default"
	QueueLow      = "low"
)

// LabelRenderPayload asks a worker to pre-render and store a sticker.
type LabelRenderPayload struct {
	Subject    domain.LabelSubject `json:"subject"`
	Identifier string              `json:"identifier"`
}

// CleanupPayload selects which stored prefixes are swept.
type CleanupPayload struct {
	Prefixes []string      `json:"prefixes,omitempty"`
	MaxAge   time.Duration `json:"max_age,omitempty"`
}

// Enqueuer is the part of *asynq.Client the task client needs.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Client enqueues background work. It satisfies ports.TaskQueue.
type Client struct {
	enqueuer Enqueuer
	maxRetry int
	logger   *slog.Logger
}

// NewClient creates a task client over an asynq client.
func NewClient(enqueuer Enqueuer, maxRetry int, logger *slog.Logger) *Client {
	if maxRetry < 0 {
		maxRetry = 0
	}
	return &Client{
		enqueuer: enqueuer,
		maxRetry: maxRetry,
		logger:   logger.With(slog.String("component", "task_client")),
	}
}

// NewLabelRenderTask builds a label:render task.
func NewLabelRenderTask(subject domain.LabelSubject, identifier string) (*asynq.Task, error) {
	payload, err := json.Marshal(LabelRenderPayload{Subject: subject, Identifier: identifier})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}
	return asynq.NewTask(TypeLabelRender, payload), nil
}

// NewCleanupTask builds a label:cleanup task. A zero maxAge uses the
// worker's configured retention.
func NewCleanupTask(maxAge time.Duration, prefixes ...string) (*asynq.Task, error) {
	payload, err := json.Marshal(CleanupPayload{Prefixes: prefixes, MaxAge: maxAge})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}
	return asynq.NewTask(TypeLabelCleanup, payload), nil
}

// EnqueueLabelRender queues a sticker render for a newly stocked item.
// A render already queued for the same item is not duplicated.
func (c *Client) EnqueueLabelRender(ctx context.Context, subject domain.LabelSubject, identifier string) error {
	task, err := NewLabelRenderTask(subject, identifier)
	if err != nil {
		return err
	}

	info, err := c.enqueuer.EnqueueContext(ctx, task,
		asynq.Queue(QueueDefault),
		asynq.MaxRetry(c.maxRetry),
		asynq.TaskID(fmt.Sprintf("label-%s-%s", subject, identifier)),
		asynq.Retention(time.Hour),
	)
	if err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			c.logger.DebugContext(ctx, "label render already queued",
				slog.String("subject", string(subject)),
				slog.String("identifier", identifier))
			return nil
		}
		return fmt.Errorf("failed to enqueue label render: %w", err)
	}

	c.logger.DebugContext(ctx, "label render queued",
		slog.String("task_id", info.ID),
		slog.String("identifier", identifier))
	return nil
}

// EnqueueInventoryExport queues a workbook export and returns the task id.
func (c *Client) EnqueueInventoryExport(ctx context.Context) (string, error) {
	task := asynq.NewTask(TypeInventoryExport, nil)

	info, err := c.enqueuer.EnqueueContext(ctx, task,
		asynq.Queue(QueueLow),
		asynq.MaxRetry(c.maxRetry),
		asynq.Timeout(5*time.Minute),
		asynq.Retention(24*time.Hour),
	)
	if err != nil {
		return "", fmt.Errorf("failed to enqueue inventory export: %w", err)
	}

	c.logger.InfoContext(ctx, "inventory export queued", slog.String("task_id", info.ID))
	return info.ID, nil
}
