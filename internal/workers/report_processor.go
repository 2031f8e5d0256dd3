// internal/workers/report_processor.go
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

// ExportResult is written as the task result of an inventory export.
type ExportResult struct {
	Key            string `json:"key"`
	ProcessingTime string `json:"processing_time"`
}

// ReportProcessor handles inventory export tasks
type ReportProcessor struct {
	reports ports.ReportService
	logger  *slog.Logger
}

// NewReportProcessor creates a new report processor
func NewReportProcessor(reports ports.ReportService, logger *slog.Logger) *ReportProcessor {
	return &ReportProcessor{
		reports: reports,
		logger:  logger.With(slog.String("processor", "report")),
	}
}

// ExportInventory builds the inventory workbook and stores it.
func (p *ReportProcessor) ExportInventory(ctx context.Context, t *asynq.Task) error {
	start := time.Now()

	key, err := p.reports.ExportInventory(ctx)
	if err != nil {
		return fmt.Errorf("failed to export inventory: %w", err)
	}

	result, _ := json.Marshal(ExportResult{Key: key, ProcessingTime: time.Since(start).String()})
	if w := t.ResultWriter(); w != nil {
		if _, err := w.Write(result); err != nil {
			p.logger.WarnContext(ctx, "failed to write task result",
				slog.String("error", err.Error()))
		}
	}

	p.logger.InfoContext(ctx, "inventory export completed",
		slog.String("key", key),
		slog.Duration("duration", time.Since(start)))
	return nil
}
