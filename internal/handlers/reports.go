// internal/handlers/reports.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/alsaqri/phoneshop/internal/core/ports"
)

// ReportHandler serves dashboard numbers and inventory exports
type ReportHandler struct {
	responder
	service ports.ReportService
	queue   ports.TaskQueue
}

// NewReportHandler creates a new report handler. With a nil queue exports
// run inline.
func NewReportHandler(service ports.ReportService, queue ports.TaskQueue, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{
		responder: newResponder(logger.With(slog.String("handler", "reports"))),
		service:   service,
		queue:     queue,
	}
}

// ExportResponse reports where an export went.
type ExportResponse struct {
	Status string `json:"status"`
	TaskID string `json:"task_id,omitempty"`
	Key    string `json:"key,omitempty"`
}

// Dashboard handles GET /api/v1/reports/dashboard
func (h *ReportHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Dashboard(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err, "load dashboard")
		return
	}

	h.respondJSON(w, http.StatusOK, stats)
}

// InventorySummary handles GET /api/v1/reports/inventory-summary
func (h *ReportHandler) InventorySummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.InventorySummary(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err, "load inventory summary")
		return
	}

	h.respondJSON(w, http.StatusOK, summary)
}

// Export handles POST /api/v1/reports/export
func (h *ReportHandler) Export(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.queue == nil {
		key, err := h.service.ExportInventory(ctx)
		if err != nil {
			h.respondServiceError(w, r, err, "export inventory")
			return
		}
		h.respondJSON(w, http.StatusCreated, ExportResponse{Status: "completed", Key: key})
		return
	}

	taskID, err := h.queue.EnqueueInventoryExport(ctx)
	if err != nil {
		h.respondServiceError(w, r, err, "queue inventory export")
		return
	}

	h.logger.InfoContext(ctx, "inventory export queued",
		slog.String("task_id", taskID))
	h.respondJSON(w, http.StatusAccepted, ExportResponse{Status: "queued", TaskID: taskID})
}
