// internal/handlers/reference.go
package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/alsaqri/phoneshop/internal/core/ports"
)

// maxImportSize caps reference workbook uploads.
const maxImportSize = 10 << 20

// ReferenceHandler serves lookup lists for the stock forms
type ReferenceHandler struct {
	responder
	service ports.ReferenceService
}

// NewReferenceHandler creates a new reference handler
func NewReferenceHandler(service ports.ReferenceService, logger *slog.Logger) *ReferenceHandler {
	return &ReferenceHandler{
		responder: newResponder(logger.With(slog.String("handler", "reference"))),
		service:   service,
	}
}

// Categories handles GET /api/v1/reference/categories
func (h *ReferenceHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.Categories(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err, "load categories")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{"categories": categories})
}

// PhoneTypes handles GET /api/v1/reference/phone-types?brand=
func (h *ReferenceHandler) PhoneTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.service.PhoneTypes(r.Context(), r.URL.Query().Get("brand"))
	if err != nil {
		h.respondServiceError(w, r, err, "load phone types")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{"phone_types": types})
}

// Import handles POST /api/v1/reference/import with an xlsx "file" part.
func (h *ReferenceHandler) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImportSize)
	if err := r.ParseMultipartForm(maxImportSize); err != nil {
		h.respondError(w, r, http.StatusBadRequest, "invalid_body", "Failed to parse form data")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.respondError(w, r, http.StatusBadRequest, "invalid_body", "File is required")
		return
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".xlsx") {
		h.respondError(w, r, http.StatusBadRequest, "invalid_body", "Only .xlsx files are allowed")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		h.respondError(w, r, http.StatusBadRequest, "invalid_body", "Failed to read upload")
		return
	}

	result, err := h.service.ImportWorkbook(r.Context(), data)
	if err != nil {
		h.respondServiceError(w, r, err, "import reference data")
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}
