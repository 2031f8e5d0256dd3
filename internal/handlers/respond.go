// internal/handlers/respond.go
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/alsaqri/phoneshop/internal/core/domain"
	"github.com/alsaqri/phoneshop/internal/core/ports"
	"github.com/alsaqri/phoneshop/internal/pkg/logger"
)

const maxBodyBytes = 1 << 20

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error     string            `json:"error"`
	Code      string            `json:"code,omitempty"`
	Fields    map[string]string `json:"fields,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

// responder holds the JSON helpers shared by all handlers.
type responder struct {
	logger   *slog.Logger
	validate *validator.Validate
}

func newResponder(logger *slog.Logger) responder {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return responder{
		logger:   logger,
		validate: validate,
	}
}

func (h responder) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

func (h responder) respondError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	h.respondJSON(w, status, ErrorResponse{
		Error:     message,
		Code:      code,
		RequestID: logger.RequestIDFromContext(r.Context()),
	})
}

// respondServiceError maps domain errors to HTTP statuses; anything
// unrecognised is logged and hidden behind a 500.
func (h responder) respondServiceError(w http.ResponseWriter, r *http.Request, err error, action string) {
	status, code := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), "failed to "+action,
			slog.String("error", err.Error()))
		h.respondError(w, r, status, code, "Failed to "+action)
		return
	}

	h.logger.WarnContext(r.Context(), "request rejected",
		slog.String("action", action),
		slog.Int("status", status),
		slog.String("error", err.Error()))
	h.respondError(w, r, status, code, err.Error())
}

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, "invalid_input"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, domain.ErrDuplicateIdentifier):
		return http.StatusConflict, "duplicate_identifier"
	case errors.Is(err, domain.ErrAllocationExhausted):
		return http.StatusConflict, "allocation_exhausted"
	case errors.Is(err, domain.ErrInsufficientStock):
		return http.StatusUnprocessableEntity, "insufficient_stock"
	case errors.Is(err, domain.ErrMalformedSequence):
		return http.StatusUnprocessableEntity, "malformed_sequence"
	case errors.Is(err, domain.ErrCapacityExceeded):
		return http.StatusInsufficientStorage, "capacity_exceeded"
	case errors.Is(err, domain.ErrRenderFailure):
		return http.StatusInternalServerError, "render_failure"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

// decode reads a JSON body into dst and runs struct validation on it.
func (h responder) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		h.respondError(w, r, http.StatusBadRequest, "invalid_body", "Invalid request body: "+err.Error())
		return false
	}

	if err := h.validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			h.respondError(w, r, http.StatusBadRequest, "invalid_body", err.Error())
			return false
		}

		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[jsonName(fe)] = describe(fe)
		}
		h.respondJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:     "Validation failed",
			Code:      "invalid_input",
			Fields:    fields,
			RequestID: logger.RequestIDFromContext(r.Context()),
		})
		return false
	}
	return true
}

// jsonName drops the struct name from the namespace: items[0].item_type.
func jsonName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "min", "gte":
		return "must be at least " + fe.Param()
	case "max", "lte":
		return "must be at most " + fe.Param()
	case "printascii":
		return "must be printable ASCII"
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}

// parseListParams reads paging, sorting and filters from the query string.
func parseListParams(r *http.Request) ports.ListParams {
	q := r.URL.Query()
	params := ports.ListParams{
		Search:    q.Get("q"),
		Brand:     q.Get("brand"),
		Condition: q.Get("condition"),
		Category:  q.Get("category"),
		SortBy:    q.Get("sort"),
		SortOrder: q.Get("order"),
	}

	if page, err := strconv.Atoi(q.Get("page")); err == nil {
		params.Page = page
	}
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil {
		params.PageSize = limit
	}

	params.Normalize()
	return params
}
