// internal/handlers/phones.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/alsaqri/phoneshop/internal/core/domain"
	"github.com/alsaqri/phoneshop/internal/core/ports"
)

// PhoneHandler handles phone stock requests
type PhoneHandler struct {
	responder
	service ports.PhoneService
	labels  ports.LabelService
}

// NewPhoneHandler creates a new phone handler
func NewPhoneHandler(service ports.PhoneService, labels ports.LabelService, logger *slog.Logger) *PhoneHandler {
	return &PhoneHandler{
		responder: newResponder(logger.With(slog.String("handler", "phones"))),
		service:   service,
		labels:    labels,
	}
}

// CreatePhoneRequest is the body of POST /api/v1/phones
type CreatePhoneRequest struct {
	Brand          string          `json:"brand" validate:"required,max=64"`
	Model          string          `json:"model" validate:"required,max=128"`
	Color          string          `json:"color,omitempty" validate:"max=64"`
	Memory         string          `json:"memory,omitempty" validate:"max=32"`
	Condition      string          `json:"condition,omitempty" validate:"omitempty,oneof=new used"`
	SerialNumber   string          `json:"serial_number,omitempty" validate:"max=64"`
	BatteryHealth  int             `json:"battery_health,omitempty" validate:"gte=0,lte=100"`
	PurchasePrice  decimal.Decimal `json:"purchase_price"`
	SellingPrice   decimal.Decimal `json:"selling_price"`
	WarrantyMonths int             `json:"warranty_months,omitempty" validate:"gte=0"`
	CustomerName   string          `json:"customer_name,omitempty"`
	CustomerID     string          `json:"customer_id,omitempty"`
	BuyerName      string          `json:"buyer_name,omitempty"`
	Description    string          `json:"description,omitempty"`
	Quantity       int             `json:"quantity,omitempty" validate:"gte=0"`
}

// ToDomain converts the request to a domain model
func (r *CreatePhoneRequest) ToDomain() *domain.Phone {
	return &domain.Phone{
		Brand:          r.Brand,
		Model:          r.Model,
		Color:          r.Color,
		Memory:         r.Memory,
		Condition:      domain.PhoneCondition(r.Condition),
		SerialNumber:   r.SerialNumber,
		BatteryHealth:  r.BatteryHealth,
		PurchasePrice:  r.PurchasePrice,
		SellingPrice:   r.SellingPrice,
		WarrantyMonths: r.WarrantyMonths,
		CustomerName:   r.CustomerName,
		CustomerID:     r.CustomerID,
		BuyerName:      r.BuyerName,
		Description:    r.Description,
		Quantity:       r.Quantity,
	}
}

// CreatePhone handles POST /api/v1/phones
func (h *PhoneHandler) CreatePhone(w http.ResponseWriter, r *http.Request) {
	var req CreatePhoneRequest
	if !h.decode(w, r, &req) {
		return
	}

	phone := req.ToDomain()
	if err := h.service.Create(r.Context(), phone); err != nil {
		h.respondServiceError(w, r, err, "create phone")
		return
	}

	w.Header().Set("Location", "/api/v1/phones/"+phone.PhoneNumber)
	h.respondJSON(w, http.StatusCreated, phone)
}

// GetPhone handles GET /api/v1/phones/{number}
func (h *PhoneHandler) GetPhone(w http.ResponseWriter, r *http.Request) {
	phone, err := h.service.Get(r.Context(), r.PathValue("number"))
	if err != nil {
		h.respondServiceError(w, r, err, "retrieve phone")
		return
	}

	h.respondJSON(w, http.StatusOK, phone)
}

// ListPhones handles GET /api/v1/phones
func (h *PhoneHandler) ListPhones(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context(), parseListParams(r))
	if err != nil {
		h.respondServiceError(w, r, err, "list phones")
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// DeletePhone handles DELETE /api/v1/phones/{number}
func (h *PhoneHandler) DeletePhone(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), r.PathValue("number")); err != nil {
		h.respondServiceError(w, r, err, "delete phone")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// PhoneLabel handles GET /api/v1/phones/{number}/label
func (h *PhoneHandler) PhoneLabel(w http.ResponseWriter, r *http.Request) {
	h.serveLabel(w, r, h.labels, func(r *http.Request, opts domain.LabelOptions) (*domain.LabelArtifact, error) {
		return h.labels.PhoneLabel(r.Context(), r.PathValue("number"), opts)
	})
}
