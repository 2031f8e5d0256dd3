// internal/handlers/accessories.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/alsaqri/phoneshop/internal/core/domain"
	"github.com/alsaqri/phoneshop/internal/core/ports"
)

// AccessoryHandler handles accessory stock requests
type AccessoryHandler struct {
	responder
	service ports.AccessoryService
	labels  ports.LabelService
}

// NewAccessoryHandler creates a new accessory handler
func NewAccessoryHandler(service ports.AccessoryService, labels ports.LabelService, logger *slog.Logger) *AccessoryHandler {
	return &AccessoryHandler{
		responder: newResponder(logger.With(slog.String("handler", "accessories"))),
		service:   service,
		labels:    labels,
	}
}

// CreateAccessoryRequest is the body of POST /api/v1/accessories. An empty
// barcode asks the server to synthesise one.
type CreateAccessoryRequest struct {
	Barcode       string          `json:"barcode,omitempty" validate:"max=64"`
	Name          string          `json:"name" validate:"required,max=128"`
	Category      string          `json:"category" validate:"required,max=64"`
	Description   string          `json:"description,omitempty"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	Quantity      int             `json:"quantity" validate:"gte=0"`
}

// ToDomain converts the request to a domain model
func (r *CreateAccessoryRequest) ToDomain() *domain.Accessory {
	return &domain.Accessory{
		Name:          r.Name,
		Category:      r.Category,
		Description:   r.Description,
		PurchasePrice: r.PurchasePrice,
		SellingPrice:  r.SellingPrice,
		Quantity:      r.Quantity,
	}
}

// QuantityRequest is the body of PATCH /api/v1/accessories/{barcode}/quantity
type QuantityRequest struct {
	Delta int `json:"delta" validate:"required"`
}

// CreateAccessory handles POST /api/v1/accessories
func (h *AccessoryHandler) CreateAccessory(w http.ResponseWriter, r *http.Request) {
	var req CreateAccessoryRequest
	if !h.decode(w, r, &req) {
		return
	}

	accessory := req.ToDomain()
	if err := h.service.Create(r.Context(), accessory, req.Barcode); err != nil {
		h.respondServiceError(w, r, err, "create accessory")
		return
	}

	w.Header().Set("Location", "/api/v1/accessories/"+accessory.Barcode)
	h.respondJSON(w, http.StatusCreated, accessory)
}

// GetAccessory handles GET /api/v1/accessories/{barcode}
func (h *AccessoryHandler) GetAccessory(w http.ResponseWriter, r *http.Request) {
	accessory, err := h.service.Get(r.Context(), r.PathValue("barcode"))
	if err != nil {
		h.respondServiceError(w, r, err, "retrieve accessory")
		return
	}

	h.respondJSON(w, http.StatusOK, accessory)
}

// ListAccessories handles GET /api/v1/accessories
func (h *AccessoryHandler) ListAccessories(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context(), parseListParams(r))
	if err != nil {
		h.respondServiceError(w, r, err, "list accessories")
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// AdjustQuantity handles PATCH /api/v1/accessories/{barcode}/quantity
func (h *AccessoryHandler) AdjustQuantity(w http.ResponseWriter, r *http.Request) {
	var req QuantityRequest
	if !h.decode(w, r, &req) {
		return
	}

	accessory, err := h.service.AdjustQuantity(r.Context(), r.PathValue("barcode"), req.Delta)
	if err != nil {
		h.respondServiceError(w, r, err, "adjust quantity")
		return
	}

	h.respondJSON(w, http.StatusOK, accessory)
}

// AccessoryLabel handles GET /api/v1/accessories/{barcode}/label
func (h *AccessoryHandler) AccessoryLabel(w http.ResponseWriter, r *http.Request) {
	h.serveLabel(w, r, h.labels, func(r *http.Request, opts domain.LabelOptions) (*domain.LabelArtifact, error) {
		return h.labels.AccessoryLabel(r.Context(), r.PathValue("barcode"), opts)
	})
}
