// internal/handlers/pricing.go
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/alsaqri/phoneshop/internal/core/ports"
)

// PricingHandler exposes the VAT calculator and the identifier allocator.
type PricingHandler struct {
	responder
	pricing ports.PricingService
	ids     ports.IdentifierService
}

// NewPricingHandler creates a new pricing handler
func NewPricingHandler(pricing ports.PricingService, ids ports.IdentifierService, logger *slog.Logger) *PricingHandler {
	return &PricingHandler{
		responder: newResponder(logger.With(slog.String("handler", "pricing"))),
		pricing:   pricing,
		ids:       ids,
	}
}

// VAT handles GET /api/v1/pricing/vat?amount=&inclusive=
func (h *PricingHandler) VAT(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	inclusive := false
	if raw := q.Get("inclusive"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			h.respondError(w, r, http.StatusBadRequest, "invalid_input", "inclusive must be true or false")
			return
		}
		inclusive = v
	}

	breakdown, err := h.pricing.Breakdown(r.Context(), q.Get("amount"), inclusive)
	if err != nil {
		h.respondServiceError(w, r, err, "calculate VAT")
		return
	}

	h.respondJSON(w, http.StatusOK, breakdown)
}

// NextPhoneNumber handles GET /api/v1/identifiers/phone-number/next.
// The number is a preview; it is reserved only when a phone is created.
func (h *PricingHandler) NextPhoneNumber(w http.ResponseWriter, r *http.Request) {
	number, err := h.ids.NextPhoneNumber(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err, "compute next phone number")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"phone_number": number})
}

// BarcodeRequest optionally carries an operator-scanned barcode.
type BarcodeRequest struct {
	Barcode string `json:"barcode" validate:"omitempty,max=64"`
}

// AccessoryBarcode handles POST /api/v1/identifiers/accessory-barcode
func (h *PricingHandler) AccessoryBarcode(w http.ResponseWriter, r *http.Request) {
	var req BarcodeRequest
	if r.ContentLength != 0 {
		if !h.decode(w, r, &req) {
			return
		}
	}

	barcode, err := h.ids.AccessoryBarcode(r.Context(), req.Barcode)
	if err != nil {
		h.respondServiceError(w, r, err, "allocate barcode")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"barcode": barcode})
}
