// internal/handlers/sales.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/alsaqri/phoneshop/internal/core/domain"
	"github.com/alsaqri/phoneshop/internal/core/ports"
)

// SaleHandler handles point-of-sale requests
type SaleHandler struct {
	responder
	service ports.SaleService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(service ports.SaleService, logger *slog.Logger) *SaleHandler {
	return &SaleHandler{
		responder: newResponder(logger.With(slog.String("handler", "sales"))),
		service:   service,
	}
}

// SaleItemRequest is one line of a sale. UnitPrice is tax-inclusive.
type SaleItemRequest struct {
	ItemType    string          `json:"item_type" validate:"required,oneof=phone accessory"`
	Identifier  string          `json:"identifier" validate:"required,max=64"`
	Description string          `json:"description,omitempty"`
	Quantity    int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// CreateSaleRequest is the body of POST /api/v1/sales. The invoice number
// is always allocated by the server.
type CreateSaleRequest struct {
	CustomerName  string            `json:"customer_name,omitempty" validate:"max=128"`
	CustomerPhone string            `json:"customer_phone,omitempty" validate:"max=32"`
	Items         []SaleItemRequest `json:"items" validate:"required,min=1,dive"`
}

// ToDomain converts the request to a domain model
func (r *CreateSaleRequest) ToDomain() *domain.Sale {
	sale := &domain.Sale{
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		Items:         make([]domain.SaleItem, 0, len(r.Items)),
	}
	for _, item := range r.Items {
		sale.Items = append(sale.Items, domain.SaleItem{
			ItemType:    domain.ItemType(item.ItemType),
			Identifier:  item.Identifier,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}
	return sale
}

// CreateSale handles POST /api/v1/sales
func (h *SaleHandler) CreateSale(w http.ResponseWriter, r *http.Request) {
	var req CreateSaleRequest
	if !h.decode(w, r, &req) {
		return
	}

	sale := req.ToDomain()
	if err := h.service.Create(r.Context(), sale); err != nil {
		h.respondServiceError(w, r, err, "record sale")
		return
	}

	h.respondJSON(w, http.StatusCreated, sale)
}

// ListSales handles GET /api/v1/sales
func (h *SaleHandler) ListSales(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context(), parseListParams(r))
	if err != nil {
		h.respondServiceError(w, r, err, "list sales")
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}
