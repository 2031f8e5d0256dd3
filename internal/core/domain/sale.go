// internal/core/domain/sale.go
package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemType says which stock table a sale line draws from.
type ItemType string

const (
	ItemTypePhone     ItemType = "phone"
	ItemTypeAccessory ItemType = "accessory"
)

// SaleItem is one line of a sale. Identifier is the phone number or the
// accessory barcode; UnitPrice is tax-inclusive.
type SaleItem struct {
	ID          uuid.UUID       `json:"id"`
	ItemType    ItemType        `json:"item_type"`
	Identifier  string          `json:"identifier"`
	Description string          `json:"description,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// Sale is a point-of-sale transaction.
type Sale struct {
	ID            uuid.UUID       `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	CustomerName  string          `json:"customer_name,omitempty"`
	CustomerPhone string          `json:"customer_phone,omitempty"`
	Items         []SaleItem      `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	VATAmount     decimal.Decimal `json:"vat_amount"`
	Total         decimal.Decimal `json:"total"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Validate checks the sale lines.
func (s *Sale) Validate() error {
	if len(s.Items) == 0 {
		return fmt.Errorf("%w: a sale needs at least one item", ErrInvalidInput)
	}
	total := decimal.Zero
	for i := range s.Items {
		item := &s.Items[i]
		item.Identifier = strings.TrimSpace(item.Identifier)
		switch item.ItemType {
		case ItemTypePhone, ItemTypeAccessory:
		default:
			return fmt.Errorf("%w: item %d has unknown type %q", ErrInvalidInput, i, item.ItemType)
		}
		if item.Identifier == "" {
			return fmt.Errorf("%w: item %d has no identifier", ErrInvalidInput, i)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: item %d quantity must be positive", ErrInvalidInput, i)
		}
		if err := CheckAmount(fmt.Sprintf("item %d price", i), item.UnitPrice); err != nil {
			return err
		}
		total = total.Add(Cents(item.UnitPrice).Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	if total.GreaterThan(MaxAmount) {
		return fmt.Errorf("%w: sale total exceeds %s", ErrInvalidInput, MaxAmount)
	}
	return nil
}

// CalculateTotals sums the lines and splits the tax-inclusive total.
func (s *Sale) CalculateTotals(vat VAT) {
	total := decimal.Zero
	for i := range s.Items {
		item := &s.Items[i]
		item.UnitPrice = Cents(item.UnitPrice)
		item.LineTotal = item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(item.LineTotal)
	}

	b := vat.Breakdown(total, true)
	s.Subtotal = b.Net
	s.VATAmount = b.VAT
	s.Total = b.Gross
}

// PrepareForStorage assigns ids and the creation time.
func (s *Sale) PrepareForStorage() {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	for i := range s.Items {
		if s.Items[i].ID == uuid.Nil {
			s.Items[i].ID = uuid.New()
		}
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
}
