// internal/core/domain/accessory.go
package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Accessory is a countable stock item identified by a barcode.
type Accessory struct {
	ID                   uuid.UUID       `json:"id"`
	Barcode              string          `json:"barcode"`
	Name                 string          `json:"name"`
	Category             string          `json:"category"`
	Description          string          `json:"description,omitempty"`
	PurchasePrice        decimal.Decimal `json:"purchase_price"`
	SellingPrice         decimal.Decimal `json:"selling_price"`
	PurchasePriceWithVAT decimal.Decimal `json:"purchase_price_with_vat"`
	SellingPriceWithVAT  decimal.Decimal `json:"selling_price_with_vat"`
	Quantity             int             `json:"quantity"`
	LabelKey             string          `json:"label_key,omitempty"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// Validate performs domain validation on the accessory
func (a *Accessory) Validate() error {
	a.Name = strings.TrimSpace(a.Name)
	a.Category = strings.TrimSpace(a.Category)

	if a.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if a.Category == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidInput)
	}
	if err := CheckAmount("purchase price", a.PurchasePrice); err != nil {
		return err
	}
	if err := CheckAmount("selling price", a.SellingPrice); err != nil {
		return err
	}
	if a.Quantity < 0 {
		return fmt.Errorf("%w: quantity cannot be negative", ErrInvalidInput)
	}
	return nil
}

// ApplyVAT fills the tax-inclusive price fields.
func (a *Accessory) ApplyVAT(vat VAT) {
	a.PurchasePrice = Cents(a.PurchasePrice)
	a.SellingPrice = Cents(a.SellingPrice)
	a.PurchasePriceWithVAT = vat.WithVAT(a.PurchasePrice)
	a.SellingPriceWithVAT = vat.WithVAT(a.SellingPrice)
}

// PrepareForStorage assigns an id and timestamps.
func (a *Accessory) PrepareForStorage() {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	now := time.Now().UTC()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = now
}
