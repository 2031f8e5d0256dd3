// internal/core/domain/phone.go
package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PhoneCondition distinguishes new stock from trade-ins.
type PhoneCondition string

const (
	ConditionNew  PhoneCondition = "new"
	ConditionUsed PhoneCondition = "used"
)

// FullBattery is shown on labels of new phones.
const FullBattery = 100

// Phone is one handset in stock, identified by its allocated phone number.
type Phone struct {
	ID                   uuid.UUID       `json:"id"`
	PhoneNumber          string          `json:"phone_number"`
	Brand                string          `json:"brand"`
	Model                string          `json:"model"`
	Color                string          `json:"color,omitempty"`
	Memory               string          `json:"memory,omitempty"`
	Condition            PhoneCondition  `json:"condition"`
	SerialNumber         string          `json:"serial_number,omitempty"`
	BatteryHealth        int             `json:"battery_health"`
	PurchasePrice        decimal.Decimal `json:"purchase_price"`
	SellingPrice         decimal.Decimal `json:"selling_price"`
	PurchasePriceWithVAT decimal.Decimal `json:"purchase_price_with_vat"`
	SellingPriceWithVAT  decimal.Decimal `json:"selling_price_with_vat"`
	WarrantyMonths       int             `json:"warranty_months"`
	CustomerName         string          `json:"customer_name,omitempty"`
	CustomerID           string          `json:"customer_id,omitempty"`
	BuyerName            string          `json:"buyer_name,omitempty"`
	Description          string          `json:"description,omitempty"`
	Quantity             int             `json:"quantity"`
	LabelKey             string          `json:"label_key,omitempty"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// Validate performs domain validation on the phone and fills defaults.
func (p *Phone) Validate() error {
	p.Brand = strings.TrimSpace(p.Brand)
	p.Model = strings.TrimSpace(p.Model)
	p.SerialNumber = strings.TrimSpace(p.SerialNumber)

	if p.Brand == "" {
		return fmt.Errorf("%w: brand is required", ErrInvalidInput)
	}
	if p.Model == "" {
		return fmt.Errorf("%w: model is required", ErrInvalidInput)
	}

	switch p.Condition {
	case "":
		p.Condition = ConditionNew
	case ConditionNew, ConditionUsed:
	default:
		return fmt.Errorf("%w: unknown condition %q", ErrInvalidInput, p.Condition)
	}

	if p.Condition == ConditionNew && p.BatteryHealth == 0 {
		p.BatteryHealth = FullBattery
	}
	if p.BatteryHealth < 0 || p.BatteryHealth > FullBattery {
		return fmt.Errorf("%w: battery health must be between 0 and 100", ErrInvalidInput)
	}
	if err := CheckAmount("purchase price", p.PurchasePrice); err != nil {
		return err
	}
	if err := CheckAmount("selling price", p.SellingPrice); err != nil {
		return err
	}
	if p.WarrantyMonths < 0 {
		return fmt.Errorf("%w: warranty cannot be negative", ErrInvalidInput)
	}
	if p.Quantity == 0 {
		p.Quantity = 1
	}
	if p.Quantity < 0 {
		return fmt.Errorf("%w: quantity cannot be negative", ErrInvalidInput)
	}
	return nil
}

// ApplyVAT fills the tax-inclusive price fields.
func (p *Phone) ApplyVAT(vat VAT) {
	p.PurchasePrice = Cents(p.PurchasePrice)
	p.SellingPrice = Cents(p.SellingPrice)
	p.PurchasePriceWithVAT = vat.WithVAT(p.PurchasePrice)
	p.SellingPriceWithVAT = vat.WithVAT(p.SellingPrice)
}

// PrepareForStorage assigns an id and timestamps.
func (p *Phone) PrepareForStorage() {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
}

// BatteryLabel is the battery value printed on stickers.
func (p *Phone) BatteryLabel() string {
	if p.Condition == ConditionNew || p.BatteryHealth == 0 {
		return strconv.Itoa(FullBattery)
	}
	return strconv.Itoa(p.BatteryHealth)
}

// DisplayName is brand and model joined for labels and reports.
func (p *Phone) DisplayName() string {
	return strings.TrimSpace(p.Brand + " " + p.Model)
}
