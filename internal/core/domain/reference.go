// internal/core/domain/reference.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccessoryCategory is a selectable accessory category with its Arabic display name.
type AccessoryCategory struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	ArabicName string `json:"arabic_name"`
}

// PhoneType is a known brand/model pair offered when adding phones.
type PhoneType struct {
	ID    int    `json:"id"`
	Brand string `json:"brand"`
	Model string `json:"model"`
}

// ImportResult counts the reference rows written by an import.
type ImportResult struct {
	Categories int `json:"categories"`
	PhoneTypes int `json:"phone_types"`
}

// InventorySummary is the stock valuation report.
type InventorySummary struct {
	PhoneUnits      int64           `json:"phone_units"`
	AccessoryUnits  int64           `json:"accessory_units"`
	StockValue      decimal.Decimal `json:"stock_value"`
	StockCost       decimal.Decimal `json:"stock_cost"`
	PotentialProfit decimal.Decimal `json:"potential_profit"`
}

// DashboardStats are the headline numbers shown on the dashboard.
type DashboardStats struct {
	PhoneUnits     int64  `json:"phone_units"`
	AccessoryUnits int64  `json:"accessory_units"`
	SaleCount      int64  `json:"sale_count"`
	RecentSales    []Sale `json:"recent_sales"`
}

// ExportRow is one stock line of the inventory workbook.
type ExportRow struct {
	Kind                string          `json:"kind"`
	Identifier          string          `json:"identifier"`
	Name                string          `json:"name"`
	Detail              string          `json:"detail"`
	Quantity            int             `json:"quantity"`
	PurchasePrice       decimal.Decimal `json:"purchase_price"`
	SellingPrice        decimal.Decimal `json:"selling_price"`
	SellingPriceWithVAT decimal.Decimal `json:"selling_price_with_vat"`
	CreatedAt           time.Time       `json:"created_at"`
}
