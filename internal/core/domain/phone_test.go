package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alsaqri/phoneshop/internal/core/domain"
)

func TestPhone_Validate(t *testing.T) {
	tests := []struct {
		name      string
		phone     *domain.Phone
		wantError bool
		errorMsg  string
	}{
		{
			name: "valid_new_phone_gets_defaults",
			phone: &domain.Phone{
				Brand:        "Apple",
				Model:        "iPhone 15",
				SellingPrice: decimal.NewFromInt(3500),
			},
		},
		{
			name:      "missing_brand",
			phone:     &domain.Phone{Model: "Galaxy S24"},
			wantError: true,
			errorMsg:  "brand is required",
		},
		{
			name:      "missing_model",
			phone:     &domain.Phone{Brand: "Samsung"},
			wantError: true,
			errorMsg:  "model is required",
		},
		{
			name:      "unknown_condition",
			phone:     &domain.Phone{Brand: "Oppo", Model: "Reno", Condition: "refurbished"},
			wantError: true,
			errorMsg:  "unknown condition",
		},
		{
			name:      "battery_out_of_range",
			phone:     &domain.Phone{Brand: "Vivo", Model: "V30", Condition: domain.ConditionUsed, BatteryHealth: 120},
			wantError: true,
			errorMsg:  "battery health",
		},
		{
			name:      "negative_price",
			phone:     &domain.Phone{Brand: "Realme", Model: "12", PurchasePrice: decimal.NewFromInt(-1)},
			wantError: true,
			errorMsg:  "purchase price cannot be negative",
		},
		{
			name:      "price_out_of_range",
			phone:     &domain.Phone{Brand: "Realme", Model: "12", SellingPrice: decimal.RequireFromString("1e5000000")},
			wantError: true,
			errorMsg:  "selling price exceeds 999999999.99",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.phone.Validate()
			if tt.wantError {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				assert.Contains(t, err.Error(), tt.errorMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.ConditionNew, tt.phone.Condition)
			assert.Equal(t, domain.FullBattery, tt.phone.BatteryHealth)
			assert.Equal(t, 1, tt.phone.Quantity)
		})
	}
}

func TestPhone_ApplyVAT(t *testing.T) {
	vat, err := domain.NewVAT(decimal.RequireFromString("0.15"))
	require.NoError(t, err)

	p := &domain.Phone{PurchasePrice: decimal.NewFromInt(1000), SellingPrice: decimal.NewFromInt(1200)}
	p.ApplyVAT(vat)

	assert.Equal(t, "1150", p.PurchasePriceWithVAT.String())
	assert.Equal(t, "1380", p.SellingPriceWithVAT.String())
}

func TestPhone_BatteryLabel(t *testing.T) {
	assert.Equal(t, "100", (&domain.Phone{Condition: domain.ConditionNew, BatteryHealth: 80}).BatteryLabel())
	assert.Equal(t, "87", (&domain.Phone{Condition: domain.ConditionUsed, BatteryHealth: 87}).BatteryLabel())
	assert.Equal(t, "100", (&domain.Phone{Condition: domain.ConditionUsed}).BatteryLabel())
}

func TestPhone_PrepareForStorage(t *testing.T) {
	p := &domain.Phone{}
	p.PrepareForStorage()

	assert.NotEqual(t, uuid.Nil, p.ID)
	assert.False(t, p.CreatedAt.IsZero())
	assert.Equal(t, p.CreatedAt, p.UpdatedAt)
}

func TestAccessory_Validate(t *testing.T) {
	a := &domain.Accessory{Name: " Charger ", Category: "chargers", Quantity: 4}
	require.NoError(t, a.Validate())
	assert.Equal(t, "Charger", a.Name)

	err := (&domain.Accessory{Category: "cases"}).Validate()
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = (&domain.Accessory{Name: "Case", Category: "cases", Quantity: -1}).Validate()
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = (&domain.Accessory{Name: "Case", Category: "cases", PurchasePrice: decimal.RequireFromString("1e-9000000")}).Validate()
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
