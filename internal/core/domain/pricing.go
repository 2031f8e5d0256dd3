// internal/core/domain/pricing.go
package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// MoneyPlaces is the precision every monetary value is kept at.
const MoneyPlaces = 2

const (
	maxIntegerDigits = 9
	maxInputPlaces   = 10
)

// MaxAmount is the largest accepted monetary input. Its VAT-inclusive value
// still fits a NUMERIC(12,2) column at any rate up to 100%.
var MaxAmount = decimal.RequireFromString("999999999.99")

var maxRate = decimal.NewFromInt(1)

// VAT converts between tax-exclusive and tax-inclusive amounts at a fixed rate.
// All results are rounded to cents.
type VAT struct {
	rate decimal.Decimal
}

// VATBreakdown is the net/tax/gross split of one amount.
type VATBreakdown struct {
	Net   decimal.Decimal `json:"net"`
	VAT   decimal.Decimal `json:"vat"`
	Gross decimal.Decimal `json:"gross"`
	Rate  decimal.Decimal `json:"rate"`
}

// NewVAT returns a calculator for rate (0.15 means 15%).
func NewVAT(rate decimal.Decimal) (VAT, error) {
	if rate.IsNegative() {
		return VAT{}, fmt.Errorf("%w: vat rate %s is negative", ErrInvalidInput, rate)
	}
	if err := CheckAmount("vat rate", rate); err != nil || rate.GreaterThan(maxRate) {
		return VAT{}, fmt.Errorf("%w: vat rate %s is out of range", ErrInvalidInput, rate)
	}
	return VAT{rate: rate}, nil
}

// Rate returns the configured rate.
func (v VAT) Rate() decimal.Decimal {
	return v.rate
}

// Amount returns the tax due on a tax-exclusive base.
func (v VAT) Amount(base decimal.Decimal) decimal.Decimal {
	return Cents(base).Mul(v.rate).Round(MoneyPlaces)
}

// WithVAT returns base plus tax. Amount(x) + x == WithVAT(x) holds exactly.
func (v VAT) WithVAT(base decimal.Decimal) decimal.Decimal {
	base = Cents(base)
	return base.Add(v.Amount(base))
}

// WithoutVAT strips tax from a tax-inclusive amount.
func (v VAT) WithoutVAT(gross decimal.Decimal) decimal.Decimal {
	return Cents(gross).Div(decimal.NewFromInt(1).Add(v.rate)).Round(MoneyPlaces)
}

// Breakdown splits amount into net, tax and gross. When inclusive is true the
// amount already contains tax.
func (v VAT) Breakdown(amount decimal.Decimal, inclusive bool) VATBreakdown {
	amount = Cents(amount)
	if inclusive {
		net := v.WithoutVAT(amount)
		return VATBreakdown{Net: net, VAT: amount.Sub(net), Gross: amount, Rate: v.rate}
	}
	tax := v.Amount(amount)
	return VATBreakdown{Net: amount, VAT: tax, Gross: amount.Add(tax), Rate: v.rate}
}

// Cents rounds d to the monetary precision.
func Cents(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}

// ParseAmount parses a user supplied monetary amount.
func ParseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, fmt.Errorf("%w: amount is required", ErrInvalidInput)
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: amount %q is not a number", ErrInvalidInput, raw)
	}
	if err := CheckAmount("amount", d); err != nil {
		return decimal.Zero, err
	}
	return Cents(d), nil
}

// CheckAmount rejects negative amounts and amounts outside the stored range.
// It looks at the digits and exponent only, so a value like 1e9000000 is
// refused without being expanded.
func CheckAmount(name string, d decimal.Decimal) error {
	if d.IsNegative() {
		return fmt.Errorf("%w: %s cannot be negative", ErrInvalidInput, name)
	}

	exp := int(d.Exponent())
	if exp < -maxInputPlaces {
		return fmt.Errorf("%w: %s has more than %d decimal places", ErrInvalidInput, name, maxInputPlaces)
	}
	if digits := len(d.Coefficient().String()) + exp; digits > maxIntegerDigits {
		return fmt.Errorf("%w: %s exceeds %s", ErrInvalidInput, name, MaxAmount)
	}
	if Cents(d).GreaterThan(MaxAmount) {
		return fmt.Errorf("%w: %s exceeds %s", ErrInvalidInput, name, MaxAmount)
	}
	return nil
}
