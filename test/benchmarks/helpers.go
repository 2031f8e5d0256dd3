// test/benchmarks/helpers.go
package benchmarks

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/alsaqri/phoneshop/internal/core/domain"
	"github.com/alsaqri/phoneshop/internal/pkg/label"
	"github.com/alsaqri/phoneshop/test/helpers"
)

// newBenchmarkComposer builds a composer on the built-in fallback font so
// results do not depend on the host's font files.
func newBenchmarkComposer(b *testing.B) *label.Composer {
	b.Helper()

	opts := label.DefaultOptions()
	opts.Header = "الصقري للاتصالات"
	opts.FontCandidates = []string{"/nonexistent/font.ttf"}

	c, err := label.NewComposer(opts, helpers.TestLogger())
	if err != nil {
		b.Fatalf("failed to create composer: %v", err)
	}
	return c
}

func phoneLabelRequest(number string) domain.LabelRequest {
	return domain.LabelRequest{
		Subject:    domain.LabelSubjectPhone,
		Identifier: number,
		Header:     "الصقري للاتصالات",
		Fields: []domain.LabelField{
			{Label: "الذاكرة", Value: "256GB"},
			{Label: "البطارية", Value: "100"},
			{Label: "رقم الجهاز", Value: number},
		},
	}
}

// createExportRows generates n stock lines for workbook benchmarks.
func createExportRows(n int) []domain.ExportRow {
	created := time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)
	rows := make([]domain.ExportRow, n)
	for i := range rows {
		price := decimal.NewFromInt(int64(100 + i%900))
		rows[i] = domain.ExportRow{
			Kind:                "accessory",
			Identifier:          fmt.Sprintf("ACC%013d", i),
			Name:                fmt.Sprintf("Accessory %d", i),
			Detail:              "chargers",
			Quantity:            1 + i%20,
			PurchasePrice:       price.Div(decimal.NewFromInt(2)),
			SellingPrice:        price,
			SellingPriceWithVAT: helpers.TestVAT().WithVAT(price),
			CreatedAt:           created,
		}
	}
	return rows
}

// createSaleItems generates n sale lines.
func createSaleItems(n int) []domain.SaleItem {
	items := make([]domain.SaleItem, n)
	for i := range items {
		items[i] = domain.SaleItem{
			ItemType:   domain.ItemTypeAccessory,
			Identifier: fmt.Sprintf("ACC%013d", i),
			Quantity:   1 + i%3,
			UnitPrice:  decimal.NewFromFloat(19.99 + float64(i)),
		}
	}
	return items
}
