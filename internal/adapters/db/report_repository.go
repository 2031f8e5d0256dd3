// internal/adapters/db/report_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/alsaqri/phoneshop/internal/core/domain"
	"github.com/alsaqri/phoneshop/internal/core/ports"
)

// reportRepository implements ports.ReportRepository
type reportRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewReportRepository creates the aggregate query repository.
func NewReportRepository(db *Database, logger *slog.Logger) ports.ReportRepository {
	return &reportRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "reports")),
	}
}

// StockUnits returns the units in stock for phones and accessories.
func (r *reportRepository) StockUnits(ctx context.Context) (int64, int64, error) {
	var phones, accessories int64
	err := r.db.QueryRow(ctx, `
		SELECT
			(SELECT COALESCE(SUM(quantity), 0) FROM phones),
			(SELECT COALESCE(SUM(quantity), 0) FROM accessories)`,
	).Scan(&phones, &accessories)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count stock units: %w", err)
	}
	return phones, accessories, nil
}

func (r *reportRepository) SaleCount(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM sales`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count sales: %w", err)
	}
	return n, nil
}

// RecentSales returns the newest sales without their lines.
func (r *reportRepository) RecentSales(ctx context.Context, limit int) ([]domain.Sale, error) {
	if limit <= 0 {
		limit = 5
	}

	query, args, err := psql.Select(saleColumns...).
		From("sales").
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent sales: %w", err)
	}

	scanned, err := collect(rows, func(rows pgx.Rows) (*domain.Sale, error) {
		return scanSale(rows)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan recent sales: %w", err)
	}

	sales := make([]domain.Sale, 0, len(scanned))
	for _, s := range scanned {
		sales = append(sales, *s)
	}
	return sales, nil
}

// InventorySummary values the stock at cost and at selling price.
func (r *reportRepository) InventorySummary(ctx context.Context) (*domain.InventorySummary, error) {
	query := `
		WITH stock AS (
			SELECT 'phone' AS kind, quantity, purchase_price, selling_price FROM phones
			UNION ALL
			SELECT 'accessory', quantity, purchase_price, selling_price FROM accessories
		)
		SELECT
			COALESCE(SUM(quantity) FILTER (WHERE kind = 'phone'), 0),
			COALESCE(SUM(quantity) FILTER (WHERE kind = 'accessory'), 0),
			COALESCE(SUM(selling_price * quantity), 0),
			COALESCE(SUM(purchase_price * quantity), 0)
		FROM stock`

	s := &domain.InventorySummary{}
	err := r.db.QueryRow(ctx, query).Scan(&s.PhoneUnits, &s.AccessoryUnits, &s.StockValue, &s.StockCost)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize inventory: %w", err)
	}

	s.StockValue = domain.Cents(s.StockValue)
	s.StockCost = domain.Cents(s.StockCost)
	s.PotentialProfit = s.StockValue.Sub(s.StockCost)
	return s, nil
}

// ExportRows lists every stock line for the inventory workbook.
func (r *reportRepository) ExportRows(ctx context.Context) ([]domain.ExportRow, error) {
	query := `
		SELECT 'phone', phone_number, brand || ' ' || model,
			CONCAT_WS(' / ', NULLIF(memory, ''), NULLIF(color, ''), condition),
			quantity, purchase_price, selling_price, selling_price_with_vat, created_at
		FROM phones
		UNION ALL
		SELECT 'accessory', barcode, name, category,
			quantity, purchase_price, selling_price, selling_price_with_vat, created_at
		FROM accessories
		ORDER BY 1 DESC, 9`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query export rows: %w", err)
	}

	scanned, err := collect(rows, func(rows pgx.Rows) (*domain.ExportRow, error) {
		e := &domain.ExportRow{}
		err := rows.Scan(&e.Kind, &e.Identifier, &e.Name, &e.Detail,
			&e.Quantity, &e.PurchasePrice, &e.SellingPrice, &e.SellingPriceWithVAT, &e.CreatedAt)
		return e, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan export rows: %w", err)
	}

	out := make([]domain.ExportRow, 0, len(scanned))
	for _, e := range scanned {
		out = append(out, *e)
	}

	r.logger.DebugContext(ctx, "export rows loaded", slog.Int("rows", len(out)))
	return out, nil
}
