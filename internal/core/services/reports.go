// internal/core/services/reports.go
package services

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tealeg/xlsx/v3"
	"golang.org/x/sync/errgroup"

	"github.com/alsaqri/phoneshop/internal/core/domain"
	"github.com/alsaqri/phoneshop/internal/core/ports"
)

const (
	recentSalesLimit = 5
	exportPrefix     = "exports/"
	xlsxContentType  = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var exportHeaders = []string{
	"Type", "Identifier", "Name", "Details", "Quantity",
	"Purchase Price", "Selling Price", "Selling Price (VAT)", "Added At",
}

// ReportService builds dashboard numbers and inventory exports
type ReportService struct {
	repo    ports.ReportRepository
	cache   ports.Cache
	storage ports.BlobStorage
	ttl     time.Duration
	now     func() time.Time
	logger  *slog.Logger
}

var _ ports.ReportService = (*ReportService)(nil)

// NewReportService creates a new report service
func NewReportService(
	repo ports.ReportRepository,
	cache ports.Cache,
	storage ports.BlobStorage,
	ttl time.Duration,
	logger *slog.Logger,
) *ReportService {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &ReportService{
		repo:    repo,
		cache:   cache,
		storage: storage,
		ttl:     ttl,
		now:     time.Now,
		logger:  logger.With(slog.String("service", "reports")),
	}
}

// Dashboard returns the headline stock and sales numbers.
func (s *ReportService) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	var stats domain.DashboardStats
	if err := s.cache.Remember(ctx, keyDashboard, s.ttl, &stats, func(ctx context.Context) (interface{}, error) {
		return s.loadDashboard(ctx)
	}); err != nil {
		return nil, fmt.Errorf("failed to load dashboard: %w", err)
	}
	return &stats, nil
}

func (s *ReportService) loadDashboard(ctx context.Context) (*domain.DashboardStats, error) {
	stats := &domain.DashboardStats{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		phones, accessories, err := s.repo.StockUnits(gctx)
		if err != nil {
			return err
		}
		stats.PhoneUnits, stats.AccessoryUnits = phones, accessories
		return nil
	})
	g.Go(func() error {
		count, err := s.repo.SaleCount(gctx)
		if err != nil {
			return err
		}
		stats.SaleCount = count
		return nil
	})
	g.Go(func() error {
		recent, err := s.repo.RecentSales(gctx, recentSalesLimit)
		if err != nil {
			return err
		}
		stats.RecentSales = recent
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if stats.RecentSales == nil {
		stats.RecentSales = []domain.Sale{}
	}
	return stats, nil
}

// InventorySummary returns stock value and cost totals.
func (s *ReportService) InventorySummary(ctx context.Context) (*domain.InventorySummary, error) {
	var summary domain.InventorySummary
	if err := s.cache.Remember(ctx, keyInventorySummary, s.ttl, &summary, func(ctx context.Context) (interface{}, error) {
		return s.repo.InventorySummary(ctx)
	}); err != nil {
		return nil, fmt.Errorf("failed to load inventory summary: %w", err)
	}
	return &summary, nil
}

// ExportInventory writes every stock line to a workbook and uploads it.
func (s *ReportService) ExportInventory(ctx context.Context) (string, error) {
	rows, err := s.repo.ExportRows(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load export rows: %w", err)
	}

	data, err := InventoryWorkbook(rows)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("%sinventory-%s.xlsx", exportPrefix, s.now().UTC().Format("20060102-150405"))
	if err := s.storage.Upload(ctx, key, data, xlsxContentType); err != nil {
		return "", fmt.Errorf("failed to upload export: %w", err)
	}

	s.logger.InfoContext(ctx, "inventory exported",
		slog.String("key", key),
		slog.Int("rows", len(rows)),
		slog.Int("size", len(data)))
	return key, nil
}

// InventoryWorkbook renders export rows as an xlsx document.
func InventoryWorkbook(rows []domain.ExportRow) ([]byte, error) {
	file := xlsx.NewFile()

	sheet, err := file.AddSheet("Inventory")
	if err != nil {
		return nil, fmt.Errorf("failed to add worksheet: %w", err)
	}

	header := sheet.AddRow()
	for _, title := range exportHeaders {
		cell := header.AddCell()
		cell.Value = title
		cell.GetStyle().Font.Bold = true
		cell.GetStyle().Fill.PatternType = "solid"
		cell.GetStyle().Fill.FgColor = "CCCCCC"
	}

	for _, r := range rows {
		row := sheet.AddRow()
		row.AddCell().SetString(r.Kind)
		row.AddCell().SetString(r.Identifier)
		row.AddCell().SetString(r.Name)
		row.AddCell().SetString(r.Detail)
		row.AddCell().SetInt(r.Quantity)
		row.AddCell().SetString(r.PurchasePrice.StringFixed(domain.MoneyPlaces))
		row.AddCell().SetString(r.SellingPrice.StringFixed(domain.MoneyPlaces))
		row.AddCell().SetString(r.SellingPriceWithVAT.StringFixed(domain.MoneyPlaces))
		row.AddCell().SetString(r.CreatedAt.UTC().Format("2006-01-02 15:04"))
	}

	sheet.SetColWidth(1, len(exportHeaders), 18)

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
