// internal/core/services/sales.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alsaqri/phoneshop/internal/core/domain"
	"github.com/alsaqri/phoneshop/internal/core/ports"
)

// SaleService records point-of-sale transactions
type SaleService struct {
	repo    ports.SaleRepository
	ids     ports.IdentifierService
	pricing ports.PricingService
	cache   ports.Cache
	logger  *slog.Logger
}

var _ ports.SaleService = (*SaleService)(nil)

// NewSaleService creates a new sale service
func NewSaleService(
	repo ports.SaleRepository,
	ids ports.IdentifierService,
	pricing ports.PricingService,
	cache ports.Cache,
	logger *slog.Logger,
) *SaleService {
	return &SaleService{
		repo:    repo,
		ids:     ids,
		pricing: pricing,
		cache:   cache,
		logger:  logger.With(slog.String("service", "sales")),
	}
}

// Create totals the sale, assigns an invoice number and takes the lines out
// of stock.
func (s *SaleService) Create(ctx context.Context, sale *domain.Sale) error {
	if err := sale.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	sale.CalculateTotals(s.pricing.VAT())

	invoice, err := s.ids.InvoiceNumber(ctx)
	if err != nil {
		return err
	}
	sale.InvoiceNumber = invoice
	sale.PrepareForStorage()

	if err := s.repo.Create(ctx, sale); err != nil {
		return fmt.Errorf("failed to record sale: %w", err)
	}

	s.logger.InfoContext(ctx, "sale completed",
		slog.String("invoice_number", sale.InvoiceNumber),
		slog.String("subtotal", sale.Subtotal.StringFixed(domain.MoneyPlaces)),
		slog.String("vat", sale.VATAmount.StringFixed(domain.MoneyPlaces)),
		slog.String("total", sale.Total.StringFixed(domain.MoneyPlaces)))

	invalidateReports(ctx, s.cache, s.logger)
	return nil
}

// List retrieves sales, newest first
func (s *SaleService) List(ctx context.Context, params ports.ListParams) (*ports.ListResult[*domain.Sale], error) {
	params.Normalize()

	sales, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	return ports.NewListResult(sales, total, params), nil
}
