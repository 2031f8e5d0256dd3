// internal/core/services/pricing.go
package services

import (
	"context"
	"log/slog"

	"github.com/alsaqri/phoneshop/internal/core/domain"
	"github.com/alsaqri/phoneshop/internal/core/ports"
)

// PricingService exposes the configured VAT calculator
type PricingService struct {
	vat    domain.VAT
	logger *slog.Logger
}

var _ ports.PricingService = (*PricingService)(nil)

// NewPricingService creates a pricing service for vat
func NewPricingService(vat domain.VAT, logger *slog.Logger) *PricingService {
	return &PricingService{
		vat:    vat,
		logger: logger.With(slog.String("service", "pricing")),
	}
}

func (s *PricingService) VAT() domain.VAT {
	return s.vat
}

// Breakdown parses a user supplied amount and splits it into net, tax and gross.
func (s *PricingService) Breakdown(ctx context.Context, rawAmount string, inclusive bool) (*domain.VATBreakdown, error) {
	amount, err := domain.ParseAmount(rawAmount)
	if err != nil {
		s.logger.DebugContext(ctx, "rejected amount", slog.String("amount", rawAmount))
		return nil, err
	}

	b := s.vat.Breakdown(amount, inclusive)
	return &b, nil
}
