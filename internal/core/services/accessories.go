// internal/core/services/accessories.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/alsaqri/phoneshop/internal/core/domain"
	"github.com/alsaqri/phoneshop/internal/core/ports"
)

// AccessoryService handles accessory stock business logic
type AccessoryService struct {
	repo    ports.AccessoryRepository
	ids     ports.IdentifierService
	pricing ports.PricingService
	cache   ports.Cache
	queue   ports.TaskQueue
	logger  *slog.Logger
}

var _ ports.AccessoryService = (*AccessoryService)(nil)

// NewAccessoryService creates a new accessory service
func NewAccessoryService(
	repo ports.AccessoryRepository,
	ids ports.IdentifierService,
	pricing ports.PricingService,
	cache ports.Cache,
	queue ports.TaskQueue,
	logger *slog.Logger,
) *AccessoryService {
	return &AccessoryService{
		repo:    repo,
		ids:     ids,
		pricing: pricing,
		cache:   cache,
		queue:   queue,
		logger:  logger.With(slog.String("service", "accessories")),
	}
}

// Create stores an accessory under the supplied barcode, or a synthesized one
// when suppliedBarcode is empty.
func (s *AccessoryService) Create(ctx context.Context, accessory *domain.Accessory, suppliedBarcode string) error {
	if err := accessory.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	barcode, err := s.ids.AccessoryBarcode(ctx, suppliedBarcode)
	if err != nil {
		return err
	}
	accessory.Barcode = barcode

	accessory.ApplyVAT(s.pricing.VAT())
	accessory.PrepareForStorage()

	if err := s.repo.Save(ctx, accessory); err != nil {
		return fmt.Errorf("failed to create accessory: %w", err)
	}

	s.logger.InfoContext(ctx, "accessory added to stock",
		slog.String("barcode", accessory.Barcode),
		slog.String("category", accessory.Category),
		slog.Bool("synthesized", strings.TrimSpace(suppliedBarcode) == ""),
		slog.Int("quantity", accessory.Quantity))

	invalidateReports(ctx, s.cache, s.logger)
	if s.queue != nil {
		if err := s.queue.EnqueueLabelRender(ctx, domain.LabelSubjectAccessory, accessory.Barcode); err != nil {
			s.logger.WarnContext(ctx, "failed to enqueue label render",
				slog.String("barcode", accessory.Barcode),
				slog.String("error", err.Error()))
		}
	}
	return nil
}

// Get retrieves an accessory by barcode
func (s *AccessoryService) Get(ctx context.Context, barcode string) (*domain.Accessory, error) {
	code, err := domain.NormalizeBarcode(barcode)
	if err != nil {
		return nil, err
	}
	if code == "" {
		return nil, fmt.Errorf("%w: barcode is required", domain.ErrInvalidInput)
	}
	return s.repo.FindByBarcode(ctx, code)
}

// List retrieves accessories with filtering and pagination
func (s *AccessoryService) List(ctx context.Context, params ports.ListParams) (*ports.ListResult[*domain.Accessory], error) {
	params.Normalize()

	items, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list accessories: %w", err)
	}
	return ports.NewListResult(items, total, params), nil
}

// AdjustQuantity restocks (positive delta) or writes off (negative delta) units.
func (s *AccessoryService) AdjustQuantity(ctx context.Context, barcode string, delta int) (*domain.Accessory, error) {
	if delta == 0 {
		return nil, fmt.Errorf("%w: quantity change must not be zero", domain.ErrInvalidInput)
	}

	accessory, err := s.repo.AdjustQuantity(ctx, barcode, delta)
	if err != nil {
		return nil, err
	}

	invalidateReports(ctx, s.cache, s.logger)
	return accessory, nil
}
