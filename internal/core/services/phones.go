// internal/core/services/phones.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alsaqri/phoneshop/internal/core/domain"
	"github.com/alsaqri/phoneshop/internal/core/ports"
)

// PhoneService handles phone stock business logic
type PhoneService struct {
	repo    ports.PhoneRepository
	ids     ports.IdentifierService
	pricing ports.PricingService
	cache   ports.Cache
	queue   ports.TaskQueue
	logger  *slog.Logger
}

var _ ports.PhoneService = (*PhoneService)(nil)

// NewPhoneService creates a new phone service. queue may be nil, in which case
// labels are only rendered on demand.
func NewPhoneService(
	repo ports.PhoneRepository,
	ids ports.IdentifierService,
	pricing ports.PricingService,
	cache ports.Cache,
	queue ports.TaskQueue,
	logger *slog.Logger,
) *PhoneService {
	return &PhoneService{
		repo:    repo,
		ids:     ids,
		pricing: pricing,
		cache:   cache,
		queue:   queue,
		logger:  logger.With(slog.String("service", "phones")),
	}
}

// Create validates the phone, fills VAT-inclusive prices and stores it under
// a freshly allocated phone number.
func (s *PhoneService) Create(ctx context.Context, phone *domain.Phone) error {
	if err := phone.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if err := s.ids.CheckSerial(ctx, phone.SerialNumber); err != nil {
		return err
	}

	phone.ApplyVAT(s.pricing.VAT())
	phone.PrepareForStorage()

	if err := s.repo.CreateWithNumber(ctx, phone, s.ids.PhoneNumberAfter); err != nil {
		return fmt.Errorf("failed to create phone: %w", err)
	}

	s.logger.InfoContext(ctx, "phone added to stock",
		slog.String("phone_number", phone.PhoneNumber),
		slog.String("brand", phone.Brand),
		slog.String("model", phone.Model),
		slog.String("condition", string(phone.Condition)))

	invalidateReports(ctx, s.cache, s.logger)
	s.enqueueLabel(ctx, phone.PhoneNumber)
	return nil
}

func (s *PhoneService) enqueueLabel(ctx context.Context, number string) {
	if s.queue == nil {
		return
	}
	if err := s.queue.EnqueueLabelRender(ctx, domain.LabelSubjectPhone, number); err != nil {
		s.logger.WarnContext(ctx, "failed to enqueue label render",
			slog.String("phone_number", number),
			slog.String("error", err.Error()))
	}
}

// Get retrieves a phone by number
func (s *PhoneService) Get(ctx context.Context, number string) (*domain.Phone, error) {
	if !domain.ValidPhoneNumber(number) {
		return nil, fmt.Errorf("%w: phone number %q", domain.ErrInvalidInput, number)
	}
	return s.repo.FindByNumber(ctx, number)
}

// List retrieves phones with filtering and pagination
func (s *PhoneService) List(ctx context.Context, params ports.ListParams) (*ports.ListResult[*domain.Phone], error) {
	params.Normalize()

	phones, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list phones: %w", err)
	}
	return ports.NewListResult(phones, total, params), nil
}

// Delete removes a phone from stock
func (s *PhoneService) Delete(ctx context.Context, number string) error {
	if !domain.ValidPhoneNumber(number) {
		return fmt.Errorf("%w: phone number %q", domain.ErrInvalidInput, number)
	}
	if err := s.repo.Delete(ctx, number); err != nil {
		return err
	}

	invalidateReports(ctx, s.cache, s.logger)
	return nil
}
