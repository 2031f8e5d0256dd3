// internal/core/services/identifiers.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/alsaqri/phoneshop/internal/core/domain"
	"github.com/alsaqri/phoneshop/internal/core/ports"
)

// IdentifierConfig bounds synthesized identifier allocation.
type IdentifierConfig struct {
	MaxAttempts    int
	ReservationTTL time.Duration
	// StrictSequence turns a malformed stored maximum into ErrMalformedSequence
	// instead of restarting at 000001.
	StrictSequence bool
}

// IdentifierOption customizes an IdentifierService.
type IdentifierOption func(*IdentifierService)

// WithClock replaces the time source used in synthesized identifiers.
func WithClock(now func() time.Time) IdentifierOption {
	return func(s *IdentifierService) { s.now = now }
}

// WithRandom replaces the suffix source; intn returns a value in [0, n).
func WithRandom(intn func(n int) int) IdentifierOption {
	return func(s *IdentifierService) { s.intn = intn }
}

// IdentifierService allocates phone numbers, accessory barcodes and invoice numbers
type IdentifierService struct {
	phones      ports.PhoneRepository
	accessories ports.AccessoryRepository
	sales       ports.SaleRepository
	cache       ports.Cache
	cfg         IdentifierConfig
	now         func() time.Time
	intn        func(n int) int
	logger      *slog.Logger
}

var _ ports.IdentifierService = (*IdentifierService)(nil)

// NewIdentifierService creates a new identifier service
func NewIdentifierService(
	phones ports.PhoneRepository,
	accessories ports.AccessoryRepository,
	sales ports.SaleRepository,
	cache ports.Cache,
	cfg IdentifierConfig,
	logger *slog.Logger,
	opts ...IdentifierOption,
) *IdentifierService {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 5
	}
	if cfg.ReservationTTL <= 0 {
		cfg.ReservationTTL = time.Minute
	}

	s := &IdentifierService{
		phones:      phones,
		accessories: accessories,
		sales:       sales,
		cache:       cache,
		cfg:         cfg,
		now:         time.Now,
		intn:        rand.IntN,
		logger:      logger.With(slog.String("service", "identifiers")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NextPhoneNumber previews the number the next phone will receive.
func (s *IdentifierService) NextPhoneNumber(ctx context.Context) (string, error) {
	current, found, err := s.phones.MaxPhoneNumber(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read phone number sequence: %w", err)
	}
	return s.advance(ctx, current, found, false)
}

// PhoneNumberAfter is the allocation step applied inside the phone
// repository's transaction.
func (s *IdentifierService) PhoneNumberAfter(ctx context.Context, current string, found bool) (string, error) {
	return s.advance(ctx, current, found, true)
}

func (s *IdentifierService) advance(ctx context.Context, current string, found, allocating bool) (string, error) {
	step, err := domain.NextPhoneNumber(current, found)
	if err != nil {
		s.logger.ErrorContext(ctx, "phone number capacity exhausted",
			slog.String("current", current),
			slog.Int("max", domain.MaxPhoneNumber))
		return "", err
	}
	if !step.Reset {
		return step.Next, nil
	}

	if s.cfg.StrictSequence {
		return "", fmt.Errorf("%w: stored maximum %q", domain.ErrMalformedSequence, current)
	}

	s.logger.WarnContext(ctx, "phone number sequence reset",
		slog.String("stored_max", current),
		slog.String("next", step.Next),
		slog.Bool("allocating", allocating))

	if allocating && s.cache != nil {
		if _, err := s.cache.Count(ctx, keySequenceResets); err != nil {
			s.logger.WarnContext(ctx, "failed to count sequence reset",
				slog.String("error", err.Error()))
		}
	}
	return step.Next, nil
}

// AccessoryBarcode checks a supplied barcode or synthesizes a new one.
func (s *IdentifierService) AccessoryBarcode(ctx context.Context, supplied string) (string, error) {
	code, err := domain.NormalizeBarcode(supplied)
	if err != nil {
		return "", err
	}

	if code != "" {
		taken, err := s.accessories.BarcodeExists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("failed to check barcode: %w", err)
		}
		if taken {
			return "", fmt.Errorf("%w: barcode %s", domain.ErrDuplicateIdentifier, code)
		}
		return code, nil
	}

	return s.synthesize(ctx, "barcode", func() string {
		return domain.FormatAccessoryBarcode(s.now(), 100+s.intn(900))
	}, s.accessories.BarcodeExists)
}

// InvoiceNumber synthesizes an unused invoice number.
func (s *IdentifierService) InvoiceNumber(ctx context.Context) (string, error) {
	return s.synthesize(ctx, "invoice", func() string {
		return domain.FormatInvoiceNumber(s.now(), 1000+s.intn(9000))
	}, s.sales.InvoiceExists)
}

// CheckSerial rejects a serial number already recorded on a phone.
func (s *IdentifierService) CheckSerial(ctx context.Context, serial string) error {
	if serial == "" {
		return nil
	}
	taken, err := s.phones.SerialExists(ctx, serial)
	if err != nil {
		return fmt.Errorf("failed to check serial number: %w", err)
	}
	if taken {
		return fmt.Errorf("%w: serial number %s", domain.ErrDuplicateIdentifier, serial)
	}
	return nil
}

// synthesize draws candidates until one is neither stored nor reserved by a
// concurrent caller. The unique index remains the final guard when Redis is
// unreachable.
func (s *IdentifierService) synthesize(
	ctx context.Context,
	kind string,
	generate func() string,
	exists func(context.Context, string) (bool, error),
) (string, error) {
	for attempt := 1; attempt <= s.cfg.MaxAttempts; attempt++ {
		candidate := generate()

		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check %s: %w", kind, err)
		}
		if taken {
			s.logger.DebugContext(ctx, "identifier collision",
				slog.String("kind", kind),
				slog.String("candidate", candidate),
				slog.Int("attempt", attempt))
			continue
		}

		if s.cache == nil {
			return candidate, nil
		}

		reserved, err := s.cache.Reserve(ctx, cacheKey(keyReservationPrefix, kind, candidate), s.cfg.ReservationTTL)
		if err != nil {
			s.logger.WarnContext(ctx, "identifier reservation unavailable",
				slog.String("kind", kind),
				slog.String("error", err.Error()))
			return candidate, nil
		}
		if reserved {
			return candidate, nil
		}
	}

	s.logger.ErrorContext(ctx, "identifier allocation exhausted",
		slog.String("kind", kind),
		slog.Int("attempts", s.cfg.MaxAttempts))
	return "", fmt.Errorf("%w: %s after %d attempts", domain.ErrAllocationExhausted, kind, s.cfg.MaxAttempts)
}
