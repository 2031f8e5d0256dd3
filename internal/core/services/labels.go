// internal/core/services/labels.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/alsaqri/phoneshop/internal/core/domain"
	"github.com/alsaqri/phoneshop/internal/core/ports"
)

// Field captions printed on stickers.
const (
	captionMemory   = "الذاكرة"
	captionBattery  = "نسبة البطارية"
	captionDeviceNo = "رقم الجهاز"
	captionCategory = "الفئة"
	captionPrice    = "السعر"
	captionBarcode  = "الباركود"
)

// LabelConfig is the non-geometric part of the sticker setup.
type LabelConfig struct {
	Header   string
	Currency string
}

// LabelService builds sticker content for stock items and stores the result
type LabelService struct {
	renderer    ports.LabelRenderer
	phones      ports.PhoneRepository
	accessories ports.AccessoryRepository
	storage     ports.BlobStorage
	cfg         LabelConfig
	printer     *message.Printer
	logger      *slog.Logger
}

var _ ports.LabelService = (*LabelService)(nil)

// NewLabelService creates a new label service. storage may be nil when
// artifacts are only streamed back to the caller.
func NewLabelService(
	renderer ports.LabelRenderer,
	phones ports.PhoneRepository,
	accessories ports.AccessoryRepository,
	storage ports.BlobStorage,
	cfg LabelConfig,
	logger *slog.Logger,
) *LabelService {
	return &LabelService{
		renderer:    renderer,
		phones:      phones,
		accessories: accessories,
		storage:     storage,
		cfg:         cfg,
		// Latin digits, the same as the barcode text.
		printer: message.NewPrinter(language.English),
		logger:  logger.With(slog.String("service", "labels")),
	}
}

// PhoneLabel renders the sticker of a phone in stock.
func (s *LabelService) PhoneLabel(ctx context.Context, phoneNumber string, opts domain.LabelOptions) (*domain.LabelArtifact, error) {
	if !domain.ValidPhoneNumber(phoneNumber) {
		return nil, fmt.Errorf("%w: phone number %q", domain.ErrInvalidInput, phoneNumber)
	}
	phone, err := s.phones.FindByNumber(ctx, phoneNumber)
	if err != nil {
		return nil, err
	}
	return s.render(ctx, s.phoneRequest(phone), opts)
}

// AccessoryLabel renders the sticker of an accessory in stock.
func (s *LabelService) AccessoryLabel(ctx context.Context, barcode string, opts domain.LabelOptions) (*domain.LabelArtifact, error) {
	code, err := domain.NormalizeBarcode(barcode)
	if err != nil {
		return nil, err
	}
	if code == "" {
		return nil, fmt.Errorf("%w: barcode is required", domain.ErrInvalidInput)
	}
	accessory, err := s.accessories.FindByBarcode(ctx, code)
	if err != nil {
		return nil, err
	}
	return s.render(ctx, s.accessoryRequest(accessory), opts)
}

func (s *LabelService) phoneRequest(p *domain.Phone) domain.LabelRequest {
	return domain.LabelRequest{
		Subject:    domain.LabelSubjectPhone,
		Identifier: p.PhoneNumber,
		Header:     s.cfg.Header,
		Fields: []domain.LabelField{
			{Label: captionMemory, Value: p.Memory},
			{Label: captionBattery, Value: p.BatteryLabel()},
			{Label: captionDeviceNo, Value: p.PhoneNumber},
		},
	}
}

func (s *LabelService) accessoryRequest(a *domain.Accessory) domain.LabelRequest {
	return domain.LabelRequest{
		Subject:    domain.LabelSubjectAccessory,
		Identifier: a.Barcode,
		Header:     s.cfg.Header,
		Fields: []domain.LabelField{
			{Label: captionCategory, Value: a.Category},
			{Label: captionPrice, Value: s.formatPrice(a)},
			{Label: captionBarcode, Value: a.Barcode},
		},
	}
}

func (s *LabelService) formatPrice(a *domain.Accessory) string {
	price := domain.Cents(a.SellingPriceWithVAT).InexactFloat64()
	if s.cfg.Currency == "" {
		return s.printer.Sprint(number.Decimal(price, number.Scale(domain.MoneyPlaces)))
	}
	return s.printer.Sprintf("%v %s", number.Decimal(price, number.Scale(domain.MoneyPlaces)), s.cfg.Currency)
}

func (s *LabelService) render(ctx context.Context, req domain.LabelRequest, opts domain.LabelOptions) (*domain.LabelArtifact, error) {
	req.Size = opts.Size
	artifact, err := s.renderer.Render(ctx, req, opts.Format)
	if err != nil {
		s.logger.ErrorContext(ctx, "label render failed",
			slog.String("subject", string(req.Subject)),
			slog.String("identifier", req.Identifier),
			slog.String("error", err.Error()))
		return nil, err
	}

	if artifact.Placeholder {
		s.logger.WarnContext(ctx, "label rendered with placeholder barcode",
			slog.String("subject", string(req.Subject)),
			slog.String("identifier", req.Identifier))
	}
	return artifact, nil
}

// Store uploads the artifact and returns its storage key.
func (s *LabelService) Store(ctx context.Context, artifact *domain.LabelArtifact) (string, error) {
	if s.storage == nil {
		return "", fmt.Errorf("label storage is not configured")
	}

	key := artifact.StorageKey()
	if err := s.storage.Upload(ctx, key, artifact.Data, artifact.Format.ContentType()); err != nil {
		return "", fmt.Errorf("failed to store label: %w", err)
	}

	s.logger.InfoContext(ctx, "label stored",
		slog.String("key", key),
		slog.Int("size", len(artifact.Data)))
	return key, nil
}

// URL returns a time-limited download link for a stored artifact.
func (s *LabelService) URL(ctx context.Context, key string) (string, error) {
	if s.storage == nil {
		return "", fmt.Errorf("label storage is not configured")
	}
	url, err := s.storage.GetPresignedURL(ctx, key)
	if err != nil {
		return "", fmt.Errorf("failed to sign label url: %w", err)
	}
	return url, nil
}
