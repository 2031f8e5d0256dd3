// internal/workers/label_processor.go
package workers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"
	"github.com/ledongthuc/pdf"

	"github.com/alsaqri/phoneshop/internal/core/domain"
	"github.com/alsaqri/phoneshop/internal/core/ports"
)

// LabelProcessor pre-renders stickers for new stock and records where the
// printable PDF was stored.
type LabelProcessor struct {
	labels      ports.LabelService
	phones      ports.PhoneRepository
	accessories ports.AccessoryRepository
	logger      *slog.Logger
}

// NewLabelProcessor creates a new label processor
func NewLabelProcessor(
	labels ports.LabelService,
	phones ports.PhoneRepository,
	accessories ports.AccessoryRepository,
	logger *slog.Logger,
) *LabelProcessor {
	return &LabelProcessor{
		labels:      labels,
		phones:      phones,
		accessories: accessories,
		logger:      logger.With(slog.String("processor", "label")),
	}
}

// ProcessLabel renders the PNG and PDF stickers of one item and stores both.
func (p *LabelProcessor) ProcessLabel(ctx context.Context, t *asynq.Task) error {
	start := time.Now()

	var payload LabelRenderPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}

	p.logger.InfoContext(ctx, "rendering label",
		slog.String("subject", string(payload.Subject)),
		slog.String("identifier", payload.Identifier))

	var pdfKey string
	for _, format := range []domain.LabelFormat{domain.LabelFormatPNG, domain.LabelFormatPDF} {
		artifact, err := p.render(ctx, payload, format)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrInvalidInput) {
				return fmt.Errorf("failed to render label: %v: %w", err, asynq.SkipRetry)
			}
			return fmt.Errorf("failed to render label: %w", err)
		}

		if format == domain.LabelFormatPDF {
			if err := verifyLabelPDF(artifact.Data); err != nil {
				return fmt.Errorf("rendered label is unusable: %v: %w", err, asynq.SkipRetry)
			}
		}
		if artifact.Placeholder {
			p.logger.WarnContext(ctx, "label rendered with placeholder barcode",
				slog.String("identifier", payload.Identifier))
		}

		key, err := p.labels.Store(ctx, artifact)
		if err != nil {
			return err
		}
		if format == domain.LabelFormatPDF {
			pdfKey = key
		}
	}

	if err := p.setLabelKey(ctx, payload, pdfKey); err != nil {
		return fmt.Errorf("failed to record label key: %w", err)
	}

	p.logger.InfoContext(ctx, "label rendered",
		slog.String("identifier", payload.Identifier),
		slog.String("key", pdfKey),
		slog.Duration("duration", time.Since(start)))
	return nil
}

func (p *LabelProcessor) render(ctx context.Context, payload LabelRenderPayload, format domain.LabelFormat) (*domain.LabelArtifact, error) {
	switch payload.Subject {
	case domain.LabelSubjectPhone:
		return p.labels.PhoneLabel(ctx, payload.Identifier, domain.LabelOptions{Format: format})
	case domain.LabelSubjectAccessory:
		return p.labels.AccessoryLabel(ctx, payload.Identifier, domain.LabelOptions{Format: format})
	default:
		return nil, fmt.Errorf("%w: unknown label subject %q", domain.ErrInvalidInput, payload.Subject)
	}
}

func (p *LabelProcessor) setLabelKey(ctx context.Context, payload LabelRenderPayload, key string) error {
	if payload.Subject == domain.LabelSubjectPhone {
		return p.phones.SetLabelKey(ctx, payload.Identifier, key)
	}
	return p.accessories.SetLabelKey(ctx, payload.Identifier, key)
}

// verifyLabelPDF checks the document parses and holds exactly one page.
func verifyLabelPDF(data []byte) error {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Errorf("failed to parse PDF: %w", err)
	}
	if n := r.NumPage(); n != 1 {
		return fmt.Errorf("label PDF has %d pages", n)
	}
	return nil
}
