package label

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"

	"github.com/alsaqri/phoneshop/internal/core/domain"
)

// Render composes the label of req and encodes it as format. A barcode that
// cannot be loaded or encoded is replaced by a placeholder; every other
// failure is reported as domain.ErrRenderFailure.
func (c *Composer) Render(ctx context.Context, req domain.LabelRequest, format domain.LabelFormat) (*domain.LabelArtifact, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	spec := c.opts.Spec.Override(req.Size)
	if err := spec.validate(); err != nil {
		return nil, err
	}

	comp, err := c.Compose(Input{
		Spec:    spec,
		Header:  req.Header,
		Fields:  req.Fields,
		Barcode: c.barcodeFor(ctx, req, spec),
		Seed:    req.Identifier,
	})
	if err != nil {
		return nil, renderFailure(err)
	}

	data, err := EncodePNG(comp.Image)
	if err != nil {
		return nil, err
	}
	if format == domain.LabelFormatPDF {
		if data, err = Document(data, spec); err != nil {
			return nil, err
		}
	}

	w, h := spec.Pixels()
	return &domain.LabelArtifact{
		Subject:     req.Subject,
		Identifier:  req.Identifier,
		Format:      format,
		Data:        data,
		WidthPx:     w,
		HeightPx:    h,
		Placeholder: comp.Placeholder,
	}, nil
}

func (c *Composer) barcodeFor(ctx context.Context, req domain.LabelRequest, spec Spec) image.Image {
	bw, bh := c.barcodeSize(spec)

	var (
		img image.Image
		err error
	)
	if req.BarcodePath != "" {
		img, err = LoadBarcode(req.BarcodePath)
	} else {
		img, err = EncodeBarcode(req.Identifier, bw, bh)
	}
	if err != nil {
		c.logger.WarnContext(ctx, "barcode unavailable, drawing placeholder",
			slog.String("identifier", req.Identifier),
			slog.String("error", err.Error()))
		return nil
	}
	return img
}

func renderFailure(err error) error {
	if errors.Is(err, domain.ErrRenderFailure) || errors.Is(err, domain.ErrInvalidInput) {
		return err
	}
	return fmt.Errorf("%w: %v", domain.ErrRenderFailure, err)
}
