package label

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/alsaqri/phoneshop/internal/core/domain"
	"github.com/alsaqri/phoneshop/internal/pkg/config"
)

const mmPerInch = 25.4

// maxPixels caps the raster of one label.
const maxPixels = 16_000_000

// Spec is the physical size of a label and its print resolution.
type Spec struct {
	WidthMM  float64
	HeightMM float64
	DPI      float64
}

// MMToPx converts a length to device pixels.
func (s Spec) MMToPx(mm float64) int {
	return int(math.Round(mm / mmPerInch * s.DPI))
}

// Pixels is the raster size of the label.
func (s Spec) Pixels() (w, h int) {
	return s.MMToPx(s.WidthMM), s.MMToPx(s.HeightMM)
}

func (s Spec) validate() error {
	if s.WidthMM <= 0 || s.HeightMM <= 0 || s.DPI <= 0 {
		return fmt.Errorf("%w: label size %.1fx%.1fmm at %.0f dpi",
			domain.ErrInvalidInput, s.WidthMM, s.HeightMM, s.DPI)
	}
	if w, h := s.Pixels(); w*h > maxPixels {
		return fmt.Errorf("%w: label %.1fx%.1fmm at %.0f dpi is %dx%d pixels",
			domain.ErrInvalidInput, s.WidthMM, s.HeightMM, s.DPI, w, h)
	}
	return nil
}

// Override returns s with the non-zero fields of size applied.
func (s Spec) Override(size *domain.LabelSize) Spec {
	if size == nil {
		return s
	}
	if size.WidthMM > 0 && size.HeightMM > 0 {
		s.WidthMM, s.HeightMM = size.WidthMM, size.HeightMM
	}
	if size.DPI > 0 {
		s.DPI = size.DPI
	}
	return s
}

// Options configures a Composer.
type Options struct {
	Spec              Spec
	Header            string
	HeaderSize        SizeRange
	FieldSize         SizeRange
	StepPt            float64
	BarcodeWidthRatio float64
	BarcodeHeightMM   float64
	FontCandidates    []string
}

// DefaultOptions is a 40x25mm thermal sticker at 300 DPI.
func DefaultOptions() Options {
	return Options{
		Spec:              Spec{WidthMM: 40, HeightMM: 25, DPI: 300},
		HeaderSize:        SizeRange{Max: 12, Min: 6},
		FieldSize:         SizeRange{Max: 7, Min: 4},
		StepPt:            0.5,
		BarcodeWidthRatio: 0.75,
		BarcodeHeightMM:   8,
	}
}

// OptionsFromConfig maps label settings onto composer options. Zero values
// keep the defaults.
func OptionsFromConfig(cfg config.LabelConfig) Options {
	opts := DefaultOptions()
	if cfg.WidthMM > 0 && cfg.HeightMM > 0 {
		opts.Spec.WidthMM, opts.Spec.HeightMM = cfg.WidthMM, cfg.HeightMM
	}
	if cfg.DPI > 0 {
		opts.Spec.DPI = cfg.DPI
	}
	if cfg.HeaderMaxFontPt > 0 && cfg.HeaderMinFontPt > 0 {
		opts.HeaderSize = SizeRange{Max: cfg.HeaderMaxFontPt, Min: cfg.HeaderMinFontPt}
	}
	if cfg.FieldMaxFontPt > 0 && cfg.FieldMinFontPt > 0 {
		opts.FieldSize = SizeRange{Max: cfg.FieldMaxFontPt, Min: cfg.FieldMinFontPt}
	}
	if cfg.FontStepPt > 0 {
		opts.StepPt = cfg.FontStepPt
	}
	if cfg.BarcodeWidthRatio > 0 {
		opts.BarcodeWidthRatio = cfg.BarcodeWidthRatio
	}
	if cfg.BarcodeHeightMM > 0 {
		opts.BarcodeHeightMM = cfg.BarcodeHeightMM
	}
	opts.Header = cfg.CompanyName
	opts.FontCandidates = cfg.FontCandidates
	return opts
}

// Input is the content of one label.
type Input struct {
	Spec    Spec // zero uses the composer's size
	Header  string
	Fields  []domain.LabelField
	Barcode image.Image // nil draws a placeholder
	Seed    string      // placeholder pattern seed
}

// Element is one piece of text placed on the label.
type Element struct {
	Text     string // glyph order as drawn
	SizePt   float64
	Bounds   image.Rectangle
	Overflow bool
}

// Column is the label/value pair of one data column.
type Column struct {
	Bounds image.Rectangle
	Label  Element
	Value  Element
}

// Composition is a rendered label and where everything went.
type Composition struct {
	Image       *image.RGBA
	Header      Element
	Barcode     image.Rectangle
	Columns     []Column
	Placeholder bool
	FontSource  string
}

// Composer lays out and rasterizes labels.
type Composer struct {
	opts   Options
	font   *Font
	logger *slog.Logger
}

// NewComposer loads the first usable font candidate.
func NewComposer(opts Options, logger *slog.Logger) (*Composer, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := opts.Spec.validate(); err != nil {
		return nil, err
	}

	f, err := LoadFont(opts.FontCandidates, logger)
	if err != nil {
		return nil, err
	}

	return &Composer{
		opts:   opts,
		font:   f,
		logger: logger.With(slog.String("component", "label_composer")),
	}, nil
}

// Options returns the composer configuration.
func (c *Composer) Options() Options {
	return c.opts
}

// Compose draws the label: header centered at the top, barcode centered below
// it, and the fields as equal-width columns in the lower third.
func (c *Composer) Compose(in Input) (*Composition, error) {
	if len(in.Fields) == 0 || len(in.Fields) > 3 {
		return nil, fmt.Errorf("%w: a label takes 1 to 3 fields, got %d", domain.ErrInvalidInput, len(in.Fields))
	}

	spec := in.Spec
	if spec == (Spec{}) {
		spec = c.opts.Spec
	}
	if err := spec.validate(); err != nil {
		return nil, err
	}
	w, h := spec.Pixels()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(img, img.Bounds(), image.White, image.Point{}, xdraw.Src)

	comp := &Composition{Image: img, FontSource: c.font.Source}
	margin := max(1, w/50)

	header := in.Header
	if header == "" {
		header = c.opts.Header
	}
	headerBand := image.Rect(margin, margin, w-margin, h*22/100)
	el, err := c.drawText(img, header, headerBand, c.opts.HeaderSize, spec.DPI)
	if err != nil {
		return nil, err
	}
	comp.Header = el

	bw, bh := c.barcodeSize(spec)
	bx := (w - bw) / 2
	by := headerBand.Max.Y + margin/2
	comp.Barcode = image.Rect(bx, by, bx+bw, by+bh)

	bc := in.Barcode
	if bc == nil {
		bc = Placeholder(bw, bh, in.Seed)
		comp.Placeholder = true
	}
	if bc.Bounds().Dx() == bw && bc.Bounds().Dy() == bh {
		xdraw.Draw(img, comp.Barcode, bc, bc.Bounds().Min, xdraw.Over)
	} else {
		xdraw.NearestNeighbor.Scale(img, comp.Barcode, bc, bc.Bounds(), xdraw.Over, nil)
	}

	top := max(comp.Barcode.Max.Y+margin/2, h-h/3)
	bottom := h - margin
	mid := top + (bottom-top)/2
	colW := (w - 2*margin) / len(in.Fields)
	rtl := fieldsRTL(in.Fields)

	for i, f := range in.Fields {
		slot := i
		if rtl {
			slot = len(in.Fields) - 1 - i
		}
		x0 := margin + slot*colW
		col := Column{Bounds: image.Rect(x0, top, x0+colW, bottom)}

		inner := col.Bounds.Inset(1)
		if col.Label, err = c.drawText(img, f.Label, image.Rect(inner.Min.X, top, inner.Max.X, mid), c.opts.FieldSize, spec.DPI); err != nil {
			return nil, err
		}
		if col.Value, err = c.drawText(img, f.Value, image.Rect(inner.Min.X, mid, inner.Max.X, bottom), c.opts.FieldSize, spec.DPI); err != nil {
			return nil, err
		}
		comp.Columns = append(comp.Columns, col)
	}

	return comp, nil
}

// barcodeSize is the pixel box the barcode graphic is scaled into.
func (c *Composer) barcodeSize(spec Spec) (w, h int) {
	lw, lh := spec.Pixels()
	w = int(math.Round(float64(lw) * c.opts.BarcodeWidthRatio))
	h = min(spec.MMToPx(c.opts.BarcodeHeightMM), lh*40/100)
	return w, h
}

// drawText shapes text, fits it to the width of box and draws it centered.
func (c *Composer) drawText(img *image.RGBA, text string, box image.Rectangle, size SizeRange, dpi float64) (Element, error) {
	visual := Shape(IsolateNumbers(text))
	fit, err := FitText(c.font, visual, box.Dx(), size, c.opts.StepPt, dpi)
	if err != nil {
		return Element{}, err
	}
	defer fit.Face.Close()

	if fit.Overflow {
		c.logger.Debug("label text overflows at minimum size",
			slog.String("text", text),
			slog.Int("width", fit.Width),
			slog.Int("available", box.Dx()))
	}

	m := fit.Face.Metrics()
	ascent, descent := m.Ascent.Ceil(), m.Descent.Ceil()
	x := box.Min.X + (box.Dx()-fit.Width)/2
	baseline := box.Min.Y + (box.Dy()+ascent-descent)/2

	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: fit.Face,
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(visual)

	return Element{
		Text:     visual,
		SizePt:   fit.SizePt,
		Bounds:   image.Rect(x, baseline-ascent, x+fit.Width, baseline+descent),
		Overflow: fit.Overflow,
	}, nil
}

// fieldsRTL reports whether the columns read right to left.
func fieldsRTL(fields []domain.LabelField) bool {
	for _, f := range fields {
		if HasRTL(f.Label) {
			return true
		}
	}
	return false
}
