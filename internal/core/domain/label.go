// internal/core/domain/label.go
package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// LabelFormat is the output container of a rendered sticker.
type LabelFormat string

const (
	LabelFormatPNG LabelFormat = "png"
	LabelFormatPDF LabelFormat = "pdf"
)

// ParseLabelFormat accepts "png" or "pdf"; empty means png.
func ParseLabelFormat(raw string) (LabelFormat, error) {
	switch LabelFormat(strings.ToLower(strings.TrimSpace(raw))) {
	case "", LabelFormatPNG:
		return LabelFormatPNG, nil
	case LabelFormatPDF:
		return LabelFormatPDF, nil
	default:
		return "", fmt.Errorf("%w: unsupported label format %q", ErrInvalidInput, raw)
	}
}

// ContentType is the MIME type of the format.
func (f LabelFormat) ContentType() string {
	if f == LabelFormatPDF {
		return "application/pdf"
	}
	return "image/png"
}

// Bounds of a per-request label size.
const (
	MinLabelMM  = 10.0
	MaxLabelMM  = 200.0
	MinLabelDPI = 72.0
	MaxLabelDPI = 1200.0
)

// LabelSize overrides the configured sticker size for one render. Zero
// fields keep the configured value.
type LabelSize struct {
	WidthMM  float64 `json:"width_mm,omitempty"`
	HeightMM float64 `json:"height_mm,omitempty"`
	DPI      float64 `json:"dpi,omitempty"`
}

// ParseLabelSize reads a size override from query values. Width and height
// go together; all empty returns nil.
func ParseLabelSize(width, height, dpi string) (*LabelSize, error) {
	if width == "" && height == "" && dpi == "" {
		return nil, nil
	}
	if (width == "") != (height == "") {
		return nil, fmt.Errorf("%w: label width and height must be given together", ErrInvalidInput)
	}

	var size LabelSize
	var err error
	if width != "" {
		if size.WidthMM, err = parseBounded("label width", width, MinLabelMM, MaxLabelMM); err != nil {
			return nil, err
		}
		if size.HeightMM, err = parseBounded("label height", height, MinLabelMM, MaxLabelMM); err != nil {
			return nil, err
		}
	}
	if dpi != "" {
		if size.DPI, err = parseBounded("label dpi", dpi, MinLabelDPI, MaxLabelDPI); err != nil {
			return nil, err
		}
	}
	return &size, nil
}

func parseBounded(name, raw string, lo, hi float64) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", ErrInvalidInput, name, raw)
	}
	if v < lo || v > hi {
		return 0, fmt.Errorf("%w: %s must be between %g and %g", ErrInvalidInput, name, lo, hi)
	}
	return v, nil
}

// LabelOptions selects the output of one render.
type LabelOptions struct {
	Format LabelFormat
	Size   *LabelSize // nil uses the configured size
}

// LabelSubject names what a label is printed for.
type LabelSubject string

const (
	LabelSubjectPhone     LabelSubject = "phone"
	LabelSubjectAccessory LabelSubject = "accessory"
)

// LabelArtifact is a rendered sticker ready to be served or stored.
type LabelArtifact struct {
	Subject     LabelSubject
	Identifier  string
	Format      LabelFormat
	Data        []byte
	WidthPx     int
	HeightPx    int
	Placeholder bool // barcode graphic was substituted
}

// Filename is the download name of the artifact.
func (a *LabelArtifact) Filename() string {
	return fmt.Sprintf("%s_%s.%s", a.Subject, a.Identifier, a.Format)
}

// StorageKey is where the artifact is kept in blob storage.
func (a *LabelArtifact) StorageKey() string {
	return fmt.Sprintf("labels/%s/%s.%s", a.Subject, a.Identifier, a.Format)
}

// LabelField is one label/value column of the sticker.
type LabelField struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// LabelRequest carries the display fields of one sticker.
type LabelRequest struct {
	Subject    LabelSubject
	Identifier string // encoded in the barcode
	Header     string
	Fields     []LabelField
	// BarcodePath optionally points at a pre-rendered barcode graphic.
	BarcodePath string
	Size        *LabelSize
}

// Validate checks the field count.
func (r *LabelRequest) Validate() error {
	if strings.TrimSpace(r.Identifier) == "" {
		return fmt.Errorf("%w: label identifier is required", ErrInvalidInput)
	}
	if len(r.Fields) == 0 || len(r.Fields) > 3 {
		return fmt.Errorf("%w: a label takes 1 to 3 fields, got %d", ErrInvalidInput, len(r.Fields))
	}
	return nil
}
