package label_test

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"strings"
	"testing"

	pdfreader "github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alsaqri/phoneshop/internal/core/domain"
	"github.com/alsaqri/phoneshop/internal/pkg/config"
	"github.com/alsaqri/phoneshop/internal/pkg/label"
	"github.com/alsaqri/phoneshop/test/helpers"
)

const companyHeader = "الصقري للاتصالات"

func newComposer(t *testing.T) *label.Composer {
	t.Helper()
	opts := label.DefaultOptions()
	opts.FontCandidates = []string{"/nonexistent/font.ttf"}
	c, err := label.NewComposer(opts, helpers.TestLogger())
	require.NoError(t, err)
	return c
}

func phoneFields() []domain.LabelField {
	return []domain.LabelField{
		{Label: "الذاكرة", Value: "256GB"},
		{Label: "البطارية", Value: "100"},
		{Label: "رقم الجهاز", Value: "000042"},
	}
}

func TestSpec_Pixels(t *testing.T) {
	w, h := label.Spec{WidthMM: 40, HeightMM: 25, DPI: 300}.Pixels()
	assert.Equal(t, 472, w)
	assert.Equal(t, 295, h)
}

func TestShape(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "latin_unchanged", in: "iPhone 15 Pro", want: "iPhone 15 Pro"},
		{name: "initial_and_final", in: "بب", want: "\uFE90\uFE91"},
		{name: "lam_alef_ligature", in: "لا", want: "\uFEFB"},
		{name: "right_joining_letter_breaks", in: "رقم", want: "\uFEE2\uFED7\uFEAD"},
		{name: "digits_keep_order", in: "رقم 15", want: "15 \uFEE2\uFED7\uFEAD"},
		{name: "isolated_digits", in: "رقم \u2066150\u2069", want: "150 \uFEE2\uFED7\uFEAD"},
		{name: "latin_inside_rtl", in: "Samsung جديد", want: "\uFEAA\uFEF3\uFEAA\uFE9F Samsung"},
		{name: "brackets_mirrored", in: "(جديد)", want: "(\uFEAA\uFEF3\uFEAA\uFE9F)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, label.Shape(tt.in))
		})
	}
}

func TestIsolateNumbers(t *testing.T) {
	assert.Equal(t, "السعر \u20661,150.50\u2069 ريال", label.IsolateNumbers("السعر 1,150.50 ريال"))
	assert.Equal(t, "\u206685%\u2069 بطارية", label.IsolateNumbers("85% بطارية"))
	assert.Equal(t, "ACC1700000000123", label.IsolateNumbers("ACC1700000000123"))

	once := label.IsolateNumbers("رقم 15")
	assert.Equal(t, once, label.IsolateNumbers(once))
}

func TestHasRTL(t *testing.T) {
	assert.True(t, label.HasRTL(companyHeader))
	assert.False(t, label.HasRTL("Samsung A54"))
}

func TestLoadFont_FallsBackToBuiltin(t *testing.T) {
	f, err := label.LoadFont([]string{"/nonexistent/a.ttf", "/nonexistent/b.ttc"}, helpers.TestLogger())
	require.NoError(t, err)
	assert.True(t, f.Fallback)
	assert.Equal(t, label.BuiltinFont, f.Source)
}

func TestFitText(t *testing.T) {
	f, err := label.LoadFont(nil, helpers.TestLogger())
	require.NoError(t, err)
	size := label.SizeRange{Max: 7, Min: 4}

	t.Run("fits_at_max", func(t *testing.T) {
		fit, err := label.FitText(f, "64", 150, size, 0.5, 300)
		require.NoError(t, err)
		defer fit.Face.Close()
		assert.Equal(t, 7.0, fit.SizePt)
		assert.False(t, fit.Overflow)
		assert.LessOrEqual(t, fit.Width, 150)
	})

	t.Run("shrinks", func(t *testing.T) {
		full, err := label.FitText(f, "Galaxy", 10000, size, 0.5, 300)
		require.NoError(t, err)
		defer full.Face.Close()

		fit, err := label.FitText(f, "Galaxy", full.Width-1, size, 0.5, 300)
		require.NoError(t, err)
		defer fit.Face.Close()
		assert.Less(t, fit.SizePt, 7.0)
		assert.GreaterOrEqual(t, fit.SizePt, 4.0)
		assert.False(t, fit.Overflow)
	})

	t.Run("overflow_uses_minimum", func(t *testing.T) {
		fit, err := label.FitText(f, strings.Repeat("W", 200), 100, size, 0.5, 300)
		require.NoError(t, err)
		defer fit.Face.Close()
		assert.Equal(t, 4.0, fit.SizePt)
		assert.True(t, fit.Overflow)
		assert.Greater(t, fit.Width, 100)
	})
}

func TestPlaceholder_Deterministic(t *testing.T) {
	a := label.Placeholder(354, 94, "000042")
	b := label.Placeholder(354, 94, "000042")
	c := label.Placeholder(354, 94, "000043")

	assert.Equal(t, image.Rect(0, 0, 354, 94), a.Bounds())
	assert.Equal(t, a.Pix, b.Pix)
	assert.NotEqual(t, a.Pix, c.Pix)
}

func TestEncodeBarcode(t *testing.T) {
	img, err := label.EncodeBarcode("ACC1700000000123", 354, 94)
	require.NoError(t, err)
	assert.Equal(t, 354, img.Bounds().Dx())
	assert.Equal(t, 94, img.Bounds().Dy())

	narrow, err := label.EncodeBarcode("ACC1700000000123", 40, 10)
	require.NoError(t, err)
	assert.Equal(t, 40, narrow.Bounds().Dx())
}

func TestLoadBarcode_Missing(t *testing.T) {
	_, err := label.LoadBarcode("/nonexistent/barcode.png")
	assert.ErrorIs(t, err, domain.ErrAssetUnavailable)
}

func TestComposer_Compose(t *testing.T) {
	c := newComposer(t)

	comp, err := c.Compose(label.Input{Header: companyHeader, Fields: phoneFields(), Seed: "000042"})
	require.NoError(t, err)

	b := comp.Image.Bounds()
	assert.Equal(t, 472, b.Dx())
	assert.Equal(t, 295, b.Dy())
	assert.True(t, comp.Placeholder)
	assert.Equal(t, label.BuiltinFont, comp.FontSource)

	assert.Less(t, comp.Header.Bounds.Max.Y, comp.Barcode.Min.Y+1)
	assert.Equal(t, 354, comp.Barcode.Dx())
	assert.InDelta(t, b.Dx()/2, (comp.Barcode.Min.X+comp.Barcode.Max.X)/2, 1)

	require.Len(t, comp.Columns, 3)
	for _, col := range comp.Columns {
		assert.GreaterOrEqual(t, col.Bounds.Min.Y, b.Dy()-b.Dy()/3)
		assert.Equal(t, comp.Columns[0].Bounds.Dx(), col.Bounds.Dx())
		assert.LessOrEqual(t, col.Label.Bounds.Max.Y, col.Value.Bounds.Min.Y+1)
	}
	// Arabic labels read right to left: the first field is the rightmost column.
	assert.Greater(t, comp.Columns[0].Bounds.Min.X, comp.Columns[2].Bounds.Min.X)
}

func TestComposer_OverflowDrawsAtMinimum(t *testing.T) {
	c := newComposer(t)
	fields := phoneFields()
	fields[1].Value = strings.Repeat("9", 120)

	comp, err := c.Compose(label.Input{Header: companyHeader, Fields: fields})
	require.NoError(t, err)

	value := comp.Columns[1].Value
	assert.True(t, value.Overflow)
	assert.Equal(t, c.Options().FieldSize.Min, value.SizePt)
}

func TestComposer_RejectsFieldCount(t *testing.T) {
	c := newComposer(t)
	_, err := c.Compose(label.Input{Header: companyHeader})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = c.Compose(label.Input{Fields: append(phoneFields(), domain.LabelField{Label: "x", Value: "y"})})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestComposer_RenderPNG(t *testing.T) {
	c := newComposer(t)

	art, err := c.Render(context.Background(), domain.LabelRequest{
		Subject:     domain.LabelSubjectPhone,
		Identifier:  "000042",
		Header:      companyHeader,
		Fields:      phoneFields(),
		BarcodePath: "/nonexistent/000042.png",
	}, domain.LabelFormatPNG)
	require.NoError(t, err)
	assert.True(t, art.Placeholder)

	img, err := png.Decode(bytes.NewReader(art.Data))
	require.NoError(t, err)
	assert.Equal(t, art.WidthPx, img.Bounds().Dx())
	assert.Equal(t, art.HeightPx, img.Bounds().Dy())
}

func TestComposer_RenderEncodesBarcode(t *testing.T) {
	c := newComposer(t)

	art, err := c.Render(context.Background(), domain.LabelRequest{
		Subject:    domain.LabelSubjectAccessory,
		Identifier: "ACC1700000000123",
		Header:     companyHeader,
		Fields:     []domain.LabelField{{Label: "الفئة", Value: "شاحن"}},
	}, domain.LabelFormatPNG)
	require.NoError(t, err)
	assert.False(t, art.Placeholder)
}

func TestComposer_RenderPDF(t *testing.T) {
	c := newComposer(t)

	art, err := c.Render(context.Background(), domain.LabelRequest{
		Subject:    domain.LabelSubjectPhone,
		Identifier: "000042",
		Header:     companyHeader,
		Fields:     phoneFields(),
	}, domain.LabelFormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "pdf", string(art.Format))

	r, err := pdfreader.NewReader(bytes.NewReader(art.Data), int64(len(art.Data)))
	require.NoError(t, err)
	require.Equal(t, 1, r.NumPage())

	page := r.Page(1)
	box := page.V.Key("MediaBox")
	if box.IsNull() {
		box = page.V.Key("Parent").Key("MediaBox")
	}
	require.Equal(t, 4, box.Len())
	// 40 x 25 mm in points.
	assert.InDelta(t, 113.39, box.Index(2).Float64(), 0.05)
	assert.InDelta(t, 70.87, box.Index(3).Float64(), 0.05)
}

func TestComposer_RenderSizeOverride(t *testing.T) {
	c := newComposer(t)
	req := domain.LabelRequest{
		Subject:    domain.LabelSubjectPhone,
		Identifier: "000042",
		Header:     companyHeader,
		Fields:     phoneFields(),
	}

	tests := []struct {
		name         string
		size         *domain.LabelSize
		wantW, wantH int
		wantErr      bool
	}{
		{name: "configured size", wantW: 472, wantH: 295},
		{name: "sticker at 600 dpi", size: &domain.LabelSize{DPI: 600}, wantW: 945, wantH: 591},
		{name: "6x3cm at 96 dpi", size: &domain.LabelSize{WidthMM: 60, HeightMM: 30, DPI: 96}, wantW: 227, wantH: 113},
		{name: "6x3cm at configured dpi", size: &domain.LabelSize{WidthMM: 60, HeightMM: 30}, wantW: 709, wantH: 354},
		{name: "raster too large", size: &domain.LabelSize{WidthMM: 200, HeightMM: 200, DPI: 1200}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := req
			r.Size = tt.size
			art, err := c.Render(context.Background(), r, domain.LabelFormatPNG)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantW, art.WidthPx)
			assert.Equal(t, tt.wantH, art.HeightPx)

			img, err := png.Decode(bytes.NewReader(art.Data))
			require.NoError(t, err)
			assert.Equal(t, tt.wantW, img.Bounds().Dx())
			assert.Equal(t, tt.wantH, img.Bounds().Dy())
		})
	}

	t.Run("document follows the override", func(t *testing.T) {
		r := req
		r.Size = &domain.LabelSize{WidthMM: 60, HeightMM: 30, DPI: 150}
		art, err := c.Render(context.Background(), r, domain.LabelFormatPDF)
		require.NoError(t, err)

		doc, err := pdfreader.NewReader(bytes.NewReader(art.Data), int64(len(art.Data)))
		require.NoError(t, err)
		require.Equal(t, 1, doc.NumPage())

		page := doc.Page(1)
		box := page.V.Key("MediaBox")
		if box.IsNull() {
			box = page.V.Key("Parent").Key("MediaBox")
		}
		require.Equal(t, 4, box.Len())
		assert.InDelta(t, 170.08, box.Index(2).Float64(), 0.05)
		assert.InDelta(t, 85.04, box.Index(3).Float64(), 0.05)
	})
}

func TestComposer_RenderValidates(t *testing.T) {
	c := newComposer(t)
	_, err := c.Render(context.Background(), domain.LabelRequest{Header: companyHeader, Fields: phoneFields()}, domain.LabelFormatPNG)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNewComposer_InvalidSpec(t *testing.T) {
	opts := label.DefaultOptions()
	opts.Spec.DPI = 0
	_, err := label.NewComposer(opts, helpers.TestLogger())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOptionsFromConfig(t *testing.T) {
	opts := label.OptionsFromConfig(config.LabelConfig{
		WidthMM:         50,
		HeightMM:        30,
		CompanyName:     companyHeader,
		FieldMaxFontPt:  8,
		FieldMinFontPt:  5,
		BarcodeHeightMM: 0,
	})

	assert.Equal(t, 50.0, opts.Spec.WidthMM)
	assert.Equal(t, 300.0, opts.Spec.DPI)
	assert.Equal(t, label.SizeRange{Max: 8, Min: 5}, opts.FieldSize)
	assert.Equal(t, label.SizeRange{Max: 12, Min: 6}, opts.HeaderSize)
	assert.Equal(t, 8.0, opts.BarcodeHeightMM)
	assert.Equal(t, companyHeader, opts.Header)
}
