package label

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/go-pdf/fpdf"

	"github.com/alsaqri/phoneshop/internal/core/domain"
)

// EncodePNG serializes a composed label.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("%w: encode png: %v", domain.ErrRenderFailure, err)
	}
	return buf.Bytes(), nil
}

// Document places a PNG label on a single page of the label's physical size.
func Document(pngData []byte, spec Spec) ([]byte, error) {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: spec.WidthMM, Ht: spec.HeightMM},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("label", opts, bytes.NewReader(pngData))
	pdf.ImageOptions("label", 0, 0, spec.WidthMM, spec.HeightMM, false, opts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: write pdf: %v", domain.ErrRenderFailure, err)
	}
	return buf.Bytes(), nil
}
