package label

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/alsaqri/phoneshop/internal/core/domain"
)

// BuiltinFont is the Source of a Font loaded from the embedded fallback.
const BuiltinFont = "builtin:goregular"

// Font is a parsed scalable font that can produce faces at any size.
type Font struct {
	font     *opentype.Font
	Source   string
	Fallback bool
}

// LoadFont returns the first candidate that can be read and parsed, or the
// built-in font when none can.
func LoadFont(candidates []string, logger *slog.Logger) (*Font, error) {
	if logger == nil {
		logger = slog.Default()
	}

	for _, path := range candidates {
		f, err := parseFontFile(path)
		if err != nil {
			logger.Debug("font candidate skipped",
				slog.String("path", path),
				slog.String("error", err.Error()))
			continue
		}
		logger.Debug("label font loaded", slog.String("path", path))
		return &Font{font: f, Source: path}, nil
	}

	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("%w: parse builtin font: %v", domain.ErrRenderFailure, err)
	}
	logger.Warn("no label font candidate available, using builtin font",
		slog.Int("candidates", len(candidates)))
	return &Font{font: f, Source: BuiltinFont, Fallback: true}, nil
}

func parseFontFile(path string) (*opentype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if strings.EqualFold(filepath.Ext(path), ".ttc") {
		coll, err := opentype.ParseCollection(data)
		if err != nil {
			return nil, err
		}
		return coll.Font(0)
	}
	return opentype.Parse(data)
}

// Face returns a face of sizePt points rasterized at dpi.
func (f *Font) Face(sizePt, dpi float64) (font.Face, error) {
	face, err := opentype.NewFace(f.font, &opentype.FaceOptions{
		Size:    sizePt,
		DPI:     dpi,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: font face %.1fpt: %v", domain.ErrRenderFailure, sizePt, err)
	}
	return face, nil
}
