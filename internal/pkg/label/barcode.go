package label

import (
	"fmt"
	"hash/fnv"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	xdraw "golang.org/x/image/draw"

	"github.com/alsaqri/phoneshop/internal/core/domain"
)

// EncodeBarcode renders value as a Code 128 symbol of exactly w x h pixels.
func EncodeBarcode(value string, w, h int) (image.Image, error) {
	bc, err := code128.Encode(value)
	if err != nil {
		return nil, fmt.Errorf("%w: encode %q: %v", domain.ErrAssetUnavailable, value, err)
	}

	if scaled, err := barcode.Scale(bc, w, h); err == nil {
		return scaled, nil
	}

	// Narrower than one pixel per module; resample instead.
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), bc, bc.Bounds(), xdraw.Src, nil)
	return dst, nil
}

// LoadBarcode decodes a pre-rendered barcode graphic.
func LoadBarcode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrAssetUnavailable, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", domain.ErrAssetUnavailable, path, err)
	}
	return img, nil
}

// Placeholder draws a framed stripe pattern derived from seed. The same seed
// always yields the same image.
func Placeholder(w, h int, seed string) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(img, img.Bounds(), image.White, image.Point{}, xdraw.Src)
	if w < 4 || h < 4 {
		return img
	}

	grey := color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	for x := 0; x < w; x++ {
		img.Set(x, 0, grey)
		img.Set(x, h-1, grey)
	}
	for y := 0; y < h; y++ {
		img.Set(0, y, grey)
		img.Set(w-1, y, grey)
	}

	hash := fnv.New64a()
	_, _ = hash.Write([]byte(seed))
	bits := hash.Sum64()

	x := 2
	for i := 0; x < w-2; i++ {
		bar := int(bits>>(uint(i%32)*2)&3) + 1
		if i%2 == 0 {
			for dx := 0; dx < bar && x+dx < w-2; dx++ {
				for y := 2; y < h-2; y++ {
					img.Set(x+dx, y, grey)
				}
			}
		}
		x += bar
	}
	return img
}
