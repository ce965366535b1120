package render

import (
	"image"
	_ "image/gif"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	"github.com/pkg/errors"
	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Sprites are the scaled bitmaps shared by every frame of a run
type Sprites struct {
	Cell    *image.RGBA
	Overlay *image.RGBA
}

// LoadSprites decodes both images and scales them once: the cell sprite to
// cellSize x cellSize, the overlay by overlayScale.
func LoadSprites(cellPath, overlayPath string, cellSize int, overlayScale float64) (*Sprites, error) {
	cell, err := LoadSprite(cellPath)
	if err != nil {
		return nil, errors.Wrap(err, "[LoadSprites] cell sprite")
	}
	overlay, err := LoadSprite(overlayPath)
	if err != nil {
		return nil, errors.Wrap(err, "[LoadSprites] overlay sprite")
	}
	return &Sprites{
		Cell:    ScaleCell(cell, cellSize),
		Overlay: ScaleOverlay(overlay, overlayScale),
	}, nil
}

// LoadSprite decodes any registered raster format
func LoadSprite(path string) (image.Image, error) {
	img, err := imgio.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadSprite] failed to decode image: %+v", path)
	}
	return img, nil
}

// ScaleCell resamples src to exactly size x size with a bicubic filter
func ScaleCell(src image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// ScaleOverlay resizes src by factor with a Lanczos filter, truncating the new size
func ScaleOverlay(src image.Image, factor float64) *image.RGBA {
	b := src.Bounds()
	w := int(float64(b.Dx()) * factor)
	h := int(float64(b.Dy()) * factor)
	if w <= 0 || h <= 0 {
		return image.NewRGBA(image.Rectangle{})
	}
	dst := transform.Resize(src, w, h, transform.Lanczos)
	clampPremultiplied(dst)
	return dst
}

// clampPremultiplied caps every color channel at its alpha. Lanczos ringing
// next to transparent edges leaves channels above alpha, which draw.Over
// turns into dark specks.
func clampPremultiplied(img *image.RGBA) {
	for i := 0; i+3 < len(img.Pix); i += 4 {
		a := img.Pix[i+3]
		img.Pix[i+0] = min(img.Pix[i+0], a)
		img.Pix[i+1] = min(img.Pix[i+1], a)
		img.Pix[i+2] = min(img.Pix[i+2], a)
	}
}
