package encoder

import (
	"image"
	"image/color"
)

// Quantizer maps frames onto a fixed palette of at most 256 colors.
// Nearest-color lookups are memoized since frames repeat the same few sprite
// colors over a large white background.
type Quantizer struct {
	palette color.Palette
	cache   map[color.RGBA]uint8
}

func NewQuantizer(p color.Palette) *Quantizer {
	return &Quantizer{palette: p, cache: make(map[color.RGBA]uint8)}
}

// Quantize returns a paletted copy of img with the same bounds
func (q *Quantizer) Quantize(img image.Image) *image.Paletted {
	b := img.Bounds()
	dst := image.NewPaletted(b, q.palette)
	rgba, isRGBA := img.(*image.RGBA)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		off := dst.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x++ {
			var c color.RGBA
			if isRGBA {
				c = rgba.RGBAAt(x, y)
			} else {
				c = color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			}
			dst.Pix[off] = q.index(c)
			off++
		}
	}
	return dst
}

func (q *Quantizer) index(c color.RGBA) uint8 {
	if idx, ok := q.cache[c]; ok {
		return idx
	}
	idx := uint8(q.palette.Index(c))
	q.cache[c] = idx
	return idx
}
