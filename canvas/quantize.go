package canvas

import (
	"image"
	"image/color"

	"hdrchecker/colorimetry"
)

const MaxLevel = 0xffff

// Quantize is the clamp-then-round used for every artifact, see
// colorimetry.Quantize16.
func Quantize(v float64) uint16 {
	return colorimetry.Quantize16(v)
}

// Quantize converts the canvas to an opaque 16-bit image.
func (f *Float) Quantize() *image.RGBA64 {
	dst := image.NewRGBA64(f.Rect)
	for y := f.Rect.Min.Y; y < f.Rect.Max.Y; y++ {
		for x := f.Rect.Min.X; x < f.Rect.Max.X; x++ {
			i := f.PixOffset(x, y)
			dst.SetRGBA64(x, y, color.RGBA64{
				R: Quantize(f.Pix[i]),
				G: Quantize(f.Pix[i+1]),
				B: Quantize(f.Pix[i+2]),
				A: MaxLevel,
			})
		}
	}
	return dst
}
