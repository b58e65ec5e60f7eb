package canvas

import (
	"image"
	"image/color"

	"hdrchecker/colorimetry"
)

// Float is an RGB image with one float64 per channel. Values are kept as
// painted, including those outside [0,1].
type Float struct {
	// Pix holds the image's samples. The pixel at (x, y) starts at
	// Pix[(y-Rect.Min.Y)*Stride + (x-Rect.Min.X)*3].
	Pix []float64
	// Stride is the Pix stride (in samples) between vertically adjacent pixels.
	Stride int
	// Rect is the image's bounds.
	Rect image.Rectangle
}

var _ image.Image = (*Float)(nil)

func NewFloat(r image.Rectangle) *Float {
	return &Float{
		Pix:    make([]float64, 3*r.Dx()*r.Dy()),
		Stride: 3 * r.Dx(),
		Rect:   r,
	}
}

func (f *Float) ColorModel() color.Model { return colorimetry.RGBModel }

func (f *Float) Bounds() image.Rectangle { return f.Rect }

func (f *Float) At(x, y int) color.Color {
	return f.RGBAt(x, y)
}

func (f *Float) RGBAt(x, y int) colorimetry.RGB {
	if !(image.Point{x, y}.In(f.Rect)) {
		return colorimetry.RGB{}
	}
	i := f.PixOffset(x, y)
	s := f.Pix[i : i+3 : i+3]
	return colorimetry.RGB{R: s[0], G: s[1], B: s[2]}
}

func (f *Float) PixOffset(x, y int) int {
	return (y-f.Rect.Min.Y)*f.Stride + (x-f.Rect.Min.X)*3
}

// Fill paints r, clipped to the canvas bounds.
func (f *Float) Fill(r image.Rectangle, c colorimetry.RGB) {
	r = r.Intersect(f.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := f.PixOffset(r.Min.X, y)
		row := f.Pix[i : i+3*r.Dx()]
		for x := 0; x < len(row); x += 3 {
			row[x], row[x+1], row[x+2] = c.R, c.G, c.B
		}
	}
}
