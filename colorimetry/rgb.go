package colorimetry

import (
	"image/color"
	"math"
)

// RGB is an unclamped floating point RGB triple. Depending on where it sits in
// the pipeline it holds linear light, scaled linear light in cd/m2, or
// non-linear code values.
type RGB struct {
	R float64
	G float64
	B float64
}

func (c RGB) vec() [3]float64 { return [3]float64{c.R, c.G, c.B} }

func rgbFromVec(v [3]float64) RGB { return RGB{R: v[0], G: v[1], B: v[2]} }

func (c RGB) Scale(k float64) RGB {
	return RGB{R: c.R * k, G: c.G * k, B: c.B * k}
}

// InUnitRange reports whether every component lies in [0,1].
func (c RGB) InUnitRange() bool {
	return inUnit(c.R) && inUnit(c.G) && inUnit(c.B)
}

func inUnit(v float64) bool {
	return v >= 0 && v <= 1
}

// RGBA treats the components as code values and quantizes them like the
// written artifacts, so an RGB can be handed to image/draw for previews.
func (c RGB) RGBA() (uint32, uint32, uint32, uint32) {
	return uint32(Quantize16(c.R)), uint32(Quantize16(c.G)), uint32(Quantize16(c.B)), 0xffff
}

var RGBModel = color.ModelFunc(rgbConvert)

func rgbConvert(c color.Color) color.Color {
	if _, ok := c.(RGB); ok {
		return c
	}

	r, g, b, _ := c.RGBA()
	return RGB{
		R: float64(r) / 0xffff,
		G: float64(g) / 0xffff,
		B: float64(b) / 0xffff,
	}
}

// Quantize16 maps a code value in [0,1] to [0,0xffff], rounding half away
// from zero. Values outside the range are clamped, so an out-of-gamut patch
// is blown out instead of wrapping around; NaN becomes 0.
func Quantize16(v float64) uint16 {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= 1:
		return 0xffff
	}
	return uint16(math.Round(v * 0xffff))
}
