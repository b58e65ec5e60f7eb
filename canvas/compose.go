// Package canvas paints encoded patches onto canvases and quantizes them to
// 16-bit images.
package canvas

import (
	"hdrchecker/colorimetry"
	"hdrchecker/layout"
)

// Patch is what the compositor needs to know about an encoded patch.
type Patch interface {
	Code() colorimetry.RGB
}

// Mosaic paints patch i at mosaic rectangle i. Surplus patches or rectangles
// are ignored.
func Mosaic[P Patch](patches []P, g layout.Geometry) *Float {
	f := NewFloat(g.Bounds)
	for i, p := range patches {
		if i >= len(g.Mosaic) {
			break
		}
		f.Fill(g.Mosaic[i], p.Code())
	}
	return f
}

func Single(p Patch, g layout.Geometry) *Float {
	f := NewFloat(g.Bounds)
	f.Fill(g.Single, p.Code())
	return f
}

// Levels are the quantized code values of one patch.
type Levels struct {
	R, G, B uint16
}

func QuantizeRGB(c colorimetry.RGB) Levels {
	return Levels{R: Quantize(c.R), G: Quantize(c.G), B: Quantize(c.B)}
}
