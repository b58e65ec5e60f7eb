package canvas

import (
	"image"
	"image/color"
	"math"
	"testing"

	"hdrchecker/colorimetry"
	"hdrchecker/layout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type code colorimetry.RGB

func (c code) Code() colorimetry.RGB { return colorimetry.RGB(c) }

func TestQuantize(t *testing.T) {
	for _, tc := range []struct {
		in   float64
		want uint16
	}{
		{0, 0},
		{1, 65535},
		{0.5, 32768},
		{1.0 / 65535, 1},
		{0.49 / 65535, 0},
		{-0.2, 0},
		{-1e-12, 0},
		{1.0000001, 65535},
		{7.5, 65535},
		{math.Inf(1), 65535},
		{math.Inf(-1), 0},
		{math.NaN(), 0},
	} {
		assert.Equal(t, tc.want, Quantize(tc.in), "Quantize(%g)", tc.in)
	}
}

func TestFill(t *testing.T) {
	f := NewFloat(image.Rect(0, 0, 4, 3))
	c := colorimetry.RGB{R: 0.25, G: -0.5, B: 1.5}
	f.Fill(image.Rect(1, 1, 3, 5), c)

	assert.Equal(t, c, f.RGBAt(1, 1))
	assert.Equal(t, c, f.RGBAt(2, 2))
	assert.Equal(t, colorimetry.RGB{}, f.RGBAt(0, 0))
	assert.Equal(t, colorimetry.RGB{}, f.RGBAt(3, 1))
	assert.Equal(t, colorimetry.RGB{}, f.RGBAt(9, 9))
}

func TestFloatQuantizeClamps(t *testing.T) {
	f := NewFloat(image.Rect(0, 0, 2, 1))
	f.Fill(image.Rect(0, 0, 1, 1), colorimetry.RGB{R: 0.5, G: 1.2, B: -0.1})

	img := f.Quantize()
	assert.Equal(t, color.RGBA64{R: 32768, G: 65535, B: 0, A: 65535}, img.RGBA64At(0, 0))
	assert.Equal(t, color.RGBA64{A: 65535}, img.RGBA64At(1, 0))
	assert.True(t, img.Opaque())
}

func TestMosaic(t *testing.T) {
	p := layout.Params{Width: 100, Height: 60, PatchSize: 0.2, Padding: 0.05, Columns: 3, Rows: 2, SingleSize: 0.1}
	require.NoError(t, p.Validate())
	g := layout.Compute(p)

	patches := make([]code, 6)
	for i := range patches {
		v := float64(i+1) / 10
		patches[i] = code{R: v, G: v / 2, B: 1 - v}
	}

	f := Mosaic(patches, g)
	for i, r := range g.Mosaic {
		assert.Equal(t, colorimetry.RGB(patches[i]), f.RGBAt(r.Min.X, r.Min.Y), "patch %d corner", i)
		assert.Equal(t, colorimetry.RGB(patches[i]), f.RGBAt(r.Max.X-1, r.Max.Y-1), "patch %d corner", i)
	}
	assert.Equal(t, colorimetry.RGB{}, f.RGBAt(0, 0))
	gap := g.Mosaic[0].Max
	assert.Equal(t, colorimetry.RGB{}, f.RGBAt(gap.X, gap.Y-1))
}

func TestSingle(t *testing.T) {
	g := layout.Compute(layout.Default)
	c := code{R: 0.3, G: 0.6, B: 0.9}
	f := Single(c, g)

	count := 0
	for y := f.Rect.Min.Y; y < f.Rect.Max.Y; y++ {
		for x := f.Rect.Min.X; x < f.Rect.Max.X; x++ {
			if f.RGBAt(x, y) == colorimetry.RGB(c) {
				count++
			}
		}
	}
	assert.Equal(t, g.Single.Dx()*g.Single.Dy(), count)
}

func TestColorModel(t *testing.T) {
	f := NewFloat(image.Rect(0, 0, 1, 1))
	f.Fill(f.Rect, colorimetry.RGB{R: 2, G: 0.5, B: -1})
	r, g, b, a := f.At(0, 0).RGBA()
	assert.Equal(t, []uint32{0xffff, 0x8000, 0, 0xffff}, []uint32{r, g, b, a})
}

func TestAtMatchesQuantize(t *testing.T) {
	for _, c := range []colorimetry.RGB{
		{R: math.NaN(), G: 1.5, B: -0.25},
		{R: 0.5 / 0xffff, G: 0.999999, B: 0.3256},
		{R: math.Inf(1), G: math.Inf(-1), B: 0},
	} {
		f := NewFloat(image.Rect(0, 0, 1, 1))
		f.Fill(f.Rect, c)
		r, g, b, _ := f.At(0, 0).RGBA()
		q := f.Quantize().RGBA64At(0, 0)
		assert.Equal(t, []uint32{uint32(q.R), uint32(q.G), uint32(q.B)}, []uint32{r, g, b}, "%v", c)
	}
}
