// Package layout computes where colour patches go on the output canvases.
package layout

import (
	"errors"
	"fmt"
	"image"
	"math"
)

var (
	ErrInvalidParams    = errors.New("invalid layout parameters")
	ErrGeometryOverflow = errors.New("patches do not fit in the canvas")
)

// Params are given as fractions of the canvas, mosaic sizes relative to
// its height and the single patch relative to its width.
type Params struct {
	Width      int
	Height     int
	PatchSize  float64
	Padding    float64
	Columns    int
	Rows       int
	SingleSize float64
}

var Default = Params{
	Width:      1920,
	Height:     1080,
	PatchSize:  1 / 4.5,
	Padding:    0.01,
	Columns:    6,
	Rows:       4,
	SingleSize: 0.15,
}

// Geometry holds one mosaic rectangle per grid cell in row-major order and
// the rectangle shared by every single-patch canvas.
type Geometry struct {
	Bounds image.Rectangle
	Mosaic []image.Rectangle
	Single image.Rectangle
}

func (p Params) Capacity() int {
	return p.Columns * p.Rows
}

func (p Params) patchSide() int   { return int(float64(p.Height) * p.PatchSize) }
func (p Params) patchSpace() int  { return int(float64(p.Height) * p.Padding) }
func (p Params) singleSide() int  { return int(float64(p.Width) * p.SingleSize) }
func (p Params) blockWidth() int  { return span(p.Columns, p.patchSide(), p.patchSpace()) }
func (p Params) blockHeight() int { return span(p.Rows, p.patchSide(), p.patchSpace()) }

func span(n, side, space int) int {
	return n*side + (n-1)*space
}

// Compute does not validate; call Validate first when the parameters come
// from a user.
func Compute(p Params) Geometry {
	side, space := p.patchSide(), p.patchSpace()
	x0 := (p.Width - p.blockWidth()) / 2
	y0 := (p.Height - p.blockHeight()) / 2

	mosaic := make([]image.Rectangle, 0, max(p.Capacity(), 0))
	for i := range p.Capacity() {
		col, row := i%p.Columns, i/p.Columns
		x := x0 + (side+space)*col
		y := y0 + (side+space)*row
		mosaic = append(mosaic, image.Rect(x, y, x+side, y+side))
	}

	single := p.singleSide()
	sx := p.Width/2 - single/2
	sy := p.Height/2 - single/2

	return Geometry{
		Bounds: image.Rect(0, 0, p.Width, p.Height),
		Mosaic: mosaic,
		Single: image.Rect(sx, sy, sx+single, sy+single),
	}
}

func (p Params) Validate() error {
	switch {
	case p.Width <= 0 || p.Height <= 0:
		return fmt.Errorf("%w: canvas %dx%d", ErrInvalidParams, p.Width, p.Height)
	case p.Columns <= 0 || p.Rows <= 0:
		return fmt.Errorf("%w: grid %dx%d", ErrInvalidParams, p.Columns, p.Rows)
	case !positive(p.PatchSize) || !(p.Padding >= 0) || math.IsInf(p.Padding, 0) || !positive(p.SingleSize):
		return fmt.Errorf("%w: patch size %g, padding %g, single size %g", ErrInvalidParams, p.PatchSize, p.Padding, p.SingleSize)
	case p.PatchSize > 1 || p.Padding > 1 || p.SingleSize > 1:
		return fmt.Errorf("%w: patch size %g, padding %g, single size %g", ErrGeometryOverflow, p.PatchSize, p.Padding, p.SingleSize)
	case p.patchSide() < 1 || p.singleSide() < 1:
		return fmt.Errorf("%w: patches would be smaller than a pixel", ErrInvalidParams)
	}

	if w, h := p.blockWidth(), p.blockHeight(); w > p.Width || h > p.Height {
		return fmt.Errorf("%w: %dx%d mosaic block in a %dx%d canvas", ErrGeometryOverflow, w, h, p.Width, p.Height)
	}
	if s := p.singleSide(); s > p.Width || s > p.Height {
		return fmt.Errorf("%w: %dpx single patch in a %dx%d canvas", ErrGeometryOverflow, s, p.Width, p.Height)
	}
	return nil
}

// positive rejects NaN and infinities along with values <= 0.
func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// Union is the bounding box of the mosaic.
func (g Geometry) Union() image.Rectangle {
	var r image.Rectangle
	for _, m := range g.Mosaic {
		r = r.Union(m)
	}
	return r
}
