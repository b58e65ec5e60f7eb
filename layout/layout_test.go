package layout

import (
	"image"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultGeometry(t *testing.T) {
	require.NoError(t, Default.Validate())
	g := Compute(Default)

	require.Len(t, g.Mosaic, 24)
	assert.Equal(t, image.Rect(0, 0, 1920, 1080), g.Bounds)
	assert.Equal(t, image.Rect(215, 45, 455, 285), g.Mosaic[0])
	assert.Equal(t, image.Rect(465, 45, 705, 285), g.Mosaic[1])
	assert.Equal(t, image.Rect(215, 295, 455, 535), g.Mosaic[6])
	assert.Equal(t, image.Rect(1465, 795, 1705, 1035), g.Mosaic[23])
	assert.Equal(t, image.Rect(816, 396, 1104, 684), g.Single)
}

func TestMosaicCentered(t *testing.T) {
	for _, grid := range [][2]int{{6, 4}, {4, 4}, {1, 1}, {3, 2}, {5, 3}} {
		for _, size := range [][2]int{{1920, 1080}, {3840, 2160}, {1921, 1081}} {
			p := Default
			p.Columns, p.Rows = grid[0], grid[1]
			p.Width, p.Height = size[0], size[1]
			require.NoError(t, p.Validate())

			u := Compute(p).Union()
			cx2 := u.Min.X + u.Max.X
			cy2 := u.Min.Y + u.Max.Y
			// Compare doubled centres to stay in integers.
			assert.LessOrEqual(t, abs(cx2-p.Width), 2, "grid %v canvas %v horizontal centre", grid, size)
			assert.LessOrEqual(t, abs(cy2-p.Height), 2, "grid %v canvas %v vertical centre", grid, size)
			assert.True(t, u.In(image.Rect(0, 0, p.Width, p.Height)))
		}
	}
}

func TestMosaicSpacing(t *testing.T) {
	g := Compute(Default)
	for i, r := range g.Mosaic {
		assert.Equal(t, 240, r.Dx(), "patch %d", i)
		assert.Equal(t, 240, r.Dy(), "patch %d", i)
		if i%Default.Columns > 0 {
			assert.Equal(t, 10, r.Min.X-g.Mosaic[i-1].Max.X, "gap before patch %d", i)
		}
		if i >= Default.Columns {
			assert.Equal(t, 10, r.Min.Y-g.Mosaic[i-Default.Columns].Max.Y, "gap above patch %d", i)
		}
	}
}

func TestSingleCentered(t *testing.T) {
	g := Compute(Default)
	c := g.Single.Min.Add(g.Single.Max)
	assert.Equal(t, image.Pt(1920, 1080), c)
}

func TestComputeDeterministic(t *testing.T) {
	if diff := cmp.Diff(Compute(Default), Compute(Default)); diff != "" {
		t.Errorf("geometry differs between runs (-first +second):\n%s", diff)
	}
}

func TestValidate(t *testing.T) {
	for _, tc := range []struct {
		name   string
		mangle func(*Params)
		want   error
	}{
		{"zero width", func(p *Params) { p.Width = 0 }, ErrInvalidParams},
		{"negative rows", func(p *Params) { p.Rows = -1 }, ErrInvalidParams},
		{"zero patch", func(p *Params) { p.PatchSize = 0 }, ErrInvalidParams},
		{"negative padding", func(p *Params) { p.Padding = -0.1 }, ErrInvalidParams},
		{"nan padding", func(p *Params) { p.Padding = math.NaN() }, ErrInvalidParams},
		{"inf padding", func(p *Params) { p.Padding = math.Inf(1) }, ErrInvalidParams},
		{"nan patch", func(p *Params) { p.PatchSize = math.NaN() }, ErrInvalidParams},
		{"inf patch", func(p *Params) { p.PatchSize = math.Inf(1) }, ErrInvalidParams},
		{"nan single", func(p *Params) { p.SingleSize = math.NaN() }, ErrInvalidParams},
		{"inf single", func(p *Params) { p.SingleSize = math.Inf(1) }, ErrInvalidParams},
		{"huge padding", func(p *Params) { p.Padding = 1e300 }, ErrGeometryOverflow},
		{"huge patch", func(p *Params) { p.PatchSize = 1e300 }, ErrGeometryOverflow},
		{"tiny patch", func(p *Params) { p.PatchSize = 0.0001 }, ErrInvalidParams},
		{"too many columns", func(p *Params) { p.Columns = 8 }, ErrGeometryOverflow},
		{"too many rows", func(p *Params) { p.Rows = 5 }, ErrGeometryOverflow},
		{"huge single", func(p *Params) { p.SingleSize = 0.9 }, ErrGeometryOverflow},
	} {
		t.Run(tc.name, func(t *testing.T) {
			p := Default
			tc.mangle(&p)
			assert.ErrorIs(t, p.Validate(), tc.want)
		})
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
