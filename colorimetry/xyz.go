package colorimetry

import "math"

// XY is a CIE 1931 chromaticity coordinate pair.
type XY struct {
	X float64
	Y float64
}

// XyY is a chromaticity pair plus luminance.
type XyY struct {
	X   float64
	Y   float64
	Lum float64
}

// XYZ is a CIE 1931 tristimulus triple.
type XYZ struct {
	X float64
	Y float64
	Z float64
}

func (c XYZ) vec() [3]float64 { return [3]float64{c.X, c.Y, c.Z} }

func xyzFromVec(v [3]float64) XYZ { return XYZ{X: v[0], Y: v[1], Z: v[2]} }

// XYZ returns the tristimulus value of the chromaticity with Y = 1, which is
// the convention used for white points.
func (c XY) XYZ() XYZ {
	return XyYToXYZ(XyY{X: c.X, Y: c.Y, Lum: 1})
}

func (c XY) Valid() bool {
	return c.Y > 0 && !math.IsNaN(c.X) && !math.IsInf(c.X, 0) && !math.IsInf(c.Y, 0)
}

// XyYToXYZ scales the chromaticity direction by luminance. A zero y
// coordinate gives black.
func XyYToXYZ(c XyY) XYZ {
	if c.Y == 0 {
		return XYZ{}
	}
	return XYZ{
		X: c.X * c.Lum / c.Y,
		Y: c.Lum,
		Z: (1 - c.X - c.Y) * c.Lum / c.Y,
	}
}

// XYZToXyY is the inverse of XyYToXYZ. Black has no chromaticity and is given
// the black argument instead.
func XYZToXyY(c XYZ, black XY) XyY {
	sum := c.X + c.Y + c.Z
	if sum == 0 {
		return XyY{X: black.X, Y: black.Y, Lum: 0}
	}
	return XyY{X: c.X / sum, Y: c.Y / sum, Lum: c.Y}
}
