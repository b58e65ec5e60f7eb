package colorimetry

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

var (
	ErrUnknownColorSpace   = errors.New("unknown color space")
	ErrMalformedColorSpace = errors.New("malformed color space")
)

// ColorSpace is an RGB space defined by its primaries and white point,
// together with the matrices derived from them.
type ColorSpace struct {
	Name       string
	Primaries  [3]XY
	WhitePoint XY
	RGBToXYZ   Matrix3
	XYZToRGB   Matrix3
}

var (
	WhiteD50 = XY{X: 0.3457, Y: 0.3585}
	WhiteD60 = XY{X: 0.32168, Y: 0.33767}
	WhiteD65 = XY{X: 0.3127, Y: 0.3290}
	WhiteC   = XY{X: 0.31006, Y: 0.31616}
	WhiteDCI = XY{X: 0.314, Y: 0.351}
)

var colorSpaces = map[string]ColorSpace{}

func init() {
	for _, cs := range []struct {
		name      string
		primaries [3]XY
		white     XY
	}{
		{"ITU-R BT.2020", [3]XY{{0.708, 0.292}, {0.170, 0.797}, {0.131, 0.046}}, WhiteD65},
		{"ITU-R BT.709", [3]XY{{0.640, 0.330}, {0.300, 0.600}, {0.150, 0.060}}, WhiteD65},
		{"DCI-P3", [3]XY{{0.680, 0.320}, {0.265, 0.690}, {0.150, 0.060}}, WhiteDCI},
		{"P3-D65", [3]XY{{0.680, 0.320}, {0.265, 0.690}, {0.150, 0.060}}, WhiteD65},
		{"ACES2065-1", [3]XY{{0.7347, 0.2653}, {0.0, 1.0}, {0.0001, -0.0770}}, WhiteD60},
		{"ACEScg", [3]XY{{0.713, 0.293}, {0.165, 0.830}, {0.128, 0.044}}, WhiteD60},
		{"ACESproxy", [3]XY{{0.713, 0.293}, {0.165, 0.830}, {0.128, 0.044}}, WhiteD60},
		{"S-Gamut3", [3]XY{{0.730, 0.280}, {0.140, 0.855}, {0.100, -0.050}}, WhiteD65},
		{"S-Gamut3.Cine", [3]XY{{0.766, 0.275}, {0.225, 0.800}, {0.089, -0.087}}, WhiteD65},
		{"V-Gamut", [3]XY{{0.730, 0.280}, {0.165, 0.840}, {0.100, -0.030}}, WhiteD65},
	} {
		space, err := NewColorSpace(cs.name, cs.primaries, cs.white)
		if err != nil {
			panic(err)
		}
		colorSpaces[cs.name] = space
	}
}

// NewColorSpace derives the normalised primary matrix: the primaries' XYZ
// columns, each scaled so that RGB (1,1,1) maps to the white point.
func NewColorSpace(name string, primaries [3]XY, white XY) (ColorSpace, error) {
	if !white.Valid() {
		return ColorSpace{}, fmt.Errorf("%w: %q has white point %v", ErrMalformedColorSpace, name, white)
	}

	var p Matrix3
	for j, c := range primaries {
		if c.Y == 0 {
			return ColorSpace{}, fmt.Errorf("%w: %q primary %d has y = 0", ErrMalformedColorSpace, name, j)
		}
		v := c.XYZ()
		p[0][j], p[1][j], p[2][j] = v.X, v.Y, v.Z
	}

	pInv, err := p.Inverse()
	if err != nil {
		return ColorSpace{}, fmt.Errorf("%w: %q primaries: %w", ErrMalformedColorSpace, name, err)
	}
	s := pInv.Apply(white.XYZ().vec())
	toXYZ := p.Mul(Diagonal(s[0], s[1], s[2]))

	fromXYZ, err := toXYZ.Inverse()
	if err != nil {
		return ColorSpace{}, fmt.Errorf("%w: %q: %w", ErrMalformedColorSpace, name, err)
	}

	return ColorSpace{
		Name:       name,
		Primaries:  primaries,
		WhitePoint: white,
		RGBToXYZ:   toXYZ,
		XYZToRGB:   fromXYZ,
	}, nil
}

func LookupColorSpace(name string) (ColorSpace, error) {
	cs, ok := colorSpaces[name]
	if !ok {
		return ColorSpace{}, fmt.Errorf("%w: %q", ErrUnknownColorSpace, name)
	}
	return cs, nil
}

func ColorSpaces() []string {
	return slices.Sorted(maps.Keys(colorSpaces))
}

// Validate checks a descriptor that may have been assembled by hand.
func (cs ColorSpace) Validate() error {
	switch {
	case cs.Name == "":
		return fmt.Errorf("%w: missing name", ErrMalformedColorSpace)
	case !cs.WhitePoint.Valid():
		return fmt.Errorf("%w: %q has white point %v", ErrMalformedColorSpace, cs.Name, cs.WhitePoint)
	case cs.RGBToXYZ.IsZero() || cs.XYZToRGB.IsZero():
		return fmt.Errorf("%w: %q is missing a transform matrix", ErrMalformedColorSpace, cs.Name)
	case !cs.RGBToXYZ.Mul(cs.XYZToRGB).closeTo(Identity, 1e-9):
		return fmt.Errorf("%w: %q matrices are not inverses of each other", ErrMalformedColorSpace, cs.Name)
	}
	return nil
}

func (cs ColorSpace) ToRGB(c XYZ) RGB {
	return rgbFromVec(cs.XYZToRGB.Apply(c.vec()))
}

func (cs ColorSpace) ToXYZ(c RGB) XYZ {
	return xyzFromVec(cs.RGBToXYZ.Apply(c.vec()))
}
