package colorimetry

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

var ErrUnknownAdaptation = errors.New("unknown chromatic adaptation transform")

// Adaptation is a von Kries style chromatic adaptation transform family,
// identified by the cone response matrix it scales in.
type Adaptation struct {
	Name string
	Cone Matrix3
}

var adaptations = map[string]Adaptation{
	"XYZ Scaling": {
		Name: "XYZ Scaling",
		Cone: Identity,
	},
	"Von Kries": {
		Name: "Von Kries",
		Cone: Matrix3{
			{0.40024, 0.70760, -0.08081},
			{-0.22630, 1.16532, 0.04570},
			{0, 0, 0.91822},
		},
	},
	"Bradford": {
		Name: "Bradford",
		Cone: Matrix3{
			{0.8951, 0.2664, -0.1614},
			{-0.7502, 1.7135, 0.0367},
			{0.0389, -0.0685, 1.0296},
		},
	},
	"Sharp": {
		Name: "Sharp",
		Cone: Matrix3{
			{1.2694, -0.0988, -0.1706},
			{-0.8364, 1.8006, 0.0357},
			{0.0297, -0.0315, 1.0018},
		},
	},
	"CMCCAT2000": {
		Name: "CMCCAT2000",
		Cone: Matrix3{
			{0.7982, 0.3389, -0.1371},
			{-0.5918, 1.5512, 0.0406},
			{0.0008, 0.0239, 0.9753},
		},
	},
	"CAT02": {
		Name: "CAT02",
		Cone: Matrix3{
			{0.7328, 0.4296, -0.1624},
			{-0.7036, 1.6975, 0.0061},
			{0.0030, 0.0136, 0.9834},
		},
	},
	"CAT16": {
		Name: "CAT16",
		Cone: Matrix3{
			{0.401288, 0.650173, -0.051461},
			{-0.250268, 1.204414, 0.045854},
			{-0.002079, 0.048952, 0.953127},
		},
	},
}

func LookupAdaptation(name string) (Adaptation, error) {
	a, ok := adaptations[name]
	if !ok {
		return Adaptation{}, fmt.Errorf("%w: %q", ErrUnknownAdaptation, name)
	}
	return a, nil
}

func Adaptations() []string {
	return slices.Sorted(maps.Keys(adaptations))
}

// Matrix derives the XYZ to XYZ transform taking src white to dst white:
// Cone^-1 * diag(dst cone / src cone) * Cone.
func (a Adaptation) Matrix(src, dst XYZ) (Matrix3, error) {
	inv, err := a.Cone.Inverse()
	if err != nil {
		return Matrix3{}, fmt.Errorf("adaptation %q: %w", a.Name, err)
	}

	s := a.Cone.Apply(src.vec())
	d := a.Cone.Apply(dst.vec())
	if s[0] == 0 || s[1] == 0 || s[2] == 0 {
		return Matrix3{}, fmt.Errorf("adaptation %q: source white %v has a zero cone response", a.Name, src)
	}

	return inv.Mul(Diagonal(d[0]/s[0], d[1]/s[1], d[2]/s[2])).Mul(a.Cone), nil
}
