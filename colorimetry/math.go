package colorimetry

import "fmt"

// ColorMath is the numeric core the rendering pipeline calls into.
// Every method works on a whole batch so per-batch state, like an adaptation
// matrix, is derived once and applied to all entries alike.
type ColorMath interface {
	ToTristimulus(values []XyY) []XYZ
	Adapt(src, dst XYZ, values []XYZ) ([]XYZ, error)
	ToRGB(space ColorSpace, values []XYZ) []RGB
	Encode(transfer string, scaled []RGB) ([]RGB, error)
}

type standard struct {
	adaptation Adaptation
	hlg        HLGDisplay
}

var _ ColorMath = standard{}

// Standard returns the float64 implementation of ColorMath.
func Standard(adaptation Adaptation, hlg HLGDisplay) ColorMath {
	return standard{adaptation: adaptation, hlg: hlg}
}

func (standard) ToTristimulus(values []XyY) []XYZ {
	out := make([]XYZ, len(values))
	for i, v := range values {
		out[i] = XyYToXYZ(v)
	}
	return out
}

func (s standard) Adapt(src, dst XYZ, values []XYZ) ([]XYZ, error) {
	m, err := s.adaptation.Matrix(src, dst)
	if err != nil {
		return nil, err
	}

	out := make([]XYZ, len(values))
	for i, v := range values {
		out[i] = xyzFromVec(m.Apply(v.vec()))
	}
	return out, nil
}

func (standard) ToRGB(space ColorSpace, values []XYZ) []RGB {
	out := make([]RGB, len(values))
	for i, v := range values {
		out[i] = space.ToRGB(v)
	}
	return out
}

func (s standard) Encode(transfer string, scaled []RGB) ([]RGB, error) {
	out := make([]RGB, len(scaled))
	switch transfer {
	case TransferHLG:
		if err := s.hlg.Validate(); err != nil {
			return nil, err
		}
		for i, v := range scaled {
			out[i] = HLGInverseEOTF(v, s.hlg)
		}
	case TransferST2084:
		for i, v := range scaled {
			out[i] = RGB{R: PQInverseEOTF(v.R), G: PQInverseEOTF(v.G), B: PQInverseEOTF(v.B)}
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTransfer, transfer)
	}
	return out, nil
}
