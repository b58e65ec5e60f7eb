package colorimetry

import (
	"errors"
	"fmt"
	"math"
)

var ErrUnknownTransfer = errors.New("unknown transfer function")

const (
	TransferHLG    = "HLG"
	TransferST2084 = "ST2084"
)

// SMPTE ST 2084 constants.
const (
	pqM1   = 2610.0 / 16384
	pqM2   = 2523.0 / 4096 * 128
	pqC1   = 3424.0 / 4096
	pqC2   = 2413.0 / 4096 * 32
	pqC3   = 2392.0 / 4096 * 32
	PQPeak = 10000.0
)

// BT.2100 HLG constants.
const (
	hlgA = 0.17883277
	hlgB = 0.28466892
	hlgC = 0.55991073
)

// HLG luminance weights, identical to the BT.2020 Y row.
var hlgWeights = [3]float64{0.2627, 0.6780, 0.0593}

// HLGDisplay describes the display assumed by the HLG inverse EOTF.
type HLGDisplay struct {
	Peak  float64 // nominal peak luminance L_W in cd/m2
	Black float64 // black level L_B in cd/m2
}

var DefaultHLGDisplay = HLGDisplay{Peak: 1000, Black: 0}

// Gamma is the HLG system gamma for the display peak.
func (d HLGDisplay) Gamma() float64 {
	return 1.2 + 0.42*math.Log10(d.Peak/1000)
}

func (d HLGDisplay) Validate() error {
	if !(d.Peak > d.Black) || d.Black < 0 {
		return fmt.Errorf("invalid HLG display: peak %g, black %g", d.Peak, d.Black)
	}
	return nil
}

// Transfers lists the transfer function families Encode accepts.
func Transfers() []string {
	return []string{TransferHLG, TransferST2084}
}

func LookupTransfer(name string) (string, error) {
	switch name {
	case TransferHLG, TransferST2084:
		return name, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTransfer, name)
}

// PQInverseEOTF encodes absolute luminance in cd/m2 with the ST 2084 curve.
// The PQ reference display applies no OOTF, so nothing is compensated here.
func PQInverseEOTF(l float64) float64 {
	return symmetric(l, pqEncode)
}

func pqEncode(l float64) float64 {
	y := math.Pow(l/PQPeak, pqM1)
	return math.Pow((pqC1+pqC2*y)/(1+pqC3*y), pqM2)
}

// PQEOTF decodes an ST 2084 code value to cd/m2.
func PQEOTF(n float64) float64 {
	return symmetric(n, func(n float64) float64 {
		p := math.Pow(n, 1/pqM2)
		return PQPeak * math.Pow(max(p-pqC1, 0)/(pqC2-pqC3*p), 1/pqM1)
	})
}

// HLGOETF is the plain BT.2100 HLG OETF on normalised scene light.
func HLGOETF(e float64) float64 {
	return symmetric(e, func(e float64) float64 {
		if e <= 1.0/12 {
			return math.Sqrt(3 * e)
		}
		return hlgA*math.Log(12*e-hlgB) + hlgC
	})
}

// HLGInverseOOTF maps display light in cd/m2 back to normalised scene light,
// undoing the OOTF an HLG display applies together with its EOTF.
func HLGInverseOOTF(c RGB, d HLGDisplay) RGB {
	gamma := d.Gamma()
	alpha := d.Peak - d.Black
	yd := hlgWeights[0]*c.R + hlgWeights[1]*c.G + hlgWeights[2]*c.B
	if yd == d.Black {
		return RGB{}
	}

	k := math.Pow(math.Abs((yd-d.Black)/alpha), (1-gamma)/gamma) / alpha
	return RGB{
		R: k * (c.R - d.Black),
		G: k * (c.G - d.Black),
		B: k * (c.B - d.Black),
	}
}

// HLGInverseEOTF encodes display light in cd/m2 so that an HLG display with
// the given characteristics reproduces it.
func HLGInverseEOTF(c RGB, d HLGDisplay) RGB {
	s := HLGInverseOOTF(c, d)
	return RGB{R: HLGOETF(s.R), G: HLGOETF(s.G), B: HLGOETF(s.B)}
}

// symmetric extends f, defined on [0,inf), to negative inputs as -f(-x).
func symmetric(x float64, f func(float64) float64) float64 {
	if x < 0 {
		return -f(-x)
	}
	return f(x)
}
