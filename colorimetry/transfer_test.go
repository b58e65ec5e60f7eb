package colorimetry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPQInverseEOTF(t *testing.T) {
	assert.InDelta(t, 1, PQInverseEOTF(10000), 1e-12)
	assert.InDelta(t, 0.508078421517399, PQInverseEOTF(100), 1e-12)
	assert.InDelta(t, 0.44028157342046104, PQInverseEOTF(50), 1e-12)
	assert.InDelta(t, 7.309559025783966e-07, PQInverseEOTF(0), 1e-15)
	assert.Equal(t, -PQInverseEOTF(20), PQInverseEOTF(-20))
}

func TestPQRoundTrip(t *testing.T) {
	for _, l := range []float64{0.01, 0.5, 1, 48, 100, 203, 1000, 4000, 10000} {
		assert.InDelta(t, l, PQEOTF(PQInverseEOTF(l)), l*1e-9, "luminance %g", l)
	}
}

func TestHLGOETF(t *testing.T) {
	assert.Equal(t, 0.0, HLGOETF(0))
	assert.InDelta(t, 0.5, HLGOETF(1.0/12), 1e-12)
	assert.InDelta(t, 1, HLGOETF(1), 1e-8)
	assert.InDelta(t, 0.3872983346207417, HLGOETF(0.05), 1e-12)
	assert.Equal(t, -HLGOETF(0.3), HLGOETF(-0.3))
}

func TestHLGGamma(t *testing.T) {
	assert.InDelta(t, 1.2, DefaultHLGDisplay.Gamma(), 1e-12)
	assert.InDelta(t, 1.2+0.42*math.Log10(2), HLGDisplay{Peak: 2000}.Gamma(), 1e-12)
}

func TestHLGInverseEOTFPeakWhite(t *testing.T) {
	got := HLGInverseEOTF(RGB{R: 1000, G: 1000, B: 1000}, DefaultHLGDisplay)
	assert.InDelta(t, 1, got.R, 1e-8)
	assert.InDelta(t, 1, got.G, 1e-8)
	assert.InDelta(t, 1, got.B, 1e-8)

	assert.Equal(t, RGB{}, HLGInverseEOTF(RGB{}, DefaultHLGDisplay))
}

func TestEncodeFamiliesDiffer(t *testing.T) {
	m := Standard(adaptations["CAT02"], DefaultHLGDisplay)
	in := []RGB{RGB{R: 0.5, G: 0.5, B: 0.5}.Scale(100)}

	hlg, err := m.Encode(TransferHLG, in)
	require.NoError(t, err)
	pq, err := m.Encode(TransferST2084, in)
	require.NoError(t, err)

	assert.InDelta(t, 0.49712407492125127, hlg[0].G, 1e-9)
	assert.InDelta(t, 0.44028157342046104, pq[0].G, 1e-9)
	assert.NotEqual(t, hlg[0], pq[0])

	// Without the inverse OOTF the same input would encode to HLGOETF(50/1000).
	plain := HLGOETF(in[0].G / DefaultHLGDisplay.Peak)
	assert.Greater(t, math.Abs(hlg[0].G-plain), 0.1)
}

func TestEncodeMonotonic(t *testing.T) {
	m := Standard(adaptations["CAT02"], DefaultHLGDisplay)
	var ramp []RGB
	for v := -0.1; v <= 1.2; v += 0.01 {
		ramp = append(ramp, RGB{R: v, G: v, B: v}.Scale(100))
	}

	for _, transfer := range Transfers() {
		t.Run(transfer, func(t *testing.T) {
			out, err := m.Encode(transfer, ramp)
			require.NoError(t, err)
			require.Len(t, out, len(ramp))
			for i := 1; i < len(out); i++ {
				assert.Less(t, out[i-1].R, out[i].R, "step %d", i)
				assert.False(t, math.IsNaN(out[i].R))
			}
		})
	}
}

func TestEncodePQPerChannelOrder(t *testing.T) {
	m := Standard(adaptations["CAT02"], DefaultHLGDisplay)
	lo := RGB{R: 0.1, G: 0.4, B: -0.02}.Scale(100)
	hi := RGB{R: 0.2, G: 0.9, B: 0.3}.Scale(100)

	out, err := m.Encode(TransferST2084, []RGB{lo, hi})
	require.NoError(t, err)
	assert.Less(t, out[0].R, out[1].R)
	assert.Less(t, out[0].G, out[1].G)
	assert.Less(t, out[0].B, out[1].B)
}

func TestEncodeUnknownTransfer(t *testing.T) {
	m := Standard(adaptations["CAT02"], DefaultHLGDisplay)
	_, err := m.Encode("HLG-ish", []RGB{{}})
	require.ErrorIs(t, err, ErrUnknownTransfer)

	_, err = LookupTransfer("PQ")
	require.ErrorIs(t, err, ErrUnknownTransfer)
}

func TestEncodeInvalidHLGDisplay(t *testing.T) {
	m := Standard(adaptations["CAT02"], HLGDisplay{Peak: 0, Black: 0})
	_, err := m.Encode(TransferHLG, []RGB{{}})
	require.Error(t, err)
}
