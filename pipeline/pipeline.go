// Package pipeline turns chart reference data into encoded RGB patches.
package pipeline

import (
	"fmt"
	"log/slog"

	"hdrchecker/canvas"
	"hdrchecker/chart"
	"hdrchecker/colorimetry"
	"hdrchecker/layout"
)

// EncodedPatch is a chart patch carried through the whole pipeline.
type EncodedPatch struct {
	Index   int
	Name    string
	Linear  colorimetry.RGB // after adaptation and the XYZ to RGB matrix
	Encoded colorimetry.RGB // after brightness scaling and the OETF
}

var _ canvas.Patch = EncodedPatch{}

func (p EncodedPatch) Code() colorimetry.RGB { return p.Encoded }

// OutOfGamut reports whether the chart colour falls outside the target gamut.
func (p EncodedPatch) OutOfGamut() bool {
	return !p.Linear.InUnitRange()
}

func (p EncodedPatch) Levels() canvas.Levels {
	return canvas.QuantizeRGB(p.Encoded)
}

type Result struct {
	Config   Config
	Chart    chart.Chart
	Space    colorimetry.ColorSpace
	Patches  []EncodedPatch
	Geometry layout.Geometry
}

// Convert maps every chart patch into linear RGB of the target space. The
// adaptation from the chart white to the space white is derived once for the
// whole batch. Results are not clamped.
func Convert(m colorimetry.ColorMath, c chart.Chart, space colorimetry.ColorSpace) ([]colorimetry.RGB, error) {
	xyz := m.ToTristimulus(c.Values())
	adapted, err := m.Adapt(c.WhitePoint.XYZ(), space.WhitePoint.XYZ(), xyz)
	if err != nil {
		return nil, fmt.Errorf("could not adapt %q to %q: %w", c.Name, space.Name, err)
	}
	return m.ToRGB(space, adapted), nil
}

// EncodeBatch scales linear RGB so that 1.0 is peak cd/m2 and applies the
// transfer function. Scaling always happens before the OETF.
func EncodeBatch(m colorimetry.ColorMath, transfer string, peak float64, linear []colorimetry.RGB) ([]colorimetry.RGB, error) {
	scaled := make([]colorimetry.RGB, len(linear))
	for i, v := range linear {
		scaled[i] = v.Scale(peak)
	}

	encoded, err := m.Encode(transfer, scaled)
	if err != nil {
		return nil, fmt.Errorf("could not encode with %q: %w", transfer, err)
	}
	return encoded, nil
}

// Run validates cfg and renders every patch with the standard colour math.
func Run(cfg Config) (Result, error) {
	return RunWith(cfg, nil)
}

// RunWith is Run with a caller supplied ColorMath. A nil m selects
// colorimetry.Standard for the configured adaptation.
func RunWith(cfg Config, m colorimetry.ColorMath) (Result, error) {
	r, err := cfg.resolve()
	if err != nil {
		return Result{}, err
	}
	if m == nil {
		m = colorimetry.Standard(r.adaptation, cfg.HLG)
	}

	linear, err := Convert(m, r.chart, r.space)
	if err != nil {
		return Result{}, err
	}
	encoded, err := EncodeBatch(m, r.transfer, cfg.PeakLuminance, linear)
	if err != nil {
		return Result{}, err
	}
	if len(linear) != len(r.chart.Patches) || len(encoded) != len(r.chart.Patches) {
		return Result{}, fmt.Errorf("%w: color math returned %d linear and %d encoded values for %d patches",
			ErrInvalidConfig, len(linear), len(encoded), len(r.chart.Patches))
	}

	patches := make([]EncodedPatch, len(r.chart.Patches))
	for i, p := range r.chart.Patches {
		patches[i] = EncodedPatch{
			Index:   p.Index,
			Name:    p.Name,
			Linear:  linear[i],
			Encoded: encoded[i],
		}
		if patches[i].OutOfGamut() {
			slog.Warn("patch outside target gamut", "patch", p.Name, "space", r.space.Name,
				"r", linear[i].R, "g", linear[i].G, "b", linear[i].B)
		}
	}

	slog.Debug("encoded chart", "chart", r.chart.Name, "space", r.space.Name,
		"adaptation", r.adaptation.Name, "transfer", r.transfer, "patches", len(patches))

	return Result{
		Config:   cfg,
		Chart:    r.chart,
		Space:    r.space,
		Patches:  patches,
		Geometry: layout.Compute(cfg.Layout),
	}, nil
}
