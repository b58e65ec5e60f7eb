package pipeline

import (
	"errors"
	"fmt"

	"hdrchecker/chart"
	"hdrchecker/colorimetry"
	"hdrchecker/layout"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the complete static configuration of one rendering run.
type Config struct {
	PeakLuminance float64 // cd/m2 that linear 1.0 is mapped to
	Chart         string
	Adaptation    string
	ColorSpace    string
	Transfer      string
	HLG           colorimetry.HLGDisplay
	Layout        layout.Params
	BitDepth      int
}

func DefaultConfig() Config {
	return Config{
		PeakLuminance: 100,
		Chart:         chart.Default,
		Adaptation:    "CAT02",
		ColorSpace:    "ITU-R BT.2020",
		Transfer:      colorimetry.TransferHLG,
		HLG:           colorimetry.DefaultHLGDisplay,
		Layout:        layout.Default,
		BitDepth:      16,
	}
}

// resolved holds the descriptors a Config names.
type resolved struct {
	chart      chart.Chart
	space      colorimetry.ColorSpace
	adaptation colorimetry.Adaptation
	transfer   string
}

// Validate reports the first configuration error. A valid Config renders
// without further configuration errors.
func (c Config) Validate() error {
	_, err := c.resolve()
	return err
}

func (c Config) resolve() (resolved, error) {
	var r resolved
	var err error

	if r.chart, err = chart.Lookup(c.Chart); err != nil {
		return r, err
	}
	if err = r.chart.Validate(); err != nil {
		return r, err
	}
	if r.space, err = colorimetry.LookupColorSpace(c.ColorSpace); err != nil {
		return r, err
	}
	if err = r.space.Validate(); err != nil {
		return r, err
	}
	if r.adaptation, err = colorimetry.LookupAdaptation(c.Adaptation); err != nil {
		return r, err
	}
	if r.transfer, err = colorimetry.LookupTransfer(c.Transfer); err != nil {
		return r, err
	}
	if r.transfer == colorimetry.TransferHLG {
		if err = c.HLG.Validate(); err != nil {
			return r, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}

	if !(c.PeakLuminance > 0) {
		return r, fmt.Errorf("%w: peak luminance %g cd/m2", ErrInvalidConfig, c.PeakLuminance)
	}
	if c.BitDepth != 16 {
		return r, fmt.Errorf("%w: %d-bit output, only 16-bit is supported", ErrInvalidConfig, c.BitDepth)
	}
	if err = c.Layout.Validate(); err != nil {
		return r, err
	}
	if n, capacity := len(r.chart.Patches), c.Layout.Capacity(); n != capacity {
		return r, fmt.Errorf("%w: %q has %d patches but the %dx%d grid holds %d",
			ErrInvalidConfig, r.chart.Name, n, c.Layout.Columns, c.Layout.Rows, capacity)
	}
	return r, nil
}
