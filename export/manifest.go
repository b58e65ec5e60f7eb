package export

import (
	"encoding/json"
	"io"

	"hdrchecker/canvas"
	"hdrchecker/colorimetry"
	"hdrchecker/pipeline"
)

// Manifest records what every artifact is supposed to contain, so readings
// from a measurement probe can be compared against the expected code values.
type Manifest struct {
	Chart         string          `json:"chart"`
	ColorSpace    string          `json:"color_space"`
	Adaptation    string          `json:"adaptation"`
	Transfer      string          `json:"transfer"`
	PeakLuminance float64         `json:"peak_luminance"`
	Mosaic        string          `json:"mosaic"`
	Patches       []ManifestPatch `json:"patches"`
}

type ManifestPatch struct {
	Ordinal    int             `json:"ordinal"`
	Name       string          `json:"name"`
	File       string          `json:"file"`
	Linear     colorimetry.RGB `json:"linear"`
	Encoded    colorimetry.RGB `json:"encoded"`
	Levels     canvas.Levels   `json:"levels"`
	OutOfGamut bool            `json:"out_of_gamut,omitempty"`
}

func NewManifest(res pipeline.Result, format string) Manifest {
	cfg := res.Config
	m := Manifest{
		Chart:         res.Chart.Name,
		ColorSpace:    res.Space.Name,
		Adaptation:    cfg.Adaptation,
		Transfer:      cfg.Transfer,
		PeakLuminance: cfg.PeakLuminance,
		Mosaic:        MosaicName(res.Space.Name, cfg.Transfer, format),
		Patches:       make([]ManifestPatch, len(res.Patches)),
	}
	for i, p := range res.Patches {
		m.Patches[i] = ManifestPatch{
			Ordinal:    p.Index + 1,
			Name:       p.Name,
			File:       SingleName(res.Space.Name, cfg.Transfer, p.Index+1, p.Name, format),
			Linear:     p.Linear,
			Encoded:    p.Encoded,
			Levels:     p.Levels(),
			OutOfGamut: p.OutOfGamut(),
		}
	}
	return m
}

func (m Manifest) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(m)
}
