package generate

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"hdrchecker/colorimetry"
	"hdrchecker/export"
	"hdrchecker/layout"
	"hdrchecker/parallel"
	"hdrchecker/pipeline"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	Dest          string  `help:"Destination folder for the rendered images" default:"output"`
	Chart         string  `help:"Reference chart, see 'list charts'" default:"ColorChecker 2005"`
	ColorSpace    string  `help:"Target color space, see 'list spaces'" default:"ITU-R BT.2020"`
	Adaptation    string  `help:"Chromatic adaptation transform, see 'list adaptations'" default:"CAT02"`
	Transfer      string  `help:"Transfer function family" enum:"HLG,ST2084" default:"HLG"`
	Peak          float64 `help:"Luminance in cd/m2 that chart white reflectance 1.0 maps to" default:"100"`
	HLGPeak       float64 `name:"hlg-peak" help:"Nominal peak luminance of the HLG display in cd/m2" default:"1000" group:"hlg"`
	HLGBlack      float64 `name:"hlg-black" help:"Black level of the HLG display in cd/m2" default:"0" group:"hlg"`
	Width         int     `help:"Canvas width" default:"1920" group:"layout"`
	Height        int     `help:"Canvas height" default:"1080" group:"layout"`
	PatchSize     float64 `help:"Mosaic patch size as a fraction of the canvas height" default:"0.2222222222222222" group:"layout"`
	Padding       float64 `help:"Mosaic padding as a fraction of the canvas height" default:"0.01" group:"layout"`
	Columns       int     `help:"Mosaic columns" default:"6" group:"layout"`
	Rows          int     `help:"Mosaic rows" default:"4" group:"layout"`
	SingleSize    float64 `help:"Single patch size as a fraction of the canvas width" default:"0.15" group:"layout"`
	Format        string  `help:"Output format of the 16-bit images" enum:"tiff,png" default:"tiff" group:"output"`
	Preview       bool    `help:"Also write a downscaled 8-bit preview of the mosaic" default:"false" group:"output"`
	PreviewWidth  int     `help:"Preview width in pixels" default:"960" group:"output"`
	PreviewFormat string  `help:"Preview format" enum:"png,bmp" default:"png" group:"output"`
	Manifest      bool    `help:"Also write a JSON manifest of the expected code values" default:"false" group:"output"`
	Palette       bool    `help:"Also write the patch colors as a RIFF palette" default:"false" group:"output"`

	Config pipeline.Config `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	dest, err := filepath.Abs(c.Dest)
	if err != nil {
		return fmt.Errorf("invalid destination path %q: %w", c.Dest, err)
	}
	c.Dest = dest

	if c.Preview && c.PreviewWidth <= 0 {
		return fmt.Errorf("invalid preview width: %d", c.PreviewWidth)
	}

	c.Config = pipeline.Config{
		PeakLuminance: c.Peak,
		Chart:         c.Chart,
		Adaptation:    c.Adaptation,
		ColorSpace:    c.ColorSpace,
		Transfer:      c.Transfer,
		HLG: colorimetry.HLGDisplay{
			Peak:  c.HLGPeak,
			Black: c.HLGBlack,
		},
		Layout: layout.Params{
			Width:      c.Width,
			Height:     c.Height,
			PatchSize:  c.PatchSize,
			Padding:    c.Padding,
			Columns:    c.Columns,
			Rows:       c.Rows,
			SingleSize: c.SingleSize,
		},
		BitDepth: 16,
	}

	return c.Config.Validate()
}

func (c *CLICmd) Run(worker parallel.WorkerFunc, wait parallel.WaitFunc) error {
	res, err := pipeline.Run(c.Config)
	if err != nil {
		return err
	}

	slog.Info("rendering", "chart", res.Chart.Name, "space", res.Space.Name, "adaptation", c.Adaptation,
		"transfer", c.Transfer, "peak", c.Peak, "dest", c.Dest)

	stats, err := export.Export(res, export.Options{
		Dest:          c.Dest,
		Format:        c.Format,
		Preview:       c.Preview,
		PreviewWidth:  c.PreviewWidth,
		PreviewFormat: c.PreviewFormat,
		Manifest:      c.Manifest,
		Palette:       c.Palette,
	}, worker, wait)
	if err != nil {
		return err
	}
	if stats.Errors > 0 {
		return fmt.Errorf("error writing %d images", stats.Errors)
	}
	return nil
}
