// Package export persists rendered charts as image artifacts.
package export

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"log/slog"
	"os"
	"sync/atomic"

	"hdrchecker/canvas"
	"hdrchecker/palette"
	"hdrchecker/parallel"
	"hdrchecker/pipeline"
)

type Options struct {
	Dest          string
	Format        string
	Preview       bool
	PreviewWidth  int
	PreviewFormat string
	Manifest      bool
	Palette       bool
}

type Stats struct {
	Written uint64
	Errors  uint64
}

// Export writes the mosaic, then hands one job per single-patch image to
// worker. Every job paints into its own canvas. The returned error joins all
// failures reported by wait.
func Export(res pipeline.Result, opts Options, worker parallel.WorkerFunc, wait parallel.WaitFunc) (Stats, error) {
	if err := os.MkdirAll(opts.Dest, 0o755); err != nil {
		_ = wait()
		return Stats{}, fmt.Errorf("unable to create destination folder %q: %w", opts.Dest, err)
	}

	space, transfer := res.Space.Name, res.Config.Transfer
	var written, errCount atomic.Uint64
	fail := func(err error) (Stats, error) {
		_ = wait()
		return Stats{Written: written.Load(), Errors: 1}, err
	}

	mosaicName := MosaicName(space, transfer, opts.Format)
	mosaic := canvas.Mosaic(res.Patches, res.Geometry).Quantize()
	if err := write(opts.Dest, mosaicName, mosaic, opts.Format); err != nil {
		return fail(err)
	}
	written.Add(1)

	if opts.Preview {
		name := PreviewName(space, transfer, opts.PreviewFormat)
		thumb := Thumbnail(mosaic, opts.PreviewWidth)
		slog.Info("writing preview", "file", name, "width", thumb.Bounds().Dx(), "height", thumb.Bounds().Dy())
		if err := save(opts.Dest, name, func(w io.Writer) error {
			return EncodePreview(w, thumb, opts.PreviewFormat)
		}); err != nil {
			return fail(err)
		}
		written.Add(1)
	}

	if opts.Manifest {
		name := ManifestName(space, transfer)
		slog.Info("writing manifest", "file", name)
		if err := save(opts.Dest, name, NewManifest(res, opts.Format).Encode); err != nil {
			return fail(err)
		}
		written.Add(1)
	}

	if opts.Palette {
		name := PaletteName(space, transfer)
		slog.Info("writing palette", "file", name, "colors", len(res.Patches))
		if err := save(opts.Dest, name, func(w io.Writer) error {
			return palette.Encode(w, Swatches(res.Patches))
		}); err != nil {
			return fail(err)
		}
		written.Add(1)
	}

	for _, p := range res.Patches {
		worker(func() error {
			name := SingleName(space, transfer, p.Index+1, p.Name, opts.Format)
			img := canvas.Single(p, res.Geometry).Quantize()
			if err := write(opts.Dest, name, img, opts.Format); err != nil {
				errCount.Add(1)
				return err
			}
			written.Add(1)
			return nil
		})
	}

	err := wait()
	stats := Stats{Written: written.Load(), Errors: errCount.Load()}
	slog.Info("stats", "written", stats.Written, "errors", stats.Errors, "total", stats.Written+stats.Errors)
	return stats, err
}

// Swatches are the quantized patch colours in chart order.
func Swatches(patches []pipeline.EncodedPatch) color.Palette {
	pal := make(color.Palette, len(patches))
	for i, p := range patches {
		l := p.Levels()
		pal[i] = color.RGBA64{R: l.R, G: l.G, B: l.B, A: canvas.MaxLevel}
	}
	return pal
}

func write(dest, name string, img *image.RGBA64, format string) error {
	logger := slog.Default().With("file", name)
	logger.Debug("writing image", "format", format, "width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	if err := save(dest, name, func(w io.Writer) error {
		return Encode(w, img, format)
	}); err != nil {
		logger.Error("could not save image", "dir", dest, "error", err)
		return err
	}
	return nil
}
