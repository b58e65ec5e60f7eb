package export

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"sync"
)

const (
	FormatTIFF = "tiff"
	FormatPNG  = "png"
	FormatBMP  = "bmp"
)

// Encode writes a 16-bit canvas in one of the artifact formats.
func Encode(w io.Writer, img *image.RGBA64, format string) error {
	switch format {
	case FormatTIFF:
		return EncodeTIFF(w, img)
	case FormatPNG:
		// Opaque RGBA64 images are written as 16-bit truecolour without alpha.
		enc := png.Encoder{
			CompressionLevel: png.BestSpeed,
			BufferPool:       pngPool,
		}
		return enc.Encode(w, img)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// save writes through a temporary file in destDir so a failed encode never
// leaves a truncated artifact under the final name.
func save(destDir, destName string, write func(io.Writer) error) (err error) {
	outFile, err := os.CreateTemp(destDir, destName+".*")
	if err != nil {
		return fmt.Errorf("could not create temporary destination %q: %w", destName, err)
	}
	canRename := false
	defer func() {
		if defErr := outFile.Sync(); defErr != nil && err == nil {
			err = fmt.Errorf("could not flush temporary destination %q: %w", destName, defErr)
		}
		if defErr := outFile.Close(); defErr != nil && err == nil {
			err = fmt.Errorf("could not close temporary destination %q: %w", destName, defErr)
		}

		if canRename && err == nil {
			if defErr := os.Rename(outFile.Name(), filepath.Join(destDir, destName)); defErr != nil {
				err = fmt.Errorf("could not rename destination file %q: %w", destName, defErr)
			}
		}
		if err != nil {
			_ = os.Remove(outFile.Name())
		}
	}()

	if err = write(outFile); err != nil {
		return fmt.Errorf("could not encode destination %q: %w", destName, err)
	}

	canRename = true
	return nil
}

type pngEncoderBufferPool struct {
	pool sync.Pool
}

func (p *pngEncoderBufferPool) Get() *png.EncoderBuffer {
	return p.pool.Get().(*png.EncoderBuffer)
}

func (p *pngEncoderBufferPool) Put(buf *png.EncoderBuffer) {
	p.pool.Put(buf)
}

var pngPool = &pngEncoderBufferPool{
	pool: sync.Pool{
		New: func() any {
			return &png.EncoderBuffer{}
		},
	},
}
