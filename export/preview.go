package export

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/nfnt/resize"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// Thumbnail scales img to width pixels, keeping the aspect ratio, and reduces
// it to 8 bits per channel. Code values are shown as is; the thumbnail is for
// checking the layout, not the colours.
func Thumbnail(img image.Image, width int) *image.RGBA {
	src := img
	if width > 0 && width < img.Bounds().Dx() {
		src = resize.Resize(uint(width), 0, img, resize.Lanczos3)
	}

	sb := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, sb.Dx(), sb.Dy()))
	draw.Draw(dst, dst.Bounds(), src, sb.Min, draw.Src)
	return dst
}

func EncodePreview(w io.Writer, img image.Image, format string) error {
	switch format {
	case FormatPNG:
		enc := png.Encoder{
			CompressionLevel: png.BestCompression,
			BufferPool:       pngPool,
		}
		return enc.Encode(w, img)
	case FormatBMP:
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("unsupported preview format: %s", format)
	}
}
