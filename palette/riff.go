// Package palette reads and writes Microsoft RIFF palette (.pal) files.
package palette

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image/color"
	"io"

	"golang.org/x/image/riff"
)

/*
typedef struct tagLOGPALETTE {
  WORD         palVersion;
  WORD         palNumEntries;
  PALETTEENTRY palPalEntry[1];
} LOGPALETTE;

typedef struct tagPALETTEENTRY {
  BYTE peRed;
  BYTE peGreen;
  BYTE peBlue;
  BYTE peFlags;
} PALETTEENTRY;
*/

const palVersion = 0x0300

var ErrNoPalette = errors.New("no palette data chunk")

var (
	riffType = riff.FourCC{'R', 'I', 'F', 'F'}
	palType  = riff.FourCC{'P', 'A', 'L', ' '}
	dataType = riff.FourCC{'d', 'a', 't', 'a'}
)

// Decode returns the colours of the first data chunk.
func Decode(r io.Reader) (color.Palette, error) {
	formType, rd, err := riff.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("could not open RIFF stream: %w", err)
	} else if formType != palType {
		return nil, fmt.Errorf("unsupported RIFF content type: %s", string(formType[:]))
	}

	for {
		id, _, data, err := rd.Next()
		if err == io.EOF {
			return nil, ErrNoPalette
		} else if err != nil {
			return nil, fmt.Errorf("could not read chunk: %w", err)
		}

		if id == dataType {
			return readPalette(data)
		}
	}
}

func readPalette(r io.Reader) (color.Palette, error) {
	var hdr [4]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, fmt.Errorf("could not read palette header: %w", err)
	}

	if ver := binary.LittleEndian.Uint16(hdr[:]); ver != palVersion {
		return nil, fmt.Errorf("unsupported palette version: %#04x", ver)
	}

	count := binary.LittleEndian.Uint16(hdr[2:])
	res := make(color.Palette, count)
	var entry [4]byte
	for i := range count {
		if _, err := io.ReadFull(r, entry[:]); err != nil {
			return res[:i], fmt.Errorf("could not read color %d/%d: %w", i, count, err)
		}

		res[i] = color.RGBA{R: entry[0], G: entry[1], B: entry[2], A: 0xff}
	}

	return res, nil
}

// Encode writes pal as a single data chunk. Colours are reduced to 8 bits
// per channel and alpha is dropped.
func Encode(w io.Writer, pal color.Palette) error {
	if len(pal) > 0xffff {
		return fmt.Errorf("too many colors for a RIFF palette: %d", len(pal))
	}

	var chunk bytes.Buffer
	chunk.Write(binary.LittleEndian.AppendUint16(nil, palVersion))
	chunk.Write(binary.LittleEndian.AppendUint16(nil, uint16(len(pal))))
	for _, col := range pal {
		c := color.RGBAModel.Convert(col).(color.RGBA)
		chunk.Write([]byte{c.R, c.G, c.B, 0x00})
	}

	var out bytes.Buffer
	out.Write(riffType[:])
	out.Write(binary.LittleEndian.AppendUint32(nil, uint32(4+8+chunk.Len())))
	out.Write(palType[:])
	out.Write(dataType[:])
	out.Write(binary.LittleEndian.AppendUint32(nil, uint32(chunk.Len())))
	out.Write(chunk.Bytes())

	return writeBytes(w, out.Bytes())
}

func writeBytes(w io.Writer, b []byte) error {
	n, err := w.Write(b)
	if err != nil {
		return err
	} else if n != len(b) {
		return fmt.Errorf("wrote only %d/%d bytes", n, len(b))
	}

	return nil
}
