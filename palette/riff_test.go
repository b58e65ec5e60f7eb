package palette

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	pal := color.Palette{
		color.RGBA{R: 1, G: 2, B: 3, A: 0xff},
		color.RGBA64{R: 0xffff, G: 0x8000, B: 0, A: 0xffff},
		color.Gray{Y: 0x40},
	}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, pal))
	// RIFF size + 'PAL ' + data chunk header + version/count + 3 entries.
	assert.Equal(t, 8+4+8+4+3*4, buf.Len())
	assert.Equal(t, []byte{0x00, 0x03}, buf.Bytes()[20:22])

	got, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, color.Palette{
		color.RGBA{R: 1, G: 2, B: 3, A: 0xff},
		color.RGBA{R: 0xff, G: 0x80, B: 0, A: 0xff},
		color.RGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xff},
	}, got)
}

func TestDecodeRejectsOtherForms(t *testing.T) {
	data := []byte("RIFF\x04\x00\x00\x00WAVE")
	_, err := Decode(bytes.NewReader(data))
	assert.Error(t, err)
}

func TestDecodeWithoutData(t *testing.T) {
	data := []byte("RIFF\x04\x00\x00\x00PAL ")
	_, err := Decode(bytes.NewReader(data))
	assert.ErrorIs(t, err, ErrNoPalette)
}
