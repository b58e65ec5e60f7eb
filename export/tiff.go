package export

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"image"
	"io"
)

const (
	tagImageWidth        = 256
	tagImageLength       = 257
	tagBitsPerSample     = 258
	tagCompression       = 259
	tagPhotometric       = 262
	tagStripOffsets      = 273
	tagSamplesPerPixel   = 277
	tagRowsPerStrip      = 278
	tagStripByteCounts   = 279
	tagXResolution       = 282
	tagYResolution       = 283
	tagPlanarConfig      = 284
	tagResolutionUnit    = 296
	tagSampleFormat      = 339
	typeShort            = 3
	typeLong             = 4
	typeRational         = 5
	ifdEntries           = 14
	headerSize           = 8
	ifdSize              = 2 + 12*ifdEntries + 4
	samplesPerPixel      = 3
	bytesPerSample       = 2
	photometricRGB       = 2
	planarChunky         = 1
	resolutionUnitInch   = 2
	sampleFormatUnsigned = 1
	compressionNone      = 1
	defaultResolutionDPI = 72
	bitsPerSample        = 8 * bytesPerSample
	extraShortsSize      = 2 * samplesPerPixel
	rationalSize         = 8
	maxStripBytes        = 1<<32 - 1
)

type ifdEntry struct {
	tag, typ uint16
	count    uint32
	value    uint32
}

// EncodeTIFF writes img as an uncompressed little-endian baseline TIFF with
// three 16-bit samples per pixel in a single strip. Alpha is dropped.
func EncodeTIFF(w io.Writer, img *image.RGBA64) error {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	stripBytes := uint64(width) * uint64(height) * samplesPerPixel * bytesPerSample
	if width <= 0 || height <= 0 || stripBytes > maxStripBytes {
		return fmt.Errorf("cannot encode %dx%d image as TIFF", width, height)
	}

	bitsOffset := uint32(headerSize + ifdSize)
	formatOffset := bitsOffset + extraShortsSize
	xResOffset := formatOffset + extraShortsSize
	yResOffset := xResOffset + rationalSize
	dataOffset := yResOffset + rationalSize

	entries := [ifdEntries]ifdEntry{
		{tagImageWidth, typeLong, 1, uint32(width)},
		{tagImageLength, typeLong, 1, uint32(height)},
		{tagBitsPerSample, typeShort, samplesPerPixel, bitsOffset},
		{tagCompression, typeShort, 1, compressionNone},
		{tagPhotometric, typeShort, 1, photometricRGB},
		{tagStripOffsets, typeLong, 1, dataOffset},
		{tagSamplesPerPixel, typeShort, 1, samplesPerPixel},
		{tagRowsPerStrip, typeLong, 1, uint32(height)},
		{tagStripByteCounts, typeLong, 1, uint32(stripBytes)},
		{tagXResolution, typeRational, 1, xResOffset},
		{tagYResolution, typeRational, 1, yResOffset},
		{tagPlanarConfig, typeShort, 1, planarChunky},
		{tagResolutionUnit, typeShort, 1, resolutionUnitInch},
		{tagSampleFormat, typeShort, samplesPerPixel, formatOffset},
	}

	bw := bufio.NewWriter(w)
	le := binary.LittleEndian
	var hdr []byte
	hdr = append(hdr, 'I', 'I')
	hdr = le.AppendUint16(hdr, 42)
	hdr = le.AppendUint32(hdr, headerSize)
	hdr = le.AppendUint16(hdr, ifdEntries)
	for _, e := range entries {
		hdr = le.AppendUint16(hdr, e.tag)
		hdr = le.AppendUint16(hdr, e.typ)
		hdr = le.AppendUint32(hdr, e.count)
		// SHORT values are left-justified, which in little-endian is the
		// same as writing the value as a LONG.
		hdr = le.AppendUint32(hdr, e.value)
	}
	hdr = le.AppendUint32(hdr, 0)
	for range samplesPerPixel {
		hdr = le.AppendUint16(hdr, bitsPerSample)
	}
	for range samplesPerPixel {
		hdr = le.AppendUint16(hdr, sampleFormatUnsigned)
	}
	for range 2 {
		hdr = le.AppendUint32(hdr, defaultResolutionDPI)
		hdr = le.AppendUint32(hdr, 1)
	}
	if _, err := bw.Write(hdr); err != nil {
		return fmt.Errorf("could not write TIFF header: %w", err)
	}

	row := make([]byte, width*samplesPerPixel*bytesPerSample)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		// RGBA64 stores big-endian RGBA quadruplets.
		src := img.Pix[img.PixOffset(b.Min.X, y):]
		for x := range width {
			s := src[x*8 : x*8+6]
			d := row[x*6 : x*6+6]
			d[0], d[1] = s[1], s[0]
			d[2], d[3] = s[3], s[2]
			d[4], d[5] = s[5], s[4]
		}
		if _, err := bw.Write(row); err != nil {
			return fmt.Errorf("could not write TIFF row %d: %w", y-b.Min.Y, err)
		}
	}
	return bw.Flush()
}
