package thicket

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

const pcxHeaderSize = 128

// pcxEncodingRLE is the only encoding flag PCX defines.
const pcxEncodingRLE = 1

// pcxHeader is the fixed 128-byte PCX header.
type pcxHeader struct {
	Vendor       uint8
	Version      uint8
	Encoding     uint8
	BitsPerPixel uint8

	MinX, MinY uint16
	MaxX, MaxY uint16

	HorizontalDPI uint16
	VerticalDPI   uint16

	Palette  [48]byte
	Reserved uint8

	Planes       uint8
	BytesPerLine uint16 // per plane
	PaletteType  uint16

	ScreenWidth  uint16
	ScreenHeight uint16

	Filler [54]byte
}

// DecodePCX decodes a run-length encoded 24-bit planar PCX image from s:
// bits per pixel times planes must be 24 and the encoding flag must be 1.
// The stream is not closed.
func DecodePCX(s Stream) (*Image, error) {
	if s.Len() < pcxHeaderSize {
		return nil, errors.Wrapf(ErrIO, "pcx: stream too short for header (%d bytes)", s.Len())
	}
	var h pcxHeader
	if err := binary.Read(s, binary.LittleEndian, &h); err != nil {
		return nil, errors.Wrapf(ErrIO, "pcx: read header: %v", err)
	}
	if int(h.BitsPerPixel)*int(h.Planes) != 24 || h.Encoding != pcxEncodingRLE {
		return nil, errors.Wrapf(ErrFormat, "pcx: %d bits x %d planes, encoding %d not supported",
			h.BitsPerPixel, h.Planes, h.Encoding)
	}
	if h.MaxX < h.MinX || h.MaxY < h.MinY {
		return nil, errors.Wrapf(ErrFormat, "pcx: inverted bounds (%d,%d)-(%d,%d)", h.MinX, h.MinY, h.MaxX, h.MaxY)
	}

	img := &Image{
		width:  uint32(h.MaxX) - uint32(h.MinX) + 1,
		height: uint32(h.MaxY) - uint32(h.MinY) + 1,
	}
	planeLen := uint64(h.BytesPerLine)
	line := uint64(h.Planes) * planeLen
	// The last sample read for a row sits two planes past the pixel.
	if planeLen < uint64(img.width) || line < 3*planeLen {
		return nil, errors.Wrapf(ErrFormat, "pcx: %d bytes per line x %d planes cannot hold %d pixels",
			h.BytesPerLine, h.Planes, img.width)
	}

	compressed, err := allocBytes(uint64(s.Len() - pcxHeaderSize))
	if err != nil {
		return nil, errors.WithMessage(err, "pcx")
	}
	if err := readFull(s, compressed, "pcx data"); err != nil {
		return nil, err
	}
	planar, err := allocBytes(line * uint64(img.height))
	if err != nil {
		return nil, errors.WithMessage(err, "pcx")
	}
	if err := decodePCXRLE(compressed, planar); err != nil {
		return nil, err
	}

	out, err := allocBytes(uint64(img.Len()))
	if err != nil {
		return nil, errors.WithMessage(err, "pcx")
	}
	interleavePlanes(planar, out, img.width, img.height, planeLen, line)

	img.data = out
	Logger().Debug("decoded image", "format", "pcx",
		"width", img.width, "height", img.height, "planes", h.Planes)
	return img, nil
}

// decodePCXRLE expands PCX runs from src until dst is full. A byte of 192
// or more repeats the following byte (byte-192) times; anything lower is a
// literal.
func decodePCXRLE(src, dst []byte) error {
	index, pos := 0, 0
	for pos < len(dst) {
		if index >= len(src) {
			return errors.Wrapf(ErrIO, "pcx: data ends after %d of %d bytes", pos, len(dst))
		}
		b := src[index]
		if b < 192 {
			dst[pos] = b
			pos++
			index++
			continue
		}
		if index+1 >= len(src) {
			return errors.Wrapf(ErrIO, "pcx: run at %d truncated", index)
		}
		value := src[index+1]
		for repeat := int(b) - 192; repeat > 0 && pos < len(dst); repeat-- {
			dst[pos] = value
			pos++
		}
		index += 2
	}
	return nil
}

// interleavePlanes turns scanlines of separate red, green and blue planes
// into blue, green, red triples.
func interleavePlanes(planar, out []byte, width, height uint32, planeLen, line uint64) {
	row := uint64(width) * pixelSize
	for y := uint64(0); y < uint64(height); y++ {
		for x := uint64(0); x < uint64(width); x++ {
			index := x*pixelSize + y*row
			position := x + y*line
			out[index] = planar[position+2*planeLen]
			out[index+1] = planar[position+planeLen]
			out[index+2] = planar[position]
		}
	}
}
