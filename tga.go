package thicket

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// TGA image types understood by DecodeTGA.
const (
	tgaTypeUncompressed = 2  // uncompressed true-colour
	tgaTypeRLE          = 10 // run-length encoded true-colour
)

const tgaHeaderSize = 18

// tgaHeader is the fixed TGA header: 3 bytes of identification, 5 bytes of
// colour-map specification and 10 bytes of image specification.
type tgaHeader struct {
	IDLength     uint8
	ColorMapType uint8
	ImageType    uint8

	MapIndex  uint16
	MapLength uint16
	MapDepth  uint8

	OriginX    uint16
	OriginY    uint16
	Width      uint16
	Height     uint16
	Depth      uint8
	Descriptor uint8 // alpha bits (low 4) and origin flags; ignored
}

// DecodeTGA decodes an uncompressed (type 2) or run-length (type 10) 24-bit
// TGA image from s. Rows are kept in stream order; the descriptor's origin
// flag is not applied. The stream is not closed.
func DecodeTGA(s Stream) (*Image, error) {
	if s.Len() < tgaHeaderSize {
		return nil, errors.Wrapf(ErrIO, "tga: stream too short for header (%d bytes)", s.Len())
	}
	var h tgaHeader
	if err := binary.Read(s, binary.LittleEndian, &h); err != nil {
		return nil, errors.Wrapf(ErrIO, "tga: read header: %v", err)
	}
	if h.ColorMapType != 0 {
		return nil, errors.Wrapf(ErrFormat, "tga: colour map type %d not supported", h.ColorMapType)
	}
	if h.Depth != 24 {
		return nil, errors.Wrapf(ErrFormat, "tga: colour depth %d not supported, want 24", h.Depth)
	}
	if h.ImageType != tgaTypeUncompressed && h.ImageType != tgaTypeRLE {
		return nil, errors.Wrapf(ErrFormat, "tga: image type %d not supported", h.ImageType)
	}
	if h.IDLength > 0 {
		if _, err := io.CopyN(io.Discard, s, int64(h.IDLength)); err != nil {
			return nil, errors.Wrapf(ErrIO, "tga: skip image id: %v", err)
		}
	}

	img := &Image{width: uint32(h.Width), height: uint32(h.Height)}
	out, err := allocBytes(uint64(img.Len()))
	if err != nil {
		return nil, errors.WithMessage(err, "tga")
	}

	switch h.ImageType {
	case tgaTypeUncompressed:
		if err := readFull(s, out, "tga pixels"); err != nil {
			return nil, err
		}
	case tgaTypeRLE:
		remaining := s.Len() - tgaHeaderSize - int64(h.IDLength)
		if remaining < 0 {
			return nil, errors.Wrap(ErrIO, "tga: stream ends inside image id")
		}
		compressed, err := allocBytes(uint64(remaining))
		if err != nil {
			return nil, errors.WithMessage(err, "tga")
		}
		if err := readFull(s, compressed, "tga packets"); err != nil {
			return nil, err
		}
		if err := decodeTGARLE(compressed, out); err != nil {
			return nil, err
		}
	}

	img.data = out
	Logger().Debug("decoded image", "format", "tga", "type", h.ImageType,
		"width", img.width, "height", img.height)
	return img, nil
}

// decodeTGARLE expands TGA packets from src until dst is full. A header
// below 128 starts a raw packet of header+1 pixels; 128 and above repeats
// the next pixel header-127 times.
func decodeTGARLE(src, dst []byte) error {
	index, pos := 0, 0
	for index < len(dst) {
		if pos >= len(src) {
			return errors.Wrapf(ErrIO, "tga: packets end after %d of %d bytes", index, len(dst))
		}
		header := src[pos]
		pos++

		if header < 128 {
			n := (int(header) + 1) * pixelSize
			if pos+n > len(src) {
				return errors.Wrapf(ErrIO, "tga: raw packet at %d truncated", pos-1)
			}
			if index+n > len(dst) {
				return errors.Wrapf(ErrFormat, "tga: raw packet at %d overruns image", pos-1)
			}
			copy(dst[index:], src[pos:pos+n])
			index += n
			pos += n
			continue
		}

		count := int(header) - 127
		if pos+pixelSize > len(src) {
			return errors.Wrapf(ErrIO, "tga: run packet at %d truncated", pos-1)
		}
		if index+count*pixelSize > len(dst) {
			return errors.Wrapf(ErrFormat, "tga: run packet at %d overruns image", pos-1)
		}
		px := src[pos : pos+pixelSize]
		for ; count > 0; count-- {
			copy(dst[index:index+pixelSize], px)
			index += pixelSize
		}
		pos += pixelSize
	}
	if pos < len(src) {
		Logger().Debug("tga: trailing data ignored", "bytes", len(src)-pos)
	}
	return nil
}
