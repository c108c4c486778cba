package thicket

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Image is a decoded picture: width*height pixels stored as blue, green,
// red bytes, row-major from the top-left. An Image is transient; it exists
// to feed one Surface.Load, which destroys it.
type Image struct {
	width  uint32
	height uint32
	data   []byte
}

// Width returns the image width in pixels.
func (img *Image) Width() uint32 { return img.width }

// Height returns the image height in pixels.
func (img *Image) Height() uint32 { return img.height }

// Len returns the expected data length, width*height*3.
func (img *Image) Len() int {
	return int(uint64(img.width) * uint64(img.height) * pixelSize)
}

// Data returns the raw pixel bytes. The slice is owned by the image.
func (img *Image) Data() []byte { return img.data }

// Destroy releases the pixel data and zeroes the dimensions.
func (img *Image) Destroy() {
	img.width = 0
	img.height = 0
	img.data = nil
}

// decodeFunc is the signature shared by DecodeTGA and DecodePCX.
type decodeFunc func(Stream) (*Image, error)

// decoderFor picks a decoder from a file extension.
func decoderFor(name string) (decodeFunc, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".tga":
		return DecodeTGA, nil
	case ".pcx":
		return DecodePCX, nil
	default:
		return nil, errors.Wrapf(ErrFormat, "%s: unknown extension", name)
	}
}

// decodeAndClose runs decode over s and always closes s.
func decodeAndClose(s Stream, name string, decode decodeFunc) (*Image, error) {
	img, err := decode(s)
	if cerr := s.Close(); cerr != nil && err == nil {
		err = errors.Wrapf(ErrIO, "close %s: %v", name, cerr)
	}
	if err != nil {
		return nil, errors.WithMessage(err, name)
	}
	return img, nil
}

// Load opens and decodes the named file, choosing the decoder from its
// extension (.tga or .pcx).
func Load(name string) (*Image, error) {
	decode, err := decoderFor(name)
	if err != nil {
		return nil, err
	}
	s, err := Open(name)
	if err != nil {
		return nil, err
	}
	return decodeAndClose(s, name, decode)
}

// LoadFS is Load reading from fsys.
func LoadFS(fsys fs.FS, name string) (*Image, error) {
	decode, err := decoderFor(name)
	if err != nil {
		return nil, err
	}
	s, err := OpenFS(fsys, name)
	if err != nil {
		return nil, err
	}
	return decodeAndClose(s, name, decode)
}

// LoadTGA opens and decodes a TGA file.
func LoadTGA(name string) (*Image, error) {
	s, err := Open(name)
	if err != nil {
		return nil, err
	}
	return decodeAndClose(s, name, DecodeTGA)
}

// LoadPCX opens and decodes a PCX file.
func LoadPCX(name string) (*Image, error) {
	s, err := Open(name)
	if err != nil {
		return nil, err
	}
	return decodeAndClose(s, name, DecodePCX)
}
