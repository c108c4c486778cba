package thicket

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Image returns the surface as an opaque *image.RGBA.
func (s *Surface) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, int(s.width), int(s.height)))
	for i, p := range s.pix {
		j := 4 * i
		img.Pix[j] = p.R
		img.Pix[j+1] = p.G
		img.Pix[j+2] = p.B
		img.Pix[j+3] = 0xff
	}
	return img
}

// FromImage converts any image.Image into an Image ready for Surface.Load.
// Alpha is discarded: colours are taken as stored, so premultiplied
// sources darken where they are translucent.
func FromImage(src image.Image) *Image {
	b := src.Bounds()
	img := &Image{width: uint32(b.Dx()), height: uint32(b.Dy())}
	img.data = make([]byte, img.Len())
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.RGBAModel.Convert(src.At(x, y)).(color.RGBA)
			img.data[i] = c.B
			img.data[i+1] = c.G
			img.data[i+2] = c.R
			i += pixelSize
		}
	}
	return img
}

// Encode writes s to w as "png", "bmp" or "tiff". Unknown formats are
// ErrFormat and write failures are ErrIO.
func Encode(w io.Writer, s *Surface, format string) error {
	img := s.Image()
	switch strings.ToLower(format) {
	case "png":
		if err := encodePNG(w, img); err != nil {
			return errors.Wrapf(ErrIO, "thicket: encode png: %v", err)
		}
	case "bmp":
		if err := bmp.Encode(w, img); err != nil {
			return errors.Wrapf(ErrIO, "thicket: encode bmp: %v", err)
		}
	case "tiff", "tif":
		if err := tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate}); err != nil {
			return errors.Wrapf(ErrIO, "thicket: encode tiff: %v", err)
		}
	default:
		return errors.Wrapf(ErrFormat, "thicket: unsupported output format %q", format)
	}
	return nil
}

// SaveFile encodes s to path, choosing the format from the extension.
func SaveFile(path string, s *Surface) (err error) {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(ErrIO, "thicket: create %s: %v", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(ErrIO, "thicket: close %s: %v", path, cerr)
		}
	}()
	return Encode(f, s, format)
}

func encodePNG(w io.Writer, img image.Image) error {
	enc := png.Encoder{
		CompressionLevel: png.BestCompression,
		BufferPool:       pngPool,
	}
	return enc.Encode(w, img)
}

// writePNG encodes img to a PNG file at path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(ErrIO, "thicket: create %s: %v", path, err)
	}
	if err := encodePNG(f, img); err != nil {
		f.Close()
		return errors.Wrapf(ErrIO, "thicket: encode %s: %v", path, err)
	}
	return f.Close()
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
