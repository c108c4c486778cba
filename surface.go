package thicket

import (
	"github.com/pkg/errors"
)

// Surface owns a row-major pixel buffer. The buffer always holds exactly
// width*height pixels; every operation that changes the dimensions swaps in
// a new buffer together with them.
//
// The zero value is an empty 0x0 surface.
type Surface struct {
	width  uint32
	height uint32
	pix    []Pixel
}

// Width returns the surface width in pixels.
func (s *Surface) Width() uint32 { return s.width }

// Height returns the surface height in pixels.
func (s *Surface) Height() uint32 { return s.height }

// Len returns the buffer size in bytes, width*height*3.
func (s *Surface) Len() int { return len(s.pix) * pixelSize }

// Pixels returns the underlying buffer. It is replaced, not mutated, by
// Load, Mirror and Resize, so do not hold it across those calls.
func (s *Surface) Pixels() []Pixel { return s.pix }

// Offset returns start + x + y*width. No bounds checking is performed.
func (s *Surface) Offset(start, x, y uint32) uint32 {
	return start + x + y*s.width
}

// At returns the pixel at a buffer offset.
func (s *Surface) At(offset uint32) Pixel { return s.pix[offset] }

// Set overwrites the pixel at a buffer offset.
func (s *Surface) Set(offset uint32, p Pixel) { s.pix[offset] = p }

// Compare reports whether the pixels at offsets a and b differ in any
// channel.
func (s *Surface) Compare(a, b uint32) bool {
	p, q := s.pix[a], s.pix[b]
	return p.R != q.R || p.G != q.G || p.B != q.B
}

// Load replaces the surface contents with a copy of img and destroys img.
// An image whose data does not match its dimensions is rejected and the
// surface is left as it was.
func (s *Surface) Load(img *Image) error {
	if img == nil {
		return errors.Wrap(ErrFormat, "thicket: load nil image")
	}
	if len(img.data) != img.Len() {
		return errors.Wrapf(ErrFormat, "thicket: image data is %d bytes, %dx%d needs %d",
			len(img.data), img.width, img.height, img.Len())
	}
	pix, err := allocPixels(img.width, img.height)
	if err != nil {
		return err
	}
	for i := range pix {
		j := i * pixelSize
		pix[i] = Pixel{B: img.data[j], G: img.data[j+1], R: img.data[j+2]}
	}
	s.replace(pix, img.width, img.height)
	img.Destroy()
	return nil
}

// replace installs a new buffer and its dimensions in one step.
func (s *Surface) replace(pix []Pixel, width, height uint32) {
	s.pix = pix
	s.width = width
	s.height = height
}

// Mirror flips the surface across the given axis into a fresh buffer.
func (s *Surface) Mirror(axis MirrorAxis) {
	mirrored := make([]Pixel, len(s.pix))
	w, h := s.width, s.height
	for y := uint32(0); y < h; y++ {
		for x := uint32(0); x < w; x++ {
			var src uint32
			switch axis {
			case MirrorVertical:
				src = s.Offset(0, x, h-1-y)
			default:
				src = s.Offset(0, w-1-x, y)
			}
			mirrored[s.Offset(0, x, y)] = s.pix[src]
		}
	}
	s.pix = mirrored
}

// Resize resamples the surface to width x height using nearest-neighbour
// sampling: destination (x, y) takes source (x*w/width, y*h/height).
func (s *Surface) Resize(width, height uint32) error {
	if width == 0 || height == 0 {
		return errors.Wrapf(ErrInvalidSize, "thicket: resize to %dx%d", width, height)
	}
	scaled, err := allocPixels(width, height)
	if err != nil {
		return err
	}
	if len(s.pix) > 0 {
		for y := uint32(0); y < height; y++ {
			sy := uint32(uint64(y) * uint64(s.height) / uint64(height))
			for x := uint32(0); x < width; x++ {
				sx := uint32(uint64(x) * uint64(s.width) / uint64(width))
				scaled[x+y*width] = s.pix[s.Offset(0, sx, sy)]
			}
		}
	}
	Logger().Debug("resized surface", "from_width", s.width, "from_height", s.height,
		"width", width, "height", height)
	s.replace(scaled, width, height)
	return nil
}

// Clone returns a deep copy of the surface.
func (s *Surface) Clone() Surface {
	pix := make([]Pixel, len(s.pix))
	copy(pix, s.pix)
	return Surface{width: s.width, height: s.height, pix: pix}
}

// drawPixel forwards the pixel at offset to target at (x, y).
func (s *Surface) drawPixel(target Target, offset, x, y uint32) bool {
	p := s.pix[offset]
	return target.DrawPixel(x, y, p.R, p.G, p.B)
}
