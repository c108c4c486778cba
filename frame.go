package thicket

import (
	"image"
)

// Frame is an in-memory software framebuffer. It implements Target and
// keeps its pixels as opaque RGBA bytes, ready to upload with
// ebiten.Image.WritePixels.
type Frame struct {
	pix    []byte
	saved  []byte
	width  uint32
	height uint32
}

// NewFrame creates a black frame of the given size.
func NewFrame(width, height uint32) *Frame {
	f := &Frame{
		pix:    make([]byte, 4*int(width)*int(height)),
		width:  width,
		height: height,
	}
	f.Clear()
	return f
}

// FrameWidth returns the frame width in pixels.
func (f *Frame) FrameWidth() uint32 { return f.width }

// FrameHeight returns the frame height in pixels.
func (f *Frame) FrameHeight() uint32 { return f.height }

// Pix returns the RGBA bytes, 4 per pixel, row-major.
func (f *Frame) Pix() []byte { return f.pix }

func (f *Frame) offset(x, y uint32) int {
	return 4 * (int(x) + int(y)*int(f.width))
}

// DrawPixel writes an opaque pixel. Writes outside the frame are dropped
// and report false.
func (f *Frame) DrawPixel(x, y uint32, r, g, b uint8) bool {
	if x >= f.width || y >= f.height {
		return false
	}
	i := f.offset(x, y)
	f.pix[i] = r
	f.pix[i+1] = g
	f.pix[i+2] = b
	f.pix[i+3] = 0xff
	return true
}

// PixelAt returns the colour at (x, y). ok is false outside the frame.
func (f *Frame) PixelAt(x, y uint32) (p Pixel, ok bool) {
	if x >= f.width || y >= f.height {
		return Pixel{}, false
	}
	i := f.offset(x, y)
	return Pixel{R: f.pix[i], G: f.pix[i+1], B: f.pix[i+2]}, true
}

// Clear fills the frame with opaque black.
func (f *Frame) Clear() {
	for i := 0; i < len(f.pix); i += 4 {
		f.pix[i] = 0
		f.pix[i+1] = 0
		f.pix[i+2] = 0
		f.pix[i+3] = 0xff
	}
}

// Save snapshots the frame so Restore can bring it back, typically to
// redraw a static background under moving sprites.
func (f *Frame) Save() {
	if len(f.saved) != len(f.pix) {
		f.saved = make([]byte, len(f.pix))
	}
	copy(f.saved, f.pix)
}

// Restore copies the last snapshot back. Without a snapshot it does nothing.
func (f *Frame) Restore() {
	if len(f.saved) == len(f.pix) {
		copy(f.pix, f.saved)
	}
}

// RestoreRegion copies back only the snapshot rectangle at (x, y) of size
// width x height, clipped to the frame.
func (f *Frame) RestoreRegion(x, y, width, height uint32) {
	if len(f.saved) != len(f.pix) || x >= f.width || y >= f.height {
		return
	}
	right := min(uint64(x)+uint64(width), uint64(f.width))
	bottom := min(uint64(y)+uint64(height), uint64(f.height))
	for row := uint64(y); row < bottom; row++ {
		start := f.offset(x, uint32(row))
		end := f.offset(uint32(right), uint32(row))
		copy(f.pix[start:end], f.saved[start:end])
	}
}

// Image returns a copy of the frame as an *image.RGBA.
func (f *Frame) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, int(f.width), int(f.height)))
	copy(img.Pix, f.pix)
	return img
}
