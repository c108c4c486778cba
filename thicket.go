package thicket

// Pixel is a 24-bit colour in memory order: blue, green, red. There is no
// alpha channel.
type Pixel struct {
	B, G, R uint8
}

// RGB builds a Pixel from red, green and blue components.
func RGB(r, g, b uint8) Pixel {
	return Pixel{B: b, G: g, R: r}
}

// pixelSize is the number of bytes a Pixel occupies in a decoded buffer.
const pixelSize = 3

// Target is the drawable surface sprites are rendered onto.
//
// DrawPixel reports whether the pixel was written; out-of-bounds writes are
// clipped and return false.
type Target interface {
	DrawPixel(x, y uint32, r, g, b uint8) bool
	FrameWidth() uint32
	FrameHeight() uint32
}

// Drawable is anything that can render itself onto a Target.
type Drawable interface {
	Draw(target Target)
}

// Resizable is implemented by surfaces that support nearest-neighbour
// resampling.
type Resizable interface {
	Resize(width, height uint32) error
}

// Mirrorable is implemented by surfaces that can be flipped along an axis.
type Mirrorable interface {
	Mirror(axis MirrorAxis)
}

// MirrorAxis selects the axis a surface is flipped across.
type MirrorAxis uint8

const (
	MirrorHorizontal MirrorAxis = iota // swap left and right
	MirrorVertical                     // swap top and bottom
)

// SpriteKind selects how a sprite's image is divided into frames.
type SpriteKind uint8

const (
	SingleSprite    SpriteKind = iota // the whole image is one frame
	HorizontalStrip                   // frames laid out left to right
	VerticalStrip                     // frames stacked top to bottom
)

// BackgroundKind selects how a background's image is divided into frames.
type BackgroundKind uint8

const (
	NormalBackground     BackgroundKind = iota // the whole image is one frame
	HorizontalBackground                       // frames laid out left to right
	VerticalBackground                         // frames stacked top to bottom
)

// String returns the kind's name.
func (k SpriteKind) String() string {
	switch k {
	case SingleSprite:
		return "single"
	case HorizontalStrip:
		return "horizontal"
	case VerticalStrip:
		return "vertical"
	default:
		return "unknown"
	}
}
