package thicket

// Background draws one frame of a Canvas at the target origin, clipped to
// the target's size.
type Background struct {
	Canvas
	kind BackgroundKind
}

// NewBackground returns an empty background.
func NewBackground() *Background {
	return &Background{}
}

// Load copies img into the background and lays it out as frames cells of
// the given kind. The frame count is ignored for NormalBackground.
func (b *Background) Load(img *Image, kind BackgroundKind, frames uint32) error {
	if err := b.Surface.Load(img); err != nil {
		return err
	}
	b.SetSetting(kind, frames)
	return nil
}

// Kind returns the background layout.
func (b *Background) Kind() BackgroundKind { return b.kind }

// SetKind changes the background layout.
func (b *Background) SetKind(kind BackgroundKind) { b.kind = kind }

// SetSetting sets the layout and, for strips, the frame count.
func (b *Background) SetSetting(kind BackgroundKind, frames uint32) {
	if kind != NormalBackground {
		b.SetFrames(frames)
	}
	b.kind = kind
}

// SetTarget selects a frame; out-of-range frames are ignored.
func (b *Background) SetTarget(frame uint32) { b.SetFrame(frame) }

// Step advances to the next frame, wrapping after the last.
func (b *Background) Step() { b.AdvanceFrame() }

func (b *Background) region() region {
	return strip(&b.Canvas, b.kind == HorizontalBackground, b.kind == VerticalBackground)
}

// Width returns the width of one frame.
func (b *Background) Width() uint32 { return b.region().width }

// Height returns the height of one frame.
func (b *Background) Height() uint32 { return b.region().height }

// MaximumSize returns the drawn size on target: the frame size clipped to
// the target's dimensions.
func (b *Background) MaximumSize(target Target) (width, height uint32) {
	r := b.region()
	return min(r.width, target.FrameWidth()), min(r.height, target.FrameHeight())
}

// Draw renders the current frame with its top-left corner at the target
// origin.
func (b *Background) Draw(target Target) {
	r := b.region()
	maxW, maxH := b.MaximumSize(target)
	for y := uint32(0); y < maxH; y++ {
		for x := uint32(0); x < maxW; x++ {
			b.drawPixel(target, b.Offset(r.start, x, y), x, y)
		}
	}
}
