package thicket

// Sprite is a positioned, optionally colour-keyed view of one frame of a
// Canvas. The frame cell is derived from the kind, frame count and image
// size on every call, so it stays correct across Load, Mirror and Resize.
type Sprite struct {
	Canvas
	kind        SpriteKind
	x, y        uint32
	transparent bool
}

// NewSprite returns an empty sprite with transparency enabled.
func NewSprite() *Sprite {
	return &Sprite{transparent: true}
}

// Load copies img into the sprite and lays it out as frames cells of the
// given kind. The frame count is ignored for SingleSprite.
func (s *Sprite) Load(img *Image, kind SpriteKind, frames uint32) error {
	if err := s.Surface.Load(img); err != nil {
		return err
	}
	if kind != SingleSprite {
		s.SetFrames(frames)
	}
	s.kind = kind
	return nil
}

// Kind returns the sprite layout.
func (s *Sprite) Kind() SpriteKind { return s.kind }

// SetKind changes the sprite layout.
func (s *Sprite) SetKind(kind SpriteKind) { s.kind = kind }

// SetTarget selects a frame; out-of-range frames are ignored.
func (s *Sprite) SetTarget(frame uint32) { s.SetFrame(frame) }

// Step advances to the next frame, wrapping after the last.
func (s *Sprite) Step() { s.AdvanceFrame() }

// region returns the active frame cell.
func (s *Sprite) region() region {
	return strip(&s.Canvas, s.kind == HorizontalStrip, s.kind == VerticalStrip)
}

// Width returns the width of one frame. Use Surface.Width for the whole
// image.
func (s *Sprite) Width() uint32 { return s.region().width }

// Height returns the height of one frame.
func (s *Sprite) Height() uint32 { return s.region().height }

// RegionStart returns the buffer offset of the current frame's top-left
// pixel.
func (s *Sprite) RegionStart() uint32 { return s.region().start }

// X returns the sprite's horizontal position on the target.
func (s *Sprite) X() uint32 { return s.x }

// Y returns the sprite's vertical position on the target.
func (s *Sprite) Y() uint32 { return s.y }

// SetX sets the horizontal position.
func (s *Sprite) SetX(x uint32) { s.x = x }

// SetY sets the vertical position.
func (s *Sprite) SetY(y uint32) { s.y = y }

// SetPosition sets both coordinates.
func (s *Sprite) SetPosition(x, y uint32) {
	s.x = x
	s.y = y
}

// Move shifts the sprite by (dx, dy). Positions are unsigned and wrap
// below zero.
func (s *Sprite) Move(dx, dy int32) {
	s.x = uint32(int64(s.x) + int64(dx))
	s.y = uint32(int64(s.y) + int64(dy))
}

// Transparent reports whether colour-keyed drawing is enabled.
func (s *Sprite) Transparent() bool { return s.transparent }

// SetTransparent enables or disables colour-keyed drawing.
func (s *Sprite) SetTransparent(enabled bool) { s.transparent = enabled }

// Box returns the sprite's collision box: its position and frame size.
func (s *Sprite) Box() Box {
	r := s.region()
	return Box{X: s.x, Y: s.y, Width: r.width, Height: r.height}
}

// Clone returns an independent copy of the sprite, pixels included.
func (s *Sprite) Clone() *Sprite {
	c := *s
	c.Surface = s.Surface.Clone()
	return &c
}

// Draw renders the current frame at the sprite's position. In transparent
// mode pixels matching the frame's top-left pixel are skipped.
func (s *Sprite) Draw(target Target) {
	r := s.region()
	if r.width == 0 || r.height == 0 {
		return
	}
	for y := uint32(0); y < r.height; y++ {
		for x := uint32(0); x < r.width; x++ {
			offset := s.Offset(r.start, x, y)
			if s.transparent && !s.Compare(r.start, offset) {
				continue
			}
			s.drawPixel(target, offset, x+s.x, y+s.y)
		}
	}
}

// DrawAt moves the sprite to (x, y) and draws it.
func (s *Sprite) DrawAt(target Target, x, y uint32) {
	s.SetPosition(x, y)
	s.Draw(target)
}
