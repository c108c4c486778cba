package thicket

// glyphCount is the number of cells in a bitmap font strip, one per byte
// value.
const glyphCount = 256

// Text draws strings with a bitmap font: a horizontal sprite strip of 256
// equal cells where byte value c is frame c+1.
type Text struct {
	font *Sprite
	x, y uint32
}

// LoadFont makes font the glyph source, laying it out as a 256-frame
// horizontal strip.
func (t *Text) LoadFont(font *Sprite) {
	font.SetFrames(glyphCount)
	font.SetKind(HorizontalStrip)
	t.font = font
}

// Font returns the glyph sprite, or nil before LoadFont.
func (t *Text) Font() *Sprite { return t.font }

// SetPosition sets the pen origin for the next DrawText call.
func (t *Text) SetPosition(x, y uint32) {
	t.x = x
	t.y = y
}

// DrawCharacter draws one glyph at the pen origin.
func (t *Text) DrawCharacter(target Target, c byte) {
	if t.font == nil {
		return
	}
	t.font.SetPosition(t.x, t.y)
	t.drawGlyph(target, c)
}

func (t *Text) drawGlyph(target Target, c byte) {
	t.font.SetTarget(uint32(c) + 1)
	t.font.Draw(target)
}

// DrawText draws s byte by byte starting at the pen origin, advancing one
// glyph width per byte. The pen origin is unchanged afterwards.
func (t *Text) DrawText(target Target, s string) {
	if t.font == nil {
		return
	}
	advance := int32(t.font.Width())
	t.font.SetPosition(t.x, t.y)
	for i := 0; i < len(s); i++ {
		t.drawGlyph(target, s[i])
		t.font.Move(advance, 0)
	}
	t.font.SetPosition(t.x, t.y)
}

// DrawTextAt moves the pen to (x, y) and draws s.
func (t *Text) DrawTextAt(target Target, x, y uint32, s string) {
	t.SetPosition(x, y)
	t.DrawText(target, s)
}
