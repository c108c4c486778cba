package thicket

import "testing"

// fontSprite builds a 256-glyph strip of 2x2 cells. Each glyph's top-left
// is the black colour key; its other pixels are RGB(c, 1, 1).
func fontSprite(t *testing.T) *Sprite {
	t.Helper()
	img := testImage(2*glyphCount, 2, func(x, y uint32) Pixel {
		if x%2 == 0 && y == 0 {
			return Pixel{}
		}
		return RGB(uint8(x/2), 1, 1)
	})
	s := NewSprite()
	if err := s.Load(img, SingleSprite, 1); err != nil {
		t.Fatal(err)
	}
	return s
}

func TestTextLoadFont(t *testing.T) {
	var txt Text
	font := fontSprite(t)
	txt.LoadFont(font)
	if txt.Font() != font {
		t.Fatal("Font does not return the loaded sprite")
	}
	if font.Frames() != glyphCount || font.Kind() != HorizontalStrip {
		t.Errorf("font frames=%d kind=%v, want 256 horizontal", font.Frames(), font.Kind())
	}
	if font.Width() != 2 || font.Height() != 2 {
		t.Errorf("glyph size = %dx%d, want 2x2", font.Width(), font.Height())
	}
}

func TestTextDrawText(t *testing.T) {
	var txt Text
	txt.LoadFont(fontSprite(t))
	r := newRecorder(100, 100)
	txt.DrawTextAt(r, 10, 5, "AB")

	if len(r.calls) != 6 {
		t.Fatalf("drew %d pixels, want 6", len(r.calls))
	}
	tests := []struct {
		x, y uint32
		want Pixel
	}{
		{11, 5, RGB('A', 1, 1)},
		{10, 6, RGB('A', 1, 1)},
		{13, 6, RGB('B', 1, 1)},
	}
	for _, tt := range tests {
		if got, ok := r.at(tt.x, tt.y); !ok || got != tt.want {
			t.Errorf("(%d,%d) = %+v (drawn %v), want %+v", tt.x, tt.y, got, ok, tt.want)
		}
	}
	if _, ok := r.at(12, 5); ok {
		t.Error("colour key drawn at (12,5)")
	}
	if f := txt.Font(); f.X() != 10 || f.Y() != 5 {
		t.Errorf("font left at (%d,%d), want pen origin (10,5)", f.X(), f.Y())
	}
}

func TestTextDrawCharacter(t *testing.T) {
	var txt Text
	txt.LoadFont(fontSprite(t))
	txt.SetPosition(0, 0)
	r := newRecorder(10, 10)
	txt.DrawCharacter(r, 0xff)
	if got, ok := r.at(1, 1); !ok || got != RGB(0xff, 1, 1) {
		t.Errorf("(1,1) = %+v (drawn %v)", got, ok)
	}
	if txt.Font().Frame() != 256 {
		t.Errorf("frame = %d, want 256", txt.Font().Frame())
	}
}

func TestTextWithoutFont(t *testing.T) {
	var txt Text
	r := newRecorder(10, 10)
	txt.DrawText(r, "hi")
	txt.DrawCharacter(r, 'x')
	if len(r.calls) != 0 {
		t.Errorf("drew %d pixels without a font", len(r.calls))
	}
}
