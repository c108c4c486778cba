package thicket

import "testing"

func drawnSet(r *recorder) map[[2]uint32]bool {
	set := make(map[[2]uint32]bool, len(r.calls))
	for _, c := range r.calls {
		set[[2]uint32{c.x, c.y}] = true
	}
	return set
}

func TestPrimitiveDrawLine(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 uint32
		want           [][2]uint32
	}{
		{"point", 3, 3, 3, 3, [][2]uint32{{3, 3}}},
		{"horizontal", 1, 2, 4, 2, [][2]uint32{{1, 2}, {2, 2}, {3, 2}, {4, 2}}},
		{"vertical up", 0, 3, 0, 1, [][2]uint32{{0, 3}, {0, 2}, {0, 1}}},
		{"diagonal", 0, 0, 3, 3, [][2]uint32{{0, 0}, {1, 1}, {2, 2}, {3, 3}}},
		{"reverse diagonal", 3, 0, 0, 3, [][2]uint32{{3, 0}, {2, 1}, {1, 2}, {0, 3}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Primitive
			p.SetColor(1, 2, 3)
			r := newRecorder(10, 10)
			p.DrawLine(r, tt.x1, tt.y1, tt.x2, tt.y2)
			if len(r.calls) != len(tt.want) {
				t.Fatalf("drew %d pixels, want %d: %+v", len(r.calls), len(tt.want), r.calls)
			}
			for i, w := range tt.want {
				c := r.calls[i]
				if c.x != w[0] || c.y != w[1] {
					t.Errorf("pixel %d = (%d,%d), want (%d,%d)", i, c.x, c.y, w[0], w[1])
				}
				if c.p != RGB(1, 2, 3) {
					t.Errorf("pixel %d colour = %+v", i, c.p)
				}
			}
		})
	}
}

func TestPrimitiveShallowLineIsContinuous(t *testing.T) {
	var p Primitive
	r := newRecorder(20, 20)
	p.DrawLine(r, 0, 0, 9, 3)
	set := drawnSet(r)
	for x := uint32(0); x <= 9; x++ {
		found := false
		for y := uint32(0); y <= 3; y++ {
			found = found || set[[2]uint32{x, y}]
		}
		if !found {
			t.Errorf("no pixel in column %d", x)
		}
	}
	if !set[[2]uint32{0, 0}] || !set[[2]uint32{9, 3}] {
		t.Error("endpoints missing")
	}
}

func TestPrimitiveRectangles(t *testing.T) {
	var p Primitive
	p.SetColor(255, 255, 255)
	if p.Color() != RGB(255, 255, 255) {
		t.Errorf("Color = %+v", p.Color())
	}

	outline := newRecorder(10, 10)
	p.DrawRectangle(outline, 1, 1, 4, 3)
	set := drawnSet(outline)
	if len(set) != 10 {
		t.Errorf("outline covers %d pixels, want 10", len(set))
	}
	if set[[2]uint32{2, 2}] {
		t.Error("outline filled the interior")
	}
	for _, corner := range [][2]uint32{{1, 1}, {4, 1}, {1, 3}, {4, 3}} {
		if !set[corner] {
			t.Errorf("corner %v missing", corner)
		}
	}
	// The outline covers the same pixels as a filled rectangle's edge.
	if set[[2]uint32{5, 1}] || set[[2]uint32{1, 4}] {
		t.Error("outline extends past width x height")
	}

	filled := NewFrame(10, 10)
	p.DrawFilledRectangle(filled, 8, 8, 5, 5)
	for y := uint32(0); y < 10; y++ {
		for x := uint32(0); x < 10; x++ {
			px, _ := filled.PixelAt(x, y)
			inside := x >= 8 && y >= 8
			if (px == RGB(255, 255, 255)) != inside {
				t.Errorf("(%d,%d) = %+v, inside=%v", x, y, px, inside)
			}
		}
	}

	empty := newRecorder(10, 10)
	p.DrawRectangle(empty, 0, 0, 0, 5)
	p.DrawFilledRectangle(empty, 0, 0, 5, 0)
	if len(empty.calls) != 0 {
		t.Errorf("zero-size rectangles drew %d pixels", len(empty.calls))
	}
}
