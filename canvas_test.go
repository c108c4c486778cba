package thicket

import "testing"

func TestCanvasDefaults(t *testing.T) {
	var c Canvas
	if c.Frames() != 1 || c.Frame() != 1 {
		t.Errorf("zero canvas: frames=%d frame=%d, want 1, 1", c.Frames(), c.Frame())
	}
}

func TestCanvasSetFrames(t *testing.T) {
	var c Canvas
	c.SetFrames(1)
	c.SetFrames(0)
	if c.Frames() != 1 {
		t.Errorf("frames = %d after ignored counts, want 1", c.Frames())
	}
	c.SetFrames(4)
	if c.Frames() != 4 {
		t.Errorf("frames = %d, want 4", c.Frames())
	}
}

func TestCanvasSetFrame(t *testing.T) {
	var c Canvas
	c.SetFrames(4)
	tests := []struct {
		target uint32
		want   uint32
	}{
		{3, 3},
		{0, 3},
		{5, 3},
		{4, 4},
		{1, 1},
	}
	for _, tt := range tests {
		c.SetFrame(tt.target)
		if c.Frame() != tt.want {
			t.Errorf("SetFrame(%d): frame = %d, want %d", tt.target, c.Frame(), tt.want)
		}
	}
}

func TestCanvasAdvanceFrameWraps(t *testing.T) {
	var c Canvas
	c.SetFrames(3)
	var got []uint32
	for range 7 {
		c.AdvanceFrame()
		got = append(got, c.Frame())
	}
	want := []uint32{2, 3, 1, 2, 3, 1, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("frames = %v, want %v", got, want)
		}
	}
}

func TestCanvasActiveFrameAfterShrink(t *testing.T) {
	var c Canvas
	c.SetFrames(8)
	c.SetFrame(7)
	c.SetFrames(2)
	if c.activeFrame() != 2 {
		t.Errorf("activeFrame = %d, want 2", c.activeFrame())
	}
}
