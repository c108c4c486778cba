package thicket

// Canvas is a Surface with animation frame bookkeeping. Frames are 1-based.
// The zero value has one frame and frame 1 selected.
type Canvas struct {
	Surface
	frames uint32
	frame  uint32
}

// Frames returns the number of frames the image is divided into.
func (c *Canvas) Frames() uint32 {
	if c.frames == 0 {
		return 1
	}
	return c.frames
}

// Frame returns the current 1-based frame.
func (c *Canvas) Frame() uint32 {
	if c.frame == 0 {
		return 1
	}
	return c.frame
}

// SetFrames sets the frame count. Only counts above 1 are accepted; the
// current frame is left untouched, so callers shrinking the count should
// re-select a frame.
func (c *Canvas) SetFrames(n uint32) {
	if n > 1 {
		c.frames = n
	}
}

// SetFrame selects frame target. Values outside [1, Frames()] are ignored
// without error.
func (c *Canvas) SetFrame(target uint32) {
	if target >= 1 && target <= c.Frames() {
		c.frame = target
	}
}

// AdvanceFrame moves to the next frame, wrapping from the last back to 1.
func (c *Canvas) AdvanceFrame() {
	next := c.Frame() + 1
	if next > c.Frames() {
		next = 1
	}
	c.frame = next
}

// activeFrame is the current frame clamped into range for region math.
func (c *Canvas) activeFrame() uint32 {
	return min(c.Frame(), c.Frames())
}
