package thicket

// region is the active sub-rectangle of a canvas: its size and the buffer
// offset of its top-left pixel.
type region struct {
	width  uint32
	height uint32
	start  uint32
}

// strip lays a canvas out as frames cells along one axis and returns the
// cell for the canvas's current frame. horizontal and vertical select the
// axis; neither means the whole image.
func strip(c *Canvas, horizontal, vertical bool) region {
	w, h := c.Width(), c.Height()
	frames, frame := c.Frames(), c.activeFrame()
	switch {
	case horizontal:
		r := region{width: w / frames, height: h}
		r.start = (frame - 1) * r.width
		return r
	case vertical:
		r := region{width: w, height: h / frames}
		r.start = (frame - 1) * r.width * r.height
		return r
	default:
		return region{width: w, height: h}
	}
}
