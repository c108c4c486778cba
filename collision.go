package thicket

// Box is an axis-aligned rectangle used for collision tests. The origin is
// top-left with Y increasing downward. Edges are inclusive: boxes that only
// touch are considered overlapping.
type Box struct {
	X, Y, Width, Height uint32
}

// NewBox returns a Box with the given origin and size.
func NewBox(x, y, width, height uint32) Box {
	return Box{X: x, Y: y, Width: width, Height: height}
}

// HorizontalOverlap reports whether the X extents of a and b overlap.
func HorizontalOverlap(a, b Box) bool {
	return uint64(a.X)+uint64(a.Width) >= uint64(b.X) &&
		uint64(a.X) <= uint64(b.X)+uint64(b.Width)
}

// VerticalOverlap reports whether the Y extents of a and b overlap.
func VerticalOverlap(a, b Box) bool {
	return uint64(a.Y)+uint64(a.Height) >= uint64(b.Y) &&
		uint64(a.Y) <= uint64(b.Y)+uint64(b.Height)
}

// Collides reports a collision when a and b overlap on EITHER axis. Two
// boxes in the same column but far apart vertically collide. This is the
// historical rule game logic built on this package depends on; use
// Intersects for a true rectangle overlap.
func Collides(a, b Box) bool {
	return HorizontalOverlap(a, b) || VerticalOverlap(a, b)
}

// Intersects reports whether a and b overlap on both axes.
func Intersects(a, b Box) bool {
	return HorizontalOverlap(a, b) && VerticalOverlap(a, b)
}
