package thicket

// Primitive draws lines and rectangles in a single colour onto a Target.
// The zero value draws black.
type Primitive struct {
	color Pixel
}

// SetColor sets the drawing colour.
func (p *Primitive) SetColor(r, g, b uint8) {
	p.color = RGB(r, g, b)
}

// Color returns the drawing colour.
func (p *Primitive) Color() Pixel { return p.color }

func (p *Primitive) plot(target Target, x, y int64) {
	if x < 0 || y < 0 || x > 0xffffffff || y > 0xffffffff {
		return
	}
	target.DrawPixel(uint32(x), uint32(y), p.color.R, p.color.G, p.color.B)
}

// DrawLine draws a line from (x1, y1) to (x2, y2), both ends included,
// using Bresenham's algorithm.
func (p *Primitive) DrawLine(target Target, x1, y1, x2, y2 uint32) {
	x, y := int64(x1), int64(y1)
	ex, ey := int64(x2), int64(y2)
	dx, dy := ex-x, ey-y
	sx, sy := int64(1), int64(1)
	if dx < 0 {
		dx, sx = -dx, -1
	}
	if dy < 0 {
		dy, sy = -dy, -1
	}
	dy = -dy
	e := dx + dy
	for {
		p.plot(target, x, y)
		if x == ex && y == ey {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}

// DrawRectangle draws the outline of a width x height rectangle with its
// top-left corner at (x, y).
func (p *Primitive) DrawRectangle(target Target, x, y, width, height uint32) {
	if width == 0 || height == 0 {
		return
	}
	right, bottom := x+width-1, y+height-1
	p.DrawLine(target, x, y, right, y)
	p.DrawLine(target, x, bottom, right, bottom)
	p.DrawLine(target, x, y, x, bottom)
	p.DrawLine(target, right, y, right, bottom)
}

// DrawFilledRectangle fills a width x height rectangle with its top-left
// corner at (x, y).
func (p *Primitive) DrawFilledRectangle(target Target, x, y, width, height uint32) {
	for row := uint64(0); row < uint64(height); row++ {
		for col := uint64(0); col < uint64(width); col++ {
			p.plot(target, int64(x)+int64(col), int64(y)+int64(row))
		}
	}
}
