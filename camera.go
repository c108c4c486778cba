package thicket

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera is a scrolling view into a world larger than the frame. X and Y
// are the world position at the center of the view.
type Camera struct {
	X, Y float64
	// Width and Height are the view size in pixels.
	Width, Height uint32

	followTarget  *Sprite
	followOffsetX float64
	followOffsetY float64
	followLerp    float64

	// BoundsEnabled clamps the camera position so the visible area stays
	// within Bounds.
	BoundsEnabled bool
	Bounds        Box

	scrollTween *scrollAnim
}

// NewCamera returns a camera with a width x height view centered on the
// view's own middle, so world and screen coordinates start out equal.
func NewCamera(width, height uint32) *Camera {
	return &Camera{
		X:      float64(width) / 2,
		Y:      float64(height) / 2,
		Width:  width,
		Height: height,
	}
}

// Follow makes the camera track the center of s with the given offset and
// lerp factor. A lerp of 1.0 snaps immediately; lower values give smoother
// following.
func (c *Camera) Follow(s *Sprite, offsetX, offsetY, lerp float64) {
	c.followTarget = s
	c.followOffsetX = offsetX
	c.followOffsetY = offsetY
	c.followLerp = lerp
}

// Unfollow stops tracking the current target.
func (c *Camera) Unfollow() {
	c.followTarget = nil
}

// ScrollTo animates the camera to the given world position over duration
// seconds.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.Y), float32(y), duration, easeFn),
	}
}

// ScrollToTile scrolls to the center of tile (col, row) of m.
func (c *Camera) ScrollToTile(m *TileMap, col, row int, duration float32, easeFn ease.TweenFunc) {
	tw := float64(m.Tiles.TileWidth())
	th := float64(m.Tiles.TileHeight())
	c.ScrollTo(float64(col)*tw+tw/2, float64(row)*th+th/2, duration, easeFn)
}

// Scrolling reports whether a ScrollTo animation is in progress.
func (c *Camera) Scrolling() bool { return c.scrollTween != nil }

// SetBounds enables bounds clamping.
func (c *Camera) SetBounds(bounds Box) {
	c.BoundsEnabled = true
	c.Bounds = bounds
}

// ClearBounds disables bounds clamping.
func (c *Camera) ClearBounds() {
	c.BoundsEnabled = false
}

// ClampToBounds immediately clamps the camera position. No-op if
// BoundsEnabled is false.
func (c *Camera) ClampToBounds() {
	if c.BoundsEnabled {
		c.clampToBounds()
	}
}

// Update advances follow, scroll and bounds clamping by dt seconds.
func (c *Camera) Update(dt float32) {
	if s := c.followTarget; s != nil {
		targetX := float64(s.X()) + float64(s.Width())/2 + c.followOffsetX
		targetY := float64(s.Y()) + float64(s.Height())/2 + c.followOffsetY
		c.X += (targetX - c.X) * c.followLerp
		c.Y += (targetY - c.Y) * c.followLerp
	}

	if c.scrollTween != nil {
		if !c.scrollTween.doneX {
			val, done := c.scrollTween.tweenX.Update(dt)
			c.X = float64(val)
			c.scrollTween.doneX = done
		}
		if !c.scrollTween.doneY {
			val, done := c.scrollTween.tweenY.Update(dt)
			c.Y = float64(val)
			c.scrollTween.doneY = done
		}
		if c.scrollTween.doneX && c.scrollTween.doneY {
			c.scrollTween = nil
		}
	}

	if c.BoundsEnabled {
		c.clampToBounds()
	}
}

func (c *Camera) clampToBounds() {
	halfW := float64(c.Width) / 2
	halfH := float64(c.Height) / 2
	bx, by := float64(c.Bounds.X), float64(c.Bounds.Y)
	bw, bh := float64(c.Bounds.Width), float64(c.Bounds.Height)

	minX, maxX := bx+halfW, bx+bw-halfW
	minY, maxY := by+halfH, by+bh-halfH

	// Bounds smaller than the view center the camera.
	if minX > maxX {
		c.X = bx + bw/2
	} else {
		c.X = math.Max(minX, math.Min(c.X, maxX))
	}
	if minY > maxY {
		c.Y = by + bh/2
	} else {
		c.Y = math.Max(minY, math.Min(c.Y, maxY))
	}
}

// Origin returns the world pixel at the view's top-left corner.
func (c *Camera) Origin() (x, y int) {
	return int(math.Round(c.X - float64(c.Width)/2)), int(math.Round(c.Y - float64(c.Height)/2))
}

// WorldToScreen converts world coordinates to view coordinates.
func (c *Camera) WorldToScreen(wx, wy int) (sx, sy int) {
	ox, oy := c.Origin()
	return wx - ox, wy - oy
}

// ScreenToWorld converts view coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy int) (wx, wy int) {
	ox, oy := c.Origin()
	return sx + ox, sy + oy
}

// Visible reports whether any part of b lies inside the view.
func (c *Camera) Visible(b Box) bool {
	ox, oy := c.Origin()
	return int64(b.X)+int64(b.Width) > int64(ox) &&
		int64(b.X) < int64(ox)+int64(c.Width) &&
		int64(b.Y)+int64(b.Height) > int64(oy) &&
		int64(b.Y) < int64(oy)+int64(c.Height)
}

// Apply copies the view origin into m's scroll offset.
func (c *Camera) Apply(m *TileMap) {
	m.ScrollX, m.ScrollY = c.Origin()
}
