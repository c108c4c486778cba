package thicket

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// SpriteTween moves a sprite toward a target position. Call Update(dt)
// each tick; positions are rounded to whole pixels.
type SpriteTween struct {
	x, y   *gween.Tween
	target *Sprite
	Done   bool
}

// TweenPosition creates a SpriteTween that moves s from its current
// position to (toX, toY) over duration seconds using fn.
func TweenPosition(s *Sprite, toX, toY uint32, duration float32, fn ease.TweenFunc) *SpriteTween {
	return &SpriteTween{
		x:      gween.New(float32(s.X()), float32(toX), duration, fn),
		y:      gween.New(float32(s.Y()), float32(toY), duration, fn),
		target: s,
	}
}

// Update advances the tween by dt seconds and moves the sprite.
func (t *SpriteTween) Update(dt float32) {
	if t.Done {
		return
	}
	x, doneX := t.x.Update(dt)
	y, doneY := t.y.Update(dt)
	t.target.SetPosition(roundPosition(x), roundPosition(y))
	t.Done = doneX && doneY
}

func roundPosition(v float32) uint32 {
	if v <= 0 {
		return 0
	}
	return uint32(math.Round(float64(v)))
}
