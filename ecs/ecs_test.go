package ecs

import (
	"image"
	"image/color"
	"testing"

	"github.com/phanxgames/thicket"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// solidSprite returns an opaque w x h sprite filled with c at (x, y).
func solidSprite(t *testing.T, w, h int, c color.RGBA, x, y uint32) *thicket.Sprite {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for py := range h {
		for px := range w {
			img.SetRGBA(px, py, c)
		}
	}
	s := thicket.NewSprite()
	if err := s.Load(thicket.FromImage(img), thicket.SingleSprite, 1); err != nil {
		t.Fatal(err)
	}
	s.SetTransparent(false)
	s.SetPosition(x, y)
	return s
}

func TestAddSpriteAndDraw(t *testing.T) {
	world := donburi.NewWorld()
	red := color.RGBA{R: 255, A: 255}
	s := solidSprite(t, 2, 2, red, 1, 1)
	entity := AddSprite(world, s)

	if got := SpriteComponent.Get(world.Entry(entity)).Sprite; got != s {
		t.Fatalf("component sprite = %p, want %p", got, s)
	}

	frame := thicket.NewFrame(4, 4)
	DrawSprites(world, frame)
	if p, _ := frame.PixelAt(2, 2); p != thicket.RGB(255, 0, 0) {
		t.Errorf("(2,2) = %+v, want red", p)
	}
	if p, _ := frame.PixelAt(0, 0); p != (thicket.Pixel{}) {
		t.Errorf("(0,0) = %+v, want black", p)
	}
}

func TestStepSprites(t *testing.T) {
	world := donburi.NewWorld()
	img := image.NewRGBA(image.Rect(0, 0, 4, 1))
	s := thicket.NewSprite()
	if err := s.Load(thicket.FromImage(img), thicket.HorizontalStrip, 4); err != nil {
		t.Fatal(err)
	}
	AddSprite(world, s)
	StepSprites(world)
	StepSprites(world)
	if s.Frame() != 3 {
		t.Errorf("frame = %d, want 3", s.Frame())
	}
}

func TestDetectCollisions(t *testing.T) {
	world := donburi.NewWorld()
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	a := AddSprite(world, solidSprite(t, 8, 8, white, 0, 0))
	b := AddSprite(world, solidSprite(t, 8, 8, white, 4, 4))
	AddSprite(world, solidSprite(t, 8, 8, white, 2, 100))

	var received []CollisionEvent
	CollisionEventType.Subscribe(world, func(w donburi.World, e CollisionEvent) {
		received = append(received, e)
	})

	if n := DetectCollisions(world, thicket.Intersects); n != 1 {
		t.Fatalf("Intersects published %d events, want 1", n)
	}
	CollisionEventType.ProcessEvents(world)
	if len(received) != 1 {
		t.Fatalf("received %d events, want 1", len(received))
	}
	e := received[0]
	if !(e.A == a && e.B == b) && !(e.A == b && e.B == a) {
		t.Errorf("event entities = %v, %v; want %v and %v", e.A, e.B, a, b)
	}
	if !thicket.Intersects(e.BoxA, e.BoxB) {
		t.Errorf("event boxes %+v and %+v do not intersect", e.BoxA, e.BoxB)
	}

	// The historical rule also matches boxes sharing only a column.
	received = nil
	if n := DetectCollisions(world, thicket.Collides); n != 3 {
		t.Errorf("Collides published %d events, want 3", n)
	}
	events.ProcessAllEvents(world)
	if len(received) != 3 {
		t.Errorf("received %d events, want 3", len(received))
	}
}

func TestDetectCollisionsDefaultsToIntersects(t *testing.T) {
	world := donburi.NewWorld()
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	AddSprite(world, solidSprite(t, 4, 4, white, 0, 0))
	AddSprite(world, solidSprite(t, 4, 4, white, 0, 50))
	if n := DetectCollisions(world, nil); n != 0 {
		t.Errorf("published %d events, want 0", n)
	}
	events.ProcessAllEvents(world)
}
