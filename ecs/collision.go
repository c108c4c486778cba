package ecs

import (
	"github.com/phanxgames/thicket"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// CollisionEvent reports two sprite entities whose boxes matched the
// collision rule. A precedes B in query order.
type CollisionEvent struct {
	A, B       donburi.Entity
	BoxA, BoxB thicket.Box
}

// CollisionEventType is the Donburi event type for sprite collisions.
var CollisionEventType = events.NewEventType[CollisionEvent]()

// CollisionRule decides whether two boxes collide. thicket.Collides and
// thicket.Intersects both fit.
type CollisionRule func(a, b thicket.Box) bool

type spriteBox struct {
	entity donburi.Entity
	box    thicket.Box
}

// DetectCollisions tests every pair of sprite entities with rule and
// publishes a CollisionEvent for each match. Events are queued; call
// CollisionEventType.ProcessEvents to deliver them. It returns the number of
// events published.
func DetectCollisions(world donburi.World, rule CollisionRule) int {
	if rule == nil {
		rule = thicket.Intersects
	}
	var boxes []spriteBox
	spriteQuery.Each(world, func(entry *donburi.Entry) {
		if s := SpriteComponent.Get(entry).Sprite; s != nil {
			boxes = append(boxes, spriteBox{entity: entry.Entity(), box: s.Box()})
		}
	})

	published := 0
	for i := range boxes {
		for j := i + 1; j < len(boxes); j++ {
			a, b := boxes[i], boxes[j]
			if !rule(a.box, b.box) {
				continue
			}
			CollisionEventType.Publish(world, CollisionEvent{A: a.entity, B: b.entity, BoxA: a.box, BoxB: b.box})
			published++
		}
	}
	return published
}
