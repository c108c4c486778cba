package ecs

import (
	"github.com/phanxgames/thicket"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// SpriteData holds the sprite drawn and collided for an entity.
type SpriteData struct {
	Sprite *thicket.Sprite
}

// SpriteComponent attaches a thicket sprite to an entity.
var SpriteComponent = donburi.NewComponentType[SpriteData]()

var spriteQuery = donburi.NewQuery(filter.Contains(SpriteComponent))

// AddSprite creates an entity carrying s.
func AddSprite(world donburi.World, s *thicket.Sprite) donburi.Entity {
	entity := world.Create(SpriteComponent)
	SpriteComponent.SetValue(world.Entry(entity), SpriteData{Sprite: s})
	return entity
}

// DrawSprites draws every sprite entity onto target.
func DrawSprites(world donburi.World, target thicket.Target) {
	spriteQuery.Each(world, func(entry *donburi.Entry) {
		if s := SpriteComponent.Get(entry).Sprite; s != nil {
			s.Draw(target)
		}
	})
}

// StepSprites advances the animation frame of every sprite entity.
func StepSprites(world donburi.World) {
	spriteQuery.Each(world, func(entry *donburi.Entry) {
		if s := SpriteComponent.Get(entry).Sprite; s != nil {
			s.Step()
		}
	})
}
