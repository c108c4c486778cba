// Package ecs provides ECS adapters for thicket.
//
// Sprites are attached to [Donburi] entities with [SpriteComponent]. The
// [DetectCollisions] system tests every pair of sprite entities and
// publishes a [CollisionEvent] for each hit; subscribe to
// [CollisionEventType] in your systems to receive them.
//
// Usage:
//
//	entity := ecs.AddSprite(world, sprite)
//	ecs.DetectCollisions(world, thicket.Intersects)
//	ecs.CollisionEventType.ProcessEvents(world)
//	ecs.DrawSprites(world, screen)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
