// Package ecs provides ECS adapters for touchstrip's zone events.
//
// The primary adapter is [NewDonburiStore], which bridges engage and
// disengage transitions into a [Donburi] world as typed events. Subscribe
// to [ZoneEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	panel.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
