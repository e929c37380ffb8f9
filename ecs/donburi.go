package ecs

import (
	"github.com/phanxgames/touchstrip"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ZoneEventType is the Donburi event type for touchstrip zone events.
// Subscribe to this in your ECS systems to receive engages and disengages.
var ZoneEventType = events.NewEventType[touchstrip.ZoneEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world.
// Zone events are published to ZoneEventType in the order the panel emits
// them and can be consumed with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) touchstrip.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event touchstrip.ZoneEvent) {
	ZoneEventType.Publish(s.world, event)
}
