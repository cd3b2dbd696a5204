// Package ecs provides ECS adapters for arbor.
package ecs

import (
	"github.com/phanxgames/arbor"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ChangeEvent is an arbor change event tagged with the entity bound to its
// source control, or donburi.Null when the control is unbound.
type ChangeEvent struct {
	arbor.ChangeEvent
	Entity donburi.Entity
}

// ChangeEventType is the Donburi event type for arbor change events.
// Subscribe to this in your ECS systems to receive control edits.
var ChangeEventType = events.NewEventType[ChangeEvent]()

// Control links an entity to the element it represents.
type Control struct {
	Element arbor.Element
}

// ControlComponent is the component created by DonburiSink.Bind.
var ControlComponent = donburi.NewComponentType[Control]()

// DonburiSink is an arbor.EventSink backed by a Donburi world.
// Change events are published to ChangeEventType and can be consumed with
// events.Subscribe and ProcessEvents.
type DonburiSink struct {
	world    donburi.World
	entities map[arbor.Element]donburi.Entity
}

// NewDonburiSink creates a sink publishing into world.
func NewDonburiSink(world donburi.World) *DonburiSink {
	return &DonburiSink{world: world, entities: make(map[arbor.Element]donburi.Entity)}
}

// Bind creates an entity with a ControlComponent for e. Events from e carry
// that entity.
func (s *DonburiSink) Bind(e arbor.Element) donburi.Entity {
	if ent, ok := s.entities[e]; ok && s.world.Valid(ent) {
		return ent
	}
	ent := s.world.Create(ControlComponent)
	ControlComponent.SetValue(s.world.Entry(ent), Control{Element: e})
	s.entities[e] = ent
	return ent
}

// Unbind removes the entity bound to e.
func (s *DonburiSink) Unbind(e arbor.Element) {
	ent, ok := s.entities[e]
	if !ok {
		return
	}
	delete(s.entities, e)
	if s.world.Valid(ent) {
		s.world.Remove(ent)
	}
}

func (s *DonburiSink) EmitEvent(event arbor.ChangeEvent) {
	ent, ok := s.entities[event.Source]
	if !ok {
		ent = donburi.Null
	}
	ChangeEventType.Publish(s.world, ChangeEvent{ChangeEvent: event, Entity: ent})
}
