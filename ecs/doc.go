// Package ecs provides ECS adapters for arbor's change events.
//
// The primary adapter is [NewDonburiSink], which bridges control edits
// (value changes, clicks, selections) into a [Donburi] world as typed
// events. Subscribe to [ChangeEventType] in your ECS systems to receive
// them, and use [DonburiSink.Bind] to give a control an entity.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	volume := arbor.NewHSlider(0.5)
//	sink.Bind(volume)
//	view.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
