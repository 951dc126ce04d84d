// Package ecs provides ECS adapters for fab's interaction events.
//
// The adapter is [NewDonburiSink], which bridges button interaction events
// (pressed, released, click) into a [Donburi] world as typed events.
// Subscribe to [InteractionEventType] in your ECS systems to receive them,
// or call [DonburiSink.TrackButtons] to mirror them into [ButtonComponent]
// on registered button entities.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	sink.Register(button)
//	sink.TrackButtons()
//	host.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
