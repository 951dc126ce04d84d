package ecs

import (
	"github.com/phanxgames/fab"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for fab interaction events.
var InteractionEventType = events.NewEventType[fab.InteractionEvent]()

// ButtonData mirrors the interaction state of one button.
type ButtonData struct {
	ButtonID uint32
	Name     string
	Pressed  bool
	Clicks   int
}

// ButtonComponent holds ButtonData on button entities.
var ButtonComponent = donburi.NewComponentType[ButtonData]()

// DonburiSink is a fab.EventSink backed by a Donburi world.
type DonburiSink struct {
	world    donburi.World
	entities map[uint32]donburi.Entity
	nextID   uint32
	tracking bool
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Interaction events are published to InteractionEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) *DonburiSink {
	return &DonburiSink{world: world, entities: make(map[uint32]donburi.Entity)}
}

var _ fab.EventSink = (*DonburiSink)(nil)

// EmitEvent publishes event to the world.
func (s *DonburiSink) EmitEvent(event fab.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}

// Register creates an entity with a ButtonComponent for b and links b to it
// through b.EntityID. Only linked buttons emit events.
func (s *DonburiSink) Register(b *fab.Button) donburi.Entity {
	e := s.world.Create(ButtonComponent)
	ButtonComponent.SetValue(s.world.Entry(e), ButtonData{ButtonID: b.ID, Name: b.Name})
	s.nextID++
	s.entities[s.nextID] = e
	b.EntityID = s.nextID
	return e
}

// Entity returns the entity linked to an EntityID.
func (s *DonburiSink) Entity(entityID uint32) (donburi.Entity, bool) {
	e, ok := s.entities[entityID]
	return e, ok
}

// TrackButtons subscribes a handler that mirrors pressed state and click
// counts into the ButtonComponent of registered entities. Calling it more
// than once has no further effect.
func (s *DonburiSink) TrackButtons() {
	if s.tracking {
		return
	}
	s.tracking = true
	InteractionEventType.Subscribe(s.world, s.apply)
}

func (s *DonburiSink) apply(w donburi.World, event fab.InteractionEvent) {
	e, ok := s.entities[event.EntityID]
	if !ok || !w.Valid(e) {
		return
	}
	d := ButtonComponent.Get(w.Entry(e))
	switch event.Type {
	case fab.EventPressed:
		d.Pressed = true
	case fab.EventReleased:
		d.Pressed = false
	case fab.EventClick:
		d.Clicks++
	}
}
