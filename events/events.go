package events

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// Bus is a typed publish/subscribe channel for payloads of type T, backed
// by a donburi World exactly as the teacher's InteractionEventType adapter
// carried willow.InteractionEvent over a donburi world. The engine uses one
// Bus[SceneSnapshot] per Engine to implement OnSnapshotChanged without the
// events package needing to import the engine's own types.
type Bus[T any] struct {
	world     donburi.World
	eventType *events.EventType[T]
}

// NewBus creates an empty bus with its own private donburi world.
func NewBus[T any]() *Bus[T] {
	return &Bus[T]{
		world:     donburi.NewWorld(),
		eventType: events.NewEventType[T](),
	}
}

// Subscribe registers handler to be called, in registration order, every
// time Publish is called.
func (b *Bus[T]) Subscribe(handler func(T)) {
	b.eventType.Subscribe(b.world, func(w donburi.World, e T) {
		handler(e)
	})
}

// Publish queues payload and immediately drains the queue, so subscribers
// run synchronously within the Publish call — the engine never dispatches
// from more than one goroutine, so there is no reason to defer delivery.
func (b *Bus[T]) Publish(payload T) {
	b.eventType.Publish(b.world, payload)
	b.eventType.ProcessEvents(b.world)
}
