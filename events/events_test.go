package events

import "testing"

func TestBusDeliversPublishedValue(t *testing.T) {
	bus := NewBus[int]()
	var got int
	bus.Subscribe(func(v int) { got = v })

	bus.Publish(42)
	if got != 42 {
		t.Errorf("got %d, want 42", got)
	}
}

func TestBusDeliversToMultipleSubscribers(t *testing.T) {
	bus := NewBus[string]()
	var a, b string
	bus.Subscribe(func(v string) { a = v })
	bus.Subscribe(func(v string) { b = v })

	bus.Publish("hello")
	if a != "hello" || b != "hello" {
		t.Errorf("a=%q b=%q, want both hello", a, b)
	}
}

func TestBusDeliversSynchronously(t *testing.T) {
	bus := NewBus[int]()
	order := []int{}
	bus.Subscribe(func(v int) { order = append(order, v) })

	bus.Publish(1)
	bus.Publish(2)

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("order = %v, want [1 2] delivered in publish order", order)
	}
}
