package services

import "sync"

// Event is a state change pushed to whoever renders a session.
type Event struct {
	SessionID string
	Name      string
	Payload   interface{}
}

// EventBus fans events out to subscribers in registration order.
type EventBus struct {
	mu       sync.RWMutex
	handlers map[int]func(Event)
	order    []int
	nextID   int
}

func NewEventBus() *EventBus {
	return &EventBus{handlers: make(map[int]func(Event))}
}

// Subscribe registers fn and returns a function that removes it.
func (b *EventBus) Subscribe(fn func(Event)) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[id] = fn
	b.order = append(b.order, id)

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.handlers, id)
		for i, existing := range b.order {
			if existing == id {
				b.order = append(b.order[:i], b.order[i+1:]...)
				break
			}
		}
	}
}

// Publish delivers e synchronously to every subscriber.
func (b *EventBus) Publish(e Event) {
	b.mu.RLock()
	handlers := make([]func(Event), 0, len(b.order))
	for _, id := range b.order {
		handlers = append(handlers, b.handlers[id])
	}
	b.mu.RUnlock()

	for _, fn := range handlers {
		fn(e)
	}
}
