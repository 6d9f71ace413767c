package intent

import "sync"

// Event is a globally announced intent: any rendered markup can raise
// one without holding a reference to the controller.
type Event struct {
	Intent  Intent
	Payload Payload
}

// Bus is a broadcast channel for intent events. Subscriptions are
// explicit pairs: Subscribe returns the receiving channel plus the
// cancel function that tears the subscription down. The controller owns
// exactly one subscription for its lifetime; nothing here is a
// process-wide singleton.
type Bus struct {
	mu   sync.Mutex
	subs map[int]chan Event
	next int
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[int]chan Event)}
}

// Subscribe registers a listener. The returned cancel closes the channel
// and removes the subscription; it is safe to call more than once.
func (b *Bus) Subscribe() (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.next
	b.next++
	ch := make(chan Event, 16)
	b.subs[id] = ch
	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// Announce broadcasts an event to every subscriber. A subscriber whose
// buffer is full misses the event rather than blocking the announcer.
func (b *Bus) Announce(ev Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
