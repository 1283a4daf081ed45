package storage

import "sync"

// EventKind identifies which collection changed
type EventKind string

const (
	EventProfileChanged EventKind = "profile"
	EventDreamsChanged  EventKind = "dreams"
)

// Event is a change notification published after a successful mutation
type Event struct {
	Kind EventKind
	// ID of the affected dream, empty for profile events and cascades
	ID string
}

// Hub fans change events out to subscribers. Channels are buffered and
// non-blocking on publish: a slow subscriber drops events rather than
// stalling writers, so subscribers should treat an event as "re-read
// the collection", not as a precise delta stream.
type Hub struct {
	mu   sync.Mutex
	subs map[int]chan Event
	next int
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{subs: make(map[int]chan Event)}
}

// Subscribe registers a new listener and returns its channel plus a
// cancel function
func (h *Hub) Subscribe() (<-chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.next
	h.next++
	ch := make(chan Event, 8)
	h.subs[id] = ch
	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if sub, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// Publish delivers an event to every subscriber without blocking
func (h *Hub) Publish(ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
