package hub

import "sync"

// Event types published by the domain handlers.
const (
	EventConnectionRequested = "connection.requested"
	EventConnectionAccepted  = "connection.accepted"
	EventMessageSent         = "message.sent"
	EventMeetupJoined        = "meetup.joined"
	EventUserBlocked         = "user.blocked"
)

// Event represents a domain event emitted by a mutation handler.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// Subscriber receives events for the types it subscribed to.
type Subscriber chan Event

// Hub fans domain events out to subscribers, keyed by event type.
type Hub struct {
	subs map[string]map[Subscriber]bool
	mu   sync.RWMutex
}

// GlobalHub is the singleton instance of our Hub.
var GlobalHub = NewHub()

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		subs: make(map[string]map[Subscriber]bool),
	}
}

// Subscribe registers a subscriber for one event type.
func (h *Hub) Subscribe(eventType string, sub Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.subs[eventType]; !ok {
		h.subs[eventType] = make(map[Subscriber]bool)
	}
	h.subs[eventType][sub] = true
}

// Unsubscribe removes a subscriber from one event type and closes its
// channel once it holds no subscriptions at all.
func (h *Hub) Unsubscribe(eventType string, sub Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if subs, ok := h.subs[eventType]; ok {
		if _, ok := subs[sub]; ok {
			delete(subs, sub)
			if len(subs) == 0 {
				delete(h.subs, eventType)
			}
		}
	}
	for _, subs := range h.subs {
		if subs[sub] {
			return
		}
	}
	close(sub)
}

// Publish sends an event to all subscribers of its type.
func (h *Hub) Publish(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.subs[event.Type] {
		// Non-blocking send so a slow subscriber cannot stall a handler.
		select {
		case sub <- event:
		default:
		}
	}
}
