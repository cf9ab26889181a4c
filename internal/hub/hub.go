package hub

import "sync"

// TopicContent carries notifications about the project collection.
const TopicContent = "content"

// EventContentInvalidated tells open pages their project grid is out of date.
const EventContentInvalidated = "content.invalidated"

// Event represents a real-time event to be sent to clients.
type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// Client represents a single subscriber connection.
// It's essentially a channel that the SSE handler will listen to.
type Client chan Event

// NewClient returns a client with room for buffer pending events.
func NewClient(buffer int) Client {
	return make(Client, buffer)
}

// Hub fans events out to the clients subscribed to each topic.
type Hub struct {
	topics map[string]map[Client]bool
	mu     sync.RWMutex
}

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		topics: make(map[string]map[Client]bool),
	}
}

// Subscribe adds a client to a topic.
func (h *Hub) Subscribe(topic string, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.topics[topic]; !ok {
		h.topics[topic] = make(map[Client]bool)
	}
	h.topics[topic][client] = true
}

// Unsubscribe removes a client from a topic and closes its channel.
func (h *Hub) Unsubscribe(topic string, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, ok := h.topics[topic]; ok {
		if _, ok := clients[client]; ok {
			delete(clients, client)
			close(client) // Close the channel to signal the SSE handler to stop.
			if len(clients) == 0 {
				delete(h.topics, topic)
			}
		}
	}
}

// Subscribers returns the number of clients listening on topic.
func (h *Hub) Subscribers(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.topics[topic])
}

// Broadcast sends an event to every client of a topic and returns how many
// received it. Clients whose buffer is full miss the event.
func (h *Hub) Broadcast(topic string, event Event) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := 0
	for client := range h.topics[topic] {
		// Non-blocking so a slow client cannot stall the hub.
		select {
		case client <- event:
			delivered++
		default:
		}
	}
	return delivered
}
