package sse

import (
	"context"
	"sync"

	"mockgraph/internal/model"
)

// Client receives created events. Type filters by event type; empty means all.
type Client struct {
	Type string
	Ch   chan model.Event
}

type Hub struct {
	register   chan *Client
	unregister chan *Client
	broadcast  chan model.Event
	clients    map[*Client]struct{}
	mu         sync.RWMutex

	done     chan struct{}
	stopOnce sync.Once
}

func NewHub() *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan model.Event, 64),
		clients:    make(map[*Client]struct{}),
		done:       make(chan struct{}),
	}
}

// Register adds client to the fan-out. It reports false once Run has
// returned, in which case the client will never receive events.
func (h *Hub) Register(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

// Unregister removes client. After Run has returned it is a no-op.
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Broadcast queues event for delivery. It never blocks: when the queue is full
// the event is dropped and false is returned.
func (h *Hub) Broadcast(event model.Event) bool {
	select {
	case h.broadcast <- event:
		return true
	default:
		return false
	}
}

func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) Run(ctx context.Context) {
	defer h.stopOnce.Do(func() { close(h.done) })
	for {
		select {
		case <-ctx.Done():
			return
		case client := <-h.register:
			h.addClient(client)
		case client := <-h.unregister:
			h.removeClient(client)
		case event := <-h.broadcast:
			h.fanOut(event)
		}
	}
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = struct{}{}
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, client)
}

func (h *Hub) fanOut(event model.Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		if client.Type != "" && client.Type != event.Type {
			continue
		}
		select {
		case client.Ch <- event:
		default:
			// Drop if the client is too slow.
		}
	}
}
