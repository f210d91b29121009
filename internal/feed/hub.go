// Package feed fans apiary bus events out to live clients.
package feed

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Message is one event as sent to clients
type Message struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// Client is a connected feed consumer
type Client struct {
	ID       string
	Messages chan Message
	filter   map[string]bool // nil means every type
}

// Wants reports whether the client subscribed to messageType
func (c *Client) Wants(messageType string) bool {
	return c.filter == nil || c.filter[messageType]
}

// Hub manages client registrations and broadcasting
type Hub struct {
	clients    map[string]*Client
	broadcast  chan Message
	register   chan *Client
	unregister chan string
	mu         sync.RWMutex
	shutdown   chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
	now        func() time.Time
}

// NewHub creates a new Hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		broadcast:  make(chan Message, BroadcastBufferSize),
		register:   make(chan *Client, ClientChannelBuffer),
		unregister: make(chan string, ClientChannelBuffer),
		shutdown:   make(chan struct{}),
		now:        time.Now,
	}
}

// Start starts the hub's broadcast loop
func (h *Hub) Start() {
	h.wg.Add(1)
	go h.run()
}

// Stop shuts the hub down and closes every client channel
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.shutdown)
		h.wg.Wait()

		h.mu.Lock()
		for _, client := range h.clients {
			close(client.Messages)
		}
		h.clients = make(map[string]*Client)
		h.mu.Unlock()
	})
}

func (h *Hub) run() {
	defer h.wg.Done()

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()

		case clientID := <-h.unregister:
			h.mu.Lock()
			if client, ok := h.clients[clientID]; ok {
				close(client.Messages)
				delete(h.clients, clientID)
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			for _, client := range h.clients {
				if !client.Wants(msg.Type) {
					continue
				}
				select {
				case client.Messages <- msg:
				default:
					slog.Debug(LogMsgClientLagging, "client_id", client.ID, "type", msg.Type)
				}
			}
			h.mu.RUnlock()

		case <-h.shutdown:
			return
		}
	}
}

// Register adds a client. An empty types list subscribes to everything.
func (h *Hub) Register(types []string) *Client {
	client := &Client{
		ID:       uuid.New().String(),
		Messages: make(chan Message, ClientMessageBuffer),
	}
	if len(types) > 0 {
		client.filter = make(map[string]bool, len(types))
		for _, t := range types {
			client.filter[t] = true
		}
	}

	select {
	case h.register <- client:
	case <-h.shutdown:
		close(client.Messages)
	}
	return client
}

// Unregister removes a client from the hub
func (h *Hub) Unregister(clientID string) {
	select {
	case h.unregister <- clientID:
	case <-h.shutdown:
	}
}

// Broadcast queues a message for every interested client. It never blocks.
func (h *Hub) Broadcast(messageType string, payload interface{}) bool {
	msg := Message{
		ID:        uuid.New().String(),
		Type:      messageType,
		Timestamp: h.now().Unix(),
		Payload:   payload,
	}

	select {
	case h.broadcast <- msg:
		return true
	default:
		slog.Warn(LogMsgBroadcastDropped, "type", messageType)
		return false
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
