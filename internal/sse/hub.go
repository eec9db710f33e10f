package sse

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Du7chy/Seedlings/internal/domain"
)

// Event represents an event sent over SSE
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// Client represents a connected SSE client. A client is scoped to the
// player that opened the stream and, optionally, the room the player was
// in at connect time; clients reconnect when they switch rooms.
type Client struct {
	ID           string
	PlayerID     string
	RoomID       int // 0 when not in a room
	EventChannel chan Event
}

// Hub manages SSE client connections and event broadcasting
type Hub struct {
	clients    map[string]*Client
	broadcast  chan Event
	register   chan *Client
	unregister chan string
	mu         sync.RWMutex
	shutdown   chan struct{}
	wg         sync.WaitGroup
}

// NewHub creates a new SSE Hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		broadcast:  make(chan Event, BroadcastBufferSize),
		register:   make(chan *Client, ClientChannelBuffer),
		unregister: make(chan string, ClientChannelBuffer),
		shutdown:   make(chan struct{}),
	}
}

// Start starts the hub's broadcast loop
func (h *Hub) Start() {
	h.wg.Add(1)
	go h.run()
}

// Stop gracefully shuts down the hub
func (h *Hub) Stop() {
	close(h.shutdown)
	h.wg.Wait()

	h.mu.Lock()
	for _, client := range h.clients {
		close(client.EventChannel)
	}
	h.clients = make(map[string]*Client)
	h.mu.Unlock()
}

// run is the main broadcast loop
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
				close(client.EventChannel)
				delete(h.clients, clientID)
			}
			h.mu.Unlock()

		case event := <-h.broadcast:
			playerID, roomID := route(event.Payload)

			h.mu.RLock()
			for _, client := range h.clients {
				if !client.wants(playerID, roomID) {
					continue
				}

				// Non-blocking send
				select {
				case client.EventChannel <- event:
				default:
					// Client buffer full, skip this event
				}
			}
			h.mu.RUnlock()

		case <-h.shutdown:
			return
		}
	}
}

// wants reports whether an event addressed to a player and/or room should
// reach this client. Unaddressed events go to everyone.
func (c *Client) wants(playerID string, roomID int) bool {
	if playerID == "" && roomID == 0 {
		return true
	}
	if playerID != "" && c.PlayerID == playerID {
		return true
	}
	return roomID != 0 && c.RoomID == roomID
}

// route extracts the addressing of a payload: personal events carry the
// owning player, room events carry the room. Anything else is global.
func route(payload interface{}) (playerID string, roomID int) {
	switch p := payload.(type) {
	case domain.SeedBoughtPayload:
		return p.PlayerID, 0
	case domain.PlantSoldPayload:
		return p.PlayerID, 0
	case domain.PlantLifecyclePayload:
		return p.PlayerID, 0
	case domain.MemberChangePayload:
		return "", p.RoomID
	case domain.ChatMessagePayload:
		return "", p.RoomID
	case domain.RoomClosedPayload:
		return "", p.RoomID
	default:
		return "", 0
	}
}

// Register adds a new client to the hub
func (h *Hub) Register(playerID string, roomID int) *Client {
	client := &Client{
		ID:           uuid.New().String(),
		PlayerID:     playerID,
		RoomID:       roomID,
		EventChannel: make(chan Event, ClientEventBuffer),
	}
	h.register <- client
	return client
}

// Unregister removes a client from the hub
func (h *Hub) Unregister(clientID string) {
	select {
	case h.unregister <- clientID:
	case <-h.shutdown:
	}
}

// Broadcast sends an event to all interested clients
func (h *Hub) Broadcast(eventType string, payload interface{}) {
	event := Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Timestamp: time.Now().Unix(),
		Payload:   payload,
	}

	select {
	case h.broadcast <- event:
	default:
		// Buffer full, drop event
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// FormatSSEMessage formats an SSE event for transmission
func FormatSSEMessage(event Event) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}

	// SSE format: "id: <id>\nevent: <type>\ndata: <json>\n\n"
	msg := "id: " + event.ID + "\n"
	msg += "event: " + event.Type + "\n"
	msg += "data: " + string(data) + "\n\n"

	return []byte(msg), nil
}
