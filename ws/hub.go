package ws

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/mohitkushwaha4020/zaika/services"
)

// Client is one live websocket connection. The session id is assigned on
// connect and never reused.
type Client struct {
	ID   string
	conn *websocket.Conn
}

// ConnectionEntry records a client's presence: its role and the single
// room it currently occupies. Entries exist only for clients that sent an
// explicit join.
type ConnectionEntry struct {
	Role     string    `json:"role"`
	UserID   string    `json:"userId"`
	Room     string    `json:"room"`
	JoinedAt time.Time `json:"joinedAt"`
}

// Hub is the room-based fan-out layer and the owner of the presence
// registry. It implements services.Broadcaster. Writes happen under the
// hub mutex; a connection that fails a write is dropped on the spot, the
// same way the old chat hub did it.
type Hub struct {
	mu       sync.Mutex
	clients  map[*Client]bool
	rooms    map[string]map[*Client]bool
	presence map[*Client]*ConnectionEntry
}

func NewHub() *Hub {
	return &Hub{
		clients:  make(map[*Client]bool),
		rooms:    make(map[string]map[*Client]bool),
		presence: make(map[*Client]*ConnectionEntry),
	}
}

type outMessage struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Register wraps a freshly upgraded connection. The client is connected
// but unjoined until it sends a joinRoom event.
func (h *Hub) Register(conn *websocket.Conn) *Client {
	c := &Client{ID: uuid.NewString(), conn: conn}
	h.mu.Lock()
	h.clients[c] = true
	h.mu.Unlock()
	return c
}

// Join places the client in the room derived from its role. A re-join
// with a different role leaves the old room and enters the new one under
// one lock, so no observer sees the client in two rooms or in none.
func (h *Hub) Join(c *Client, role, userID string) *ConnectionEntry {
	room := role + "_room"
	entry := &ConnectionEntry{Role: role, UserID: userID, Room: room, JoinedAt: time.Now()}

	h.mu.Lock()
	defer h.mu.Unlock()
	if old, ok := h.presence[c]; ok {
		delete(h.rooms[old.Room], c)
	}
	if h.rooms[room] == nil {
		h.rooms[room] = make(map[*Client]bool)
	}
	h.rooms[room][c] = true
	h.presence[c] = entry
	return entry
}

// Disconnect removes the client from its room, the presence registry and
// the connection set, then republishes connection stats if the client had
// joined. Safe to call more than once.
func (h *Hub) Disconnect(c *Client) {
	h.mu.Lock()
	if !h.clients[c] {
		h.mu.Unlock()
		return
	}
	delete(h.clients, c)
	entry, joined := h.presence[c]
	if joined {
		delete(h.rooms[entry.Room], c)
		delete(h.presence, c)
	}
	h.mu.Unlock()

	c.conn.Close()
	if joined {
		h.BroadcastStats()
	}
}

// Stats counts joined connections per role.
func (h *Hub) Stats() services.ConnectionStats {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.statsLocked()
}

func (h *Hub) statsLocked() services.ConnectionStats {
	var st services.ConnectionStats
	for _, e := range h.presence {
		switch e.Role {
		case "customer":
			st.Customers++
		case "restaurant":
			st.Restaurants++
		}
	}
	st.Total = st.Customers + st.Restaurants
	return st
}

// BroadcastStats pushes the current connection stats to every connection.
func (h *Hub) BroadcastStats() {
	h.ToAll(eventConnectionStats, h.Stats())
}

// ToRoom emits the event to every current member of the room.
func (h *Hub) ToRoom(room, event string, data any) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.rooms[room] {
		h.writeLocked(c, event, data)
	}
}

// ToAll emits the event to every connection, joined or not.
func (h *Hub) ToAll(event string, data any) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		h.writeLocked(c, event, data)
	}
}

// SendTo emits the event to a single connection.
func (h *Hub) SendTo(c *Client, event string, data any) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.writeLocked(c, event, data)
}

func (h *Hub) writeLocked(c *Client, event string, data any) {
	if !h.clients[c] {
		return
	}
	if err := c.conn.WriteJSON(outMessage{Event: event, Data: data}); err != nil {
		log.Printf("ws write error: %v", err)
		c.conn.Close()
		delete(h.clients, c)
		if entry, ok := h.presence[c]; ok {
			delete(h.rooms[entry.Room], c)
			delete(h.presence, c)
		}
	}
}
