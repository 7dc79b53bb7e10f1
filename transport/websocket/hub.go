package websocket

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins in development
		// TODO: Configure this for production
		return true
	},
}

// Handler consumes inbound client events. Both methods are invoked from
// the hub's event loop, one event at a time.
type Handler interface {
	HandleEvent(client *Client, data []byte)
	HandleDisconnect(client *Client)
}

// inboundEvent pairs a raw frame with the connection it arrived on.
type inboundEvent struct {
	client *Client
	data   []byte
}

// Hub maintains the set of active connections and their session groups.
// Connections are keyed by a generated connection ID; groups are keyed by
// session ID and scope broadcasts.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
	groups  map[string]map[*Client]bool

	// Register requests from clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client

	// Inbound frames from clients
	inbound chan inboundEvent

	handler Handler
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		groups:     make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		inbound:    make(chan inboundEvent),
	}
}

// SetHandler installs the event handler. Must be called before Run.
func (h *Hub) SetHandler(handler Handler) {
	h.handler = handler
}

// Run starts the hub's event loop. Inbound events are handled to
// completion one at a time, so no two mutations to the same session
// interleave.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case event := <-h.inbound:
			if h.handler != nil {
				h.handler.HandleEvent(event.client, event.data)
			}
		}
	}
}

// ServeWS handles WebSocket requests from clients
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	client := &Client{
		hub:  h,
		conn: conn,
		send: make(chan []byte, 256),
		id:   uuid.NewString(),
	}

	client.hub.register <- client

	// Start client goroutines
	go client.writePump()
	go client.readPump()
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// JoinGroup adds a client to a session's broadcast group.
func (h *Hub) JoinGroup(sessionID string, client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.groups[sessionID] == nil {
		h.groups[sessionID] = make(map[*Client]bool)
	}
	h.groups[sessionID][client] = true
	client.sessionID = sessionID
}

// LeaveGroup removes a client from its session's broadcast group.
func (h *Hub) LeaveGroup(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.leaveGroupLocked(client)
}

// RemoveGroup drops a whole broadcast group, detaching any clients still
// in it.
func (h *Hub) RemoveGroup(sessionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.groups[sessionID] {
		client.sessionID = ""
	}
	delete(h.groups, sessionID)
}

// Send emits a named event to a single client.
func (h *Hub) Send(client *Client, event string, data interface{}) {
	payload, err := json.Marshal(&ServerEvent{Event: event, Data: data})
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", event, err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	// Skip clients that already unregistered; their send channel is closed.
	if _, ok := h.clients[client.id]; ok {
		client.enqueue(payload)
	}
}

// Broadcast emits a named event to every member of a session's group.
func (h *Hub) Broadcast(sessionID string, event string, data interface{}) {
	h.broadcast(sessionID, nil, event, data)
}

// BroadcastExcept emits a named event to every group member except one.
func (h *Hub) BroadcastExcept(sessionID string, except *Client, event string, data interface{}) {
	h.broadcast(sessionID, except, event, data)
}

func (h *Hub) broadcast(sessionID string, except *Client, event string, data interface{}) {
	payload, err := json.Marshal(&ServerEvent{Event: event, Data: data})
	if err != nil {
		log.Printf("Failed to marshal %s broadcast: %v", event, err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.groups[sessionID] {
		if client == except {
			continue
		}
		client.enqueue(payload)
	}
}

// registerClient adds a connection to the hub
func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client.id] = client
	log.Printf("Client %s connected (total clients: %d)", client.id, len(h.clients))
}

// unregisterClient removes a connection and notifies the handler once
func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	if _, ok := h.clients[client.id]; !ok {
		h.mu.Unlock()
		return
	}
	delete(h.clients, client.id)
	h.leaveGroupLocked(client)
	close(client.send)
	remaining := len(h.clients)
	h.mu.Unlock()

	log.Printf("Client %s disconnected (remaining clients: %d)", client.id, remaining)

	if h.handler != nil {
		h.handler.HandleDisconnect(client)
	}
}

// leaveGroupLocked detaches a client from its group. Callers must hold
// the write lock.
func (h *Hub) leaveGroupLocked(client *Client) {
	if client.sessionID == "" {
		return
	}

	if members, ok := h.groups[client.sessionID]; ok {
		delete(members, client)
		if len(members) == 0 {
			delete(h.groups, client.sessionID)
		}
	}
	client.sessionID = ""
}
