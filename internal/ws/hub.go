// Package ws pushes entity change events to the owning user's connected
// clients, so open tabs refresh lists without polling.
package ws

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"skillsync/internal/logger"
)

// Event is a single change notification. Type is created/updated/deleted;
// Resource is task/timeEntry/milestone. Data carries the full row for
// creates and updates, nothing for deletes.
type Event struct {
	Type     string `json:"type"`
	Resource string `json:"resource"`
	ID       int64  `json:"id"`
	Data     any    `json:"data,omitempty"`
}

// Hub tracks connections per user. A user may hold several at once (multiple
// tabs, phone and laptop).
type Hub struct {
	mu      sync.RWMutex
	clients map[int64]map[*client]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[int64]map[*client]struct{})}
}

// Subscribe takes ownership of an upgraded connection and starts its read
// and write pumps.
func (h *Hub) Subscribe(userID int64, conn *websocket.Conn) {
	c := newClient(userID, conn, h)

	h.mu.Lock()
	if h.clients[userID] == nil {
		h.clients[userID] = make(map[*client]struct{})
	}
	h.clients[userID][c] = struct{}{}
	h.mu.Unlock()

	go c.writePump()
	go c.readPump()
}

func (h *Hub) drop(c *client) {
	h.mu.Lock()
	if set, ok := h.clients[c.userID]; ok {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.userID)
		}
	}
	h.mu.Unlock()
}

// Publish sends an event to every connection the owner currently holds.
// Slow clients are disconnected rather than allowed to block the caller.
func (h *Hub) Publish(userID int64, ev Event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		logger.Error("failed to marshal event", "error", err)
		return
	}

	h.mu.RLock()
	targets := make([]*client, 0, len(h.clients[userID]))
	for c := range h.clients[userID] {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	for _, c := range targets {
		if !c.trySend(payload) {
			c.close()
		}
	}
}
