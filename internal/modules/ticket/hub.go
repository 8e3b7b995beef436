package ticket

import (
	"sync"

	"github.com/gorilla/websocket"
)

// StatusEvent is pushed to a ticket's owner whenever the ticket moves
// through the status set.
type StatusEvent struct {
	TicketID int64  `json:"ticketId"`
	Status   string `json:"status"`
}

// Hub tracks one websocket connection per user for ticket updates.
type Hub struct {
	connections map[int64]*websocket.Conn
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[int64]*websocket.Conn),
	}
}

func (h *Hub) Register(userID int64, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if oldConn, exists := h.connections[userID]; exists && oldConn != nil {
		_ = oldConn.Close()
	}

	h.connections[userID] = conn
}

func (h *Hub) Unregister(userID int64) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if conn, exists := h.connections[userID]; exists && conn != nil {
		_ = conn.Close()
		delete(h.connections, userID)
	}
}

// SendToUser writes the event to the user's connection if one exists;
// a write failure drops the connection.
func (h *Hub) SendToUser(userID int64, event StatusEvent) bool {
	h.mutex.RLock()
	conn, exists := h.connections[userID]
	h.mutex.RUnlock()

	if !exists || conn == nil {
		return false
	}

	if err := conn.WriteJSON(event); err != nil {
		h.Unregister(userID)
		return false
	}

	return true
}

func (h *Hub) IsOnline(userID int64) bool {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	_, exists := h.connections[userID]
	return exists
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for userID, conn := range h.connections {
		if conn != nil {
			_ = conn.Close()
		}
		delete(h.connections, userID)
	}
}
