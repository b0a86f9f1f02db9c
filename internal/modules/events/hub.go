package events

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Hub tracks one websocket connection per student. Approval events are
// pushed to the student if connected; a disconnected student simply misses
// the push and sees the change on the next fetch.
type Hub struct {
	connections map[int64]*websocket.Conn
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[int64]*websocket.Conn),
	}
}

func (h *Hub) Register(studentID int64, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if oldConn, exists := h.connections[studentID]; exists && oldConn != nil {
		_ = oldConn.Close()
	}

	h.connections[studentID] = conn
}

func (h *Hub) Unregister(studentID int64) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if conn, exists := h.connections[studentID]; exists && conn != nil {
		_ = conn.Close()
		delete(h.connections, studentID)
	}
}

func (h *Hub) SendToStudent(studentID int64, event any) bool {
	h.mutex.RLock()
	conn, exists := h.connections[studentID]
	h.mutex.RUnlock()

	if !exists || conn == nil {
		return false
	}

	if err := conn.WriteJSON(event); err != nil {
		h.Unregister(studentID)
		return false
	}

	return true
}

func (h *Hub) IsOnline(studentID int64) bool {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	_, exists := h.connections[studentID]
	return exists
}

func (h *Hub) OnlineCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.connections)
}
