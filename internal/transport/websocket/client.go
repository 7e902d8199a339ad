package websocket

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/iamasit07/anti-4-in-a-row/internal/domain"
)

const writeWait = 10 * time.Second

// ConnectionManager keeps at most one live socket per match.
type ConnectionManager struct {
	connections map[string]*websocket.Conn

	// conn.WriteJSON is not safe for concurrent use
	writeMu map[string]*sync.Mutex

	mu sync.RWMutex // Protects the maps themselves
}

func NewConnectionManager() *ConnectionManager {
	return &ConnectionManager{
		connections: make(map[string]*websocket.Conn),
		writeMu:     make(map[string]*sync.Mutex),
	}
}

// AddConnection registers conn for the match, replacing and closing any
// older socket.
func (cm *ConnectionManager) AddConnection(matchID string, conn *websocket.Conn) {
	cm.mu.Lock()
	old, oldExists := cm.connections[matchID]
	oldMu := cm.writeMu[matchID]
	cm.connections[matchID] = conn
	cm.writeMu[matchID] = &sync.Mutex{}
	cm.mu.Unlock()

	if oldExists {
		oldMu.Lock()
		old.SetWriteDeadline(time.Now().Add(writeWait))
		old.WriteJSON(domain.ServerMessage{Type: domain.MessageReplaced, Message: "Match opened elsewhere"})
		oldMu.Unlock()
		old.Close()
	}
}

// RemoveConnectionIfMatching drops conn only if it is still the current
// socket of the match, so an old reader cannot evict its replacement.
func (cm *ConnectionManager) RemoveConnectionIfMatching(matchID string, conn *websocket.Conn) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if currentConn, exists := cm.connections[matchID]; exists && currentConn == conn {
		currentConn.Close()
		delete(cm.connections, matchID)
		delete(cm.writeMu, matchID)
	}
}

func (cm *ConnectionManager) IsCurrentConnection(matchID string, conn *websocket.Conn) bool {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	currentConn, exists := cm.connections[matchID]
	return exists && currentConn == conn
}

// Count returns the number of live sockets.
func (cm *ConnectionManager) Count() int {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return len(cm.connections)
}

// SendMessage writes to the match's current socket. A match without one is
// ignored.
func (cm *ConnectionManager) SendMessage(matchID string, message domain.ServerMessage) error {
	cm.mu.RLock()
	conn, exists := cm.connections[matchID]
	mu, muExists := cm.writeMu[matchID]
	cm.mu.RUnlock()

	if !exists || !muExists {
		return nil
	}

	mu.Lock()
	defer mu.Unlock()

	conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(message)
}

// CloseAll closes every socket, used on shutdown.
func (cm *ConnectionManager) CloseAll() {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	for matchID, conn := range cm.connections {
		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(time.Second))
		conn.Close()
		delete(cm.connections, matchID)
		delete(cm.writeMu, matchID)
	}
}
