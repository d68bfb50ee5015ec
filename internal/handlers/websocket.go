package handlers

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"github.com/arnold/weeklygoals-api/internal/middleware"
)

// Event types sent over WebSocket
const (
	EventGoalCreated   = "goal_created"
	EventGoalUpdated   = "goal_updated"
	EventGoalsCleared  = "goals_cleared"
	EventStreakUpdated = "streak_updated"
)

// WSEvent is the JSON message sent to connected clients
type WSEvent struct {
	Type      string      `json:"type"`
	GoalID    string      `json:"goalId,omitempty"`
	SessionID string      `json:"sessionId,omitempty"`
	Data      interface{} `json:"data,omitempty"`
}

// connection wraps a websocket connection with its session ID
type connection struct {
	conn      wsWriter
	sessionID uuid.UUID

	// writes to one conn must not overlap
	writeMu sync.Mutex
}

type wsWriter interface {
	WriteMessage(messageType int, data []byte) error
}

func (c *connection) write(msg []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, msg)
}

// Hub fans out data changes to every open screen.
type Hub struct {
	mu    sync.RWMutex
	conns map[*connection]bool
}

func NewHub() *Hub {
	return &Hub{
		conns: make(map[*connection]bool),
	}
}

func (h *Hub) register(conn *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[conn] = true
	log.Printf("WS register: session %s connected (total: %d)", conn.sessionID, len(h.conns))
}

func (h *Hub) unregister(conn *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, conn)
	log.Printf("WS unregister: session %s left (remaining: %d)", conn.sessionID, len(h.conns))
}

// Count returns the number of open connections.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

// Broadcast sends an event to all connections except the sender's session.
// uuid.Nil excludes nobody.
func (h *Hub) Broadcast(excludeSessionID uuid.UUID, event WSEvent) {
	if h == nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.conns) == 0 {
		return
	}
	if excludeSessionID != uuid.Nil {
		event.SessionID = excludeSessionID.String()
	}
	log.Printf("WS broadcast: %s to %d connection(s)", event.Type, len(h.conns))

	msg, err := json.Marshal(event)
	if err != nil {
		log.Printf("WS broadcast marshal error: %v", err)
		return
	}

	for c := range h.conns {
		if excludeSessionID != uuid.Nil && c.sessionID == excludeSessionID {
			continue
		}
		if err := c.write(msg); err != nil {
			log.Printf("WS write error: %v", err)
		}
	}
}

// WebSocketUpgrade checks the upgrade request and, when auth is enabled,
// validates the session token.
func WebSocketUpgrade(secret string, authEnabled bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}

		if !authEnabled {
			c.Locals("sessionId", uuid.Nil)
			return c.Next()
		}

		// Authenticate via query param: ?token=<jwt>
		tokenString := c.Query("token")
		if tokenString == "" {
			// Also check Authorization header for non-browser clients
			tokenString = middleware.BearerToken(c)
		}

		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing authentication token",
			})
		}

		claims, err := middleware.ParseToken(secret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		c.Locals("sessionId", claims.SessionID)
		return c.Next()
	}
}

// HandleWebSocket keeps a connection registered until the client goes away.
func (h *Handler) HandleWebSocket(c *websocket.Conn) {
	sessionID, _ := c.Locals("sessionId").(uuid.UUID)

	conn := &connection{conn: c, sessionID: sessionID}
	h.Hub.register(conn)
	defer h.Hub.unregister(conn)

	// Keep connection alive, read messages (client sends pings/keepalives)
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}
}
