// Package ws streams a session's history log over WebSocket.
package ws

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/unitbox/unitbox/internal/domain/session"
	"github.com/unitbox/unitbox/internal/infrastructure/logging"
	"github.com/unitbox/unitbox/internal/infrastructure/monitoring"
	"github.com/unitbox/unitbox/internal/shared/types"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins in dev
	},
}

// pingInterval keeps idle connections alive through proxies.
const pingInterval = 30 * time.Second

// Handler manages WebSocket connections
type Handler struct {
	sessions *session.Manager
	metrics  *monitoring.Metrics
	logger   *logging.Logger
}

// NewHandler creates a new WebSocket handler
func NewHandler(sessions *session.Manager, metrics *monitoring.Metrics, logger *logging.Logger) *Handler {
	return &Handler{
		sessions: sessions,
		metrics:  metrics,
		logger:   logger,
	}
}

// HandleConnection upgrades the request and pushes every record appended
// to the session's history until the client disconnects.
func (h *Handler) HandleConnection(c *gin.Context) {
	sessionID := c.Query("session_id")
	s, err := h.sessions.Get(sessionID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("WebSocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	h.metrics.IncWSConnections()
	defer h.metrics.DecWSConnections()

	log := s.Log()
	records := log.Subscribe()
	defer log.Unsubscribe(records)

	h.send(conn, map[string]interface{}{
		"type":       "system",
		"message":    "Connected to history stream",
		"session_id": sessionID,
	})

	// Reader goroutine: detects disconnect and forwards client pings so
	// all writes stay on this goroutine.
	pings := make(chan struct{}, 1)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			var msg types.WSMessage
			if err := conn.ReadJSON(&msg); err != nil {
				return
			}
			if msg.Type == "ping" {
				select {
				case pings <- struct{}{}:
				default:
				}
			}
		}
	}()

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case rec, ok := <-records:
			if !ok {
				return
			}
			if err := h.send(conn, map[string]interface{}{
				"type":   "record",
				"record": rec,
			}); err != nil {
				return
			}
		case <-pings:
			if err := h.send(conn, map[string]interface{}{"type": "pong"}); err != nil {
				return
			}
		case <-ticker.C:
			deadline := time.Now().Add(10 * time.Second)
			if err := conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

func (h *Handler) send(conn *websocket.Conn, data interface{}) error {
	return conn.WriteJSON(data)
}
