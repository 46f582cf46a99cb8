// Package ws streams tool execution over a WebSocket connection.
package ws

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	httpapi "github.com/GriffinCanCode/Algebra/internal/http"
	"github.com/GriffinCanCode/Algebra/internal/logging"
	"github.com/GriffinCanCode/Algebra/internal/monitoring"
	"github.com/GriffinCanCode/Algebra/internal/service"
	"github.com/GriffinCanCode/Algebra/internal/types"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins in dev
	},
}

// Handler manages WebSocket connections
type Handler struct {
	registry *service.Registry
	metrics  *monitoring.Metrics
	logger   *logging.Logger
}

// NewHandler creates a new WebSocket handler
func NewHandler(registry *service.Registry, metrics *monitoring.Metrics, logger *logging.Logger) *Handler {
	return &Handler{
		registry: registry,
		metrics:  metrics,
		logger:   logger,
	}
}

// HandleConnection handles WebSocket upgrade and messages
func (h *Handler) HandleConnection(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	h.metrics.IncWSConnections()
	defer h.metrics.DecWSConnections()

	reqCtx := c.Request.Context()

	h.send(conn, map[string]interface{}{
		"type":    "system",
		"message": "Connected to Algebra Service",
	})

	for {
		var msg types.WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("websocket read error", zap.Error(err))
			}
			break
		}

		h.metrics.RecordWSMessage("in", msg.Type)

		switch msg.Type {
		case "execute":
			timer := monitoring.NewTimer(h.metrics, msg.ToolID)
			result, err := h.registry.Execute(reqCtx, msg.ToolID, msg.Params, nil)
			if err != nil {
				timer.Stop("error")
				h.sendError(conn, err.Error())
				continue
			}
			if result.Success {
				timer.Stop("success")
				httpapi.RecordSentinels(h.metrics, result)
			} else {
				timer.Stop("failure")
			}
			h.send(conn, map[string]interface{}{
				"type":      "result",
				"tool_id":   msg.ToolID,
				"result":    result,
				"timestamp": time.Now().Unix(),
			})
		case "ping":
			h.send(conn, map[string]interface{}{"type": "pong"})
		default:
			h.sendError(conn, "unknown message type")
		}
	}
}

func (h *Handler) send(conn *websocket.Conn, data map[string]interface{}) error {
	if msgType, ok := data["type"].(string); ok {
		h.metrics.RecordWSMessage("out", msgType)
	}
	return conn.WriteJSON(data)
}

func (h *Handler) sendError(conn *websocket.Conn, msg string) error {
	return h.send(conn, map[string]interface{}{
		"type":      "error",
		"message":   msg,
		"timestamp": time.Now().Unix(),
	})
}
