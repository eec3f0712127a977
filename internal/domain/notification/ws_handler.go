package notification

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"barbershop/internal/pkg/jwt"
	"barbershop/internal/pkg/response"
)

// WSHandler upgrades authenticated requests to a live notification stream.
type WSHandler struct {
	hub      *Hub
	tokens   *jwt.Service
	upgrader websocket.Upgrader
	log      *zap.Logger
}

// NewWSHandler accepts any Origin when allowedOrigins is empty.
func NewWSHandler(hub *Hub, tokens *jwt.Service, allowedOrigins []string, log *zap.Logger) *WSHandler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}

	return &WSHandler{
		hub:    hub,
		tokens: tokens,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return len(allowed) == 0 || origin == "" || allowed[origin]
			},
		},
		log: log,
	}
}

// HandleWebSocket authenticates with ?token= because browsers cannot set headers on the upgrade.
// GET /api/v1/ws/notifications?token=JWT
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "token query parameter is required")
		return
	}

	claims, err := h.tokens.ValidateToken(token)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired token")
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	h.log.Debug("notification socket opened", zap.Int64("user_id", claims.UserID))
	h.hub.Serve(conn, claims.UserID)
}
