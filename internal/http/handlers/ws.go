package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"skillsync/internal/logger"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The SPA may be served from a different origin than the API.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS upgrades an authenticated request and subscribes the connection to the
// user's entity change feed.
func (h *Handler) WS(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	if h.Hub == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "events unavailable"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	h.Hub.Subscribe(uid, conn)
}
