package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"skillsync/internal/auth"
	"skillsync/internal/http/middleware"
	"skillsync/internal/logger"
	"skillsync/internal/schema"
	"skillsync/internal/session"
	"skillsync/internal/storage"
	"skillsync/internal/ws"
)

type Handler struct {
	Store    storage.Store
	Sessions session.Store
	Tokens   *auth.Tokens
	Hub      *ws.Hub

	SessionTTL   time.Duration
	SecureCookie bool
}

func NewHandler(store storage.Store, sessions session.Store, tokens *auth.Tokens, hub *ws.Hub, sessionTTL time.Duration) *Handler {
	return &Handler{
		Store:      store,
		Sessions:   sessions,
		Tokens:     tokens,
		Hub:        hub,
		SessionTTL: sessionTTL,
	}
}

// userID reads the id the auth middleware resolved. The middleware rejects
// anonymous requests, so a miss here is a wiring bug, but it still maps to
// 401 rather than a panic.
func userID(c *gin.Context) (int64, bool) {
	id, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	}
	return id, ok
}

// idParam parses the :id path segment. A non-numeric id can never match a
// row, so it is reported as 404 like any other missing row.
func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// badRequest renders a validation failure. Field-level problems are listed
// under "fields" so the client can mark the offending inputs.
func badRequest(c *gin.Context, msg string, err error) {
	if fields, ok := err.(schema.FieldErrors); ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg, "fields": fields})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

// storageError renders a storage failure as a generic 500. Details go to the
// log, never to the client.
func storageError(c *gin.Context, op string, err error) {
	logger.Error("storage operation failed", "op", op, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

// publish pushes an entity change event to the owner's connected clients.
func (h *Handler) publish(ownerID int64, typ, resource string, id int64, data any) {
	if h.Hub == nil {
		return
	}
	h.Hub.Publish(ownerID, ws.Event{Type: typ, Resource: resource, ID: id, Data: data})
}
