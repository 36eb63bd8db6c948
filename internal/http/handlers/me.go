package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"skillsync/internal/storage"
)

func (h *Handler) Me(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	user, err := h.Store.GetUser(c.Request.Context(), uid)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	if err != nil {
		storageError(c, "get user", err)
		return
	}
	c.JSON(http.StatusOK, user)
}
