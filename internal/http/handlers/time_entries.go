package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"skillsync/internal/schema"
	"skillsync/internal/storage"
)

func (h *Handler) ListTimeEntries(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	entries, err := h.Store.ListTimeEntries(c.Request.Context(), uid)
	if err != nil {
		storageError(c, "list time entries", err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *Handler) CreateTimeEntry(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	var in schema.TimeEntryCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	v, err := in.Validate()
	if err != nil {
		badRequest(c, "invalid time entry data", err)
		return
	}

	entry, err := h.Store.CreateTimeEntry(c.Request.Context(), uid, v)
	if err != nil {
		storageError(c, "create time entry", err)
		return
	}
	h.publish(uid, "created", "timeEntry", entry.ID, entry)
	c.JSON(http.StatusCreated, entry)
}

// UpdateTimeEntry closes or adjusts an entry; the timer UI patches endTime
// and duration when the user stops tracking.
func (h *Handler) UpdateTimeEntry(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "time entry not found"})
		return
	}

	ctx := c.Request.Context()

	entry, err := h.Store.GetTimeEntry(ctx, id)
	if errors.Is(err, storage.ErrNotFound) || (err == nil && entry.UserID != uid) {
		c.JSON(http.StatusNotFound, gin.H{"error": "time entry not found"})
		return
	}
	if err != nil {
		storageError(c, "get time entry", err)
		return
	}

	var in schema.TimeEntryPatch
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	ch, err := in.Validate()
	if err != nil {
		badRequest(c, "invalid time entry data", err)
		return
	}

	updated, err := h.Store.UpdateTimeEntry(ctx, id, ch)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "time entry not found"})
		return
	}
	if err != nil {
		storageError(c, "update time entry", err)
		return
	}
	h.publish(uid, "updated", "timeEntry", updated.ID, updated)
	c.JSON(http.StatusOK, updated)
}
