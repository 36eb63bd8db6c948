package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"skillsync/internal/schema"
	"skillsync/internal/storage"
)

func (h *Handler) ListMilestones(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	milestones, err := h.Store.ListMilestones(c.Request.Context(), uid)
	if err != nil {
		storageError(c, "list milestones", err)
		return
	}
	c.JSON(http.StatusOK, milestones)
}

func (h *Handler) CreateMilestone(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	var in schema.MilestoneCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	v, err := in.Validate()
	if err != nil {
		badRequest(c, "invalid milestone data", err)
		return
	}

	milestone, err := h.Store.CreateMilestone(c.Request.Context(), uid, v)
	if err != nil {
		storageError(c, "create milestone", err)
		return
	}
	h.publish(uid, "created", "milestone", milestone.ID, milestone)
	c.JSON(http.StatusCreated, milestone)
}

func (h *Handler) UpdateMilestone(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "milestone not found"})
		return
	}

	ctx := c.Request.Context()

	milestone, err := h.Store.GetMilestone(ctx, id)
	if errors.Is(err, storage.ErrNotFound) || (err == nil && milestone.UserID != uid) {
		c.JSON(http.StatusNotFound, gin.H{"error": "milestone not found"})
		return
	}
	if err != nil {
		storageError(c, "get milestone", err)
		return
	}

	var in schema.MilestonePatch
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	ch, err := in.Validate()
	if err != nil {
		badRequest(c, "invalid milestone data", err)
		return
	}

	updated, err := h.Store.UpdateMilestone(ctx, id, ch)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "milestone not found"})
		return
	}
	if err != nil {
		storageError(c, "update milestone", err)
		return
	}
	h.publish(uid, "updated", "milestone", updated.ID, updated)
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteMilestone(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "milestone not found"})
		return
	}

	ctx := c.Request.Context()

	milestone, err := h.Store.GetMilestone(ctx, id)
	if errors.Is(err, storage.ErrNotFound) || (err == nil && milestone.UserID != uid) {
		c.JSON(http.StatusNotFound, gin.H{"error": "milestone not found"})
		return
	}
	if err != nil {
		storageError(c, "get milestone", err)
		return
	}

	if err := h.Store.DeleteMilestone(ctx, id); err != nil {
		storageError(c, "delete milestone", err)
		return
	}
	h.publish(uid, "deleted", "milestone", id, nil)
	c.Status(http.StatusNoContent)
}
