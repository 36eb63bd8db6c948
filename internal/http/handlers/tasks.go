package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"skillsync/internal/schema"
	"skillsync/internal/storage"
)

func (h *Handler) ListTasks(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	tasks, err := h.Store.ListTasks(c.Request.Context(), uid)
	if err != nil {
		storageError(c, "list tasks", err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (h *Handler) CreateTask(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	var in schema.TaskCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	v, err := in.Validate()
	if err != nil {
		badRequest(c, "invalid task data", err)
		return
	}

	task, err := h.Store.CreateTask(c.Request.Context(), uid, v)
	if err != nil {
		storageError(c, "create task", err)
		return
	}
	h.publish(uid, "created", "task", task.ID, task)
	c.JSON(http.StatusCreated, task)
}

func (h *Handler) UpdateTask(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}

	ctx := c.Request.Context()

	// Not-owned reads the same as absent, so ids are not probeable.
	task, err := h.Store.GetTask(ctx, id)
	if errors.Is(err, storage.ErrNotFound) || (err == nil && task.UserID != uid) {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	if err != nil {
		storageError(c, "get task", err)
		return
	}

	var in schema.TaskPatch
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	ch, err := in.Validate()
	if err != nil {
		badRequest(c, "invalid task data", err)
		return
	}

	updated, err := h.Store.UpdateTask(ctx, id, ch)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	if err != nil {
		storageError(c, "update task", err)
		return
	}
	h.publish(uid, "updated", "task", updated.ID, updated)
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteTask(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}

	ctx := c.Request.Context()

	task, err := h.Store.GetTask(ctx, id)
	if errors.Is(err, storage.ErrNotFound) || (err == nil && task.UserID != uid) {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	if err != nil {
		storageError(c, "get task", err)
		return
	}

	if err := h.Store.DeleteTask(ctx, id); err != nil {
		storageError(c, "delete task", err)
		return
	}
	h.publish(uid, "deleted", "task", id, nil)
	c.Status(http.StatusNoContent)
}
