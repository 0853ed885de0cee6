package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"saathi/internal/logging"
	"saathi/internal/task"
)

// TaskHandler serves direct task CRUD alongside the conversational interface.
type TaskHandler struct {
	service *task.Service
	logger  logging.Logger
}

// NewTaskHandler constructs the task handler.
func NewTaskHandler(service *task.Service) *TaskHandler {
	return &TaskHandler{service: service, logger: logging.NewComponentLogger("TaskHandler")}
}

type taskRequest struct {
	Description string `json:"description" binding:"required"`
}

func taskID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "invalid task id")
		return 0, false
	}
	return id, true
}

func (h *TaskHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, task.ErrNotFound):
		respondError(c, http.StatusNotFound, "task not found")
	case errors.Is(err, task.ErrEmptyDescription), errors.Is(err, task.ErrDescriptionTooLong):
		respondError(c, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("task request failed: %v", err)
		respondError(c, http.StatusInternalServerError, "internal error")
	}
}

// List handles GET /api/tasks?status=all|pending|completed.
func (h *TaskHandler) List(c *gin.Context) {
	user, _ := currentUser(c)
	filter := task.StatusFilter(c.DefaultQuery("status", string(task.StatusAll)))
	tasks, err := h.service.List(c.Request.Context(), user.ID, filter)
	if err != nil {
		h.fail(c, err)
		return
	}
	respondOK(c, tasks)
}

// Create handles POST /api/tasks.
func (h *TaskHandler) Create(c *gin.Context) {
	user, _ := currentUser(c)
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "description is required")
		return
	}
	created, err := h.service.Create(c.Request.Context(), user.ID, req.Description)
	if err != nil {
		h.fail(c, err)
		return
	}
	respondCreated(c, created)
}

// Get handles GET /api/tasks/:id.
func (h *TaskHandler) Get(c *gin.Context) {
	user, _ := currentUser(c)
	id, ok := taskID(c)
	if !ok {
		return
	}
	found, err := h.service.Get(c.Request.Context(), user.ID, id)
	if err != nil {
		h.fail(c, err)
		return
	}
	respondOK(c, found)
}

// Update handles PUT /api/tasks/:id.
func (h *TaskHandler) Update(c *gin.Context) {
	user, _ := currentUser(c)
	id, ok := taskID(c)
	if !ok {
		return
	}
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "description is required")
		return
	}
	updated, err := h.service.UpdateDescription(c.Request.Context(), user.ID, id, req.Description)
	if err != nil {
		h.fail(c, err)
		return
	}
	respondOK(c, updated)
}

// Toggle handles PATCH /api/tasks/:id/toggle.
func (h *TaskHandler) Toggle(c *gin.Context) {
	user, _ := currentUser(c)
	id, ok := taskID(c)
	if !ok {
		return
	}
	toggled, err := h.service.Toggle(c.Request.Context(), user.ID, id)
	if err != nil {
		h.fail(c, err)
		return
	}
	respondOK(c, toggled)
}

// Delete handles DELETE /api/tasks/:id.
func (h *TaskHandler) Delete(c *gin.Context) {
	user, _ := currentUser(c)
	id, ok := taskID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), user.ID, id); err != nil {
		h.fail(c, err)
		return
	}
	respondOK(c, gin.H{"deleted": id})
}
