package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"terratrace-system/internal/middleware"
	"terratrace-system/internal/models"
	"terratrace-system/internal/store"
)

type TaskHandler struct {
	store  store.Storage
	logger *zap.Logger
}

func NewTaskHandler(st store.Storage, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{store: st, logger: logger}
}

type CreateTaskRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	AssignedTo  int64      `json:"assigned_to" binding:"required"`
	DueDate     *time.Time `json:"due_date"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
}

func (h *TaskHandler) Create(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request format"))
		return
	}

	if _, err := h.store.GetUser(req.AssignedTo); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Unknown assignee"))
		return
	}

	status := req.Status
	if status == "" {
		status = "open"
	}
	priority := req.Priority
	if priority == "" {
		priority = "medium"
	}

	task, err := h.store.CreateTask(models.Task{
		Title:       req.Title,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
		DueDate:     req.DueDate,
		Status:      status,
		Priority:    priority,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to create task"))
		return
	}
	c.JSON(http.StatusCreated, successResponse("Task created", task))
}

func (h *TaskHandler) List(c *gin.Context) {
	tasks, err := h.store.ListTasks()
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to list tasks"))
		return
	}
	c.JSON(http.StatusOK, successResponse("Tasks", tasks))
}

func (h *TaskHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	task, err := h.store.GetTask(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, errorResponse("Task not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to get task"))
		return
	}
	c.JSON(http.StatusOK, successResponse("Task", task))
}

func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var update models.TaskUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request format"))
		return
	}

	task, err := h.store.UpdateTask(id, update)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, errorResponse("Task not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to update task"))
		return
	}

	// Marking a task complete produces an audit entry.
	if update.Completed != nil && *update.Completed {
		entityType := "task"
		if _, err := h.store.CreateActivity(models.Activity{
			Type:        "task_completed",
			Description: "Task " + task.Title + " completed",
			UserID:      middleware.UserID(c),
			EntityType:  &entityType,
			EntityID:    &task.ID,
		}); err != nil {
			h.logger.Warn("failed to record activity", zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, successResponse("Task updated", task))
}

func (h *TaskHandler) Upcoming(c *gin.Context) {
	limit, ok := limitQuery(c, 5)
	if !ok {
		return
	}

	tasks, err := h.store.ListUpcomingTasks(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("Failed to list upcoming tasks"))
		return
	}
	c.JSON(http.StatusOK, successResponse("Upcoming tasks", tasks))
}
