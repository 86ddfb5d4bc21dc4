package handlers

import (
	"net/http"
	"time"

	"taskhub-api/internal/service"
	"taskhub-api/internal/store"

	"github.com/gin-gonic/gin"
)

// TaskHandler serves the task lifecycle and dashboard endpoints.
type TaskHandler struct {
	lifecycle *service.TaskService
	dashboard *service.DashboardService
	users     store.UserStore
}

// NewTaskHandler wires a TaskHandler.
func NewTaskHandler(lifecycle *service.TaskService, dashboard *service.DashboardService, users store.UserStore) *TaskHandler {
	return &TaskHandler{lifecycle: lifecycle, dashboard: dashboard, users: users}
}

// CreateTaskRequest represents the request payload for creating a task
type CreateTaskRequest struct {
	Title    string    `json:"title" binding:"required"`
	Team     []string  `json:"team"`
	Stage    string    `json:"stage" binding:"required"`
	Date     time.Time `json:"date"`
	Priority string    `json:"priority"`
	Assets   []string  `json:"assets"`
}

// Create handles POST /api/tasks/create
// Creates a task and fans out one notice to the team.
func (h *TaskHandler) Create(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": err.Error()})
		return
	}

	task, err := h.lifecycle.Create(service.CreateTaskInput{
		Title:    req.Title,
		Team:     req.Team,
		Stage:    req.Stage,
		Date:     req.Date,
		Priority: req.Priority,
		Assets:   req.Assets,
	}, c.GetString("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  true,
		"task":    task,
		"message": "Task created successfully.",
	})
}

// Duplicate handles POST /api/tasks/duplicate/:id
func (h *TaskHandler) Duplicate(c *gin.Context) {
	if _, err := h.lifecycle.Duplicate(c.Param("id"), c.GetString("user_id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  true,
		"message": "Task duplicated successfully.",
	})
}

// PostActivityRequest represents an activity log entry payload
type PostActivityRequest struct {
	Type     string `json:"type" binding:"required"`
	Activity string `json:"activity"`
}

// PostActivity handles POST /api/tasks/activity/:id
func (h *TaskHandler) PostActivity(c *gin.Context) {
	var req PostActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": err.Error()})
		return
	}

	if err := h.lifecycle.PostActivity(c.Param("id"), req.Type, req.Activity, c.GetString("user_id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  true,
		"message": "Activity posted successfully.",
	})
}

// Dashboard handles GET /api/tasks/dashboard
func (h *TaskHandler) Dashboard(c *gin.Context) {
	summary, err := h.dashboard.Summarize(c.GetString("user_id"), c.GetBool("is_admin"))
	if err != nil {
		respondError(c, err)
		return
	}

	byID, err := userIndex(h.users)
	if err != nil {
		respondError(c, err)
		return
	}
	last10 := make([]TaskView, 0, len(summary.Last10Task))
	for _, t := range summary.Last10Task {
		last10 = append(last10, newTaskView(t, byID))
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     true,
		"message":    "Successfully",
		"totalTasks": summary.TotalTasks,
		"last10Task": last10,
		"users":      summary.Users,
		"tasks":      summary.TasksByStage,
		"graphData":  summary.GraphData,
	})
}

// List handles GET /api/tasks?stage=&isTrashed=
func (h *TaskHandler) List(c *gin.Context) {
	stage := c.Query("stage")
	isTrashed := c.DefaultQuery("isTrashed", "false") == "true"

	tasks, err := h.lifecycle.List(stage, isTrashed)
	if err != nil {
		respondError(c, err)
		return
	}

	byID, err := userIndex(h.users)
	if err != nil {
		respondError(c, err)
		return
	}
	views := make([]TaskView, 0, len(tasks))
	for _, t := range tasks {
		views = append(views, newTaskView(t, byID))
	}

	c.JSON(http.StatusOK, gin.H{
		"status": true,
		"tasks":  views,
	})
}

// Get handles GET /api/tasks/:id
// Trashed tasks are not visible here.
func (h *TaskHandler) Get(c *gin.Context) {
	task, err := h.lifecycle.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	byID, err := userIndex(h.users)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": true,
		"task":   newTaskDetail(*task, byID),
	})
}

// SubTaskRequest represents a sub-task payload
type SubTaskRequest struct {
	Title string    `json:"title" binding:"required"`
	Date  time.Time `json:"date"`
	Tag   string    `json:"tag"`
}

// AddSubTask handles PUT /api/tasks/create-subtask/:id
func (h *TaskHandler) AddSubTask(c *gin.Context) {
	var req SubTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": err.Error()})
		return
	}

	if err := h.lifecycle.AddSubTask(c.Param("id"), req.Title, req.Date, req.Tag); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  true,
		"message": "SubTask added successfully.",
	})
}

// UpdateTaskRequest represents the full replacement payload for an update
type UpdateTaskRequest struct {
	Title    string    `json:"title" binding:"required"`
	Date     time.Time `json:"date"`
	Team     []string  `json:"team"`
	Stage    string    `json:"stage" binding:"required"`
	Priority string    `json:"priority" binding:"required"`
	Assets   []string  `json:"assets"`
}

// Update handles PUT /api/tasks/update/:id
// Fields are replaced wholesale; omitted fields are cleared.
func (h *TaskHandler) Update(c *gin.Context) {
	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": err.Error()})
		return
	}

	_, err := h.lifecycle.Update(c.Param("id"), service.UpdateTaskInput{
		Title:    req.Title,
		Date:     req.Date,
		Team:     req.Team,
		Stage:    req.Stage,
		Priority: req.Priority,
		Assets:   req.Assets,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  true,
		"message": "Task updated successfully.",
	})
}

// Trash handles PUT /api/tasks/:id
func (h *TaskHandler) Trash(c *gin.Context) {
	if err := h.lifecycle.Trash(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  true,
		"message": "Task moved to trash.",
	})
}

// Recover handles GET /api/tasks/recover/:id
// Restoring a task that is not trashed is rejected.
func (h *TaskHandler) Recover(c *gin.Context) {
	if err := h.lifecycle.Restore(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  true,
		"message": "Task recovered successfully.",
	})
}

// DeleteRestore handles DELETE /api/tasks/delete-restore/:id?
// Dispatches on actionType: delete, deleteAll, restore, restoreAll.
func (h *TaskHandler) DeleteRestore(c *gin.Context) {
	actionType := c.Query("actionType")

	count, err := h.lifecycle.DeleteRestore(actionType, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	resp := gin.H{
		"status":  true,
		"message": "Operation performed successfully.",
	}
	if actionType == service.ActionDeleteAll || actionType == service.ActionRestoreAll {
		resp["count"] = count
	}
	c.JSON(http.StatusOK, resp)
}
