// Package controllers file: controllers/tasks_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campaign-crm/logger"
	"campaign-crm/models"
	"campaign-crm/services"
)

// TasksController serves the /api/tasks endpoints.
type TasksController struct {
	Service services.TaskServiceInterface
}

// NewTasksController creates an instance of TasksController.
func NewTasksController(service services.TaskServiceInterface) *TasksController {
	return &TasksController{Service: service}
}

// ListTasks handles GET /api/tasks. Tasks come back sorted by creation time
// descending, assignee and creator info attached.
func (tc *TasksController) ListTasks(c *gin.Context) {
	filter := models.TaskFilter{
		Priority:   c.Query("priority"),
		Status:     c.Query("status"),
		AssignedTo: c.Query("assignedTo"),
		CreatedBy:  c.Query("createdBy"),
		Search:     c.Query("search"),
	}

	tasks, total := tc.Service.GetTasks(filter, pageParams(c))
	c.JSON(http.StatusOK, gin.H{"tasks": tasks, "total": total})
}

// GetTask handles GET /api/tasks/:id.
func (tc *TasksController) GetTask(c *gin.Context) {
	task, ok := tc.Service.GetTask(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}
	c.JSON(http.StatusOK, task)
}

// CreateTask handles POST /api/tasks.
func (tc *TasksController) CreateTask(c *gin.Context) {
	var in models.InsertTask
	if err := c.ShouldBindJSON(&in); err != nil {
		logger.Warn.Printf("CreateTask: rejected payload: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task data"})
		return
	}

	task := tc.Service.CreateTask(in)
	c.JSON(http.StatusCreated, task)
}

// UpdateTask handles PATCH /api/tasks/:id.
func (tc *TasksController) UpdateTask(c *gin.Context) {
	var patch models.TaskPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		logger.Warn.Printf("UpdateTask: rejected payload: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task data"})
		return
	}

	task, ok := tc.Service.UpdateTask(c.Param("id"), patch)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}
	c.JSON(http.StatusOK, task)
}

// DeleteTask handles DELETE /api/tasks/:id.
func (tc *TasksController) DeleteTask(c *gin.Context) {
	if !tc.Service.DeleteTask(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
