// file: controllers/tasks_controller_test.go
package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"campaign-crm/services"
)

// setup router for TasksController tests, one fresh store per test
func setupTasksTestRouter() (*gin.Engine, *services.Store) {
	gin.SetMode(gin.TestMode)
	store := services.NewStore()
	tc := NewTasksController(store)

	router := gin.New()
	router.GET("/api/tasks", tc.ListTasks)
	router.POST("/api/tasks", tc.CreateTask)
	router.GET("/api/tasks/:id", tc.GetTask)
	router.PATCH("/api/tasks/:id", tc.UpdateTask)
	router.DELETE("/api/tasks/:id", tc.DeleteTask)
	return router, store
}

// test create → get → patch → delete over HTTP, with creator enrichment
func TestTaskLifecycle(t *testing.T) {
	router, store := setupTasksTestRouter()
	creator, err := store.CreateUser("organizer", "pw")
	assert.NoError(t, err)

	w := doJSON(router, "POST", "/api/tasks", gin.H{"title": "Print flyers", "createdBy": creator.ID})
	assert.Equal(t, http.StatusCreated, w.Code)

	var created map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "medium", created["priority"])
	assert.Equal(t, "pending", created["status"])
	id := created["id"].(string)

	taskCreator := created["creator"].(map[string]any)
	assert.Equal(t, "organizer", taskCreator["username"])

	w = doJSON(router, "PATCH", "/api/tasks/"+id, gin.H{"status": "in_progress"})
	assert.Equal(t, http.StatusOK, w.Code)
	var updated map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "in_progress", updated["status"])
	assert.Equal(t, "Print flyers", updated["title"])

	w = doJSON(router, "DELETE", "/api/tasks/"+id, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(router, "GET", "/api/tasks/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Task not found"}`, w.Body.String())
}

// test a creator missing from the user table falls back to "Unknown"
func TestTaskCreatorFallback(t *testing.T) {
	router, _ := setupTasksTestRouter()

	w := doJSON(router, "POST", "/api/tasks", gin.H{"title": "Orphaned", "createdBy": "ghost"})
	assert.Equal(t, http.StatusCreated, w.Code)

	var created map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	taskCreator := created["creator"].(map[string]any)
	assert.Equal(t, "Unknown", taskCreator["username"])
}

// test bodies failing the insert schema or its enums are rejected
func TestCreateTask_InvalidBody(t *testing.T) {
	router, _ := setupTasksTestRouter()

	// createdBy is required
	w := doJSON(router, "POST", "/api/tasks", gin.H{"title": "No creator"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid task data"}`, w.Body.String())

	w = doJSON(router, "POST", "/api/tasks", gin.H{"title": "T", "createdBy": "u1", "priority": "asap"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// test list responds with {tasks, total} and honors filters
func TestListTasks_Shape(t *testing.T) {
	router, store := setupTasksTestRouter()
	store.CreateTask(taskInsert("Call donors", "u1"))
	store.CreateTask(taskInsert("File paperwork", "u2"))

	w := doJSON(router, "GET", "/api/tasks?createdBy=u1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Tasks []map[string]any `json:"tasks"`
		Total int              `json:"total"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Total)
	assert.Equal(t, "Call donors", body.Tasks[0]["title"])
}
