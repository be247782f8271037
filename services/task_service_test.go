// file: services/task_service_test.go
package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"campaign-crm/models"
	"campaign-crm/services"
)

// Test creation applies priority/status defaults and server timestamps
func TestCreateTask_Defaults(t *testing.T) {
	store := services.NewStore()

	task := store.CreateTask(models.InsertTask{Title: "Print flyers", CreatedBy: "u1"})

	assert.NotEmpty(t, task.ID)
	assert.Equal(t, "medium", task.Priority)
	assert.Equal(t, "pending", task.Status)
	assert.False(t, task.CreatedAt.IsZero())
}

// Test an unresolvable creator falls back to "Unknown" instead of failing
func TestTaskEnrichment_UnknownCreator(t *testing.T) {
	store := services.NewStore()

	task := store.CreateTask(models.InsertTask{Title: "Orphaned", CreatedBy: "ghost"})

	assert.Equal(t, "ghost", task.Creator.ID)
	assert.Equal(t, "Unknown", task.Creator.Username)
	assert.Nil(t, task.Assignee, "no assignee info without an assignedTo id")
}

// Test assignee and creator resolve to display info from the user table
func TestTaskEnrichment_ResolvedUsers(t *testing.T) {
	store := services.NewStore()
	creator, err := store.CreateUser("organizer", "pw")
	assert.NoError(t, err)
	assignee, err := store.CreateUser("fieldvol", "pw")
	assert.NoError(t, err)

	task := store.CreateTask(models.InsertTask{Title: "Knock doors", CreatedBy: creator.ID, AssignedTo: assignee.ID})

	assert.Equal(t, "organizer", task.Creator.Username)
	if assert.NotNil(t, task.Assignee) {
		assert.Equal(t, "fieldvol", task.Assignee.Username)
	}
}

// Test tasks list newest first
func TestGetTasks_SortedByCreatedAtDesc(t *testing.T) {
	store := services.NewStore()
	store.CreateTask(models.InsertTask{Title: "older", CreatedBy: "u"})
	time.Sleep(2 * time.Millisecond)
	store.CreateTask(models.InsertTask{Title: "newer", CreatedBy: "u"})

	tasks, total := store.GetTasks(models.TaskFilter{}, models.Page{})
	assert.Equal(t, 2, total)
	assert.Equal(t, "newer", tasks[0].Title)
	assert.Equal(t, "older", tasks[1].Title)
}

// Test filtering by assignee, creator, priority and search together
func TestGetTasks_Filters(t *testing.T) {
	store := services.NewStore()
	store.CreateTask(models.InsertTask{Title: "Call donors", CreatedBy: "u1", AssignedTo: "u2", Priority: "high"})
	store.CreateTask(models.InsertTask{Title: "Call vendors", CreatedBy: "u1", AssignedTo: "u3", Priority: "high"})
	store.CreateTask(models.InsertTask{Title: "File paperwork", CreatedBy: "u2", AssignedTo: "u2", Priority: "low"})

	tasks, total := store.GetTasks(models.TaskFilter{AssignedTo: "u2", Priority: "high"}, models.Page{})
	assert.Equal(t, 1, total)
	assert.Equal(t, "Call donors", tasks[0].Title)

	tasks, total = store.GetTasks(models.TaskFilter{Search: "CALL"}, models.Page{})
	assert.Equal(t, 2, total)
	assert.Len(t, tasks, 2)
}

// Test shallow merge on update, with the updated timestamp bumped
func TestUpdateTask_Merge(t *testing.T) {
	store := services.NewStore()
	task := store.CreateTask(models.InsertTask{Title: "Draft speech", CreatedBy: "u1", Priority: "urgent"})

	status := "in_progress"
	updated, ok := store.UpdateTask(task.ID, models.TaskPatch{Status: &status})
	assert.True(t, ok)
	assert.Equal(t, "in_progress", updated.Status)
	assert.Equal(t, "urgent", updated.Priority)
	assert.Equal(t, "Draft speech", updated.Title)
	assert.False(t, updated.UpdatedAt.Before(task.UpdatedAt))

	_, ok = store.UpdateTask("missing", models.TaskPatch{Status: &status})
	assert.False(t, ok)
}

// Test delete removes the task and reports the outcome
func TestDeleteTask(t *testing.T) {
	store := services.NewStore()
	task := store.CreateTask(models.InsertTask{Title: "Temp", CreatedBy: "u1"})

	assert.True(t, store.DeleteTask(task.ID))
	_, ok := store.GetTask(task.ID)
	assert.False(t, ok)
	assert.False(t, store.DeleteTask(task.ID))
}
