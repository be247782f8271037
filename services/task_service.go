// Package services: services/task_service.go
package services

import (
	"sort"

	"campaign-crm/logger"
	"campaign-crm/models"
)

// default page size for task lists
const defaultTaskLimit = 50

// TaskServiceInterface is the task-facing slice of the store.
type TaskServiceInterface interface {
	GetTasks(filter models.TaskFilter, page models.Page) ([]models.TaskWithAssignee, int)
	GetTask(id string) (models.TaskWithAssignee, bool)
	CreateTask(in models.InsertTask) models.TaskWithAssignee
	UpdateTask(id string, patch models.TaskPatch) (models.TaskWithAssignee, bool)
	DeleteTask(id string) bool
}

// GetTasks returns the filtered tasks sorted by creation time descending,
// with assignee/creator info attached, plus the pre-pagination total.
func (s *Store) GetTasks(filter models.TaskFilter, page models.Page) ([]models.TaskWithAssignee, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := make([]models.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if filter.Priority != "" && t.Priority != filter.Priority {
			continue
		}
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		if filter.AssignedTo != "" && t.AssignedTo != filter.AssignedTo {
			continue
		}
		if filter.CreatedBy != "" && t.CreatedBy != filter.CreatedBy {
			continue
		}
		if filter.Search != "" && !anyContainsFold(filter.Search, t.Title, t.Description) {
			continue
		}
		matched = append(matched, t)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := len(matched)
	pageSlice := paginate(matched, page, defaultTaskLimit)

	enriched := make([]models.TaskWithAssignee, 0, len(pageSlice))
	for _, t := range pageSlice {
		enriched = append(enriched, s.enrichTaskLocked(t))
	}
	return enriched, total
}

// GetTask looks up a single task, enriched with assignee/creator info.
func (s *Store) GetTask(id string) (models.TaskWithAssignee, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.tasks {
		if t.ID == id {
			return s.enrichTaskLocked(t), true
		}
	}
	return models.TaskWithAssignee{}, false
}

// CreateTask stores a new task with a fresh id and server-managed
// timestamps. Priority defaults to medium, status to pending.
func (s *Store) CreateTask(in models.InsertTask) models.TaskWithAssignee {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	task := models.Task{
		ID:          s.newID(),
		Title:       in.Title,
		Description: in.Description,
		Priority:    in.Priority,
		Status:      in.Status,
		AssignedTo:  in.AssignedTo,
		CreatedBy:   in.CreatedBy,
		DueDate:     in.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if task.Priority == "" {
		task.Priority = "medium"
	}
	if task.Status == "" {
		task.Status = "pending"
	}

	s.tasks = append(s.tasks, task)
	logger.Debug.Printf("CreateTask: created %q (%s)", task.Title, task.ID)
	return s.enrichTaskLocked(task)
}

// UpdateTask shallow-merges the patch onto the stored task and bumps
// UpdatedAt.
func (s *Store) UpdateTask(id string, patch models.TaskPatch) (models.TaskWithAssignee, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		t := &s.tasks[i]
		if patch.Title != nil {
			t.Title = *patch.Title
		}
		if patch.Description != nil {
			t.Description = *patch.Description
		}
		if patch.Priority != nil {
			t.Priority = *patch.Priority
		}
		if patch.Status != nil {
			t.Status = *patch.Status
		}
		if patch.AssignedTo != nil {
			t.AssignedTo = *patch.AssignedTo
		}
		if patch.DueDate != nil {
			t.DueDate = patch.DueDate
		}
		t.UpdatedAt = s.now()
		return s.enrichTaskLocked(*t), true
	}
	return models.TaskWithAssignee{}, false
}

// DeleteTask removes the task and reports whether it existed.
func (s *Store) DeleteTask(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			logger.Debug.Printf("DeleteTask: removed %s", id)
			return true
		}
	}
	return false
}

// enrichTaskLocked resolves the assignee and creator display info from the
// user collection. An unresolvable user falls back to "Unknown" rather than
// failing the read. Callers must hold s.mu.
func (s *Store) enrichTaskLocked(t models.Task) models.TaskWithAssignee {
	enriched := models.TaskWithAssignee{Task: t}

	if t.AssignedTo != "" {
		info := s.userInfoLocked(t.AssignedTo)
		enriched.Assignee = &info
	}
	enriched.Creator = s.userInfoLocked(t.CreatedBy)
	return enriched
}

func (s *Store) userInfoLocked(id string) models.UserInfo {
	for _, u := range s.users {
		if u.ID == id {
			return models.UserInfo{ID: u.ID, Username: u.Username}
		}
	}
	return models.UserInfo{ID: id, Username: "Unknown"}
}
