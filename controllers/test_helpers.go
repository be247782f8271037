// file: controllers/test_helpers.go
package controllers

import (
	"time"

	"campaign-crm/models"
)

// shared fixture builders for the controller tests

func personInsert(name string) models.InsertPerson {
	return models.InsertPerson{Name: name}
}

func eventInsert(title string, start time.Time) models.InsertEvent {
	return models.InsertEvent{
		Title:     title,
		EventType: "rally",
		StartDate: start,
	}
}

func taskInsert(title, createdBy string) models.InsertTask {
	return models.InsertTask{Title: title, CreatedBy: createdBy}
}
