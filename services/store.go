// Package services: services/store.go
package services

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"campaign-crm/logger"
	"campaign-crm/models"
)

// Store holds every in-memory collection behind a single mutex. Each store
// operation takes the lock for its full duration, so a request's
// read/modify/write sequence is atomic even under concurrent handlers.
// Collections are slices so insertion order is preserved and pagination is
// deterministic. All state is volatile: a restart discards everything.
type Store struct {
	mu            sync.Mutex
	people        []models.Person
	events        []models.Event
	registrations []models.EventRegistration
	tasks         []models.Task
	users         []models.User

	now   func() time.Time
	newID func() string
}

// NewStore creates an empty store. The clock and id generator are fields so
// tests can pin them.
func NewStore() *Store {
	return &Store{
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Seed loads the sample data set: a handful of volunteers across the city
// districts plus the three campaign staff accounts.
func (s *Store) Seed() {
	seedPeople := []models.InsertPerson{
		{Name: "John Smith", FirstName: "John", LastName: "Smith", Email: "john.smith@email.com", Phone: "(555) 123-4567", Location: "Downtown", Status: "active", VolunteerLevel: "core", LastContact: dateptr(2024, 1, 15)},
		{Name: "Maria Garcia", FirstName: "Maria", LastName: "Garcia", Email: "maria.garcia@email.com", Phone: "(555) 234-5678", Location: "Westside", Status: "active", VolunteerLevel: "regular", LastContact: dateptr(2024, 1, 10)},
		{Name: "David Johnson", FirstName: "David", LastName: "Johnson", Email: "david.johnson@email.com", Phone: "(555) 345-6789", Location: "Eastside", Status: "inactive", VolunteerLevel: "new", LastContact: dateptr(2023, 12, 20)},
		{Name: "Sarah Williams", FirstName: "Sarah", LastName: "Williams", Email: "sarah.williams@email.com", Phone: "(555) 456-7890", Location: "Northside", Status: "active", VolunteerLevel: "core", LastContact: dateptr(2024, 1, 12)},
		{Name: "Michael Brown", FirstName: "Michael", LastName: "Brown", Email: "michael.brown@email.com", Phone: "(555) 567-8901", Location: "Downtown", Status: "active", VolunteerLevel: "regular", LastContact: dateptr(2024, 1, 8)},
	}
	for _, p := range seedPeople {
		s.CreatePerson(p)
	}

	for _, username := range []string{"admin", "jdoe", "jsmith"} {
		if _, err := s.CreateUser(username, "changeme"); err != nil {
			logger.Warn.Printf("Seed: could not create user %s: %v", username, err)
		}
	}
	logger.Info.Printf("Seed: loaded %d people and %d users", len(seedPeople), 3)
}

func dateptr(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

// ------------------- shared list helpers -------------------

// paginate returns the 1-indexed window [(page-1)*limit, (page-1)*limit+limit)
// of items. Zero or negative page/limit fall back to page 1 and defaultLimit.
func paginate[T any](items []T, page models.Page, defaultLimit int) []T {
	limit := page.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	p := page.Page
	if p <= 0 {
		p = 1
	}

	start := (p - 1) * limit
	if start >= len(items) {
		return []T{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// containsFold reports whether needle is a case-insensitive substring of
// haystack.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// anyContainsFold applies containsFold across a set of candidate fields.
func anyContainsFold(needle string, fields ...string) bool {
	for _, f := range fields {
		if containsFold(f, needle) {
			return true
		}
	}
	return false
}
