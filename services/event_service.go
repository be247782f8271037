// Package services: services/event_service.go
package services

import (
	"sort"

	"campaign-crm/logger"
	"campaign-crm/models"
)

// default page size for event lists
const defaultEventLimit = 20

// EventServiceInterface is the event-facing slice of the store, registrations
// included.
type EventServiceInterface interface {
	GetEvents(filter models.EventFilter, page models.Page) ([]models.EventWithStats, int)
	GetEvent(id string) (models.EventWithStats, bool)
	CreateEvent(in models.InsertEvent) models.Event
	UpdateEvent(id string, patch models.EventPatch) (models.EventWithStats, bool)
	DeleteEvent(id string) bool
	RegisterForEvent(eventID string, in models.RegisterRequest) (models.EventRegistration, bool)
	GetEventRegistrations(eventID string) ([]models.EventRegistration, bool)
	UpdateRegistrationStatus(id, status string) (models.EventRegistration, bool)
	GetEventStats() models.EventStats
}

// GetEvents returns the filtered events sorted by start date descending, with
// registration counts attached, plus the pre-pagination total.
func (s *Store) GetEvents(filter models.EventFilter, page models.Page) ([]models.EventWithStats, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := make([]models.Event, 0, len(s.events))
	for _, e := range s.events {
		if filter.EventType != "" && e.EventType != filter.EventType {
			continue
		}
		if filter.Status != "" && e.Status != filter.Status {
			continue
		}
		if filter.Location != "" && e.Location != filter.Location {
			continue
		}
		if filter.DateFrom != nil && e.StartDate.Before(*filter.DateFrom) {
			continue
		}
		if filter.DateTo != nil && e.StartDate.After(*filter.DateTo) {
			continue
		}
		if filter.Search != "" && !anyContainsFold(filter.Search, e.Title, e.Description, e.Location) {
			continue
		}
		matched = append(matched, e)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].StartDate.After(matched[j].StartDate)
	})

	total := len(matched)
	pageSlice := paginate(matched, page, defaultEventLimit)

	enriched := make([]models.EventWithStats, 0, len(pageSlice))
	for _, e := range pageSlice {
		enriched = append(enriched, s.withStatsLocked(e))
	}
	return enriched, total
}

// GetEvent looks up a single event, enriched with registration counts.
func (s *Store) GetEvent(id string) (models.EventWithStats, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.events {
		if e.ID == id {
			return s.withStatsLocked(e), true
		}
	}
	return models.EventWithStats{}, false
}

// CreateEvent stores a new event with a fresh id and server-managed
// timestamps. Status defaults to scheduled.
func (s *Store) CreateEvent(in models.InsertEvent) models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	event := models.Event{
		ID:                   s.newID(),
		Title:                in.Title,
		Description:          in.Description,
		EventType:            in.EventType,
		Status:               in.Status,
		StartDate:            in.StartDate,
		EndDate:              in.EndDate,
		Location:             in.Location,
		VirtualLink:          in.VirtualLink,
		MaxCapacity:          in.MaxCapacity,
		RegistrationDeadline: in.RegistrationDeadline,
		CreatedBy:            in.CreatedBy,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if event.Status == "" {
		event.Status = "scheduled"
	}

	s.events = append(s.events, event)
	logger.Debug.Printf("CreateEvent: created %q (%s)", event.Title, event.ID)
	return event
}

// UpdateEvent shallow-merges the patch onto the stored event and bumps
// UpdatedAt.
func (s *Store) UpdateEvent(id string, patch models.EventPatch) (models.EventWithStats, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.events {
		if s.events[i].ID != id {
			continue
		}
		e := &s.events[i]
		if patch.Title != nil {
			e.Title = *patch.Title
		}
		if patch.Description != nil {
			e.Description = *patch.Description
		}
		if patch.EventType != nil {
			e.EventType = *patch.EventType
		}
		if patch.Status != nil {
			e.Status = *patch.Status
		}
		if patch.StartDate != nil {
			e.StartDate = *patch.StartDate
		}
		if patch.EndDate != nil {
			e.EndDate = patch.EndDate
		}
		if patch.Location != nil {
			e.Location = *patch.Location
		}
		if patch.VirtualLink != nil {
			e.VirtualLink = *patch.VirtualLink
		}
		if patch.MaxCapacity != nil {
			e.MaxCapacity = *patch.MaxCapacity
		}
		if patch.RegistrationDeadline != nil {
			e.RegistrationDeadline = patch.RegistrationDeadline
		}
		if patch.CreatedBy != nil {
			e.CreatedBy = *patch.CreatedBy
		}
		e.UpdatedAt = s.now()
		return s.withStatsLocked(*e), true
	}
	return models.EventWithStats{}, false
}

// DeleteEvent removes the event and all registrations referencing it. The
// registrations go first so no orphan can ever be observed.
func (s *Store) DeleteEvent(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.events {
		if s.events[i].ID != id {
			continue
		}

		kept := s.registrations[:0]
		removed := 0
		for _, r := range s.registrations {
			if r.EventID == id {
				removed++
				continue
			}
			kept = append(kept, r)
		}
		s.registrations = kept

		s.events = append(s.events[:i], s.events[i+1:]...)
		logger.Debug.Printf("DeleteEvent: removed %s and %d registrations", id, removed)
		return true
	}
	return false
}

// ------------------- registrations -------------------

// RegisterForEvent creates a registration for the given event. The second
// return value is false if the event does not exist. Status defaults to
// registered.
func (s *Store) RegisterForEvent(eventID string, in models.RegisterRequest) (models.EventRegistration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.eventExistsLocked(eventID) {
		return models.EventRegistration{}, false
	}

	reg := models.EventRegistration{
		ID:                 s.newID(),
		EventID:            eventID,
		PersonID:           in.PersonID,
		RegistrationStatus: in.Status,
		RegisteredAt:       s.now(),
		Notes:              in.Notes,
	}
	if reg.RegistrationStatus == "" {
		reg.RegistrationStatus = "registered"
	}

	s.registrations = append(s.registrations, reg)
	logger.Debug.Printf("RegisterForEvent: person %s registered for event %s", in.PersonID, eventID)
	return reg, true
}

// GetEventRegistrations returns every registration for the given event. The
// second return value is false if the event does not exist.
func (s *Store) GetEventRegistrations(eventID string) ([]models.EventRegistration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.eventExistsLocked(eventID) {
		return nil, false
	}

	regs := make([]models.EventRegistration, 0)
	for _, r := range s.registrations {
		if r.EventID == eventID {
			regs = append(regs, r)
		}
	}
	return regs, true
}

// UpdateRegistrationStatus sets the attendance status on a registration.
func (s *Store) UpdateRegistrationStatus(id, status string) (models.EventRegistration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.registrations {
		if s.registrations[i].ID == id {
			s.registrations[i].RegistrationStatus = status
			return s.registrations[i], true
		}
	}
	return models.EventRegistration{}, false
}

// GetEventStats computes the global aggregate: scheduled events that have not
// started yet, total registration rows, and attended registrations.
func (s *Store) GetEventStats() models.EventStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := models.EventStats{TotalRegistered: len(s.registrations)}
	now := s.now()
	for _, e := range s.events {
		if e.Status == "scheduled" && e.StartDate.After(now) {
			stats.Upcoming++
		}
	}
	for _, r := range s.registrations {
		if r.RegistrationStatus == "attended" {
			stats.TotalAttended++
		}
	}
	return stats
}

// ------------------- internal helpers -------------------

// withStatsLocked attaches the live registration counts to an event. Callers
// must hold s.mu.
func (s *Store) withStatsLocked(e models.Event) models.EventWithStats {
	enriched := models.EventWithStats{Event: e}
	for _, r := range s.registrations {
		if r.EventID != e.ID {
			continue
		}
		enriched.TotalRegistered++
		if r.RegistrationStatus == "attended" {
			enriched.TotalAttended++
		}
	}
	return enriched
}

func (s *Store) eventExistsLocked(id string) bool {
	for _, e := range s.events {
		if e.ID == id {
			return true
		}
	}
	return false
}
