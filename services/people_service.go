// Package services: services/people_service.go
package services

import (
	"campaign-crm/logger"
	"campaign-crm/models"
)

// default page size for people lists
const defaultPeopleLimit = 10

// PeopleServiceInterface is the people-facing slice of the store, as seen by
// the HTTP layer.
type PeopleServiceInterface interface {
	GetPeople(filter models.PersonFilter, page models.Page) ([]models.Person, int)
	GetPerson(id string) (models.Person, bool)
	CreatePerson(in models.InsertPerson) models.Person
	UpdatePerson(id string, patch models.PersonPatch) (models.Person, bool)
	DeletePerson(id string) bool
	CheckDuplicates(email, phone string) models.DuplicateCheck
}

// GetPeople returns the filtered people page plus the total count of the
// filtered set before pagination. Filters are conjunctive; people keep
// insertion order.
func (s *Store) GetPeople(filter models.PersonFilter, page models.Page) ([]models.Person, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := make([]models.Person, 0, len(s.people))
	for _, p := range s.people {
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		if filter.VolunteerLevel != "" && p.VolunteerLevel != filter.VolunteerLevel {
			continue
		}
		if filter.Location != "" && p.Location != filter.Location {
			continue
		}
		if filter.Search != "" && !anyContainsFold(filter.Search, p.Name, p.Email, p.Phone, p.Location) {
			continue
		}
		matched = append(matched, p)
	}

	total := len(matched)
	return paginate(matched, page, defaultPeopleLimit), total
}

// GetPerson looks up a single person by id.
func (s *Store) GetPerson(id string) (models.Person, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.people {
		if p.ID == id {
			return p, true
		}
	}
	return models.Person{}, false
}

// CreatePerson stores a new person with a fresh id, applying the declared
// defaults for status and volunteer level.
func (s *Store) CreatePerson(in models.InsertPerson) models.Person {
	s.mu.Lock()
	defer s.mu.Unlock()

	person := models.Person{
		ID:             s.newID(),
		Name:           in.Name,
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Email:          in.Email,
		Phone:          in.Phone,
		Location:       in.Location,
		Status:         in.Status,
		VolunteerLevel: in.VolunteerLevel,
		LastContact:    in.LastContact,
	}
	if person.Status == "" {
		person.Status = "active"
	}
	if person.VolunteerLevel == "" {
		person.VolunteerLevel = "new"
	}

	s.people = append(s.people, person)
	logger.Debug.Printf("CreatePerson: created %s (%s)", person.Name, person.ID)
	return person
}

// UpdatePerson shallow-merges the patch onto the stored record: provided
// fields fully replace prior values, omitted fields stay untouched.
func (s *Store) UpdatePerson(id string, patch models.PersonPatch) (models.Person, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.people {
		if s.people[i].ID != id {
			continue
		}
		p := &s.people[i]
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.FirstName != nil {
			p.FirstName = *patch.FirstName
		}
		if patch.LastName != nil {
			p.LastName = *patch.LastName
		}
		if patch.Email != nil {
			p.Email = *patch.Email
		}
		if patch.Phone != nil {
			p.Phone = *patch.Phone
		}
		if patch.Location != nil {
			p.Location = *patch.Location
		}
		if patch.Status != nil {
			p.Status = *patch.Status
		}
		if patch.VolunteerLevel != nil {
			p.VolunteerLevel = *patch.VolunteerLevel
		}
		if patch.LastContact != nil {
			p.LastContact = patch.LastContact
		}
		return *p, true
	}
	return models.Person{}, false
}

// DeletePerson removes the record and reports whether it existed.
func (s *Store) DeletePerson(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.people {
		if s.people[i].ID == id {
			s.people = append(s.people[:i], s.people[i+1:]...)
			logger.Debug.Printf("DeletePerson: removed %s", id)
			return true
		}
	}
	return false
}

// CheckDuplicates scans all people for an exact email or phone match. An
// empty argument is automatically a non-match; this warns during creation,
// it never blocks it.
func (s *Store) CheckDuplicates(email, phone string) models.DuplicateCheck {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result models.DuplicateCheck
	for _, p := range s.people {
		if email != "" && p.Email == email {
			result.EmailExists = true
		}
		if phone != "" && p.Phone == phone {
			result.PhoneExists = true
		}
	}
	return result
}
