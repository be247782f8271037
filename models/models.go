// Package models defines data structures used across the application.
// File: models/models.go
package models

import "time"

// ----------------------- person model -----------------------

// Person represents a volunteer or contact tracked by the campaign.
type Person struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	FirstName      string     `json:"firstName,omitempty"`
	LastName       string     `json:"lastName,omitempty"`
	Email          string     `json:"email,omitempty"`
	Phone          string     `json:"phone,omitempty"`
	Location       string     `json:"location,omitempty"`
	Status         string     `json:"status"`         // active | inactive
	VolunteerLevel string     `json:"volunteerLevel"` // new | regular | core
	LastContact    *time.Time `json:"lastContact,omitempty"`
}

// InsertPerson is the create payload for a person: the entity minus
// server-generated fields. Status and volunteer level default when omitted.
type InsertPerson struct {
	Name           string     `json:"name" binding:"required"`
	FirstName      string     `json:"firstName"`
	LastName       string     `json:"lastName"`
	Email          string     `json:"email" binding:"omitempty,email"`
	Phone          string     `json:"phone"`
	Location       string     `json:"location"`
	Status         string     `json:"status" binding:"omitempty,oneof=active inactive"`
	VolunteerLevel string     `json:"volunteerLevel" binding:"omitempty,oneof=new regular core"`
	LastContact    *time.Time `json:"lastContact"`
}

// PersonPatch is a partial update. Only non-nil fields are applied;
// server-managed fields are absent by construction.
type PersonPatch struct {
	Name           *string    `json:"name"`
	FirstName      *string    `json:"firstName"`
	LastName       *string    `json:"lastName"`
	Email          *string    `json:"email" binding:"omitempty,email"`
	Phone          *string    `json:"phone"`
	Location       *string    `json:"location"`
	Status         *string    `json:"status" binding:"omitempty,oneof=active inactive"`
	VolunteerLevel *string    `json:"volunteerLevel" binding:"omitempty,oneof=new regular core"`
	LastContact    *time.Time `json:"lastContact"`
}

// PersonFilter narrows a people list query. All set fields must match;
// Search matches case-insensitively against name, email, phone and location.
type PersonFilter struct {
	Status         string
	VolunteerLevel string
	Location       string
	Search         string
}

// DuplicateCheck reports whether an exact email or phone already exists.
type DuplicateCheck struct {
	EmailExists bool `json:"emailExists"`
	PhoneExists bool `json:"phoneExists"`
}

// ------------------------ event model -----------------------

// Event represents a scheduled campaign activity people can register for.
type Event struct {
	ID                   string     `json:"id"`
	Title                string     `json:"title"`
	Description          string     `json:"description,omitempty"`
	EventType            string     `json:"eventType"` // rally, canvassing, phone-banking, ...
	Status               string     `json:"status"`    // scheduled | ongoing | completed | cancelled
	StartDate            time.Time  `json:"startDate"`
	EndDate              *time.Time `json:"endDate,omitempty"`
	Location             string     `json:"location,omitempty"`
	VirtualLink          string     `json:"virtualLink,omitempty"`
	MaxCapacity          string     `json:"maxCapacity,omitempty"`
	RegistrationDeadline *time.Time `json:"registrationDeadline,omitempty"`
	CreatedBy            string     `json:"createdBy,omitempty"`
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            time.Time  `json:"updatedAt"`
}

// EventWithStats is an event enriched with registration counts. The counts
// are computed from the live registration rows at read time, never stored.
type EventWithStats struct {
	Event
	TotalRegistered int `json:"totalRegistered"`
	TotalAttended   int `json:"totalAttended"`
}

// InsertEvent is the create payload for an event.
type InsertEvent struct {
	Title                string     `json:"title" binding:"required"`
	Description          string     `json:"description"`
	EventType            string     `json:"eventType" binding:"required"`
	Status               string     `json:"status" binding:"omitempty,oneof=scheduled ongoing completed cancelled"`
	StartDate            time.Time  `json:"startDate" binding:"required"`
	EndDate              *time.Time `json:"endDate"`
	Location             string     `json:"location"`
	VirtualLink          string     `json:"virtualLink"`
	MaxCapacity          string     `json:"maxCapacity"`
	RegistrationDeadline *time.Time `json:"registrationDeadline"`
	CreatedBy            string     `json:"createdBy"`
}

// EventPatch is a partial update for an event.
type EventPatch struct {
	Title                *string    `json:"title"`
	Description          *string    `json:"description"`
	EventType            *string    `json:"eventType"`
	Status               *string    `json:"status" binding:"omitempty,oneof=scheduled ongoing completed cancelled"`
	StartDate            *time.Time `json:"startDate"`
	EndDate              *time.Time `json:"endDate"`
	Location             *string    `json:"location"`
	VirtualLink          *string    `json:"virtualLink"`
	MaxCapacity          *string    `json:"maxCapacity"`
	RegistrationDeadline *time.Time `json:"registrationDeadline"`
	CreatedBy            *string    `json:"createdBy"`
}

// EventFilter narrows an event list query. DateFrom/DateTo bound the start
// date; Search matches title, description and location.
type EventFilter struct {
	EventType string
	Status    string
	Location  string
	Search    string
	DateFrom  *time.Time
	DateTo    *time.Time
}

// EventStats is the global aggregate over events and registrations.
type EventStats struct {
	Upcoming        int `json:"upcoming"`
	TotalRegistered int `json:"totalRegistered"`
	TotalAttended   int `json:"totalAttended"`
}

// -------------------- registration model --------------------

// EventRegistration links a person to an event with an attendance status.
type EventRegistration struct {
	ID                 string    `json:"id"`
	EventID            string    `json:"eventId"`
	PersonID           string    `json:"personId"`
	RegistrationStatus string    `json:"registrationStatus"` // registered | confirmed | attended | no-show | cancelled
	RegisteredAt       time.Time `json:"registeredAt"`
	Notes              string    `json:"notes,omitempty"`
}

// RegisterRequest is the payload for registering a person for an event.
type RegisterRequest struct {
	PersonID string `json:"personId" binding:"required"`
	Status   string `json:"registrationStatus" binding:"omitempty,oneof=registered confirmed attended no-show cancelled"`
	Notes    string `json:"notes"`
}

// RegistrationStatusUpdate sets a registration's attendance status.
type RegistrationStatusUpdate struct {
	Status string `json:"status" binding:"required,oneof=registered confirmed attended no-show cancelled"`
}

// ------------------------ task model ------------------------

// Task is a unit of work assigned to a user.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Priority    string     `json:"priority"` // low | medium | high | urgent
	Status      string     `json:"status"`   // pending | in_progress | complete
	AssignedTo  string     `json:"assignedTo,omitempty"`
	CreatedBy   string     `json:"createdBy"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// TaskWithAssignee is a task enriched with assignee and creator display info,
// resolved from the user collection at read time.
type TaskWithAssignee struct {
	Task
	Assignee *UserInfo `json:"assignee,omitempty"`
	Creator  UserInfo  `json:"creator"`
}

// InsertTask is the create payload for a task.
type InsertTask struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Priority    string     `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	Status      string     `json:"status" binding:"omitempty,oneof=pending in_progress complete"`
	AssignedTo  string     `json:"assignedTo"`
	CreatedBy   string     `json:"createdBy" binding:"required"`
	DueDate     *time.Time `json:"dueDate"`
}

// TaskPatch is a partial update for a task.
type TaskPatch struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Priority    *string    `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	Status      *string    `json:"status" binding:"omitempty,oneof=pending in_progress complete"`
	AssignedTo  *string    `json:"assignedTo"`
	DueDate     *time.Time `json:"dueDate"`
}

// TaskFilter narrows a task list query. Search matches title and description.
type TaskFilter struct {
	Priority   string
	Status     string
	AssignedTo string
	CreatedBy  string
	Search     string
}

// ------------------------ user model ------------------------

// User is an account referenced by task assignedTo/createdBy fields.
// The password hash never leaves the process.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}

// UserInfo is the public display subset of a user.
type UserInfo struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// ------------------------ pagination ------------------------

// Page is a 1-indexed pagination window. Zero values fall back to page 1 and
// the per-entity default limit.
type Page struct {
	Page  int
	Limit int
}
