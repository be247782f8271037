// Package services: services/user_service.go
package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"campaign-crm/models"
)

// UserServiceInterface is the user-facing slice of the store. Users are only
// ever referenced by id from tasks; there is no cascading behavior.
type UserServiceInterface interface {
	GetUsers() []models.UserInfo
	GetUser(id string) (models.User, bool)
	GetUserByUsername(username string) (models.User, bool)
	CreateUser(username, password string) (models.User, error)
}

// GetUsers returns the display info for every user, in insertion order.
func (s *Store) GetUsers() []models.UserInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	infos := make([]models.UserInfo, 0, len(s.users))
	for _, u := range s.users {
		infos = append(infos, models.UserInfo{ID: u.ID, Username: u.Username})
	}
	return infos
}

// GetUser looks up a user by id.
func (s *Store) GetUser(id string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// GetUserByUsername looks up a user by its unique username.
func (s *Store) GetUserByUsername(username string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			return u, true
		}
	}
	return models.User{}, false
}

// CreateUser stores a new user with a bcrypt-hashed password. Usernames are
// unique.
func (s *Store) CreateUser(username, password string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			return models.User{}, errors.New("username already taken")
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		ID:       s.newID(),
		Username: username,
		Password: string(hashed),
	}
	s.users = append(s.users, user)
	return user, nil
}

// CheckPassword verifies a plain-text password against the stored hash.
func CheckPassword(user models.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) == nil
}
