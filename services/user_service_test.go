// file: services/user_service_test.go
package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"campaign-crm/services"
)

// Test passwords are stored hashed and verify correctly
func TestCreateUser_HashesPassword(t *testing.T) {
	store := services.NewStore()

	user, err := store.CreateUser("organizer", "hunter2")
	assert.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "hunter2", user.Password, "plain text must never be stored")

	assert.True(t, services.CheckPassword(user, "hunter2"))
	assert.False(t, services.CheckPassword(user, "wrong"))
}

// Test usernames are unique
func TestCreateUser_DuplicateUsername(t *testing.T) {
	store := services.NewStore()

	_, err := store.CreateUser("organizer", "pw")
	assert.NoError(t, err)

	_, err = store.CreateUser("organizer", "other")
	assert.Error(t, err)
}

// Test lookup by id and by username
func TestGetUser(t *testing.T) {
	store := services.NewStore()
	created, _ := store.CreateUser("fieldvol", "pw")

	byID, ok := store.GetUser(created.ID)
	assert.True(t, ok)
	assert.Equal(t, "fieldvol", byID.Username)

	byName, ok := store.GetUserByUsername("fieldvol")
	assert.True(t, ok)
	assert.Equal(t, created.ID, byName.ID)

	_, ok = store.GetUser("missing")
	assert.False(t, ok)
}
