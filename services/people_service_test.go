// file: services/people_service_test.go
package services_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"campaign-crm/models"
	"campaign-crm/services"
)

// Test creation applies declared defaults and a fresh id
func TestCreatePerson_Defaults(t *testing.T) {
	store := services.NewStore()

	person := store.CreatePerson(models.InsertPerson{Name: "A B", Email: "a@b.com"})

	assert.NotEmpty(t, person.ID)
	assert.Equal(t, "active", person.Status)
	assert.Equal(t, "new", person.VolunteerLevel)

	got, ok := store.GetPerson(person.ID)
	assert.True(t, ok)
	assert.Equal(t, person, got)
}

// Test explicit values override the defaults
func TestCreatePerson_ExplicitValues(t *testing.T) {
	store := services.NewStore()

	person := store.CreatePerson(models.InsertPerson{Name: "C D", Status: "inactive", VolunteerLevel: "core"})

	assert.Equal(t, "inactive", person.Status)
	assert.Equal(t, "core", person.VolunteerLevel)
}

// Test shallow merge: patched fields replace, omitted fields survive,
// and applying the same patch twice is idempotent
func TestUpdatePerson_ShallowMerge(t *testing.T) {
	store := services.NewStore()
	person := store.CreatePerson(models.InsertPerson{Name: "John Smith", Email: "john@x.com", Location: "Downtown"})

	inactive := "inactive"
	updated, ok := store.UpdatePerson(person.ID, models.PersonPatch{Status: &inactive})
	assert.True(t, ok)
	assert.Equal(t, "inactive", updated.Status)
	assert.Equal(t, "John Smith", updated.Name)
	assert.Equal(t, "john@x.com", updated.Email)
	assert.Equal(t, "Downtown", updated.Location)

	again, ok := store.UpdatePerson(person.ID, models.PersonPatch{Status: &inactive})
	assert.True(t, ok)
	assert.Equal(t, updated, again)
}

// Test update on a missing id signals not found
func TestUpdatePerson_NotFound(t *testing.T) {
	store := services.NewStore()

	name := "Nobody"
	_, ok := store.UpdatePerson("missing", models.PersonPatch{Name: &name})
	assert.False(t, ok)
}

// Test delete removes the record and reports whether anything was removed
func TestDeletePerson(t *testing.T) {
	store := services.NewStore()
	person := store.CreatePerson(models.InsertPerson{Name: "Temp"})

	assert.True(t, store.DeletePerson(person.ID))

	_, ok := store.GetPerson(person.ID)
	assert.False(t, ok)

	assert.False(t, store.DeletePerson(person.ID))
}

// Test pages 1..N reproduce the full set with no duplicates and a stable total
func TestGetPeople_Pagination(t *testing.T) {
	store := services.NewStore()
	for i := 0; i < 25; i++ {
		store.CreatePerson(models.InsertPerson{Name: fmt.Sprintf("Person %02d", i)})
	}

	seen := map[string]bool{}
	for page := 1; page <= 3; page++ {
		people, total := store.GetPeople(models.PersonFilter{}, models.Page{Page: page, Limit: 10})
		assert.Equal(t, 25, total, "total must be the same on every page")
		for _, p := range people {
			assert.False(t, seen[p.ID], "no person should appear on two pages")
			seen[p.ID] = true
		}
	}
	assert.Len(t, seen, 25)

	// past the last page
	people, total := store.GetPeople(models.PersonFilter{}, models.Page{Page: 4, Limit: 10})
	assert.Equal(t, 25, total)
	assert.Empty(t, people)
}

// Test the default page size of 10 applies when no limit is given
func TestGetPeople_DefaultLimit(t *testing.T) {
	store := services.NewStore()
	for i := 0; i < 12; i++ {
		store.CreatePerson(models.InsertPerson{Name: fmt.Sprintf("P%d", i)})
	}

	people, total := store.GetPeople(models.PersonFilter{}, models.Page{})
	assert.Equal(t, 12, total)
	assert.Len(t, people, 10)
}

// Test free-text search is case-insensitive and matches substrings
func TestGetPeople_SearchCaseInsensitive(t *testing.T) {
	store := services.NewStore()
	store.CreatePerson(models.InsertPerson{Name: "John Smith", Email: "john@x.com"})
	store.CreatePerson(models.InsertPerson{Name: "Maria Garcia"})

	for _, needle := range []string{"john", "SMITH", "smi"} {
		people, total := store.GetPeople(models.PersonFilter{Search: needle}, models.Page{})
		assert.Equal(t, 1, total, "search %q", needle)
		assert.Equal(t, "John Smith", people[0].Name)
	}
}

// Test filters combine conjunctively
func TestGetPeople_FiltersAreConjunctive(t *testing.T) {
	store := services.NewStore()
	store.CreatePerson(models.InsertPerson{Name: "A", Status: "active", Location: "Downtown"})
	store.CreatePerson(models.InsertPerson{Name: "B", Status: "inactive", Location: "Downtown"})
	store.CreatePerson(models.InsertPerson{Name: "C", Status: "active", Location: "Westside"})

	people, total := store.GetPeople(models.PersonFilter{Status: "active", Location: "Downtown"}, models.Page{})
	assert.Equal(t, 1, total)
	assert.Equal(t, "A", people[0].Name)
}

// Test duplicate checking before and after a matching person exists
func TestCheckDuplicates(t *testing.T) {
	store := services.NewStore()

	result := store.CheckDuplicates("x@y.com", "")
	assert.False(t, result.EmailExists)
	assert.False(t, result.PhoneExists)

	store.CreatePerson(models.InsertPerson{Name: "X", Email: "x@y.com", Phone: "555-123-4567"})

	result = store.CheckDuplicates("x@y.com", "555-123-4567")
	assert.True(t, result.EmailExists)
	assert.True(t, result.PhoneExists)

	// absent arguments never match
	result = store.CheckDuplicates("", "")
	assert.False(t, result.EmailExists)
	assert.False(t, result.PhoneExists)
}

// Test the seed data set loads
func TestSeed(t *testing.T) {
	store := services.NewStore()
	store.Seed()

	_, total := store.GetPeople(models.PersonFilter{}, models.Page{})
	assert.Equal(t, 5, total)
	assert.Len(t, store.GetUsers(), 3)
}
