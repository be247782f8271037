// Package controllers file: controllers/people_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campaign-crm/logger"
	"campaign-crm/models"
	"campaign-crm/services"
)

// PeopleController serves the /api/people endpoints.
type PeopleController struct {
	Service services.PeopleServiceInterface
}

// NewPeopleController creates an instance of PeopleController.
func NewPeopleController(service services.PeopleServiceInterface) *PeopleController {
	return &PeopleController{Service: service}
}

// ListPeople handles GET /api/people with optional filter and pagination
// query parameters.
func (pc *PeopleController) ListPeople(c *gin.Context) {
	filter := models.PersonFilter{
		Status:         c.Query("status"),
		VolunteerLevel: c.Query("volunteerLevel"),
		Location:       c.Query("location"),
		Search:         c.Query("search"),
	}

	people, total := pc.Service.GetPeople(filter, pageParams(c))
	c.JSON(http.StatusOK, gin.H{"people": people, "total": total})
}

// GetPerson handles GET /api/people/:id.
func (pc *PeopleController) GetPerson(c *gin.Context) {
	person, ok := pc.Service.GetPerson(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Person not found"})
		return
	}
	c.JSON(http.StatusOK, person)
}

// CreatePerson handles POST /api/people.
func (pc *PeopleController) CreatePerson(c *gin.Context) {
	var in models.InsertPerson
	if err := c.ShouldBindJSON(&in); err != nil {
		logger.Warn.Printf("CreatePerson: rejected payload: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid person data"})
		return
	}

	person := pc.Service.CreatePerson(in)
	c.JSON(http.StatusCreated, person)
}

// UpdatePerson handles PATCH /api/people/:id with a partial body.
func (pc *PeopleController) UpdatePerson(c *gin.Context) {
	var patch models.PersonPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		logger.Warn.Printf("UpdatePerson: rejected payload: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid person data"})
		return
	}

	person, ok := pc.Service.UpdatePerson(c.Param("id"), patch)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Person not found"})
		return
	}
	c.JSON(http.StatusOK, person)
}

// DeletePerson handles DELETE /api/people/:id.
func (pc *PeopleController) DeletePerson(c *gin.Context) {
	if !pc.Service.DeletePerson(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Person not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// CheckDuplicates handles POST /api/people/check-duplicates. It warns the
// caller about exact email/phone matches; creation is never blocked.
func (pc *PeopleController) CheckDuplicates(c *gin.Context) {
	var body struct {
		Email string `json:"email"`
		Phone string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid person data"})
		return
	}

	c.JSON(http.StatusOK, pc.Service.CheckDuplicates(body.Email, body.Phone))
}

// ValidatePerson handles POST /api/people/validate, the server-side mirror of
// the guided creation form. Errors come back keyed by field so the client can
// render them next to the matching input.
func (pc *PeopleController) ValidatePerson(c *gin.Context) {
	var form models.PersonForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid person data"})
		return
	}

	errs := form.Validate()
	c.JSON(http.StatusOK, gin.H{"valid": len(errs) == 0, "errors": errs})
}
