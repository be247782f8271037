// Package controllers file: controllers/events_controller.go
package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"campaign-crm/logger"
	"campaign-crm/models"
	"campaign-crm/services"
)

// EventsController serves the /api/events and /api/registrations endpoints.
type EventsController struct {
	Service services.EventServiceInterface
}

// NewEventsController creates an instance of EventsController.
func NewEventsController(service services.EventServiceInterface) *EventsController {
	return &EventsController{Service: service}
}

// ListEvents handles GET /api/events. Events come back sorted by start date
// descending, registration counts attached.
func (ec *EventsController) ListEvents(c *gin.Context) {
	filter := models.EventFilter{
		EventType: c.Query("eventType"),
		Status:    c.Query("status"),
		Location:  c.Query("location"),
		Search:    c.Query("search"),
		DateFrom:  parseDateParam(c.Query("dateFrom")),
		DateTo:    parseDateParam(c.Query("dateTo")),
	}

	events, total := ec.Service.GetEvents(filter, pageParams(c))
	c.JSON(http.StatusOK, gin.H{"events": events, "total": total})
}

// GetEventStats handles GET /api/events/stats.
func (ec *EventsController) GetEventStats(c *gin.Context) {
	c.JSON(http.StatusOK, ec.Service.GetEventStats())
}

// GetEvent handles GET /api/events/:id.
func (ec *EventsController) GetEvent(c *gin.Context) {
	event, ok := ec.Service.GetEvent(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}
	c.JSON(http.StatusOK, event)
}

// CreateEvent handles POST /api/events.
func (ec *EventsController) CreateEvent(c *gin.Context) {
	var in models.InsertEvent
	if err := c.ShouldBindJSON(&in); err != nil {
		logger.Warn.Printf("CreateEvent: rejected payload: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event data"})
		return
	}

	event := ec.Service.CreateEvent(in)
	c.JSON(http.StatusCreated, event)
}

// UpdateEvent handles PATCH /api/events/:id.
func (ec *EventsController) UpdateEvent(c *gin.Context) {
	var patch models.EventPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		logger.Warn.Printf("UpdateEvent: rejected payload: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event data"})
		return
	}

	event, ok := ec.Service.UpdateEvent(c.Param("id"), patch)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}
	c.JSON(http.StatusOK, event)
}

// DeleteEvent handles DELETE /api/events/:id. Registrations for the event are
// removed with it.
func (ec *EventsController) DeleteEvent(c *gin.Context) {
	if !ec.Service.DeleteEvent(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// Register handles POST /api/events/:id/register.
func (ec *EventsController) Register(c *gin.Context) {
	var in models.RegisterRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		logger.Warn.Printf("Register: rejected payload: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid registration data"})
		return
	}

	reg, ok := ec.Service.RegisterForEvent(c.Param("id"), in)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}
	c.JSON(http.StatusCreated, reg)
}

// ListRegistrations handles GET /api/events/:id/registrations.
func (ec *EventsController) ListRegistrations(c *gin.Context) {
	regs, ok := ec.Service.GetEventRegistrations(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}
	c.JSON(http.StatusOK, regs)
}

// UpdateRegistrationStatus handles PATCH /api/registrations/:id/status.
func (ec *EventsController) UpdateRegistrationStatus(c *gin.Context) {
	var body models.RegistrationStatusUpdate
	if err := c.ShouldBindJSON(&body); err != nil {
		logger.Warn.Printf("UpdateRegistrationStatus: rejected payload: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid registration data"})
		return
	}

	reg, ok := ec.Service.UpdateRegistrationStatus(c.Param("id"), body.Status)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Registration not found"})
		return
	}
	c.JSON(http.StatusOK, reg)
}

// GetEventQRCode handles GET /api/events/:id/qrcode, returning a PNG QR code
// for the event's public registration page.
func (ec *EventsController) GetEventQRCode(c *gin.Context) {
	id := c.Param("id")
	if _, ok := ec.Service.GetEvent(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	size, _ := strconv.Atoi(c.Query("size"))
	if size <= 0 {
		size = 256
	}

	png, err := services.EventQRCode(applicationURL, id, size, nil)
	if err != nil {
		logger.Error.Printf("GetEventQRCode: failed to render QR for event %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate QR code"})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// parseDateParam parses an RFC 3339 query value; anything else is treated as
// unset.
func parseDateParam(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil
	}
	return &t
}
