// Package controllers file: controllers/users_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campaign-crm/services"
)

// UsersController serves the /api/users endpoints. Only display info ever
// leaves the process; password hashes stay internal.
type UsersController struct {
	Service services.UserServiceInterface
}

// NewUsersController creates an instance of UsersController.
func NewUsersController(service services.UserServiceInterface) *UsersController {
	return &UsersController{Service: service}
}

// ListUsers handles GET /api/users, feeding assignee pickers in the client.
func (uc *UsersController) ListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"users": uc.Service.GetUsers()})
}
