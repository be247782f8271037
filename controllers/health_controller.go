// Package controllers file: controllers/health_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campaign-crm/logger"
)

// Health responds to load-balancer health checks.
func Health(c *gin.Context) {
	logger.Debug.Println("Health: Health check requested")
	c.String(http.StatusOK, "OK")
}
