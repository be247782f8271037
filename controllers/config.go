// Package controllers file: controllers/config.go
package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"campaign-crm/models"
)

// applicationURL is the externally visible base URL, used when rendering
// registration QR codes.
var applicationURL = "http://localhost:8080"

// SetConfig injects runtime configuration shared by the controllers.
func SetConfig(appURL string) {
	if appURL != "" {
		applicationURL = appURL
	}
}

// pageParams reads the page/limit query parameters. Missing or malformed
// values are left zero so the store applies its per-entity defaults.
func pageParams(c *gin.Context) models.Page {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	return models.Page{Page: page, Limit: limit}
}
