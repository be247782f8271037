// Package middleware file: middleware/request_logger.go
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"campaign-crm/logger"
)

// RequestLogger writes one line per handled request with method, path,
// status and duration.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		elapsed := time.Since(start)
		if status >= 500 {
			logger.Error.Printf("%s %s -> %d (%s)", c.Request.Method, c.Request.URL.Path, status, elapsed)
			return
		}
		logger.Info.Printf("%s %s -> %d (%s)", c.Request.Method, c.Request.URL.Path, status, elapsed)
	}
}
