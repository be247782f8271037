// main.go
package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"campaign-crm/controllers"
	"campaign-crm/logger"
	"campaign-crm/middleware"
	"campaign-crm/services"
)

// LoadEnv pulls variables from .env when present; system environment wins
// otherwise.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		logger.Warn.Println("LoadEnv: .env file not found, using system environment variables")
	}
}

func main() {
	LoadEnv()

	env := os.Getenv("APP_ENV")
	logger.SetLogLevel(env)
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize the router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS())

	// Read configuration from environment variables
	applicationURL := os.Getenv("APPLICATION_URL")
	if applicationURL == "" {
		applicationURL = "http://localhost:8080" // Default to localhost for local testing
	}
	controllers.SetConfig(applicationURL)

	// Build the repository once and hand it to every route. All data lives
	// in this process; a restart starts from the seed set again.
	store := services.NewStore()
	store.Seed()

	SetupRoutes(router, store)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Info.Printf("Server running on %s (port %s)", applicationURL, port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
