package main

import (
	"log"

	"github.com/crewtrack/crewtime/internal/api/middleware"
	"github.com/crewtrack/crewtime/internal/api/routes"
	"github.com/crewtrack/crewtime/internal/config"
	"github.com/crewtrack/crewtime/internal/config/db"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Connect and migrate
	db.Init()

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(router)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
