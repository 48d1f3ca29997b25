package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/quillsign/quillsign/config"
	"github.com/quillsign/quillsign/db"
	_ "github.com/quillsign/quillsign/docs"
	"github.com/quillsign/quillsign/internal/api/middleware"
	"github.com/quillsign/quillsign/internal/api/routes"
	"github.com/quillsign/quillsign/minio"
)

// @title QuillSign API
// @version 1.0
// @description Document e-signing: field placement, multi-party signing rounds and PDF finalization.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection and run migrations
	db.Init()

	// Initialize object storage for documents and artifacts
	minio.InitMinio()

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())

	routes.RegisterRoutes(router)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
