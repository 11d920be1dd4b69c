package main

import (
	"log"
	"os"

	"camera-dashboard/be/config"
	"camera-dashboard/be/database"
	"camera-dashboard/be/handlers"
	"camera-dashboard/be/middleware"
	"camera-dashboard/be/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Initialize services
	hub := services.NewHubService()
	presence := services.NewPresenceService(db, hub, cfg.Presence)
	audio := services.NewAudioService(hub)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db, cfg.JWT, cfg.Company)
	cameraHandler := handlers.NewCameraHandler(presence)
	audioHandler := handlers.NewAudioHandler(audio)
	webHandler := handlers.NewWebHandler(db, cfg.Company)
	wsHandler := handlers.NewWSHandler(hub)

	// Setup router
	router := setupRouter(authHandler, cameraHandler, audioHandler, webHandler, wsHandler, cfg)

	// Start server
	port := cfg.Server.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRouter(
	authHandler *handlers.AuthHandler,
	cameraHandler *handlers.CameraHandler,
	audioHandler *handlers.AudioHandler,
	webHandler *handlers.WebHandler,
	wsHandler *handlers.WSHandler,
	cfg *config.Config,
) *gin.Engine {
	// Set Gin mode
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// CORS configuration
	// Allow all localhost origins for development
	router.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			// Allow requests with no origin (like embedded cameras or curl)
			if origin == "" {
				return true
			}
			// Allow all localhost and 127.0.0.1 origins
			return origin == "http://localhost:8080" ||
				origin == "http://localhost:5173" ||
				origin == "http://localhost:3000" ||
				origin == "http://127.0.0.1:8080" ||
				origin == "http://127.0.0.1:5173" ||
				origin == "http://127.0.0.1:3000"
		},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * 3600, // 12 hours
	}))

	// Per-request identity from the session cookie
	router.Use(middleware.Identify(cfg.JWT.Secret))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Camera-facing API
	api := router.Group("/api")
	{
		api.POST("/camera/register", cameraHandler.Register)
		api.POST("/camera/heartbeat", cameraHandler.Heartbeat)
		api.POST("/audio/send", audioHandler.Send)
		api.GET("/cameras/status", cameraHandler.GetStatus)
	}

	// Web console
	router.GET("/", webHandler.Index)
	router.POST("/login", authHandler.Login)
	router.GET("/logout", authHandler.Logout)
	router.GET("/set_language/:lang", webHandler.SetLanguage)
	router.GET("/camera", middleware.RequireCamera(), webHandler.CameraView)
	router.GET("/admin", middleware.RequireAdmin(), webHandler.AdminDashboard)

	// Realtime notification channel
	router.GET("/ws", wsHandler.Serve)

	return router
}
