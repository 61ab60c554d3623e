package main

import (
	"log"
	"net/http"

	"crop-procurement-api/config"
	"crop-procurement-api/controllers"
	"crop-procurement-api/middleware"
	"crop-procurement-api/routes"
	"crop-procurement-api/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	logFile, logWriter := config.InitLogging("logs")
	if logFile != nil {
		defer logFile.Close()
	}

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	db, err := config.OpenDB(cfg.Database, cfg.IsProduction())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if cfg.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}
	gin.DefaultWriter = logWriter
	gin.DefaultErrorWriter = logWriter

	// Stores and services
	submissionStore := services.NewGormSubmissionStore(db)
	notificationStore := services.NewGormNotificationStore(db)
	users := services.NewGormUserDirectory(db)

	mailer := config.NewSMTPMailer(cfg.Mail)
	if !mailer.Enabled() {
		log.Println("SMTP not configured, notification e-mails disabled")
	}

	notificationSvc := services.NewNotificationService(notificationStore, users, mailer, cfg.AppBaseURL)
	submissionSvc := services.NewCropSubmissionService(submissionStore, notificationSvc)

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	routes.SetupRoutes(router, cfg.JWTSecret, routes.Handlers{
		Submissions:   controllers.NewCropSubmissionController(submissionSvc),
		Notifications: controllers.NewNotificationController(notificationSvc),
	})

	log.Printf("🚀 Server starting on port %s (%s)", cfg.Port, cfg.Environment)
	log.Printf("🌐 CORS configured for %v", cfg.AllowedOrigins)

	if err := router.Run(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
		log.Fatal("❌ Failed to start server:", err)
	}
}
