package routes

import (
	"net/http"

	"crop-procurement-api/controllers"
	"crop-procurement-api/middleware"
	"crop-procurement-api/models"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Submissions   *controllers.CropSubmissionController
	Notifications *controllers.NotificationController
}

func SetupRoutes(router *gin.Engine, jwtSecret string, h Handlers) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":  "ok",
				"message": "Crop Procurement API is running",
			})
		})

		// Retrieval by id is keyed only on the submission id
		v1.GET("/crop-submissions/:id", h.Submissions.Get)

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(jwtSecret))
		{
			submissions := protected.Group("/crop-submissions")
			{
				submissions.GET("", h.Submissions.List)

				// Only farmers declare crop lots
				submissions.POST("", middleware.RequireUserType(models.UserTypeFarmer), h.Submissions.Create)

				// Field-level rules per role are enforced by the service
				submissions.PUT("/:id", h.Submissions.Update)
				submissions.DELETE("/:id", h.Submissions.Delete)
			}

			notifications := protected.Group("/notifications")
			{
				notifications.GET("", h.Notifications.List)
				notifications.PATCH("/:id/read", h.Notifications.MarkRead)
			}
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found", "kind": "not_found"})
	})
}
