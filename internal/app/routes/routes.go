package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ozgur/notesphere/internal/app/controllers"
	"github.com/ozgur/notesphere/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	catalogController *controllers.CatalogController,
	noteController *controllers.NoteController,
	authController *controllers.AuthController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Public browse routes ---
	v1.GET("/home", catalogController.Home)
	v1.GET("/years/:year", catalogController.YearListing)
	v1.GET("/quantum", catalogController.QuantumListing)
	v1.GET("/subjects/:id", catalogController.SubjectNotes)

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Staff routes ---
	staff := v1.Group("")
	staff.Use(authMiddleware.JWTAuth())
	staff.Use(authMiddleware.StaffRequired())
	{
		staff.POST("/notes", noteController.CreateNote)
		staff.POST("/quantum-notes", noteController.CreateQuantumNote)
		staff.DELETE("/notes/:id", noteController.DeleteNote)
	}
}
