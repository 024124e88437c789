package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LeleooAlves/personal-plan-creator/internal/service"
)

// SetupRoutes wires all handlers onto the router.
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	catalogService service.CatalogService,
	workoutService service.WorkoutService,
	profileService service.ProfileService,
) {
	authHandler := NewAuthHandler(authService)
	exerciseHandler := NewExerciseHandler(catalogService)
	workoutHandler := NewWorkoutHandler(workoutService)
	profileHandler := NewProfileHandler(profileService)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Viewer route for shared day links. Students open these without a
	// session, so it lives outside the protected group.
	router.GET("/workouts/:id/:day", workoutHandler.ViewDay)

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		// --- Exercise Library ---
		exerciseGroup := protected.Group("/exercises")
		{
			exerciseGroup.GET("", exerciseHandler.ListExercises)
			exerciseGroup.POST("", exerciseHandler.CreateExercise)
			exerciseGroup.PUT("/:id", exerciseHandler.UpdateExercise)
			exerciseGroup.DELETE("/:id", exerciseHandler.DeleteExercise)
			exerciseGroup.POST("/:id/video", exerciseHandler.UploadVideo)
		}

		// --- Workouts ---
		workoutGroup := protected.Group("/workouts")
		{
			workoutGroup.GET("", workoutHandler.ListWorkouts)
			workoutGroup.POST("", workoutHandler.CreateWorkout)
			workoutGroup.PUT("/:id", workoutHandler.UpdateWorkout)
			workoutGroup.DELETE("/:id", workoutHandler.DeleteWorkout)

			workoutGroup.GET("/:id/days/:day/download", workoutHandler.DownloadDay)
			workoutGroup.POST("/:id/days/:day/share", workoutHandler.ShareDay)
			workoutGroup.POST("/:id/export", workoutHandler.ExportAll)
		}

		// --- Trainer Profile ---
		profileGroup := protected.Group("/profile")
		{
			profileGroup.GET("", profileHandler.GetProfile)
			profileGroup.PUT("", profileHandler.SaveProfile)
		}
	}
}
