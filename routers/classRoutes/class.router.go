package classRoutes

import (
	controllers "learnhub/controllers/liveclass"
	"learnhub/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupClassRoutes sets up live-class routes
func SetupClassRoutes(app *fiber.App) {
	classGroup := app.Group("/class")

	classGroup.Get("/list", middleware.JWTMiddleware, controllers.GetLiveClasses)
}
