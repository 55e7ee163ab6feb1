package userRoutes

import (
	dashboardControllers "learnhub/controllers/dashboard"
	userControllers "learnhub/controllers/userControllers"
	"learnhub/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes sets up profile and dashboard routes
func SetupUserRoutes(app *fiber.App) {
	app.Get("/dashboard", middleware.JWTMiddleware, dashboardControllers.GetDashboard)

	userGroup := app.Group("/user")
	userGroup.Get("/profile", middleware.JWTMiddleware, userControllers.GetProfile)
}
