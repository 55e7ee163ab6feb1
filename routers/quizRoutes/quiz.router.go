package quizRoutes

import (
	controllers "learnhub/controllers/quiz"
	"learnhub/middleware"
	validators "learnhub/validators/quiz"

	"github.com/gofiber/fiber/v2"
)

// SetupQuizRoutes sets up all quiz routes
func SetupQuizRoutes(app *fiber.App) {
	quizGroup := app.Group("/quiz")

	// Catalog listing
	quizGroup.Get("/list", middleware.JWTMiddleware, controllers.GetQuizList)

	// Attempt lifecycle
	quizGroup.Post("/:id/start", middleware.JWTMiddleware, validators.StartQuiz(), controllers.StartQuiz)
	quizGroup.Get("/attempt", middleware.JWTMiddleware, controllers.GetAttempt)
	quizGroup.Post("/attempt/answer", middleware.JWTMiddleware, validators.SubmitAnswer(), controllers.SubmitAnswer)
	quizGroup.Post("/attempt/next", middleware.JWTMiddleware, controllers.NextQuestion)

	// Result history
	quizGroup.Get("/results", middleware.JWTMiddleware, controllers.GetQuizResults)
}
