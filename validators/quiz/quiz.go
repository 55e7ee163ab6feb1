package quizValidator

import (
	"strings"

	"learnhub/middleware"

	"github.com/gofiber/fiber/v2"
)

func StartQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		quizID := strings.TrimSpace(c.Params("id"))

		if quizID == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"id": "Quiz id is required!",
			})
		}

		c.Locals("quizID", quizID)
		return c.Next()
	}
}

func SubmitAnswer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			OptionIndex *int `json:"option_index"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Range against the current question is checked by the session
		if reqData.OptionIndex == nil {
			errors["option_index"] = "Option index is required!"
		} else if *reqData.OptionIndex < 0 {
			errors["option_index"] = "Option index must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAnswer", reqData)
		return c.Next()
	}
}
