package controllers

import (
	"errors"
	"log"

	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"
	"learnhub/progress"
	"learnhub/quiz"
	"learnhub/store"

	"github.com/gofiber/fiber/v2"
)

var (
	quizCatalog *quiz.Catalog
	sessions    *quiz.SessionManager
)

// Setup wires the quiz catalog and the in-memory session registry used
// by the handlers. Called once from main.
func Setup(catalog *quiz.Catalog, manager *quiz.SessionManager) {
	quizCatalog = catalog
	sessions = manager
}

// GetQuizList lists the available quizzes without answers or explanations
func GetQuizList(c *fiber.Ctx) error {
	defs := quizCatalog.List()

	list := make([]fiber.Map, 0, len(defs))
	for _, def := range defs {
		list = append(list, fiber.Map{
			"id":             def.ID,
			"title":          def.Title,
			"description":    def.Description,
			"difficulty":     def.Difficulty,
			"duration":       def.Duration,
			"question_count": len(def.Questions),
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quizzes fetched successfully!", fiber.Map{
		"quizzes": list,
	})
}

// StartQuiz begins a fresh attempt at the given quiz, replacing any
// attempt the user already had underway
func StartQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	quizID := c.Locals("quizID").(string)

	def, err := quizCatalog.Get(quizID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	session := sessions.Start(userID, def)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz started!", fiber.Map{
		"attempt_id": session.ID,
		"quiz": fiber.Map{
			"id":             def.ID,
			"title":          def.Title,
			"difficulty":     def.Difficulty,
			"duration":       def.Duration,
			"question_count": len(def.Questions),
		},
		"question": questionView(session),
	})
}

// SubmitAnswer records the answer for the current question of the
// user's active attempt
func SubmitAnswer(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedAnswer").(*struct {
		OptionIndex *int `json:"option_index"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	session, err := sessions.Active(userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No active quiz attempt!", nil)
	}

	if err := session.SelectAnswer(*reqData.OptionIndex); err != nil {
		switch {
		case errors.Is(err, quiz.ErrSessionCompleted):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Quiz attempt is already completed!", nil)
		case errors.Is(err, quiz.ErrOptionOutOfRange):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Selected option is out of range!", nil)
		default:
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record answer!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Answer recorded!", fiber.Map{
		"question": questionView(session),
	})
}

// NextQuestion advances the active attempt. On the last question it
// completes the attempt, scores it and records the durable result.
func NextQuestion(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	session, err := sessions.Active(userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No active quiz attempt!", nil)
	}

	if err := session.Advance(); err != nil {
		switch {
		case errors.Is(err, quiz.ErrQuestionUnanswered):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Select an answer before moving on!", nil)
		case errors.Is(err, quiz.ErrSessionCompleted):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Quiz attempt is already completed!", nil)
		default:
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to advance!", nil)
		}
	}

	if !session.IsComplete() {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Next question!", fiber.Map{
			"question": questionView(session),
		})
	}

	report, err := quiz.Score(session)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to score quiz!", nil)
	}

	// The attempt is done either way; the in-memory report stays valid
	// even when persisting the result fails.
	sessions.End(userID)

	recorded := true
	resultStore := store.NewResultStore(database.Database.Db)
	if _, err := resultStore.InsertResult(userID, report.QuizName, report.RawScore, report.TotalQuestions); err != nil {
		log.Printf("Error saving quiz result for user %d: %v", userID, err)
		recorded = false
	}

	message := "Quiz completed!"
	if !recorded {
		message = "Quiz completed, but the result could not be saved."
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, message, fiber.Map{
		"report":    report,
		"recorded":  recorded,
		"xp_earned": progress.DefaultRewardPolicy.XPPerQuiz,
	})
}

// GetAttempt returns the state of the user's active attempt
func GetAttempt(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	session, err := sessions.Active(userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No active quiz attempt!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attempt fetched successfully!", fiber.Map{
		"attempt_id": session.ID,
		"quiz_id":    session.Quiz.ID,
		"quiz_title": session.Quiz.Title,
		"status":     session.Status(),
		"question":   questionView(session),
	})
}

// GetQuizResults returns the user's result history, most recent first
func GetQuizResults(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	resultStore := store.NewResultStore(database.Database.Db)
	results, err := resultStore.ListResults(userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quiz results!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz results fetched successfully!", fiber.Map{
		"results": results,
	})
}

// questionView shapes the current question for the client, without the
// correct index or explanation
func questionView(session *quiz.Session) fiber.Map {
	question := session.CurrentQuestion()

	view := fiber.Map{
		"index":    session.CurrentIndex(),
		"total":    len(session.Quiz.Questions),
		"question": question.Prompt,
		"options":  question.Options,
		"selected": nil,
	}
	if selected, ok := session.SelectedAnswer(); ok {
		view["selected"] = selected
	}
	return view
}
