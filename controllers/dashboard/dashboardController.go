package controllers

import (
	"time"

	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"
	"learnhub/progress"
	"learnhub/store"

	"github.com/gofiber/fiber/v2"
)

// GetDashboard returns the derived metrics for the dashboard view.
// Everything is recomputed from the stored records on each call; the
// dashboard only renders what the aggregator produces.
func GetDashboard(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	db := database.Database.Db

	records, err := store.NewProgressStore(db).GetProgress(userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}

	results, err := store.NewResultStore(db).ListResults(userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quiz results!", nil)
	}

	courses, err := store.NewCourseStore(db).ListCourses()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	policy := progress.DefaultRewardPolicy
	history := progress.History{
		Results:  results,
		Progress: records,
		Policy:   policy,
		Ref:      time.Now(),
	}

	xp := policy.TotalXP(results)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
		"overall_progress":   progress.OverallProgress(records),
		"average_quiz_score": progress.AverageQuizScore(results),
		"xp":                 xp,
		"level":              policy.Level(xp),
		"day_streak":         progress.DayStreak(results, records, history.Ref),
		"subjects":           progress.SubjectRollups(records, courses),
		"weekly_goals":       progress.WeeklyGoalProgress(progress.DefaultWeeklyGoals, history),
	})
}
