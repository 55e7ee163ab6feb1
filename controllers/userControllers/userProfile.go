package userController

import (
	"time"

	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"
	"learnhub/progress"
	"learnhub/store"

	"github.com/gofiber/fiber/v2"
)

// GetProfile returns the user's display profile together with the
// derived stats, achievement badges and weekly goals
func GetProfile(c *fiber.Ctx) error {
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

	policy := progress.DefaultRewardPolicy
	history := progress.History{
		Results:  results,
		Progress: records,
		Policy:   policy,
		Ref:      time.Now(),
	}

	xp := policy.TotalXP(results)

	completedCourses := 0
	for _, rec := range records {
		if rec.Completed {
			completedCourses++
		}
	}

	// Latest results double as the recent-activity feed
	recent := results
	if len(recent) > 5 {
		recent = recent[:5]
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", fiber.Map{
		"profile": fiber.Map{
			"full_name":     user.Name,
			"email":         user.Email,
			"grade":         user.Grade,
			"profile_image": user.ProfileImage,
		},
		"stats": fiber.Map{
			"total_xp":          xp,
			"level":             policy.Level(xp),
			"quizzes_taken":     len(results),
			"average_score":     progress.AverageQuizScore(results),
			"courses_started":   len(records),
			"courses_completed": completedCourses,
			"day_streak":        progress.DayStreak(results, records, history.Ref),
		},
		"achievements":    progress.EvaluateAchievements(progress.DefaultAchievements, history),
		"weekly_goals":    progress.WeeklyGoalProgress(progress.DefaultWeeklyGoals, history),
		"recent_activity": recent,
	})
}
