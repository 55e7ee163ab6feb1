package controllers

import (
	"time"

	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"
	"learnhub/store"

	"github.com/gofiber/fiber/v2"
)

// GetLiveClasses lists upcoming live classes, soonest first
func GetLiveClasses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	classStore := store.NewLiveClassStore(database.Database.Db)
	classes, err := classStore.ListUpcoming(time.Now())
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch live classes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Live classes fetched successfully!", fiber.Map{
		"classes": classes,
	})
}
