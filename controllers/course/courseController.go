package controllers

import (
	"errors"

	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"
	"learnhub/store"

	"github.com/gofiber/fiber/v2"
)

// GetCourseList returns published courses merged with the caller's
// progress in each
func GetCourseList(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseStore := store.NewCourseStore(database.Database.Db)
	courses, err := courseStore.ListCourses()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	progressStore := store.NewProgressStore(database.Database.Db)
	records, err := progressStore.GetProgress(userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}

	progressByCourse := make(map[uint]models.UserProgress, len(records))
	for _, rec := range records {
		progressByCourse[rec.CourseID] = rec
	}

	type courseWithProgress struct {
		models.Course
		Progress  int  `json:"progress"`
		Completed bool `json:"completed"`
	}

	list := make([]courseWithProgress, len(courses))
	for i, course := range courses {
		list[i] = courseWithProgress{Course: course}
		if rec, found := progressByCourse[course.ID]; found {
			list[i].Progress = rec.Progress
			list[i].Completed = rec.Completed
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": list,
	})
}

// UpdateCourseProgress upserts the caller's progress for one course
func UpdateCourseProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	reqData, ok := c.Locals("validatedProgress").(*struct {
		Progress *int `json:"progress"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	courseStore := store.NewCourseStore(database.Database.Db)
	if _, err := courseStore.GetCourse(uint(courseID)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	progressStore := store.NewProgressStore(database.Database.Db)
	record, err := progressStore.UpsertProgress(userID, uint(courseID), *reqData.Progress)
	if err != nil {
		if errors.Is(err, store.ErrInvalidProgress) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Progress must be between 0 and 100!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated!", fiber.Map{
		"progress": record,
	})
}
