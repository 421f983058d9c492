package controllers

import (
	"errors"
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"lms/services"
	"lms/utils"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ExpressInterest records the authenticated user's interest in a course.
// Duplicate submissions are idempotent successes.
func ExpressInterest(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	err := database.Database.Db.
		Where("id = ? AND is_published = ? AND is_deleted = ?", courseID, true, false).
		First(&course).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or not published!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}

	reqData, ok := c.Locals("validatedInterest").(*courseValidator.ExpressInterestRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	result, err := services.SubmitInterest(database.Database.Db, &course, &user, reqData.Phone, reqData.Message)
	if err != nil {
		if errors.Is(err, services.ErrPhoneRequired) {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"phone": "Phone number is required! Add one to your profile or include it in the request.",
			})
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record interest!", nil)
	}

	if !result.AlreadyInterested {
		utils.SendInterestReceivedEmail(user.Email, user.Name, course.Title)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Interest recorded successfully!", result)
}

// GetMyInterests lists the authenticated user's interest records.
func GetMyInterests(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	interests, err := services.GetUserInterests(database.Database.Db, userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch interests!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Interests fetched successfully!", interests)
}

// CheckInterest reports whether the user already expressed interest in the
// course. Drives the "already interested" badge.
func CheckInterest(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	interested := services.HasUserInterest(database.Database.Db, userID, uint(courseID))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Interest check completed!", fiber.Map{
		"interested": interested,
	})
}
