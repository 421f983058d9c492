package controllers

import (
	"errors"
	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"
	"lms/services"
	"lms/utils"
	courseValidator "lms/validators/course"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

// AdminGetAllInterests lists interest records for follow-up, newest first,
// optionally filtered by status.
func AdminGetAllInterests(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedInterestList").(*courseValidator.InterestListRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	interests, total, err := services.ListInterests(database.Database.Db, reqData.Status, reqData.Page, reqData.Limit)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch interests!", nil)
	}

	response := fiber.Map{
		"interests": interests,
		"pagination": fiber.Map{
			"total": total,
			"page":  reqData.Page,
			"limit": reqData.Limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Interests fetched successfully!", response)
}

// AdminUpdateInterestStatus moves an interest record through its lifecycle
// and notifies the user on contacted/enrolled.
func AdminUpdateInterestStatus(c *fiber.Ctx) error {
	interestID := c.Locals("interestID").(int)

	reqData, ok := c.Locals("validatedStatus").(*courseValidator.UpdateInterestStatusRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	interest, err := services.UpdateInterestStatus(database.Database.Db, uint(interestID), reqData.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInterestNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Interest not found!", nil)
		case errors.Is(err, services.ErrInvalidTransition):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Status transition not allowed!", nil)
		case errors.Is(err, services.ErrInvalidStatus):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid status value!", nil)
		default:
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update interest!", nil)
		}
	}

	utils.SendInterestStatusEmail(interest.UserEmail, interest.UserName, interest.CourseName, reqData.Status)
	if reqData.Status == courseModels.StatusEnrolled && interest.UserPhone != "" {
		utils.SendEnrolledSMS(interest.UserPhone, interest.UserName, interest.CourseName)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Interest status updated successfully!", interest)
}

// AdminDeleteInterest removes an interest record (administrative cleanup
// only, not part of the normal lifecycle). The delete is a hard delete: a
// soft-deleted row would keep occupying the (course_id, user_id) unique
// index while staying invisible to the duplicate check, blocking the user
// from ever resubmitting.
func AdminDeleteInterest(c *fiber.Ctx) error {
	interestID := c.Locals("interestID").(int)

	var interest courseModels.CourseInterest
	if err := database.Database.Db.First(&interest, interestID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Interest not found!", nil)
	}

	if err := database.Database.Db.Unscoped().Delete(&interest).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete interest!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Interest deleted successfully!", nil)
}

// AdminDashboardStats aggregates counts for the admin dashboard.
func AdminDashboardStats(c *fiber.Ctx) error {
	db := database.Database.Db

	statusCounts, err := services.CountInterestsByStatus(db)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard stats!", nil)
	}

	var totalCourses, publishedCourses int64
	db.Model(&courseModels.Course{}).Where("is_deleted = ?", false).Count(&totalCourses)
	db.Model(&courseModels.Course{}).Where("is_published = ? AND is_deleted = ?", true, false).Count(&publishedCourses)

	monthStart := now.With(time.Now()).BeginningOfMonth()
	var interestsThisMonth int64
	db.Model(&courseModels.CourseInterest{}).Where("created_at >= ?", monthStart).Count(&interestsThisMonth)

	stats := fiber.Map{
		"interests_by_status":  statusCounts,
		"interests_this_month": interestsThisMonth,
		"total_courses":        totalCourses,
		"published_courses":    publishedCourses,
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully!", stats)
}
