package controllers

import (
	"errors"
	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"
	"lms/services"
	"lms/utils"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// courseResponse decorates a course with its display price in PKR.
func courseResponse(course *courseModels.Course) fiber.Map {
	return fiber.Map{
		"course":    course,
		"price_pkr": utils.ToPKR(course.Price),
	}
}

func courseListResponse(courses []courseModels.Course) []fiber.Map {
	resp := make([]fiber.Map, 0, len(courses))
	for i := range courses {
		resp = append(resp, courseResponse(&courses[i]))
	}
	return resp
}

// GetAllCourses lists published courses, newest first, with optional
// category filter and pagination.
func GetAllCourses(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedList").(*courseValidator.ListRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db.Model(&courseModels.Course{}).
		Where("is_published = ? AND is_deleted = ?", true, false)
	if reqData.Category != "" {
		db = db.Where("category = ?", reqData.Category)
	}

	var total int64
	db.Count(&total)

	var courses []courseModels.Course
	offset := (reqData.Page - 1) * reqData.Limit
	if err := db.Order("created_at desc").Offset(offset).Limit(reqData.Limit).Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	response := fiber.Map{
		"courses": courseListResponse(courses),
		"pagination": fiber.Map{
			"total": total,
			"page":  reqData.Page,
			"limit": reqData.Limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", response)
}

// GetFeaturedCourses lists published featured courses ordered by rating.
func GetFeaturedCourses(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)
	if limit < 1 || limit > 50 {
		limit = 10
	}

	courses, err := services.FetchFeaturedCourses(database.Database.Db, limit)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch featured courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Featured courses fetched successfully!", courseListResponse(courses))
}

// GetCourseDetails returns a single published course. A missing course is a
// normal negative result (404), not a server error.
func GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	err := database.Database.Db.
		Where("id = ? AND is_published = ? AND is_deleted = ?", courseID, true, false).
		First(&course).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", courseResponse(&course))
}

// SearchCourses filters published courses by a free-text term.
func SearchCourses(c *fiber.Ctx) error {
	term := c.Locals("searchTerm").(string)

	courses, err := services.SearchCourses(database.Database.Db, term)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to search courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courseListResponse(courses))
}

// GetCategories lists active categories, seeding defaults when empty. Always
// succeeds; the service falls back to the built-in set on storage errors.
func GetCategories(c *fiber.Ctx) error {
	categories := services.ListCategories(database.Database.Db)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Categories fetched successfully!", categories)
}
