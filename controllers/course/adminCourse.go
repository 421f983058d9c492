package controllers

import (
	"errors"
	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"
	"lms/utils"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminCreateCourse creates a new course. Prices are submitted in PKR and
// stored in USD.
func AdminCreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CreateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	instructorID := reqData.Instructor.ID
	if instructorID == "" {
		instructorID = "instructor_" + uuid.NewString()
	}

	course := courseModels.Course{
		Title:            reqData.Title,
		Description:      reqData.Description,
		ShortDescription: reqData.ShortDescription,
		Instructor: courseModels.Instructor{
			InstructorID: instructorID,
			Name:         reqData.Instructor.Name,
			Avatar:       reqData.Instructor.Avatar,
			Bio:          reqData.Instructor.Bio,
		},
		Thumbnail:        reqData.Thumbnail,
		Category:         reqData.Category,
		Subcategory:      reqData.Subcategory,
		Price:            utils.FromPKR(reqData.PricePKR),
		Currency:         "PKR",
		Language:         reqData.Language,
		Level:            reqData.Level,
		Duration:         reqData.Duration,
		TotalLessons:     reqData.TotalLessons,
		Tags:             reqData.Tags,
		WhatYouWillLearn: reqData.WhatYouWillLearn,
		Requirements:     reqData.Requirements,
	}
	if course.Instructor.Name == "" {
		course.Instructor.Name = "Unknown Instructor"
	}
	if course.Category == "" {
		course.Category = "General"
	}
	if course.Language == "" {
		course.Language = "English"
	}
	if course.Level == "" {
		course.Level = courseModels.LevelBeginner
	}
	if course.Duration == "" {
		course.Duration = "Self-paced"
	}
	if reqData.IsPublished != nil {
		course.IsPublished = *reqData.IsPublished
	}
	if reqData.IsFeatured != nil {
		course.IsFeatured = *reqData.IsFeatured
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", courseResponse(&course))
}

// AdminUpdateCourse updates only the provided fields
func AdminUpdateCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	reqData, ok := c.Locals("validatedCourseUpdate").(*courseValidator.UpdateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != nil {
		course.Title = *reqData.Title
	}
	if reqData.Description != nil {
		course.Description = *reqData.Description
	}
	if reqData.ShortDescription != nil {
		course.ShortDescription = *reqData.ShortDescription
	}
	if reqData.Instructor != nil {
		if reqData.Instructor.ID != "" {
			course.Instructor.InstructorID = reqData.Instructor.ID
		}
		if reqData.Instructor.Name != "" {
			course.Instructor.Name = reqData.Instructor.Name
		}
		course.Instructor.Avatar = reqData.Instructor.Avatar
		course.Instructor.Bio = reqData.Instructor.Bio
	}
	if reqData.Thumbnail != nil {
		course.Thumbnail = *reqData.Thumbnail
	}
	if reqData.Category != nil {
		course.Category = *reqData.Category
	}
	if reqData.Subcategory != nil {
		course.Subcategory = *reqData.Subcategory
	}
	if reqData.PricePKR != nil {
		course.Price = utils.FromPKR(*reqData.PricePKR)
	}
	if reqData.Language != nil {
		course.Language = *reqData.Language
	}
	if reqData.Level != nil {
		course.Level = *reqData.Level
	}
	if reqData.Duration != nil {
		course.Duration = *reqData.Duration
	}
	if reqData.TotalLessons != nil {
		course.TotalLessons = *reqData.TotalLessons
	}
	if reqData.Tags != nil {
		course.Tags = reqData.Tags
	}
	if reqData.WhatYouWillLearn != nil {
		course.WhatYouWillLearn = reqData.WhatYouWillLearn
	}
	if reqData.Requirements != nil {
		course.Requirements = reqData.Requirements
	}
	if reqData.IsPublished != nil {
		course.IsPublished = *reqData.IsPublished
	}
	if reqData.IsFeatured != nil {
		course.IsFeatured = *reqData.IsFeatured
	}

	if err := database.Database.Db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", courseResponse(&course))
}

// AdminDeleteCourse soft deletes a course
func AdminDeleteCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	course.IsDeleted = true
	course.IsPublished = false
	if err := database.Database.Db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// AdminGetAllCourses lists all courses including unpublished ones
func AdminGetAllCourses(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedList").(*courseValidator.ListRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db.Model(&courseModels.Course{}).Where("is_deleted = ?", false)
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

// AdminGetCourseDetails returns any course, published or not
func AdminGetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", courseResponse(&course))
}

// AdminPublishCourse toggles a course live
func AdminPublishCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	course.IsPublished = !course.IsPublished
	if err := database.Database.Db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	message := "Course unpublished successfully!"
	if course.IsPublished {
		message = "Course published successfully!"
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, message, courseResponse(&course))
}

// AdminCreateCategory creates a browsing category
func AdminCreateCategory(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCategory").(*courseValidator.CreateCategoryRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := database.Database.Db.Where("slug = ?", reqData.Slug).First(&courseModels.Category{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Category already exists!", nil)
	}

	category := courseModels.Category{
		Name:        reqData.Name,
		Slug:        reqData.Slug,
		Icon:        reqData.Icon,
		Description: reqData.Description,
		IsActive:    true,
	}

	if err := database.Database.Db.Create(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Category created successfully!", category)
}
