package courseValidator

import (
	"lms/middleware"
	courseModels "lms/models/course"
	"lms/validators/validate"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type ListRequest struct {
	Page     int    `query:"page"`
	Limit    int    `query:"limit"`
	Category string `query:"category"`
}

type InstructorRequest struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Bio    string `json:"bio"`
}

type CreateCourseRequest struct {
	Title            string            `json:"title" validate:"required,min=3"`
	Description      string            `json:"description" validate:"required,min=5"`
	ShortDescription string            `json:"short_description"`
	Instructor       InstructorRequest `json:"instructor"`
	Thumbnail        string            `json:"thumbnail"`
	Category         string            `json:"category"`
	Subcategory      string            `json:"subcategory"`
	PricePKR         float64           `json:"price_pkr" validate:"gte=0"`
	Language         string            `json:"language"`
	Level            string            `json:"level"`
	Duration         string            `json:"duration"`
	TotalLessons     int               `json:"total_lessons" validate:"gte=0"`
	Tags             []string          `json:"tags"`
	WhatYouWillLearn []string          `json:"what_you_will_learn"`
	Requirements     []string          `json:"requirements"`
	IsPublished      *bool             `json:"is_published"`
	IsFeatured       *bool             `json:"is_featured"`
}

type UpdateCourseRequest struct {
	Title            *string            `json:"title"`
	Description      *string            `json:"description"`
	ShortDescription *string            `json:"short_description"`
	Instructor       *InstructorRequest `json:"instructor"`
	Thumbnail        *string            `json:"thumbnail"`
	Category         *string            `json:"category"`
	Subcategory      *string            `json:"subcategory"`
	PricePKR         *float64           `json:"price_pkr"`
	Language         *string            `json:"language"`
	Level            *string            `json:"level"`
	Duration         *string            `json:"duration"`
	TotalLessons     *int               `json:"total_lessons"`
	Tags             []string           `json:"tags"`
	WhatYouWillLearn []string           `json:"what_you_will_learn"`
	Requirements     []string           `json:"requirements"`
	IsPublished      *bool              `json:"is_published"`
	IsFeatured       *bool              `json:"is_featured"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=2"`
	Slug        string `json:"slug" validate:"required,min=2"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

func isValidLevel(level string) bool {
	switch level {
	case courseModels.LevelBeginner, courseModels.LevelIntermediate,
		courseModels.LevelAdvanced, courseModels.LevelAllLevels:
		return true
	}
	return false
}

// idParam validates the :id path parameter as a positive integer.
func idParam(c *fiber.Ctx, label string) (int, error) {
	idStr := strings.TrimSpace(c.Params("id"))
	if idStr == "" {
		return 0, middleware.JsonResponse(c, fiber.StatusBadRequest, false, label+" is required!", nil)
	}

	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		return 0, middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid "+label+"!", nil)
	}
	return id, nil
}

func courseIDParam(c *fiber.Ctx) (int, error) {
	return idParam(c, "Course ID")
}

func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ListRequest)
		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		if reqData.Page < 1 {
			reqData.Page = 1
		}
		if reqData.Limit < 1 || reqData.Limit > 100 {
			reqData.Limit = 20
		}

		c.Locals("validatedList", reqData)
		return c.Next()
	}
}

func GetCourseDetail() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := courseIDParam(c)
		if err != nil {
			return err
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

func SearchCourses() fiber.Handler {
	return func(c *fiber.Ctx) error {
		term := strings.TrimSpace(c.Query("q"))
		if term == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Search term is required!", nil)
		}

		c.Locals("searchTerm", term)
		return c.Next()
	}
}

func CreateCourseAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := validate.Check(reqData)

		if reqData.Level != "" && !isValidLevel(reqData.Level) {
			errors["level"] = "Level must be one of: Beginner, Intermediate, Advanced, All Levels!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

func UpdateCourseAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := courseIDParam(c)
		if err != nil {
			return err
		}

		reqData := new(UpdateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Title != nil && len(strings.TrimSpace(*reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}
		if reqData.Description != nil && len(strings.TrimSpace(*reqData.Description)) < 5 {
			errors["description"] = "Description must be at least 5 characters long!"
		}
		if reqData.PricePKR != nil && *reqData.PricePKR < 0 {
			errors["price_pkr"] = "Price cannot be negative!"
		}
		if reqData.Level != nil && !isValidLevel(*reqData.Level) {
			errors["level"] = "Level must be one of: Beginner, Intermediate, Advanced, All Levels!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseID", courseID)
		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

func DeleteCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := courseIDParam(c)
		if err != nil {
			return err
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

func CreateCategory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCategoryRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validate.Check(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCategory", reqData)
		return c.Next()
	}
}
