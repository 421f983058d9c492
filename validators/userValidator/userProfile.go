package userValidator

import (
	"lms/middleware"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var phoneRegex = regexp.MustCompile(`^[0-9+\-() ]{7,20}$`)

type UpdateProfileRequest struct {
	Name         *string `json:"name"`
	Phone        *string `json:"phone"`
	ProfileImage *string `json:"profile_image"`
}

func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateProfileRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Name != nil && len(strings.TrimSpace(*reqData.Name)) < 2 {
			errors["name"] = "Name must be at least 2 characters long!"
		}

		if reqData.Phone != nil && !phoneRegex.MatchString(strings.TrimSpace(*reqData.Phone)) {
			errors["phone"] = "Invalid phone number!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProfile", reqData)
		return c.Next()
	}
}
