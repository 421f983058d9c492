package courseValidator

import (
	"lms/middleware"
	courseModels "lms/models/course"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type ExpressInterestRequest struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

type InterestListRequest struct {
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
	Status string `query:"status"`
}

type UpdateInterestStatusRequest struct {
	Status string `json:"status"`
}

func ExpressInterest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := courseIDParam(c)
		if err != nil {
			return err
		}

		reqData := new(ExpressInterestRequest)
		// Body is optional: phone falls back to the stored profile value
		if len(c.Body()) > 0 {
			if err := c.BodyParser(reqData); err != nil {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
			}
		}

		if len(strings.TrimSpace(reqData.Message)) > 1000 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"message": "Message must be at most 1000 characters long!",
			})
		}

		c.Locals("courseID", courseID)
		c.Locals("validatedInterest", reqData)
		return c.Next()
	}
}

func CheckInterest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := courseIDParam(c)
		if err != nil {
			return err
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

func InterestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		interestID, err := idParam(c, "Interest ID")
		if err != nil {
			return err
		}

		c.Locals("interestID", interestID)
		return c.Next()
	}
}

func InterestList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(InterestListRequest)
		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		if reqData.Page < 1 {
			reqData.Page = 1
		}
		if reqData.Limit < 1 || reqData.Limit > 100 {
			reqData.Limit = 20
		}

		if reqData.Status != "" && !courseModels.IsValidStatus(reqData.Status) {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"status": "Status must be one of: pending, contacted, enrolled, declined!",
			})
		}

		c.Locals("validatedInterestList", reqData)
		return c.Next()
	}
}

func UpdateInterestStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		interestID, err := idParam(c, "Interest ID")
		if err != nil {
			return err
		}

		reqData := new(UpdateInterestStatusRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if !courseModels.IsValidStatus(reqData.Status) {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"status": "Status must be one of: pending, contacted, enrolled, declined!",
			})
		}

		c.Locals("interestID", interestID)
		c.Locals("validatedStatus", reqData)
		return c.Next()
	}
}
