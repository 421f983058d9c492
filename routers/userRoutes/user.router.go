package userRoutes

import (
	userController "lms/controllers/userControllers"
	"lms/middleware"
	validators "lms/validators/userValidator"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes sets up profile routes for the authenticated user
func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user")

	userGroup.Get("/profile", middleware.JWTMiddleware, userController.GetProfile)
	userGroup.Put("/profile", middleware.JWTMiddleware, validators.UpdateProfile(), userController.UpdateProfile)
}
