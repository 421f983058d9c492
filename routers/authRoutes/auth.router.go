package authRoutes

import (
	authController "lms/controllers/auth"
	validators "lms/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up registration and login routes
func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", validators.Signup(), authController.Signup)
	authGroup.Post("/login", validators.Login(), authController.Login)
}
