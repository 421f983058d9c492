package courseRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all user-facing course routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Course browsing (published courses)
	courseGroup.Get("/list", validators.CourseList(), controllers.GetAllCourses)
	courseGroup.Get("/featured", controllers.GetFeaturedCourses)
	courseGroup.Get("/search", validators.SearchCourses(), controllers.SearchCourses)
	courseGroup.Get("/categories", controllers.GetCategories)
	courseGroup.Get("/:id", validators.GetCourseDetail(), controllers.GetCourseDetails)

	// Interest workflow
	courseGroup.Post("/:id/interest", middleware.JWTMiddleware, validators.ExpressInterest(), controllers.ExpressInterest)
	courseGroup.Get("/:id/interest", middleware.JWTMiddleware, validators.CheckInterest(), controllers.CheckInterest)

	// User's own interests
	userGroup := app.Group("/user")
	userGroup.Get("/interests", middleware.JWTMiddleware, controllers.GetMyInterests)
}
