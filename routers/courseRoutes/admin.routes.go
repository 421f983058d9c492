package courseRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	"lms/models"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminCourseRoutes sets up all admin management routes
func SetupAdminCourseRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin/course", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin))

	// Course CRUD
	adminGroup.Post("/create", validators.CreateCourseAdmin(), controllers.AdminCreateCourse)
	adminGroup.Get("/list", validators.CourseList(), controllers.AdminGetAllCourses)
	adminGroup.Put("/:id", validators.UpdateCourseAdmin(), controllers.AdminUpdateCourse)
	adminGroup.Delete("/:id", validators.DeleteCourse(), controllers.AdminDeleteCourse)
	adminGroup.Get("/:id", validators.GetCourseDetail(), controllers.AdminGetCourseDetails)
	adminGroup.Post("/:id/publish", validators.DeleteCourse(), controllers.AdminPublishCourse)

	// Categories
	categoryGroup := app.Group("/admin/category", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin))
	categoryGroup.Post("/create", validators.CreateCategory(), controllers.AdminCreateCategory)

	// Interest follow-up
	interestGroup := app.Group("/admin/interest", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin))
	interestGroup.Get("/list", validators.InterestList(), controllers.AdminGetAllInterests)
	interestGroup.Put("/:id/status", validators.UpdateInterestStatus(), controllers.AdminUpdateInterestStatus)
	interestGroup.Delete("/:id", validators.InterestID(), controllers.AdminDeleteInterest)

	// Dashboard
	dashGroup := app.Group("/admin/dashboard", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin))
	dashGroup.Get("/stats", controllers.AdminDashboardStats)
}
