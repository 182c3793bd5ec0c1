package courseRoutes

import (
	courseControllers "uplearn/controllers/course"
	"uplearn/middleware"
	"uplearn/models"
	courseValidators "uplearn/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up course browsing and authoring routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Browsing (public)
	courseGroup.Get("/list", courseControllers.GetAllCourses)
	courseGroup.Get("/:id", courseValidators.CourseID(), courseControllers.GetCourseDetails)

	// Authoring (instructors only)
	courseGroup.Post("/create", middleware.JWTMiddleware, middleware.RequireAccountType(models.AccountTypeInstructor),
		courseValidators.CreateCourse(), courseControllers.CreateCourse)

	sectionGroup := app.Group("/section", middleware.JWTMiddleware, middleware.RequireAccountType(models.AccountTypeInstructor))
	sectionGroup.Post("/create", courseValidators.CreateSection(), courseControllers.CreateSection)
	sectionGroup.Put("/update", courseValidators.UpdateSection(), courseControllers.UpdateSection)
	sectionGroup.Delete("/:id", courseValidators.SectionID(), courseControllers.DeleteSection)

	subSectionGroup := app.Group("/subsection", middleware.JWTMiddleware, middleware.RequireAccountType(models.AccountTypeInstructor))
	subSectionGroup.Post("/create", courseValidators.CreateSubSection(), courseControllers.CreateSubSection)
	subSectionGroup.Put("/update", courseValidators.UpdateSubSection(), courseControllers.UpdateSubSection)
	subSectionGroup.Delete("/:id", courseValidators.SubSectionID(), courseControllers.DeleteSubSection)
}
