package profileRoutes

import (
	profileControllers "uplearn/controllers/profile"
	"uplearn/middleware"
	profileValidators "uplearn/validators/profile"

	"github.com/gofiber/fiber/v2"
)

func SetupProfileRoutes(app *fiber.App) {
	profileGroup := app.Group("/profile", middleware.JWTMiddleware)

	profileGroup.Put("/update", profileValidators.UpdateProfile(), profileControllers.UpdateProfile)
	profileGroup.Get("/details", profileControllers.GetUserDetails)
	profileGroup.Get("/enrolled-courses", profileControllers.GetEnrolledCourses)
	profileGroup.Put("/display-picture", profileControllers.UpdateDisplayPicture)
	profileGroup.Delete("/delete", profileControllers.DeleteAccount)
}
