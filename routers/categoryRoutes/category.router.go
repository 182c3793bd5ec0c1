package categoryRoutes

import (
	categoryControllers "uplearn/controllers/category"
	"uplearn/middleware"
	"uplearn/models"
	categoryValidators "uplearn/validators/category"

	"github.com/gofiber/fiber/v2"
)

func SetupCategoryRoutes(app *fiber.App) {
	categoryGroup := app.Group("/category")

	categoryGroup.Post("/create", middleware.JWTMiddleware, middleware.RequireAccountType(models.AccountTypeAdmin),
		categoryValidators.CreateCategory(), categoryControllers.CreateCategory)
	categoryGroup.Get("/all", categoryControllers.ShowAllCategories)
	categoryGroup.Get("/:id/page", categoryValidators.CategoryID(), categoryControllers.CategoryPageDetails)
}
