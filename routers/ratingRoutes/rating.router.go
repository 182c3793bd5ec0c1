package ratingRoutes

import (
	ratingControllers "uplearn/controllers/rating"
	"uplearn/middleware"
	"uplearn/models"
	ratingValidators "uplearn/validators/rating"

	"github.com/gofiber/fiber/v2"
)

func SetupRatingRoutes(app *fiber.App) {
	ratingGroup := app.Group("/rating")

	ratingGroup.Post("/create", middleware.JWTMiddleware, middleware.RequireAccountType(models.AccountTypeStudent),
		ratingValidators.CreateReview(), ratingControllers.CreateRatingAndReview)
	ratingGroup.Get("/all", ratingControllers.GetAllRatingsAndReviews)
	ratingGroup.Get("/course/:id", ratingValidators.CourseID(), ratingControllers.GetCourseRatingAndReviews)
	ratingGroup.Get("/course/:id/average", ratingValidators.CourseID(), ratingControllers.GetAverageRating)
}
