package ratingController

import (
	"log"
	"uplearn/database"
	"uplearn/middleware"
	"uplearn/models"
	courseModels "uplearn/models/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateRatingAndReview records a student's review of a course. Only enrolled
// students may review, and only once per course: a second review is a
// business-rule violation and rejected with a Conflict, unlike re-enrollment
// attempts which are treated as harmless.
func CreateRatingAndReview(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedReview").(*struct {
		Rating   int    `json:"rating"`
		Review   string `json:"review"`
		CourseID uint   `json:"courseId"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// The reviewer must be enrolled in the course
	var enrollment courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ?", userID, reqData.CourseID).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Student is not enrolled in this course!", nil)
	}

	// One review per (user, course)
	var existing models.RatingAndReview
	if err := db.Where("user_id = ? AND course_id = ?", userID, reqData.CourseID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Course is already reviewed by the student!", nil)
	}

	review := models.RatingAndReview{
		UserID:   userID,
		CourseID: reqData.CourseID,
		Rating:   reqData.Rating,
		Review:   reqData.Review,
	}

	if err := db.Create(&review).Error; err != nil {
		log.Printf("Error creating review: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error in creating rating for the course, please try again!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Rating and review created successfully.", review)
}

// GetAverageRating returns the mean rating of a course, 0 when unrated
func GetAverageRating(c *fiber.Ctx) error {
	courseID, ok := c.Locals("courseID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please provide a valid course ID!", nil)
	}

	db := database.Database.Db

	var result struct {
		AverageRating *float64
	}
	if err := db.Model(&models.RatingAndReview{}).
		Select("avg(rating) as average_rating").
		Where("course_id = ?", courseID).
		Scan(&result).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong while fetching average rating!", nil)
	}

	if result.AverageRating == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Average rating is 0, no ratings given till now.", fiber.Map{
			"averageRating": 0,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Average rating fetched successfully.", fiber.Map{
		"averageRating": *result.AverageRating,
	})
}

// GetAllRatingsAndReviews lists every review, highest rated first
func GetAllRatingsAndReviews(c *fiber.Ctx) error {
	db := database.Database.Db

	var allReviews []models.RatingAndReview
	if err := db.
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, first_name, last_name, email, image")
		}).
		Order("rating desc").
		Find(&allReviews).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reviews!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "All reviews fetched successfully.", allReviews)
}

// GetCourseRatingAndReviews lists reviews for one course, highest rated first
func GetCourseRatingAndReviews(c *fiber.Ctx) error {
	courseID, ok := c.Locals("courseID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please provide a valid course ID!", nil)
	}

	db := database.Database.Db

	var courseReviews []models.RatingAndReview
	if err := db.Where("course_id = ?", courseID).
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, first_name, last_name, email, image")
		}).
		Order("rating desc").
		Find(&courseReviews).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong, please try again!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Rating and reviews for the course fetched successfully.", courseReviews)
}
