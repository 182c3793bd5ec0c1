package courseController

import (
	"log"
	"uplearn/database"
	"uplearn/middleware"
	"uplearn/models"
	courseModels "uplearn/models/course"
	"uplearn/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateCourse creates a new course owned by the authenticated instructor
func CreateCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*struct {
		CourseName        string  `json:"courseName"`
		CourseDescription string  `json:"courseDescription"`
		WhatYouWillLearn  string  `json:"whatYouWillLearn"`
		Price             float64 `json:"price"`
		CategoryID        uint    `json:"categoryId"`
		Tag               string  `json:"tag"`
		Instructions      string  `json:"instructions"`
		Status            string  `json:"status"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var instructor models.User
	if err := db.Where("id = ? AND account_type = ?", userID, models.AccountTypeInstructor).First(&instructor).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Instructor details not found!", nil)
	}

	// Check given category is valid or not
	var category models.Category
	if err := db.First(&category, reqData.CategoryID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category details not found!", nil)
	}

	status := reqData.Status
	if status == "" {
		status = courseModels.StatusDraft
	}

	// Thumbnail upload is optional at creation time
	thumbnail := ""
	if file, err := c.FormFile("thumbnailImage"); err == nil {
		filePath, err := utils.SaveUploadedFile(file, "./public/uploads")
		if err != nil {
			log.Printf("Error saving thumbnail: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to upload thumbnail!", nil)
		}
		thumbnail = utils.GetFileURL(filePath)
	}

	newCourse := courseModels.Course{
		CourseName:        reqData.CourseName,
		CourseDescription: reqData.CourseDescription,
		WhatYouWillLearn:  reqData.WhatYouWillLearn,
		Price:             reqData.Price,
		Thumbnail:         thumbnail,
		Tag:               reqData.Tag,
		Instructions:      reqData.Instructions,
		Status:            status,
		InstructorID:      instructor.ID,
		CategoryID:        category.ID,
	}

	if err := db.Create(&newCourse).Error; err != nil {
		log.Printf("Error creating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course created successfully.", newCourse)
}

// GetAllCourses lists all published courses with their instructors
func GetAllCourses(c *fiber.Ctx) error {
	db := database.Database.Db

	var allCourses []courseModels.Course
	if err := db.Where("status = ?", courseModels.StatusPublished).
		Preload("Instructor").
		Find(&allCourses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Cannot fetch course data!", nil)
	}

	for i := range allCourses {
		allCourses[i].Instructor.Password = ""
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Data for all courses fetched successfully.", allCourses)
}

// GetCourseDetails returns one course with everything preloaded
func GetCourseDetails(c *fiber.Ctx) error {
	courseID, ok := c.Locals("courseID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please provide a valid course ID!", nil)
	}

	db := database.Database.Db

	var course courseModels.Course
	if err := db.
		Preload("Instructor").
		Preload("Instructor.Profile").
		Preload("Category").
		Preload("Sections", func(db *gorm.DB) *gorm.DB { return db.Order("position asc") }).
		Preload("Sections.SubSections").
		First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Could not find the course with given course ID!", nil)
	}

	course.Instructor.Password = ""

	// Reviews are fetched alongside rather than embedded in the course row
	var reviews []models.RatingAndReview
	if err := db.Where("course_id = ?", courseID).Find(&reviews).Error; err != nil {
		log.Printf("Error fetching reviews for course %d: %v", courseID, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully.", fiber.Map{
		"course":           course,
		"ratingAndReviews": reviews,
	})
}
