package categoryController

import (
	"log"
	"uplearn/database"
	"uplearn/middleware"
	"uplearn/models"
	courseModels "uplearn/models/course"

	"github.com/gofiber/fiber/v2"
)

// CreateCategory creates a browsing category (admin only)
func CreateCategory(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCategory").(*struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	category := models.Category{
		Name:        reqData.Name,
		Description: reqData.Description,
	}

	if err := db.Create(&category).Error; err != nil {
		log.Printf("Error creating category: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category created successfully.", category)
}

// ShowAllCategories lists every category
func ShowAllCategories(c *fiber.Ctx) error {
	db := database.Database.Db

	var allCategories []models.Category
	if err := db.Find(&allCategories).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch categories!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "All categories returned successfully.", allCategories)
}

// CategoryPageDetails builds the category landing page: the selected
// category's courses, courses from other categories, and the category's
// top-selling courses ranked by enrollment count.
func CategoryPageDetails(c *fiber.Ctx) error {
	categoryID, ok := c.Locals("categoryID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please provide a valid category ID!", nil)
	}

	db := database.Database.Db

	var selectedCategory models.Category
	if err := db.First(&selectedCategory, categoryID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
	}

	var selectedCourses []courseModels.Course
	if err := db.Where("category_id = ? AND status = ?", categoryID, courseModels.StatusPublished).
		Find(&selectedCourses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch category courses!", nil)
	}

	var differentCourses []courseModels.Course
	if err := db.Where("category_id <> ? AND status = ?", categoryID, courseModels.StatusPublished).
		Find(&differentCourses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch other courses!", nil)
	}

	// Top selling: rank by enrollment count via a join on the enrollments table
	var topSellingCourses []courseModels.Course
	if err := db.Model(&courseModels.Course{}).
		Select("courses.*, count(enrollments.id) as enrolled_count").
		Joins("LEFT JOIN enrollments ON enrollments.course_id = courses.id AND enrollments.deleted_at IS NULL").
		Where("courses.category_id = ? AND courses.status = ?", categoryID, courseModels.StatusPublished).
		Group("courses.id").
		Order("enrolled_count desc").
		Limit(10).
		Find(&topSellingCourses).Error; err != nil {
		log.Printf("Error fetching top selling courses for category %d: %v", categoryID, err)
	}

	var newestCourses []courseModels.Course
	if err := db.Where("category_id = ? AND status = ?", categoryID, courseModels.StatusPublished).
		Order("created_at desc").
		Limit(10).
		Find(&newestCourses).Error; err != nil {
		log.Printf("Error fetching newest courses for category %d: %v", categoryID, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category page details fetched successfully.", fiber.Map{
		"selectedCategory":  selectedCategory,
		"selectedCourses":   selectedCourses,
		"differentCourses":  differentCourses,
		"topSellingCourses": topSellingCourses,
		"newestCourses":     newestCourses,
	})
}
