package courseController

import (
	"log"
	"uplearn/database"
	"uplearn/middleware"
	courseModels "uplearn/models/course"

	"github.com/gofiber/fiber/v2"
)

// CreateSection adds an ordered section to a course
func CreateSection(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSection").(*struct {
		SectionName string `json:"sectionName"`
		CourseID    uint   `json:"courseId"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course courseModels.Course
	if err := db.First(&course, reqData.CourseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// Append at the end of the current section order
	var count int64
	db.Model(&courseModels.Section{}).Where("course_id = ?", course.ID).Count(&count)

	newSection := courseModels.Section{
		CourseID:    course.ID,
		SectionName: reqData.SectionName,
		Position:    int(count),
	}

	if err := db.Create(&newSection).Error; err != nil {
		log.Printf("Error creating section: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Unable to create section, please try again!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section created successfully.", newSection)
}

// UpdateSection renames a section
func UpdateSection(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSectionUpdate").(*struct {
		SectionName string `json:"sectionName"`
		SectionID   uint   `json:"sectionId"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var section courseModels.Section
	if err := db.First(&section, reqData.SectionID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	if err := db.Model(&section).Update("section_name", reqData.SectionName).Error; err != nil {
		log.Printf("Error updating section: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Unable to update section, please try again!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section updated successfully.", section)
}

// DeleteSection removes a section and all subsections that belong to it, so
// no orphaned content rows are left behind
func DeleteSection(c *fiber.Ctx) error {
	sectionID, ok := c.Locals("sectionID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please provide a valid section ID!", nil)
	}

	db := database.Database.Db

	var section courseModels.Section
	if err := db.First(&section, sectionID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	// Delete all subsections belonging to this section first
	if err := db.Unscoped().Where("section_id = ?", section.ID).Delete(&courseModels.SubSection{}).Error; err != nil {
		log.Printf("Error deleting subsections of section %d: %v", section.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Unable to delete section, please try again!", nil)
	}

	if err := db.Unscoped().Delete(&section).Error; err != nil {
		log.Printf("Error deleting section %d: %v", section.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Unable to delete section, please try again!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section deleted successfully.", nil)
}
