package courseController

import (
	"log"
	"uplearn/database"
	"uplearn/middleware"
	courseModels "uplearn/models/course"
	"uplearn/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateSubSection adds a video lecture to a section
func CreateSubSection(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSubSection").(*struct {
		Title        string `json:"title"`
		Description  string `json:"description"`
		TimeDuration string `json:"timeDuration"`
		SectionID    uint   `json:"sectionId"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var section courseModels.Section
	if err := db.First(&section, reqData.SectionID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	file, err := c.FormFile("videoFile")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Video file is required!", nil)
	}

	filePath, err := utils.SaveUploadedFile(file, "./public/videos")
	if err != nil {
		log.Printf("Error saving video: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Unable to create sub-section, please try again!", nil)
	}

	subSection := courseModels.SubSection{
		SectionID:    section.ID,
		Title:        reqData.Title,
		Description:  reqData.Description,
		TimeDuration: reqData.TimeDuration,
		VideoURL:     utils.GetFileURL(filePath),
	}

	if err := db.Create(&subSection).Error; err != nil {
		log.Printf("Error creating subsection: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Unable to create sub-section, please try again!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sub-section created successfully.", subSection)
}

// UpdateSubSection updates lecture details; the video file is replaced only
// when a new one is attached
func UpdateSubSection(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSubSectionUpdate").(*struct {
		Title        string `json:"title"`
		Description  string `json:"description"`
		TimeDuration string `json:"timeDuration"`
		SubSectionID uint   `json:"subSectionId"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var subSection courseModels.SubSection
	if err := db.First(&subSection, reqData.SubSectionID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Sub-section not found!", nil)
	}

	if reqData.Title != "" {
		subSection.Title = reqData.Title
	}
	if reqData.Description != "" {
		subSection.Description = reqData.Description
	}
	if reqData.TimeDuration != "" {
		subSection.TimeDuration = reqData.TimeDuration
	}

	if file, err := c.FormFile("videoFile"); err == nil {
		filePath, err := utils.SaveUploadedFile(file, "./public/videos")
		if err != nil {
			log.Printf("Error saving video: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Unable to update sub-section, please try again!", nil)
		}
		subSection.VideoURL = utils.GetFileURL(filePath)
	}

	if err := db.Save(&subSection).Error; err != nil {
		log.Printf("Error updating subsection: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Unable to update sub-section, please try again!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sub-section updated successfully.", subSection)
}

// DeleteSubSection removes a single lecture
func DeleteSubSection(c *fiber.Ctx) error {
	subSectionID, ok := c.Locals("subSectionID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please provide a valid sub-section ID!", nil)
	}

	db := database.Database.Db

	var subSection courseModels.SubSection
	if err := db.First(&subSection, subSectionID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Sub-section not found!", nil)
	}

	if err := db.Unscoped().Delete(&subSection).Error; err != nil {
		log.Printf("Error deleting subsection %d: %v", subSection.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Unable to delete sub-section, please try again!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sub-section deleted successfully.", nil)
}
