package profileController

import (
	"fmt"
	"log"
	"time"
	"uplearn/config"
	"uplearn/database"
	"uplearn/middleware"
	"uplearn/models"
	courseModels "uplearn/models/course"
	"uplearn/utils"

	"github.com/gofiber/fiber/v2"
)

// UpdateProfile updates the personal details of the authenticated user
func UpdateProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedProfile").(*struct {
		Gender        string `json:"gender"`
		DateOfBirth   string `json:"dateOfBirth"`
		About         string `json:"about"`
		ContactNumber string `json:"contactNumber"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	var profile models.Profile
	if err := db.First(&profile, user.ProfileID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Profile not found!", nil)
	}

	profile.Gender = reqData.Gender
	profile.DateOfBirth = reqData.DateOfBirth
	profile.About = reqData.About
	profile.ContactNumber = reqData.ContactNumber

	if err := db.Save(&profile).Error; err != nil {
		log.Printf("Error updating profile: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error in updating profile, please try again!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully.", profile)
}

// GetUserDetails returns the user record with its profile preloaded
func GetUserDetails(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Preload("Profile").First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User data fetched successfully.", user)
}

// GetEnrolledCourses lists all courses the authenticated user is enrolled in
func GetEnrolledCourses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var enrollments []courseModels.Enrollment
	if err := db.Where("user_id = ?", userID).
		Preload("Course").
		Order("created_at desc").
		Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrolled courses!", nil)
	}

	courses := make([]courseModels.Course, 0, len(enrollments))
	for _, enrollment := range enrollments {
		courses = append(courses, enrollment.Course)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled courses fetched successfully.", courses)
}

// UpdateDisplayPicture replaces the profile picture of the authenticated user
func UpdateDisplayPicture(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	file, err := c.FormFile("displayPicture")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No picture file uploaded!", nil)
	}

	filePath, err := utils.SaveUploadedFile(file, "./public/uploads")
	if err != nil {
		log.Printf("Error saving display picture: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error in updating profile picture!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if err := db.Model(&user).Update("image", utils.GetFileURL(filePath)).Error; err != nil {
		log.Printf("Error updating display picture: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error in updating profile picture!", nil)
	}

	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Image updated successfully.", user)
}

// DeleteAccount schedules the authenticated user's account for deletion. The
// profile is purged right away; the user record is tombstoned with
// pending_delete and swept once the grace period ends. First request wins: a
// repeat call does not push the deletion date further out.
func DeleteAccount(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	graceDays := config.AppConfig.DeletionGraceDays

	if user.PendingDelete {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Account is already scheduled for deletion.", fiber.Map{
			"deleteAt": user.DeleteAt,
		})
	}

	// Unenroll eagerly so enrollment counts reflect the departure immediately.
	// The sweep repeats this step, so a failure here is recoverable.
	if err := db.Unscoped().Where("user_id = ?", userID).Delete(&courseModels.Enrollment{}).Error; err != nil {
		log.Printf("Error unenrolling user %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error in deleting account, please try again!", nil)
	}

	// Purge profile PII immediately; this part is irreversible
	if user.ProfileID != 0 {
		if err := db.Unscoped().Delete(&models.Profile{}, user.ProfileID).Error; err != nil {
			log.Printf("Error deleting profile of user %d: %v", userID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error in deleting account, please try again!", nil)
		}
	}

	deleteAt := time.Now().AddDate(0, 0, graceDays)
	if err := db.Model(&user).Updates(map[string]interface{}{
		"pending_delete": true,
		"delete_at":      deleteAt,
	}).Error; err != nil {
		log.Printf("Error scheduling deletion of user %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error in deleting account, please try again!", nil)
	}

	message := fmt.Sprintf("Account scheduled for deletion in %d days.", graceDays)
	return middleware.JsonResponse(c, fiber.StatusOK, true, message, fiber.Map{"deleteAt": deleteAt})
}
