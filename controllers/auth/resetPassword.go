package authController

import (
	"log"
	"time"
	"uplearn/config"
	"uplearn/database"
	"uplearn/middleware"
	"uplearn/models"
	"uplearn/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// ResetPasswordToken emails a reset link containing a short-lived token
func ResetPasswordToken(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSendOTP").(*struct {
		Email string `json:"email"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("email = ?", reqData.Email).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "No user exists with given email, please try again!", nil)
	}

	token, err := utils.GenerateResetToken()
	if err != nil {
		log.Printf("Error generating reset token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate reset link!", nil)
	}

	expires := time.Now().Add(5 * time.Minute)
	if err := db.Model(&user).Updates(map[string]interface{}{
		"reset_token":         token,
		"reset_token_expires": expires,
	}).Error; err != nil {
		log.Printf("Error storing reset token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate reset link!", nil)
	}

	resetURL := config.AppConfig.FrontendBaseURL + "/update-password/" + token
	utils.SendResetPasswordEmail(user.Email, resetURL)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Email sent successfully, please check it to change your password.", nil)
}

// ResetPassword sets a new password for the user matching a valid reset token
func ResetPassword(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedResetPassword").(*struct {
		Token           string `json:"token"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirmPassword"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("reset_token = ? AND reset_token <> ''", reqData.Token).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Token is invalid!", nil)
	}

	if user.ResetTokenExpires == nil || user.ResetTokenExpires.Before(time.Now()) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Token to reset password is expired, please generate a new link!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reset password!", nil)
	}

	if err := db.Model(&user).Updates(map[string]interface{}{
		"password":            string(hashedPassword),
		"reset_token":         "",
		"reset_token_expires": nil,
	}).Error; err != nil {
		log.Printf("Error resetting password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reset password!", nil)
	}

	utils.SendPasswordUpdatedEmail(user.Email, user.FirstName)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Password reset successfully.", nil)
}
