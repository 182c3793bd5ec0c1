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
	"gorm.io/gorm"
)

// SendOTP generates and emails a one-time code for email verification during signup
func SendOTP(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSendOTP").(*struct {
		Email string `json:"email"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check if a user already exists with the given email
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email already registered, please try logging in!", nil)
	}

	otp := utils.GenerateOTP()

	if err := db.Create(&models.OTP{Email: reqData.Email, Code: otp}).Error; err != nil {
		log.Printf("Error saving OTP: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to send OTP!", nil)
	}

	utils.SendOTPEmail(reqData.Email, otp)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "OTP sent successfully to the email.", nil)
}

// Signup registers a new user after validating the most recent, unexpired OTP
// sent to the email
func Signup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSignup").(*struct {
		FirstName       string `json:"firstName"`
		LastName        string `json:"lastName"`
		Email           string `json:"email"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirmPassword"`
		AccountType     string `json:"accountType"`
		ContactNumber   string `json:"contactNumber"`
		OTP             string `json:"otp"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check if email already exists
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "User is already registered, please login!", nil)
	}

	// Validate against the most recent OTP stored for the email
	var recentOtp models.OTP
	if err := db.Where("email = ?", reqData.Email).Order("created_at desc").First(&recentOtp).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "OTP not found, please request a new one!", nil)
	}
	if recentOtp.Code != reqData.OTP {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid OTP, please try again!", nil)
	}
	if time.Since(recentOtp.CreatedAt) > models.OTPValidity {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "OTP has expired, please request a new one!", nil)
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	// Profile is created together with the user and owns its lifecycle jointly
	profile := models.Profile{ContactNumber: reqData.ContactNumber}
	if err := db.Create(&profile).Error; err != nil {
		log.Printf("Error creating profile: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register user!", nil)
	}

	newUser := models.User{
		FirstName:   reqData.FirstName,
		LastName:    reqData.LastName,
		Email:       reqData.Email,
		Password:    string(hashedPassword),
		AccountType: reqData.AccountType,
		ProfileID:   profile.ID,
		Image:       utils.DefaultAvatarURL(reqData.FirstName, reqData.LastName),
	}

	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register user!", nil)
	}

	utils.SendWelcomeEmail(newUser.Email, newUser.FirstName)

	// Clean Response
	newUser.Password = ""

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", newUser)
}

// Login verifies credentials and issues a JWT, both in the body and as a cookie
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("email = ?", reqData.Email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Email not registered, please sign up first!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error in login, please try again!", nil)
	}

	// An account scheduled for deletion can no longer authenticate
	if user.PendingDelete {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "This account is scheduled for deletion!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Password is incorrect, please try again!", nil)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Email, user.AccountType)
	if err != nil {
		log.Printf("Error generating JWT: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error in login, please try again!", nil)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    token,
		MaxAge:   24 * 60 * 60,
		HTTPOnly: true,
	})

	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User logged in successfully.", fiber.Map{
		"user":  user,
		"token": token,
	})
}

// ChangePassword updates the password of the authenticated user
func ChangePassword(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedChangePassword").(*struct {
		OldPassword        string `json:"oldPassword"`
		NewPassword        string `json:"newPassword"`
		ConfirmNewPassword string `json:"confirmNewPassword"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.OldPassword)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Old password is incorrect!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.NewPassword), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update password!", nil)
	}

	if err := db.Model(&user).Update("password", string(hashedPassword)).Error; err != nil {
		log.Printf("Error updating password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update password!", nil)
	}

	utils.SendPasswordUpdatedEmail(user.Email, user.FirstName)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Password updated successfully.", nil)
}
