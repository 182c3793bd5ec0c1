package paymentController

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"strconv"
	"uplearn/config"
	"uplearn/database"
	"uplearn/middleware"
	"uplearn/models"
	courseModels "uplearn/models/course"
	"uplearn/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// AmountInMinorUnits converts a course price to the gateway's minor units
// (paise), rounding to dodge float representation drift.
func AmountInMinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

// CapturePayment creates a payment order for a course. The courseId and userId
// ride along as gateway notes and come back in the webhook, which is how the
// reconciler knows who to enroll where.
func CapturePayment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID, ok := c.Locals("courseID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please provide a valid course ID!", nil)
	}

	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ? AND status = ?", courseID, courseModels.StatusPublished).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Could not find the course!", nil)
	}

	// Already paid for the same course: succeed without a new order
	var existing courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Student is already enrolled.", nil)
	}

	amountMinorUnits := AmountInMinorUnits(course.Price)
	notes := map[string]string{
		"courseId": strconv.FormatUint(uint64(courseID), 10),
		"userId":   strconv.FormatUint(uint64(userID), 10),
	}

	order, err := utils.CreateRazorpayOrder(amountMinorUnits, "INR", uuid.NewString(), notes)
	if err != nil {
		log.Printf("Error creating payment order for course %d: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Could not initiate order!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Order created successfully.", fiber.Map{
		"courseName":        course.CourseName,
		"courseDescription": course.CourseDescription,
		"thumbnail":         course.Thumbnail,
		"orderId":           order.ID,
		"currency":          order.Currency,
		"amount":            order.Amount,
	})
}

// webhookPayload mirrors the slice of the gateway notification we consume
type webhookPayload struct {
	Payload struct {
		Payment struct {
			Entity struct {
				Notes struct {
					CourseID string `json:"courseId"`
					UserID   string `json:"userId"`
				} `json:"notes"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

// VerifyWebhook handles the payment gateway's completion notification. The
// signature check is the only thing that makes the embedded notes trustworthy.
// Enrollment is idempotent: gateways redeliver, and a duplicate notification
// must enroll nobody twice. Missing course or user yields a 500 so the
// gateway's retry logic re-attempts once the data issue is fixed.
func VerifyWebhook(c *fiber.Ctx) error {
	rawBody := c.Body()
	signature := c.Get("X-Razorpay-Signature")

	if !utils.VerifyWebhookSignature(rawBody, signature, config.AppConfig.RazorpayWebhookSecret) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request!", nil)
	}

	var payload webhookPayload
	if err := json.Unmarshal(rawBody, &payload); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	notes := payload.Payload.Payment.Entity.Notes
	courseID, err := strconv.ParseUint(notes.CourseID, 10, 64)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course reference in notification!", nil)
	}
	userID, err := strconv.ParseUint(notes.UserID, 10, 64)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user reference in notification!", nil)
	}

	db := database.Database.Db

	var course courseModels.Course
	if err := db.First(&course, uint(courseID)).Error; err != nil {
		log.Printf("Webhook: course %d not found: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Course not found!", nil)
	}

	var user models.User
	if err := db.First(&user, uint(userID)).Error; err != nil {
		log.Printf("Webhook: user %d not found: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Student not found!", nil)
	}

	// Redelivered notification: the enrollment already exists, report success
	// so the gateway stops retrying
	var existing courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ?", user.ID, course.ID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Student is already enrolled.", nil)
	}

	enrollment := courseModels.Enrollment{
		UserID:   user.ID,
		CourseID: course.ID,
	}
	if err := db.Create(&enrollment).Error; err != nil {
		// A concurrent delivery may have won the race on the unique index;
		// that still means the student is enrolled exactly once
		var check courseModels.Enrollment
		if lookupErr := db.Where("user_id = ? AND course_id = ?", user.ID, course.ID).First(&check).Error; lookupErr == nil {
			return middleware.JsonResponse(c, fiber.StatusOK, true, "Student is already enrolled.", nil)
		}
		log.Printf("Webhook: failed to enroll user %d in course %d: %v", user.ID, course.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll student!", nil)
	}

	// Confirmation email is advisory; a send failure never fails the webhook
	utils.SendEnrollmentEmail(user.Email, user.FirstName, course.CourseName)

	log.Printf("Webhook: user %d enrolled in course %d (%s)", user.ID, course.ID, course.CourseName)

	return middleware.JsonResponse(c, fiber.StatusOK, true,
		fmt.Sprintf("Signature verified and student enrolled in %s.", course.CourseName), nil)
}
