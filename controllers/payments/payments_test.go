package paymentController

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http/httptest"
	"testing"
	"uplearn/config"
	"uplearn/database"
	"uplearn/models"
	courseModels "uplearn/models/course"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testWebhookSecret = "test-webhook-secret"

func setupTest(t *testing.T) *gorm.DB {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:                "test-key",
		SaltRound:             4,
		RazorpayWebhookSecret: testWebhookSecret,
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&courseModels.Course{},
		&courseModels.Enrollment{},
	))

	database.Database = database.DbInstance{Db: db}
	return db
}

func newWebhookApp() *fiber.App {
	app := fiber.New()
	app.Post("/payment/webhook", VerifyWebhook)
	return app
}

func signBody(body []byte) string {
	mac := hmac.New(sha256.New, []byte(testWebhookSecret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func webhookBody(courseID, userID uint) []byte {
	return []byte(fmt.Sprintf(
		`{"payload":{"payment":{"entity":{"notes":{"courseId":"%d","userId":"%d"}}}}}`,
		courseID, userID,
	))
}

func seedCourseAndStudent(t *testing.T, db *gorm.DB) (*courseModels.Course, *models.User) {
	t.Helper()

	user := models.User{FirstName: "Stu", LastName: "Dent", Email: "student@example.com", Password: "hashed"}
	require.NoError(t, db.Create(&user).Error)

	course := courseModels.Course{
		CourseName:        "Distributed Systems",
		CourseDescription: "consensus and friends",
		Price:             499,
		Status:            courseModels.StatusPublished,
		InstructorID:      42,
		CategoryID:        1,
	}
	require.NoError(t, db.Create(&course).Error)

	return &course, &user
}

func TestAmountInMinorUnits(t *testing.T) {
	assert.Equal(t, int64(49900), AmountInMinorUnits(499))
	assert.Equal(t, int64(9999), AmountInMinorUnits(99.99))
	assert.Equal(t, int64(0), AmountInMinorUnits(0))
}

func TestWebhookValidSignatureEnrollsStudent(t *testing.T) {
	db := setupTest(t)
	course, user := seedCourseAndStudent(t, db)
	app := newWebhookApp()

	body := webhookBody(course.ID, user.ID)
	req := httptest.NewRequest("POST", "/payment/webhook", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Razorpay-Signature", signBody(body))

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var count int64
	db.Model(&courseModels.Enrollment{}).
		Where("user_id = ? AND course_id = ?", user.ID, course.ID).
		Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestWebhookTamperedSignatureHasNoSideEffects(t *testing.T) {
	db := setupTest(t)
	course, user := seedCourseAndStudent(t, db)
	app := newWebhookApp()

	body := webhookBody(course.ID, user.ID)
	req := httptest.NewRequest("POST", "/payment/webhook", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Razorpay-Signature", "deadbeef")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var count int64
	db.Model(&courseModels.Enrollment{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Zero(t, count, "tampered notification must not mutate state")
}

func TestWebhookRedeliveryEnrollsExactlyOnce(t *testing.T) {
	db := setupTest(t)
	course, user := seedCourseAndStudent(t, db)
	app := newWebhookApp()

	body := webhookBody(course.ID, user.ID)
	signature := signBody(body)

	// Gateways redeliver; three deliveries must produce one enrollment
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("POST", "/payment/webhook", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Razorpay-Signature", signature)

		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	var count int64
	db.Model(&courseModels.Enrollment{}).
		Where("user_id = ? AND course_id = ?", user.ID, course.ID).
		Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestWebhookUnknownCourseIsRetryable(t *testing.T) {
	db := setupTest(t)
	_, user := seedCourseAndStudent(t, db)
	app := newWebhookApp()

	body := webhookBody(9999, user.ID)
	req := httptest.NewRequest("POST", "/payment/webhook", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Razorpay-Signature", signBody(body))

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode,
		"missing course must yield a server error so the gateway retries")
}

func TestCapturePaymentAlreadyEnrolledShortCircuits(t *testing.T) {
	db := setupTest(t)
	course, user := seedCourseAndStudent(t, db)
	require.NoError(t, db.Create(&courseModels.Enrollment{UserID: user.ID, CourseID: course.ID}).Error)

	app := fiber.New()
	app.Post("/payment/capture", func(c *fiber.Ctx) error {
		c.Locals("userId", user.ID)
		c.Locals("courseID", course.ID)
		return c.Next()
	}, CapturePayment)

	// No gateway configured: the request only succeeds because the
	// already-enrolled path returns before any order is created
	req := httptest.NewRequest("POST", "/payment/capture", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestCapturePaymentUnknownCourse(t *testing.T) {
	db := setupTest(t)
	_, user := seedCourseAndStudent(t, db)

	app := fiber.New()
	app.Post("/payment/capture", func(c *fiber.Ctx) error {
		c.Locals("userId", user.ID)
		c.Locals("courseID", uint(12345))
		return c.Next()
	}, CapturePayment)

	req := httptest.NewRequest("POST", "/payment/capture", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
