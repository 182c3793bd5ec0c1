package profileController

import (
	"net/http/httptest"
	"testing"
	"time"
	"uplearn/config"
	"uplearn/database"
	"uplearn/models"
	courseModels "uplearn/models/course"
	"uplearn/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTest(t *testing.T) *gorm.DB {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:            "test-key",
		SaltRound:         4,
		DeletionGraceDays: 5,
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
		&models.RatingAndReview{},
		&courseModels.Course{},
		&courseModels.Enrollment{},
	))

	database.Database = database.DbInstance{Db: db}
	return db
}

func seedUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	profile := models.Profile{About: "bio"}
	require.NoError(t, db.Create(&profile).Error)

	user := models.User{
		FirstName: "Del",
		LastName:  "Eter",
		Email:     "deleter@example.com",
		Password:  "hashed",
		ProfileID: profile.ID,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func deleteAccountApp(userID uint) *fiber.App {
	app := fiber.New()
	app.Delete("/profile/delete", func(c *fiber.Ctx) error {
		c.Locals("userId", userID)
		return c.Next()
	}, DeleteAccount)
	return app
}

func TestDeleteAccountSchedulesDeferredDeletion(t *testing.T) {
	db := setupTest(t)
	user := seedUser(t, db)

	course := courseModels.Course{CourseName: "Algorithms", CourseDescription: "sorting", Price: 100, InstructorID: 7, CategoryID: 1}
	require.NoError(t, db.Create(&course).Error)
	require.NoError(t, db.Create(&courseModels.Enrollment{UserID: user.ID, CourseID: course.ID}).Error)

	app := deleteAccountApp(user.ID)
	before := time.Now()

	resp, err := app.Test(httptest.NewRequest("DELETE", "/profile/delete", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Profile PII is purged immediately
	var profileCount int64
	db.Model(&models.Profile{}).Unscoped().Where("id = ?", user.ProfileID).Count(&profileCount)
	assert.Zero(t, profileCount)

	// Enrollments are removed eagerly so counts reflect the departure
	var enrollmentCount int64
	db.Model(&courseModels.Enrollment{}).Unscoped().Where("user_id = ?", user.ID).Count(&enrollmentCount)
	assert.Zero(t, enrollmentCount)

	// The user row lingers as a tombstone with the grace deadline set
	var updated models.User
	require.NoError(t, db.First(&updated, user.ID).Error)
	assert.True(t, updated.PendingDelete)
	require.NotNil(t, updated.DeleteAt)

	wantDeleteAt := before.AddDate(0, 0, config.AppConfig.DeletionGraceDays)
	assert.WithinDuration(t, wantDeleteAt, *updated.DeleteAt, time.Minute)
}

func TestDeleteAccountFirstRequestWins(t *testing.T) {
	db := setupTest(t)
	user := seedUser(t, db)
	app := deleteAccountApp(user.ID)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/profile/delete", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var first models.User
	require.NoError(t, db.First(&first, user.ID).Error)
	require.NotNil(t, first.DeleteAt)
	firstDeadline := *first.DeleteAt

	// Second request must not push the deadline out
	resp, err = app.Test(httptest.NewRequest("DELETE", "/profile/delete", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var second models.User
	require.NoError(t, db.First(&second, user.ID).Error)
	require.NotNil(t, second.DeleteAt)
	assert.True(t, firstDeadline.Equal(*second.DeleteAt), "repeat deletion request must not reset deleteAt")
}

func TestDeleteAccountUnknownUser(t *testing.T) {
	setupTest(t)
	app := deleteAccountApp(999)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/profile/delete", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDeleteRequestThenSweepRemovesEverything(t *testing.T) {
	db := setupTest(t)
	user := seedUser(t, db)
	app := deleteAccountApp(user.ID)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/profile/delete", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Fast-forward: pretend the grace period has elapsed
	past := time.Now().Add(-time.Minute)
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", user.ID).Update("delete_at", past).Error)

	utils.SweepPendingDeletions(db)

	var count int64
	db.Model(&models.User{}).Unscoped().Where("id = ?", user.ID).Count(&count)
	assert.Zero(t, count, "user must be fully removed after request + sweep")
}
