package utils

import (
	"testing"
	"time"
	"uplearn/models"
	courseModels "uplearn/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

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
		&models.OTP{},
		&models.RatingAndReview{},
		&courseModels.Course{},
		&courseModels.Enrollment{},
	))

	return db
}

func seedPendingUser(t *testing.T, db *gorm.DB, email string, deleteAt time.Time) *models.User {
	t.Helper()

	profile := models.Profile{About: "to be purged"}
	require.NoError(t, db.Create(&profile).Error)

	user := models.User{
		FirstName:     "Test",
		LastName:      "User",
		Email:         email,
		Password:      "hashed",
		ProfileID:     profile.ID,
		PendingDelete: true,
		DeleteAt:      &deleteAt,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func TestSweepDeletesUsersPastGracePeriod(t *testing.T) {
	db := setupTestDB(t)

	user := seedPendingUser(t, db, "due@example.com", time.Now().Add(-time.Minute))

	course := courseModels.Course{CourseName: "Go Basics", CourseDescription: "intro", Price: 499, InstructorID: 99, CategoryID: 1}
	require.NoError(t, db.Create(&course).Error)
	require.NoError(t, db.Create(&courseModels.Enrollment{UserID: user.ID, CourseID: course.ID}).Error)
	require.NoError(t, db.Create(&models.RatingAndReview{UserID: user.ID, CourseID: course.ID, Rating: 4}).Error)

	SweepPendingDeletions(db)

	var userCount, profileCount, enrollmentCount, reviewCount int64
	db.Model(&models.User{}).Unscoped().Where("id = ?", user.ID).Count(&userCount)
	db.Model(&models.Profile{}).Unscoped().Where("id = ?", user.ProfileID).Count(&profileCount)
	db.Model(&courseModels.Enrollment{}).Unscoped().Where("user_id = ?", user.ID).Count(&enrollmentCount)
	db.Model(&models.RatingAndReview{}).Unscoped().Where("user_id = ?", user.ID).Count(&reviewCount)

	assert.Zero(t, userCount, "user record should be gone")
	assert.Zero(t, profileCount, "profile should be gone")
	assert.Zero(t, enrollmentCount, "user should appear in no enrollments")
	assert.Zero(t, reviewCount, "user should have no reviews")
}

func TestSweepLeavesUsersInsideGracePeriod(t *testing.T) {
	db := setupTestDB(t)

	user := seedPendingUser(t, db, "not-due@example.com", time.Now().Add(24*time.Hour))

	SweepPendingDeletions(db)

	var found models.User
	assert.NoError(t, db.First(&found, user.ID).Error, "user inside grace period must survive the sweep")
}

func TestSweepLeavesActiveUsers(t *testing.T) {
	db := setupTestDB(t)

	user := models.User{FirstName: "Active", LastName: "User", Email: "active@example.com", Password: "hashed"}
	require.NoError(t, db.Create(&user).Error)

	SweepPendingDeletions(db)

	var found models.User
	assert.NoError(t, db.First(&found, user.ID).Error)
}

func TestSweepIsIdempotentForAlreadyCleanedUsers(t *testing.T) {
	db := setupTestDB(t)

	// A user whose request-time cleanup already removed profile and
	// enrollments; the sweep must still remove the user record without error
	deleteAt := time.Now().Add(-time.Minute)
	user := models.User{
		FirstName:     "Half",
		LastName:      "Cleaned",
		Email:         "half@example.com",
		Password:      "hashed",
		ProfileID:     0,
		PendingDelete: true,
		DeleteAt:      &deleteAt,
	}
	require.NoError(t, db.Create(&user).Error)

	SweepPendingDeletions(db)

	var count int64
	db.Model(&models.User{}).Unscoped().Where("id = ?", user.ID).Count(&count)
	assert.Zero(t, count)
}

func TestSweepProcessesMultipleUsers(t *testing.T) {
	db := setupTestDB(t)

	u1 := seedPendingUser(t, db, "first@example.com", time.Now().Add(-time.Hour))
	u2 := seedPendingUser(t, db, "second@example.com", time.Now().Add(-time.Hour))

	SweepPendingDeletions(db)

	var count int64
	db.Model(&models.User{}).Unscoped().Where("id IN ?", []uint{u1.ID, u2.ID}).Count(&count)
	assert.Zero(t, count)
}

func TestSweepContinuesPastFailingUser(t *testing.T) {
	db := setupTestDB(t)

	broken := seedPendingUser(t, db, "broken@example.com", time.Now().Add(-time.Hour))

	deleteAt := time.Now().Add(-time.Hour)
	healthy := models.User{
		FirstName:     "Still",
		LastName:      "Fine",
		Email:         "healthy@example.com",
		Password:      "hashed",
		ProfileID:     0,
		PendingDelete: true,
		DeleteAt:      &deleteAt,
	}
	require.NoError(t, db.Create(&healthy).Error)

	// Dropping the profiles table makes the first user's cascade error out at
	// the profile step; the second user has no profile row and must still be
	// cleaned up by the same sweep
	require.NoError(t, db.Migrator().DropTable(&models.Profile{}))

	SweepPendingDeletions(db)

	var brokenCount, healthyCount int64
	db.Model(&models.User{}).Unscoped().Where("id = ?", broken.ID).Count(&brokenCount)
	db.Model(&models.User{}).Unscoped().Where("id = ?", healthy.ID).Count(&healthyCount)

	assert.Equal(t, int64(1), brokenCount, "a user whose cascade fails stays for the next sweep")
	assert.Zero(t, healthyCount, "one user's failure must not abort the rest of the batch")
}

func TestPurgeExpiredOTPs(t *testing.T) {
	db := setupTestDB(t)

	stale := models.OTP{Email: "stale@example.com", Code: "111111"}
	require.NoError(t, db.Create(&stale).Error)
	require.NoError(t, db.Model(&stale).Update("created_at", time.Now().Add(-time.Hour)).Error)

	fresh := models.OTP{Email: "fresh@example.com", Code: "222222"}
	require.NoError(t, db.Create(&fresh).Error)

	PurgeExpiredOTPs(db)

	var staleCount, freshCount int64
	db.Model(&models.OTP{}).Unscoped().Where("id = ?", stale.ID).Count(&staleCount)
	db.Model(&models.OTP{}).Unscoped().Where("id = ?", fresh.ID).Count(&freshCount)

	assert.Zero(t, staleCount, "codes past their validity window are removed")
	assert.Equal(t, int64(1), freshCount, "codes still inside the window survive")
}

func TestSweepSkipsWhenPreviousSweepStillRunning(t *testing.T) {
	db := setupTestDB(t)

	user := seedPendingUser(t, db, "locked@example.com", time.Now().Add(-time.Minute))

	// Simulate a sweep in flight: the overlapping tick must do nothing
	sweepMu.Lock()
	SweepPendingDeletions(db)
	sweepMu.Unlock()

	var found models.User
	assert.NoError(t, db.First(&found, user.ID).Error, "overlapping sweep tick must be skipped")

	// Once the lock is free, the next tick cleans up
	SweepPendingDeletions(db)
	var count int64
	db.Model(&models.User{}).Unscoped().Where("id = ?", user.ID).Count(&count)
	assert.Zero(t, count)
}
