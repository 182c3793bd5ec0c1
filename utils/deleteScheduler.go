package utils

import (
	"log"
	"sync"
	"time"
	"uplearn/database"
	"uplearn/models"
	courseModels "uplearn/models/course"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// sweepMu guarantees at most one sweep in flight. A cron tick that lands while
// the previous sweep is still running is skipped, not queued.
var sweepMu sync.Mutex

// InitializeDeleteScheduler starts the account deletion sweep. It runs every
// minute; correctness only requires that accounts are removed eventually after
// their grace period ends.
func InitializeDeleteScheduler() {
	log.Println("[DELETE-SCHEDULER] Initializing account deletion scheduler...")

	c := cron.New()

	c.AddFunc("* * * * *", func() {
		SweepPendingDeletions(database.Database.Db)
		PurgeExpiredOTPs(database.Database.Db)
	})

	c.Start()
	log.Println("[DELETE-SCHEDULER] Account deletion scheduler started - runs every minute")
}

// SweepPendingDeletions finalizes every account whose grace period has passed:
// pending_delete set and delete_at in the past. Each user's cleanup is
// independent; a failure on one user is logged and the sweep moves on.
func SweepPendingDeletions(db *gorm.DB) {
	if !sweepMu.TryLock() {
		log.Println("[DELETE-SCHEDULER] Previous sweep still running, skipping this tick")
		return
	}
	defer sweepMu.Unlock()

	now := time.Now()

	var usersToDelete []models.User
	if err := db.
		Where("pending_delete = ? AND delete_at IS NOT NULL AND delete_at <= ?", true, now).
		Find(&usersToDelete).Error; err != nil {
		log.Printf("[DELETE-SCHEDULER] Error fetching users pending deletion: %v", err)
		return
	}

	if len(usersToDelete) == 0 {
		return
	}

	log.Printf("[DELETE-SCHEDULER] Found %d accounts past their grace period", len(usersToDelete))

	for _, user := range usersToDelete {
		if err := FinalizeUserDeletion(db, &user); err != nil {
			log.Printf("[DELETE-SCHEDULER] Error deleting user %d: %v", user.ID, err)
			continue
		}
		log.Printf("[DELETE-SCHEDULER] Account %d (%s) permanently deleted", user.ID, user.Email)
	}
}

// FinalizeUserDeletion performs the ordered, cascading cleanup for one user.
// Every step is safe to repeat: the request-time cleanup may already have
// removed enrollments and the profile, and a user created by administrative
// action may never have gone through the request path at all.
func FinalizeUserDeletion(db *gorm.DB, user *models.User) error {
	// Unenroll from all courses
	if err := db.Unscoped().
		Where("user_id = ?", user.ID).
		Delete(&courseModels.Enrollment{}).Error; err != nil {
		return err
	}

	// Delete ratings and reviews authored by the user
	if err := db.Unscoped().
		Where("user_id = ?", user.ID).
		Delete(&models.RatingAndReview{}).Error; err != nil {
		return err
	}

	// Delete the profile if it still exists; no-op when the request-time
	// cleanup already removed it
	if user.ProfileID != 0 {
		if err := db.Unscoped().Delete(&models.Profile{}, user.ProfileID).Error; err != nil {
			return err
		}
	}

	// Finally remove the user record itself
	return db.Unscoped().Delete(&models.User{}, user.ID).Error
}

// PurgeExpiredOTPs removes one-time codes past their validity window. Signup
// rejects expired codes on its own; this keeps the table from growing forever.
func PurgeExpiredOTPs(db *gorm.DB) {
	cutoff := time.Now().Add(-models.OTPValidity)

	result := db.Unscoped().Where("created_at < ?", cutoff).Delete(&models.OTP{})
	if result.Error != nil {
		log.Printf("[DELETE-SCHEDULER] Error purging expired OTPs: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("[DELETE-SCHEDULER] Purged %d expired OTPs", result.RowsAffected)
	}
}
