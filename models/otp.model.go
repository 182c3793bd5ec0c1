package models

import (
	"time"

	"gorm.io/gorm"
)

// OTPValidity is how long a one-time code stays usable after being issued.
// Expired rows are purged by the scheduler.
const OTPValidity = 10 * time.Minute

// OTP stores a one-time code sent to an email during signup. The most recent
// row for an email is the only one considered, and only within OTPValidity.
type OTP struct {
	gorm.Model
	Email string `json:"email" gorm:"index;not null"`
	Code  string `json:"-" gorm:"not null"`
}
