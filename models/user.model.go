package models

import (
	"time"

	"gorm.io/gorm"
)

// Account types
const (
	AccountTypeStudent    = "Student"
	AccountTypeInstructor = "Instructor"
	AccountTypeAdmin      = "Admin"
)

type User struct {
	gorm.Model
	FirstName   string `json:"firstName" gorm:"not null"`
	LastName    string `json:"lastName" gorm:"not null"`
	Email       string `json:"email" gorm:"unique;not null"`
	Password    string `json:"-" gorm:"not null"`
	AccountType string `json:"accountType" gorm:"default:'Student'"` // Student, Instructor, Admin
	Image       string `json:"image" gorm:"default:''"`
	ProfileID   uint   `json:"profileId" gorm:"index"`

	// Password reset
	ResetToken        string     `json:"-" gorm:"index;default:''"`
	ResetTokenExpires *time.Time `json:"-"`

	// Deferred deletion. PendingDelete implies DeleteAt is set; the account row
	// lingers until the sweep fires while profile PII is purged at request time.
	PendingDelete bool       `json:"pendingDelete" gorm:"default:false;index"`
	DeleteAt      *time.Time `json:"deleteAt"`

	Profile Profile `json:"profile,omitempty" gorm:"foreignKey:ProfileID"`
}
