package models

import "gorm.io/gorm"

// Profile holds the optional personal details of a user. It is created empty at
// signup and hard-deleted as soon as the user requests account deletion.
type Profile struct {
	gorm.Model
	Gender        string `json:"gender" gorm:"default:''"`
	DateOfBirth   string `json:"dateOfBirth" gorm:"default:''"`
	About         string `json:"about" gorm:"type:text;default:''"`
	ContactNumber string `json:"contactNumber" gorm:"default:''"`
}
