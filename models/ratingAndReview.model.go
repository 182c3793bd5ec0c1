package models

import "gorm.io/gorm"

// RatingAndReview is a student's review of a course. At most one review per
// (user, course) pair; enforced by the composite unique index and re-checked
// in the handler so duplicates surface as a Conflict rather than a DB error.
type RatingAndReview struct {
	gorm.Model
	UserID   uint   `json:"userId" gorm:"not null;uniqueIndex:idx_review_user_course"`
	CourseID uint   `json:"courseId" gorm:"not null;uniqueIndex:idx_review_user_course"`
	Rating   int    `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Review   string `json:"review" gorm:"type:text;default:''"`

	User User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
