package course

import "gorm.io/gorm"

// Enrollment is the user<->course association, created only after a verified
// payment. The composite unique index makes enrollment push-if-absent: a
// duplicate insert fails at the DB even if two requests race past the check.
type Enrollment struct {
	gorm.Model
	UserID   uint `json:"userId" gorm:"not null;uniqueIndex:idx_enroll_user_course"`
	CourseID uint `json:"courseId" gorm:"not null;uniqueIndex:idx_enroll_user_course"`

	Course Course `json:"course,omitempty" gorm:"foreignKey:CourseID"`
}
