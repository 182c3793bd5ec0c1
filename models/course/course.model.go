package course

import (
	"uplearn/models"

	"gorm.io/gorm"
)

// Course statuses
const (
	StatusDraft     = "Draft"
	StatusPublished = "Published"
)

// Course represents a learning course owned by an instructor
type Course struct {
	gorm.Model
	CourseName        string  `json:"courseName" gorm:"not null"`
	CourseDescription string  `json:"courseDescription" gorm:"type:text;not null"`
	WhatYouWillLearn  string  `json:"whatYouWillLearn" gorm:"type:text;default:''"`
	Price             float64 `json:"price" gorm:"not null"`
	Thumbnail         string  `json:"thumbnail" gorm:"default:''"`
	Tag               string  `json:"tag" gorm:"default:''"`
	Instructions      string  `json:"instructions" gorm:"type:text;default:''"`
	Status            string  `json:"status" gorm:"default:'Draft'"` // Draft, Published
	InstructorID      uint    `json:"instructorId" gorm:"index;not null"`
	CategoryID        uint    `json:"categoryId" gorm:"index;not null"`

	Instructor models.User     `json:"instructor,omitempty" gorm:"foreignKey:InstructorID"`
	Category   models.Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Sections   []Section       `json:"sections,omitempty" gorm:"foreignKey:CourseID"`
}
