package course

import "gorm.io/gorm"

// Section is an ordered chunk of course content
type Section struct {
	gorm.Model
	CourseID    uint   `json:"courseId" gorm:"index;not null"`
	SectionName string `json:"sectionName" gorm:"not null"`
	Position    int    `json:"position" gorm:"default:0"`

	SubSections []SubSection `json:"subSections,omitempty" gorm:"foreignKey:SectionID"`
}
