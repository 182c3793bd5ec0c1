package course

import "gorm.io/gorm"

// SubSection is a single video lecture inside a section
type SubSection struct {
	gorm.Model
	SectionID    uint   `json:"sectionId" gorm:"index;not null"`
	Title        string `json:"title" gorm:"not null"`
	Description  string `json:"description" gorm:"type:text;default:''"`
	TimeDuration string `json:"timeDuration" gorm:"default:''"`
	VideoURL     string `json:"videoUrl" gorm:"default:''"`
}
