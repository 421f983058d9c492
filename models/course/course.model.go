package course

import "gorm.io/gorm"

// Course levels
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
	LevelAllLevels    = "All Levels"
)

// Instructor is embedded into Course (denormalized sub-record)
type Instructor struct {
	InstructorID string `json:"id" gorm:"column:instructor_id"`
	Name         string `json:"name" gorm:"column:instructor_name;default:'Unknown Instructor'"`
	Avatar       string `json:"avatar" gorm:"column:instructor_avatar"`
	Bio          string `json:"bio" gorm:"column:instructor_bio;type:text"`
}

// Course represents a learning course
type Course struct {
	gorm.Model
	Title            string     `json:"title" gorm:"not null"`
	Description      string     `json:"description" gorm:"type:text"`
	ShortDescription string     `json:"short_description"`
	Instructor       Instructor `json:"instructor" gorm:"embedded"`
	Thumbnail        string     `json:"thumbnail"`
	Category         string     `json:"category" gorm:"index;default:'General'"`
	Subcategory      string     `json:"subcategory"`
	Price            float64    `json:"price" gorm:"default:0"` // stored in USD, displayed in PKR
	OriginalPrice    float64    `json:"original_price" gorm:"default:0"`
	Currency         string     `json:"currency" gorm:"default:'PKR'"`
	Language         string     `json:"language" gorm:"default:'English'"`
	Level            string     `json:"level" gorm:"default:'Beginner'"` // Beginner, Intermediate, Advanced, All Levels
	Duration         string     `json:"duration" gorm:"default:'Self-paced'"`
	TotalLessons     int        `json:"total_lessons" gorm:"default:0"`
	Rating           float64    `json:"rating" gorm:"default:0"`
	TotalRatings     int        `json:"total_ratings" gorm:"default:0"`
	TotalStudents    int        `json:"total_students" gorm:"default:0"` // best-effort aggregate, bumped by the interest workflow
	Tags             []string   `json:"tags" gorm:"serializer:json"`
	WhatYouWillLearn []string   `json:"what_you_will_learn" gorm:"serializer:json"`
	Requirements     []string   `json:"requirements" gorm:"serializer:json"`
	IsPublished      bool       `json:"is_published" gorm:"default:false"`
	IsFeatured       bool       `json:"is_featured" gorm:"default:false"`
	IsDeleted        bool       `json:"-" gorm:"default:false"`
}
