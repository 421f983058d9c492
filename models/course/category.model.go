package course

import "gorm.io/gorm"

// Category groups courses for browsing. CoursesCount is a denormalized count
// of published courses, refreshed by the category scheduler.
type Category struct {
	gorm.Model
	Name         string `json:"name" gorm:"unique;not null"`
	Slug         string `json:"slug" gorm:"unique;not null"`
	Icon         string `json:"icon"`
	Description  string `json:"description"`
	CoursesCount int64  `json:"courses_count" gorm:"default:0"`
	IsActive     bool   `json:"is_active" gorm:"default:true"`
}

// DefaultCategories returns the seed set used when the table is empty.
func DefaultCategories() []Category {
	return []Category{
		{Slug: "development", Name: "Development", Icon: "code"},
		{Slug: "business", Name: "Business", Icon: "briefcase"},
		{Slug: "design", Name: "Design", Icon: "palette"},
		{Slug: "marketing", Name: "Marketing", Icon: "chart"},
		{Slug: "it-software", Name: "IT & Software", Icon: "settings"},
		{Slug: "personal-development", Name: "Personal Dev", Icon: "brain"},
		{Slug: "photography", Name: "Photography", Icon: "camera"},
		{Slug: "music", Name: "Music", Icon: "music"},
		{Slug: "health", Name: "Health", Icon: "heart"},
	}
}
