package services

import (
	courseModels "lms/models/course"
	"log"
	"strings"

	"gorm.io/gorm"
)

// FetchPublishedCourses returns published courses, newest first, optionally
// filtered by category.
func FetchPublishedCourses(db *gorm.DB, category string) ([]courseModels.Course, error) {
	query := db.Where("is_published = ? AND is_deleted = ?", true, false)
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var courses []courseModels.Course
	err := query.Order("created_at desc").Find(&courses).Error
	return courses, err
}

// FetchFeaturedCourses returns published featured courses ordered by rating.
func FetchFeaturedCourses(db *gorm.DB, limit int) ([]courseModels.Course, error) {
	var courses []courseModels.Course
	err := db.Where("is_published = ? AND is_featured = ? AND is_deleted = ?", true, true, false).
		Order("rating desc").
		Limit(limit).
		Find(&courses).Error
	return courses, err
}

// SearchCourses filters published courses by a free-text term over title,
// description, tags and instructor name. The catalog is small enough that
// the match runs in memory over the published set.
func SearchCourses(db *gorm.DB, term string) ([]courseModels.Course, error) {
	courses, err := FetchPublishedCourses(db, "")
	if err != nil {
		return nil, err
	}

	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return courses, nil
	}

	var matched []courseModels.Course
	for _, c := range courses {
		if matchesCourse(&c, term) {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

func matchesCourse(c *courseModels.Course, term string) bool {
	if strings.Contains(strings.ToLower(c.Title), term) ||
		strings.Contains(strings.ToLower(c.Description), term) ||
		strings.Contains(strings.ToLower(c.Instructor.Name), term) {
		return true
	}
	for _, tag := range c.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

// ListCategories returns active categories, seeding the default set when the
// table is empty. The browse screen must always have something to show, so a
// storage failure falls back to the built-in defaults instead of surfacing an
// error.
func ListCategories(db *gorm.DB) []courseModels.Category {
	var categories []courseModels.Category
	if err := db.Where("is_active = ?", true).Order("name asc").Find(&categories).Error; err != nil {
		log.Println("Categories lookup failed:", err)
		return courseModels.DefaultCategories()
	}
	if len(categories) > 0 {
		return categories
	}

	// Seed only when the table holds no categories at all. An admin who has
	// deactivated every category gets an empty list, not a duplicate seed.
	var total int64
	if err := db.Model(&courseModels.Category{}).Count(&total).Error; err != nil {
		log.Println("Categories count failed:", err)
		return courseModels.DefaultCategories()
	}
	if total > 0 {
		return categories
	}

	defaults := courseModels.DefaultCategories()
	if err := db.Create(&defaults).Error; err != nil {
		log.Println("Seeding default categories failed:", err)
	}
	return defaults
}

// RefreshCategoryCounts recomputes the denormalized published-course count
// for every category. Invoked by the hourly scheduler.
func RefreshCategoryCounts(db *gorm.DB) error {
	var categories []courseModels.Category
	if err := db.Find(&categories).Error; err != nil {
		return err
	}

	for _, cat := range categories {
		var count int64
		if err := db.Model(&courseModels.Course{}).
			Where("category = ? AND is_published = ? AND is_deleted = ?", cat.Name, true, false).
			Count(&count).Error; err != nil {
			return err
		}
		if count != cat.CoursesCount {
			if err := db.Model(&cat).Update("courses_count", count).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
