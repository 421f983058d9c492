package services

import (
	courseModels "lms/models/course"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchPublishedCoursesExcludesHidden(t *testing.T) {
	db := setupTestDB(t)

	published := createTestCourse(t, db, "Visible", 10.0)
	published.Category = "Development"
	require.NoError(t, db.Save(published).Error)

	draft := courseModels.Course{Title: "Draft", IsPublished: false}
	require.NoError(t, db.Create(&draft).Error)

	deleted := courseModels.Course{Title: "Gone", IsPublished: true, IsDeleted: true}
	require.NoError(t, db.Create(&deleted).Error)

	courses, err := FetchPublishedCourses(db, "")
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "Visible", courses[0].Title)

	byCategory, err := FetchPublishedCourses(db, "Development")
	require.NoError(t, err)
	assert.Len(t, byCategory, 1)

	none, err := FetchPublishedCourses(db, "Music")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestFetchFeaturedCoursesOrderedByRating(t *testing.T) {
	db := setupTestDB(t)

	low := courseModels.Course{Title: "Low", IsPublished: true, IsFeatured: true, Rating: 3.2}
	high := courseModels.Course{Title: "High", IsPublished: true, IsFeatured: true, Rating: 4.9}
	plain := courseModels.Course{Title: "Plain", IsPublished: true, IsFeatured: false, Rating: 5.0}
	require.NoError(t, db.Create(&low).Error)
	require.NoError(t, db.Create(&high).Error)
	require.NoError(t, db.Create(&plain).Error)

	courses, err := FetchFeaturedCourses(db, 10)
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, "High", courses[0].Title)
	assert.Equal(t, "Low", courses[1].Title)

	limited, err := FetchFeaturedCourses(db, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "High", limited[0].Title)
}

func TestSearchCourses(t *testing.T) {
	db := setupTestDB(t)

	golang := courseModels.Course{
		Title:       "Go Fundamentals",
		Description: "Learn the Go programming language",
		Tags:        []string{"backend", "golang"},
		Instructor:  courseModels.Instructor{Name: "Jane Doe"},
		IsPublished: true,
	}
	python := courseModels.Course{
		Title:       "Python Basics",
		Description: "Scripting for beginners",
		Tags:        []string{"scripting"},
		Instructor:  courseModels.Instructor{Name: "John Smith"},
		IsPublished: true,
	}
	require.NoError(t, db.Create(&golang).Error)
	require.NoError(t, db.Create(&python).Error)

	byTitle, err := SearchCourses(db, "fundamentals")
	require.NoError(t, err)
	require.Len(t, byTitle, 1)
	assert.Equal(t, "Go Fundamentals", byTitle[0].Title)

	byTag, err := SearchCourses(db, "golang")
	require.NoError(t, err)
	assert.Len(t, byTag, 1)

	byInstructor, err := SearchCourses(db, "smith")
	require.NoError(t, err)
	require.Len(t, byInstructor, 1)
	assert.Equal(t, "Python Basics", byInstructor[0].Title)

	all, err := SearchCourses(db, "  ")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	none, err := SearchCourses(db, "blockchain")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestListCategoriesSeedsDefaults(t *testing.T) {
	db := setupTestDB(t)

	categories := ListCategories(db)
	assert.Len(t, categories, 9)

	// Seeding happens once
	again := ListCategories(db)
	assert.Len(t, again, 9)
}

func TestListCategoriesDoesNotReseedWhenAllInactive(t *testing.T) {
	db := setupTestDB(t)

	ListCategories(db)
	require.NoError(t, db.Model(&courseModels.Category{}).
		Where("1 = 1").
		Update("is_active", false).Error)

	// Every category deactivated by an admin is an empty browse list, not a
	// re-seed colliding with the existing names.
	categories := ListCategories(db)
	assert.Empty(t, categories)

	var total int64
	require.NoError(t, db.Model(&courseModels.Category{}).Count(&total).Error)
	assert.EqualValues(t, 9, total)
}

func TestListCategoriesFallsBackOnStorageError(t *testing.T) {
	db := setupTestDB(t)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	categories := ListCategories(db)
	require.Len(t, categories, 9)
	assert.Equal(t, "development", categories[0].Slug)
}

func TestRefreshCategoryCounts(t *testing.T) {
	db := setupTestDB(t)

	ListCategories(db)

	dev := courseModels.Course{Title: "API Design", Category: "Development", IsPublished: true}
	devDraft := courseModels.Course{Title: "WIP", Category: "Development", IsPublished: false}
	biz := courseModels.Course{Title: "Bookkeeping", Category: "Business", IsPublished: true}
	require.NoError(t, db.Create(&dev).Error)
	require.NoError(t, db.Create(&devDraft).Error)
	require.NoError(t, db.Create(&biz).Error)

	require.NoError(t, RefreshCategoryCounts(db))

	var devCat courseModels.Category
	require.NoError(t, db.Where("slug = ?", "development").First(&devCat).Error)
	assert.EqualValues(t, 1, devCat.CoursesCount)

	var bizCat courseModels.Category
	require.NoError(t, db.Where("slug = ?", "business").First(&bizCat).Error)
	assert.EqualValues(t, 1, bizCat.CoursesCount)

	var musicCat courseModels.Category
	require.NoError(t, db.Where("slug = ?", "music").First(&musicCat).Error)
	assert.EqualValues(t, 0, musicCat.CoursesCount)
}
