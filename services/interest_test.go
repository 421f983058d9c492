package services

import (
	"lms/models"
	courseModels "lms/models/course"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// Every sqlite :memory: connection is its own database; keep the pool
	// at one connection so all queries see the migrated schema.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&courseModels.Course{},
		&courseModels.CourseInterest{},
		&courseModels.Category{},
	))

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email, name, phone string) *models.User {
	t.Helper()

	user := models.User{
		Name:     name,
		Email:    email,
		Phone:    phone,
		Role:     models.RoleLearner,
		Password: "hashed",
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createTestCourse(t *testing.T, db *gorm.DB, title string, price float64) *courseModels.Course {
	t.Helper()

	course := courseModels.Course{
		Title:       title,
		Description: "A course about " + title,
		Price:       price,
		IsPublished: true,
	}
	require.NoError(t, db.Create(&course).Error)
	return &course
}

func totalStudents(t *testing.T, db *gorm.DB, courseID uint) int {
	t.Helper()

	var course courseModels.Course
	require.NoError(t, db.First(&course, courseID).Error)
	return course.TotalStudents
}

func TestSubmitInterestFirstTime(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "ali@example.com", "Ali", "0300-1234567")
	course := createTestCourse(t, db, "Go Fundamentals", 10.0)

	result, err := SubmitInterest(db, course, user, "", "please contact me")
	require.NoError(t, err)
	assert.NotZero(t, result.InterestID)
	assert.False(t, result.AlreadyInterested)
	assert.False(t, result.Revived)

	var interest courseModels.CourseInterest
	require.NoError(t, db.First(&interest, result.InterestID).Error)
	assert.Equal(t, courseModels.StatusPending, interest.Status)
	assert.Equal(t, course.ID, interest.CourseID)
	assert.Equal(t, "Go Fundamentals", interest.CourseName)
	assert.Equal(t, user.ID, interest.UserID)
	assert.Equal(t, "Ali", interest.UserName)
	assert.Equal(t, "ali@example.com", interest.UserEmail)
	assert.Equal(t, "0300-1234567", interest.UserPhone)
	assert.Equal(t, "please contact me", interest.Message)

	assert.Equal(t, 1, totalStudents(t, db, course.ID))
}

func TestSubmitInterestIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "ali@example.com", "Ali", "0300-1234567")
	course := createTestCourse(t, db, "Go Fundamentals", 10.0)

	first, err := SubmitInterest(db, course, user, "", "")
	require.NoError(t, err)

	second, err := SubmitInterest(db, course, user, "", "another message")
	require.NoError(t, err)
	assert.Equal(t, first.InterestID, second.InterestID)
	assert.True(t, second.AlreadyInterested)

	var count int64
	db.Model(&courseModels.CourseInterest{}).Count(&count)
	assert.EqualValues(t, 1, count)

	// Counter is bumped once, not per attempt
	assert.Equal(t, 1, totalStudents(t, db, course.ID))
}

func TestSubmitInterestRequiresPhone(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "nophone@example.com", "NoPhone", "")
	course := createTestCourse(t, db, "Go Fundamentals", 10.0)

	result, err := SubmitInterest(db, course, user, "", "")
	assert.ErrorIs(t, err, ErrPhoneRequired)
	assert.Nil(t, result)

	// Validation failure means zero writes
	var count int64
	db.Model(&courseModels.CourseInterest{}).Count(&count)
	assert.EqualValues(t, 0, count)
	assert.Equal(t, 0, totalStudents(t, db, course.ID))
}

func TestSubmitInterestPhoneFallsBackToProfile(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "ali@example.com", "Ali", "0300-9999999")
	course := createTestCourse(t, db, "Go Fundamentals", 10.0)

	result, err := SubmitInterest(db, course, user, "", "")
	require.NoError(t, err)

	var interest courseModels.CourseInterest
	require.NoError(t, db.First(&interest, result.InterestID).Error)
	assert.Equal(t, "0300-9999999", interest.UserPhone)

	// Explicit phone wins over the profile value
	user2 := createTestUser(t, db, "sara@example.com", "Sara", "0300-1111111")
	result2, err := SubmitInterest(db, course, user2, "0301-2222222", "")
	require.NoError(t, err)

	// Fresh destination struct: gorm would otherwise add the previous
	// record's primary key from the reused value as a query condition.
	var interest2 courseModels.CourseInterest
	require.NoError(t, db.First(&interest2, result2.InterestID).Error)
	assert.Equal(t, "0301-2222222", interest2.UserPhone)
}

func TestSubmitInterestDefaultsUserNameFromEmail(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "anon@example.com", "", "0300-1234567")
	course := createTestCourse(t, db, "Go Fundamentals", 10.0)

	result, err := SubmitInterest(db, course, user, "", "")
	require.NoError(t, err)

	var interest courseModels.CourseInterest
	require.NoError(t, db.First(&interest, result.InterestID).Error)
	assert.Equal(t, "anon", interest.UserName)
}

func TestSubmitInterestRevivesDeclinedRecord(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "ali@example.com", "Ali", "0300-1234567")
	course := createTestCourse(t, db, "Go Fundamentals", 10.0)

	first, err := SubmitInterest(db, course, user, "", "first try")
	require.NoError(t, err)

	_, err = UpdateInterestStatus(db, first.InterestID, courseModels.StatusDeclined)
	require.NoError(t, err)

	// A declined interest does not block re-expression
	second, err := SubmitInterest(db, course, user, "0301-7777777", "second try")
	require.NoError(t, err)
	assert.Equal(t, first.InterestID, second.InterestID)
	assert.True(t, second.Revived)
	assert.False(t, second.AlreadyInterested)

	var interest courseModels.CourseInterest
	require.NoError(t, db.First(&interest, first.InterestID).Error)
	assert.Equal(t, courseModels.StatusPending, interest.Status)
	assert.Equal(t, "second try", interest.Message)
	assert.Equal(t, "0301-7777777", interest.UserPhone)

	// The revival does not re-count the user
	assert.Equal(t, 1, totalStudents(t, db, course.ID))
}

func TestSubmitInterestRecoversFromUniqueIndexRace(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "ali@example.com", "Ali", "0300-1234567")
	course := createTestCourse(t, db, "Go Fundamentals", 10.0)

	// A concurrent submitter won the unique index between the duplicate
	// check and the insert. Simulated by inserting behind the service's back.
	winner := courseModels.CourseInterest{
		CourseID: course.ID,
		UserID:   user.ID,
		Status:   courseModels.StatusPending,
	}
	require.NoError(t, db.Create(&winner).Error)

	// A direct duplicate insert is rejected by the composite unique index
	dup := courseModels.CourseInterest{
		CourseID: course.ID,
		UserID:   user.ID,
		Status:   courseModels.StatusPending,
	}
	assert.Error(t, db.Create(&dup).Error)

	// The service resolves the pair to the winning record
	result, err := SubmitInterest(db, course, user, "", "")
	require.NoError(t, err)
	assert.Equal(t, winner.ID, result.InterestID)
	assert.True(t, result.AlreadyInterested)
}

func TestSubmitInterestAfterAdminRemoval(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "ali@example.com", "Ali", "0300-1234567")
	course := createTestCourse(t, db, "Go Fundamentals", 10.0)

	first, err := SubmitInterest(db, course, user, "", "")
	require.NoError(t, err)

	// Administrative cleanup removes the row outright so it cannot keep
	// occupying the (course_id, user_id) unique index.
	require.NoError(t, db.Unscoped().Delete(&courseModels.CourseInterest{}, first.InterestID).Error)

	assert.False(t, HasUserInterest(db, user.ID, course.ID))

	// The user can express interest again from scratch
	second, err := SubmitInterest(db, course, user, "", "back again")
	require.NoError(t, err)
	assert.NotEqual(t, first.InterestID, second.InterestID)
	assert.False(t, second.AlreadyInterested)
	assert.False(t, second.Revived)

	var interest courseModels.CourseInterest
	require.NoError(t, db.First(&interest, second.InterestID).Error)
	assert.Equal(t, courseModels.StatusPending, interest.Status)

	// A fresh creation counts again; drift from the removed record is accepted
	assert.Equal(t, 2, totalStudents(t, db, course.ID))
}

func TestUpdateInterestStatusTransitions(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "ali@example.com", "Ali", "0300-1234567")
	course := createTestCourse(t, db, "Go Fundamentals", 10.0)

	result, err := SubmitInterest(db, course, user, "", "")
	require.NoError(t, err)

	interest, err := UpdateInterestStatus(db, result.InterestID, courseModels.StatusContacted)
	require.NoError(t, err)
	assert.Equal(t, courseModels.StatusContacted, interest.Status)

	// Same-status write is a no-op success
	interest, err = UpdateInterestStatus(db, result.InterestID, courseModels.StatusContacted)
	require.NoError(t, err)
	assert.Equal(t, courseModels.StatusContacted, interest.Status)

	interest, err = UpdateInterestStatus(db, result.InterestID, courseModels.StatusEnrolled)
	require.NoError(t, err)
	assert.Equal(t, courseModels.StatusEnrolled, interest.Status)

	// Enrolled is terminal
	_, err = UpdateInterestStatus(db, result.InterestID, courseModels.StatusPending)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = UpdateInterestStatus(db, result.InterestID, courseModels.StatusDeclined)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	var persisted courseModels.CourseInterest
	require.NoError(t, db.First(&persisted, result.InterestID).Error)
	assert.Equal(t, courseModels.StatusEnrolled, persisted.Status)
	assert.Equal(t, course.ID, persisted.CourseID)
	assert.Equal(t, user.ID, persisted.UserID)
}

func TestUpdateInterestStatusRejectsBadInput(t *testing.T) {
	db := setupTestDB(t)

	_, err := UpdateInterestStatus(db, 1, "archived")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = UpdateInterestStatus(db, 9999, courseModels.StatusContacted)
	assert.ErrorIs(t, err, ErrInterestNotFound)
}

func TestHasUserInterest(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "ali@example.com", "Ali", "0300-1234567")
	course := createTestCourse(t, db, "Go Fundamentals", 10.0)

	assert.False(t, HasUserInterest(db, user.ID, course.ID))

	result, err := SubmitInterest(db, course, user, "", "")
	require.NoError(t, err)
	assert.True(t, HasUserInterest(db, user.ID, course.ID))

	// Membership is independent of status: a declined record still reads true
	_, err = UpdateInterestStatus(db, result.InterestID, courseModels.StatusDeclined)
	require.NoError(t, err)
	assert.True(t, HasUserInterest(db, user.ID, course.ID))
}

func TestGetUserInterestsNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "ali@example.com", "Ali", "0300-1234567")
	courseA := createTestCourse(t, db, "Go Fundamentals", 10.0)
	courseB := createTestCourse(t, db, "Advanced Go", 20.0)

	_, err := SubmitInterest(db, courseA, user, "", "")
	require.NoError(t, err)
	_, err = SubmitInterest(db, courseB, user, "", "")
	require.NoError(t, err)

	interests, err := GetUserInterests(db, user.ID)
	require.NoError(t, err)
	require.Len(t, interests, 2)
	assert.GreaterOrEqual(t, interests[0].CreatedAt.UnixNano(), interests[1].CreatedAt.UnixNano())
}

func TestListInterestsFiltersByStatus(t *testing.T) {
	db := setupTestDB(t)
	course := createTestCourse(t, db, "Go Fundamentals", 10.0)

	u1 := createTestUser(t, db, "a@example.com", "A", "0300-1")
	u2 := createTestUser(t, db, "b@example.com", "B", "0300-2")
	u3 := createTestUser(t, db, "c@example.com", "C", "0300-3")

	r1, err := SubmitInterest(db, course, u1, "", "")
	require.NoError(t, err)
	_, err = SubmitInterest(db, course, u2, "", "")
	require.NoError(t, err)
	_, err = SubmitInterest(db, course, u3, "", "")
	require.NoError(t, err)

	_, err = UpdateInterestStatus(db, r1.InterestID, courseModels.StatusContacted)
	require.NoError(t, err)

	pending, total, err := ListInterests(db, courseModels.StatusPending, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, pending, 2)

	all, total, err := ListInterests(db, "", 1, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, all, 2)
}

func TestCountInterestsByStatus(t *testing.T) {
	db := setupTestDB(t)
	course := createTestCourse(t, db, "Go Fundamentals", 10.0)

	u1 := createTestUser(t, db, "a@example.com", "A", "0300-1")
	u2 := createTestUser(t, db, "b@example.com", "B", "0300-2")

	r1, err := SubmitInterest(db, course, u1, "", "")
	require.NoError(t, err)
	_, err = SubmitInterest(db, course, u2, "", "")
	require.NoError(t, err)

	_, err = UpdateInterestStatus(db, r1.InterestID, courseModels.StatusEnrolled)
	require.NoError(t, err)

	counts, err := CountInterestsByStatus(db)
	require.NoError(t, err)
	assert.EqualValues(t, 1, counts[courseModels.StatusPending])
	assert.EqualValues(t, 0, counts[courseModels.StatusContacted])
	assert.EqualValues(t, 1, counts[courseModels.StatusEnrolled])
	assert.EqualValues(t, 0, counts[courseModels.StatusDeclined])
}

// End-to-end lifecycle: a learner shows interest in "Intro to X" and the
// admin enrolls them.
func TestInterestLifecycleScenario(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "u@example.com", "U", "")
	course := createTestCourse(t, db, "Intro to X", 10.0)

	result, err := SubmitInterest(db, course, user, "0300-1111111", "")
	require.NoError(t, err)

	var interest courseModels.CourseInterest
	require.NoError(t, db.First(&interest, result.InterestID).Error)
	assert.Equal(t, courseModels.StatusPending, interest.Status)
	assert.Equal(t, "Intro to X", interest.CourseName)
	assert.Equal(t, 1, totalStudents(t, db, course.ID))

	_, err = UpdateInterestStatus(db, result.InterestID, courseModels.StatusEnrolled)
	require.NoError(t, err)

	require.NoError(t, db.First(&interest, result.InterestID).Error)
	assert.Equal(t, courseModels.StatusEnrolled, interest.Status)
	assert.Equal(t, course.ID, interest.CourseID)
	assert.Equal(t, user.ID, interest.UserID)
	assert.Equal(t, 1, totalStudents(t, db, course.ID))
}
