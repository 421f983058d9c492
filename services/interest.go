package services

import (
	"errors"
	"lms/models"
	courseModels "lms/models/course"
	"log"
	"strings"

	"gorm.io/gorm"
)

var (
	ErrPhoneRequired      = errors.New("phone number is required")
	ErrInterestNotFound   = errors.New("interest not found")
	ErrInvalidStatus      = errors.New("invalid interest status")
	ErrInvalidTransition  = errors.New("status transition not allowed")
	ErrCourseNotPublished = errors.New("course is not published")
)

// SubmitResult reports the outcome of an interest submission.
type SubmitResult struct {
	InterestID        uint `json:"interest_id"`
	AlreadyInterested bool `json:"already_interested"`
	Revived           bool `json:"revived"`
}

// SubmitInterest records a user's interest in a course.
//
// A user with an active interest (pending, contacted, enrolled) gets the
// existing record back with no writes. A previously declined interest is
// revived in place to pending. Otherwise a new pending record is created and
// the course's total_students counter is bumped with an atomic SQL increment.
// The composite unique index on (course_id, user_id) backstops the duplicate
// check against concurrent submissions.
func SubmitInterest(db *gorm.DB, course *courseModels.Course, user *models.User, phone, message string) (*SubmitResult, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		phone = strings.TrimSpace(user.Phone)
	}
	if phone == "" {
		return nil, ErrPhoneRequired
	}

	userName := strings.TrimSpace(user.Name)
	if userName == "" {
		userName = strings.Split(user.Email, "@")[0]
	}

	var existing courseModels.CourseInterest
	err := db.Where("course_id = ? AND user_id = ?", course.ID, user.ID).First(&existing).Error
	if err == nil {
		if courseModels.IsActiveStatus(existing.Status) {
			// Idempotent: duplicate submission is treated as success.
			return &SubmitResult{InterestID: existing.ID, AlreadyInterested: true}, nil
		}

		// Declined record: revive to pending with a fresh contact snapshot.
		// The counter already counted this user at first creation.
		updates := map[string]interface{}{
			"status":     courseModels.StatusPending,
			"message":    message,
			"user_name":  userName,
			"user_email": user.Email,
			"user_phone": phone,
		}
		if err := db.Model(&existing).Updates(updates).Error; err != nil {
			return nil, err
		}
		return &SubmitResult{InterestID: existing.ID, Revived: true}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	interest := courseModels.CourseInterest{
		CourseID:   course.ID,
		CourseName: course.Title,
		UserID:     user.ID,
		UserName:   userName,
		UserEmail:  user.Email,
		UserPhone:  phone,
		Message:    message,
		Status:     courseModels.StatusPending,
	}
	if err := db.Create(&interest).Error; err != nil {
		// A concurrent submission may have won the unique index; if a record
		// exists now, report it as the idempotent success it is.
		var winner courseModels.CourseInterest
		if lookupErr := db.Where("course_id = ? AND user_id = ?", course.ID, user.ID).First(&winner).Error; lookupErr == nil {
			return &SubmitResult{InterestID: winner.ID, AlreadyInterested: true}, nil
		}
		return nil, err
	}

	// Counter drift is tolerated: the interest record is the source of truth,
	// total_students a best-effort aggregate.
	if err := db.Model(&courseModels.Course{}).Where("id = ?", course.ID).
		Update("total_students", gorm.Expr("total_students + ?", 1)).Error; err != nil {
		log.Printf("Failed to increment total_students for course %d: %v", course.ID, err)
	}

	return &SubmitResult{InterestID: interest.ID}, nil
}

// UpdateInterestStatus moves an interest record through its status lifecycle.
// Transitions not in the table are rejected; a same-status write is a no-op.
func UpdateInterestStatus(db *gorm.DB, interestID uint, status string) (*courseModels.CourseInterest, error) {
	if !courseModels.IsValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	var interest courseModels.CourseInterest
	if err := db.First(&interest, interestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInterestNotFound
		}
		return nil, err
	}

	if interest.Status == status {
		return &interest, nil
	}
	if !courseModels.CanTransition(interest.Status, status) {
		return nil, ErrInvalidTransition
	}

	if err := db.Model(&interest).Update("status", status).Error; err != nil {
		return nil, err
	}
	return &interest, nil
}

// HasUserInterest reports whether any interest record exists for the
// (user, course) pair, regardless of status. Fail-open: a query error logs
// and reads as "not interested" rather than blocking resubmission.
func HasUserInterest(db *gorm.DB, userID, courseID uint) bool {
	var count int64
	err := db.Model(&courseModels.CourseInterest{}).
		Where("course_id = ? AND user_id = ?", courseID, userID).
		Count(&count).Error
	if err != nil {
		log.Printf("Interest check failed for user %d course %d: %v", userID, courseID, err)
		return false
	}
	return count > 0
}

// GetUserInterests returns a user's interest records, newest first.
func GetUserInterests(db *gorm.DB, userID uint) ([]courseModels.CourseInterest, error) {
	var interests []courseModels.CourseInterest
	err := db.Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&interests).Error
	return interests, err
}

// ListInterests returns interest records for the admin view, newest first,
// optionally filtered by status, with pagination.
func ListInterests(db *gorm.DB, status string, page, limit int) ([]courseModels.CourseInterest, int64, error) {
	query := db.Model(&courseModels.CourseInterest{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var interests []courseModels.CourseInterest
	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&interests).Error
	return interests, total, err
}

// CountInterestsByStatus returns the number of interest records per status.
func CountInterestsByStatus(db *gorm.DB) (map[string]int64, error) {
	type row struct {
		Status string
		Count  int64
	}
	var rows []row
	err := db.Model(&courseModels.CourseInterest{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := map[string]int64{
		courseModels.StatusPending:   0,
		courseModels.StatusContacted: 0,
		courseModels.StatusEnrolled:  0,
		courseModels.StatusDeclined:  0,
	}
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}
