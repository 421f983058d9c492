package course

import "gorm.io/gorm"

// Interest status enum values
const (
	StatusPending   = "pending"
	StatusContacted = "contacted"
	StatusEnrolled  = "enrolled"
	StatusDeclined  = "declined"
)

// statusTransitions is the closed transition table for interest records.
// Terminal states (enrolled, declined) have no outgoing transitions.
var statusTransitions = map[string][]string{
	StatusPending:   {StatusContacted, StatusEnrolled, StatusDeclined},
	StatusContacted: {StatusEnrolled, StatusDeclined},
	StatusEnrolled:  {},
	StatusDeclined:  {},
}

// IsValidStatus reports whether s is one of the four interest statuses.
func IsValidStatus(s string) bool {
	_, ok := statusTransitions[s]
	return ok
}

// IsActiveStatus reports whether s blocks a new interest submission for the
// same (user, course) pair. A declined interest does not block re-expression.
func IsActiveStatus(s string) bool {
	return s == StatusPending || s == StatusContacted || s == StatusEnrolled
}

// CanTransition reports whether moving an interest from one status to another
// is allowed by the transition table. A same-status write is always allowed.
func CanTransition(from, to string) bool {
	if from == to {
		return true
	}
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CourseInterest records a user's expressed intent to enroll in a course,
// pending administrative follow-up. Contact details and the course title are
// denormalized at submission time so the admin listing needs no joins.
type CourseInterest struct {
	gorm.Model
	CourseID   uint   `json:"course_id" gorm:"not null;uniqueIndex:idx_interest_course_user"`
	CourseName string `json:"course_name"`
	UserID     uint   `json:"user_id" gorm:"not null;uniqueIndex:idx_interest_course_user"`
	UserName   string `json:"user_name"`
	UserEmail  string `json:"user_email"`
	UserPhone  string `json:"user_phone"`
	Message    string `json:"message" gorm:"type:text"`
	Status     string `json:"status" gorm:"not null;index;default:'pending'"` // pending, contacted, enrolled, declined
}

func (CourseInterest) TableName() string {
	return "course_interests"
}
