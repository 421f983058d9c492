package models

import (
	"time"

	"gorm.io/gorm"
)

// User roles
const (
	RoleLearner = "LEARNER"
	RoleAdmin   = "ADMIN"
)

type User struct {
	gorm.Model
	ProfileImage        string     `json:"profile_image" gorm:"default:''"`
	Name                string     `json:"name" gorm:"default:''"`
	Email               string     `json:"email" gorm:"unique;not null"`
	Phone               string     `json:"phone" gorm:"default:''"`
	Role                string     `json:"role" gorm:"default:'LEARNER'"` // LEARNER, ADMIN. Role changes are manual.
	Password            string     `json:"-" gorm:"not null"`
	LastLogin           time.Time  `json:"last_login" gorm:"default:NULL"`
	FailedLoginAttempts int        `json:"-" gorm:"default:0"`
	LastFailedLogin     *time.Time `json:"-"`
	IsBlocked           bool       `json:"-" gorm:"default:false"`
	BlockedUntil        *time.Time `json:"-"`
	IsDeleted           bool       `json:"-" gorm:"default:false"`
}
