package models

import (
	"time"

	"gorm.io/gorm"
)

// UserProgress tracks a user's progress in a course.
// One row per (user, course) pair; upserted, never duplicated.
type UserProgress struct {
	gorm.Model
	UserID       uint       `json:"user_id" gorm:"uniqueIndex:idx_user_course;not null"`
	CourseID     uint       `json:"course_id" gorm:"uniqueIndex:idx_user_course;not null"`
	Progress     int        `json:"progress" gorm:"default:0"` // completion percentage (0-100)
	Completed    bool       `json:"completed" gorm:"default:false"`
	LastAccessed *time.Time `json:"last_accessed"`
	IsDeleted    bool       `gorm:"default:false"`
}
