package models

import (
	"time"

	"gorm.io/gorm"
)

// LiveClass represents a scheduled live session
type LiveClass struct {
	gorm.Model
	Title      string    `json:"title"`
	Subject    string    `json:"subject" gorm:"index"`
	Instructor string    `json:"instructor"`
	StartTime  time.Time `json:"start_time" gorm:"index"`
	Duration   int       `json:"duration" gorm:"default:60"` // duration in minutes
	MeetingURL string    `json:"meeting_url"`
	IsDeleted  bool      `gorm:"default:false"`
}
