package models

import (
	"time"

	"gorm.io/gorm"
)

// QuizResult stores the outcome of a completed quiz attempt.
// Rows are append-only; results are never updated or deleted.
type QuizResult struct {
	gorm.Model
	UserID         uint      `json:"user_id" gorm:"index;not null"`
	QuizName       string    `json:"quiz_name" gorm:"not null"`
	Score          int       `json:"score" gorm:"not null"`
	TotalQuestions int       `json:"total_questions" gorm:"not null"`
	CompletedAt    time.Time `json:"completed_at" gorm:"index"`
}
