package store

import (
	"errors"
	"time"

	"learnhub/models"

	"gorm.io/gorm"
)

var ErrInvalidScore = errors.New("score must be between 0 and the question count")

// ResultStore owns the quiz result rows. Results are append-only: the
// store never updates or deletes a row.
type ResultStore struct {
	Db *gorm.DB
}

func NewResultStore(db *gorm.DB) *ResultStore {
	return &ResultStore{Db: db}
}

// ListResults returns the user's results, most recent first
func (s *ResultStore) ListResults(userID uint) ([]models.QuizResult, error) {
	var results []models.QuizResult
	err := s.Db.
		Where("user_id = ?", userID).
		Order("completed_at desc").
		Find(&results).Error
	return results, err
}

// InsertResult appends one durable result row for a completed quiz
func (s *ResultStore) InsertResult(userID uint, quizName string, score, totalQuestions int) (models.QuizResult, error) {
	if totalQuestions <= 0 || score < 0 || score > totalQuestions {
		return models.QuizResult{}, ErrInvalidScore
	}

	result := models.QuizResult{
		UserID:         userID,
		QuizName:       quizName,
		Score:          score,
		TotalQuestions: totalQuestions,
		CompletedAt:    time.Now(),
	}
	if err := s.Db.Create(&result).Error; err != nil {
		return models.QuizResult{}, err
	}
	return result, nil
}
