package store

import (
	"errors"
	"time"

	"learnhub/models"

	"gorm.io/gorm"
)

var ErrInvalidProgress = errors.New("progress must be between 0 and 100")

// ProgressStore owns the per-(user, course) progress rows
type ProgressStore struct {
	Db *gorm.DB
}

func NewProgressStore(db *gorm.DB) *ProgressStore {
	return &ProgressStore{Db: db}
}

// GetProgress returns all of a user's course progress records
func (s *ProgressStore) GetProgress(userID uint) ([]models.UserProgress, error) {
	var records []models.UserProgress
	err := s.Db.
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("course_id asc").
		Find(&records).Error
	return records, err
}

// UpsertProgress inserts or updates the single row keyed on
// (user, course). Completion is derived from the percentage and the
// access timestamp is refreshed on every write.
func (s *ProgressStore) UpsertProgress(userID, courseID uint, percent int) (models.UserProgress, error) {
	if percent < 0 || percent > 100 {
		return models.UserProgress{}, ErrInvalidProgress
	}

	now := time.Now()

	var record models.UserProgress
	err := s.Db.
		Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).
		First(&record).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return models.UserProgress{}, err
		}
		record = models.UserProgress{
			UserID:       userID,
			CourseID:     courseID,
			Progress:     percent,
			Completed:    percent >= 100,
			LastAccessed: &now,
		}
		if err := s.Db.Create(&record).Error; err != nil {
			return models.UserProgress{}, err
		}
		return record, nil
	}

	record.Progress = percent
	record.Completed = percent >= 100
	record.LastAccessed = &now
	if err := s.Db.Save(&record).Error; err != nil {
		return models.UserProgress{}, err
	}
	return record, nil
}
