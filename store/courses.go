// Package store wraps the database access behind the small set of
// contracts the rest of the portal consumes: course catalog reads,
// progress upserts, append-only quiz results and the live-class
// schedule.
package store

import (
	"errors"
	"time"

	"learnhub/models"

	"gorm.io/gorm"
)

// CourseStore reads the course catalog
type CourseStore struct {
	Db *gorm.DB
}

func NewCourseStore(db *gorm.DB) *CourseStore {
	return &CourseStore{Db: db}
}

// ListCourses returns published courses, newest first
func (s *CourseStore) ListCourses() ([]models.Course, error) {
	var courses []models.Course
	err := s.Db.
		Where("is_deleted = ? AND is_published = ?", false, true).
		Order("created_at desc").
		Find(&courses).Error
	return courses, err
}

// GetCourse returns one published course by id
func (s *CourseStore) GetCourse(courseID uint) (models.Course, error) {
	var course models.Course
	err := s.Db.
		Where("id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).
		First(&course).Error
	return course, err
}

// LiveClassStore reads and refreshes the live-class schedule
type LiveClassStore struct {
	Db *gorm.DB
}

func NewLiveClassStore(db *gorm.DB) *LiveClassStore {
	return &LiveClassStore{Db: db}
}

// ListUpcoming returns classes that have not ended yet, soonest first
func (s *LiveClassStore) ListUpcoming(from time.Time) ([]models.LiveClass, error) {
	var classes []models.LiveClass
	err := s.Db.
		Where("is_deleted = ? AND start_time >= ?", false, from).
		Order("start_time asc").
		Find(&classes).Error
	return classes, err
}

// UpsertClass inserts or refreshes a schedule entry keyed on
// (title, start_time), so repeated feed pulls do not duplicate rows
func (s *LiveClassStore) UpsertClass(class models.LiveClass) error {
	var existing models.LiveClass
	err := s.Db.
		Where("title = ? AND start_time = ? AND is_deleted = ?", class.Title, class.StartTime, false).
		First(&existing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return s.Db.Create(&class).Error
		}
		return err
	}

	existing.Subject = class.Subject
	existing.Instructor = class.Instructor
	existing.Duration = class.Duration
	existing.MeetingURL = class.MeetingURL
	return s.Db.Save(&existing).Error
}
