package store

import (
	"testing"
	"time"

	"learnhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDb(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Course{},
		&models.UserProgress{},
		&models.QuizResult{},
		&models.LiveClass{},
	))
	return db
}

func TestUpsertProgressCreatesThenUpdates(t *testing.T) {
	db := setupTestDb(t)
	s := NewProgressStore(db)

	created, err := s.UpsertProgress(1, 10, 40)
	require.NoError(t, err)
	assert.Equal(t, 40, created.Progress)
	assert.False(t, created.Completed)
	require.NotNil(t, created.LastAccessed)

	// Second write for the same (user, course) must update in place
	updated, err := s.UpsertProgress(1, 10, 100)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 100, updated.Progress)
	assert.True(t, updated.Completed)

	var count int64
	db.Model(&models.UserProgress{}).Where("user_id = ? AND course_id = ?", 1, 10).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestUpsertProgressRejectsOutOfRange(t *testing.T) {
	db := setupTestDb(t)
	s := NewProgressStore(db)

	_, err := s.UpsertProgress(1, 10, -1)
	assert.ErrorIs(t, err, ErrInvalidProgress)
	_, err = s.UpsertProgress(1, 10, 101)
	assert.ErrorIs(t, err, ErrInvalidProgress)
}

func TestGetProgressScopedToUser(t *testing.T) {
	db := setupTestDb(t)
	s := NewProgressStore(db)

	_, err := s.UpsertProgress(1, 10, 30)
	require.NoError(t, err)
	_, err = s.UpsertProgress(1, 11, 60)
	require.NoError(t, err)
	_, err = s.UpsertProgress(2, 10, 90)
	require.NoError(t, err)

	records, err := s.GetProgress(1)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.EqualValues(t, 10, records[0].CourseID)
	assert.EqualValues(t, 11, records[1].CourseID)
}

func TestInsertAndListResults(t *testing.T) {
	db := setupTestDb(t)
	s := NewResultStore(db)

	first, err := s.InsertResult(1, "Mathematics Fundamentals", 2, 3)
	require.NoError(t, err)
	assert.False(t, first.CompletedAt.IsZero())

	time.Sleep(5 * time.Millisecond)
	_, err = s.InsertResult(1, "Physics: Motion & Forces", 1, 2)
	require.NoError(t, err)

	_, err = s.InsertResult(2, "Mathematics Fundamentals", 3, 3)
	require.NoError(t, err)

	results, err := s.ListResults(1)
	require.NoError(t, err)
	require.Len(t, results, 2)

	// Most recent first
	assert.Equal(t, "Physics: Motion & Forces", results[0].QuizName)
	assert.Equal(t, "Mathematics Fundamentals", results[1].QuizName)
}

func TestInsertResultRejectsInvalidScore(t *testing.T) {
	db := setupTestDb(t)
	s := NewResultStore(db)

	_, err := s.InsertResult(1, "Mathematics Fundamentals", 4, 3)
	assert.ErrorIs(t, err, ErrInvalidScore)
	_, err = s.InsertResult(1, "Mathematics Fundamentals", -1, 3)
	assert.ErrorIs(t, err, ErrInvalidScore)
	_, err = s.InsertResult(1, "Mathematics Fundamentals", 0, 0)
	assert.ErrorIs(t, err, ErrInvalidScore)
}

func TestListCoursesFiltersUnpublished(t *testing.T) {
	db := setupTestDb(t)

	require.NoError(t, db.Create(&models.Course{Title: "Algebra I", Subject: "Mathematics", IsPublished: true}).Error)
	require.NoError(t, db.Create(&models.Course{Title: "Draft Course", Subject: "Physics"}).Error)
	require.NoError(t, db.Create(&models.Course{Title: "Removed Course", Subject: "Biology", IsPublished: true, IsDeleted: true}).Error)

	courses, err := NewCourseStore(db).ListCourses()
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "Algebra I", courses[0].Title)
}

func TestLiveClassUpsertKeyedOnTitleAndStart(t *testing.T) {
	db := setupTestDb(t)
	s := NewLiveClassStore(db)

	start := time.Now().Add(2 * time.Hour).Truncate(time.Second)
	class := models.LiveClass{
		Title:      "Organic Chemistry Q&A",
		Subject:    "Chemistry",
		Instructor: "Dr. Rao",
		StartTime:  start,
		Duration:   45,
	}
	require.NoError(t, s.UpsertClass(class))

	class.Instructor = "Dr. Sharma"
	require.NoError(t, s.UpsertClass(class))

	classes, err := s.ListUpcoming(time.Now())
	require.NoError(t, err)
	require.Len(t, classes, 1)
	assert.Equal(t, "Dr. Sharma", classes[0].Instructor)
}
