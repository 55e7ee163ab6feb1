package progress

import (
	"testing"
	"time"

	"learnhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func result(score, total int, completedAt time.Time) models.QuizResult {
	return models.QuizResult{
		QuizName:       "Mathematics Fundamentals",
		Score:          score,
		TotalQuestions: total,
		CompletedAt:    completedAt,
	}
}

func courseProgress(courseID uint, percent int) models.UserProgress {
	return models.UserProgress{
		CourseID:  courseID,
		Progress:  percent,
		Completed: percent >= 100,
	}
}

func TestEmptyHistoryYieldsZeroes(t *testing.T) {
	assert.Equal(t, 0, OverallProgress(nil))
	assert.Equal(t, 0, AverageQuizScore(nil))
	assert.Empty(t, SubjectRollups(nil, nil))
	assert.Equal(t, 0, DayStreak(nil, nil, time.Now()))

	policy := DefaultRewardPolicy
	assert.Equal(t, 0, policy.TotalXP(nil))
	assert.Equal(t, 1, policy.Level(0))
}

func TestOverallProgress(t *testing.T) {
	records := []models.UserProgress{
		courseProgress(1, 75),
		courseProgress(2, 60),
		courseProgress(3, 85),
		courseProgress(4, 70),
	}
	assert.Equal(t, 73, OverallProgress(records))
}

func TestAverageQuizScoreAndRewards(t *testing.T) {
	// Five quizzes, each scored 4/5
	var results []models.QuizResult
	for i := 0; i < 5; i++ {
		results = append(results, result(4, 5, time.Now()))
	}

	assert.Equal(t, 80, AverageQuizScore(results))

	policy := DefaultRewardPolicy
	xp := policy.TotalXP(results)
	assert.Equal(t, 250, xp)
	assert.Equal(t, 3, policy.Level(xp))
}

func TestSubjectRollups(t *testing.T) {
	courses := []models.Course{
		{Model: gorm.Model{ID: 10}, Subject: "Physics"},
		{Model: gorm.Model{ID: 11}, Subject: "Physics"},
		{Model: gorm.Model{ID: 12}, Subject: "Mathematics"},
	}
	records := []models.UserProgress{
		courseProgress(10, 60),
		courseProgress(12, 90),
		courseProgress(11, 80),
		courseProgress(99, 50), // course no longer in the catalog
	}

	rollups := SubjectRollups(records, courses)
	require.Len(t, rollups, 2)

	// First-seen order of subjects in the records
	assert.Equal(t, SubjectRollup{Subject: "Physics", AverageProgress: 70, CourseCount: 2}, rollups[0])
	assert.Equal(t, SubjectRollup{Subject: "Mathematics", AverageProgress: 90, CourseCount: 1}, rollups[1])
}

func TestDayStreak(t *testing.T) {
	ref := time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC)
	day := func(offset int) time.Time { return ref.AddDate(0, 0, offset) }

	t.Run("consecutive days ending today", func(t *testing.T) {
		results := []models.QuizResult{
			result(3, 5, day(0)),
			result(4, 5, day(-1)),
			result(5, 5, day(-2)),
		}
		assert.Equal(t, 3, DayStreak(results, nil, ref))
	})

	t.Run("no activity today keeps yesterday's streak", func(t *testing.T) {
		results := []models.QuizResult{
			result(3, 5, day(-1)),
			result(4, 5, day(-2)),
		}
		assert.Equal(t, 2, DayStreak(results, nil, ref))
	})

	t.Run("gap breaks the streak", func(t *testing.T) {
		results := []models.QuizResult{
			result(3, 5, day(0)),
			result(4, 5, day(-3)),
		}
		assert.Equal(t, 1, DayStreak(results, nil, ref))
	})

	t.Run("course access counts as activity", func(t *testing.T) {
		accessed := day(-1)
		records := []models.UserProgress{{CourseID: 1, Progress: 10, LastAccessed: &accessed}}
		results := []models.QuizResult{result(3, 5, day(0))}
		assert.Equal(t, 2, DayStreak(results, records, ref))
	})
}
