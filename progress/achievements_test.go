package progress

import (
	"testing"
	"time"

	"learnhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func historyWithResults(count int, score, total int) History {
	h := History{Policy: DefaultRewardPolicy, Ref: time.Now()}
	for i := 0; i < count; i++ {
		h.Results = append(h.Results, result(score, total, time.Now()))
	}
	return h
}

func TestCountThresholdRule(t *testing.T) {
	rule := AchievementRule{
		Key:       "quiz-5",
		Title:     "Getting Started",
		Counter:   CounterQuizzesTaken,
		Threshold: 5,
	}

	t.Run("threshold met exactly", func(t *testing.T) {
		got := EvaluateAchievements([]AchievementRule{rule}, historyWithResults(5, 4, 5))
		require.Len(t, got, 1)
		assert.True(t, got[0].Earned)
		assert.Equal(t, 100, got[0].Progress)
	})

	t.Run("below threshold", func(t *testing.T) {
		got := EvaluateAchievements([]AchievementRule{rule}, historyWithResults(3, 4, 5))
		require.Len(t, got, 1)
		assert.False(t, got[0].Earned)
		assert.Equal(t, 60, got[0].Progress)
	})

	t.Run("empty history", func(t *testing.T) {
		got := EvaluateAchievements([]AchievementRule{rule}, History{Policy: DefaultRewardPolicy})
		require.Len(t, got, 1)
		assert.False(t, got[0].Earned)
		assert.Equal(t, 0, got[0].Progress)
	})
}

func TestProgressNeverRoundsUpToEarned(t *testing.T) {
	// 199 of 200 must stay below 100%
	assert.Equal(t, 99, thresholdProgress(199, 200))
	assert.Equal(t, 100, thresholdProgress(200, 200))
	assert.Equal(t, 100, thresholdProgress(201, 200))
}

func TestHistoryCounters(t *testing.T) {
	accessed := time.Now()
	h := History{
		Policy: DefaultRewardPolicy,
		Ref:    time.Now(),
		Results: []models.QuizResult{
			result(4, 5, time.Now()),
			result(5, 5, time.Now()),
			result(2, 5, time.Now()),
		},
		Progress: []models.UserProgress{
			{CourseID: 1, Progress: 100, Completed: true, LastAccessed: &accessed},
			{CourseID: 2, Progress: 40},
		},
	}

	assert.Equal(t, 3, h.Counter(CounterQuizzesTaken))
	assert.Equal(t, 2, h.Counter(CounterCoursesStarted))
	assert.Equal(t, 1, h.Counter(CounterCoursesCompleted))
	assert.Equal(t, 150, h.Counter(CounterTotalXP))
	assert.Equal(t, 73, h.Counter(CounterAverageScore)) // mean of 80, 100, 40
	assert.Equal(t, 100, h.Counter(CounterBestScore))
	assert.Equal(t, 0, h.Counter(CounterSource("unknown")))
}

func TestDefaultAchievementsZeroCase(t *testing.T) {
	got := EvaluateAchievements(DefaultAchievements, History{Policy: DefaultRewardPolicy, Ref: time.Now()})
	require.Len(t, got, len(DefaultAchievements))
	for _, achievement := range got {
		assert.False(t, achievement.Earned, achievement.Key)
		assert.Equal(t, 0, achievement.Progress, achievement.Key)
	}
}

func TestWeeklyGoalProgressCountsCurrentWeekOnly(t *testing.T) {
	// Wednesday; the week runs Monday 2025-03-10 through Sunday
	ref := time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC)

	h := History{
		Policy: DefaultRewardPolicy,
		Ref:    ref,
		Results: []models.QuizResult{
			result(4, 5, ref),                    // this week
			result(5, 5, ref.AddDate(0, 0, -2)),  // Monday, this week
			result(3, 5, ref.AddDate(0, 0, -7)),  // last week
			result(2, 5, ref.AddDate(0, 0, -30)), // long gone
		},
		Progress: []models.UserProgress{
			{Model: gorm.Model{CreatedAt: ref.AddDate(0, 0, -1)}, CourseID: 1, Progress: 10},
			{Model: gorm.Model{CreatedAt: ref.AddDate(0, 0, -10)}, CourseID: 2, Progress: 50},
		},
	}

	goals := []WeeklyGoal{
		{Description: "Complete 5 quizzes", Target: 5, Counter: CounterQuizzesTaken},
		{Description: "Start 2 new courses", Target: 2, Counter: CounterCoursesStarted},
		{Description: "Earn 250 XP", Target: 250, Counter: CounterTotalXP},
	}

	statuses := WeeklyGoalProgress(goals, h)
	require.Len(t, statuses, 3)

	assert.Equal(t, GoalStatus{Description: "Complete 5 quizzes", Target: 5, Completed: 2, Progress: 40}, statuses[0])
	assert.Equal(t, GoalStatus{Description: "Start 2 new courses", Target: 2, Completed: 1, Progress: 50}, statuses[1])
	assert.Equal(t, GoalStatus{Description: "Earn 250 XP", Target: 250, Completed: 100, Progress: 40}, statuses[2])
}
