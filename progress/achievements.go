package progress

import (
	"time"

	"learnhub/models"
)

// CounterSource names a metric derived from the user's history. Rules
// and goals reference counters by name, so new badges are data, not code.
type CounterSource string

const (
	CounterQuizzesTaken     CounterSource = "quizzes_taken"
	CounterCoursesStarted   CounterSource = "courses_started"
	CounterCoursesCompleted CounterSource = "courses_completed"
	CounterTotalXP          CounterSource = "total_xp"
	CounterAverageScore     CounterSource = "average_score"
	CounterBestScore        CounterSource = "best_score"
	CounterDayStreak        CounterSource = "day_streak"
)

// History is the full set of a user's durable records, the only input
// the aggregator reads.
type History struct {
	Results  []models.QuizResult
	Progress []models.UserProgress
	Policy   RewardPolicy
	Ref      time.Time // reference time for streak and week windows
}

// Counter evaluates a named metric over the history
func (h History) Counter(src CounterSource) int {
	switch src {
	case CounterQuizzesTaken:
		return len(h.Results)
	case CounterCoursesStarted:
		return len(h.Progress)
	case CounterCoursesCompleted:
		count := 0
		for _, rec := range h.Progress {
			if rec.Completed {
				count++
			}
		}
		return count
	case CounterTotalXP:
		return h.Policy.TotalXP(h.Results)
	case CounterAverageScore:
		return AverageQuizScore(h.Results)
	case CounterBestScore:
		best := 0
		for _, r := range h.Results {
			pct := r.Score * 100 / r.TotalQuestions
			if pct > best {
				best = pct
			}
		}
		return best
	case CounterDayStreak:
		return DayStreak(h.Results, h.Progress, h.Ref)
	}
	return 0
}

// Between narrows the history to records created inside [start, end).
// Quiz results filter on completion time, course progress on the time
// the course was first touched.
func (h History) Between(start, end time.Time) History {
	narrowed := History{Policy: h.Policy, Ref: h.Ref}
	for _, r := range h.Results {
		if !r.CompletedAt.Before(start) && r.CompletedAt.Before(end) {
			narrowed.Results = append(narrowed.Results, r)
		}
	}
	for _, rec := range h.Progress {
		if !rec.CreatedAt.Before(start) && rec.CreatedAt.Before(end) {
			narrowed.Progress = append(narrowed.Progress, rec)
		}
	}
	return narrowed
}

// AchievementRule defines a badge as a counter threshold
type AchievementRule struct {
	Key         string        `json:"key"`
	Icon        string        `json:"icon"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Counter     CounterSource `json:"-"`
	Threshold   int           `json:"-"`
}

// Achievement is the derived badge state for one rule
type Achievement struct {
	Key         string `json:"key"`
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Progress    int    `json:"progress"` // 0-100
	Earned      bool   `json:"earned"`
}

// DefaultAchievements is the badge set shown on the profile page
var DefaultAchievements = []AchievementRule{
	{Key: "quiz-master", Icon: "🏆", Title: "Quiz Master", Description: "Complete 50 quizzes", Counter: CounterQuizzesTaken, Threshold: 50},
	{Key: "accuracy-pro", Icon: "🎯", Title: "Accuracy Pro", Description: "Maintain a 90% average quiz score", Counter: CounterAverageScore, Threshold: 90},
	{Key: "streak-champion", Icon: "🔥", Title: "Streak Champion", Description: "Keep a 15-day learning streak", Counter: CounterDayStreak, Threshold: 15},
	{Key: "knowledge-seeker", Icon: "📚", Title: "Knowledge Seeker", Description: "Start 10 courses", Counter: CounterCoursesStarted, Threshold: 10},
	{Key: "course-conqueror", Icon: "💎", Title: "Course Conqueror", Description: "Complete 5 courses", Counter: CounterCoursesCompleted, Threshold: 5},
	{Key: "xp-collector", Icon: "⚡", Title: "XP Collector", Description: "Earn 1,000 XP", Counter: CounterTotalXP, Threshold: 1000},
}

// EvaluateAchievements derives badge state for each rule. Progress is
// capped at 100 and a badge is earned exactly when its counter meets the
// threshold.
func EvaluateAchievements(rules []AchievementRule, h History) []Achievement {
	achievements := make([]Achievement, 0, len(rules))
	for _, rule := range rules {
		achievements = append(achievements, Achievement{
			Key:         rule.Key,
			Icon:        rule.Icon,
			Title:       rule.Title,
			Description: rule.Description,
			Progress:    thresholdProgress(h.Counter(rule.Counter), rule.Threshold),
			Earned:      h.Counter(rule.Counter) >= rule.Threshold,
		})
	}
	return achievements
}

// thresholdProgress maps counter/threshold onto 0-100. Floor division
// keeps an unmet threshold below 100 even when it rounds close.
func thresholdProgress(counter, threshold int) int {
	if threshold <= 0 || counter >= threshold {
		return 100
	}
	if counter < 0 {
		return 0
	}
	return counter * 100 / threshold
}
