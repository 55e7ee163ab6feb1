package progress

import (
	"time"

	"github.com/jinzhu/now"
)

// WeeklyGoal is a target against a named counter, evaluated over the
// current week only
type WeeklyGoal struct {
	Description string        `json:"description"`
	Target      int           `json:"target"`
	Counter     CounterSource `json:"-"`
}

// GoalStatus is the derived progress toward one weekly goal
type GoalStatus struct {
	Description string `json:"description"`
	Target      int    `json:"target"`
	Completed   int    `json:"completed"`
	Progress    int    `json:"progress"` // 0-100
}

// DefaultWeeklyGoals is the goal set shown on the profile page
var DefaultWeeklyGoals = []WeeklyGoal{
	{Description: "Complete 5 quizzes", Target: 5, Counter: CounterQuizzesTaken},
	{Description: "Start 2 new courses", Target: 2, Counter: CounterCoursesStarted},
	{Description: "Earn 250 XP", Target: 250, Counter: CounterTotalXP},
	{Description: "Score 80% average", Target: 80, Counter: CounterAverageScore},
}

var weekConfig = &now.Config{WeekStartDay: time.Monday}

// WeeklyGoalProgress evaluates each goal against the slice of history
// falling inside the week containing h.Ref (weeks start Monday).
func WeeklyGoalProgress(goals []WeeklyGoal, h History) []GoalStatus {
	ref := weekConfig.With(h.Ref)
	week := h.Between(ref.BeginningOfWeek(), ref.EndOfWeek())

	statuses := make([]GoalStatus, 0, len(goals))
	for _, goal := range goals {
		counted := week.Counter(goal.Counter)
		statuses = append(statuses, GoalStatus{
			Description: goal.Description,
			Target:      goal.Target,
			Completed:   counted,
			Progress:    thresholdProgress(counted, goal.Target),
		})
	}
	return statuses
}
