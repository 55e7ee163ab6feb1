package progress

import "learnhub/models"

// RewardPolicy isolates the XP curve from the aggregation plumbing.
// The portal awards a flat amount per completed quiz regardless of score
// or difficulty; change the policy here, not the aggregator.
type RewardPolicy struct {
	XPPerQuiz  int
	XPPerLevel int
}

// DefaultRewardPolicy matches the portal's original reward curve.
var DefaultRewardPolicy = RewardPolicy{
	XPPerQuiz:  50,
	XPPerLevel: 100,
}

// TotalXP returns the cumulative XP for the given result history
func (p RewardPolicy) TotalXP(results []models.QuizResult) int {
	return len(results) * p.XPPerQuiz
}

// Level derives the learner level from total XP, starting at level 1
func (p RewardPolicy) Level(xp int) int {
	return xp/p.XPPerLevel + 1
}
