package quiz

import (
	"errors"
	"math"
)

var ErrSessionNotCompleted = errors.New("quiz session is not completed")

// QuestionReview is the per-question breakdown shown on the result screen
type QuestionReview struct {
	QuestionID  int      `json:"question_id"`
	Prompt      string   `json:"question"`
	Options     []string `json:"options"`
	Selected    *int     `json:"selected"` // nil when unanswered
	Correct     int      `json:"correct"`
	IsCorrect   bool     `json:"is_correct"`
	Explanation string   `json:"explanation"`
}

// ScoreReport is the full outcome of a completed session
type ScoreReport struct {
	QuizID         string           `json:"quiz_id"`
	QuizName       string           `json:"quiz_name"`
	RawScore       int              `json:"score"`
	TotalQuestions int              `json:"total_questions"`
	Percentage     int              `json:"percentage"`
	Review         []QuestionReview `json:"review"`
}

// Score computes the report for a completed session. It reads nothing
// but the session itself, so the same session always yields the same
// report. Unanswered questions count as incorrect.
func Score(s *Session) (ScoreReport, error) {
	if !s.IsComplete() {
		return ScoreReport{}, ErrSessionNotCompleted
	}

	total := len(s.Quiz.Questions)
	report := ScoreReport{
		QuizID:         s.Quiz.ID,
		QuizName:       s.Quiz.Title,
		TotalQuestions: total,
		Review:         make([]QuestionReview, 0, total),
	}

	for i, q := range s.Quiz.Questions {
		review := QuestionReview{
			QuestionID:  q.ID,
			Prompt:      q.Prompt,
			Options:     q.Options,
			Correct:     q.Correct,
			Explanation: q.Explanation,
		}
		if selected, ok := s.Answer(i); ok {
			sel := selected
			review.Selected = &sel
			review.IsCorrect = selected == q.Correct
		}
		if review.IsCorrect {
			report.RawScore++
		}
		report.Review = append(report.Review, review)
	}

	report.Percentage = int(math.Round(float64(report.RawScore) / float64(total) * 100))
	return report, nil
}
