package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// completedSession builds a finished attempt with the given answers;
// a negative answer leaves that question unanswered.
func completedSession(t *testing.T, def Definition, answers []int) *Session {
	t.Helper()
	require.Len(t, answers, len(def.Questions))

	s := newSession("test-attempt", 1, &def)
	for _, answer := range answers {
		if answer >= 0 {
			require.NoError(t, s.SelectAnswer(answer))
			require.NoError(t, s.Advance())
			continue
		}
		// Skip past an intentionally unanswered question
		s.current++
	}
	s.current = len(def.Questions) - 1
	s.status = StatusCompleted
	return s
}

func TestScoreMathFundamentals(t *testing.T) {
	// Correct answers are [1, 2, 2]; the learner gets the first two
	s := completedSession(t, validDefinition(), []int{1, 2, 0})

	report, err := Score(s)
	require.NoError(t, err)

	assert.Equal(t, "math-basics", report.QuizID)
	assert.Equal(t, "Mathematics Fundamentals", report.QuizName)
	assert.Equal(t, 2, report.RawScore)
	assert.Equal(t, 3, report.TotalQuestions)
	assert.Equal(t, 67, report.Percentage)

	require.Len(t, report.Review, 3)
	assert.True(t, report.Review[0].IsCorrect)
	assert.True(t, report.Review[1].IsCorrect)
	assert.False(t, report.Review[2].IsCorrect)
	assert.Equal(t, 2, report.Review[2].Correct)
	require.NotNil(t, report.Review[2].Selected)
	assert.Equal(t, 0, *report.Review[2].Selected)
	assert.Equal(t, "12 × 8 = 96", report.Review[2].Explanation)
}

func TestScoreUnansweredCountsIncorrect(t *testing.T) {
	s := completedSession(t, validDefinition(), []int{1, -1, -1})

	report, err := Score(s)
	require.NoError(t, err)

	assert.Equal(t, 1, report.RawScore)
	assert.Equal(t, 33, report.Percentage)
	assert.Nil(t, report.Review[1].Selected)
	assert.False(t, report.Review[1].IsCorrect)
	assert.Nil(t, report.Review[2].Selected)
}

func TestScoreIsIdempotent(t *testing.T) {
	s := completedSession(t, validDefinition(), []int{1, 2, 0})

	first, err := Score(s)
	require.NoError(t, err)
	second, err := Score(s)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestScoreRejectsInProgressSession(t *testing.T) {
	s := startSession(t)
	require.NoError(t, s.SelectAnswer(1))

	_, err := Score(s)
	assert.ErrorIs(t, err, ErrSessionNotCompleted)
}

func TestScoreBoundsOverBuiltinQuizzes(t *testing.T) {
	for _, def := range DefaultCatalog().List() {
		answers := make([]int, len(def.Questions))
		s := completedSession(t, def, answers)

		report, err := Score(s)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, report.RawScore, 0, "quiz %s", def.ID)
		assert.LessOrEqual(t, report.RawScore, report.TotalQuestions, "quiz %s", def.ID)
		assert.GreaterOrEqual(t, report.Percentage, 0, "quiz %s", def.ID)
		assert.LessOrEqual(t, report.Percentage, 100, "quiz %s", def.ID)
	}
}
