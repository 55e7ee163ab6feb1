package quiz

import (
	"errors"
	"time"
)

// Status of a quiz session. A session is either being taken or done;
// there is no other state.
type Status string

const (
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
)

var (
	ErrSessionCompleted   = errors.New("quiz session is already completed")
	ErrOptionOutOfRange   = errors.New("selected option is out of range")
	ErrQuestionUnanswered = errors.New("current question has no answer selected")
)

// Session is one attempt at a quiz. It lives in memory for the duration
// of the attempt and is discarded once a result has been recorded.
type Session struct {
	ID        string
	UserID    uint
	Quiz      *Definition
	StartedAt time.Time

	current int
	answers map[int]int
	status  Status
}

func newSession(id string, userID uint, def *Definition) *Session {
	return &Session{
		ID:        id,
		UserID:    userID,
		Quiz:      def,
		StartedAt: time.Now(),
		answers:   make(map[int]int, len(def.Questions)),
		status:    StatusInProgress,
	}
}

// Status returns the current lifecycle state
func (s *Session) Status() Status {
	return s.status
}

// IsComplete reports whether the session has reached its terminal state
func (s *Session) IsComplete() bool {
	return s.status == StatusCompleted
}

// CurrentIndex returns the index of the question being answered
func (s *Session) CurrentIndex() int {
	return s.current
}

// CurrentQuestion returns the question being answered
func (s *Session) CurrentQuestion() Question {
	return s.Quiz.Questions[s.current]
}

// SelectedAnswer returns the recorded answer for the current question,
// if one has been selected
func (s *Session) SelectedAnswer() (int, bool) {
	idx, ok := s.answers[s.current]
	return idx, ok
}

// Answer returns the recorded answer for the given question index
func (s *Session) Answer(questionIndex int) (int, bool) {
	idx, ok := s.answers[questionIndex]
	return idx, ok
}

// SelectAnswer records the answer for the current question. Re-selecting
// overwrites the previous choice; answers for questions already advanced
// past are immutable. An out-of-range option is rejected, not clamped.
func (s *Session) SelectAnswer(optionIndex int) error {
	if s.status == StatusCompleted {
		return ErrSessionCompleted
	}
	if optionIndex < 0 || optionIndex >= len(s.CurrentQuestion().Options) {
		return ErrOptionOutOfRange
	}
	s.answers[s.current] = optionIndex
	return nil
}

// Advance moves to the next question, or completes the session when the
// current question is the last one. Advancing with no answer selected is
// rejected, mirroring the disabled-until-selected rule in the UI.
func (s *Session) Advance() error {
	if s.status == StatusCompleted {
		return ErrSessionCompleted
	}
	if _, answered := s.answers[s.current]; !answered {
		return ErrQuestionUnanswered
	}
	if s.current == len(s.Quiz.Questions)-1 {
		s.status = StatusCompleted
		return nil
	}
	s.current++
	return nil
}

// Deadline is the point after which an abandoned session may be swept.
// The time budget is not enforced while the learner is answering.
func (s *Session) Deadline(grace time.Duration) time.Time {
	return s.StartedAt.Add(time.Duration(s.Quiz.Duration)*time.Minute + grace)
}
