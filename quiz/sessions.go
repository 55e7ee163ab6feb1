package quiz

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrNoActiveSession = errors.New("no active quiz session")

// SessionManager keeps the in-memory quiz sessions, one active attempt
// per user. Starting a new quiz replaces whatever attempt was underway,
// matching the exit-and-retake behaviour of the quiz screen.
type SessionManager struct {
	mu     sync.Mutex
	byUser map[uint]*Session
}

func NewSessionManager() *SessionManager {
	return &SessionManager{byUser: make(map[uint]*Session)}
}

// Start creates a fresh session for the user over the given definition
func (m *SessionManager) Start(userID uint, def *Definition) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := newSession(uuid.NewString(), userID, def)
	m.byUser[userID] = s
	return s
}

// Active returns the user's current session
func (m *SessionManager) Active(userID uint) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.byUser[userID]
	if !ok {
		return nil, ErrNoActiveSession
	}
	return s, nil
}

// End discards the user's current session
func (m *SessionManager) End(userID uint) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.byUser, userID)
}

// SweepExpired drops sessions abandoned past their time budget plus
// grace, and returns how many were removed.
func (m *SessionManager) SweepExpired(ref time.Time, grace time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for userID, s := range m.byUser {
		if ref.After(s.Deadline(grace)) {
			delete(m.byUser, userID)
			removed++
		}
	}
	return removed
}
