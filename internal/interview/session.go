package interview

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

var (
	// ErrNoActiveSession is returned when an answer arrives while no
	// interview is running.
	ErrNoActiveSession = errors.New("no active interview session")
	// ErrInterviewComplete is returned when an answer arrives after the
	// last question has been answered.
	ErrInterviewComplete = errors.New("interview already complete")
	// ErrBadAudio is returned when the submitted audio payload cannot be
	// decoded.
	ErrBadAudio = errors.New("invalid audio payload")
)

// State of the single tracked session.
type State string

const (
	StateIdle       State = "idle"
	StateInProgress State = "in_progress"
	StateComplete   State = "complete"
)

// Response is one recorded question/answer pair.
type Response struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// RecordResult describes the session after an answer was recorded.
type RecordResult struct {
	Question     string // the question that was answered
	NextQuestion string // empty when the interview is complete
	Complete     bool
}

// Manager tracks at most one interview session process-wide. The mutex
// makes concurrent access explicit: a second Start replaces the first
// session, and answers are recorded against a consistent question index.
type Manager struct {
	mu        sync.Mutex
	questions []string
	sessionID string
	index     int
	responses []Response
}

func NewManager(questions []string) *Manager {
	return &Manager{questions: questions}
}

// Start begins a fresh session from any state, discarding previous
// responses, and returns the new session id and the first question.
func (m *Manager) Start() (sessionID, firstQuestion string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessionID = uuid.NewString()
	m.index = 0
	m.responses = m.responses[:0]
	return m.sessionID, m.questions[0]
}

// RecordAnswer stores the answer to the current question and advances the
// session. Only valid while the session is in progress.
func (m *Manager) RecordAnswer(answer string) (*RecordResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.stateLocked() {
	case StateIdle:
		return nil, ErrNoActiveSession
	case StateComplete:
		return nil, ErrInterviewComplete
	}

	question := m.questions[m.index]
	m.responses = append(m.responses, Response{Question: question, Answer: answer})
	m.index++

	res := &RecordResult{Question: question}
	if m.index >= len(m.questions) {
		res.Complete = true
	} else {
		res.NextQuestion = m.questions[m.index]
	}
	return res, nil
}

// Reset returns the manager to idle and clears all session data.
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessionID = ""
	m.index = 0
	m.responses = m.responses[:0]
}

func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stateLocked()
}

func (m *Manager) stateLocked() State {
	switch {
	case m.sessionID == "":
		return StateIdle
	case m.index >= len(m.questions):
		return StateComplete
	default:
		return StateInProgress
	}
}

// Responses returns a copy of the recorded question/answer pairs.
func (m *Manager) Responses() []Response {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Response, len(m.responses))
	copy(out, m.responses)
	return out
}
