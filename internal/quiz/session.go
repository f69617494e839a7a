package quiz

import "time"

// Session is the per-section quiz state machine. All mutation goes
// through Service handlers; screens only read.
type Session struct {
	Section string
	ID      string // UUID assigned on each start/restart cycle

	State          State
	QuestionCount  int // 0 <= count <= MaxQuestions
	TotalCorrect   int
	TotalAttempted int
	Feedback       string
	Question       *Question
	Difficulty     DifficultyState

	startedAt time.Time // when the session started, for finish events
	shownAt   time.Time // when the current question was displayed
}

// newSession creates an idle session for a section.
func newSession(section string) *Session {
	s := &Session{Section: section}
	s.reset()
	return s
}

// reset clears all per-run state and returns the ladder to the bottom.
func (s *Session) reset() {
	s.ID = ""
	s.State = StateIdle
	s.QuestionCount = 0
	s.TotalCorrect = 0
	s.TotalAttempted = 0
	s.Feedback = ""
	s.Question = nil
	s.Difficulty.reset()
	s.startedAt = time.Time{}
	s.shownAt = time.Time{}
}

// CurrentGrade returns the section grade string.
func (s *Session) CurrentGrade() string {
	return Grade(s.TotalCorrect, s.TotalAttempted)
}

// Completed reports whether the session has answered all questions.
func (s *Session) Completed() bool {
	return s.State == StateCompleted
}
