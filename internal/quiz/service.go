package quiz

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/studiq/internal/store"
	"github.com/abhisek/studiq/internal/study"
)

// Service owns all quiz state transitions. Each exported method is one
// user action: start, check answer, advance, restart. Screens call these
// and render the resulting session state.
type Service struct {
	workspace *study.Workspace
	sessions  *SessionStore
	board     *Scoreboard
	gen       Generator
	events    store.EventRepo // nil disables event logging
}

// NewService wires a quiz service over the workspace and generator.
func NewService(workspace *study.Workspace, gen Generator, events store.EventRepo) *Service {
	return &Service{
		workspace: workspace,
		sessions:  NewSessionStore(),
		board:     NewScoreboard(),
		gen:       gen,
		events:    events,
	}
}

// Sessions exposes the session store for screens.
func (s *Service) Sessions() *SessionStore {
	return s.sessions
}

// Overall exposes the process-wide scoreboard.
func (s *Service) Overall() *Scoreboard {
	return s.board
}

// Start begins a fresh quiz on a section: resets its session, returns
// the ladder to index 0 with a normal hint, and requests question #1.
// A section with no topics is rejected and the session stays idle.
// Starting section B while section A is active deactivates A without
// resetting its stored state.
func (s *Service) Start(ctx context.Context, sectionName string) error {
	section := s.workspace.Find(sectionName)
	if section == nil {
		return &study.ValidationError{Field: "section", Message: fmt.Sprintf("no section named %q", sectionName)}
	}
	if len(section.Topics) == 0 {
		return fmt.Errorf("start quiz on %q: %w", sectionName, ErrEmptyLadder)
	}

	sess := s.sessions.Get(sectionName)
	sess.reset()

	if err := s.nextQuestion(ctx, sess, section.Topics); err != nil {
		// Session stays idle; the ladder position mutation is kept.
		return err
	}

	sess.ID = uuid.NewString()
	sess.startedAt = time.Now()
	sess.QuestionCount = 1
	sess.State = StateAwaitingAnswer
	s.sessions.SetActive(sectionName)

	s.appendQuizEvent(ctx, sess, "start")
	return nil
}

// CheckAnswer evaluates the learner's selection against the current
// question. An empty selection only sets feedback; counters, hint, and
// lock state are untouched and the session keeps awaiting an answer.
func (s *Service) CheckAnswer(ctx context.Context, sectionName, selected string) error {
	sess := s.sessions.Get(sectionName)
	if sess.State != StateAwaitingAnswer {
		return fmt.Errorf("cannot check answer in state %s", sess.State)
	}

	if selected == "" {
		sess.Feedback = "Please select an answer before checking."
		return nil
	}

	q := sess.Question
	letter := string(selected[0])
	correct := letter == q.CorrectLetter

	if correct {
		sess.Feedback = fmt.Sprintf("**Correct!** %s", q.Explanation)
		sess.TotalCorrect++
		sess.Difficulty.Hint = HintHarder
	} else {
		sess.Feedback = fmt.Sprintf("**Incorrect.** The correct answer was **%s**. %s", q.CorrectFull, q.Explanation)
		sess.Difficulty.Hint = HintEasier
	}
	sess.TotalAttempted++
	s.board.RecordAttempt(correct)
	sess.State = StateLocked

	if s.events != nil {
		elapsed := time.Since(sess.shownAt).Milliseconds()
		err := s.events.AppendAnswerEvent(ctx, store.AnswerEventData{
			SessionID:     sess.ID,
			Section:       sectionName,
			Topic:         sess.Difficulty.Topic,
			TopicIndex:    sess.Difficulty.TopicIndex,
			QuestionText:  q.Stem,
			CorrectLetter: q.CorrectLetter,
			ChosenLetter:  letter,
			Correct:       correct,
			TimeMs:        elapsed,
		})
		if err != nil {
			return fmt.Errorf("record answer: %w", err)
		}
	}
	return nil
}

// Advance moves past a checked answer: either requests the next
// question or, once all questions have been asked, completes the quiz
// and clears the active section. A generation or parse failure leaves
// the session locked so the learner can retry.
func (s *Service) Advance(ctx context.Context, sectionName string) error {
	sess := s.sessions.Get(sectionName)
	if sess.State != StateLocked {
		return fmt.Errorf("cannot advance in state %s", sess.State)
	}

	if sess.QuestionCount >= MaxQuestions {
		sess.Feedback = ""
		sess.Question = nil
		sess.State = StateCompleted
		s.sessions.ClearActive(sectionName)
		s.appendQuizEvent(ctx, sess, "finish")
		return nil
	}

	section := s.workspace.Find(sectionName)
	if section == nil {
		return &study.ValidationError{Field: "section", Message: fmt.Sprintf("no section named %q", sectionName)}
	}

	if err := s.nextQuestion(ctx, sess, section.Topics); err != nil {
		return err
	}

	sess.Feedback = ""
	sess.QuestionCount++
	sess.State = StateAwaitingAnswer
	return nil
}

// Restart resets a section's session and ladder position. Valid from
// any state. The overall scoreboard is untouched.
func (s *Service) Restart(ctx context.Context, sectionName string) {
	sess := s.sessions.Get(sectionName)
	id := sess.ID
	sess.reset()
	s.sessions.ClearActive(sectionName)

	if s.events != nil && id != "" {
		_ = s.events.AppendQuizEvent(ctx, store.QuizEventData{
			SessionID: id,
			Section:   sectionName,
			Action:    "restart",
		})
	}
}

// nextQuestion runs the controller, generator, and parser pipeline and
// installs the parsed question. The session's counters and state are
// left for the caller; the ladder position mutates regardless of outcome.
func (s *Service) nextQuestion(ctx context.Context, sess *Session, ladder []string) error {
	directive, err := SelectNext(ladder, &sess.Difficulty)
	if err != nil {
		return err
	}

	raw, err := s.gen.Generate(ctx, directive)
	if err != nil {
		return err
	}

	q, err := ParseQuestion(raw)
	if err != nil {
		return fmt.Errorf("no question available: %w", err)
	}

	sess.Question = q
	sess.shownAt = time.Now()
	return nil
}

func (s *Service) appendQuizEvent(ctx context.Context, sess *Session, action string) {
	if s.events == nil {
		return
	}
	data := store.QuizEventData{
		SessionID: sess.ID,
		Section:   sess.Section,
		Action:    action,
	}
	if action == "finish" {
		data.QuestionsAnswered = sess.TotalAttempted
		data.CorrectAnswers = sess.TotalCorrect
		data.Grade = strings.TrimSpace(sess.CurrentGrade())
		data.DurationSecs = int(time.Since(sess.startedAt).Seconds())
	}
	_ = s.events.AppendQuizEvent(ctx, data)
}
