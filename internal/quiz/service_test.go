package quiz

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/abhisek/studiq/internal/study"
)

// stubGenerator returns a fixed well-formed question unless an error or
// override is queued, and records every directive it receives.
type stubGenerator struct {
	directives []string
	overrides  []stubResult
}

type stubResult struct {
	text string
	err  error
}

func questionText(correctLetter string) string {
	return fmt.Sprintf(`### Question 1:
Which organelle produces ATP?
A) Mitochondria
B) Nucleus
C) Ribosome
D) Golgi apparatus
Correct Answer: %s
Explanation: Cellular respiration happens in the mitochondria.`, correctLetter+") "+optionText(correctLetter))
}

func optionText(letter string) string {
	switch letter {
	case "A":
		return "Mitochondria"
	case "B":
		return "Nucleus"
	case "C":
		return "Ribosome"
	default:
		return "Golgi apparatus"
	}
}

func (g *stubGenerator) Generate(_ context.Context, directive string) (string, error) {
	g.directives = append(g.directives, directive)
	if len(g.overrides) > 0 {
		next := g.overrides[0]
		g.overrides = g.overrides[1:]
		return next.text, next.err
	}
	return questionText("A"), nil
}

func (g *stubGenerator) queue(text string, err error) {
	g.overrides = append(g.overrides, stubResult{text: text, err: err})
}

func newTestService(t *testing.T, topics ...string) (*Service, *stubGenerator) {
	t.Helper()
	w := study.NewWorkspace()
	if _, err := w.AddSection("Cell Biology"); err != nil {
		t.Fatalf("add section: %v", err)
	}
	for _, topic := range topics {
		if err := w.AddTopic("Cell Biology", topic); err != nil {
			t.Fatalf("add topic: %v", err)
		}
	}
	gen := &stubGenerator{}
	return NewService(w, gen, nil), gen
}

func TestStart_EmptyLadderRejected(t *testing.T) {
	svc, gen := newTestService(t)

	err := svc.Start(context.Background(), "Cell Biology")
	if !errors.Is(err, ErrEmptyLadder) {
		t.Fatalf("expected ErrEmptyLadder, got %v", err)
	}
	if len(gen.directives) != 0 {
		t.Error("no question should be requested for an empty ladder")
	}

	sess := svc.Sessions().Get("Cell Biology")
	if sess.State != StateIdle {
		t.Errorf("state = %s, want idle", sess.State)
	}
	if svc.Sessions().Active() != "" {
		t.Errorf("active = %q, want none", svc.Sessions().Active())
	}
}

func TestStart_UnknownSection(t *testing.T) {
	svc, _ := newTestService(t, "Organelles")

	err := svc.Start(context.Background(), "Thermodynamics")
	if err == nil {
		t.Fatal("expected error")
	}
	var verr *study.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
}

func TestStart_FirstQuestion(t *testing.T) {
	svc, gen := newTestService(t, "Organelles", "Membranes")

	if err := svc.Start(context.Background(), "Cell Biology"); err != nil {
		t.Fatalf("start: %v", err)
	}

	sess := svc.Sessions().Get("Cell Biology")
	if sess.State != StateAwaitingAnswer {
		t.Errorf("state = %s, want awaiting-answer", sess.State)
	}
	if sess.QuestionCount != 1 {
		t.Errorf("count = %d, want 1", sess.QuestionCount)
	}
	if sess.Question == nil {
		t.Fatal("expected a question")
	}
	if sess.ID == "" {
		t.Error("expected a session ID")
	}
	if sess.Difficulty.TopicIndex != 0 || sess.Difficulty.Topic != "Organelles" {
		t.Errorf("difficulty = %+v, want index 0 on Organelles", sess.Difficulty)
	}
	if svc.Sessions().Active() != "Cell Biology" {
		t.Errorf("active = %q, want Cell Biology", svc.Sessions().Active())
	}
	if !strings.Contains(gen.directives[0], "balanced difficulty") {
		t.Errorf("first directive should be balanced: %q", gen.directives[0])
	}
}

func TestStart_GenerationFailureLeavesIdle(t *testing.T) {
	svc, gen := newTestService(t, "Organelles")
	gen.queue("", errors.New("provider down"))

	err := svc.Start(context.Background(), "Cell Biology")
	if err == nil {
		t.Fatal("expected error")
	}

	sess := svc.Sessions().Get("Cell Biology")
	if sess.State != StateIdle {
		t.Errorf("state = %s, want idle", sess.State)
	}
	if sess.QuestionCount != 0 {
		t.Errorf("count = %d, want 0", sess.QuestionCount)
	}
	if svc.Sessions().Active() != "" {
		t.Errorf("active = %q, want none", svc.Sessions().Active())
	}
}

func TestCheckAnswer_EmptySelection(t *testing.T) {
	svc, _ := newTestService(t, "Organelles")
	if err := svc.Start(context.Background(), "Cell Biology"); err != nil {
		t.Fatalf("start: %v", err)
	}

	if err := svc.CheckAnswer(context.Background(), "Cell Biology", ""); err != nil {
		t.Fatalf("check: %v", err)
	}

	sess := svc.Sessions().Get("Cell Biology")
	if sess.Feedback != "Please select an answer before checking." {
		t.Errorf("feedback = %q", sess.Feedback)
	}
	// No counters advance, no lock: the learner just picks again.
	if sess.State != StateAwaitingAnswer {
		t.Errorf("state = %s, want awaiting-answer", sess.State)
	}
	if sess.TotalAttempted != 0 {
		t.Errorf("attempted = %d, want 0", sess.TotalAttempted)
	}
}

func TestCheckAnswer_Correct(t *testing.T) {
	svc, _ := newTestService(t, "Organelles", "Membranes")
	if err := svc.Start(context.Background(), "Cell Biology"); err != nil {
		t.Fatalf("start: %v", err)
	}

	if err := svc.CheckAnswer(context.Background(), "Cell Biology", "A) Mitochondria"); err != nil {
		t.Fatalf("check: %v", err)
	}

	sess := svc.Sessions().Get("Cell Biology")
	if sess.State != StateLocked {
		t.Errorf("state = %s, want locked", sess.State)
	}
	if sess.TotalCorrect != 1 || sess.TotalAttempted != 1 {
		t.Errorf("counters = (%d, %d), want (1, 1)", sess.TotalCorrect, sess.TotalAttempted)
	}
	if sess.Difficulty.Hint != HintHarder {
		t.Errorf("hint = %s, want harder", sess.Difficulty.Hint)
	}
	if !strings.HasPrefix(sess.Feedback, "**Correct!**") {
		t.Errorf("feedback = %q", sess.Feedback)
	}
	if sess.CurrentGrade() != "100.0%" {
		t.Errorf("grade = %q, want 100.0%%", sess.CurrentGrade())
	}
	if svc.Overall().Grade() != "100.0%" {
		t.Errorf("overall = %q, want 100.0%%", svc.Overall().Grade())
	}
}

func TestCheckAnswer_Incorrect(t *testing.T) {
	svc, _ := newTestService(t, "Organelles", "Membranes")
	if err := svc.Start(context.Background(), "Cell Biology"); err != nil {
		t.Fatalf("start: %v", err)
	}

	if err := svc.CheckAnswer(context.Background(), "Cell Biology", "C) Ribosome"); err != nil {
		t.Fatalf("check: %v", err)
	}

	sess := svc.Sessions().Get("Cell Biology")
	if sess.TotalCorrect != 0 || sess.TotalAttempted != 1 {
		t.Errorf("counters = (%d, %d), want (0, 1)", sess.TotalCorrect, sess.TotalAttempted)
	}
	if sess.Difficulty.Hint != HintEasier {
		t.Errorf("hint = %s, want easier", sess.Difficulty.Hint)
	}
	if !strings.HasPrefix(sess.Feedback, "**Incorrect.**") {
		t.Errorf("feedback = %q", sess.Feedback)
	}
	if !strings.Contains(sess.Feedback, "**A) Mitochondria**") {
		t.Errorf("feedback should name the correct answer: %q", sess.Feedback)
	}
	if sess.CurrentGrade() != "0.0%" {
		t.Errorf("grade = %q, want 0.0%%", sess.CurrentGrade())
	}
}

func TestCheckAnswer_RequiresOpenQuestion(t *testing.T) {
	svc, _ := newTestService(t, "Organelles")

	// Idle session: nothing to check.
	if err := svc.CheckAnswer(context.Background(), "Cell Biology", "A) x"); err == nil {
		t.Fatal("expected error in idle state")
	}

	if err := svc.Start(context.Background(), "Cell Biology"); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := svc.CheckAnswer(context.Background(), "Cell Biology", "A) Mitochondria"); err != nil {
		t.Fatalf("check: %v", err)
	}
	// Locked: re-answering is blocked.
	if err := svc.CheckAnswer(context.Background(), "Cell Biology", "B) Nucleus"); err == nil {
		t.Fatal("expected error in locked state")
	}
}

func TestAdvance_ParseFailureDoesNotAdvance(t *testing.T) {
	svc, gen := newTestService(t, "Organelles", "Membranes")
	if err := svc.Start(context.Background(), "Cell Biology"); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := svc.CheckAnswer(context.Background(), "Cell Biology", "A) Mitochondria"); err != nil {
		t.Fatalf("check: %v", err)
	}

	gen.queue("I'm sorry, I can't generate a question right now.", nil)
	err := svc.Advance(context.Background(), "Cell Biology")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "no question available") {
		t.Errorf("error = %v, want a no-question-available failure", err)
	}

	sess := svc.Sessions().Get("Cell Biology")
	if sess.State != StateLocked {
		t.Errorf("state = %s, want locked (retryable)", sess.State)
	}
	if sess.QuestionCount != 1 {
		t.Errorf("count = %d, want 1 (not advanced)", sess.QuestionCount)
	}

	// Retrying after a good generation succeeds.
	if err := svc.Advance(context.Background(), "Cell Biology"); err != nil {
		t.Fatalf("retry advance: %v", err)
	}
	if sess.QuestionCount != 2 {
		t.Errorf("count = %d, want 2", sess.QuestionCount)
	}
	if sess.State != StateAwaitingAnswer {
		t.Errorf("state = %s, want awaiting-answer", sess.State)
	}
}

func TestFullQuiz_AdaptiveScenario(t *testing.T) {
	svc, gen := newTestService(t, "Organelles", "Membranes")
	ctx := context.Background()

	if err := svc.Start(ctx, "Cell Biology"); err != nil {
		t.Fatalf("start: %v", err)
	}
	sess := svc.Sessions().Get("Cell Biology")

	checkInvariants := func() {
		t.Helper()
		if sess.TotalCorrect < 0 || sess.TotalCorrect > sess.TotalAttempted {
			t.Fatalf("correct %d out of range of attempted %d", sess.TotalCorrect, sess.TotalAttempted)
		}
		if sess.TotalAttempted > sess.QuestionCount {
			t.Fatalf("attempted %d > count %d", sess.TotalAttempted, sess.QuestionCount)
		}
		if sess.QuestionCount > MaxQuestions {
			t.Fatalf("count %d > max %d", sess.QuestionCount, MaxQuestions)
		}
		if len(gen.directives) > 0 {
			idx := sess.Difficulty.TopicIndex
			if idx < 0 || idx > 1 {
				t.Fatalf("topic index %d out of ladder range", idx)
			}
		}
	}

	// Question 1: answer incorrectly. Hint flips to easier; the ladder
	// is already at the bottom so the index stays clamped at 0.
	if err := svc.CheckAnswer(ctx, "Cell Biology", "B) Nucleus"); err != nil {
		t.Fatalf("check 1: %v", err)
	}
	checkInvariants()
	if sess.Difficulty.Hint != HintEasier {
		t.Fatalf("hint = %s, want easier", sess.Difficulty.Hint)
	}
	if err := svc.Advance(ctx, "Cell Biology"); err != nil {
		t.Fatalf("advance 1: %v", err)
	}
	checkInvariants()
	if sess.Difficulty.TopicIndex != 0 {
		t.Errorf("index = %d, want 0 (clamped)", sess.Difficulty.TopicIndex)
	}

	// Question 2: answer correctly. Hint flips to harder and the next
	// advance climbs the ladder.
	if err := svc.CheckAnswer(ctx, "Cell Biology", "A) Mitochondria"); err != nil {
		t.Fatalf("check 2: %v", err)
	}
	if sess.Difficulty.Hint != HintHarder {
		t.Fatalf("hint = %s, want harder", sess.Difficulty.Hint)
	}
	if err := svc.Advance(ctx, "Cell Biology"); err != nil {
		t.Fatalf("advance 2: %v", err)
	}
	checkInvariants()
	if sess.Difficulty.TopicIndex != 1 {
		t.Errorf("index = %d, want 1", sess.Difficulty.TopicIndex)
	}

	if sess.Completed() {
		t.Fatal("session reports completed mid-quiz")
	}

	// Answer the remaining questions up to the limit.
	for sess.QuestionCount < MaxQuestions {
		if err := svc.CheckAnswer(ctx, "Cell Biology", "A) Mitochondria"); err != nil {
			t.Fatalf("check %d: %v", sess.QuestionCount, err)
		}
		checkInvariants()
		if err := svc.Advance(ctx, "Cell Biology"); err != nil {
			t.Fatalf("advance %d: %v", sess.QuestionCount, err)
		}
		checkInvariants()
	}

	// Final answer, then the advance completes the quiz.
	if err := svc.CheckAnswer(ctx, "Cell Biology", "A) Mitochondria"); err != nil {
		t.Fatalf("final check: %v", err)
	}
	if err := svc.Advance(ctx, "Cell Biology"); err != nil {
		t.Fatalf("final advance: %v", err)
	}

	if sess.State != StateCompleted {
		t.Errorf("state = %s, want completed", sess.State)
	}
	if !sess.Completed() {
		t.Error("session does not report completed")
	}
	if sess.TotalAttempted != MaxQuestions {
		t.Errorf("attempted = %d, want %d", sess.TotalAttempted, MaxQuestions)
	}
	if svc.Sessions().Active() != "" {
		t.Errorf("active = %q, want none after completion", svc.Sessions().Active())
	}
}

func TestRestart_ResetsSectionNotOverall(t *testing.T) {
	svc, _ := newTestService(t, "Organelles", "Membranes")
	ctx := context.Background()

	if err := svc.Start(ctx, "Cell Biology"); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := svc.CheckAnswer(ctx, "Cell Biology", "A) Mitochondria"); err != nil {
		t.Fatalf("check: %v", err)
	}

	svc.Restart(ctx, "Cell Biology")

	sess := svc.Sessions().Get("Cell Biology")
	if sess.State != StateIdle {
		t.Errorf("state = %s, want idle", sess.State)
	}
	if sess.QuestionCount != 0 || sess.TotalCorrect != 0 || sess.TotalAttempted != 0 {
		t.Errorf("counters not reset: %+v", sess)
	}
	if sess.CurrentGrade() != "N/A" {
		t.Errorf("grade = %q, want N/A", sess.CurrentGrade())
	}
	if sess.Difficulty.TopicIndex != 0 || sess.Difficulty.Hint != HintNormal {
		t.Errorf("difficulty not reset: %+v", sess.Difficulty)
	}
	if svc.Sessions().Active() != "" {
		t.Errorf("active = %q, want none", svc.Sessions().Active())
	}

	// The overall scoreboard keeps its history.
	correct, attempted := svc.Overall().Totals()
	if correct != 1 || attempted != 1 {
		t.Errorf("overall = (%d, %d), want (1, 1)", correct, attempted)
	}
}

func TestStart_SwitchingSectionsKeepsOldState(t *testing.T) {
	w := study.NewWorkspace()
	for _, name := range []string{"Cell Biology", "Genetics"} {
		if _, err := w.AddSection(name); err != nil {
			t.Fatalf("add section: %v", err)
		}
		if err := w.AddTopic(name, "Topic One"); err != nil {
			t.Fatalf("add topic: %v", err)
		}
	}
	svc := NewService(w, &stubGenerator{}, nil)
	ctx := context.Background()

	if err := svc.Start(ctx, "Cell Biology"); err != nil {
		t.Fatalf("start A: %v", err)
	}
	if err := svc.CheckAnswer(ctx, "Cell Biology", "A) Mitochondria"); err != nil {
		t.Fatalf("check A: %v", err)
	}

	if err := svc.Start(ctx, "Genetics"); err != nil {
		t.Fatalf("start B: %v", err)
	}

	if svc.Sessions().Active() != "Genetics" {
		t.Errorf("active = %q, want Genetics", svc.Sessions().Active())
	}
	// Section A keeps its stored state; it is just no longer active.
	a := svc.Sessions().Get("Cell Biology")
	if a.TotalAttempted != 1 {
		t.Errorf("section A attempted = %d, want 1 (retained)", a.TotalAttempted)
	}
	if a.State != StateLocked {
		t.Errorf("section A state = %s, want locked (retained)", a.State)
	}
}
