package quizscreen

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studiq/internal/quiz"
	"github.com/abhisek/studiq/internal/screen"
	"github.com/abhisek/studiq/internal/ui/components"
	"github.com/abhisek/studiq/internal/ui/layout"
	"github.com/abhisek/studiq/internal/ui/theme"
)

// startedMsg is sent when Start (or a restart's re-start) completes.
type startedMsg struct{ Err error }

// checkedMsg is sent when an answer check completes.
type checkedMsg struct{ Err error }

// advancedMsg is sent when Advance completes.
type advancedMsg struct{ Err error }

// spinnerTickMsg animates the generating indicator.
type spinnerTickMsg time.Time

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// QuizScreen drives an adaptive quiz for one section.
type QuizScreen struct {
	svc     *quiz.Service
	section string

	choice  components.MultiChoice
	loading bool
	errMsg  string
	frame   int
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a quiz screen for a section.
func New(svc *quiz.Service, section string) *QuizScreen {
	return &QuizScreen{svc: svc, section: section}
}

func (q *QuizScreen) Init() tea.Cmd {
	q.loading = true
	return tea.Batch(q.start(), spinnerTick())
}

func (q *QuizScreen) Title() string {
	return "Quiz: " + q.section
}

func (q *QuizScreen) session() *quiz.Session {
	return q.svc.Sessions().Get(q.section)
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	if q.loading {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	switch q.session().State {
	case quiz.StateAwaitingAnswer:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Select"},
			{Key: "Enter", Description: "Check answer"},
			{Key: "Esc", Description: "Back"},
		}
	case quiz.StateLocked:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next question"},
			{Key: "Esc", Description: "Back"},
		}
	case quiz.StateCompleted:
		return []layout.KeyHint{
			{Key: "R", Description: "Restart quiz"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Retry"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case startedMsg:
		q.loading = false
		if msg.Err != nil {
			q.errMsg = msg.Err.Error()
			return q, nil
		}
		q.errMsg = ""
		q.buildChoice()
		return q, nil

	case checkedMsg:
		if msg.Err != nil {
			q.errMsg = msg.Err.Error()
		}
		return q, nil

	case advancedMsg:
		q.loading = false
		if msg.Err != nil {
			q.errMsg = msg.Err.Error()
			return q, nil
		}
		q.errMsg = ""
		if q.session().State == quiz.StateAwaitingAnswer {
			q.buildChoice()
		}
		return q, nil

	case spinnerTickMsg:
		if !q.loading {
			return q, nil
		}
		q.frame++
		return q, spinnerTick()

	case tea.KeyMsg:
		return q.handleKey(msg)
	}

	return q, nil
}

func (q *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if q.loading {
		return q, nil
	}

	sess := q.session()
	switch sess.State {
	case quiz.StateAwaitingAnswer:
		before := q.choice.Submitted
		var cmd tea.Cmd
		q.choice, cmd = q.choice.Update(msg)
		if !before && q.choice.Submitted {
			return q, q.check(q.choice.Chosen())
		}
		return q, cmd

	case quiz.StateLocked:
		switch msg.String() {
		case "enter", " ", "n":
			q.loading = true
			return q, tea.Batch(q.advance(), spinnerTick())
		}

	case quiz.StateCompleted:
		if msg.String() == "r" {
			q.svc.Restart(context.Background(), q.section)
			q.loading = true
			return q, tea.Batch(q.start(), spinnerTick())
		}

	case quiz.StateIdle:
		// Start failed earlier; allow a retry.
		if msg.String() == "enter" {
			q.loading = true
			q.errMsg = ""
			return q, tea.Batch(q.start(), spinnerTick())
		}
	}
	return q, nil
}

func (q *QuizScreen) buildChoice() {
	question := q.session().Question
	if question == nil {
		return
	}
	correct := 0
	for i, opt := range question.Options {
		if strings.HasPrefix(opt, question.CorrectLetter+")") {
			correct = i
		}
	}
	q.choice = components.NewMultiChoice(question.Stem, question.Options[:], correct)
}

func (q *QuizScreen) start() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		return startedMsg{Err: q.svc.Start(ctx, q.section)}
	}
}

func (q *QuizScreen) check(selected string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return checkedMsg{Err: q.svc.CheckAnswer(ctx, q.section, selected)}
	}
}

func (q *QuizScreen) advance() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		return advancedMsg{Err: q.svc.Advance(ctx, q.section)}
	}
}

func spinnerTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func (q *QuizScreen) View(width, height int) string {
	var body string
	switch {
	case q.loading:
		spin := spinnerFrames[q.frame%len(spinnerFrames)]
		body = theme.Body.Render(fmt.Sprintf("%s Generating question...", spin))
	case q.errMsg != "":
		body = theme.Incorrect.Render(q.errMsg)
	default:
		body = q.renderSession(width)
	}

	card := theme.Card.Width(min(width-4, 80)).Render(body)
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(card)
}

func (q *QuizScreen) renderSession(width int) string {
	sess := q.session()
	var b strings.Builder

	switch sess.State {
	case quiz.StateCompleted:
		b.WriteString(theme.Title.Render("Quiz complete!") + "\n\n")
		b.WriteString(theme.Body.Render(fmt.Sprintf("Score: %d/%d correct", sess.TotalCorrect, sess.TotalAttempted)) + "\n")
		b.WriteString(theme.Body.Bold(true).Render("Grade: "+sess.CurrentGrade()) + "\n")

	case quiz.StateAwaitingAnswer, quiz.StateLocked:
		progress := components.NewProgressBar(
			fmt.Sprintf("Question %d of %d", sess.QuestionCount, quiz.MaxQuestions),
			float64(sess.QuestionCount)/float64(quiz.MaxQuestions),
			false,
			min(width-12, 72),
		)
		b.WriteString(progress.View() + "\n")
		b.WriteString(theme.Hint.Render("Topic: "+sess.Difficulty.Topic) + "\n\n")
		b.WriteString(q.choice.View())
		if sess.State == quiz.StateLocked && sess.Feedback != "" {
			b.WriteString("\n" + renderFeedback(sess.Feedback))
		}

	default:
		b.WriteString(theme.Hint.Render("Quiz not running. Press Enter to start."))
	}

	return b.String()
}

// renderFeedback styles the correct/incorrect feedback line, dropping
// the markdown bold markers.
func renderFeedback(feedback string) string {
	plain := strings.ReplaceAll(feedback, "**", "")
	if strings.HasPrefix(feedback, "**Correct!**") {
		return theme.Correct.Render(plain)
	}
	if strings.HasPrefix(feedback, "**Incorrect.**") {
		return theme.Incorrect.Render(plain)
	}
	return theme.Body.Render(plain)
}
