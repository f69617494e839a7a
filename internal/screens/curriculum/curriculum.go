package curriculum

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studiq/internal/curriculum"
	"github.com/abhisek/studiq/internal/screen"
	"github.com/abhisek/studiq/internal/store"
	"github.com/abhisek/studiq/internal/study"
	"github.com/abhisek/studiq/internal/ui/components"
	"github.com/abhisek/studiq/internal/ui/layout"
	"github.com/abhisek/studiq/internal/ui/theme"
)

type mode int

const (
	modeInput mode = iota
	modeGenerating
	modeDone
)

// generatedMsg is sent when curriculum generation finishes.
type generatedMsg struct {
	Subject  string
	Sections []*study.Section
	Err      error
}

// spinnerTickMsg animates the generating indicator.
type spinnerTickMsg time.Time

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// CurriculumScreen prompts for a subject and fills the workspace with
// a generated curriculum.
type CurriculumScreen struct {
	svc       *curriculum.Service
	workspace *study.Workspace
	snapRepo  store.SnapshotRepo

	mode    mode
	input   components.TextInput
	subject string
	errMsg  string
	frame   int
}

var _ screen.Screen = (*CurriculumScreen)(nil)
var _ screen.KeyHintProvider = (*CurriculumScreen)(nil)

// New creates a curriculum generation screen.
func New(svc *curriculum.Service, workspace *study.Workspace, snapRepo store.SnapshotRepo) *CurriculumScreen {
	return &CurriculumScreen{
		svc:       svc,
		workspace: workspace,
		snapRepo:  snapRepo,
		input:     components.NewTextInput("e.g. 'Java Programming', 'World History'", 60),
	}
}

func (c *CurriculumScreen) Init() tea.Cmd {
	return c.input.Init()
}

func (c *CurriculumScreen) Title() string {
	return "Curriculum"
}

func (c *CurriculumScreen) KeyHints() []layout.KeyHint {
	switch c.mode {
	case modeGenerating:
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	case modeDone:
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Generate"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (c *CurriculumScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case generatedMsg:
		if msg.Err != nil {
			c.mode = modeInput
			c.errMsg = msg.Err.Error()
			return c, nil
		}
		c.workspace.Replace(msg.Subject, msg.Sections)
		c.mode = modeDone
		c.errMsg = ""
		return c, c.saveSnapshot()

	case spinnerTickMsg:
		if c.mode != modeGenerating {
			return c, nil
		}
		c.frame++
		return c, spinnerTick()

	case tea.KeyMsg:
		if c.mode == modeInput && msg.String() == "enter" {
			subject := strings.TrimSpace(c.input.Value())
			if subject == "" {
				c.errMsg = "Please enter a main study subject to generate a curriculum."
				return c, nil
			}
			c.mode = modeGenerating
			c.subject = subject
			c.errMsg = ""
			return c, tea.Batch(c.generate(subject), spinnerTick())
		}
	}

	if c.mode == modeInput {
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		return c, cmd
	}
	return c, nil
}

func (c *CurriculumScreen) generate(subject string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		sections, err := c.svc.Generate(ctx, subject)
		return generatedMsg{Subject: subject, Sections: sections, Err: err}
	}
}

// saveSnapshot persists the workspace. Failures are silent; the
// curriculum is still usable for the rest of the run.
func (c *CurriculumScreen) saveSnapshot() tea.Cmd {
	if c.snapRepo == nil {
		return nil
	}
	snap := store.WorkspaceSnapshot(c.workspace)
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = c.snapRepo.Save(ctx, snap)
		_ = c.snapRepo.Prune(ctx, 10)
		return nil
	}
}

func spinnerTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func (c *CurriculumScreen) View(width, height int) string {
	var body string
	switch c.mode {
	case modeGenerating:
		spin := spinnerFrames[c.frame%len(spinnerFrames)]
		body = theme.Body.Render(fmt.Sprintf("%s Generating curriculum for '%s'... This might take a moment.", spin, c.subject))

	case modeDone:
		var b strings.Builder
		b.WriteString(theme.Correct.Render(fmt.Sprintf("Curriculum generated for '%s'!", c.subject)) + "\n\n")
		for _, sec := range c.workspace.Sections {
			b.WriteString(theme.Body.Bold(true).Render(sec.Name) + "\n")
			b.WriteString(theme.Hint.Render("  "+strings.Join(sec.Topics, " · ")) + "\n")
		}
		body = b.String()

	default:
		var b strings.Builder
		b.WriteString(theme.Body.Render("Enter a main study subject:") + "\n\n")
		b.WriteString(c.input.View() + "\n")
		if c.errMsg != "" {
			b.WriteString("\n" + theme.Incorrect.Render(c.errMsg))
		}
		body = b.String()
	}

	card := theme.Card.Width(min(width-4, 76)).Render(body)
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(card)
}
