package sections

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studiq/internal/router"
	"github.com/abhisek/studiq/internal/screen"
	"github.com/abhisek/studiq/internal/screens/quizscreen"
	studymapscreen "github.com/abhisek/studiq/internal/screens/studymap"
	"github.com/abhisek/studiq/internal/store"
	"github.com/abhisek/studiq/internal/study"
	"github.com/abhisek/studiq/internal/ui/components"
	"github.com/abhisek/studiq/internal/ui/layout"
	"github.com/abhisek/studiq/internal/ui/theme"
)

// detailScreen shows one section's topics with quiz and study-map actions.
type detailScreen struct {
	deps    Deps
	section string

	cursor int
	adding bool
	input  components.TextInput
	errMsg string
}

var _ screen.Screen = (*detailScreen)(nil)
var _ screen.KeyHintProvider = (*detailScreen)(nil)

func newDetail(deps Deps, section string) *detailScreen {
	return &detailScreen{deps: deps, section: section}
}

func (d *detailScreen) Init() tea.Cmd {
	return nil
}

func (d *detailScreen) Title() string {
	return d.section
}

func (d *detailScreen) KeyHints() []layout.KeyHint {
	if d.adding {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Add topic"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Q", Description: "Start quiz"},
		{Key: "M", Description: "Study map"},
		{Key: "T", Description: "Add topic"},
		{Key: "Esc", Description: "Back"},
	}
}

func (d *detailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if d.adding {
			var cmd tea.Cmd
			d.input, cmd = d.input.Update(msg)
			return d, cmd
		}
		return d, nil
	}

	if d.adding {
		switch kmsg.String() {
		case "enter":
			topic := strings.TrimSpace(d.input.Value())
			if err := d.deps.Workspace.AddTopic(d.section, topic); err != nil {
				d.errMsg = err.Error()
				return d, nil
			}
			d.adding = false
			d.errMsg = ""
			return d, saveSnapshot(d.deps.SnapshotRepo, d.deps.Workspace)
		default:
			var cmd tea.Cmd
			d.input, cmd = d.input.Update(msg)
			return d, cmd
		}
	}

	topics := d.topics()
	switch kmsg.String() {
	case "up", "k":
		if d.cursor > 0 {
			d.cursor--
		}
	case "down", "j":
		if d.cursor < len(topics)-1 {
			d.cursor++
		}
	case "t":
		d.adding = true
		d.errMsg = ""
		d.input = components.NewTextInput("New topic name", 60)
		return d, d.input.Init()
	case "q":
		if d.deps.Quiz == nil {
			d.errMsg = "Quizzes need an LLM provider. Set an API key and restart."
			return d, nil
		}
		if len(topics) == 0 {
			d.errMsg = "Add topics to this section before starting a quiz."
			return d, nil
		}
		section := d.section
		deps := d.deps
		return d, func() tea.Msg {
			return router.PushScreenMsg{Screen: quizscreen.New(deps.Quiz, section)}
		}
	case "m", "enter":
		if d.deps.StudyMap == nil {
			d.errMsg = "Study maps need an LLM provider. Set an API key and restart."
			return d, nil
		}
		if d.cursor < len(topics) {
			topic := topics[d.cursor]
			deps := d.deps
			return d, func() tea.Msg {
				return router.PushScreenMsg{
					Screen: studymapscreen.New(deps.StudyMap, deps.Synth, topic),
				}
			}
		}
	}
	return d, nil
}

func (d *detailScreen) topics() []string {
	sec := d.deps.Workspace.Find(d.section)
	if sec == nil {
		return nil
	}
	return sec.Topics
}

func (d *detailScreen) View(width, height int) string {
	var b strings.Builder

	if d.adding {
		b.WriteString(theme.Body.Render(fmt.Sprintf("Add a topic to '%s':", d.section)) + "\n\n")
		b.WriteString(d.input.View() + "\n")
	} else {
		topics := d.topics()
		if len(topics) == 0 {
			b.WriteString(theme.Hint.Render("No topics yet. Press T to add one."))
		} else {
			for i, topic := range topics {
				if i == d.cursor {
					b.WriteString(theme.Selected.Render("  ▸ "+topic) + "\n")
				} else {
					b.WriteString(theme.Unselected.Render("    "+topic) + "\n")
				}
			}
		}
		if sess := d.sessionSummary(); sess != "" {
			b.WriteString("\n" + theme.Hint.Render(sess))
		}
	}
	if d.errMsg != "" {
		b.WriteString("\n" + theme.Incorrect.Render(d.errMsg))
	}

	card := theme.Card.Width(min(width-4, 76)).Render(b.String())
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(card)
}

func (d *detailScreen) sessionSummary() string {
	if d.deps.Quiz == nil {
		return ""
	}
	sess := d.deps.Quiz.Sessions().Get(d.section)
	if sess.TotalAttempted == 0 {
		return ""
	}
	label := "Quiz so far"
	if sess.Completed() {
		label = "Last quiz"
	}
	return fmt.Sprintf("%s: %d/%d correct (%s)", label, sess.TotalCorrect, sess.TotalAttempted, sess.CurrentGrade())
}

// saveSnapshot persists workspace edits in the background.
func saveSnapshot(repo store.SnapshotRepo, ws *study.Workspace) tea.Cmd {
	if repo == nil {
		return nil
	}
	snap := store.WorkspaceSnapshot(ws)
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = repo.Save(ctx, snap)
		_ = repo.Prune(ctx, 10)
		return nil
	}
}
