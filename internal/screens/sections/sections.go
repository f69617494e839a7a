package sections

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studiq/internal/quiz"
	"github.com/abhisek/studiq/internal/router"
	"github.com/abhisek/studiq/internal/screen"
	"github.com/abhisek/studiq/internal/speech"
	"github.com/abhisek/studiq/internal/store"
	"github.com/abhisek/studiq/internal/study"
	"github.com/abhisek/studiq/internal/studymap"
	"github.com/abhisek/studiq/internal/ui/components"
	"github.com/abhisek/studiq/internal/ui/layout"
	"github.com/abhisek/studiq/internal/ui/theme"
)

// Deps are the services the sections screens need.
type Deps struct {
	Workspace    *study.Workspace
	Quiz         *quiz.Service
	StudyMap     *studymap.Service
	Synth        speech.Synthesizer
	SnapshotRepo store.SnapshotRepo
}

// SectionsScreen lists the workspace's sections.
type SectionsScreen struct {
	deps Deps

	cursor int
	adding bool
	input  components.TextInput
	errMsg string
}

var _ screen.Screen = (*SectionsScreen)(nil)
var _ screen.KeyHintProvider = (*SectionsScreen)(nil)

// New creates the section list screen.
func New(deps Deps) *SectionsScreen {
	return &SectionsScreen{deps: deps}
}

func (s *SectionsScreen) Init() tea.Cmd {
	return nil
}

func (s *SectionsScreen) Title() string {
	return "Sections"
}

func (s *SectionsScreen) KeyHints() []layout.KeyHint {
	if s.adding {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Add section"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "A", Description: "Add section"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SectionsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if s.adding {
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	if s.adding {
		switch kmsg.String() {
		case "enter":
			name := strings.TrimSpace(s.input.Value())
			if _, err := s.deps.Workspace.AddSection(name); err != nil {
				s.errMsg = err.Error()
				return s, nil
			}
			s.adding = false
			s.errMsg = ""
			return s, saveSnapshot(s.deps.SnapshotRepo, s.deps.Workspace)
		default:
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			return s, cmd
		}
	}

	sections := s.deps.Workspace.Sections
	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(sections)-1 {
			s.cursor++
		}
	case "a":
		s.adding = true
		s.errMsg = ""
		s.input = components.NewTextInput("New section name", 60)
		return s, s.input.Init()
	case "enter":
		if s.cursor < len(sections) {
			sec := sections[s.cursor]
			return s, func() tea.Msg {
				return router.PushScreenMsg{Screen: newDetail(s.deps, sec.Name)}
			}
		}
	}
	return s, nil
}

func (s *SectionsScreen) View(width, height int) string {
	var b strings.Builder

	if s.adding {
		b.WriteString(theme.Body.Render("Add a new section:") + "\n\n")
		b.WriteString(s.input.View() + "\n")
		if s.errMsg != "" {
			b.WriteString("\n" + theme.Incorrect.Render(s.errMsg))
		}
	} else if len(s.deps.Workspace.Sections) == 0 {
		b.WriteString(theme.Hint.Render("No sections yet. Generate a curriculum, or press A to add one."))
	} else {
		for i, sec := range s.deps.Workspace.Sections {
			label := sec.Name
			badge := theme.Hint.Render(topicCountLabel(len(sec.Topics)))
			if active := s.deps.Quiz.Sessions().Active(); active == sec.Name {
				badge += " " + theme.Selected.Render("● quiz in progress")
			}
			if i == s.cursor {
				b.WriteString(theme.Selected.Render("  ▸ "+label) + "  " + badge + "\n")
			} else {
				b.WriteString(theme.Unselected.Render("    "+label) + "  " + badge + "\n")
			}
		}
	}

	card := theme.Card.Width(min(width-4, 76)).Render(b.String())
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(card)
}

func topicCountLabel(n int) string {
	if n == 1 {
		return "1 topic"
	}
	return fmt.Sprintf("%d topics", n)
}
