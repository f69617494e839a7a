package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studiq/internal/curriculum"
	"github.com/abhisek/studiq/internal/quiz"
	"github.com/abhisek/studiq/internal/router"
	"github.com/abhisek/studiq/internal/screen"
	"github.com/abhisek/studiq/internal/screens/home"
	"github.com/abhisek/studiq/internal/speech"
	"github.com/abhisek/studiq/internal/store"
	"github.com/abhisek/studiq/internal/study"
	"github.com/abhisek/studiq/internal/studymap"
	"github.com/abhisek/studiq/internal/ui/layout"
)

// Options carries the app's injected dependencies. LLM-backed services
// may be nil when no provider is configured; screens degrade to
// manual-only features.
type Options struct {
	Workspace    *study.Workspace
	Quiz         *quiz.Service
	Curriculum   *curriculum.Service
	StudyMap     *studymap.Service
	Synth        speech.Synthesizer
	EventRepo    store.EventRepo
	SnapshotRepo store.SnapshotRepo
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	opts   Options
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(home.Deps{
		Workspace:    opts.Workspace,
		Quiz:         opts.Quiz,
		Curriculum:   opts.Curriculum,
		StudyMap:     opts.StudyMap,
		Synth:        opts.Synth,
		EventRepo:    opts.EventRepo,
		SnapshotRepo: opts.SnapshotRepo,
	})
	return AppModel{
		router: router.New(homeScreen),
		opts:   opts,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	grade := "N/A"
	if m.opts.Quiz != nil {
		grade = m.opts.Quiz.Overall().Grade()
	}
	header := layout.RenderHeader(title, grade, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
