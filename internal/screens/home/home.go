package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studiq/internal/curriculum"
	"github.com/abhisek/studiq/internal/quiz"
	"github.com/abhisek/studiq/internal/router"
	"github.com/abhisek/studiq/internal/screen"
	curriculumscreen "github.com/abhisek/studiq/internal/screens/curriculum"
	"github.com/abhisek/studiq/internal/screens/sections"
	"github.com/abhisek/studiq/internal/speech"
	"github.com/abhisek/studiq/internal/store"
	"github.com/abhisek/studiq/internal/study"
	"github.com/abhisek/studiq/internal/studymap"
	"github.com/abhisek/studiq/internal/ui/components"
	"github.com/abhisek/studiq/internal/ui/theme"
)

// Deps are the services the home screen hands down to child screens.
type Deps struct {
	Workspace    *study.Workspace
	Quiz         *quiz.Service
	Curriculum   *curriculum.Service
	StudyMap     *studymap.Service
	Synth        speech.Synthesizer
	EventRepo    store.EventRepo
	SnapshotRepo store.SnapshotRepo
}

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	deps Deps
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	items := []components.MenuItem{
		{
			Label:    "GENERATE CURRICULUM",
			Disabled: deps.Curriculum == nil,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: curriculumscreen.New(deps.Curriculum, deps.Workspace, deps.SnapshotRepo),
					}
				}
			},
		},
		{
			Label: "BROWSE SECTIONS",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: sections.New(sections.Deps{
							Workspace:    deps.Workspace,
							Quiz:         deps.Quiz,
							StudyMap:     deps.StudyMap,
							Synth:        deps.Synth,
							SnapshotRepo: deps.SnapshotRepo,
						}),
					}
				}
			},
		},
		{
			Label: "EXIT",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	}

	return &HomeScreen{
		deps: deps,
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	title := theme.Title.Width(width).Render("S T U D I Q")
	subtitle := theme.Subtitle.Width(width).Render("AI study assistant with adaptive quizzes")

	var stats string
	if h.deps.Workspace != nil {
		topicCount := 0
		for _, sec := range h.deps.Workspace.Sections {
			topicCount += len(sec.Topics)
		}
		line := fmt.Sprintf("%d sections · %d topics", len(h.deps.Workspace.Sections), topicCount)
		if h.deps.Workspace.Subject != "" {
			line = h.deps.Workspace.Subject + " — " + line
		}
		if len(h.deps.Workspace.Sections) == 0 {
			line = "No sections yet. Generate a curriculum to get started."
		}
		stats = theme.Hint.Width(width).Align(lipgloss.Center).Render(line)
	}

	menu := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(h.menu.View())

	content := strings.Join([]string{title, subtitle, "", stats, "", menu}, "\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		AlignVertical(lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
