package studymap

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studiq/internal/screen"
	"github.com/abhisek/studiq/internal/speech"
	"github.com/abhisek/studiq/internal/studymap"
	"github.com/abhisek/studiq/internal/ui/layout"
	"github.com/abhisek/studiq/internal/ui/theme"
)

// mapReadyMsg is sent when study-map generation finishes.
type mapReadyMsg struct {
	Content string
	Err     error
}

// audioDoneMsg is sent when audio synthesis/playback ends.
type audioDoneMsg struct{ Err error }

// spinnerTickMsg animates the generating indicator.
type spinnerTickMsg time.Time

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// StudyMapScreen generates and displays a study map for one topic.
type StudyMapScreen struct {
	svc   *studymap.Service
	synth speech.Synthesizer
	topic string

	content string
	loading bool
	playing bool
	errMsg  string
	scroll  int
	frame   int
}

var _ screen.Screen = (*StudyMapScreen)(nil)
var _ screen.KeyHintProvider = (*StudyMapScreen)(nil)

// New creates a study-map screen for a topic.
func New(svc *studymap.Service, synth speech.Synthesizer, topic string) *StudyMapScreen {
	return &StudyMapScreen{svc: svc, synth: synth, topic: topic}
}

func (s *StudyMapScreen) Init() tea.Cmd {
	s.loading = true
	return tea.Batch(s.generate(), spinnerTick())
}

func (s *StudyMapScreen) Title() string {
	return "Study Map: " + s.topic
}

func (s *StudyMapScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
	}
	if s.synth != nil && s.content != "" && !s.playing {
		hints = append(hints, layout.KeyHint{Key: "P", Description: "Play audio"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	return hints
}

func (s *StudyMapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case mapReadyMsg:
		s.loading = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.content = msg.Content
		return s, nil

	case audioDoneMsg:
		s.playing = false
		if msg.Err != nil {
			s.errMsg = fmt.Sprintf("Error generating audio: %v", msg.Err)
		}
		return s, nil

	case spinnerTickMsg:
		if !s.loading {
			return s, nil
		}
		s.frame++
		return s, spinnerTick()

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.scroll > 0 {
				s.scroll--
			}
		case "down", "j":
			s.scroll++
		case "p":
			if s.synth != nil && s.content != "" && !s.playing {
				s.playing = true
				s.errMsg = ""
				return s, s.playAudio()
			}
		}
	}
	return s, nil
}

func (s *StudyMapScreen) generate() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		content, err := s.svc.Generate(ctx, s.topic)
		return mapReadyMsg{Content: content, Err: err}
	}
}

// playAudio synthesizes the map's speech text and plays it locally.
func (s *StudyMapScreen) playAudio() tea.Cmd {
	text := studymap.SpeechText(s.content)
	synth := s.synth
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		audio, err := synth.Synthesize(ctx, text)
		if err != nil {
			return audioDoneMsg{Err: err}
		}
		return audioDoneMsg{Err: speech.Play(ctx, audio)}
	}
}

func spinnerTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func (s *StudyMapScreen) View(width, height int) string {
	var body string
	switch {
	case s.loading:
		spin := spinnerFrames[s.frame%len(spinnerFrames)]
		body = theme.Body.Render(fmt.Sprintf("%s Generating study map for topic: %s...", spin, s.topic))
	case s.errMsg != "":
		body = theme.Incorrect.Render(s.errMsg)
	default:
		body = s.renderContent(height)
		if s.playing {
			body += "\n\n" + theme.Hint.Render("Playing audio...")
		}
	}

	card := theme.Card.Width(min(width-4, 90)).Render(body)
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(card)
}

// renderContent styles the markdown lightly: headings in the primary
// color, bold spans stripped to bold style, bullets preserved.
func (s *StudyMapScreen) renderContent(height int) string {
	lines := strings.Split(s.content, "\n")

	visible := height - 6
	if visible < 5 {
		visible = 5
	}
	if s.scroll > len(lines)-1 {
		s.scroll = len(lines) - 1
	}
	if s.scroll < 0 {
		s.scroll = 0
	}
	end := s.scroll + visible
	if end > len(lines) {
		end = len(lines)
	}

	var b strings.Builder
	for _, line := range lines[s.scroll:end] {
		switch {
		case strings.HasPrefix(line, "## "):
			b.WriteString(theme.Selected.Render(strings.TrimPrefix(line, "## ")) + "\n")
		default:
			b.WriteString(theme.Body.Render(strings.ReplaceAll(line, "**", "")) + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
