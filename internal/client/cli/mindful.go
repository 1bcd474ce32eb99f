package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/dailyepiphany/epiphany/internal/mindful"
)

// silentAudio stands in when the audio device cannot be opened; the session
// runs without the drone.
type silentAudio struct{}

func (silentAudio) Start() error { return nil }
func (silentAudio) Stop()        {}
func (silentAudio) Close() error { return nil }

// Mindful opens the full-screen mindful-moment session. Completing it drops
// the user straight into observe with the mode's opener pre-filled.
func (a *App) Mindful(ctx context.Context) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		printlnFn("The mindful moment needs an interactive terminal.")
		return nil
	}

	var audio mindful.AudioEngine
	engine, err := mindful.NewBinauralEngine()
	if err != nil {
		a.log.Warn(ctx, "audio unavailable, running silent", "error", err)
		audio = silentAudio{}
	} else {
		audio = engine
	}

	session := mindful.NewSession(audio, a.config.MindfulTick)
	defer session.Close()

	p := tea.NewProgram(newMindfulModel(session), tea.WithAltScreen())
	out, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := out.(mindfulModel); ok && m.seed != "" {
		return a.Observe(ctx, m.seed)
	}
	return nil
}

type mindfulTickMsg time.Time

// mindfulModel is the bubbletea model over a mindful.Session. The session
// owns all timing; the model only polls it for rendering.
type mindfulModel struct {
	session *mindful.Session
	bar     progress.Model
	// seed is set when the user completes the session.
	seed string
}

func newMindfulModel(s *mindful.Session) mindfulModel {
	return mindfulModel{
		session: s,
		bar:     progress.New(progress.WithDefaultGradient()),
	}
}

func mindfulTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return mindfulTickMsg(t)
	})
}

func (m mindfulModel) Init() tea.Cmd {
	return mindfulTick()
}

func (m mindfulModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case mindfulTickMsg:
		return m, mindfulTick()

	case tea.WindowSizeMsg:
		m.bar.Width = msg.Width - 8
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.session.Toggle()
		case "m":
			m.session.ToggleMute()
		case "1", "b":
			m.session.SetMode(mindful.ModeBreathe)
		case "2", "l":
			m.session.SetMode(mindful.ModeListen)
		case "3", "o":
			m.session.SetMode(mindful.ModeObserve)
		case "enter":
			if seed, ok := m.session.Complete(); ok {
				m.seed = seed
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

var (
	mindfulTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#C7D2FE"))
	mindfulTimerStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#E0E7FF"))
	mindfulPromptStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#94A3B8"))
	mindfulHintStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#64748B"))
	mindfulBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#6366F1")).
			Padding(1, 3)
)

func (m mindfulModel) View() string {
	info := m.session.ModeInfo()
	left := m.session.TimeLeft()

	title := info.Label
	if m.session.Playing() && m.session.Mode() == mindful.ModeBreathe {
		switch m.session.Phase() {
		case mindful.PhaseInhale:
			title = "Inhale..."
		case mindful.PhaseHold:
			title = "Hold..."
		case mindful.PhaseExhale:
			title = "Exhale..."
		}
	}
	prompt := info.Prompt
	if left == 0 {
		title = "Moment Complete"
		prompt = "You are now centered. Capture your insight."
	}

	elapsed := float64(info.Duration-left) / float64(info.Duration)

	var modes []string
	for i, mi := range mindful.Modes() {
		label := fmt.Sprintf("%d %s", i+1, mi.Label)
		if mi.Mode == m.session.Mode() {
			label = "[" + label + "]"
		}
		modes = append(modes, label)
	}

	hint := "space play/pause · m mute · q quit"
	if left == 0 {
		hint = "enter write observation · q quit"
	}
	if m.session.Muted() {
		hint += " · muted"
	}

	body := strings.Join([]string{
		mindfulTitleStyle.Render(title),
		mindfulTimerStyle.Render(fmt.Sprintf("%d", left)),
		m.bar.ViewAs(elapsed),
		mindfulPromptStyle.Render(prompt),
		"",
		strings.Join(modes, "  "),
		mindfulHintStyle.Render(hint),
	}, "\n\n")

	return mindfulBoxStyle.Render(body)
}
