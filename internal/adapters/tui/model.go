package tui

import (
	"os"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"

	"timeadair/internal/config"
	"timeadair/internal/domain"
)

// tickMsg is sent once per second while a session is running.
type tickMsg time.Time

// Model drives one session run: a single timer ticking down with a
// progress bar, ending in exactly one outcome. Key messages are always
// handled on their own cycle, before any tick: a quit or reset on the
// first second exits with Elapsed still zero.
type Model struct {
	timer       *domain.Timer
	sessionType domain.SessionType
	keys        keyMap
	theme       config.ThemeConfig
	width       int
	outcome     domain.Outcome
}

// getTerminalWidth returns the current terminal width, defaulting to 80.
func getTerminalWidth() int {
	w, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || w < 40 {
		return 80
	}
	return w
}

// NewModel creates a model for a session of the given type and length
// in seconds.
func NewModel(sessionType domain.SessionType, duration int, theme *config.ThemeConfig) Model {
	resolved := config.DefaultThemeConfig()
	if theme != nil {
		resolved = *theme
	}

	return Model{
		timer:       domain.NewTimer(duration),
		sessionType: sessionType,
		keys:        defaultKeyMap(),
		theme:       resolved,
		width:       getTerminalWidth(),
	}
}

// Outcome returns how the run ended. Only meaningful after the program
// has finished.
func (m Model) Outcome() domain.Outcome {
	return m.outcome
}

// Elapsed returns the timer's tick count.
func (m Model) Elapsed() int {
	return m.timer.Elapsed
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.outcome = domain.OutcomeQuit
			return m, tea.Quit
		case key.Matches(msg, m.keys.Reset):
			m.outcome = domain.OutcomeReset
			return m, tea.Quit
		}
		return m, nil

	case tickMsg:
		m.timer.Tick()
		if m.timer.Done() {
			m.outcome = domain.OutcomeCompleted
			return m, tea.Quit
		}
		return m, tickCmd()

	case tea.WindowSizeMsg:
		m.width = msg.Width
	}

	return m, nil
}

// tickCmd creates a command that sends a tick message after one second.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
