package tui

import (
	"fmt"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"timeadair/internal/config"
	"timeadair/internal/domain"
)

// activeProgram publishes the running session program so the interrupt
// handler can restore the terminal out of band. Nil between sessions.
var activeProgram atomic.Pointer[tea.Program]

// Run executes one session to its outcome. The program enters the alt
// screen (full clear, hidden cursor) on start and restores the terminal
// on every exit path, including errors.
func Run(sessionType domain.SessionType, duration int, theme *config.ThemeConfig) (domain.Outcome, error) {
	model := NewModel(sessionType, duration, theme)

	p := tea.NewProgram(model, tea.WithAltScreen())
	activeProgram.Store(p)
	defer activeProgram.Store(nil)

	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("failed to run timer: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return "", fmt.Errorf("unexpected final model type %T", final)
	}
	return m.Outcome(), nil
}

// ReleaseActive kills the running session program, if any, and restores
// the terminal (cursor shown, raw mode off, alt screen left). It only
// touches the atomically published program, so it is safe to call from
// the signal handler goroutine at any point.
func ReleaseActive() {
	if p := activeProgram.Load(); p != nil {
		p.Kill()
		_ = p.ReleaseTerminal()
	}
}
