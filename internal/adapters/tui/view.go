package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"timeadair/internal/domain"
)

// barWidth is the progress bar width in cells. Fixed: the bar does not
// stretch with the terminal.
const barWidth = 50

// frameWidth is the widest line of the frame: the bar with its
// brackets, percentage and countdown ("[" + bar + "] 100% MM:SS").
const frameWidth = barWidth + 13

// headerTitle is drawn once per session at the top of the viewport.
const headerTitle = "🍅 Tìmeadair - Pomodoro Timer"

// barCells splits the bar into filled and empty cell counts for a
// progress percentage. filled+empty == barWidth for any progress in
// [0, 100]; the fill count truncates toward zero. Out-of-range input
// is clamped so the cell counts stay valid.
func barCells(progress float64) (filled, empty int) {
	filled = int(progress * barWidth / 100)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	return filled, barWidth - filled
}

// frameIndent centers the frame in a terminal wider than the frame
// itself; in a narrow terminal the frame stays flush left.
func frameIndent(termWidth int) string {
	pad := (termWidth - frameWidth) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad)
}

func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorTitle))
	fillStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorFill))
	emptyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorEmpty))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))

	indent := frameIndent(m.width)

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(indent)
	b.WriteString(titleStyle.Render(headerTitle))
	b.WriteString("\n\n")

	filled, empty := barCells(m.timer.Progress())
	b.WriteString(indent)
	b.WriteString("[")
	b.WriteString(fillStyle.Render(strings.Repeat("=", filled)))
	b.WriteString(emptyStyle.Render(strings.Repeat("-", empty)))
	b.WriteString(fmt.Sprintf("] %d%% %s", int(m.timer.Progress()), m.timer.FormatRemaining()))
	b.WriteString("\n\n")

	b.WriteString(indent)
	b.WriteString(fmt.Sprintf("Current session: %s", domain.GetSessionTypeLabel(m.sessionType)))
	b.WriteString("\n\n")

	b.WriteString(indent)
	b.WriteString(helpStyle.Render("Controls: 'q' to quit, 'r' to reset timer"))
	b.WriteString("\n")

	return b.String()
}
