package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderStatusBar produces a full-width inverted status line showing the
// title, the history size and either pending completions or the board
// state.
func (m Model) renderStatusBar() string {
	left := fmt.Sprintf(" %s | history: %d", m.title, m.engine.HistoryLen())

	right := "shift+up/down: history  tab: complete "
	switch {
	case len(m.completions) > 0:
		candidate := strings.Join(m.completions, "  ") + " "
		if lipgloss.Width(left)+lipgloss.Width(candidate)+2 < m.width {
			right = candidate
		} else {
			right = fmt.Sprintf("%d matches ", len(m.completions))
		}
	case m.engine.Running():
		right = "conway: playing "
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}
