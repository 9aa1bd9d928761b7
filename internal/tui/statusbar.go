package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// renderBottomBar draws the key-hint bar pinned to the last row. The
// left side names the current wizard step.
func renderBottomBar(step string, hints string, width int) string {
	stepStyle := lipgloss.NewStyle().
		Foreground(colorAccent).
		Bold(true)

	left := ""
	if step != "" {
		left = " " + stepStyle.Render(step)
	}

	right := " " + hints + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + fmt.Sprintf("%*s", gap, "") + right

	return statusBarStyle.Width(width).Render(bar)
}
