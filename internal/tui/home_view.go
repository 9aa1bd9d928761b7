package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var asciiLogo = []string{
	`██╗   ██╗████████╗██████╗ ██╗███████╗████████╗`,
	`╚██╗ ██╔╝╚══██╔══╝██╔══██╗██║██╔════╝╚══██╔══╝`,
	` ╚████╔╝    ██║   ██║  ██║██║█████╗     ██║   `,
	`  ╚██╔╝     ██║   ██║  ██║██║██╔══╝     ██║   `,
	`   ██║      ██║   ██████╔╝██║███████╗   ██║   `,
	`   ╚═╝      ╚═╝   ╚═════╝ ╚═╝╚══════╝   ╚═╝   `,
}

func renderHomeScreen(width, height int, hasHistory bool, updateVersion string) string {
	logoStyle := lipgloss.NewStyle().Foreground(colorAccent)
	keyStyle := lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(colorSecondary)

	var lines []string

	for _, l := range asciiLogo {
		lines = append(lines, logoStyle.Render(l))
	}
	lines = append(lines, "")
	lines = append(lines, subtitleStyle.Render("유튜브 시청 기록으로 디지털 식단을 진단합니다"))
	lines = append(lines, "")
	lines = append(lines, "")

	lines = append(lines, "          "+keyStyle.Render("[s]")+"  "+labelStyle.Render("진단 시작"))
	if hasHistory {
		lines = append(lines, "          "+keyStyle.Render("[h]")+"  "+labelStyle.Render("지난 진단 기록"))
	}
	lines = append(lines, "")
	lines = append(lines, "          "+keyStyle.Render("[q]")+"  "+labelStyle.Render("종료"))

	if updateVersion != "" {
		lines = append(lines, "")
		lines = append(lines, "          "+logoStyle.Render("새 버전 v"+updateVersion+" 이 있습니다"))
	}

	content := strings.Join(lines, "\n")
	contentHeight := strings.Count(content, "\n") + 1

	topPad := (height - contentHeight) / 3
	if topPad < 0 {
		topPad = 0
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top,
		strings.Repeat("\n", topPad)+content)
}
