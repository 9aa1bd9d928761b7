package tui

import (
	"fmt"
	"strings"

	"github.com/nyangnyang-maru/youtube-diet-project/internal/history"
)

func renderHistory(entries []history.Entry, cursor, width int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("📚 지난 진단 기록"))
	b.WriteString("\n\n")

	if len(entries) == 0 {
		b.WriteString(subtitleStyle.Render("저장된 진단이 없습니다."))
		return cardStyle.Width(min(width-4, 76)).Render(b.String())
	}

	for i, e := range entries {
		line := fmt.Sprintf("%s  %-22s 지수 %3d점", e.RunAt.Format("2006-01-02"), e.Diagnosis, e.BalanceScore)
		if e.Keyword != "" {
			line += subtitleStyle.Render("  ✦ " + e.Keyword)
		}
		if i == cursor {
			b.WriteString(optionSelectedStyle.Render("> " + line))
		} else {
			b.WriteString(optionStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	return cardStyle.Width(min(width-4, 76)).Render(b.String())
}
