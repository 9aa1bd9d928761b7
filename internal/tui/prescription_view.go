package tui

import (
	"fmt"
	"strings"

	"github.com/nyangnyang-maru/youtube-diet-project/internal/ai"
	"github.com/nyangnyang-maru/youtube-diet-project/internal/youtube"
)

func renderPrescription(p ai.Prescription, videos []youtube.Video, savedPath string, width int) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("💊 맞춤 처방전"))
	b.WriteString("\n\n")

	b.WriteString(questionStyle.Render("진단 소견"))
	b.WriteString("\n")
	b.WriteString(p.SummaryText)
	b.WriteString("\n\n")

	b.WriteString(questionStyle.Render("처방 키워드"))
	b.WriteString("\n")
	b.WriteString(diagnosisNameStyle.Render(p.Keyword))
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("  (검색어: %s)", p.SearchQuery)))
	b.WriteString("\n\n")

	b.WriteString(questionStyle.Render("추천 영상"))
	b.WriteString("\n")
	if len(videos) == 0 {
		b.WriteString(subtitleStyle.Render("(추천 영상 없음)"))
		b.WriteString("\n")
	} else {
		for i, v := range videos {
			fmt.Fprintf(&b, "  [%d] %s\n", i+1, videoTitleStyle.Render(v.Title))
			if v.Channel != "" {
				b.WriteString("      " + videoChannelStyle.Render(v.Channel) + "\n")
			}
		}
	}

	if savedPath != "" {
		b.WriteString("\n")
		b.WriteString(checkedStyle.Render("📄 리포트 저장됨: " + savedPath))
		b.WriteString("\n")
	}

	return cardStyle.Width(min(width-4, 76)).Render(b.String())
}
