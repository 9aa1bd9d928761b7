package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nyangnyang-maru/youtube-diet-project/internal/analyze"
	"github.com/nyangnyang-maru/youtube-diet-project/internal/nutrient"
)

// barWidth is the character width of a full nutrient bar.
const barWidth = 30

var nutrientBarColors = map[nutrient.Category]lipgloss.AdaptiveColor{
	nutrient.Carbs:    colorCarbs,
	nutrient.Protein:  colorProtein,
	nutrient.Fats:     colorFats,
	nutrient.Vitamins: colorVitamins,
}

var nutrientLabels = map[nutrient.Category]string{
	nutrient.Carbs:    "🍞 탄수화물(재미)",
	nutrient.Protein:  "🥩 단백질(지식)",
	nutrient.Fats:     "🥑 지방(휴식)",
	nutrient.Vitamins: "🥗 비타민(다양성)",
}

// percentBar renders a fixed-width bar, filled proportionally to pct.
func percentBar(pct, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := pct * width / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// badges returns the award labels earned by a score distribution.
func badges(p nutrient.Percent) []string {
	var earned []string
	if c := p[nutrient.Carbs]; c > 30 && c < 40 {
		earned = append(earned, "균형왕")
	}
	if p[nutrient.Protein] > 30 {
		earned = append(earned, "학습왕")
	}
	if p[nutrient.Fats] > 30 {
		earned = append(earned, "휴식왕")
	}
	if p[nutrient.Vitamins] > 30 {
		earned = append(earned, "다양성왕")
	}
	return earned
}

func renderDiagnosis(res *analyze.Result, width int) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("🩺 디지털 영양 진단"))
	b.WriteString("\n\n")
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("분석 영상 %d개 (쇼츠 %d개)", res.Scanned, res.ShortsCount)))
	b.WriteString("\n\n")

	b.WriteString("진단명: ")
	b.WriteString(diagnosisNameStyle.Render(res.Diagnosis))
	b.WriteString("\n\n")

	for _, c := range []nutrient.Category{nutrient.Carbs, nutrient.Protein, nutrient.Fats, nutrient.Vitamins} {
		pct := res.Scores[c]
		bar := lipgloss.NewStyle().Foreground(nutrientBarColors[c]).Render(percentBar(pct, barWidth))
		fmt.Fprintf(&b, "%-18s %s %3d%%\n", nutrientLabels[c], bar, pct)
	}
	b.WriteString("\n")

	score := res.BalanceScore
	gauge := lipgloss.NewStyle().Foreground(gaugeColor(score)).Render(percentBar(score, barWidth))
	fmt.Fprintf(&b, "🧠 뇌 건강 지수      %s %3d점 [%s]\n", gauge, score, gaugeStatus(score))

	if earned := badges(res.Scores); len(earned) > 0 {
		b.WriteString("\n")
		rendered := make([]string, len(earned))
		for i, name := range earned {
			rendered[i] = badgeStyle.Render("🏅 " + name)
		}
		b.WriteString(strings.Join(rendered, " "))
		b.WriteString("\n")
	}

	if len(res.Recommendations) > 0 {
		b.WriteString("\n")
		b.WriteString(questionStyle.Render("💡 개선 가이드"))
		b.WriteString("\n")
		for _, rec := range res.Recommendations {
			b.WriteString("  • " + rec + "\n")
		}
	}

	return cardStyle.Width(min(width-4, 76)).Render(b.String())
}
