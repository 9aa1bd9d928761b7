package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nyangnyang-maru/youtube-diet-project/internal/nutrient"
	"github.com/nyangnyang-maru/youtube-diet-project/internal/youtube"
)

// Data is everything a finished diagnosis needs to render as text.
type Data struct {
	Date            time.Time
	Diagnosis       string
	BalanceScore    int
	Scores          nutrient.Percent
	SummaryText     string
	Keyword         string
	SearchQuery     string
	Videos          []youtube.Video
	Recommendations []string
}

// Render produces the plain-text diagnosis report.
func Render(d Data) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[YouTube Diet 진단 리포트]\n")
	fmt.Fprintf(&b, "날짜: %s\n", d.Date.Format("2006-01-02"))
	fmt.Fprintf(&b, "진단명: %s\n", d.Diagnosis)
	fmt.Fprintf(&b, "다양성 점수: %d점\n\n", d.BalanceScore)

	b.WriteString("[영양소 점수]\n")
	fmt.Fprintf(&b, "- 탄수화물(재미): %d%%\n", d.Scores[nutrient.Carbs])
	fmt.Fprintf(&b, "- 단백질(지식): %d%%\n", d.Scores[nutrient.Protein])
	fmt.Fprintf(&b, "- 지방(휴식): %d%%\n", d.Scores[nutrient.Fats])
	fmt.Fprintf(&b, "- 비타민(다양성): %d%%\n\n", d.Scores[nutrient.Vitamins])

	b.WriteString("[진단 소견]\n")
	b.WriteString(d.SummaryText)
	b.WriteString("\n\n")

	b.WriteString("[처방 키워드]\n")
	b.WriteString(d.Keyword)
	b.WriteString("\n")
	fmt.Fprintf(&b, "(실제 검색 키워드: %s)\n\n", d.SearchQuery)

	b.WriteString("[추천 영상]\n")
	if len(d.Videos) == 0 {
		b.WriteString("(추천 영상 없음)\n")
	} else {
		for _, v := range d.Videos {
			fmt.Fprintf(&b, "- %s (%s)\n", v.Title, v.URL)
		}
	}

	b.WriteString("\n[개선 가이드]\n")
	for _, rec := range d.Recommendations {
		fmt.Fprintf(&b, "- %s\n", rec)
	}

	return b.String()
}

// Save writes the rendered report into dir and returns the file path.
// An empty dir means the current working directory.
func Save(dir string, d Data) (string, error) {
	name := fmt.Sprintf("youtube_diet_report_%s.txt", d.Date.Format("2006-01-02"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(Render(d)), 0o644); err != nil {
		return "", fmt.Errorf("saving report: %w", err)
	}
	return path, nil
}
