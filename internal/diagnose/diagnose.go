// Package diagnose turns a reweighted nutrient distribution into a
// named condition and short improvement guides.
package diagnose

import (
	"fmt"
	"strings"

	"github.com/nyangnyang-maru/youtube-diet-project/internal/nutrient"
	"github.com/nyangnyang-maru/youtube-diet-project/internal/survey"
)

// Severity tiers for the dominant nutrient's share.
const (
	highThreshold   = 55
	mediumThreshold = 35
)

// Fallback labels.
const (
	LabelImbalance = "디지털 영양 불균형"
	LabelPicky     = "디지털 편식증"
)

type labelSet struct {
	high    string
	medium  string
	context map[survey.WatchTime]string
}

var labels = map[nutrient.Category]labelSet{
	nutrient.Carbs: {
		high:   "숏폼 도파민 중독증",
		medium: "알고리즘 표류 증후군",
		context: map[survey.WatchTime]string{
			survey.BeforeSleep: "야간 자극 과다 증후군",
			survey.DuringMeal:  "먹방 의존증",
		},
	},
	nutrient.Protein: {
		high:   "정보 과부하 증후군",
		medium: "학습 강박증",
		context: map[survey.WatchTime]string{
			survey.WorkStudy: "워커홀릭 정보 섭취증",
		},
	},
	nutrient.Fats: {
		high:   "디지털 수면제 의존증",
		medium: "현실 도피 증후군",
		context: map[survey.WatchTime]string{
			survey.BeforeSleep: "수면 유도 과의존증",
		},
	},
	nutrient.Vitamins: {
		high:   "정보 편식 개선 중",
		medium: "균형 잡힌 디지털 식단",
	},
}

// AllLabels returns every condition name the selector can produce.
func AllLabels() []string {
	out := []string{LabelImbalance, LabelPicky}
	for _, cat := range nutrient.AllCategories() {
		ls := labels[cat]
		out = append(out, ls.high, ls.medium)
		for _, wt := range survey.AllWatchTimes() {
			if l, ok := ls.context[wt]; ok {
				out = append(out, l)
			}
		}
	}
	return out
}

// Diagnose selects the condition name for a distribution. The dominant
// nutrient is found with the canonical-order tie-break; a shorts-heavy
// fun diet overrides everything, then time-of-day context labels, then
// the severity-tier table.
func Diagnose(p nutrient.Percent, ctx survey.Context) string {
	dominant := p.Dominant()
	value := p[dominant]

	if value <= mediumThreshold {
		return LabelImbalance
	}

	if dominant == nutrient.Carbs && ctx.ShortsHeavy {
		return labels[nutrient.Carbs].high
	}

	ls := labels[dominant]
	if label, ok := ls.context[ctx.WatchTime]; ok {
		return label
	}

	if value > highThreshold {
		return ls.high
	}
	if ls.medium != "" {
		return ls.medium
	}
	return LabelPicky
}

// Recommend produces up to three improvement guides, evaluated in fixed
// order: a starved nutrient, an over-concentrated one, late-night
// stimulation, and excessive daily hours. Never empty.
func Recommend(p nutrient.Percent, ctx survey.Context) []string {
	var recs []string

	lacking := p.Lacking()
	if p[lacking] < 15 {
		examples := lacking.ContentExamples()
		recs = append(recs, fmt.Sprintf("💊 %s 콘텐츠가 매우 부족합니다. %s 같은 영상을 추가해보세요.",
			lacking.Aspect(), strings.Join(examples[:2], ", ")))
	}

	dominant := p.Dominant()
	if p[dominant] > 50 {
		recs = append(recs, fmt.Sprintf("⚠️ %s 콘텐츠에 과도하게 편중되어 있습니다.", dominant.Aspect()))
	}

	if ctx.WatchTime == survey.BeforeSleep && p[nutrient.Carbs] > 30 {
		recs = append(recs, "🌙 잠들기 전 자극적인 콘텐츠는 수면을 방해할 수 있습니다.")
	}

	if hours := ctx.Hours(); hours >= 4 {
		recs = append(recs, fmt.Sprintf("⏰ 하루 %d시간 시청은 눈 건강에 해롭습니다. 디지털 디톡스가 필요합니다.", hours))
	}

	if len(recs) == 0 {
		recs = append(recs, "✨ 특별한 개선 사항이 없습니다. 지금의 식단을 유지해보세요.")
	}
	if len(recs) > 3 {
		recs = recs[:3]
	}
	return recs
}
