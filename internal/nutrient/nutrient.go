// Package nutrient defines the four content "nutrients" and the score
// arithmetic used throughout the diagnosis pipeline.
package nutrient

import "math"

// Category represents one of the four information nutrients.
type Category string

const (
	Carbs    Category = "Carbs"    // 재미/오락
	Protein  Category = "Protein"  // 지식/학습
	Fats     Category = "Fats"     // 휴식/힐링
	Vitamins Category = "Vitamins" // 다양성/시야확장
)

// AllCategories returns the categories in canonical order. This order is
// also the deterministic tie-break used by the classifiers and the
// diagnosis selector.
func AllCategories() []Category {
	return []Category{Carbs, Protein, Fats, Vitamins}
}

// Korean returns the nutrient's Korean name.
func (c Category) Korean() string {
	switch c {
	case Carbs:
		return "탄수화물"
	case Protein:
		return "단백질"
	case Fats:
		return "지방"
	case Vitamins:
		return "비타민"
	}
	return string(c)
}

// Aspect returns the content aspect the nutrient stands for.
func (c Category) Aspect() string {
	switch c {
	case Carbs:
		return "재미/오락"
	case Protein:
		return "지식/학습"
	case Fats:
		return "휴식/힐링"
	case Vitamins:
		return "다양성/시야확장"
	}
	return string(c)
}

// ContentExamples returns example content types for the nutrient, used
// when recommending what to add to a lacking diet.
func (c Category) ContentExamples() []string {
	switch c {
	case Carbs:
		return []string{"코미디 쇼", "게임 방송", "예능 프로그램", "챌린지 영상"}
	case Protein:
		return []string{"온라인 강의", "TED 강연", "다큐멘터리", "전문가 인터뷰"}
	case Fats:
		return []string{"ASMR", "명상 가이드", "자연 영상", "수면 음악"}
	case Vitamins:
		return []string{"외국 문화", "예술 작품", "철학 강의", "새로운 취미"}
	}
	return nil
}

// Scores holds raw accumulated weights per category. Values are
// non-negative and unbounded until normalized.
type Scores map[Category]float64

// NewScores returns a zeroed score map with all four categories present.
func NewScores() Scores {
	s := make(Scores, 4)
	for _, c := range AllCategories() {
		s[c] = 0
	}
	return s
}

// Add accumulates weight for a category.
func (s Scores) Add(c Category, w float64) {
	s[c] += w
}

// Total returns the sum of all raw scores.
func (s Scores) Total() float64 {
	var t float64
	for _, c := range AllCategories() {
		t += s[c]
	}
	return t
}

// Percent holds an integer percentage per category. Truncation during
// normalization means the four values may sum to slightly under 100;
// the remainder is deliberately not redistributed.
type Percent map[Category]int

// Normalize converts raw scores to integer percentages. A zero total
// yields all zeros.
func (s Scores) Normalize() Percent {
	p := make(Percent, 4)
	total := s.Total()
	for _, c := range AllCategories() {
		if total == 0 {
			p[c] = 0
			continue
		}
		p[c] = int(s[c] / total * 100)
	}
	return p
}

// Sum returns the total of all percentages.
func (p Percent) Sum() int {
	var t int
	for _, c := range AllCategories() {
		t += p[c]
	}
	return t
}

// Dominant returns the category with the highest percentage. Ties go to
// the earlier category in canonical order.
func (p Percent) Dominant() Category {
	best := Carbs
	for _, c := range AllCategories() {
		if p[c] > p[best] {
			best = c
		}
	}
	return best
}

// Lacking returns the category with the lowest percentage. Ties go to
// the earlier category in canonical order.
func (p Percent) Lacking() Category {
	worst := Carbs
	for _, c := range AllCategories() {
		if p[c] < p[worst] {
			worst = c
		}
	}
	return worst
}

// BalanceScore measures how close the distribution is to the ideal
// uniform 25% split, on a 0-100 scale. A perfectly even diet scores
// 100; a single-category diet (100,0,0,0) scores 0.
func (p Percent) BalanceScore() int {
	total := p.Sum()
	if total == 0 {
		return 0
	}

	var deviation float64
	for _, c := range AllCategories() {
		pct := float64(p[c]) / float64(total) * 100
		deviation += math.Abs(pct - 25.0)
	}

	// Worst case (100,0,0,0) deviates by 75+25+25+25 = 150.
	penalty := deviation / 150.0 * 100
	score := math.Round(100 - penalty)
	if score < 0 {
		return 0
	}
	return int(score)
}
