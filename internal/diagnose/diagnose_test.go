package diagnose

import (
	"strings"
	"testing"

	"github.com/nyangnyang-maru/youtube-diet-project/internal/nutrient"
	"github.com/nyangnyang-maru/youtube-diet-project/internal/survey"
)

func TestDiagnoseGenericBelowMedium(t *testing.T) {
	p := nutrient.Percent{nutrient.Carbs: 33, nutrient.Protein: 33, nutrient.Fats: 33, nutrient.Vitamins: 0}
	if got := Diagnose(p, survey.Default()); got != LabelImbalance {
		t.Errorf("max 33 is below the medium tier, expected %q, got %q", LabelImbalance, got)
	}
}

func TestDiagnoseShortsHeavyOverride(t *testing.T) {
	p := nutrient.Percent{nutrient.Carbs: 45, nutrient.Protein: 20, nutrient.Fats: 20, nutrient.Vitamins: 15}
	ctx := survey.Context{WatchTime: survey.Commuting, ShortsHeavy: true}
	if got := Diagnose(p, ctx); got != "숏폼 도파민 중독증" {
		t.Errorf("shorts-heavy fun diet must override, got %q", got)
	}
}

func TestDiagnoseContextLabel(t *testing.T) {
	p := nutrient.Percent{nutrient.Carbs: 45, nutrient.Protein: 20, nutrient.Fats: 20, nutrient.Vitamins: 15}
	ctx := survey.Context{WatchTime: survey.BeforeSleep}
	if got := Diagnose(p, ctx); got != "야간 자극 과다 증후군" {
		t.Errorf("expected the before-sleep override, got %q", got)
	}
}

func TestDiagnoseTiers(t *testing.T) {
	tests := []struct {
		cat   nutrient.Category
		value int
		want  string
	}{
		{nutrient.Carbs, 60, "숏폼 도파민 중독증"},
		{nutrient.Carbs, 40, "알고리즘 표류 증후군"},
		{nutrient.Protein, 60, "정보 과부하 증후군"},
		{nutrient.Protein, 40, "학습 강박증"},
		{nutrient.Fats, 60, "디지털 수면제 의존증"},
		{nutrient.Fats, 40, "현실 도피 증후군"},
		{nutrient.Vitamins, 60, "정보 편식 개선 중"},
		{nutrient.Vitamins, 40, "균형 잡힌 디지털 식단"},
	}

	for _, tt := range tests {
		p := nutrient.Percent{}
		for _, c := range nutrient.AllCategories() {
			p[c] = 0
		}
		p[tt.cat] = tt.value
		// Commuting has no context overrides for any nutrient.
		ctx := survey.Context{WatchTime: survey.Commuting}
		if got := Diagnose(p, ctx); got != tt.want {
			t.Errorf("%s at %d: expected %q, got %q", tt.cat, tt.value, tt.want, got)
		}
	}
}

func TestDiagnoseDominantTieBreak(t *testing.T) {
	p := nutrient.Percent{nutrient.Carbs: 40, nutrient.Protein: 40, nutrient.Fats: 10, nutrient.Vitamins: 10}
	ctx := survey.Context{WatchTime: survey.Commuting}
	if got := Diagnose(p, ctx); got != "알고리즘 표류 증후군" {
		t.Errorf("tie should resolve to Carbs, got %q", got)
	}
}

func TestAllLabelsCount(t *testing.T) {
	if got := len(AllLabels()); got != 14 {
		t.Errorf("expected 14 condition names, got %d", got)
	}
}

func TestRecommendLacking(t *testing.T) {
	p := nutrient.Percent{nutrient.Carbs: 40, nutrient.Protein: 30, nutrient.Fats: 25, nutrient.Vitamins: 5}
	recs := Recommend(p, survey.Context{WatchTime: survey.Commuting, DailyHours: "1"})
	if len(recs) == 0 || !strings.Contains(recs[0], "다양성/시야확장") {
		t.Errorf("expected a lacking-nutrient guide first, got %v", recs)
	}
}

func TestRecommendOverConcentration(t *testing.T) {
	p := nutrient.Percent{nutrient.Carbs: 60, nutrient.Protein: 20, nutrient.Fats: 15, nutrient.Vitamins: 15}
	recs := Recommend(p, survey.Context{WatchTime: survey.Commuting, DailyHours: "1"})
	found := false
	for _, r := range recs {
		if strings.Contains(r, "편중") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an over-concentration warning, got %v", recs)
	}
}

func TestRecommendSleepWarning(t *testing.T) {
	p := nutrient.Percent{nutrient.Carbs: 35, nutrient.Protein: 25, nutrient.Fats: 20, nutrient.Vitamins: 20}
	recs := Recommend(p, survey.Context{WatchTime: survey.BeforeSleep, DailyHours: "1"})
	found := false
	for _, r := range recs {
		if strings.Contains(r, "수면") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a sleep warning, got %v", recs)
	}
}

func TestRecommendDetox(t *testing.T) {
	p := nutrient.Percent{nutrient.Carbs: 25, nutrient.Protein: 25, nutrient.Fats: 25, nutrient.Vitamins: 25}
	recs := Recommend(p, survey.Context{WatchTime: survey.Commuting, DailyHours: "6시간"})
	found := false
	for _, r := range recs {
		if strings.Contains(r, "디톡스") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a detox guide, got %v", recs)
	}
}

func TestRecommendNeverEmpty(t *testing.T) {
	p := nutrient.Percent{nutrient.Carbs: 25, nutrient.Protein: 25, nutrient.Fats: 25, nutrient.Vitamins: 25}
	recs := Recommend(p, survey.Context{WatchTime: survey.Commuting, DailyHours: "1"})
	if len(recs) == 0 {
		t.Error("recommendations must never be empty")
	}
}

func TestRecommendCappedAtThree(t *testing.T) {
	// Trip all four rules at once.
	p := nutrient.Percent{nutrient.Carbs: 60, nutrient.Protein: 20, nutrient.Fats: 10, nutrient.Vitamins: 5}
	recs := Recommend(p, survey.Context{WatchTime: survey.BeforeSleep, DailyHours: "8"})
	if len(recs) != 3 {
		t.Errorf("expected 3 guides, got %d: %v", len(recs), recs)
	}
}
