package nutrient

import (
	"testing"

	"github.com/nyangnyang-maru/youtube-diet-project/internal/survey"
)

func TestNormalizeTruncates(t *testing.T) {
	s := NewScores()
	s.Add(Carbs, 1)
	s.Add(Protein, 1)
	s.Add(Fats, 1)

	p := s.Normalize()
	if p[Carbs] != 33 || p[Protein] != 33 || p[Fats] != 33 {
		t.Errorf("expected 33/33/33, got %v", p)
	}
	if p[Vitamins] != 0 {
		t.Errorf("expected Vitamins 0, got %d", p[Vitamins])
	}
	if p.Sum() > 100 {
		t.Errorf("percentages must never sum above 100, got %d", p.Sum())
	}
}

func TestNormalizeZeroTotal(t *testing.T) {
	p := NewScores().Normalize()
	for _, c := range AllCategories() {
		if p[c] != 0 {
			t.Errorf("expected all-zero percentages, got %v", p)
		}
	}
}

func TestNormalizeNeverNegative(t *testing.T) {
	s := NewScores()
	s.Add(Carbs, 7.3)
	s.Add(Vitamins, 0.4)
	for c, v := range s.Normalize() {
		if v < 0 {
			t.Errorf("%s: negative percentage %d", c, v)
		}
	}
}

func TestBalanceScorePerfect(t *testing.T) {
	p := Percent{Carbs: 25, Protein: 25, Fats: 25, Vitamins: 25}
	if got := p.BalanceScore(); got != 100 {
		t.Errorf("balanced diet should score 100, got %d", got)
	}
}

func TestBalanceScoreWorst(t *testing.T) {
	p := Percent{Carbs: 100, Protein: 0, Fats: 0, Vitamins: 0}
	if got := p.BalanceScore(); got != 0 {
		t.Errorf("single-category diet should score 0, got %d", got)
	}
}

func TestBalanceScoreZero(t *testing.T) {
	p := Percent{}
	if got := p.BalanceScore(); got != 0 {
		t.Errorf("empty distribution should score 0, got %d", got)
	}
}

func TestDominantTieBreak(t *testing.T) {
	p := Percent{Carbs: 40, Protein: 40, Fats: 10, Vitamins: 10}
	if got := p.Dominant(); got != Carbs {
		t.Errorf("tie should resolve in canonical order, got %s", got)
	}
}

func TestLacking(t *testing.T) {
	p := Percent{Carbs: 50, Protein: 30, Fats: 15, Vitamins: 5}
	if got := p.Lacking(); got != Vitamins {
		t.Errorf("expected Vitamins, got %s", got)
	}
}

func TestReweightNeutralIdempotent(t *testing.T) {
	// An unknown watch time leaves all multipliers at 1.0; reweighting
	// must then return the same percentages (mod rounding).
	p := Percent{Carbs: 25, Protein: 25, Fats: 25, Vitamins: 25}
	ctx := survey.Context{WatchTime: "unknown"}

	got := p.Reweight(ctx)
	for _, c := range AllCategories() {
		if got[c] != p[c] {
			t.Errorf("%s: expected %d, got %d", c, p[c], got[c])
		}
	}
}

func TestReweightBeforeSleepFavorsRest(t *testing.T) {
	p := Percent{Carbs: 25, Protein: 25, Fats: 25, Vitamins: 25}
	ctx := survey.Context{WatchTime: survey.BeforeSleep}

	got := p.Reweight(ctx)
	if got[Fats] <= got[Protein] {
		t.Errorf("before-sleep weighting should boost Fats over Protein, got %v", got)
	}
}

func TestReweightShortsHeavy(t *testing.T) {
	p := Percent{Carbs: 25, Protein: 25, Fats: 25, Vitamins: 25}
	base := p.Reweight(survey.Context{WatchTime: "unknown"})
	shorts := p.Reweight(survey.Context{WatchTime: "unknown", ShortsHeavy: true})
	if shorts[Carbs] <= base[Carbs] {
		t.Errorf("shorts-heavy flag should raise Carbs share: base %d, shorts %d", base[Carbs], shorts[Carbs])
	}
}

func TestReweightPremiumTrimsFats(t *testing.T) {
	p := Percent{Carbs: 25, Protein: 25, Fats: 25, Vitamins: 25}
	base := p.Reweight(survey.Context{WatchTime: "unknown"})
	premium := p.Reweight(survey.Context{WatchTime: "unknown", IsPremium: true})
	if premium[Fats] >= base[Fats] {
		t.Errorf("premium flag should lower Fats share: base %d, premium %d", base[Fats], premium[Fats])
	}
}

func TestReweightZeroTotal(t *testing.T) {
	p := Percent{}
	got := p.Reweight(survey.Default())
	for _, c := range AllCategories() {
		if got[c] != 0 {
			t.Errorf("zero distribution should stay zero, got %v", got)
		}
	}
}
