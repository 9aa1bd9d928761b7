package tui

import (
	"strings"
	"testing"

	"github.com/nyangnyang-maru/youtube-diet-project/internal/nutrient"
	"github.com/nyangnyang-maru/youtube-diet-project/internal/survey"
)

func TestPercentBar(t *testing.T) {
	tests := []struct {
		pct        int
		wantFilled int
	}{
		{0, 0},
		{50, 15},
		{100, 30},
		{-5, 0},
		{150, 30},
	}
	for _, tt := range tests {
		bar := percentBar(tt.pct, 30)
		filled := strings.Count(bar, "█")
		if filled != tt.wantFilled {
			t.Errorf("percentBar(%d): %d filled cells, want %d", tt.pct, filled, tt.wantFilled)
		}
		if n := len([]rune(bar)); n != 30 {
			t.Errorf("percentBar(%d): width %d, want 30", tt.pct, n)
		}
	}
}

func TestGaugeStatusTiers(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, "위험"},
		{39, "위험"},
		{40, "주의"},
		{69, "주의"},
		{70, "건강"},
		{100, "건강"},
	}
	for _, tt := range tests {
		if got := gaugeStatus(tt.score); got != tt.want {
			t.Errorf("gaugeStatus(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestBadges(t *testing.T) {
	p := nutrient.Percent{
		nutrient.Carbs:    35,
		nutrient.Protein:  35,
		nutrient.Fats:     20,
		nutrient.Vitamins: 10,
	}
	earned := badges(p)
	if len(earned) != 2 {
		t.Fatalf("expected 2 badges, got %v", earned)
	}
	if earned[0] != "균형왕" || earned[1] != "학습왕" {
		t.Errorf("unexpected badges: %v", earned)
	}
}

func TestBadgesCarbsBandIsExclusive(t *testing.T) {
	p := nutrient.Percent{nutrient.Carbs: 30}
	if earned := badges(p); len(earned) != 0 {
		t.Errorf("carbs 30 is outside the band, got %v", earned)
	}
	p[nutrient.Carbs] = 40
	if earned := badges(p); len(earned) != 0 {
		t.Errorf("carbs 40 is outside the band, got %v", earned)
	}
}

func TestSurveyWalkthrough(t *testing.T) {
	s := newSurveyState()

	// Q1 watch time: pick 잠들기 전 (index 0, default cursor).
	if done := s.next(); done {
		t.Fatal("survey ended after first question")
	}
	// Q2 hours: pick 4시간 이상.
	s.cursor = 3
	s.next()
	// Q3 premium: 예.
	s.cursor = 1
	s.next()
	// Q4 shorts: 아니요.
	s.cursor = 0
	s.next()
	// Q5 browse mode: 직접 검색.
	s.cursor = 2
	s.next()
	// Q6 goals: toggle 학습/성장 and 휴식/힐링.
	s.cursor = 1
	s.choose()
	s.cursor = 2
	s.choose()
	s.next()
	// Q7 change will: 예 (default).
	if done := s.next(); !done {
		t.Fatal("survey should be finished")
	}

	ctx := s.context()
	if ctx.WatchTime != survey.BeforeSleep {
		t.Errorf("unexpected watch time: %v", ctx.WatchTime)
	}
	if ctx.Hours() != 4 {
		t.Errorf("expected 4 hours, got %d", ctx.Hours())
	}
	if !ctx.IsPremium || ctx.ShortsHeavy {
		t.Errorf("unexpected flags: premium=%v shorts=%v", ctx.IsPremium, ctx.ShortsHeavy)
	}
	if ctx.BrowseMode != survey.DirectSearch {
		t.Errorf("unexpected browse mode: %v", ctx.BrowseMode)
	}
	if len(ctx.Goals) != 2 {
		t.Errorf("expected 2 goals, got %v", ctx.Goals)
	}
	if !ctx.ChangeWill {
		t.Error("expected change will true")
	}
}

func TestSurveyCursorWraps(t *testing.T) {
	s := newSurveyState()
	s.moveCursor(-1)
	if s.cursor != len(surveyQuestions[0].options)-1 {
		t.Errorf("expected wrap to last option, got %d", s.cursor)
	}
	s.moveCursor(1)
	if s.cursor != 0 {
		t.Errorf("expected wrap to first option, got %d", s.cursor)
	}
}

func TestSurveyPrevRestoresPick(t *testing.T) {
	s := newSurveyState()
	s.cursor = 2
	s.next()
	s.prev()
	if s.cursor != 2 {
		t.Errorf("expected cursor restored to 2, got %d", s.cursor)
	}
}

func TestSplitPaths(t *testing.T) {
	got := splitPaths(" a.png, b.jpg ,, ")
	if len(got) != 2 || got[0] != "a.png" || got[1] != "b.jpg" {
		t.Errorf("unexpected paths: %v", got)
	}
	if got := splitPaths(""); got != nil {
		t.Errorf("expected nil for empty input, got %v", got)
	}
}
