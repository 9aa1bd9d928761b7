package ai

import (
	"strings"
	"testing"

	"github.com/nyangnyang-maru/youtube-diet-project/internal/config"
	"github.com/nyangnyang-maru/youtube-diet-project/internal/nutrient"
)

func TestParseTitleList(t *testing.T) {
	input := `"스테이크 굽는 법", 웃긴 고양이 [Shorts], 세계 경제 뉴스`
	titles := parseTitleList(input)
	if len(titles) != 3 {
		t.Fatalf("expected 3 titles, got %d: %v", len(titles), titles)
	}
	if titles[0] != "스테이크 굽는 법" {
		t.Errorf("unexpected first title: %q", titles[0])
	}
	if titles[1] != "웃긴 고양이 Shorts" {
		t.Errorf("expected bracket markers stripped, got %q", titles[1])
	}
}

func TestParseTitleListDropsFragments(t *testing.T) {
	titles := parseTitleList("a, , 정상 제목, b")
	if len(titles) != 1 {
		t.Fatalf("expected single-rune fragments dropped, got %v", titles)
	}
	if titles[0] != "정상 제목" {
		t.Errorf("unexpected title: %q", titles[0])
	}
}

func TestParseTitleListEmpty(t *testing.T) {
	if titles := parseTitleList(""); len(titles) != 0 {
		t.Errorf("expected no titles for empty input, got %v", titles)
	}
}

func TestParsePrescription(t *testing.T) {
	input := `{"prescription_keyword": "예술 비타민 충전", "summary_text": "지식 위주의 시청 습관입니다.", "youtube_search_query": "국내 미술 전시 브이로그"}`
	p := parsePrescription(input)
	if p.Keyword != "예술 비타민 충전" {
		t.Errorf("unexpected keyword: %q", p.Keyword)
	}
	if p.SummaryText != "지식 위주의 시청 습관입니다." {
		t.Errorf("unexpected summary: %q", p.SummaryText)
	}
	if p.SearchQuery != "국내 미술 전시 브이로그" {
		t.Errorf("unexpected search query: %q", p.SearchQuery)
	}
}

func TestParsePrescriptionFallbacks(t *testing.T) {
	p := parsePrescription("not json at all")
	if p.SummaryText != "진단 내용을 불러오지 못했습니다." {
		t.Errorf("unexpected summary fallback: %q", p.SummaryText)
	}
	if p.Keyword != "디지털 밸런스" {
		t.Errorf("unexpected keyword fallback: %q", p.Keyword)
	}
	if p.SearchQuery != "디지털 밸런스 추천 영상" {
		t.Errorf("unexpected query fallback: %q", p.SearchQuery)
	}
}

func TestParsePrescriptionQueryEqualsKeyword(t *testing.T) {
	input := `{"prescription_keyword": "마음 디톡스", "summary_text": "ok", "youtube_search_query": "마음 디톡스"}`
	p := parsePrescription(input)
	if p.SearchQuery != "마음 디톡스 추천 영상" {
		t.Errorf("query identical to keyword should be expanded, got %q", p.SearchQuery)
	}
}

func TestParsePrescriptionCodeFence(t *testing.T) {
	input := "```json\n{\"prescription_keyword\": \"여행 처방\", \"summary_text\": \"s\", \"youtube_search_query\": \"유럽 여행 브이로그\"}\n```"
	p := parsePrescription(input)
	if p.Keyword != "여행 처방" {
		t.Errorf("fenced JSON not parsed, got %q", p.Keyword)
	}
}

func TestTruncateRunes(t *testing.T) {
	if got := truncateRunes("한글테스트", 3); got != "한글테" {
		t.Errorf("expected rune-safe truncation, got %q", got)
	}
	if got := truncateRunes("short", 100); got != "short" {
		t.Errorf("short input must pass through, got %q", got)
	}
}

func TestBuildPrescribePromptMentionsNutrients(t *testing.T) {
	prompt := buildPrescribePrompt("디지털 편식증", nutrient.Protein, nutrient.Vitamins)
	for _, want := range []string{"디지털 편식증", "Knowledge/Learning", "Diversity/Art"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestNewRejectsMissingConfig(t *testing.T) {
	if _, err := New(nil, "key"); err == nil {
		t.Error("expected error for nil config")
	}
	if _, err := New(&config.AIConfig{Provider: "openai"}, ""); err == nil {
		t.Error("expected error for empty API key")
	}
	if _, err := New(&config.AIConfig{Provider: "grok"}, "key"); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestNewDefaultsModels(t *testing.T) {
	d, err := New(&config.AIConfig{Provider: "openai"}, "key")
	if err != nil {
		t.Fatal(err)
	}
	if p, ok := d.(*openaiProvider); !ok || p.model != "gpt-4o" {
		t.Errorf("unexpected openai default model: %#v", d)
	}

	d, err = New(&config.AIConfig{Provider: "claude"}, "key")
	if err != nil {
		t.Fatal(err)
	}
	if p, ok := d.(*claudeProvider); !ok || p.model == "" {
		t.Errorf("unexpected claude default model: %#v", d)
	}
}
