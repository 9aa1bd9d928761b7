// Package titles cleans raw text scraped from a YouTube page down to
// actual video titles.
package titles

import (
	"strings"
	"unicode/utf8"
)

// chromeTerms are strings that appear in YouTube's own UI rather than in
// video titles: navigation, menus, player controls, footer links. A
// short string containing one of these is almost certainly chrome; a
// long one is more likely a real title that happens to contain the word.
var chromeTerms = []string{
	"YouTube", "YouTube Music", "YouTube Kids", "YouTube 스튜디오",
	"YouTube Premium", "YouTube TV", "YouTube Shorts",
	"홈", "Shorts", "구독", "나중에 볼 동영상", "좋아요 표시한 동영상",
	"재생목록", "오프라인 저장", "다운로드", "구매 항목", "영화",
	"실시간", "게임", "스포츠", "학습", "팟캐스트",
	"설정", "신고 기록", "고객센터", "의견 보내기", "정보",
	"보도자료", "저작권", "문의하기", "크리에이터", "광고", "개발자",
	"약관", "개인정보처리방침", "정책 및 안전", "YouTube 작동 원리",
	"새로운 기능 테스트", "더보기", "간략히",
	"구독중", "알림", "모두", "맞춤설정", "없음",
	"좋아요", "싫어요", "공유", "클립", "저장",
	"신고", "스크립트 표시", "댓글",
	"조회수", "업로드", "실시간 스트리밍", "최근 업로드",
	"인기 업로드", "처음부터 재생", "믹스", "관련 동영상",
	"탐색", "라이브러리", "기록", "내 동영상", "시청 기록",
	"B tv", "tv",
}

// Filter drops strings that cannot be video titles: too short or too
// long, UI chrome, URLs, and bare numbers. Input order is preserved.
func Filter(raw []string) []string {
	var out []string
	for _, title := range raw {
		if keep(title) {
			out = append(out, title)
		}
	}
	return out
}

func keep(title string) bool {
	length := utf8.RuneCountInString(title)
	if length < 5 || length > 200 {
		return false
	}

	lower := strings.ToLower(title)

	if length < 20 {
		for _, term := range chromeTerms {
			if strings.Contains(lower, strings.ToLower(term)) {
				return false
			}
		}
	}

	if strings.Contains(lower, "http") || strings.Contains(lower, "www.") {
		return false
	}

	if isAllDigits(strings.TrimSpace(title)) {
		return false
	}

	return true
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Dedup removes exact duplicates after trimming whitespace, keeping the
// first occurrence. Pasted pages repeat titles between sections.
func Dedup(raw []string) []string {
	seen := make(map[string]bool, len(raw))
	var out []string
	for _, t := range raw {
		t = strings.TrimSpace(t)
		if utf8.RuneCountInString(t) <= 1 || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
