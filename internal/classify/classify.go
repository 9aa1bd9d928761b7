// Package classify assigns video titles to nutrients with a fast
// keyword pass. Titles the keywords cannot place fall through to the
// embedding classifier.
package classify

import (
	"strings"

	"github.com/nyangnyang-maru/youtube-diet-project/internal/nutrient"
)

// Keyword lists are case-insensitive substrings in the app's target
// locale. Checked in fixed priority order: fun keywords first because a
// comedy signal is the most reliable one, then rest, knowledge,
// diversity.
var carbsKeywords = []string{
	"예능", "코미디", "개그", "웃음", "레전드", "ㅋㅋ", "ㅎㅎ",
	"몰카", "참기", "챌린지", "게임", "game", "매드무비", "하이라이트",
	"리액션", "먹방", "쇼츠", "shorts", "무한도전", "런닝맨", "유퀴즈",
	"침착맨", "엔터", "스케치", "콩트",
}

var fatsKeywords = []string{
	"playlist", "플레이리스트", "essential", "jazz", "lullaby", "asmr",
	"빗소리", "백색소음", "meditation", "요가", "산책", "vlog", "브이로그",
	"pop", "song", "music", "노래", "감성", "lo-fi", "lofi", "piano", "classic", "클래식",
}

var proteinKeywords = []string{
	"교수", "박사", "강연", "ted", "특강", "다큐", "documentary",
	"뉴스", "news", "경제", "주식", "재테크", "역사", "history",
	"과학", "science", "우주", "기술", "ai", "개발", "코딩",
	"영어", "회화", "공부", "스터디", "독서", "책", "인문학", "철학",
	"지식", "상식", "이동진", "슈카", "알쓸", "ebs", "bbc",
}

var vitaminKeywords = []string{
	"여행", "travel", "세계", "문화", "미술", "전시", "영화", "movie",
	"리뷰", "해석", "비하인드", "창작", "메이킹", "diy", "취미",
}

// Confidence multipliers per nutrient. Rest content from a premium
// subscriber is usually background playback, so it counts for less.
const (
	carbsConfidence       = 2.0
	fatsConfidence        = 1.5
	fatsPremiumConfidence = 0.8
	proteinConfidence     = 2.0
	vitaminConfidence     = 1.8
	noMatchConfidence     = 1.0
)

// Keyword matches a title against the fixed keyword lists. It returns
// the first matching nutrient in priority order together with its
// confidence multiplier, or ("", 1.0) when nothing matches.
func Keyword(title string, isPremium bool) (nutrient.Category, float64) {
	lower := strings.ToLower(title)

	if containsAny(lower, carbsKeywords) {
		return nutrient.Carbs, carbsConfidence
	}
	if containsAny(lower, fatsKeywords) {
		if isPremium {
			return nutrient.Fats, fatsPremiumConfidence
		}
		return nutrient.Fats, fatsConfidence
	}
	if containsAny(lower, proteinKeywords) {
		return nutrient.Protein, proteinConfidence
	}
	if containsAny(lower, vitaminKeywords) {
		return nutrient.Vitamins, vitaminConfidence
	}
	return "", noMatchConfidence
}

// IsShorts reports whether a title carries a shorts marker, either the
// literal tag appended during extraction or the word itself.
func IsShorts(title string) bool {
	lower := strings.ToLower(title)
	return strings.Contains(lower, "#shorts") ||
		strings.Contains(lower, "#쇼츠") ||
		strings.Contains(lower, "shorts")
}

func containsAny(lower string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}
