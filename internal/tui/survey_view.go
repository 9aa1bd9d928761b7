package tui

import (
	"fmt"
	"strings"

	"github.com/nyangnyang-maru/youtube-diet-project/internal/survey"
)

type surveyQuestion struct {
	prompt  string
	hint    string
	options []string
	multi   bool
}

var surveyQuestions = []surveyQuestion{
	{
		prompt:  "주로 언제 시청하시나요?",
		hint:    "시간대에 따라 휴식/학습 점수의 가중치가 달라집니다",
		options: []string{"잠들기 전", "식사하면서", "이동 중", "일/공부 중"},
	},
	{
		prompt:  "하루 평균 시청 시간은?",
		options: []string{"1시간 이하", "2시간", "3시간", "4시간 이상"},
	},
	{
		prompt:  "유튜브 프리미엄(Music)을 구독 중인가요?",
		hint:    "음악/플레이리스트를 배경 재생으로 간주해 휴식 점수 편향을 줄입니다",
		options: []string{"아니요", "예"},
	},
	{
		prompt:  "쇼츠(Shorts)를 가장 많이 보는 편인가요?",
		options: []string{"아니요", "예"},
	},
	{
		prompt:  "영상은 주로 어떻게 고르시나요?",
		options: []string{"알고리즘 추천", "반반", "직접 검색"},
	},
	{
		prompt:  "유튜브를 보는 주된 목적은? (복수 선택)",
		hint:    "스페이스로 선택, 엔터로 다음",
		options: []string{"재미/오락", "학습/성장", "휴식/힐링", "정보/뉴스"},
		multi:   true,
	},
	{
		prompt:  "알고리즘을 개선할 의향이 있나요?",
		options: []string{"예", "아니요"},
	},
}

const (
	qWatchTime = iota
	qDailyHours
	qPremium
	qShorts
	qBrowseMode
	qGoals
	qChangeWill
)

// surveyState tracks answers while walking through the questions.
type surveyState struct {
	index  int
	cursor int
	picks  []int
	goals  map[int]bool
}

func newSurveyState() *surveyState {
	picks := make([]int, len(surveyQuestions))
	picks[qDailyHours] = 1 // 2시간, same default as a fresh context
	return &surveyState{picks: picks, goals: make(map[int]bool)}
}

func (s *surveyState) question() surveyQuestion {
	return surveyQuestions[s.index]
}

func (s *surveyState) moveCursor(delta int) {
	n := len(s.question().options)
	s.cursor = (s.cursor + delta + n) % n
}

// choose records the highlighted option. For multi questions it toggles
// instead of advancing.
func (s *surveyState) choose() {
	if s.question().multi {
		s.goals[s.cursor] = !s.goals[s.cursor]
		return
	}
	s.picks[s.index] = s.cursor
}

// next advances to the following question, reporting whether the survey
// is finished.
func (s *surveyState) next() bool {
	if !s.question().multi {
		s.picks[s.index] = s.cursor
	}
	if s.index == len(surveyQuestions)-1 {
		return true
	}
	s.index++
	s.cursor = s.picks[s.index]
	return false
}

func (s *surveyState) prev() {
	if s.index > 0 {
		s.index--
		s.cursor = s.picks[s.index]
	}
}

// context converts the collected answers into a survey context.
func (s *surveyState) context() survey.Context {
	watchTimes := []survey.WatchTime{survey.BeforeSleep, survey.DuringMeal, survey.Commuting, survey.WorkStudy}
	hours := []string{"1", "2", "3", "4"}
	modes := []survey.BrowseMode{survey.Algorithmic, survey.Mixed, survey.DirectSearch}
	goalVals := []survey.Goal{survey.GoalFun, survey.GoalLearn, survey.GoalRest, survey.GoalNews}

	var goals []survey.Goal
	for i, on := range s.goals {
		if on && i < len(goalVals) {
			goals = append(goals, goalVals[i])
		}
	}

	return survey.Context{
		WatchTime:   watchTimes[s.picks[qWatchTime]],
		DailyHours:  hours[s.picks[qDailyHours]],
		IsPremium:   s.picks[qPremium] == 1,
		ShortsHeavy: s.picks[qShorts] == 1,
		BrowseMode:  modes[s.picks[qBrowseMode]],
		Goals:       goals,
		ChangeWill:  s.picks[qChangeWill] == 0,
	}
}

func renderSurvey(s *surveyState, width int) string {
	q := s.question()

	var b strings.Builder
	b.WriteString(titleStyle.Render("📋 시청 습관 설문"))
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("  (%d/%d)", s.index+1, len(surveyQuestions))))
	b.WriteString("\n\n")
	b.WriteString(questionStyle.Render(q.prompt))
	b.WriteString("\n")
	if q.hint != "" {
		b.WriteString(subtitleStyle.Render(q.hint))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, opt := range q.options {
		marker := "  "
		if q.multi && s.goals[i] {
			marker = checkedStyle.Render("✓ ")
		}
		line := marker + opt
		if i == s.cursor {
			b.WriteString(optionSelectedStyle.Render("> " + line))
		} else {
			b.WriteString(optionStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	return cardStyle.Width(min(width-4, 64)).Render(b.String())
}
