// Package survey models the viewing-habit questionnaire answered before
// an analysis run. A Context is filled in once and read-only afterwards.
package survey

import (
	"strconv"
	"strings"
	"unicode"
)

// WatchTime is the time-of-day bucket the user mostly watches in.
type WatchTime string

const (
	BeforeSleep WatchTime = "잠들기 전"
	DuringMeal  WatchTime = "식사하면서"
	Commuting   WatchTime = "이동 중"
	WorkStudy   WatchTime = "일/공부 중"
)

// AllWatchTimes returns the survey's watch-time choices in display order.
func AllWatchTimes() []WatchTime {
	return []WatchTime{BeforeSleep, DuringMeal, Commuting, WorkStudy}
}

// BrowseMode describes how the user picks videos.
type BrowseMode string

const (
	Algorithmic  BrowseMode = "알고리즘 추천"
	Mixed        BrowseMode = "반반"
	DirectSearch BrowseMode = "직접 검색"
)

// AllBrowseModes returns the survey's browse-mode choices in display order.
func AllBrowseModes() []BrowseMode {
	return []BrowseMode{Algorithmic, Mixed, DirectSearch}
}

// Goal is a self-reported reason for watching.
type Goal string

const (
	GoalFun   Goal = "재미/오락"
	GoalLearn Goal = "학습/성장"
	GoalRest  Goal = "휴식/힐링"
	GoalNews  Goal = "정보/뉴스"
)

// AllGoals returns the survey's goal choices in display order.
func AllGoals() []Goal {
	return []Goal{GoalFun, GoalLearn, GoalRest, GoalNews}
}

// Context holds the survey answers for one analysis run.
type Context struct {
	WatchTime   WatchTime
	DailyHours  string // free-form, parsed defensively via Hours
	IsPremium   bool
	ShortsHeavy bool
	BrowseMode  BrowseMode
	Goals       []Goal
	ChangeWill  bool
}

// Default returns the context used when no survey was taken.
func Default() Context {
	return Context{
		WatchTime:  DuringMeal,
		DailyHours: "2",
		BrowseMode: Mixed,
		ChangeWill: true,
	}
}

// Hours parses the daily-hours answer. The field may contain junk like
// "4시간" or "about 3"; the first run of digits wins, anything
// unparseable counts as zero.
func (c Context) Hours() int {
	var digits strings.Builder
	for _, r := range c.DailyHours {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
			continue
		}
		if digits.Len() > 0 {
			break
		}
	}
	if digits.Len() == 0 {
		return 0
	}
	n, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0
	}
	return n
}

// HasGoal reports whether the user selected the given goal.
func (c Context) HasGoal(g Goal) bool {
	for _, have := range c.Goals {
		if have == g {
			return true
		}
	}
	return false
}
