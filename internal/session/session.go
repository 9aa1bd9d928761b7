package session

import (
	"time"

	"github.com/nyangnyang-maru/youtube-diet-project/internal/ai"
	"github.com/nyangnyang-maru/youtube-diet-project/internal/analyze"
	"github.com/nyangnyang-maru/youtube-diet-project/internal/survey"
	"github.com/nyangnyang-maru/youtube-diet-project/internal/youtube"
)

// Step is one stage of a diagnosis run. Steps only move forward; a new
// run starts from a fresh session.
type Step int

const (
	StepSurvey Step = iota
	StepCollect
	StepAnalyze
	StepDiagnosis
	StepPrescription
)

func (s Step) String() string {
	switch s {
	case StepSurvey:
		return "설문"
	case StepCollect:
		return "데이터 입력"
	case StepAnalyze:
		return "분석"
	case StepDiagnosis:
		return "진단"
	case StepPrescription:
		return "처방"
	}
	return "unknown"
}

// Session is the single record carried through one diagnosis run.
type Session struct {
	Step      Step
	StartedAt time.Time

	Survey survey.Context

	// Collected input, cleared by Reset.
	PastedText string
	Images     []string
	Titles     []string

	Result       *analyze.Result
	Prescription ai.Prescription
	Videos       []youtube.Video
}

func New() *Session {
	return &Session{
		Step:      StepSurvey,
		StartedAt: time.Now(),
		Survey:    survey.Default(),
	}
}

// HasInput reports whether the collect step gathered anything to
// analyze.
func (s *Session) HasInput() bool {
	return s.PastedText != "" || len(s.Images) > 0 || len(s.Titles) > 0
}

// Advance moves to the next step when the current one is complete.
// Returns false when the session cannot leave the current step.
func (s *Session) Advance() bool {
	switch s.Step {
	case StepCollect:
		if !s.HasInput() {
			return false
		}
	case StepAnalyze:
		if s.Result == nil {
			return false
		}
	case StepPrescription:
		return false
	}
	s.Step++
	return true
}

// Reset wipes everything and returns the session to the survey step.
func (s *Session) Reset() {
	*s = *New()
}
