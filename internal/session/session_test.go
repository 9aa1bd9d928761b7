package session

import (
	"testing"

	"github.com/nyangnyang-maru/youtube-diet-project/internal/analyze"
	"github.com/nyangnyang-maru/youtube-diet-project/internal/survey"
)

func TestNewStartsAtSurvey(t *testing.T) {
	s := New()
	if s.Step != StepSurvey {
		t.Errorf("expected survey step, got %v", s.Step)
	}
	if s.Survey.WatchTime != survey.DuringMeal {
		t.Errorf("expected default survey, got %+v", s.Survey)
	}
	if s.StartedAt.IsZero() {
		t.Error("expected StartedAt set")
	}
}

func TestAdvanceRequiresInput(t *testing.T) {
	s := New()
	if !s.Advance() {
		t.Fatal("survey step should always advance")
	}
	if s.Step != StepCollect {
		t.Fatalf("expected collect step, got %v", s.Step)
	}

	if s.Advance() {
		t.Error("collect step must not advance without input")
	}

	s.PastedText = "some pasted page dump"
	if !s.Advance() {
		t.Error("collect step should advance once input exists")
	}
	if s.Step != StepAnalyze {
		t.Errorf("expected analyze step, got %v", s.Step)
	}
}

func TestAdvanceRequiresResult(t *testing.T) {
	s := New()
	s.Step = StepAnalyze
	if s.Advance() {
		t.Error("analyze step must not advance without a result")
	}
	s.Result = &analyze.Result{}
	if !s.Advance() {
		t.Error("analyze step should advance with a result")
	}
	if s.Step != StepDiagnosis {
		t.Errorf("expected diagnosis step, got %v", s.Step)
	}
}

func TestPrescriptionIsTerminal(t *testing.T) {
	s := New()
	s.Step = StepPrescription
	if s.Advance() {
		t.Error("prescription is the last step")
	}
}

func TestReset(t *testing.T) {
	s := New()
	s.Step = StepPrescription
	s.PastedText = "dump"
	s.Titles = []string{"t1"}
	s.Result = &analyze.Result{}

	s.Reset()

	if s.Step != StepSurvey {
		t.Errorf("expected survey step after reset, got %v", s.Step)
	}
	if s.HasInput() || s.Result != nil {
		t.Error("reset must clear collected data")
	}
}

func TestStepStrings(t *testing.T) {
	for step, want := range map[Step]string{
		StepSurvey:       "설문",
		StepCollect:      "데이터 입력",
		StepAnalyze:      "분석",
		StepDiagnosis:    "진단",
		StepPrescription: "처방",
	} {
		if got := step.String(); got != want {
			t.Errorf("step %d: expected %q, got %q", step, want, got)
		}
	}
}
