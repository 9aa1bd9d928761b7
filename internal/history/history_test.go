package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/nyangnyang-maru/youtube-diet-project/internal/nutrient"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleEntry(runAt time.Time) Entry {
	return Entry{
		RunAt:        runAt,
		Diagnosis:    "디지털 편식증",
		BalanceScore: 58,
		Carbs:        45,
		Protein:      25,
		Fats:         20,
		Vitamins:     10,
		Keyword:      "예술 비타민",
	}
}

func TestAddAndRecent(t *testing.T) {
	s := openTestStore(t)

	id, err := s.Add(sampleEntry(time.Now()))
	if err != nil {
		t.Fatal(err)
	}
	if id == 0 {
		t.Error("expected non-zero row id")
	}

	entries, err := s.Recent(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Diagnosis != "디지털 편식증" || e.BalanceScore != 58 {
		t.Errorf("unexpected entry: %+v", e)
	}
}

func TestRecentOrder(t *testing.T) {
	s := openTestStore(t)

	old := sampleEntry(time.Now().Add(-48 * time.Hour))
	old.Diagnosis = "오래된 진단"
	if _, err := s.Add(old); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Add(sampleEntry(time.Now())); err != nil {
		t.Fatal(err)
	}

	entries, err := s.Recent(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Diagnosis == "오래된 진단" {
		t.Error("expected newest entry first")
	}
}

func TestRecentLimit(t *testing.T) {
	s := openTestStore(t)
	for i := 0; i < 5; i++ {
		if _, err := s.Add(sampleEntry(time.Now().Add(time.Duration(-i) * time.Hour))); err != nil {
			t.Fatal(err)
		}
	}
	entries, err := s.Recent(3)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Errorf("expected 3 entries, got %d", len(entries))
	}
}

func TestPrune(t *testing.T) {
	s := openTestStore(t)

	if _, err := s.Add(sampleEntry(time.Now().Add(-30 * 24 * time.Hour))); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Add(sampleEntry(time.Now())); err != nil {
		t.Fatal(err)
	}

	n, err := s.Prune(7 * 24 * time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("expected 1 pruned row, got %d", n)
	}

	entries, err := s.Recent(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected 1 surviving entry, got %d", len(entries))
	}
}

func TestEntryScores(t *testing.T) {
	e := sampleEntry(time.Now())
	p := e.Scores()
	if p[nutrient.Carbs] != 45 || p[nutrient.Vitamins] != 10 {
		t.Errorf("unexpected scores: %v", p)
	}
}

func TestOpenCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "deep", "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("expected parent dirs created, got %v", err)
	}
	s.Close()
}
