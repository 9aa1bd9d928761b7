package cmd

import (
	"testing"
	"time"
)

func TestParseOlderThan(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
		err   bool
	}{
		{"30d", 30 * 24 * time.Hour, false},
		{"1d", 24 * time.Hour, false},
		{"72h", 72 * time.Hour, false},
		{"90m", 90 * time.Minute, false},
		{"2h30m", 2*time.Hour + 30*time.Minute, false},
		{"invalid", 0, true},
		{"", 0, true},
		{"d", 0, true},
	}

	for _, tt := range tests {
		got, err := parseOlderThan(tt.input)
		if tt.err {
			if err == nil {
				t.Errorf("parseOlderThan(%q): expected error, got %v", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseOlderThan(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseOlderThan(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseWatchTime(t *testing.T) {
	for in, want := range map[string]string{
		"sleep":   "잠들기 전",
		"meal":    "식사하면서",
		"commute": "이동 중",
		"work":    "일/공부 중",
	} {
		got, err := parseWatchTime(in)
		if err != nil {
			t.Fatalf("parseWatchTime(%q): %v", in, err)
		}
		if string(got) != want {
			t.Errorf("parseWatchTime(%q) = %q, want %q", in, got, want)
		}
	}

	if _, err := parseWatchTime("midnight"); err == nil {
		t.Error("parseWatchTime(\"midnight\"): expected error")
	}
}
