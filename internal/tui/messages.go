package tui

import (
	"github.com/nyangnyang-maru/youtube-diet-project/internal/ai"
	"github.com/nyangnyang-maru/youtube-diet-project/internal/analyze"
	"github.com/nyangnyang-maru/youtube-diet-project/internal/history"
	"github.com/nyangnyang-maru/youtube-diet-project/internal/youtube"
)

type analysisDoneMsg struct {
	result *analyze.Result
	err    error
}

type prescriptionMsg struct {
	prescription ai.Prescription
	videos       []youtube.Video
}

type historyLoadedMsg struct {
	entries []history.Entry
	err     error
}

type reportSavedMsg struct {
	path string
	err  error
}

type errMsg struct {
	err error
}
