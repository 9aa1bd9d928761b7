package tui

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nyangnyang-maru/youtube-diet-project/internal/ai"
	"github.com/nyangnyang-maru/youtube-diet-project/internal/analyze"
	"github.com/nyangnyang-maru/youtube-diet-project/internal/browser"
	"github.com/nyangnyang-maru/youtube-diet-project/internal/config"
	"github.com/nyangnyang-maru/youtube-diet-project/internal/history"
	"github.com/nyangnyang-maru/youtube-diet-project/internal/logging"
	"github.com/nyangnyang-maru/youtube-diet-project/internal/nutrient"
	"github.com/nyangnyang-maru/youtube-diet-project/internal/report"
	"github.com/nyangnyang-maru/youtube-diet-project/internal/session"
	"github.com/nyangnyang-maru/youtube-diet-project/internal/youtube"
)

type mode int

const (
	modeHome mode = iota
	modeSurvey
	modeCollect
	modeAnalyzing
	modeDiagnosis
	modePrescription
	modeHistory
)

type collectFocus int

const (
	focusPaste collectFocus = iota
	focusImages
)

type App struct {
	cfg      *config.Config
	store    *history.Store
	doctor   ai.Doctor
	semantic analyze.SemanticClassifier

	sess   *session.Session
	survey *surveyState
	mode   mode

	width  int
	height int

	// Sub-components
	pasteInput textarea.Model
	imageInput textinput.Model
	focus      collectFocus
	spinner    spinner.Model

	// State
	analyzing      bool
	prescReady     bool
	savedPath      string
	historyEntries []history.Entry
	historyCursor  int
	updateVersion  string
	err            error
}

// RunOpts holds all parameters for launching the TUI.
type RunOpts struct {
	Cfg           *config.Config
	Store         *history.Store
	Doctor        ai.Doctor
	Semantic      analyze.SemanticClassifier
	UpdateVersion string
}

func NewApp(opts RunOpts) *App {
	ta := textarea.New()
	ta.Placeholder = "유튜브 홈/기록 화면의 텍스트를 붙여넣으세요..."
	ta.CharLimit = 0
	ta.SetHeight(10)

	ti := textinput.New()
	ti.Placeholder = "스크린샷 경로 (쉼표로 구분, 선택 사항)"
	ti.CharLimit = 500

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	return &App{
		cfg:           opts.Cfg,
		store:         opts.Store,
		doctor:        opts.Doctor,
		semantic:      opts.Semantic,
		sess:          session.New(),
		pasteInput:    ta,
		imageInput:    ti,
		spinner:       sp,
		updateVersion: opts.UpdateVersion,
	}
}

func (a *App) Init() tea.Cmd {
	return nil
}

// analyzeCmd runs title extraction and the scoring pipeline off the
// update loop.
func (a *App) analyzeCmd() tea.Cmd {
	doctor := a.doctor
	semantic := a.semantic
	sctx := a.sess.Survey
	pasted := a.sess.PastedText
	paths := a.sess.Images

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
		defer cancel()

		var titles []string

		if pasted != "" {
			if doctor != nil {
				extracted, err := doctor.ExtractTitles(ctx, pasted)
				if err != nil {
					return analysisDoneMsg{err: fmt.Errorf("제목 추출 실패: %w", err)}
				}
				titles = append(titles, extracted...)
			} else {
				// Without an AI key, treat each pasted line as a title.
				for _, line := range strings.Split(pasted, "\n") {
					if line = strings.TrimSpace(line); line != "" {
						titles = append(titles, line)
					}
				}
			}
		}

		if len(paths) > 0 && doctor != nil {
			images, err := encodeImages(paths)
			if err != nil {
				return analysisDoneMsg{err: err}
			}
			extracted, err := doctor.ExtractFromImages(ctx, images)
			if err != nil {
				return analysisDoneMsg{err: fmt.Errorf("이미지 분석 실패: %w", err)}
			}
			titles = append(titles, extracted...)
		}

		res, err := analyze.Run(ctx, titles, sctx, semantic)
		return analysisDoneMsg{result: res, err: err}
	}
}

func encodeImages(paths []string) ([]string, error) {
	images := make([]string, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("이미지를 읽을 수 없습니다 %s: %w", p, err)
		}
		images = append(images, base64.StdEncoding.EncodeToString(data))
	}
	return images, nil
}

// prescriptionCmd asks the AI doctor for the prescription and looks up
// recommended videos, falling back to curated feeds.
func (a *App) prescriptionCmd() tea.Cmd {
	res := a.sess.Result
	doctor := a.doctor
	apiKey := a.cfg.YouTubeKey()

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		excess := res.Scores.Dominant()
		lacking := res.Scores.Lacking()

		p := offlinePrescription()
		if doctor != nil {
			got, err := doctor.Prescribe(ctx, res.Diagnosis, excess, lacking)
			if err != nil {
				logging.L().Warn("prescription failed", "error", err)
			} else {
				p = got
			}
		}

		videos, err := youtube.Search(ctx, apiKey, p.SearchQuery)
		if err != nil || len(videos) == 0 {
			if err != nil {
				logging.L().Warn("video search failed", "error", err)
			}
			videos = youtube.Fallback(ctx, lacking)
		}

		return prescriptionMsg{prescription: p, videos: videos}
	}
}

func offlinePrescription() ai.Prescription {
	return ai.Prescription{
		SummaryText: "진단 내용을 불러오지 못했습니다.",
		Keyword:     "디지털 밸런스",
		SearchQuery: "디지털 밸런스 추천 영상",
	}
}

func (a *App) saveHistoryCmd() tea.Cmd {
	if a.store == nil || !a.cfg.HistoryEnabled() {
		return nil
	}
	store := a.store
	res := a.sess.Result
	keyword := a.sess.Prescription.Keyword
	return func() tea.Msg {
		_, err := store.Add(history.Entry{
			RunAt:        time.Now(),
			Diagnosis:    res.Diagnosis,
			BalanceScore: res.BalanceScore,
			Carbs:        res.Scores[nutrient.Carbs],
			Protein:      res.Scores[nutrient.Protein],
			Fats:         res.Scores[nutrient.Fats],
			Vitamins:     res.Scores[nutrient.Vitamins],
			Keyword:      keyword,
		})
		if err != nil {
			logging.L().Warn("saving history", "error", err)
		}
		return nil
	}
}

func (a *App) loadHistoryCmd() tea.Cmd {
	store := a.store
	return func() tea.Msg {
		entries, err := store.Recent(20)
		return historyLoadedMsg{entries: entries, err: err}
	}
}

func (a *App) saveReportCmd() tea.Cmd {
	res := a.sess.Result
	p := a.sess.Prescription
	videos := a.sess.Videos
	return func() tea.Msg {
		path, err := report.Save("", report.Data{
			Date:            time.Now(),
			Diagnosis:       res.Diagnosis,
			BalanceScore:    res.BalanceScore,
			Scores:          res.Scores,
			SummaryText:     p.SummaryText,
			Keyword:         p.Keyword,
			SearchQuery:     p.SearchQuery,
			Videos:          videos,
			Recommendations: res.Recommendations,
		})
		return reportSavedMsg{path: path, err: err}
	}
}

func openBrowserCmd(url string) tea.Cmd {
	return func() tea.Msg {
		if err := browser.Open(url); err != nil {
			return errMsg{err: err}
		}
		return nil
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.pasteInput.SetWidth(min(msg.Width-8, 72))
		return a, nil

	case tea.KeyMsg:
		a.err = nil
		return a.handleKey(msg)

	case analysisDoneMsg:
		a.analyzing = false
		if msg.err != nil {
			a.err = msg.err
			a.mode = modeCollect
			return a, nil
		}
		a.sess.Result = msg.result
		a.sess.Advance()
		a.mode = modeDiagnosis
		return a, a.prescriptionCmd()

	case prescriptionMsg:
		a.sess.Prescription = msg.prescription
		a.sess.Videos = msg.videos
		a.prescReady = true
		return a, a.saveHistoryCmd()

	case historyLoadedMsg:
		if msg.err != nil {
			a.err = msg.err
			a.mode = modeHome
			return a, nil
		}
		a.historyEntries = msg.entries
		a.historyCursor = 0
		return a, nil

	case reportSavedMsg:
		if msg.err != nil {
			a.err = msg.err
		} else {
			a.savedPath = msg.path
		}
		return a, nil

	case errMsg:
		a.err = msg.err
		return a, nil

	case spinner.TickMsg:
		if a.analyzing || (a.mode == modePrescription && !a.prescReady) {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	switch a.mode {
	case modeHome:
		return a.handleHomeKey(msg)
	case modeSurvey:
		return a.handleSurveyKey(msg)
	case modeCollect:
		return a.handleCollectKey(msg)
	case modeAnalyzing:
		if msg.String() == "q" {
			return a, tea.Quit
		}
		return a, nil
	case modeDiagnosis:
		return a.handleDiagnosisKey(msg)
	case modePrescription:
		return a.handlePrescriptionKey(msg)
	case modeHistory:
		return a.handleHistoryKey(msg)
	}
	return a, nil
}

func (a *App) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "s", "enter":
		a.startNewRun()
		return a, nil
	case "h":
		if a.store != nil {
			a.mode = modeHistory
			return a, a.loadHistoryCmd()
		}
		return a, nil
	case "q":
		return a, tea.Quit
	}
	return a, nil
}

func (a *App) startNewRun() {
	a.sess.Reset()
	a.survey = newSurveyState()
	a.prescReady = false
	a.savedPath = ""
	a.pasteInput.Reset()
	a.imageInput.Reset()
	a.focus = focusPaste
	a.mode = modeSurvey
}

func (a *App) handleSurveyKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		a.survey.moveCursor(-1)
		return a, nil
	case "down", "j":
		a.survey.moveCursor(1)
		return a, nil
	case " ":
		a.survey.choose()
		return a, nil
	case "enter":
		a.survey.choose()
		if a.survey.next() {
			a.sess.Survey = a.survey.context()
			a.sess.Advance()
			a.mode = modeCollect
			a.pasteInput.Focus()
			return a, textarea.Blink
		}
		return a, nil
	case "esc":
		if a.survey.index == 0 {
			a.mode = modeHome
		} else {
			a.survey.prev()
		}
		return a, nil
	case "q":
		return a, tea.Quit
	}
	return a, nil
}

func (a *App) handleCollectKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.mode = modeSurvey
		a.pasteInput.Blur()
		return a, nil
	case "tab":
		if a.focus == focusPaste {
			a.focus = focusImages
			a.pasteInput.Blur()
			a.imageInput.Focus()
			return a, textinput.Blink
		}
		a.focus = focusPaste
		a.imageInput.Blur()
		a.pasteInput.Focus()
		return a, textarea.Blink
	case "ctrl+d":
		a.sess.PastedText = strings.TrimSpace(a.pasteInput.Value())
		a.sess.Images = splitPaths(a.imageInput.Value())
		if !a.sess.HasInput() {
			a.err = fmt.Errorf("분석할 데이터가 없습니다")
			return a, nil
		}
		a.sess.Advance()
		a.mode = modeAnalyzing
		a.analyzing = true
		return a, tea.Batch(a.analyzeCmd(), a.spinner.Tick)
	}

	var cmd tea.Cmd
	if a.focus == focusPaste {
		a.pasteInput, cmd = a.pasteInput.Update(msg)
	} else {
		a.imageInput, cmd = a.imageInput.Update(msg)
	}
	return a, cmd
}

func splitPaths(s string) []string {
	var paths []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

func (a *App) handleDiagnosisKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.sess.Advance()
		a.mode = modePrescription
		if !a.prescReady {
			return a, a.spinner.Tick
		}
		return a, nil
	case "n":
		a.startNewRun()
		return a, nil
	case "esc":
		a.mode = modeHome
		return a, nil
	case "q":
		return a, tea.Quit
	}
	return a, nil
}

func (a *App) handlePrescriptionKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "1", "2", "3":
		idx := int(msg.String()[0] - '1')
		if idx < len(a.sess.Videos) {
			return a, openBrowserCmd(a.sess.Videos[idx].URL)
		}
		return a, nil
	case "s":
		if a.prescReady && a.savedPath == "" {
			return a, a.saveReportCmd()
		}
		return a, nil
	case "n":
		a.startNewRun()
		return a, nil
	case "esc":
		a.mode = modeHome
		return a, nil
	case "q":
		return a, tea.Quit
	}
	return a, nil
}

func (a *App) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if a.historyCursor < len(a.historyEntries)-1 {
			a.historyCursor++
		}
		return a, nil
	case "k", "up":
		if a.historyCursor > 0 {
			a.historyCursor--
		}
		return a, nil
	case "esc", "q", "h":
		a.mode = modeHome
		return a, nil
	}
	return a, nil
}

func (a *App) withBottomBar(content string, hints string) string {
	bar := renderBottomBar(a.stepLabel(), hints, a.width)
	lines := strings.Split(content, "\n")
	for len(lines) < a.height-1 {
		lines = append(lines, "")
	}
	if len(lines) >= a.height {
		lines = lines[:a.height-1]
	}
	lines = append(lines, bar)
	return strings.Join(lines, "\n")
}

func (a *App) stepLabel() string {
	if a.mode == modeHome || a.mode == modeHistory {
		return ""
	}
	return a.sess.Step.String()
}

func (a *App) View() string {
	if a.width == 0 {
		return lipgloss.NewStyle().Foreground(colorAccent).Render("  ytdiet")
	}

	var content, hints string

	switch a.mode {
	case modeHome:
		content = renderHomeScreen(a.width, a.height-1, a.store != nil, a.updateVersion)
		hints = "s 시작  h 기록  q 종료"
		return a.withBottomBar(content, hints)

	case modeSurvey:
		content = renderSurvey(a.survey, a.width)
		hints = "↑/↓ 이동  space 선택  enter 다음  esc 이전"

	case modeCollect:
		content = a.renderCollect()
		hints = "tab 입력 전환  ctrl+d 분석 시작  esc 설문으로"

	case modeAnalyzing:
		content = cardStyle.Render(a.spinner.View() + " 시청 기록을 분석하는 중입니다...")
		hints = "q 종료"

	case modeDiagnosis:
		content = renderDiagnosis(a.sess.Result, a.width)
		hints = "enter 처방 보기  n 새 분석  q 종료"

	case modePrescription:
		if !a.prescReady {
			content = cardStyle.Render(a.spinner.View() + " 처방전을 작성하는 중입니다...")
		} else {
			content = renderPrescription(a.sess.Prescription, a.sess.Videos, a.savedPath, a.width)
		}
		hints = "1-3 영상 열기  s 리포트 저장  n 새 분석  q 종료"

	case modeHistory:
		content = renderHistory(a.historyEntries, a.historyCursor, a.width)
		hints = "↑/↓ 이동  esc 홈"
	}

	if a.err != nil {
		content += "\n" + errorStyle.Render("⚠ "+a.err.Error())
	}

	return a.withBottomBar(content, hints)
}

func (a *App) renderCollect() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("📥 시청 기록 입력"))
	b.WriteString("\n\n")
	b.WriteString(subtitleStyle.Render("유튜브 홈 화면에서 전체 선택(Ctrl+A) 후 복사한 텍스트를 붙여넣거나,"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("스크린샷 파일 경로를 입력하세요."))
	b.WriteString("\n\n")
	b.WriteString(a.pasteInput.View())
	b.WriteString("\n\n")
	b.WriteString(a.imageInput.View())
	return b.String()
}

// Run starts the TUI application.
func Run(opts RunOpts) error {
	app := NewApp(opts)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
