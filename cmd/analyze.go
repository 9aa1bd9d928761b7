package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/nyangnyang-maru/youtube-diet-project/internal/ai"
	"github.com/nyangnyang-maru/youtube-diet-project/internal/analyze"
	"github.com/nyangnyang-maru/youtube-diet-project/internal/config"
	"github.com/nyangnyang-maru/youtube-diet-project/internal/history"
	"github.com/nyangnyang-maru/youtube-diet-project/internal/logging"
	"github.com/nyangnyang-maru/youtube-diet-project/internal/nutrient"
	"github.com/nyangnyang-maru/youtube-diet-project/internal/report"
	"github.com/nyangnyang-maru/youtube-diet-project/internal/survey"
	"github.com/nyangnyang-maru/youtube-diet-project/internal/youtube"
)

var (
	flagTitlesFile string
	flagWatchTime  string
	flagHours      int
	flagPremium    bool
	flagShorts     bool
	flagOut        string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run a diagnosis without the interactive wizard",
	Long: `Analyze a list of video titles (one per line) and print the diagnosis
report. Useful for scripting or piping in an exported watch history.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&flagTitlesFile, "file", "f", "-", "titles file, one per line (- for stdin)")
	analyzeCmd.Flags().StringVar(&flagWatchTime, "watch-time", "", "usual watch time: sleep, meal, commute, work")
	analyzeCmd.Flags().IntVar(&flagHours, "hours", 2, "average daily watch hours")
	analyzeCmd.Flags().BoolVar(&flagPremium, "premium", false, "YouTube Premium subscriber")
	analyzeCmd.Flags().BoolVar(&flagShorts, "shorts", false, "mostly watches Shorts")
	analyzeCmd.Flags().StringVarP(&flagOut, "out", "o", "", "save the report to a directory instead of printing")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	titles, err := readTitles(flagTitlesFile)
	if err != nil {
		return err
	}

	sctx, err := buildSurveyContext()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	res, err := analyze.Run(ctx, titles, sctx, buildSemantic(cfg))
	if err != nil {
		return err
	}

	doctor := buildDoctor(cfg)
	prescription := prescribe(ctx, doctor, res)

	videos, verr := youtube.Search(ctx, cfg.YouTubeKey(), prescription.SearchQuery)
	if verr != nil || len(videos) == 0 {
		videos = youtube.Fallback(ctx, res.Scores.Lacking())
	}

	data := report.Data{
		Date:            time.Now(),
		Diagnosis:       res.Diagnosis,
		BalanceScore:    res.BalanceScore,
		Scores:          res.Scores,
		SummaryText:     prescription.SummaryText,
		Keyword:         prescription.Keyword,
		SearchQuery:     prescription.SearchQuery,
		Videos:          videos,
		Recommendations: res.Recommendations,
	}

	if cfg.HistoryEnabled() {
		if store, herr := history.Open(config.HistoryPath()); herr == nil {
			if _, aerr := store.Add(history.Entry{
				RunAt:        time.Now(),
				Diagnosis:    res.Diagnosis,
				BalanceScore: res.BalanceScore,
				Carbs:        res.Scores[nutrient.Carbs],
				Protein:      res.Scores[nutrient.Protein],
				Fats:         res.Scores[nutrient.Fats],
				Vitamins:     res.Scores[nutrient.Vitamins],
				Keyword:      prescription.Keyword,
			}); aerr != nil {
				logging.L().Warn("recording diagnosis failed", "error", aerr)
			}
			store.Close()
		}
	}

	if flagOut != "" {
		path, err := report.Save(flagOut, data)
		if err != nil {
			return err
		}
		fmt.Printf("Report saved to %s\n", path)
		return nil
	}

	fmt.Print(report.Render(data))
	return nil
}

// prescribe asks the doctor for advice, or falls back to a generic
// prescription so the report always has a search keyword.
func prescribe(ctx context.Context, doctor ai.Doctor, res *analyze.Result) ai.Prescription {
	if doctor != nil {
		p, err := doctor.Prescribe(ctx, res.Diagnosis, res.Scores.Dominant(), res.Scores.Lacking())
		if err == nil {
			return p
		}
		logging.L().Warn("prescription failed", "error", err)
	}
	return ai.Prescription{
		SummaryText: "진단 내용을 불러오지 못했습니다.",
		Keyword:     "디지털 밸런스",
		SearchQuery: "디지털 밸런스 추천 영상",
	}
}

func readTitles(path string) ([]string, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening titles file: %w", err)
		}
		defer f.Close()
		r = f
	}

	var titles []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			titles = append(titles, line)
		}
	}
	return titles, scanner.Err()
}

func buildSurveyContext() (survey.Context, error) {
	sctx := survey.Default()
	sctx.DailyHours = fmt.Sprintf("%d", flagHours)
	sctx.IsPremium = flagPremium
	sctx.ShortsHeavy = flagShorts

	if flagWatchTime != "" {
		wt, err := parseWatchTime(flagWatchTime)
		if err != nil {
			return survey.Context{}, err
		}
		sctx.WatchTime = wt
	}
	return sctx, nil
}

func parseWatchTime(s string) (survey.WatchTime, error) {
	switch strings.ToLower(s) {
	case "sleep":
		return survey.BeforeSleep, nil
	case "meal":
		return survey.DuringMeal, nil
	case "commute":
		return survey.Commuting, nil
	case "work":
		return survey.WorkStudy, nil
	default:
		return "", fmt.Errorf("unknown watch time %q (valid: sleep, meal, commute, work)", s)
	}
}
