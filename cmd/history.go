package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nyangnyang-maru/youtube-diet-project/internal/config"
	"github.com/nyangnyang-maru/youtube-diet-project/internal/history"
)

var (
	flagHistoryLimit int
	flagPruneOlder   string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past diagnoses",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := history.Open(config.HistoryPath())
		if err != nil {
			return fmt.Errorf("opening history: %w", err)
		}
		defer store.Close()

		entries, err := store.Recent(flagHistoryLimit)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("지난 진단 기록이 없습니다.")
			return nil
		}

		for _, e := range entries {
			line := fmt.Sprintf("%s  %s  %d점", e.RunAt.Format("2006-01-02 15:04"), e.Diagnosis, e.BalanceScore)
			if e.Keyword != "" {
				line += "  (처방: " + e.Keyword + ")"
			}
			fmt.Println(line)
		}
		return nil
	},
}

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete old diagnoses from history",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		olderThan := cfg.RetentionDuration()
		if flagPruneOlder != "" {
			olderThan, err = parseOlderThan(flagPruneOlder)
			if err != nil {
				return fmt.Errorf("invalid --older-than: %w", err)
			}
		}

		store, err := history.Open(config.HistoryPath())
		if err != nil {
			return fmt.Errorf("opening history: %w", err)
		}
		defer store.Close()

		n, err := store.Prune(olderThan)
		if err != nil {
			return err
		}
		fmt.Printf("Deleted %d diagnoses older than %s\n", n, olderThan)
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 20, "number of entries to show")
	pruneCmd.Flags().StringVar(&flagPruneOlder, "older-than", "", "age cutoff, e.g. 30d or 72h (default: config retention)")
}

// parseOlderThan accepts day syntax like "30d" on top of the usual
// time.ParseDuration formats.
func parseOlderThan(s string) (time.Duration, error) {
	if len(s) > 1 && s[len(s)-1] == 'd' {
		var days int
		if _, err := fmt.Sscanf(s, "%dd", &days); err == nil {
			return time.Duration(days) * 24 * time.Hour, nil
		}
	}
	return time.ParseDuration(s)
}
