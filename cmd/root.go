package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nyangnyang-maru/youtube-diet-project/internal/logging"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var flagConfig string

var rootCmd = &cobra.Command{
	Use:   "ytdiet",
	Short: "유튜브 시청 기록으로 디지털 식단을 진단하는 TUI",
	Long: `ytdiet analyzes your YouTube watch history like a nutritionist reads a
food diary: titles are classified into four content nutrients, weighted
by your viewing habits, and turned into a diagnosis with a prescription.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(version)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Close()
	},
	RunE: runWizard,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(pruneCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ytdiet %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}
