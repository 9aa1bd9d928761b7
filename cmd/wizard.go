package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nyangnyang-maru/youtube-diet-project/internal/ai"
	"github.com/nyangnyang-maru/youtube-diet-project/internal/analyze"
	"github.com/nyangnyang-maru/youtube-diet-project/internal/config"
	"github.com/nyangnyang-maru/youtube-diet-project/internal/embed"
	"github.com/nyangnyang-maru/youtube-diet-project/internal/history"
	"github.com/nyangnyang-maru/youtube-diet-project/internal/logging"
	"github.com/nyangnyang-maru/youtube-diet-project/internal/tui"
	"github.com/nyangnyang-maru/youtube-diet-project/internal/update"
)

func runWizard(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	var store *history.Store
	if cfg.HistoryEnabled() {
		store, err = history.Open(config.HistoryPath())
		if err != nil {
			return fmt.Errorf("opening history: %w", err)
		}
		defer store.Close()

		// Auto-prune old diagnoses on startup
		store.Prune(cfg.RetentionDuration())
	}

	doctor := buildDoctor(cfg)
	semantic := buildSemantic(cfg)

	// Best-effort version check, skipped when the network is slow.
	updateVersion := ""
	updateCh := make(chan *update.Result, 1)
	go func() {
		updateCh <- update.Check(context.Background(), version)
	}()
	select {
	case r := <-updateCh:
		if r != nil {
			updateVersion = r.LatestVersion
		}
	case <-time.After(800 * time.Millisecond):
	}

	return tui.Run(tui.RunOpts{
		Cfg:           cfg,
		Store:         store,
		Doctor:        doctor,
		Semantic:      semantic,
		UpdateVersion: updateVersion,
	})
}

// buildDoctor wires the chat provider, nil when no key is configured.
func buildDoctor(cfg *config.Config) ai.Doctor {
	if !cfg.AIEnabled() {
		logging.L().Info("AI not configured, falling back to keyword-only analysis")
		return nil
	}
	doctor, err := ai.New(cfg.AI, cfg.AIKey())
	if err != nil {
		logging.L().Warn("AI setup failed", "error", err)
		return nil
	}
	return doctor
}

// buildSemantic prepares the embedding classifier. The anchors are
// embedded once up front so later title lookups are a single call.
func buildSemantic(cfg *config.Config) analyze.SemanticClassifier {
	key := cfg.EmbeddingKey()
	if key == "" {
		logging.L().Info("embeddings not configured, keyword matching only")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return embed.NewClassifier(ctx, embed.NewOpenAIEmbedder(key, cfg.EmbeddingModel()))
}
