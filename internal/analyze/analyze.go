// Package analyze runs the scoring pipeline: filtered titles go through
// the keyword and embedding classifiers, get aggregated into a nutrient
// distribution, reweighted by the survey context, and diagnosed.
package analyze

import (
	"context"
	"errors"

	"github.com/nyangnyang-maru/youtube-diet-project/internal/classify"
	"github.com/nyangnyang-maru/youtube-diet-project/internal/diagnose"
	"github.com/nyangnyang-maru/youtube-diet-project/internal/logging"
	"github.com/nyangnyang-maru/youtube-diet-project/internal/nutrient"
	"github.com/nyangnyang-maru/youtube-diet-project/internal/survey"
	"github.com/nyangnyang-maru/youtube-diet-project/internal/titles"
)

// ErrNoTitles is the pipeline's only fatal error: nothing survived the
// title filter, so there is nothing to analyze.
var ErrNoTitles = errors.New("no usable titles to analyze")

// SemanticClassifier places titles the keyword lists cannot. An empty
// category means "could not classify, skip".
type SemanticClassifier interface {
	Classify(ctx context.Context, title string) nutrient.Category
}

// Shorts videos count for less: a 40-second clip is a much smaller bite
// than a full video.
const shortsWeight = 0.4

// Result is the full outcome of one analysis run.
type Result struct {
	Scanned         int // titles after filtering
	ShortsCount     int
	Scores          nutrient.Percent // reweighted, final
	BaseScores      nutrient.Percent // before context reweighting
	BalanceScore    int
	Diagnosis       string
	Recommendations []string
}

// Run executes the whole pipeline for one batch of raw titles. The
// semantic classifier may be nil when no embedding service is
// configured; keyword-matched titles still score and the rest are
// silently skipped.
func Run(ctx context.Context, raw []string, sctx survey.Context, semantic SemanticClassifier) (*Result, error) {
	cleaned := titles.Filter(titles.Dedup(raw))
	if len(cleaned) == 0 {
		return nil, ErrNoTitles
	}

	scores, shortsCount := Aggregate(ctx, cleaned, sctx.IsPremium, semantic)

	base := scores.Normalize()
	weighted := base.Reweight(sctx)

	res := &Result{
		Scanned:         len(cleaned),
		ShortsCount:     shortsCount,
		Scores:          weighted,
		BaseScores:      base,
		BalanceScore:    weighted.BalanceScore(),
		Diagnosis:       diagnose.Diagnose(weighted, sctx),
		Recommendations: diagnose.Recommend(weighted, sctx),
	}

	logging.L().Info("analysis complete",
		"scanned", res.Scanned,
		"shorts", res.ShortsCount,
		"balance", res.BalanceScore,
		"diagnosis", res.Diagnosis)
	return res, nil
}

// Aggregate accumulates weighted category counts across titles. The
// keyword classifier short-circuits; only unmatched titles cost an
// embedding call. A title both classifiers miss contributes nothing but
// still counts as processed.
func Aggregate(ctx context.Context, cleaned []string, isPremium bool, semantic SemanticClassifier) (nutrient.Scores, int) {
	scores := nutrient.NewScores()
	shortsCount := 0

	for _, title := range cleaned {
		weight := 1.0
		if classify.IsShorts(title) {
			weight = shortsWeight
			shortsCount++
		}

		if cat, confidence := classify.Keyword(title, isPremium); cat != "" {
			scores.Add(cat, weight*confidence)
			continue
		}

		if semantic == nil {
			continue
		}
		if cat := semantic.Classify(ctx, title); cat != "" {
			scores.Add(cat, weight)
		} else {
			logging.L().Debug("title skipped by both classifiers", "title", title)
		}
	}

	return scores, shortsCount
}
