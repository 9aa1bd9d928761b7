package embed

import (
	"context"

	"github.com/nyangnyang-maru/youtube-diet-project/internal/nutrient"
)

// anchorTexts are the fixed reference descriptions whose embeddings act
// as each nutrient's semantic centroid.
var anchorTexts = map[nutrient.Category]string{
	nutrient.Carbs:    "funny comedy entertainment game show prank variety short dopamine",
	nutrient.Protein:  "education knowledge science history news documentary learning philosophy lecture",
	nutrient.Fats:     "relaxation healing music nature asmr meditation sleep comfort peace vlog",
	nutrient.Vitamins: "art culture travel creativity diversity new hobby perspective global",
}

// Classifier assigns titles to the nutrient whose anchor embedding is
// most similar. Anchors are computed once per analysis run.
type Classifier struct {
	embedder Embedder
	anchors  map[nutrient.Category][]float32
}

// NewClassifier embeds the four anchors and returns a classifier ready
// for titles. Each anchor costs one service call; a failed anchor is
// replaced by a zero vector, which the similarity comparison skips, so
// that category simply becomes unselectable for this run.
func NewClassifier(ctx context.Context, embedder Embedder) *Classifier {
	anchors := make(map[nutrient.Category][]float32, 4)
	for _, cat := range nutrient.AllCategories() {
		vec, err := embedder.Embed(ctx, anchorTexts[cat])
		if err != nil || len(vec) == 0 {
			vec = make([]float32, Dimensions)
		}
		anchors[cat] = vec
	}
	return &Classifier{embedder: embedder, anchors: anchors}
}

// Classify embeds a title and returns the nutrient with the highest
// cosine similarity. Ties resolve in canonical category order. Any
// service error means "could not classify": the empty category is
// returned and the caller skips the title.
func (c *Classifier) Classify(ctx context.Context, title string) nutrient.Category {
	vec, err := c.embedder.Embed(ctx, title)
	if err != nil || len(vec) == 0 || isZero(vec) {
		return ""
	}

	var best nutrient.Category
	maxSim := float32(-1.0)
	for _, cat := range nutrient.AllCategories() {
		anchor := c.anchors[cat]
		if isZero(anchor) {
			continue
		}
		if sim := CosineSimilarity(vec, anchor); sim > maxSim {
			maxSim = sim
			best = cat
		}
	}
	return best
}
