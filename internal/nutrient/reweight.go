package nutrient

import "github.com/nyangnyang-maru/youtube-diet-project/internal/survey"

// timeWeights adjusts each nutrient by the user's main viewing slot.
// Late-night viewers lean on rest content, meal-time viewers on variety
// shows, so the raw distribution gets nudged before diagnosis.
var timeWeights = map[survey.WatchTime]map[Category]float64{
	survey.BeforeSleep: {Carbs: 0.9, Protein: 0.8, Fats: 1.3, Vitamins: 1.0},
	survey.DuringMeal:  {Carbs: 1.3, Protein: 0.7, Fats: 0.9, Vitamins: 1.1},
	survey.Commuting:   {Carbs: 1.2, Protein: 1.0, Fats: 0.8, Vitamins: 1.0},
	survey.WorkStudy:   {Carbs: 0.6, Protein: 1.1, Fats: 1.3, Vitamins: 1.0},
}

// Reweight applies the survey-derived multipliers to a normalized
// distribution and renormalizes. An unknown watch-time bucket leaves the
// time weights at 1.0; a zero total skips renormalization entirely.
func (p Percent) Reweight(ctx survey.Context) Percent {
	weighted := make(map[Category]float64, 4)
	tw := timeWeights[ctx.WatchTime]
	for _, c := range AllCategories() {
		w := 1.0
		if tw != nil {
			if v, ok := tw[c]; ok {
				w = v
			}
		}
		weighted[c] = float64(p[c]) * w
	}

	// Heavy shorts viewers skew toward quick fun and away from
	// long-form learning.
	if ctx.ShortsHeavy {
		weighted[Carbs] *= 1.2
		weighted[Protein] *= 0.9
	}

	// Premium background playback inflates music/rest counts.
	if ctx.IsPremium {
		weighted[Fats] *= 0.9
	}

	var total float64
	for _, c := range AllCategories() {
		total += weighted[c]
	}

	out := make(Percent, 4)
	for _, c := range AllCategories() {
		if total == 0 {
			out[c] = int(weighted[c])
			continue
		}
		out[c] = int(weighted[c] / total * 100)
	}
	return out
}
