package youtube

import (
	"context"

	"github.com/mmcdole/gofeed"

	"github.com/nyangnyang-maru/youtube-diet-project/internal/logging"
	"github.com/nyangnyang-maru/youtube-diet-project/internal/nutrient"
)

// fallbackFeeds maps each nutrient to curated channel RSS feeds used
// when the Data API is unavailable or returns nothing. Ordered by
// preference, first feed that answers wins.
var fallbackFeeds = map[nutrient.Category][]string{
	nutrient.Carbs: {
		"https://www.youtube.com/feeds/videos.xml?channel_id=UCUj6rrhMTR9pipbAWBAMvUQ", // 침착맨
		"https://www.youtube.com/feeds/videos.xml?channel_id=UCu9BCtGIEr73LXZsKmoujKw", // 피식대학
	},
	nutrient.Protein: {
		"https://www.youtube.com/feeds/videos.xml?channel_id=UCsJ6RuBiTVWRX156FVbeaGg", // 슈카월드
		"https://www.youtube.com/feeds/videos.xml?channel_id=UCIUni4ScRp4mqPXsxy62L5w", // EBSCulture
	},
	nutrient.Fats: {
		"https://www.youtube.com/feeds/videos.xml?channel_id=UCDPk9MG2RexnOMGTD-YnSnA", // Nature Sounds
		"https://www.youtube.com/feeds/videos.xml?channel_id=UCyD59CI7beJDU493glZpxgA", // 때껄룩 playlist
	},
	nutrient.Vitamins: {
		"https://www.youtube.com/feeds/videos.xml?channel_id=UCNhofiqfw5nl-NeDJkXtPvw", // 빠니보틀 travel
		"https://www.youtube.com/feeds/videos.xml?channel_id=UCo9oCp0uRvIEnGvUJsGFJMg", // 셜록현준
	},
}

// Fallback returns recent uploads from curated channels for the lacking
// nutrient. Best effort, returns an empty slice when every feed fails.
func Fallback(ctx context.Context, lacking nutrient.Category) []Video {
	parser := gofeed.NewParser()

	for _, url := range fallbackFeeds[lacking] {
		feed, err := parser.ParseURLWithContext(url, ctx)
		if err != nil {
			logging.L().Debug("fallback feed failed", "url", url, "error", err)
			continue
		}

		videos := make([]Video, 0, maxResults)
		for _, item := range feed.Items {
			if item.Title == "" || item.Link == "" {
				continue
			}
			videos = append(videos, Video{
				Title:   item.Title,
				URL:     item.Link,
				Channel: feed.Title,
			})
			if len(videos) == maxResults {
				break
			}
		}
		if len(videos) > 0 {
			return videos
		}
	}
	return []Video{}
}
