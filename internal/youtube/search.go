package youtube

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/option"
	youtubeapi "google.golang.org/api/youtube/v3"

	"github.com/nyangnyang-maru/youtube-diet-project/internal/logging"
)

// maxResults is how many prescription videos the diagnosis shows.
const maxResults = 3

// Video is one recommended video on the prescription screen.
type Video struct {
	Title     string
	Thumbnail string
	URL       string
	Channel   string
}

// Search looks up prescription videos for the given query. Results are
// scoped to the Korean region since the whole diagnosis is written in
// Korean.
func Search(ctx context.Context, apiKey, query string) ([]Video, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}
	if apiKey == "" {
		return nil, fmt.Errorf("youtube API key not configured")
	}

	svc, err := youtubeapi.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating youtube service: %w", err)
	}

	resp, err := svc.Search.List([]string{"snippet"}).
		Q(query).
		MaxResults(maxResults).
		Type("video").
		RegionCode("KR").
		RelevanceLanguage("ko").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("youtube search %q: %w", query, err)
	}

	videos := make([]Video, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Id == nil || item.Id.VideoId == "" || item.Snippet == nil {
			continue
		}
		videos = append(videos, Video{
			Title:     item.Snippet.Title,
			Thumbnail: pickThumbnail(item.Snippet.Thumbnails),
			URL:       videoURL(item.Id.VideoId),
			Channel:   item.Snippet.ChannelTitle,
		})
	}
	logging.L().Debug("youtube search", "query", query, "results", len(videos))
	return videos, nil
}

func videoURL(id string) string {
	return "https://www.youtube.com/watch?v=" + id
}

func pickThumbnail(t *youtubeapi.ThumbnailDetails) string {
	if t == nil {
		return ""
	}
	switch {
	case t.High != nil:
		return t.High.Url
	case t.Medium != nil:
		return t.Medium.Url
	case t.Default != nil:
		return t.Default.Url
	}
	return ""
}
