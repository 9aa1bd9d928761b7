// Package update performs a best-effort check for a newer release.
// Every failure path returns nil; the wizard shows nothing rather
// than an error for something this optional.
package update

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/nyangnyang-maru/youtube-diet-project/internal/logging"
)

const releaseURL = "https://api.github.com/repos/nyangnyang-maru/youtube-diet-project/releases/latest"

// Result reports a newer published version.
type Result struct {
	LatestVersion string
	ReleaseURL    string
}

type ghRelease struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// Check queries the GitHub Releases API. Development builds never
// report an update.
func Check(ctx context.Context, currentVersion string) *Result {
	if currentVersion == "" || currentVersion == "dev" {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, releaseURL, nil)
	if err != nil {
		return nil
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		logging.L().Debug("release check failed", "error", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logging.L().Debug("release check failed", "status", resp.StatusCode)
		return nil
	}

	var release ghRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil
	}

	latest := strings.TrimPrefix(release.TagName, "v")
	if latest == "" || latest == strings.TrimPrefix(currentVersion, "v") {
		return nil
	}

	return &Result{LatestVersion: latest, ReleaseURL: release.HTMLURL}
}
