package update

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"runtime"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
)

var githubAPIURL = "https://api.github.com/repos/ordinator-tools/ordinator/releases/latest"

const requestTimeout = 10 * time.Second

// Release is the subset of a GitHub release response this checker uses.
type Release struct {
	TagName     string    `json:"tag_name"`
	Name        string    `json:"name"`
	Body        string    `json:"body"`
	PublishedAt time.Time `json:"published_at"`
	HTMLURL     string    `json:"html_url"`
	Assets      []Asset   `json:"assets"`
}

// Asset is one downloadable file attached to a release.
type Asset struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
	Size               int64  `json:"size"`
}

// Info describes the result of a version comparison against the
// latest published release.
type Info struct {
	Available      bool
	CurrentVersion string
	LatestVersion  string
	ReleaseURL     string
	ReleaseNotes   string
	PublishedAt    time.Time
	DownloadURL    string
	AssetSize      int64
}

// Checker compares the running binary's version against GitHub releases.
type Checker struct {
	currentVersion string
	httpClient     *http.Client
}

// NewChecker returns a Checker for currentVersion.
func NewChecker(currentVersion string) *Checker {
	return &Checker{
		currentVersion: currentVersion,
		httpClient:     &http.Client{Timeout: requestTimeout},
	}
}

// CheckForUpdate fetches the latest release and compares it to currentVersion.
func (c *Checker) CheckForUpdate(ctx context.Context) (*Info, error) {
	if c.currentVersion == "dev" || strings.Contains(c.currentVersion, "dev") {
		return &Info{Available: false, CurrentVersion: c.currentVersion, LatestVersion: c.currentVersion}, nil
	}

	release, err := c.fetchLatestRelease(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest release: %w", err)
	}

	current, err := semver.NewVersion(c.currentVersion)
	if err != nil {
		return &Info{
			Available:      true,
			CurrentVersion: c.currentVersion,
			LatestVersion:  release.TagName,
			ReleaseURL:     release.HTMLURL,
			ReleaseNotes:   release.Body,
			PublishedAt:    release.PublishedAt,
			DownloadURL:    c.downloadURL(release),
		}, nil
	}

	latest, err := semver.NewVersion(release.TagName)
	if err != nil {
		return nil, fmt.Errorf("failed to parse latest version %s: %w", release.TagName, err)
	}

	downloadURL := c.downloadURL(release)
	var assetSize int64
	for _, asset := range release.Assets {
		if asset.BrowserDownloadURL == downloadURL {
			assetSize = asset.Size
			break
		}
	}

	return &Info{
		Available:      latest.GreaterThan(current),
		CurrentVersion: c.currentVersion,
		LatestVersion:  release.TagName,
		ReleaseURL:     release.HTMLURL,
		ReleaseNotes:   release.Body,
		PublishedAt:    release.PublishedAt,
		DownloadURL:    downloadURL,
		AssetSize:      assetSize,
	}, nil
}

func (c *Checker) fetchLatestRelease(ctx context.Context) (*Release, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, githubAPIURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", "ordinatorctl-updater")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("GitHub API returned %d: %s", resp.StatusCode, string(body))
	}

	var release Release
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &release, nil
}

func (c *Checker) downloadURL(release *Release) string {
	platform := fmt.Sprintf("ordinatorctl-%s-%s", runtime.GOOS, runtime.GOARCH)
	if runtime.GOOS == "windows" {
		platform += ".exe"
	}
	for _, asset := range release.Assets {
		if asset.Name == platform {
			return asset.BrowserDownloadURL
		}
	}
	return release.HTMLURL
}

// IsUpdateAvailable is a convenience wrapper over CheckForUpdate that
// collapses any error to false.
func (c *Checker) IsUpdateAvailable(ctx context.Context) bool {
	info, err := c.CheckForUpdate(ctx)
	return err == nil && info.Available
}

// FormatMessage renders a multi-line update notice.
func FormatMessage(info *Info) string {
	if !info.Available {
		return fmt.Sprintf("You are running the latest version (%s)", info.CurrentVersion)
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "A new version of ordinatorctl is available: %s -> %s\n", info.CurrentVersion, info.LatestVersion)
	fmt.Fprintf(&msg, "Released: %s\n", info.PublishedAt.Format("2006-01-02"))
	if info.DownloadURL != "" && !strings.Contains(info.DownloadURL, "ordinator-tools/ordinator/releases") {
		fmt.Fprintf(&msg, "\nDownload: %s\n", info.DownloadURL)
	} else {
		fmt.Fprintf(&msg, "\nView release: %s\n", info.ReleaseURL)
	}
	return msg.String()
}
