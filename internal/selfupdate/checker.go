// Package selfupdate checks GitHub releases for a newer build and replaces
// the running binary with it.
package selfupdate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"runtime"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

const (
	defaultOwner           = "endevo"
	defaultRepo            = "legacyready"
	defaultBaseURL         = "https://api.github.com"
	defaultDownloadBaseURL = "https://github.com"
	defaultTimeout         = 10 * time.Second

	// devVersion is reported by builds without -ldflags version info.
	devVersion = "(devel)"
)

// Checker talks to the GitHub releases API.
type Checker struct {
	client          *http.Client
	baseURL         string
	downloadBaseURL string
	owner           string
	repo            string
	goos            string
	goarch          string
	execPath        func() (string, error)
}

// Option configures a Checker.
type Option func(*Checker)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Checker) { c.client.Timeout = d }
}

// WithBaseURL overrides the GitHub API base URL.
func WithBaseURL(url string) Option {
	return func(c *Checker) { c.baseURL = url }
}

// WithDownloadBaseURL overrides the base URL release assets are fetched from.
func WithDownloadBaseURL(url string) Option {
	return func(c *Checker) { c.downloadBaseURL = url }
}

// WithRepo points the checker at another GitHub repository.
func WithRepo(owner, repo string) Option {
	return func(c *Checker) {
		c.owner = owner
		c.repo = repo
	}
}

func withExecPath(fn func() (string, error)) Option {
	return func(c *Checker) { c.execPath = fn }
}

func withPlatform(goos, goarch string) Option {
	return func(c *Checker) {
		c.goos = goos
		c.goarch = goarch
	}
}

// NewChecker creates a Checker for the project's release repository.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		client:          &http.Client{Timeout: defaultTimeout},
		baseURL:         defaultBaseURL,
		downloadBaseURL: defaultDownloadBaseURL,
		owner:           defaultOwner,
		repo:            defaultRepo,
		goos:            runtime.GOOS,
		goarch:          runtime.GOARCH,
		execPath:        os.Executable,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CheckInput is the running version.
type CheckInput struct {
	Version string
}

// CheckResult describes the latest published release.
type CheckResult struct {
	UpdateAvailable bool
	CurrentVersion  string
	LatestVersion   string
	ReleaseURL      string
}

type release struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// Check fetches the latest release and compares it with the running
// version. Development builds never report an update.
func (c *Checker) Check(ctx context.Context, input *CheckInput) (*CheckResult, error) {
	current := normalize(input.Version)
	if input.Version == devVersion || !semver.IsValid(current) {
		return &CheckResult{CurrentVersion: input.Version}, nil
	}

	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest", strings.TrimRight(c.baseURL, "/"), c.owner, c.repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	var rel release
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return nil, fmt.Errorf("decode release: %w", err)
	}

	latest := normalize(rel.TagName)
	if !semver.IsValid(latest) {
		return nil, fmt.Errorf("release tag %q is not a semantic version", rel.TagName)
	}

	return &CheckResult{
		UpdateAvailable: semver.Compare(latest, current) > 0,
		CurrentVersion:  input.Version,
		LatestVersion:   rel.TagName,
		ReleaseURL:      rel.HTMLURL,
	}, nil
}

// normalize adds the "v" prefix semver expects.
func normalize(v string) string {
	v = strings.TrimSpace(v)
	if v != "" && !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}
