package projects

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

const (
	DefaultBaseURL = "https://api.github.com"
	perPage        = 50
)

// Config holds gallery settings, parsed with caarlos0/env.
type Config struct {
	User     string        `env:"GITHUB_USER"`
	Token    string        `env:"GITHUB_TOKEN"`
	BaseURL  string        `env:"GITHUB_API_URL" envDefault:"https://api.github.com"`
	Refresh  string        `env:"PROJECTS_REFRESH" envDefault:"*/30 * * * *"`
	CacheTTL time.Duration `env:"PROJECTS_CACHE_TTL" envDefault:"1h"`
	Timeout  time.Duration `env:"PROJECTS_TIMEOUT" envDefault:"10s"`
}

// Client lists a user's public repositories.
type Client struct {
	http    *http.Client
	baseURL string
	user    string
}

// NewClient creates a Client. With a token, requests are authenticated
// through an oauth2 static token source, which lifts GitHub's
// unauthenticated rate limit.
func NewClient(cfg Config, base *http.Client) (*Client, error) {
	if cfg.User == "" {
		return nil, ErrNoUser
	}
	if base == nil {
		base = &http.Client{Timeout: cfg.Timeout}
	}

	httpClient := base
	if cfg.Token != "" {
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
		httpClient = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token}))
		httpClient.Timeout = base.Timeout
	}

	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{http: httpClient, baseURL: baseURL, user: cfg.User}, nil
}

// User returns the GitHub login the client lists.
func (c *Client) User() string {
	return c.user
}

// List returns the user's repositories, most recently updated first.
// GitHub Pages sites and the profile README repo are left out.
func (c *Client) List(ctx context.Context) ([]Repo, error) {
	u := fmt.Sprintf("%s/users/%s/repos?sort=updated&per_page=%d", c.baseURL, url.PathEscape(c.user), perPage)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, errors.Join(ErrFetchFailed, err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Join(ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return nil, errors.Join(ErrRequestFailed, fmt.Errorf("status=%d", resp.StatusCode))
	}

	var repos []Repo
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		return nil, errors.Join(ErrDecodeFailed, err)
	}

	out := repos[:0]
	for _, r := range repos {
		if strings.Contains(r.Name, ".github.io") || strings.EqualFold(r.Name, c.user) {
			continue
		}
		if r.Topics == nil {
			r.Topics = []string{}
		}
		out = append(out, r)
	}
	return out, nil
}
