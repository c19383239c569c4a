package github

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

	"readme-generator/internal/model"
)

const (
	DefaultBaseURL   = "https://api.github.com"
	defaultUserAgent = "readme-generator/0.1"

	// reposPerPage caps the listing at a single page; repositories past the
	// first hundred are not counted.
	reposPerPage = 100
)

// ErrUserNotFound is returned when the API answers 404 for a username.
var ErrUserNotFound = errors.New("github: user not found")

// Client reads public profile data from the GitHub REST API.
type Client struct {
	client  *http.Client
	baseURL string
	token   string
}

// New returns a client for baseURL. An empty baseURL uses the public API and
// an empty token sends unauthenticated (rate limited) requests.
func New(baseURL, token string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
	}
}

type githubUser struct {
	Login       string `json:"login"`
	PublicRepos int    `json:"public_repos"`
}

type githubRepo struct {
	Name     string `json:"name"`
	Language string `json:"language"`
}

// PublicRepos returns the public repository count of username.
func (c *Client) PublicRepos(ctx context.Context, username string) (int, error) {
	endpoint := fmt.Sprintf("%s/users/%s", c.baseURL, url.PathEscape(username))

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return 0, fmt.Errorf("github: fetch user: %w", err)
	}
	if err := model.ValidateGitHubUser(body); err != nil {
		return 0, fmt.Errorf("github: fetch user: %w", err)
	}

	var u githubUser
	if err := json.Unmarshal(body, &u); err != nil {
		return 0, fmt.Errorf("github: decode user response: %w", err)
	}
	return u.PublicRepos, nil
}

// RepoLanguages returns the primary language of each of the first hundred
// repositories of username, in API order. Repositories without a detected
// language yield "".
func (c *Client) RepoLanguages(ctx context.Context, username string) ([]string, error) {
	endpoint := fmt.Sprintf("%s/users/%s/repos?per_page=%d", c.baseURL, url.PathEscape(username), reposPerPage)

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("github: fetch repos: %w", err)
	}
	if err := model.ValidateGitHubRepos(body); err != nil {
		return nil, fmt.Errorf("github: fetch repos: %w", err)
	}

	var repos []githubRepo
	if err := json.Unmarshal(body, &repos); err != nil {
		return nil, fmt.Errorf("github: decode repos response: %w", err)
	}

	langs := make([]string, 0, len(repos))
	for _, r := range repos {
		langs = append(langs, r.Language)
	}
	return langs, nil
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	c.applyHeaders(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrUserNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, endpoint)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}

func (c *Client) applyHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", defaultUserAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}
