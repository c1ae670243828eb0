package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/figureit/career-engine/internal/types"
)

// DefaultGitHubBaseURL is the public GitHub REST API root.
const DefaultGitHubBaseURL = "https://api.github.com"

// GitHubFetcher pulls public profile and repository stats.
type GitHubFetcher struct {
	client  *http.Client
	baseURL string
	logger  *zap.Logger
}

// NewGitHubFetcher builds a fetcher against the public API. A nil client gets
// the default timeout-bounded one; baseURL is overridable for tests.
func NewGitHubFetcher(client *http.Client, baseURL string, logger *zap.Logger) *GitHubFetcher {
	if client == nil {
		client = newHTTPClient()
	}
	if baseURL == "" {
		baseURL = DefaultGitHubBaseURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GitHubFetcher{client: client, baseURL: strings.TrimRight(baseURL, "/"), logger: logger}
}

type githubUser struct {
	Login       string `json:"login"`
	PublicRepos int    `json:"public_repos"`
	CreatedAt   string `json:"created_at"`
}

type githubRepo struct {
	Stars    int    `json:"stargazers_count"`
	Forks    int    `json:"forks_count"`
	Language string `json:"language"`
}

// Fetch returns the user's activity record. The record has Valid=true only
// when both the user and repo listings came back clean.
func (f *GitHubFetcher) Fetch(ctx context.Context, username string) (types.GitHubRecord, error) {
	var record types.GitHubRecord

	userURL := fmt.Sprintf("%s/users/%s", f.baseURL, username)
	var user githubUser
	if err := f.getJSON(ctx, userURL, &user); err != nil {
		return record, err
	}

	reposURL := fmt.Sprintf("%s/users/%s/repos?per_page=100&sort=updated", f.baseURL, username)
	var repos []githubRepo
	if err := f.getJSON(ctx, reposURL, &repos); err != nil {
		return record, err
	}

	record = types.GitHubRecord{
		Valid:       true,
		Username:    username,
		Repos:       user.PublicRepos,
		TopLanguage: topLanguage(repos),
	}
	for _, repo := range repos {
		record.Stars += repo.Stars
		record.Forks += repo.Forks
	}
	if len(user.CreatedAt) >= 10 {
		record.AccountCreated = user.CreatedAt[:10]
	}

	f.logger.Debug("fetched github record",
		zap.String("username", username),
		zap.Int("repos", record.Repos),
		zap.Int("stars", record.Stars))
	return record, nil
}

func (f *GitHubFetcher) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &Error{URL: url, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", DefaultUserAgent)
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := f.client.Do(req)
	if err != nil {
		return &Error{URL: url, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return &Error{URL: url, Message: fmt.Sprintf("unexpected status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{URL: url, Message: "failed to read response body", Cause: err}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &Error{URL: url, Message: "failed to parse response", Cause: err}
	}
	return nil
}

// topLanguage picks the most common primary language across repos, mapped to
// the names the evidence analyzer expects.
func topLanguage(repos []githubRepo) string {
	counts := make(map[string]int)
	for _, repo := range repos {
		if repo.Language == "" {
			continue
		}
		counts[cleanLanguage(repo.Language)]++
	}

	best := ""
	bestCount := 0
	for lang, count := range counts {
		if count > bestCount {
			best, bestCount = lang, count
		}
	}
	return best
}

// cleanLanguage collapses GitHub's language labels into the coarse names the
// rest of the engine reasons about.
func cleanLanguage(lang string) string {
	switch strings.ToLower(lang) {
	case "jupyter notebook":
		return "Python"
	case "html", "css":
		return "Web Basics"
	case "c++":
		return "C++"
	default:
		return lang
	}
}
