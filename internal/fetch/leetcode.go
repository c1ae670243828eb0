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

// DefaultLeetCodeBaseURL is the public alfa-leetcode-api instance root.
const DefaultLeetCodeBaseURL = "https://alfa-leetcode-api.onrender.com"

// LeetCodeFetcher pulls solved-problem counts from the community API.
type LeetCodeFetcher struct {
	client  *http.Client
	baseURL string
	logger  *zap.Logger
}

// NewLeetCodeFetcher builds a fetcher; nil client and empty baseURL take
// defaults, same contract as NewGitHubFetcher.
func NewLeetCodeFetcher(client *http.Client, baseURL string, logger *zap.Logger) *LeetCodeFetcher {
	if client == nil {
		client = newHTTPClient()
	}
	if baseURL == "" {
		baseURL = DefaultLeetCodeBaseURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LeetCodeFetcher{client: client, baseURL: strings.TrimRight(baseURL, "/"), logger: logger}
}

type leetcodeSolved struct {
	SolvedProblem *int `json:"solvedProblem"`
	EasySolved    int  `json:"easySolved"`
	MediumSolved  int  `json:"mediumSolved"`
	HardSolved    int  `json:"hardSolved"`
}

// Fetch returns the user's solved-problem record. A response missing the
// solvedProblem key means the user does not exist on the judge.
func (f *LeetCodeFetcher) Fetch(ctx context.Context, username string) (types.LeetCodeRecord, error) {
	var record types.LeetCodeRecord

	url := fmt.Sprintf("%s/%s/solved", f.baseURL, username)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return record, &Error{URL: url, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", DefaultUserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return record, &Error{URL: url, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return record, &Error{URL: url, Message: fmt.Sprintf("unexpected status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return record, &Error{URL: url, Message: "failed to read response body", Cause: err}
	}

	var solved leetcodeSolved
	if err := json.Unmarshal(body, &solved); err != nil {
		return record, &Error{URL: url, Message: "failed to parse response", Cause: err}
	}
	if solved.SolvedProblem == nil {
		return record, &Error{URL: url, Message: "user not found"}
	}

	record = types.LeetCodeRecord{
		Valid:       true,
		Username:    username,
		TotalSolved: *solved.SolvedProblem,
		Easy:        solved.EasySolved,
		Medium:      solved.MediumSolved,
		Hard:        solved.HardSolved,
	}

	f.logger.Debug("fetched leetcode record",
		zap.String("username", username),
		zap.Int("total_solved", record.TotalSolved))
	return record, nil
}
