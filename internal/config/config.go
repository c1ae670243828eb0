// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Student profile
	CollegeTier  int    `json:"college_tier,omitempty"`   // 1 (top) to 3
	YearOfStudy  int    `json:"year_of_study,omitempty"`  // 1 to 5
	HoursPerWeek int    `json:"hours_per_week,omitempty"` // study time available
	Interests    string `json:"interests,omitempty"`      // free text about what they enjoy

	// Linked accounts
	GitHubUser   string `json:"github_user,omitempty"`
	LeetCodeUser string `json:"leetcode_user,omitempty"`

	// Endpoints, overridable for self-hosted mirrors
	GitHubBaseURL   string `json:"github_base_url,omitempty"`
	LeetCodeBaseURL string `json:"leetcode_base_url,omitempty"`

	// Behavior
	APIKey   string `json:"api_key,omitempty"`   // Gemini API key
	Verbose  bool   `json:"verbose,omitempty"`   // Print detailed debug information
	JSONLogs bool   `json:"json_logs,omitempty"` // Emit logs as JSON instead of console lines
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values. Zero values mean
// "unset" and pass; the profile constructor enforces required fields later.
func (c *Config) Validate() error {
	if c.CollegeTier != 0 && (c.CollegeTier < 1 || c.CollegeTier > 3) {
		return fmt.Errorf("config error: 'college_tier' must be between 1 and 3")
	}
	if c.YearOfStudy != 0 && (c.YearOfStudy < 1 || c.YearOfStudy > 5) {
		return fmt.Errorf("config error: 'year_of_study' must be between 1 and 5")
	}
	if c.HoursPerWeek < 0 {
		return fmt.Errorf("config error: 'hours_per_week' must be non-negative")
	}
	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Interests == "" {
		result.Interests = defaults.Interests
	}
	if result.GitHubUser == "" {
		result.GitHubUser = defaults.GitHubUser
	}
	if result.LeetCodeUser == "" {
		result.LeetCodeUser = defaults.LeetCodeUser
	}
	if result.GitHubBaseURL == "" {
		result.GitHubBaseURL = defaults.GitHubBaseURL
	}
	if result.LeetCodeBaseURL == "" {
		result.LeetCodeBaseURL = defaults.LeetCodeBaseURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}

	// Int fields: use default if zero
	if result.CollegeTier == 0 {
		result.CollegeTier = defaults.CollegeTier
	}
	if result.YearOfStudy == 0 {
		result.YearOfStudy = defaults.YearOfStudy
	}
	if result.HoursPerWeek == 0 {
		result.HoursPerWeek = defaults.HoursPerWeek
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
