package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeConfig(t, `{
		"college_tier": 2,
		"year_of_study": 3,
		"hours_per_week": 12,
		"github_user": "octo",
		"leetcode_user": "octo",
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.CollegeTier)
	assert.Equal(t, 3, cfg.YearOfStudy)
	assert.Equal(t, 12, cfg.HoursPerWeek)
	assert.Equal(t, "octo", cfg.GitHubUser)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfig(t, `{not json`)

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"empty config passes", Config{}, ""},
		{"valid ranges", Config{CollegeTier: 1, YearOfStudy: 5, HoursPerWeek: 40}, ""},
		{"tier too high", Config{CollegeTier: 4}, "college_tier"},
		{"year too high", Config{YearOfStudy: 6}, "year_of_study"},
		{"negative hours", Config{HoursPerWeek: -1}, "hours_per_week"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{GitHubUser: "explicit", CollegeTier: 1}
	defaults := Config{
		GitHubUser:   "default-gh",
		LeetCodeUser: "default-lc",
		CollegeTier:  3,
		YearOfStudy:  2,
		APIKey:       "key-from-file",
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "explicit", merged.GitHubUser)
	assert.Equal(t, "default-lc", merged.LeetCodeUser)
	assert.Equal(t, 1, merged.CollegeTier)
	assert.Equal(t, 2, merged.YearOfStudy)
	assert.Equal(t, "key-from-file", merged.APIKey)
}
