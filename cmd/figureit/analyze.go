package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/figureit/career-engine/internal/config"
	"github.com/figureit/career-engine/internal/logger"
	"github.com/figureit/career-engine/internal/observability"
	"github.com/figureit/career-engine/internal/session"
	"github.com/figureit/career-engine/internal/types"
)

var analyzeCommand = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full analysis pipeline and print the decision",
	Long: `Builds the context lens from the student profile, extracts interest signals,
fetches GitHub and LeetCode activity concurrently, analyzes the evidence, and
produces the focus/park/drop decision.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runAnalyzeCmd,
}

var (
	analyzeConfigPath string
	analyzeTier       int
	analyzeYear       int
	analyzeHours      int
	analyzeInterests  string
	analyzeGitHub     string
	analyzeLeetCode   string
	analyzeAPIKey     string
	analyzeVerbose    bool
	analyzeJSONLogs   bool
	analyzeJSON       bool
)

func init() {
	analyzeCommand.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	analyzeCommand.Flags().IntVar(&analyzeTier, "tier", 0, "College tier: 1 (top) to 3")
	analyzeCommand.Flags().IntVar(&analyzeYear, "year", 0, "Year of study: 1 to 5")
	analyzeCommand.Flags().IntVar(&analyzeHours, "hours", 0, "Study hours available per week")
	analyzeCommand.Flags().StringVar(&analyzeInterests, "interests", "", "Free text about what the student enjoys working on")
	analyzeCommand.Flags().StringVar(&analyzeGitHub, "github", "", "GitHub username (optional)")
	analyzeCommand.Flags().StringVar(&analyzeLeetCode, "leetcode", "", "LeetCode username (optional)")
	analyzeCommand.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed debug information")
	analyzeCommand.Flags().BoolVar(&analyzeJSONLogs, "json-logs", false, "Emit logs as JSON")
	analyzeCommand.Flags().BoolVar(&analyzeJSON, "json", false, "Print the full user state as JSON instead of formatted output")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	analyzeCommand.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(analyzeCommand)
}

// loadAnalyzeConfig merges the config file with explicitly-set CLI flags.
func loadAnalyzeConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if analyzeConfigPath != "" {
		loaded, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loaded
	}

	if cmd.Flags().Changed("tier") {
		cfg.CollegeTier = analyzeTier
	}
	if cmd.Flags().Changed("year") {
		cfg.YearOfStudy = analyzeYear
	}
	if cmd.Flags().Changed("hours") {
		cfg.HoursPerWeek = analyzeHours
	}
	if cmd.Flags().Changed("interests") {
		cfg.Interests = analyzeInterests
	}
	if cmd.Flags().Changed("github") {
		cfg.GitHubUser = analyzeGitHub
	}
	if cmd.Flags().Changed("leetcode") {
		cfg.LeetCodeUser = analyzeLeetCode
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = analyzeAPIKey
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = analyzeVerbose
	}
	if cmd.Flags().Changed("json-logs") {
		cfg.JSONLogs = analyzeJSONLogs
	}

	return cfg, nil
}

// newSession builds an engine and a session ready to run.
func newSession(ctx context.Context, cfg config.Config) (*engine, *session.Session, error) {
	log, err := logger.New(cfg.JSONLogs, cfg.Verbose)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}

	basic, err := types.NewBasicProfile(cfg.CollegeTier, cfg.YearOfStudy, cfg.HoursPerWeek, nil)
	if err != nil {
		return nil, nil, err
	}

	eng, err := buildEngine(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}
	return eng, session.New(basic, eng.deps), nil
}

func runAnalyzeCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadAnalyzeConfig(cmd)
	if err != nil {
		return err
	}

	eng, sess, err := newSession(ctx, cfg)
	if err != nil {
		return err
	}
	defer eng.Close()

	state, err := sess.RunFullAnalysis(ctx, cfg.GitHubUser, cfg.LeetCodeUser, cfg.Interests)
	if err != nil {
		return err
	}

	if analyzeJSON {
		out, err := sess.Export()
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, string(out))
		return nil
	}

	printer := observability.NewPrinter(os.Stdout)
	if cfg.Verbose {
		printer.PrintContext(sess.State().ContextProfile)
		printer.PrintEvidence(sess.State().EvidenceProfile)
	}
	printer.PrintDecision(state)

	return nil
}
