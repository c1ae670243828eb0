package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/figureit/career-engine/internal/observability"
)

var chatCommand = &cobra.Command{
	Use:   "chat",
	Short: "Run the analysis, then chat about the decision",
	Long: `Runs the same pipeline as 'analyze', then opens an interactive loop. Messages
are routed by intent: panic support, path overrides, explanations, roadmap
requests, and concept questions each go to their own agent. Requires an API key.`,
	RunE: runChatCmd,
}

func init() {
	chatCommand.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	chatCommand.Flags().IntVar(&analyzeTier, "tier", 0, "College tier: 1 (top) to 3")
	chatCommand.Flags().IntVar(&analyzeYear, "year", 0, "Year of study: 1 to 5")
	chatCommand.Flags().IntVar(&analyzeHours, "hours", 0, "Study hours available per week")
	chatCommand.Flags().StringVar(&analyzeInterests, "interests", "", "Free text about what the student enjoys working on")
	chatCommand.Flags().StringVar(&analyzeGitHub, "github", "", "GitHub username (optional)")
	chatCommand.Flags().StringVar(&analyzeLeetCode, "leetcode", "", "LeetCode username (optional)")
	chatCommand.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	chatCommand.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed debug information")
	chatCommand.Flags().BoolVar(&analyzeJSONLogs, "json-logs", false, "Emit logs as JSON")

	rootCmd.AddCommand(chatCommand)
}

func runChatCmd(cmd *cobra.Command, _ []string) error {
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

	if eng.client == nil {
		return fmt.Errorf("chat requires an API key (use --api-key or set GEMINI_API_KEY)")
	}

	state, err := sess.RunFullAnalysis(ctx, cfg.GitHubUser, cfg.LeetCodeUser, cfg.Interests)
	if err != nil {
		return err
	}
	observability.NewPrinter(os.Stdout).PrintDecision(state)

	fmt.Println("Ask about the decision, or type 'exit' to quit.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		message := strings.TrimSpace(scanner.Text())
		if message == "" {
			continue
		}
		if message == "exit" || message == "quit" {
			break
		}

		reply, err := sess.HandleMessage(ctx, message)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		fmt.Println(reply)
		fmt.Println()
	}
	return scanner.Err()
}
