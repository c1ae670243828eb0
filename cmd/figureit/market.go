package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/figureit/career-engine/internal/config"
	"github.com/figureit/career-engine/internal/logger"
	"github.com/figureit/career-engine/internal/observability"
)

var marketCommand = &cobra.Command{
	Use:   "market [skill...]",
	Short: "Show the market pulse table, or score specific skills",
	Long: `Without arguments, prints the deterministic market table with per-skill
multipliers. With skill names as arguments, prints the bounded multiplier for
each; unknown skills are classified via the LLM when an API key is available,
and stay neutral (1.00) otherwise.`,
	RunE: runMarketCmd,
}

var (
	marketAPIKey   string
	marketVerbose  bool
	marketJSONLogs bool
)

func init() {
	marketCommand.Flags().StringVar(&marketAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	marketCommand.Flags().BoolVarP(&marketVerbose, "verbose", "v", false, "Print detailed debug information")
	marketCommand.Flags().BoolVar(&marketJSONLogs, "json-logs", false, "Emit logs as JSON")

	rootCmd.AddCommand(marketCommand)
}

func runMarketCmd(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	log, err := logger.New(marketJSONLogs, marketVerbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}

	eng, err := buildEngine(ctx, config.Config{APIKey: marketAPIKey}, log)
	if err != nil {
		return err
	}
	defer eng.Close()

	if len(args) == 0 {
		observability.NewPrinter(os.Stdout).PrintMarket(eng.pulse.Snapshot())
		return nil
	}

	for _, skill := range args {
		multiplier := eng.pulse.GetMultiplier(ctx, skill)
		fmt.Fprintf(os.Stdout, "%-20s %.2f\n", skill, multiplier)
	}
	return nil
}
