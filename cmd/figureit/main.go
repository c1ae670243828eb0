// Package main provides the entry point for the FigureIt career engine CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "figureit",
	Short: "Career decision engine for computer science students",
	Long:  "FigureIt analyzes a student's real activity (GitHub, LeetCode), their interests and the hiring market, then decides which career paths to focus on, park, or drop.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
