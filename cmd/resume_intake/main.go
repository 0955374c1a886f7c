// Package main provides the entry point for the resume-intake CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-intake/internal/logging"
)

var (
	rootLogLevel string
	rootPretty   bool
)

var rootCmd = &cobra.Command{
	Use:   "resume_intake",
	Short: "Resume intake and experience tabulation",
	Long: `resume_intake turns batches of resumes into a tabular record: candidate
identity fields, one row per employment stint, and a computed tenure in months
per stint and per candidate. Extraction, processing and persistence run as
separate subcommands so each stage can be inspected on its own.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logging.Init(rootLogLevel, rootPretty)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&rootPretty, "pretty-logs", true, "Human-readable log output instead of JSON lines")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
